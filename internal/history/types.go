package history

import (
	"time"

	"github.com/google/uuid"
)

// Record is one completed conversion.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Input     string    `json:"input"`
	FromRadix int       `json:"from_base"`
	ToRadix   int       `json:"to_base"`
	Result    string    `json:"result"`
}

// ListResponse is returned by GET /history. Records are most recent first;
// Total counts everything the log currently holds, not just the page.
type ListResponse struct {
	Records []Record `json:"records"`
	Total   int      `json:"total"`
}

// ClearResponse is returned by DELETE /history.
type ClearResponse struct {
	Cleared int `json:"cleared"`
}
