// Package history keeps a bounded in-memory log of completed conversions
// and serves it over HTTP, including a CSV export. Storage beyond the
// process lifetime is the caller's concern.
package history

import (
	"encoding/csv"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultLimit bounds the process-wide log when no explicit size is given.
const DefaultLimit = 100

// timestampLayout matches the layout history rows have always been
// exported with.
const timestampLayout = "2006-01-02 15:04:05"

// Store is the process-wide conversion log behind /history and /convert.
// InitStore resizes it at startup.
var Store = NewLog(DefaultLimit)

// InitStore replaces the process-wide log with one holding at most limit
// records. Call once at startup, before the router is built.
func InitStore(limit int) {
	Store = NewLog(limit)
}

// Log is a bounded, mutex-guarded conversion log. Once full, appending
// drops the oldest record.
type Log struct {
	mu      sync.Mutex
	limit   int
	records []Record // oldest first
}

// NewLog returns an empty log holding at most limit records. A limit of
// zero or less falls back to DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{limit: limit}
}

// Append records a conversion, stamping it with a fresh ID and the current
// time, and returns the stored record.
func (l *Log) Append(input string, from, to int, result string) Record {
	rec := Record{
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Input:     input,
		FromRadix: from,
		ToRadix:   to,
		Result:    result,
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, rec)
	if len(l.records) > l.limit {
		l.records = l.records[1:]
	}
	return rec
}

// Recent returns up to n records, most recent first. n of zero or less, or
// beyond the log's length, returns everything.
func (l *Log) Recent(n int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.records) {
		n = len(l.records)
	}
	out := make([]Record, n)
	for i := range out {
		out[i] = l.records[len(l.records)-1-i]
	}
	return out
}

// Len reports how many records the log currently holds.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.records)
}

// Clear empties the log and reports how many records it dropped.
func (l *Log) Clear() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := len(l.records)
	l.records = nil
	return n
}

// WriteCSV writes the log to w, oldest record first, under the header
// Timestamp, Input, From Base, To Base, Result.
func (l *Log) WriteCSV(w io.Writer) error {
	l.mu.Lock()
	records := make([]Record, len(l.records))
	copy(records, l.records)
	l.mu.Unlock()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Timestamp", "Input", "From Base", "To Base", "Result"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.Timestamp.Format(timestampLayout),
			rec.Input,
			strconv.Itoa(rec.FromRadix),
			strconv.Itoa(rec.ToRadix),
			rec.Result,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
