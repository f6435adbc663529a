package history_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"numsys-api/internal/history"
)

func TestAppendStampsRecord(t *testing.T) {
	log := history.NewLog(10)

	before := time.Now()
	rec := log.Append("FF", 16, 10, "255")

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.False(t, rec.Timestamp.Before(before))
	assert.Equal(t, "FF", rec.Input)
	assert.Equal(t, 16, rec.FromRadix)
	assert.Equal(t, 10, rec.ToRadix)
	assert.Equal(t, "255", rec.Result)
	assert.Equal(t, 1, log.Len())
}

func TestRecentReturnsMostRecentFirst(t *testing.T) {
	log := history.NewLog(10)
	log.Append("1", 10, 2, "1")
	log.Append("2", 10, 2, "10")
	log.Append("3", 10, 2, "11")

	recent := log.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "3", recent[0].Input)
	assert.Equal(t, "2", recent[1].Input)

	// Zero or a limit beyond the log's length returns everything.
	assert.Len(t, log.Recent(0), 3)
	assert.Len(t, log.Recent(100), 3)
}

func TestLogDropsOldestBeyondLimit(t *testing.T) {
	log := history.NewLog(3)
	for i := 1; i <= 5; i++ {
		log.Append(strconv.Itoa(i), 10, 2, "x")
	}

	assert.Equal(t, 3, log.Len())

	recent := log.Recent(0)
	require.Len(t, recent, 3)
	assert.Equal(t, "5", recent[0].Input)
	assert.Equal(t, "4", recent[1].Input)
	assert.Equal(t, "3", recent[2].Input)
}

func TestNewLogFallsBackToDefaultLimit(t *testing.T) {
	log := history.NewLog(0)
	for i := 0; i < history.DefaultLimit+10; i++ {
		log.Append("1", 10, 2, "1")
	}
	assert.Equal(t, history.DefaultLimit, log.Len())
}

func TestClearEmptiesLog(t *testing.T) {
	log := history.NewLog(10)
	log.Append("1", 10, 2, "1")
	log.Append("2", 10, 2, "10")

	assert.Equal(t, 2, log.Clear())
	assert.Equal(t, 0, log.Len())
	assert.Empty(t, log.Recent(0))
	assert.Equal(t, 0, log.Clear())
}

func TestWriteCSVShape(t *testing.T) {
	log := history.NewLog(10)
	log.Append("1010", 2, 10, "10")
	log.Append("FF", 16, 2, "11111111")

	var buf bytes.Buffer
	require.NoError(t, log.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Timestamp", "Input", "From Base", "To Base", "Result"}, rows[0])

	// Oldest record first.
	assert.Equal(t, []string{"1010", "2", "10", "10"}, rows[1][1:])
	assert.Equal(t, []string{"FF", "16", "2", "11111111"}, rows[2][1:])

	for _, row := range rows[1:] {
		_, err := time.Parse("2006-01-02 15:04:05", row[0])
		assert.NoError(t, err)
	}
}

func TestConcurrentAppends(t *testing.T) {
	log := history.NewLog(200)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			log.Append(fmt.Sprintf("%d", i), 10, 2, "x")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, log.Len())
}
