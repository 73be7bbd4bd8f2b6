package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/facultymetrics/internal/roster"
)

func TestFixedTraceIDGenerator_ReturnsSameID(t *testing.T) {
	gen := NewFixedTraceIDGenerator("trace-123")

	assert.Equal(t, "trace-123", gen.Generate())
	assert.Equal(t, "trace-123", gen.Generate())
}

func TestFixedTraceIDGenerator_EmptyIDDefault(t *testing.T) {
	gen := NewFixedTraceIDGenerator("")
	assert.Equal(t, "test-trace-default", gen.Generate())
}

func TestFixedClock(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	c := NewFixedClock(start)

	assert.Equal(t, start, c.Now())
	assert.Equal(t, start, c.Now(), "clock must not move on its own")

	c.Advance(24 * time.Hour)
	assert.Equal(t, start.Add(24*time.Hour), c.Now())

	later := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	assert.Equal(t, later, c.Now())
}

func TestFixedClock_ThreadSafe(t *testing.T) {
	c := NewFixedClock(time.Unix(0, 0))

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				c.Advance(time.Second)
				_ = c.Now()
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	assert.Equal(t, time.Unix(1000, 0), c.Now())
}

func TestRecordsAndSeqs(t *testing.T) {
	records := Records(
		roster.Row{Seq: 3, Name: "Dr C"},
		roster.Row{Seq: 1, Name: "Dr A"},
	)
	assert.Equal(t, []int{3, 1}, Seqs(records))
}
