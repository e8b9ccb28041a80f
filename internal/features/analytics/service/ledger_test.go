package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLedger_CounterInvariant verifies the three counters are mutually
// exclusive and sum to the total.
func TestLedger_CounterInvariant(t *testing.T) {
	l := NewLedger()

	l.Record("ok question", true, "")
	l.Record("escalated question", false, "")
	l.Record("failed question", false, "upstream broke")
	// Error wins even when the flag claims auto-resolved.
	l.Record("failed but flagged", true, "upstream broke")

	m := l.Metrics()
	assert.Equal(t, 4, m.Total)
	assert.Equal(t, 1, m.AutoResolved)
	assert.Equal(t, 1, m.Escalated)
	assert.Equal(t, 2, m.Errored)
	assert.Equal(t, m.Total, m.AutoResolved+m.Escalated+m.Errored)
}

// TestLedger_Rates replays the canonical 15-query scenario.
func TestLedger_Rates(t *testing.T) {
	l := NewLedger()

	for i := 0; i < 10; i++ {
		l.Record("resolved", true, "")
	}
	for i := 0; i < 3; i++ {
		l.Record("escalated", false, "")
	}
	for i := 0; i < 2; i++ {
		l.Record("errored", false, "boom")
	}

	m := l.Metrics()
	assert.Equal(t, 15, m.Total)
	assert.InDelta(t, 66.67, m.ResolutionRate, 1e-9)
	assert.InDelta(t, 20.00, m.EscalationRate, 1e-9)
	assert.InDelta(t, 13.33, m.ErrorRate, 1e-9)
}

// TestLedger_EmptyRates verifies zero rates before any record.
func TestLedger_EmptyRates(t *testing.T) {
	m := NewLedger().Metrics()

	assert.Equal(t, 0, m.Total)
	assert.Zero(t, m.ResolutionRate)
	assert.Zero(t, m.EscalationRate)
	assert.Zero(t, m.ErrorRate)
}

// TestLedger_EvictionKeepsCounters verifies FIFO eviction trims history
// without touching counters.
func TestLedger_EvictionKeepsCounters(t *testing.T) {
	l := NewLedger()

	for i := 0; i < maxLogSize+25; i++ {
		l.Record(fmt.Sprintf("q%d", i), true, "")
	}

	m := l.Metrics()
	assert.Equal(t, maxLogSize+25, m.Total)
	assert.Equal(t, maxLogSize+25, m.AutoResolved)

	recent := l.Recent(maxLogSize * 2)
	require.Len(t, recent, maxLogSize)
	// Oldest entries were evicted first.
	assert.Equal(t, "q25", recent[0].Question)
	assert.Equal(t, fmt.Sprintf("q%d", maxLogSize+24), recent[len(recent)-1].Question)
}

// TestLedger_Recent verifies arrival order and limit handling.
func TestLedger_Recent(t *testing.T) {
	l := NewLedger()
	l.Record("first", true, "")
	l.Record("second", false, "")
	l.Record("third", false, "err")

	recent := l.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Question)
	assert.Equal(t, "third", recent[1].Question)
	assert.NotEmpty(t, recent[0].ID)

	assert.Nil(t, l.Recent(0))
	assert.Len(t, l.Recent(10), 3)
}

// TestLedger_QuestionPreviewTruncated verifies long questions are stored
// as bounded previews without splitting characters.
func TestLedger_QuestionPreviewTruncated(t *testing.T) {
	l := NewLedger()
	long := strings.Repeat("ก", 150)

	l.Record(long, true, "")

	recent := l.Recent(1)
	require.Len(t, recent, 1)
	assert.Equal(t, questionPreviewLimit, len([]rune(recent[0].Question)))
}

// TestLedger_ConcurrentRecords verifies the invariant holds under
// concurrent recording.
func TestLedger_ConcurrentRecords(t *testing.T) {
	l := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				l.Record("a", true, "")
			case 1:
				l.Record("b", false, "")
			default:
				l.Record("c", false, "x")
			}
		}(i)
	}
	wg.Wait()

	m := l.Metrics()
	assert.Equal(t, 50, m.Total)
	assert.Equal(t, m.Total, m.AutoResolved+m.Escalated+m.Errored)
}

// TestLedger_Savings verifies the workload estimate.
func TestLedger_Savings(t *testing.T) {
	l := NewLedger()
	for i := 0; i < 8; i++ {
		l.Record("q", true, "")
	}

	s := l.Savings()
	assert.Equal(t, 8, s.AutoResolvedCases)
	assert.Equal(t, 120, s.MinutesSaved)
	assert.InDelta(t, 2.0, s.HoursSaved, 1e-9)
	assert.InDelta(t, 40.0, s.EstimatedCostSaved, 1e-9)
	assert.Equal(t, "USD", s.Currency)
}
