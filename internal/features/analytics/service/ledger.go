package service

import (
	"math"
	"sync"
	"time"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/analytics/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// maxLogSize bounds the retained outcome history; counters are
	// unaffected by eviction.
	maxLogSize = 100
	// questionPreviewLimit truncates stored questions, in runes.
	questionPreviewLimit = 100
	// summaryInterval controls how often the ledger logs a summary.
	summaryInterval = 10

	avgHandlingMinutes = 15
	avgHourlyRateUSD   = 20
)

// Ledger keeps the bounded query log and the running counters. All
// mutation goes through one mutex so a record is a single indivisible
// step: counter increment, append and eviction never interleave.
type Ledger struct {
	mu sync.Mutex

	total        int
	autoResolved int
	escalated    int
	errored      int
	startTime    time.Time

	queryLog []domain.QueryOutcome

	logger *zap.Logger
}

// NewLedger creates an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{
		startTime: time.Now(),
		queryLog:  make([]domain.QueryOutcome, 0, maxLogSize),
		logger:    logger.Get(),
	}
}

// Record stores one interaction outcome. Exactly one counter is
// incremented: an error wins over everything, otherwise the autoResolved
// flag decides between auto-resolved and escalated.
func (l *Ledger) Record(question string, autoResolved bool, errMsg string) {
	l.mu.Lock()

	l.total++
	switch {
	case errMsg != "":
		l.errored++
	case autoResolved:
		l.autoResolved++
	default:
		l.escalated++
	}

	l.queryLog = append(l.queryLog, domain.QueryOutcome{
		ID:           uuid.NewString(),
		Timestamp:    time.Now(),
		Question:     truncateRunes(question, questionPreviewLimit),
		AutoResolved: autoResolved,
		Error:        errMsg,
	})
	if len(l.queryLog) > maxLogSize {
		l.queryLog = l.queryLog[1:]
	}

	shouldSummarize := l.total%summaryInterval == 0
	l.mu.Unlock()

	if shouldSummarize {
		l.logSummary()
	}
}

// Metrics returns the aggregate counters and derived rates.
func (l *Ledger) Metrics() domain.Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()

	return domain.Metrics{
		Total:          l.total,
		AutoResolved:   l.autoResolved,
		Escalated:      l.escalated,
		Errored:        l.errored,
		ResolutionRate: rate(l.autoResolved, l.total),
		EscalationRate: rate(l.escalated, l.total),
		ErrorRate:      rate(l.errored, l.total),
		UptimeMinutes:  int(time.Since(l.startTime).Minutes()),
	}
}

// Recent returns the last limit outcomes in arrival order.
func (l *Ledger) Recent(limit int) []domain.QueryOutcome {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || len(l.queryLog) == 0 {
		return nil
	}
	start := len(l.queryLog) - limit
	if start < 0 {
		start = 0
	}

	out := make([]domain.QueryOutcome, len(l.queryLog)-start)
	copy(out, l.queryLog[start:])
	return out
}

// Savings estimates the handling time and cost avoided so far.
func (l *Ledger) Savings() domain.Savings {
	l.mu.Lock()
	resolved := l.autoResolved
	l.mu.Unlock()

	minutes := resolved * avgHandlingMinutes
	hours := float64(minutes) / 60

	return domain.Savings{
		AutoResolvedCases:  resolved,
		MinutesSaved:       minutes,
		HoursSaved:         round2(hours),
		EstimatedCostSaved: round2(hours * avgHourlyRateUSD),
		Currency:           "USD",
	}
}

// logSummary emits the periodic metrics snapshot.
func (l *Ledger) logSummary() {
	m := l.Metrics()
	l.logger.Info("Analytics summary",
		zap.Int("total_queries", m.Total),
		zap.Int("auto_resolved", m.AutoResolved),
		zap.Int("escalated", m.Escalated),
		zap.Int("errors", m.Errored),
		zap.Float64("resolution_rate", m.ResolutionRate),
		zap.Int("uptime_minutes", m.UptimeMinutes),
	)
}

// rate is count/total as a percentage rounded to 2 decimals.
func rate(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// truncateRunes shortens s to at most limit runes without splitting a
// multi-byte character.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
