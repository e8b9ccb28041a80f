package domain

import "time"

// QueryOutcome records how one classified interaction ended.
type QueryOutcome struct {
	// ID uniquely identifies the outcome.
	ID string `json:"id"`
	// Timestamp is when the outcome was recorded.
	Timestamp time.Time `json:"timestamp"`
	// Question is a truncated preview of the user's message.
	Question string `json:"question"`
	// AutoResolved reports whether the bot answered without a human.
	AutoResolved bool `json:"auto_resolved"`
	// Error holds the failure description, empty on success.
	Error string `json:"error,omitempty"`
}

// Metrics is the aggregate view over all recorded outcomes. The three
// counters are mutually exclusive and always sum to Total.
type Metrics struct {
	Total        int `json:"total_queries"`
	AutoResolved int `json:"auto_resolved"`
	Escalated    int `json:"escalated"`
	Errored      int `json:"errors"`
	// Rates are percentages rounded to 2 decimals; 0 when Total is 0.
	ResolutionRate float64 `json:"resolution_rate"`
	EscalationRate float64 `json:"escalation_rate"`
	ErrorRate      float64 `json:"error_rate"`
	// UptimeMinutes counts whole minutes since the ledger was created.
	UptimeMinutes int `json:"uptime_minutes"`
}

// Savings estimates the support workload avoided by auto-resolution,
// assuming 15 minutes handling time per ticket at 20 USD/hour.
type Savings struct {
	AutoResolvedCases  int     `json:"auto_resolved_cases"`
	MinutesSaved       int     `json:"minutes_saved"`
	HoursSaved         float64 `json:"hours_saved"`
	EstimatedCostSaved float64 `json:"estimated_cost_saved"`
	Currency           string  `json:"currency"`
}
