package domain

import "fmt"

// IntentType identifies the classified purpose of an inbound message.
type IntentType string

const (
	// IntentTracking indicates a shipment-status query.
	IntentTracking IntentType = "TRACKING"
	// IntentFAQ indicates a question answerable from the FAQ document.
	IntentFAQ IntentType = "FAQ"
	// IntentEscalate indicates the message should be handed to a human agent.
	IntentEscalate IntentType = "ESCALATE"
)

// Intent is the classification result for a single message. Exactly one
// variant applies: TrackingNumber is set only for TRACKING (and may be
// empty when the user still has to provide a number), Category only for
// FAQ, Reason only for ESCALATE.
type Intent struct {
	Type       IntentType `json:"type"`
	Confidence float64    `json:"confidence"`
	// TrackingNumber is the extracted shipment identifier, uppercase.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// Category is the best-scoring FAQ category.
	Category string `json:"category,omitempty"`
	// Reason explains why the message is being escalated.
	Reason string `json:"reason,omitempty"`
}

// Description returns a human-readable summary for logs.
func (i Intent) Description() string {
	switch i.Type {
	case IntentFAQ:
		category := i.Category
		if category == "" {
			category = "general"
		}
		return fmt.Sprintf("FAQ query (%s)", category)
	case IntentTracking:
		if i.TrackingNumber != "" {
			return fmt.Sprintf("Tracking query (%s)", i.TrackingNumber)
		}
		return "Tracking query"
	case IntentEscalate:
		return fmt.Sprintf("CS escalation (%s)", i.Reason)
	default:
		return "Unknown intent"
	}
}
