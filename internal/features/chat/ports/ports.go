package ports

import (
	"context"

	intentdomain "github.com/bowlingnoi/line-chatbot/internal/features/intent/domain"
	knowledgedomain "github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"
	trackingdomain "github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// ReplySender delivers outbound messages to the chat platform.
type ReplySender interface {
	// Reply sends a text message in response to a webhook event.
	// Reply tokens are single-use and short-lived.
	Reply(ctx context.Context, replyToken, text string) error

	// Push sends a text message to a user outside a reply context.
	Push(ctx context.Context, userID, text string) error
}

// IntentClassifier decides how an incoming message should be routed.
type IntentClassifier interface {
	Classify(message string) intentdomain.Intent
	ShouldEscalate(message string) bool
}

// TrackingLookup resolves a tracking number into a customer-facing record.
type TrackingLookup interface {
	Lookup(ctx context.Context, trackingNumber string) trackingdomain.TrackingRecord
}

// KnowledgeAsker answers a free-form question from the FAQ.
type KnowledgeAsker interface {
	Ask(ctx context.Context, question string) knowledgedomain.Answer
}

// QueryLedger records handled-query outcomes for the analytics surface.
type QueryLedger interface {
	Record(question string, autoResolved bool, errMsg string)
}
