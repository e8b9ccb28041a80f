package ports

import (
	"context"

	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"
)

// Answerer is the primary port for answering a question against the FAQ
// document. Implementations never return an error; failures are absorbed
// into the Answer per the collaborator contract.
type Answerer interface {
	Answer(ctx context.Context, question, faqContent string) domain.Answer
}

// FAQSource is the secondary port for loading the FAQ document.
type FAQSource interface {
	Content(ctx context.Context) (string, error)
}
