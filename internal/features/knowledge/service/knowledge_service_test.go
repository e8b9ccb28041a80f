package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockFAQSource is a mock implementation of FAQSource.
type mockFAQSource struct {
	content     string
	returnError error
}

// Content implements FAQSource.
func (m *mockFAQSource) Content(_ context.Context) (string, error) {
	return m.content, m.returnError
}

// mockAnswerer is a mock implementation of Answerer that records inputs.
type mockAnswerer struct {
	gotQuestion string
	gotFAQ      string
	answer      domain.Answer
}

// Answer implements Answerer.
func (m *mockAnswerer) Answer(_ context.Context, question, faqContent string) domain.Answer {
	m.gotQuestion = question
	m.gotFAQ = faqContent
	return m.answer
}

// TestKnowledgeService_Ask verifies the FAQ content reaches the answerer.
func TestKnowledgeService_Ask(t *testing.T) {
	faq := &mockFAQSource{content: "# FAQ\nค่าส่ง 50 บาท"}
	answerer := &mockAnswerer{answer: domain.Answer{Text: "50 บาทค่ะ", AutoResolved: true}}

	svc := NewKnowledgeService(faq, answerer)
	answer := svc.Ask(context.Background(), "ค่าส่งเท่าไหร่")

	assert.Equal(t, "ค่าส่งเท่าไหร่", answerer.gotQuestion)
	assert.Equal(t, faq.content, answerer.gotFAQ)
	assert.True(t, answer.AutoResolved)
	assert.Equal(t, "50 บาทค่ะ", answer.Text)
}

// TestKnowledgeService_Ask_FAQUnavailable verifies load failures yield a
// sendable fallback marked as errored.
func TestKnowledgeService_Ask_FAQUnavailable(t *testing.T) {
	faq := &mockFAQSource{returnError: errors.New("file missing")}

	svc := NewKnowledgeService(faq, &mockAnswerer{})
	answer := svc.Ask(context.Background(), "ค่าส่งเท่าไหร่")

	require.NotEmpty(t, answer.Text)
	assert.False(t, answer.AutoResolved)
	assert.Equal(t, "file missing", answer.Err)
}

// TestKnowledgeService_Ask_PassesThroughFailure verifies answerer
// failures keep their error marker for the ledger.
func TestKnowledgeService_Ask_PassesThroughFailure(t *testing.T) {
	faq := &mockFAQSource{content: "# FAQ"}
	answerer := &mockAnswerer{answer: domain.Answer{
		Text:         "fallback",
		AutoResolved: false,
		Err:          "rate limited",
	}}

	svc := NewKnowledgeService(faq, answerer)
	answer := svc.Ask(context.Background(), "anything")

	assert.False(t, answer.AutoResolved)
	assert.Equal(t, "rate limited", answer.Err)
}
