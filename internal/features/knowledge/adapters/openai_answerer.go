package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// Generation knobs for FAQ answering.
const (
	answerTemperature = 0.7
	answerMaxTokens   = 500
)

// fallbackAnswer is sent when generation fails.
const fallbackAnswer = "ขออภัยค่ะ ระบบมีปัญหาชั่วคราว กรุณาติดต่อทีมงานของเราโดยตรงที่ support@mysave.cc หรือโทร 02-0966494 ค่ะ\n\n" +
	"Sorry, we are experiencing technical difficulties. Please contact our support team directly at support@mysave.cc or call 02-0966494."

// escalationPhrases in a generated answer mean the model deferred to a
// human, so the query does not count as auto-resolved.
var escalationPhrases = []string{
	"contact our support",
	"contact support",
	"human agent",
	"ติดต่อทีม",
	"ติดต่อฝ่าย",
	"don't have that information",
	"not in the faq",
	"cannot answer",
	"ไม่มีข้อมูล",
}

// OpenAIAnswerer answers FAQ questions with an OpenAI chat model through
// langchaingo.
type OpenAIAnswerer struct {
	llm    llms.Model
	model  string
	logger *zap.Logger
}

// NewOpenAIAnswerer creates an answerer for the given API key and model.
func NewOpenAIAnswerer(apiKey, model string) (*OpenAIAnswerer, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenAI model: %w", err)
	}

	return &OpenAIAnswerer{
		llm:    llm,
		model:  model,
		logger: logger.Get(),
	}, nil
}

// Answer generates a reply grounded on the FAQ document. Failures are
// absorbed into the bilingual fallback answer.
func (o *OpenAIAnswerer) Answer(ctx context.Context, question, faqContent string) domain.Answer {
	resp, err := o.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, buildSystemPrompt(faqContent)),
			llms.TextParts(llms.ChatMessageTypeHuman, buildUserPrompt(question)),
		},
		llms.WithTemperature(answerTemperature),
		llms.WithMaxTokens(answerMaxTokens),
	)
	if err != nil {
		o.logger.Error("Answer generation failed", zap.Error(err))
		return domain.Answer{
			Text:         fallbackAnswer,
			AutoResolved: false,
			Model:        o.model,
			Err:          err.Error(),
		}
	}

	if len(resp.Choices) == 0 {
		o.logger.Error("Answer generation returned no choices")
		return domain.Answer{
			Text:         fallbackAnswer,
			AutoResolved: false,
			Model:        o.model,
			Err:          "model returned no choices",
		}
	}

	text := resp.Choices[0].Content
	return domain.Answer{
		Text:         text,
		AutoResolved: !IsEscalationResponse(text),
		Model:        o.model,
	}
}

// IsEscalationResponse reports whether a generated answer defers the
// question to human support.
func IsEscalationResponse(answer string) bool {
	lower := strings.ToLower(answer)
	for _, phrase := range escalationPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// buildSystemPrompt embeds the FAQ document into the assistant role.
func buildSystemPrompt(faqContent string) string {
	return `You are a helpful customer service assistant for MYSAVE, a logistics and shipping company in Thailand.

Your role:
- Answer customer questions using ONLY the information provided in the FAQ document below
- Be friendly, professional, and concise in Thai and English (respond in the same language as the question)
- If the answer is in the FAQ, provide it clearly and accurately
- If the information is NOT in the FAQ, politely say you don't have that information and offer to escalate to a human agent
- Never make up information or provide answers not supported by the FAQ
- Keep responses under 200 words

FAQ Document:
` + faqContent + `

Important Instructions:
- Always be helpful and empathetic
- Use clear, simple language
- For questions about specific orders or personal information, always suggest contacting support directly
- Provide contact information when escalating: support@mysave.cc or LINE: @mysave`
}

// buildUserPrompt frames the customer question.
func buildUserPrompt(question string) string {
	return fmt.Sprintf(`Customer question: %s

Please provide a helpful answer based on the FAQ. If the FAQ doesn't contain the answer, politely let the customer know and suggest contacting our support team.`, question)
}
