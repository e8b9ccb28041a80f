package service

import (
	"context"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"
	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/ports"

	"go.uber.org/zap"
)

// faqUnavailableAnswer is sent when the FAQ document cannot be loaded at
// all; without grounding material there is nothing to answer from.
const faqUnavailableAnswer = "ขออภัยค่ะ ระบบข้อมูลมีปัญหาชั่วคราว กรุณาติดต่อทีมงานที่ support@mysave.cc หรือโทร 02-0966494 ค่ะ\n\n" +
	"Sorry, our knowledge base is temporarily unavailable. Please contact support@mysave.cc or call 02-0966494."

// KnowledgeService answers customer questions from the FAQ document.
type KnowledgeService struct {
	faq      ports.FAQSource
	answerer ports.Answerer
	logger   *zap.Logger
}

// NewKnowledgeService creates a KnowledgeService.
func NewKnowledgeService(faq ports.FAQSource, answerer ports.Answerer) *KnowledgeService {
	return &KnowledgeService{
		faq:      faq,
		answerer: answerer,
		logger:   logger.Get(),
	}
}

// Ask answers a question against the FAQ. It never fails: load or
// generation problems produce a sendable fallback with Err set, which
// the ledger counts as errored.
func (s *KnowledgeService) Ask(ctx context.Context, question string) domain.Answer {
	faqContent, err := s.faq.Content(ctx)
	if err != nil {
		s.logger.Error("FAQ document unavailable", zap.Error(err))
		return domain.Answer{
			Text:         faqUnavailableAnswer,
			AutoResolved: false,
			Err:          err.Error(),
		}
	}

	answer := s.answerer.Answer(ctx, question, faqContent)
	s.logger.Info("Knowledge answer generated",
		zap.Bool("auto_resolved", answer.AutoResolved),
		zap.String("model", answer.Model),
		zap.Bool("errored", answer.Err != ""),
	)
	return answer
}
