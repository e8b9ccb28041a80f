package service

import (
	"context"
	"fmt"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/chat/ports"
	intentdomain "github.com/bowlingnoi/line-chatbot/internal/features/intent/domain"
	tracking "github.com/bowlingnoi/line-chatbot/internal/features/tracking/service"

	"go.uber.org/zap"
)

// contactHumanPostback is the postback data emitted by the
// talk-to-an-agent button.
const contactHumanPostback = "contact_human"

// errNoTrackingNumber is recorded when a tracking query arrives without
// an extractable number.
const errNoTrackingNumber = "no tracking number provided"

// ChatService routes inbound messages by intent: shipment lookups go to
// the tracking collaborator, questions to the knowledge collaborator,
// everything else to a human. Every answered query lands in the ledger.
type ChatService struct {
	classifier ports.IntentClassifier
	tracking   ports.TrackingLookup
	knowledge  ports.KnowledgeAsker
	ledger     ports.QueryLedger
	sender     ports.ReplySender
	logger     *zap.Logger
}

// NewChatService creates a ChatService.
func NewChatService(
	classifier ports.IntentClassifier,
	trackingLookup ports.TrackingLookup,
	knowledge ports.KnowledgeAsker,
	ledger ports.QueryLedger,
	sender ports.ReplySender,
) *ChatService {
	return &ChatService{
		classifier: classifier,
		tracking:   trackingLookup,
		knowledge:  knowledge,
		ledger:     ledger,
		sender:     sender,
		logger:     logger.Get(),
	}
}

// HandleText processes one inbound text message end to end. Routing
// failures are absorbed: the user gets an apology and the ledger an
// errored record.
func (s *ChatService) HandleText(ctx context.Context, replyToken, userID, text string) {
	intent := s.classifier.Classify(text)

	var err error
	switch intent.Type {
	case intentdomain.IntentTracking:
		err = s.handleTracking(ctx, replyToken, text, intent)
	case intentdomain.IntentEscalate:
		err = s.handleEscalation(ctx, replyToken, userID, text, intent)
	default:
		// FAQ, and anything unexpected falls back to the FAQ.
		err = s.handleKnowledge(ctx, replyToken, text, intent)
	}

	if err != nil {
		s.logger.Error("Message handling failed",
			zap.String("intent", intent.Description()),
			zap.Error(err),
		)
		s.ledger.Record(text, false, err.Error())
		if replyErr := s.sender.Reply(ctx, replyToken, errorReply); replyErr != nil {
			s.logger.Error("Failed to send error reply", zap.Error(replyErr))
		}
	}
}

// HandleFollow greets a user who just added the bot.
func (s *ChatService) HandleFollow(ctx context.Context, replyToken, userID string) {
	s.logger.Info("New follower", zap.String("user_id", userID))

	if err := s.sender.Reply(ctx, replyToken, welcomeMessage); err != nil {
		s.logger.Error("Failed to send welcome message", zap.Error(err))
	}
}

// HandlePostback serves interactive-button actions.
func (s *ChatService) HandlePostback(ctx context.Context, replyToken, data string) {
	s.logger.Info("Postback received", zap.String("data", data))

	if data != contactHumanPostback {
		return
	}

	if err := s.sender.Reply(ctx, replyToken, contactCardMessage); err != nil {
		s.logger.Error("Failed to send contact card", zap.Error(err))
	}
}

func (s *ChatService) handleTracking(ctx context.Context, replyToken, text string, intent intentdomain.Intent) error {
	number := intent.TrackingNumber

	if number == "" {
		if err := s.sender.Reply(ctx, replyToken, trackingPromptReply); err != nil {
			return err
		}
		s.ledger.Record(text, false, errNoTrackingNumber)
		return nil
	}

	if !tracking.ValidateTrackingNumber(number) {
		// A malformed number is user input to correct, not a failed
		// query, so it is not recorded.
		reply := fmt.Sprintf(invalidFormatReplyTemplate, number, number)
		return s.sender.Reply(ctx, replyToken, reply)
	}

	record := s.tracking.Lookup(ctx, number)
	if err := s.sender.Reply(ctx, replyToken, tracking.Render(record)); err != nil {
		return err
	}

	s.ledger.Record(text, record.Found, "")
	s.logger.Info("Tracking reply sent",
		zap.String("tracking_number", number),
		zap.Bool("found", record.Found),
	)
	return nil
}

func (s *ChatService) handleKnowledge(ctx context.Context, replyToken, text string, intent intentdomain.Intent) error {
	answer := s.knowledge.Ask(ctx, text)

	if err := s.sender.Reply(ctx, replyToken, answer.Text); err != nil {
		return err
	}

	s.ledger.Record(text, answer.AutoResolved, answer.Err)
	s.logger.Info("Knowledge reply sent",
		zap.String("category", intent.Category),
		zap.Bool("auto_resolved", answer.AutoResolved),
	)
	return nil
}

func (s *ChatService) handleEscalation(ctx context.Context, replyToken, userID, text string, intent intentdomain.Intent) error {
	s.logger.Info("Escalating to support team",
		zap.String("user_id", userID),
		zap.String("reason", intent.Reason),
		zap.Bool("urgent", s.classifier.ShouldEscalate(text)),
	)

	if err := s.sender.Reply(ctx, replyToken, escalationReply); err != nil {
		return err
	}

	s.ledger.Record(text, false, "")
	return nil
}
