package adapter

import (
	"context"
	"fmt"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"
	"go.uber.org/zap"
)

// LineAdapter implements the ReplySender port on the LINE Messaging API.
type LineAdapter struct {
	client *messaging_api.MessagingApiAPI
	logger *zap.Logger
}

// NewLineAdapter creates an adapter for the given channel access token.
func NewLineAdapter(channelAccessToken string) (*LineAdapter, error) {
	client, err := messaging_api.NewMessagingApiAPI(channelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE messaging client: %w", err)
	}

	return &LineAdapter{
		client: client,
		logger: logger.Get(),
	}, nil
}

// Reply sends a text reply for the given reply token.
func (a *LineAdapter) Reply(_ context.Context, replyToken, text string) error {
	_, err := a.client.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send reply message: %w", err)
	}

	a.logger.Debug("Reply message sent", zap.Int("chars", len(text)))
	return nil
}

// Push sends a text message directly to a user.
func (a *LineAdapter) Push(_ context.Context, userID, text string) error {
	_, err := a.client.PushMessage(&messaging_api.PushMessageRequest{
		To: userID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("failed to send push message: %w", err)
	}

	a.logger.Debug("Push message sent", zap.String("user_id", userID))
	return nil
}
