package handler

import (
	"context"
	"errors"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/chat/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"go.uber.org/zap"
)

// WebhookHandler receives LINE platform callbacks and dispatches their
// events to the chat service.
type WebhookHandler struct {
	channelSecret string
	chat          *service.ChatService
	logger        *zap.Logger
}

// NewWebhookHandler creates a WebhookHandler.
func NewWebhookHandler(channelSecret string, chat *service.ChatService) *WebhookHandler {
	return &WebhookHandler{
		channelSecret: channelSecret,
		chat:          chat,
		logger:        logger.Get(),
	}
}

// HandleWebhook godoc
// @Summary LINE webhook endpoint
// @Description Receives message, follow and postback events from the LINE platform. Requests must carry a valid x-line-signature header.
// @Tags webhook
// @Accept json
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "invalid signature"
// @Router /webhook [post]
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	req, err := adaptor.ConvertRequest(c, false)
	if err != nil {
		h.logger.Error("Failed to convert webhook request", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	cb, err := webhook.ParseRequest(h.channelSecret, req)
	if err != nil {
		if errors.Is(err, webhook.ErrInvalidSignature) {
			h.logger.Warn("Webhook signature validation failed")
			return c.SendStatus(fiber.StatusBadRequest)
		}
		h.logger.Error("Failed to parse webhook request", zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	h.logger.Debug("Webhook received", zap.Int("events", len(cb.Events)))

	ctx := c.UserContext()
	for _, event := range cb.Events {
		h.dispatchEvent(ctx, event)
	}

	return c.SendStatus(fiber.StatusOK)
}

// dispatchEvent routes a single webhook event. Unsupported event and
// message types are skipped.
func (h *WebhookHandler) dispatchEvent(ctx context.Context, event webhook.EventInterface) {
	switch e := event.(type) {
	case webhook.MessageEvent:
		textMessage, ok := e.Message.(webhook.TextMessageContent)
		if !ok {
			h.logger.Debug("Skipping non-text message event")
			return
		}
		h.chat.HandleText(ctx, e.ReplyToken, sourceUserID(e.Source), textMessage.Text)

	case webhook.FollowEvent:
		h.chat.HandleFollow(ctx, e.ReplyToken, sourceUserID(e.Source))

	case webhook.PostbackEvent:
		if e.Postback == nil {
			return
		}
		h.chat.HandlePostback(ctx, e.ReplyToken, e.Postback.Data)

	default:
		h.logger.Debug("Skipping unsupported event type")
	}
}

// sourceUserID pulls the user id out of an event source when present.
func sourceUserID(source webhook.SourceInterface) string {
	if user, ok := source.(webhook.UserSource); ok {
		return user.UserId
	}
	return ""
}
