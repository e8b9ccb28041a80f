package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bowlingnoi/line-chatbot/internal/features/chat/service"
	intentdomain "github.com/bowlingnoi/line-chatbot/internal/features/intent/domain"
	knowledgedomain "github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"
	trackingdomain "github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testChannelSecret = "test-channel-secret"

type stubClassifier struct{ intent intentdomain.Intent }

func (s *stubClassifier) Classify(_ string) intentdomain.Intent { return s.intent }
func (s *stubClassifier) ShouldEscalate(_ string) bool          { return false }

type stubTracking struct{}

func (s *stubTracking) Lookup(_ context.Context, number string) trackingdomain.TrackingRecord {
	return trackingdomain.TrackingRecord{Found: true, TrackingNumber: number}
}

type stubKnowledge struct{}

func (s *stubKnowledge) Ask(_ context.Context, _ string) knowledgedomain.Answer {
	return knowledgedomain.Answer{Text: "an answer", AutoResolved: true}
}

type stubLedger struct{ count int }

func (s *stubLedger) Record(_ string, _ bool, _ string) { s.count++ }

type captureSender struct {
	replies     []string
	replyTokens []string
}

func (s *captureSender) Reply(_ context.Context, replyToken, text string) error {
	s.replyTokens = append(s.replyTokens, replyToken)
	s.replies = append(s.replies, text)
	return nil
}

func (s *captureSender) Push(_ context.Context, _, _ string) error { return nil }

// newWebhookApp wires a Fiber app with a chat service built on stubs.
func newWebhookApp(intent intentdomain.Intent) (*fiber.App, *captureSender, *stubLedger) {
	sender := &captureSender{}
	ledger := &stubLedger{}
	chat := service.NewChatService(
		&stubClassifier{intent: intent},
		&stubTracking{},
		&stubKnowledge{},
		ledger,
		sender,
	)

	app := fiber.New()
	app.Post("/webhook", NewWebhookHandler(testChannelSecret, chat).HandleWebhook)
	return app, sender, ledger
}

// signBody computes the x-line-signature value for a payload.
func signBody(secret, body string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, body, signature string) int {
	t.Helper()

	req := httptest.NewRequest("POST", "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("x-line-signature", signature)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

// TestHandleWebhook_TextMessage verifies a signed text event flows
// through classification to the reply.
func TestHandleWebhook_TextMessage(t *testing.T) {
	app, sender, ledger := newWebhookApp(intentdomain.Intent{
		Type:       intentdomain.IntentFAQ,
		Confidence: 0.45,
	})

	body := `{"destination":"Uabc","events":[{"type":"message","mode":"active","timestamp":1700000000,"webhookEventId":"01HWEBHOOK","deliveryContext":{"isRedelivery":false},"replyToken":"token-1","source":{"type":"user","userId":"U123"},"message":{"type":"text","id":"1001","text":"ราคาค่าส่งเท่าไหร่"}}]}`

	status := postWebhook(t, app, body, signBody(testChannelSecret, body))

	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, sender.replies, 1)
	assert.Equal(t, "token-1", sender.replyTokens[0])
	assert.Equal(t, "an answer", sender.replies[0])
	assert.Equal(t, 1, ledger.count)
}

// TestHandleWebhook_InvalidSignature rejects tampered payloads.
func TestHandleWebhook_InvalidSignature(t *testing.T) {
	app, sender, _ := newWebhookApp(intentdomain.Intent{Type: intentdomain.IntentFAQ})

	body := `{"destination":"Uabc","events":[]}`
	status := postWebhook(t, app, body, signBody("wrong-secret", body))

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, sender.replies)
}

// TestHandleWebhook_MissingSignature is also rejected.
func TestHandleWebhook_MissingSignature(t *testing.T) {
	app, sender, _ := newWebhookApp(intentdomain.Intent{Type: intentdomain.IntentFAQ})

	status := postWebhook(t, app, `{"destination":"Uabc","events":[]}`, "")

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Empty(t, sender.replies)
}

// TestHandleWebhook_FollowEvent sends the welcome message.
func TestHandleWebhook_FollowEvent(t *testing.T) {
	app, sender, ledger := newWebhookApp(intentdomain.Intent{})

	body := `{"destination":"Uabc","events":[{"type":"follow","mode":"active","timestamp":1700000000,"webhookEventId":"01HFOLLOW","deliveryContext":{"isRedelivery":false},"replyToken":"token-2","source":{"type":"user","userId":"U456"}}]}`

	status := postWebhook(t, app, body, signBody(testChannelSecret, body))

	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, sender.replies, 1)
	assert.Contains(t, sender.replies[0], "ยินดีต้อนรับ")
	assert.Zero(t, ledger.count)
}

// TestHandleWebhook_PostbackEvent serves the contact card.
func TestHandleWebhook_PostbackEvent(t *testing.T) {
	app, sender, _ := newWebhookApp(intentdomain.Intent{})

	body := `{"destination":"Uabc","events":[{"type":"postback","mode":"active","timestamp":1700000000,"webhookEventId":"01HPOSTBACK","deliveryContext":{"isRedelivery":false},"replyToken":"token-3","source":{"type":"user","userId":"U789"},"postback":{"data":"contact_human"}}]}`

	status := postWebhook(t, app, body, signBody(testChannelSecret, body))

	assert.Equal(t, fiber.StatusOK, status)
	require.Len(t, sender.replies, 1)
	assert.Contains(t, sender.replies[0], "ช่องทางติดต่อทีมงาน")
}

// TestHandleWebhook_NonTextMessage is acknowledged but not routed.
func TestHandleWebhook_NonTextMessage(t *testing.T) {
	app, sender, ledger := newWebhookApp(intentdomain.Intent{Type: intentdomain.IntentFAQ})

	body := `{"destination":"Uabc","events":[{"type":"message","mode":"active","timestamp":1700000000,"webhookEventId":"01HSTICKER","deliveryContext":{"isRedelivery":false},"replyToken":"token-4","source":{"type":"user","userId":"U123"},"message":{"type":"sticker","id":"1002","packageId":"1","stickerId":"2"}}]}`

	status := postWebhook(t, app, body, signBody(testChannelSecret, body))

	assert.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, sender.replies)
	assert.Zero(t, ledger.count)
}
