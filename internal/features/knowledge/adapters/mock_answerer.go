package adapter

import (
	"context"
	"strings"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/knowledge/domain"

	"go.uber.org/zap"
)

// MockAnswerer serves canned answers in test mode, keyed off question
// keywords. It ignores the FAQ document.
type MockAnswerer struct {
	logger *zap.Logger
}

// NewMockAnswerer creates a MockAnswerer.
func NewMockAnswerer() *MockAnswerer {
	return &MockAnswerer{logger: logger.Get()}
}

// cannedTopic pairs detection keywords with a fixed answer.
type cannedTopic struct {
	keywords []string
	text     string
}

var cannedTopics = []cannedTopic{
	{
		keywords: []string{"ราคา", "rate", "ค่าส่ง", "cost", "price", "เท่าไหร่"},
		text: "🚚 อัตราค่าจัดส่ง MYSAVE:\n\n📍 กรุงเทพฯ: 50 บาท (น้ำหนัก 0-2 กก.)\n📍 ต่างจังหวัด: 80 บาท (น้ำหนัก 0-2 กก.)\n\n✨ บริการเพิ่มเติม:\n• COD: +25 บาท\n• Express: +50 บาท\n\n---\n\n🚚 MYSAVE Shipping Rates:\n\n📍 Bangkok: 50 THB (0-2kg)\n📍 Provinces: 80 THB (0-2kg)\n\nAdditional services:\n• COD: +25 THB\n• Express: +50 THB",
	},
	{
		keywords: []string{"นาน", "delivery", "ส่ง", "long", "time"},
		text: "⏰ ระยะเวลาการจัดส่ง:\n\n📦 กรุงเทพฯ: 1-2 วันทำการ\n📦 ภาคกลาง: 2-3 วันทำการ\n📦 ต่างจังหวัด: 3-5 วันทำการ\n\n---\n\n⏰ Delivery Time:\n\n📦 Bangkok: 1-2 days\n📦 Central: 2-3 days\n📦 Provinces: 3-5 days",
	},
	{
		keywords: []string{"track", "ติดตาม", "เช็ค", "check"},
		text: "📍 วิธีติดตามพัสดุ:\n\n1️⃣ ส่งเลขพัสดุมาในแชทนี้ได้เลย\n2️⃣ เว็บไซต์: mysave.cc/tracking\n3️⃣ โทร: 02-0966494\n\n---\n\n📍 How to track:\n\n1️⃣ Send your tracking number in this chat\n2️⃣ Website: mysave.cc/tracking\n3️⃣ Call: 02-0966494",
	},
}

// mockEscalationAnswer is returned for questions outside the canned topics.
const mockEscalationAnswer = "สวัสดีค่ะ! ขออภัยด้วยนะคะ คำถามนี้อาจต้องให้ทีมงานช่วยตอบโดยตรง\n\n📞 ติดต่อทีมงาน: โทร 02-0966494 | LINE: @mysave\n\n---\n\nHello! I apologize, but this question needs our team to answer directly.\n\n📞 Contact our support: 02-0966494 | LINE: @mysave"

// Answer returns a canned answer matching the question topic, or the
// escalation answer when no topic matches.
func (m *MockAnswerer) Answer(_ context.Context, question, _ string) domain.Answer {
	lower := strings.ToLower(question)

	for _, topic := range cannedTopics {
		for _, keyword := range topic.keywords {
			if strings.Contains(lower, keyword) {
				m.logger.Debug("Mock answer matched topic", zap.String("keyword", keyword))
				return domain.Answer{Text: topic.text, AutoResolved: true, Model: "mock"}
			}
		}
	}

	return domain.Answer{Text: mockEscalationAnswer, AutoResolved: false, Model: "mock"}
}
