package service

import (
	"regexp"
	"strings"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/intent/domain"

	"go.uber.org/zap"
)

// Operative thresholds of the classifier. The configurable confidence
// threshold is advisory only; these literals drive the decisions.
const (
	// trackingNumberConfidence applies when a tracking-number-shaped
	// token is found in the message.
	trackingNumberConfidence = 0.95
	// trackingKeywordConfidence applies when only tracking keywords match
	// and the caller must prompt for a number.
	trackingKeywordConfidence = 0.75
	// faqScoreThreshold is the minimum category score to classify as FAQ.
	faqScoreThreshold = 0.3
	// faqConfidenceBoost scales the category score into a confidence.
	faqConfidenceBoost = 1.5
	// faqConfidenceCap bounds the boosted FAQ confidence.
	faqConfidenceCap = 0.95
	// escalateConfidence applies to the default escalation fallback.
	escalateConfidence = 0.5
)

// escalateReason is the reason attached to the default escalation intent.
const escalateReason = "no clear intent detected or requires human assistance"

var (
	// trackingNumberPattern matches candidate shipment identifiers:
	// 10-20 alphanumeric characters bounded by word edges. Covers formats
	// like TH014781D6JD0B, 7228112769731265, SHIPBA4361694, WB047589355TH.
	trackingNumberPattern = regexp.MustCompile(`(?i)\b[A-Z0-9]{10,20}\b`)
	// consecutiveRunPattern guards against low-entropy tokens: a real
	// tracking number has at least 3 consecutive digits or letters.
	consecutiveRunPattern = regexp.MustCompile(`[0-9]{3,}|[A-Za-z]{3,}`)
)

// trackingKeywords trigger the tracking intent when no number is present.
var trackingKeywords = []string{
	// Thai
	"ติดตาม", "เช็ค", "ตรวจสอบ", "พัสดุ", "ของฉัน", "ถึงไหน",
	// English
	"track", "tracking", "check", "where is", "status", "package",
}

// faqCategory is one row of the FAQ scoring table.
type faqCategory struct {
	name     string
	keywords []string
	weight   float64
}

// faqCategories is evaluated in order; on exact score ties the earlier
// category wins, so the slice order is part of the contract.
var faqCategories = []faqCategory{
	{
		name: "shipping_rates",
		keywords: []string{
			"ราคา", "ค่าส่ง", "เท่าไหร่", "rate", "price", "cost", "how much",
			"flash", "shopee", "thailand post",
		},
		weight: 1.0,
	},
	{
		name: "delivery_time",
		keywords: []string{
			"นาน", "จัดส่ง", "delivery", "time", "ระยะเวลา", "how long",
			"เมื่อไหร่", "when", "arrive",
		},
		weight: 1.0,
	},
	{
		name: "account_verification",
		keywords: []string{
			"ยืนยันตัวตน", "verify", "verification", "สมัคร", "account",
			"บัญชี", "register", "signup",
		},
		weight: 0.9,
	},
	{
		name: "cod_account",
		keywords: []string{
			"cod", "เก็บเงินปลายทาง", "สมัคร cod", "บัญชีธนาคาร",
		},
		weight: 0.9,
	},
	{
		name: "required_documents",
		keywords: []string{
			"เอกสาร", "ต้องใช้", "document", "required", "need",
			"บัตรประชาชน", "หนังสือเดินทาง", "สำเนา",
		},
		weight: 0.85,
	},
	{
		name: "create_account",
		keywords: []string{
			"เปิดระบบ", "สร้างบัญชี", "create", "setup", "อุปกรณ์",
			"ได้รับอุปกรณ์", "equipment",
		},
		weight: 0.85,
	},
	{
		name: "payment",
		keywords: []string{
			"ชำระเงิน", "payment", "จ่าย", "pay", "วิธีจ่าย", "method",
		},
		weight: 0.8,
	},
	{
		name: "general",
		keywords: []string{
			"ติดต่อ", "contact", "help", "ช่วย", "สอบถาม", "question",
		},
		weight: 0.6,
	},
}

// escalationKeywords mark messages that deserve urgent human attention.
var escalationKeywords = []string{
	// Complaints
	"ร้องเรียน", "complaint", "angry", "โกง", "cheat",
	// Refunds
	"คืนเงิน", "refund", "cancel", "ยกเลิก",
	// Technical issues
	"error", "broken", "เสีย", "ใช้ไม่ได้",
	// Urgent
	"urgent", "ด่วน", "emergency",
}

// Classifier turns free-form bilingual text into a typed Intent.
// It is stateless and safe for concurrent use.
type Classifier struct {
	// confidenceThreshold is logged for tuning; routing ignores it.
	confidenceThreshold float64
	logger              *zap.Logger
}

// NewClassifier creates a Classifier with the given advisory threshold.
func NewClassifier(confidenceThreshold float64) *Classifier {
	return &Classifier{
		confidenceThreshold: confidenceThreshold,
		logger:              logger.Get(),
	}
}

// Classify resolves the intent of a message. Priority order, first match
// wins: tracking number or tracking keyword, then FAQ category scoring,
// then escalation. It never fails; unmatched text escalates.
func (c *Classifier) Classify(message string) domain.Intent {
	lowerMessage := strings.ToLower(message)

	if intent, ok := c.checkTrackingIntent(message, lowerMessage); ok {
		c.logIntent(intent)
		return intent
	}

	if intent, ok := c.checkFAQIntent(lowerMessage); ok {
		c.logIntent(intent)
		return intent
	}

	intent := domain.Intent{
		Type:       domain.IntentEscalate,
		Confidence: escalateConfidence,
		Reason:     escalateReason,
	}
	c.logIntent(intent)
	return intent
}

// ExtractTrackingNumber scans text for a shipment identifier. It returns
// the longest qualifying candidate uppercased, or false when none is
// found. Ties on length keep the first occurrence.
func (c *Classifier) ExtractTrackingNumber(message string) (string, bool) {
	matches := trackingNumberPattern.FindAllString(message, -1)
	if len(matches) == 0 {
		return "", false
	}

	longest := matches[0]
	for _, m := range matches[1:] {
		if len(m) > len(longest) {
			longest = m
		}
	}

	if !consecutiveRunPattern.MatchString(longest) {
		return "", false
	}

	return strings.ToUpper(longest), true
}

// ShouldEscalate reports whether the message contains complaint, refund,
// technical-failure or urgency wording. Used to flag escalations as
// urgent; it does not change the classification itself.
func (c *Classifier) ShouldEscalate(message string) bool {
	lowerMessage := strings.ToLower(message)
	for _, keyword := range escalationKeywords {
		if strings.Contains(lowerMessage, keyword) {
			return true
		}
	}
	return false
}

// checkTrackingIntent applies the tracking priority rule: a qualifying
// number preempts everything, keywords alone still classify as tracking
// but leave the number empty for the caller to prompt.
func (c *Classifier) checkTrackingIntent(message, lowerMessage string) (domain.Intent, bool) {
	if number, ok := c.ExtractTrackingNumber(message); ok {
		return domain.Intent{
			Type:           domain.IntentTracking,
			Confidence:     trackingNumberConfidence,
			TrackingNumber: number,
		}, true
	}

	for _, keyword := range trackingKeywords {
		if strings.Contains(lowerMessage, keyword) {
			return domain.Intent{
				Type:       domain.IntentTracking,
				Confidence: trackingKeywordConfidence,
			}, true
		}
	}

	return domain.Intent{}, false
}

// checkFAQIntent scores every category as keyword density times category
// weight. Each keyword counts at most once per message regardless of
// repeats; substring containment means "track" and "tracking" can both
// match the same word.
func (c *Classifier) checkFAQIntent(lowerMessage string) (domain.Intent, bool) {
	var bestCategory string
	var highestScore float64

	for _, category := range faqCategories {
		matched := 0
		for _, keyword := range category.keywords {
			if strings.Contains(lowerMessage, keyword) {
				matched++
			}
		}
		if matched == 0 {
			continue
		}

		score := float64(matched) / float64(len(category.keywords)) * category.weight
		if score > highestScore {
			highestScore = score
			bestCategory = category.name
		}
	}

	if bestCategory == "" || highestScore < faqScoreThreshold {
		return domain.Intent{}, false
	}

	confidence := highestScore * faqConfidenceBoost
	if confidence > faqConfidenceCap {
		confidence = faqConfidenceCap
	}

	return domain.Intent{
		Type:       domain.IntentFAQ,
		Confidence: confidence,
		Category:   bestCategory,
	}, true
}

func (c *Classifier) logIntent(intent domain.Intent) {
	c.logger.Debug("Message classified",
		zap.String("intent", intent.Description()),
		zap.Float64("confidence", intent.Confidence),
		zap.Float64("confidence_threshold", c.confidenceThreshold),
	)
}
