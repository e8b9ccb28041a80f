package handler

import (
	"github.com/bowlingnoi/line-chatbot/internal/features/analytics/domain"
	"github.com/bowlingnoi/line-chatbot/internal/features/analytics/service"

	"github.com/gofiber/fiber/v2"
)

// recentQueryCount is how many outcomes the analytics endpoint exposes.
const recentQueryCount = 5

// AnalyticsHandler handles HTTP requests for ledger metrics.
type AnalyticsHandler struct {
	ledger *service.Ledger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(ledger *service.Ledger) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledger}
}

// AnalyticsResponse is the /analytics payload.
type AnalyticsResponse struct {
	Metrics       domain.Metrics        `json:"metrics"`
	Savings       domain.Savings        `json:"savings"`
	RecentQueries []domain.QueryOutcome `json:"recent_queries"`
}

// GetAnalytics godoc
// @Summary Get bot performance metrics
// @Description Returns resolution counters, derived rates, estimated CS savings and the most recent query outcomes
// @Tags analytics
// @Produce json
// @Success 200 {object} AnalyticsResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	return c.JSON(AnalyticsResponse{
		Metrics:       h.ledger.Metrics(),
		Savings:       h.ledger.Savings(),
		RecentQueries: h.ledger.Recent(recentQueryCount),
	})
}
