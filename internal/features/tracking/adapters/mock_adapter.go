package adapter

import (
	"context"

	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// MockAdapter serves synthetic shipments when the tracking API is
// disabled. The returned status depends only on the number's length, so
// replies stay deterministic across calls.
type MockAdapter struct{}

// NewMockAdapter creates a MockAdapter.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{}
}

// mockScenario is one synthetic shipment state.
type mockScenario struct {
	status   string
	location string
}

var mockScenarios = []mockScenario{
	{status: domain.StatusInTransit, location: "ศูนย์กระจายสินค้า กรุงเทพฯ"},
	{status: domain.StatusOutForDelivery, location: "พื้นที่นำจ่ายปลายทาง"},
	{status: domain.StatusDelivered, location: "ส่งถึงผู้รับแล้ว"},
}

// Lookup returns one synthetic shipment for any tracking number.
func (a *MockAdapter) Lookup(_ context.Context, trackingNumber string) ([]domain.UpstreamShipment, error) {
	scenario := mockScenarios[len(trackingNumber)%len(mockScenarios)]

	shipment := domain.UpstreamShipment{
		TrackingNumber: trackingNumber,
		CourierCode:    "flash",
		Events: []domain.UpstreamEvent{
			{Timestamp: "2025-11-26 18:00", Status: scenario.status, Location: scenario.location},
			{Timestamp: "2025-11-26 14:15", Status: domain.StatusInTransit, Location: "ถึงศูนย์คัดแยก"},
			{Timestamp: "2025-11-26 10:30", Status: domain.StatusPickedUp, Location: "รับพัสดุจากผู้ส่ง"},
		},
	}

	if scenario.status == domain.StatusDelivered {
		shipment.Signature = "ผู้รับ"
	}

	return []domain.UpstreamShipment{shipment}, nil
}
