package ports

import (
	"context"

	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// ShipmentProvider fetches raw shipment records for a tracking number.
// An empty slice with a nil error means the number is unknown upstream.
type ShipmentProvider interface {
	Lookup(ctx context.Context, trackingNumber string) ([]domain.UpstreamShipment, error)
}
