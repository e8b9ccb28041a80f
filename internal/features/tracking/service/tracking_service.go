package service

import (
	"context"

	"github.com/bowlingnoi/line-chatbot/internal/core/logger"
	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// TrackingService resolves a tracking number to a canonical status record.
type TrackingService struct {
	provider ports.ShipmentProvider
	logger   *zap.Logger
}

// NewTrackingService creates a TrackingService backed by the given provider.
func NewTrackingService(provider ports.ShipmentProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
		logger:   logger.Get(),
	}
}

// Lookup fetches the upstream payload and normalizes it. Transport
// failures are absorbed into a found=false record so callers always get
// a renderable result.
func (s *TrackingService) Lookup(ctx context.Context, trackingNumber string) domain.TrackingRecord {
	s.logger.Info("Looking up shipment", zap.String("tracking_number", trackingNumber))

	shipments, err := s.provider.Lookup(ctx, trackingNumber)
	if err != nil {
		s.logger.Warn("Shipment lookup failed",
			zap.String("tracking_number", trackingNumber),
			zap.Error(err),
		)
		return NotFoundRecord(trackingNumber, errReasonUnavailable)
	}

	record := Normalize(trackingNumber, shipments)
	if !record.Found {
		s.logger.Info("Shipment not found",
			zap.String("tracking_number", trackingNumber),
			zap.String("reason", record.Error),
		)
	}
	return record
}
