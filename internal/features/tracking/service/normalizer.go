package service

import (
	"regexp"

	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// historyBound caps how many upstream events a record keeps.
const historyBound = 5

// Not-found error reasons surfaced on TrackingRecord.Error.
const (
	errReasonNotFound    = "tracking number not found"
	errReasonNoEvents    = "no tracking events found"
	errReasonUnavailable = "unable to retrieve tracking information"
)

// validNumberPattern accepts the tracking number formats the upstream API
// understands.
var validNumberPattern = regexp.MustCompile(`(?i)^[A-Z0-9]{8,20}$`)

// ValidateTrackingNumber reports whether a candidate looks like a number
// the upstream can resolve.
func ValidateTrackingNumber(trackingNumber string) bool {
	return validNumberPattern.MatchString(trackingNumber)
}

// NotFoundRecord builds the canonical absent-shipment record. Callers that
// hit transport failures use it to preserve the found=false contract.
func NotFoundRecord(trackingNumber, reason string) domain.TrackingRecord {
	return domain.TrackingRecord{
		Found:          false,
		TrackingNumber: trackingNumber,
		Error:          reason,
	}
}

// Normalize maps the raw upstream payload into the canonical record shape.
// It is a pure function of its inputs: an empty payload or a shipment
// without events yields a found=false record, everything else takes the
// first shipment and its first event as "latest".
func Normalize(trackingNumber string, shipments []domain.UpstreamShipment) domain.TrackingRecord {
	if len(shipments) == 0 {
		return NotFoundRecord(trackingNumber, errReasonNotFound)
	}

	shipment := shipments[0]
	if len(shipment.Events) == 0 {
		return NotFoundRecord(trackingNumber, errReasonNoEvents)
	}

	if shipment.TrackingNumber != "" {
		trackingNumber = shipment.TrackingNumber
	}

	// Events arrive most-recent-first; the head is the current state.
	latest := shipment.Events[0]
	label := domain.LookupStatus(latest.Status)

	record := domain.TrackingRecord{
		Found:           true,
		TrackingNumber:  trackingNumber,
		Courier:         domain.LookupCourier(shipment.CourierCode),
		CourierCode:     shipment.CourierCode,
		Status:          latest.Status,
		StatusLocalized: label.Thai,
		StatusDisplay:   label.English,
		Location:        latest.Location,
		Timestamp:       latest.Timestamp,
		Remark:          latest.Remark,
		Signature:       shipment.Signature,
	}

	for i, event := range shipment.Events {
		if i == historyBound {
			break
		}
		record.History = append(record.History, domain.HistoryEntry{
			Timestamp: event.Timestamp,
			Status:    domain.LookupStatus(event.Status).Thai,
			Location:  event.Location,
			Remark:    event.Remark,
		})
	}

	return record
}
