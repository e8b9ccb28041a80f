package domain

// Upstream status codes the normalizer understands. Unknown codes pass
// through with a generic icon so new upstream states never break lookups.
const (
	StatusOrderCreated   = "order_created"
	StatusPickedUp       = "picked_up"
	StatusInTransit      = "in_transit"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusFailed         = "delivery_failed"
	StatusReturned       = "returned"
)

// StatusLabel is the display mapping for one status code.
type StatusLabel struct {
	// Icon is the emoji shown in rendered messages.
	Icon string
	// English is the English status label.
	English string
	// Thai is the Thai status label.
	Thai string
}

// genericStatusIcon marks status codes outside the table.
const genericStatusIcon = "📍"

// statusTable maps upstream status codes to bilingual labels.
var statusTable = map[string]StatusLabel{
	StatusOrderCreated:   {Icon: "📝", English: "Order Placed", Thai: "รับคำสั่งซื้อแล้ว"},
	StatusPickedUp:       {Icon: "📦", English: "Picked Up", Thai: "รับพัสดุแล้ว"},
	StatusInTransit:      {Icon: "🚚", English: "In Transit", Thai: "กำลังจัดส่ง"},
	StatusOutForDelivery: {Icon: "🛵", English: "Out for Delivery", Thai: "กำลังนำจ่าย"},
	StatusDelivered:      {Icon: "✅", English: "Delivered", Thai: "จัดส่งสำเร็จ"},
	StatusFailed:         {Icon: "❌", English: "Delivery Failed", Thai: "นำจ่ายไม่สำเร็จ"},
	StatusReturned:       {Icon: "↩️", English: "Returned to Sender", Thai: "ตีกลับต้นทาง"},
}

// courierTable maps upstream courier codes to display names. Unknown
// codes are displayed as-is.
var courierTable = map[string]string{
	"flash":         "Flash Express",
	"kerry":         "Kerry Express",
	"thailand_post": "Thailand Post",
	"ems":           "Thailand Post EMS",
	"jt":            "J&T Express",
	"spx":           "SPX Express",
	"ninja":         "Ninja Van",
	"dhl":           "DHL Express",
	"best":          "BEST Express",
}

// LookupStatus resolves a status code to its display label. Unknown codes
// fall back to the raw code under a generic icon.
func LookupStatus(code string) StatusLabel {
	if label, ok := statusTable[code]; ok {
		return label
	}
	return StatusLabel{Icon: genericStatusIcon, English: code, Thai: code}
}

// LookupCourier resolves a courier code to its display name, passing
// unknown codes through unchanged.
func LookupCourier(code string) string {
	if name, ok := courierTable[code]; ok {
		return name
	}
	return code
}

// HistoryEntry is one normalized tracking event.
type HistoryEntry struct {
	// Timestamp is the upstream event time, "2006-01-02 15:04" layout.
	Timestamp string `json:"timestamp"`
	// Status is the localized (Thai) status for the event; raw code when
	// the code is unknown.
	Status string `json:"status"`
	// Location is where the event occurred.
	Location string `json:"location,omitempty"`
	// Remark is free-form upstream commentary, usually empty.
	Remark string `json:"remark,omitempty"`
}

// TrackingRecord is the canonical shipment status shape. When Found is
// false only TrackingNumber and Error are populated.
type TrackingRecord struct {
	Found          bool   `json:"found"`
	TrackingNumber string `json:"tracking_number"`
	// Courier is the display name; CourierCode keeps the raw upstream code.
	Courier     string `json:"courier,omitempty"`
	CourierCode string `json:"courier_code,omitempty"`
	// Status is the raw upstream status code of the latest event.
	Status string `json:"status,omitempty"`
	// StatusLocalized and StatusDisplay are the Thai and English labels.
	StatusLocalized string `json:"status_th,omitempty"`
	StatusDisplay   string `json:"status_en,omitempty"`
	// Location and Timestamp come from the latest event.
	Location  string `json:"location,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	// History holds the most recent events, newest first.
	History []HistoryEntry `json:"history,omitempty"`
	// Remark carries upstream commentary on the latest event.
	Remark string `json:"remark,omitempty"`
	// Signature is the recipient signature reference on delivered shipments.
	Signature string `json:"signature,omitempty"`
	// Error describes why the shipment was not found.
	Error string `json:"error,omitempty"`
}

// UpstreamEvent is one raw event from the tracking API, newest first.
type UpstreamEvent struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
	Location  string `json:"location"`
	Remark    string `json:"remark,omitempty"`
}

// UpstreamShipment is one raw shipment record from the tracking API.
type UpstreamShipment struct {
	TrackingNumber string          `json:"tracking_number"`
	CourierCode    string          `json:"courier_code"`
	Signature      string          `json:"signature,omitempty"`
	Events         []UpstreamEvent `json:"shipment_events"`
}
