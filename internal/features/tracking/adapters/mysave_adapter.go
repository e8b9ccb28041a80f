package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bowlingnoi/line-chatbot/internal/core/httpclient"
	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"
)

// MysaveAdapter fetches shipment records from the MYSAVE tracking API.
type MysaveAdapter struct {
	client  *http.Client
	baseURL string
}

// NewMysaveAdapter creates an adapter for the given API base URL.
func NewMysaveAdapter(baseURL string) *MysaveAdapter {
	return &MysaveAdapter{
		client:  httpclient.NewClient(10 * time.Second),
		baseURL: baseURL,
	}
}

// trackingAPIResponse is the raw JSON envelope from the tracking API.
type trackingAPIResponse struct {
	Data []domain.UpstreamShipment `json:"data"`
}

// Lookup fetches shipment records for a tracking number. An upstream 404
// is a normal "unknown number" answer, not an error.
func (a *MysaveAdapter) Lookup(ctx context.Context, trackingNumber string) ([]domain.UpstreamShipment, error) {
	url := fmt.Sprintf("%s/%s", a.baseURL, trackingNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tracking API returned status: %d", resp.StatusCode)
	}

	var body trackingAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return body.Data, nil
}
