package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bowlingnoi/line-chatbot/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMysaveAdapter_Lookup_Success verifies decoding of a live payload.
func TestMysaveAdapter_Lookup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/TH014781D6JD0B", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"data": [{
				"tracking_number": "TH014781D6JD0B",
				"courier_code": "flash",
				"shipment_events": [
					{"timestamp": "2025-11-26 18:00", "status": "in_transit", "location": "Bangkok DC"},
					{"timestamp": "2025-11-26 10:30", "status": "picked_up", "location": "Ladprao Branch"}
				]
			}]
		}`))
	}))
	defer srv.Close()

	a := NewMysaveAdapter(srv.URL)

	shipments, err := a.Lookup(context.Background(), "TH014781D6JD0B")

	require.NoError(t, err)
	require.Len(t, shipments, 1)
	assert.Equal(t, "flash", shipments[0].CourierCode)
	require.Len(t, shipments[0].Events, 2)
	assert.Equal(t, "in_transit", shipments[0].Events[0].Status)
}

// TestMysaveAdapter_Lookup_NotFound verifies a 404 is an empty answer,
// not an error.
func TestMysaveAdapter_Lookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	a := NewMysaveAdapter(srv.URL)

	shipments, err := a.Lookup(context.Background(), "UNKNOWN12345")

	require.NoError(t, err)
	assert.Empty(t, shipments)
}

// TestMysaveAdapter_Lookup_ServerError verifies non-OK statuses surface
// as errors for the caller to absorb.
func TestMysaveAdapter_Lookup_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewMysaveAdapter(srv.URL)

	_, err := a.Lookup(context.Background(), "TH014781D6JD0B")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

// TestMysaveAdapter_Lookup_MalformedBody verifies decode failures are errors.
func TestMysaveAdapter_Lookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": `))
	}))
	defer srv.Close()

	a := NewMysaveAdapter(srv.URL)

	_, err := a.Lookup(context.Background(), "TH014781D6JD0B")
	assert.Error(t, err)
}

// TestMockAdapter_Deterministic verifies equal numbers produce equal
// synthetic shipments.
func TestMockAdapter_Deterministic(t *testing.T) {
	a := NewMockAdapter()
	ctx := context.Background()

	first, err := a.Lookup(ctx, "TH014781D6JD0B")
	require.NoError(t, err)
	second, err := a.Lookup(ctx, "TH014781D6JD0B")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	require.Len(t, first, 1)
	assert.NotEmpty(t, first[0].Events)
}

// TestMockAdapter_DeliveredScenarioHasSignature verifies the delivered
// scenario carries a signature for the confirmation line.
func TestMockAdapter_DeliveredScenarioHasSignature(t *testing.T) {
	a := NewMockAdapter()

	// Length 15 % 3 == 0 -> in_transit; find a delivered-length number.
	for _, number := range []string{"AB12345678", "AB123456789", "AB1234567890"} {
		shipments, err := a.Lookup(context.Background(), number)
		require.NoError(t, err)
		require.Len(t, shipments, 1)

		if shipments[0].Events[0].Status == domain.StatusDelivered {
			assert.NotEmpty(t, shipments[0].Signature)
			return
		}
	}
	t.Fatal("no delivered scenario produced")
}
