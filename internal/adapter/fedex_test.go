package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ship-rates/internal/config"
	"github.com/MKhiriev/go-ship-rates/internal/logger"
	"github.com/MKhiriev/go-ship-rates/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var fedexTestCreds = config.CarrierCredentials{
	ClientID:      "fedex-id",
	ClientSecret:  "fedex-secret",
	AccountNumber: "740561073",
}

func newTestFedExClient(t *testing.T, srv *httptest.Server) *FedExClient {
	t.Helper()
	return NewFedExClient(fedexTestCreds, Endpoints{FedExHost: srv.URL}, 0, logger.Nop())
}

func writeFedExToken(t *testing.T, w http.ResponseWriter) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	_, err := w.Write([]byte(`{"access_token":"fedex-token-456"}`))
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// OAuth fallback
// ─────────────────────────────────────────────

func TestFedExClient_ProbeAuth_BasicAccepted(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/oauth/token", r.URL.Path)
		attempts++
		_, _, ok := r.BasicAuth()
		assert.True(t, ok, "first strategy must use Basic auth")
		writeFedExToken(t, w)
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	require.NoError(t, client.ProbeAuth(context.Background()))
	assert.Equal(t, 1, attempts, "successful Basic grant must not retry")
}

func TestFedExClient_ProbeAuth_FallsBackToBodyCredentials(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		require.NoError(t, r.ParseForm())

		if _, _, ok := r.BasicAuth(); ok {
			// reject the Basic strategy, forcing the body fallback
			http.Error(w, `{"errors":[{"code":"NOT.AUTHORIZED.ERROR"}]}`, http.StatusUnauthorized)
			return
		}

		assert.Equal(t, "fedex-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "fedex-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		writeFedExToken(t, w)
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	require.NoError(t, client.ProbeAuth(context.Background()))
	assert.Equal(t, 2, attempts)
}

func TestFedExClient_ProbeAuth_BothStrategiesRejected(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"errors":[{"code":"BAD.CREDENTIALS"}]}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	err := client.ProbeAuth(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAuth)
	assert.Contains(t, err.Error(), "BAD.CREDENTIALS")
	assert.Equal(t, 2, attempts, "fallback runs at most once")
}

// ─────────────────────────────────────────────
// Rates
// ─────────────────────────────────────────────

func TestFedExClient_GetRates_Success(t *testing.T) {
	var rateBody fedexRateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/token":
			writeFedExToken(t, w)

		case fedexRatePath:
			assert.Equal(t, "Bearer fedex-token-456", r.Header.Get("Authorization"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&rateBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"output":{"rateReplyDetails":[
				{"serviceType":"FEDEX_GROUND","serviceName":"FedEx Ground",
				 "ratedShipmentDetails":[{"totalNetCharge":12.45}],
				 "operationalDetail":{"transitTime":"THREE_DAYS","deliveryDate":"2026-09-18"}},
				{"serviceType":"PRIORITY_OVERNIGHT",
				 "ratedShipmentDetails":[{"totalNetChargeWithDutiesAndTaxes":61.02}]}
			]}}`))

		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	quotes, err := client.GetRates(context.Background(), models.ShipmentSpec{
		OriginZip:   "10001",
		DestZip:     "94105",
		WeightLb:    5,
		Residential: true,
		ShipDate:    "2026-09-15",
	})
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, models.Quote{
		Carrier:      models.CarrierFedEx,
		Service:      "FedEx Ground",
		TotalCharge:  12.45,
		TransitDays:  3,
		DeliveryDate: "2026-09-18",
	}, quotes[0])

	// missing name falls back to the service type; the net charge falls
	// back to the duties-and-taxes field
	assert.Equal(t, models.Quote{
		Carrier:     models.CarrierFedEx,
		Service:     "PRIORITY_OVERNIGHT",
		TotalCharge: 61.02,
	}, quotes[1])

	// request document shape
	assert.Equal(t, "740561073", rateBody.AccountNumber.Value)
	shipment := rateBody.RequestedShipment
	assert.Equal(t, "10001", shipment.Shipper.Address.PostalCode)
	assert.Equal(t, "94105", shipment.Recipient.Address.PostalCode)
	assert.Equal(t, "US", shipment.Recipient.Address.CountryCode)
	assert.True(t, shipment.Recipient.Address.Residential)
	assert.Equal(t, "DROPOFF_AT_FEDEX_LOCATION", shipment.PickupType)
	assert.Equal(t, []string{"ACCOUNT", "LIST"}, shipment.RateRequestType)
	assert.Equal(t, "2026-09-15", shipment.ShipDateStamp)
	require.Len(t, shipment.RequestedPackageLineItems, 1)
	item := shipment.RequestedPackageLineItems[0]
	assert.Equal(t, "LB", item.Weight.Units)
	assert.Equal(t, 5.0, item.Weight.Value)
	assert.Nil(t, item.Dimensions)
	assert.Nil(t, item.DeclaredValue)
}

func TestFedExClient_GetRates_OptionalBlocks(t *testing.T) {
	var rateBody fedexRateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			writeFedExToken(t, w)
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rateBody))
		_, _ = w.Write([]byte(`{"output":{"rateReplyDetails":[]}}`))
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	_, err := client.GetRates(context.Background(), models.ShipmentSpec{
		OriginZip:     "10001",
		DestZip:       "94105",
		WeightLb:      3,
		Dimensions:    &models.Dimensions{Length: 12, Width: 9, Height: 6},
		DeclaredValue: 250,
	})
	require.NoError(t, err)

	item := rateBody.RequestedShipment.RequestedPackageLineItems[0]
	require.NotNil(t, item.Dimensions)
	assert.Equal(t, "IN", item.Dimensions.Units)
	assert.Equal(t, 12.0, item.Dimensions.Length)
	require.NotNil(t, item.DeclaredValue)
	assert.Equal(t, "USD", item.DeclaredValue.Currency)
	assert.Equal(t, 250.0, item.DeclaredValue.Amount)
	assert.Empty(t, rateBody.RequestedShipment.ShipDateStamp)
}

func TestFedExClient_GetRates_RateRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token" {
			writeFedExToken(t, w)
			return
		}
		http.Error(w, `{"errors":[{"code":"RATE.ERROR","message":"Origin postal code missing"}]}`, http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := newTestFedExClient(t, srv)
	_, err := client.GetRates(context.Background(), models.ShipmentSpec{WeightLb: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateRequest)
	assert.Contains(t, err.Error(), "Origin postal code missing")
}

func TestFedExClient_GetRates_MissingCredentials(t *testing.T) {
	client := NewFedExClient(config.CarrierCredentials{}, productionEndpoints, 0, logger.Nop())

	_, err := client.GetRates(context.Background(), models.ShipmentSpec{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestFedExClient_Name(t *testing.T) {
	client := NewFedExClient(fedexTestCreds, productionEndpoints, 0, logger.Nop())
	assert.Equal(t, models.CarrierFedEx, client.Name())
}

// ─────────────────────────────────────────────
// Transit-time parsing
// ─────────────────────────────────────────────

func TestParseTransitDays(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"ONE_DAY", 1},
		{"TWO_DAYS", 2},
		{"THREE_DAYS", 3},
		{"SEVEN_DAYS", 7},
		{"NEXT_DAY", 0},   // not a cardinal word
		{"EIGHT_DAYS", 0}, // outside ONE..SEVEN
		{"TWO_WEEKS", 0},
		{"TWO", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTransitDays(tt.token))
		})
	}
}
