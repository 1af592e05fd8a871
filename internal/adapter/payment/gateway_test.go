package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"club-ads/internal/config/configs"
	"club-ads/internal/core/port"
)

func TestClient_CreateCharge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		var body chargeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.Amount.Equal(decimal.RequireFromString("150.50")))
		assert.Equal(t, "GBP", body.Currency)
		assert.Equal(t, "12", body.Metadata["campaign_id"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reference":"ch_123","checkout_url":"https://pay.example/ch_123"}`))
	}))
	defer srv.Close()

	c := NewClient(configs.Payment{BaseURL: srv.URL + "/", APIKey: "secret", Currency: "GBP", Timeout: time.Second})
	charge, err := c.CreateCharge(context.Background(), port.ChargeRequest{
		CampaignID:   12,
		AdvertiserID: "adv-1",
		Amount:       decimal.RequireFromString("150.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_123", charge.Reference)
	assert.Equal(t, "https://pay.example/ch_123", charge.CheckoutURL)
}

func TestClient_CreateChargeRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":"card declined"}`))
	}))
	defer srv.Close()

	c := NewClient(configs.Payment{BaseURL: srv.URL, Currency: "GBP"})
	_, err := c.CreateCharge(context.Background(), port.ChargeRequest{CampaignID: 1, Amount: decimal.NewFromInt(10)})
	require.ErrorIs(t, err, port.ErrPaymentFailure)
	assert.Contains(t, err.Error(), "card declined")
}

func TestClient_CreateChargeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(configs.Payment{BaseURL: srv.URL, Timeout: 100 * time.Millisecond})
	_, err := c.CreateCharge(context.Background(), port.ChargeRequest{CampaignID: 1, Amount: decimal.NewFromInt(10)})
	assert.ErrorIs(t, err, port.ErrPaymentFailure)
}

func TestSandbox_CreateCharge(t *testing.T) {
	s := NewSandbox("")
	a, err := s.CreateCharge(context.Background(), port.ChargeRequest{CampaignID: 1})
	require.NoError(t, err)
	b, err := s.CreateCharge(context.Background(), port.ChargeRequest{CampaignID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, a.Reference, b.Reference)
	assert.True(t, strings.HasPrefix(a.Reference, "sbx_"))
	assert.True(t, strings.HasSuffix(a.CheckoutURL, a.Reference))
}
