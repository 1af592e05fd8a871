package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"club-ads/internal/config/configs"
	"club-ads/internal/core/port"
)

// Client talks to the payment provider's charge API.
type Client struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
}

var _ port.PaymentGateway = (*Client)(nil)

// NewClient creates a gateway client from cfg.
func NewClient(cfg configs.Payment) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		currency:   cfg.Currency,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type chargeRequest struct {
	Amount      decimal.Decimal   `json:"amount"`
	Currency    string            `json:"currency"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata"`
}

type chargeResponse struct {
	Reference   string `json:"reference"`
	CheckoutURL string `json:"checkout_url"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateCharge opens a charge for the campaign budget. Every non-2xx
// answer is reported as port.ErrPaymentFailure.
func (c *Client) CreateCharge(ctx context.Context, req port.ChargeRequest) (*port.Charge, error) {
	currency := req.Currency
	if currency == "" {
		currency = c.currency
	}
	data, err := json.Marshal(chargeRequest{
		Amount:      req.Amount,
		Currency:    currency,
		Description: req.Description,
		Metadata: map[string]string{
			"campaign_id":   fmt.Sprint(req.CampaignID),
			"advertiser_id": req.AdvertiserID,
		},
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/charges", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("create charge: %v: %w", err, port.ErrPaymentFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		if json.Unmarshal(body, &e) != nil || e.Error == "" {
			e.Error = resp.Status
		}
		return nil, fmt.Errorf("create charge: %s: %w", e.Error, port.ErrPaymentFailure)
	}

	var out chargeResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode charge: %v: %w", err, port.ErrPaymentFailure)
	}
	if out.Reference == "" {
		return nil, fmt.Errorf("create charge: empty reference: %w", port.ErrPaymentFailure)
	}
	return &port.Charge{Reference: out.Reference, CheckoutURL: out.CheckoutURL}, nil
}
