package port

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentGateway is the external service charging advertisers. The
// outcome of a charge arrives later through the payment webhook.
type PaymentGateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
}

// ChargeRequest asks the gateway to collect a campaign budget.
type ChargeRequest struct {
	CampaignID   int64
	AdvertiserID string
	Amount       decimal.Decimal
	Currency     string
	Description  string
}

// Charge is the gateway's handle for a pending charge.
type Charge struct {
	Reference   string
	CheckoutURL string
}

// PaymentNotification is a decoded payment webhook.
type PaymentNotification struct {
	EventID   string
	Reference string
	Succeeded bool
	Reason    string
}
