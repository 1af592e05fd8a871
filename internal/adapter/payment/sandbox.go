package payment

import (
	"context"

	"github.com/google/uuid"

	"club-ads/internal/core/port"
)

// Sandbox issues charge references without contacting a provider. The
// charge outcome is then posted to the payment webhook by hand or by tests.
type Sandbox struct {
	checkoutBase string
}

var _ port.PaymentGateway = (*Sandbox)(nil)

func NewSandbox(checkoutBase string) *Sandbox {
	if checkoutBase == "" {
		checkoutBase = "https://sandbox.payments.local/checkout/"
	}
	return &Sandbox{checkoutBase: checkoutBase}
}

func (s *Sandbox) CreateCharge(_ context.Context, _ port.ChargeRequest) (*port.Charge, error) {
	ref := "sbx_" + uuid.NewString()
	return &port.Charge{Reference: ref, CheckoutURL: s.checkoutBase + ref}, nil
}
