package configs

import (
	"strings"
	"time"
)

// Engine tunes the delivery engine.
type Engine struct {
	// Store selects the campaign store: "postgres" (default) or "memory".
	Store string `env:"STORE" envDefault:"postgres"`
	// ServeTimeout bounds one serve request including its single retry.
	ServeTimeout time.Duration `env:"SERVE_TIMEOUT" envDefault:"300ms"`
	// MaxPaymentAttempts is the number of failed payments after which a
	// pending campaign is rejected.
	MaxPaymentAttempts int           `env:"MAX_PAYMENT_ATTEMPTS" envDefault:"3"`
	SweepInterval      time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
}

// InMemory reports whether the in-process store is selected.
func (c Engine) InMemory() bool {
	return strings.EqualFold(c.Store, "memory")
}
