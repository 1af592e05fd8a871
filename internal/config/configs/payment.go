package configs

import "time"

// Payment configures the payment gateway client. With an empty BaseURL the
// sandbox gateway is used.
type Payment struct {
	BaseURL  string        `env:"BASE_URL"`
	APIKey   string        `env:"API_KEY"`
	Currency string        `env:"CURRENCY" envDefault:"GBP"`
	Timeout  time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
