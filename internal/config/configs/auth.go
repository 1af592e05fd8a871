package configs

// Auth holds the secrets used to authenticate API callers and payment
// webhooks. An empty WebhookSecret disables signature checks, which is
// only meant for local development.
type Auth struct {
	JWTSecret     string `env:"JWT_SECRET" envDefault:"change-me"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}
