package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"club-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to traces as the deployment.environment attribute.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Cache   configs.Cache    `envPrefix:"CACHE_"`
	Tracing configs.Tracing  `envPrefix:"TRACING_"`
	Auth    configs.Auth     `envPrefix:"AUTH_"`
	Payment configs.Payment  `envPrefix:"PAYMENT_"`
	Engine  configs.Engine   `envPrefix:"ENGINE_"`
}

// Load reads configuration from environment variables into a Config. A
// .env file in the working directory is loaded first when present; real
// environment variables take precedence over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
