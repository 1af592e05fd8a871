package configs

import "time"

// Redis configures the event sink and the unique viewer tracker. When
// Enabled is false events are only logged and unique views are counted
// in process.
type Redis struct {
	Enabled   bool          `env:"ENABLED" envDefault:"false"`
	Addr      string        `env:"ADDRESS" envDefault:"localhost:6379"`
	Password  string        `env:"PASSWORD"`
	DB        int           `env:"DB" envDefault:"0"`
	EventsKey string        `env:"EVENTS_KEY" envDefault:"ads:events"`
	UniqueTTL time.Duration `env:"UNIQUE_TTL" envDefault:"720h"`
}
