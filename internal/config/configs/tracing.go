package configs

// Tracing configures the OpenTelemetry exporter. Tracing is disabled when
// Endpoint is empty.
type Tracing struct {
	Endpoint    string  `env:"ENDPOINT"`
	Insecure    bool    `env:"INSECURE" envDefault:"true"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"club-ads"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"0.1"`
}
