package configs

// Cache configures the in-process zone cache.
type Cache struct {
	// ZoneTTLSeconds bounds how stale a cached zone may be.
	ZoneTTLSeconds int `env:"ZONE_TTL_SECONDS" envDefault:"30"`
	// SizeBytes is the freecache arena size. freecache enforces a 512KB
	// minimum.
	SizeBytes int `env:"SIZE_BYTES" envDefault:"1048576"`
}
