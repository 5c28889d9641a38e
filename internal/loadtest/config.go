// Package loadtest holds the settings of the badge load generator.
package loadtest

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Rate               int           `env:"RATE" envDefault:"1000"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	VendorRatio        float64       `env:"VENDOR_RATIO" envDefault:"0.5"`
	ConditionalRatio   float64       `env:"CONDITIONAL_RATIO" envDefault:"0.3"`
	VendorPaths        []string      `env:"VENDOR_PATHS" envDefault:"/npm/v/express.svg,/gem/v/rails.svg,/pypi/v/requests.svg,/travis/rails/rails.svg,/packagist/dm/symfony/symfony.svg,/cocoapods/v/AFNetworking.png"`
	RateLimitBypass    string        `env:"RATE_LIMIT_BYPASS_SECRET"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	WarmupTimeout      time.Duration `env:"WARMUP_TIMEOUT" envDefault:"30s"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	MaxWorkers         uint64        `env:"MAX_WORKERS" envDefault:"0"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
