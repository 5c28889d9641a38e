package attack

import (
	"crypto/tls"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

type Config struct {
	BaseURL            string
	VendorPaths        []string
	Rate               int
	Duration           time.Duration
	VendorRatio        float64
	ConditionalRatio   float64
	Type               string
	RateLimitBypass    string
	InsecureSkipVerify bool
	Connections        int
	MaxWorkers         uint64
}

// NewTargeter picks the request mix for an attack type.
func NewTargeter(cfg *Config) (vegeta.Targeter, error) {
	switch cfg.Type {
	case "generic":
		return GenericTargeter(cfg.BaseURL, cfg.ConditionalRatio, cfg.RateLimitBypass), nil
	case "vendor":
		if len(cfg.VendorPaths) == 0 {
			return nil, fmt.Errorf("vendor attack requires vendor paths")
		}
		return VendorTargeter(cfg.BaseURL, cfg.VendorPaths, cfg.RateLimitBypass), nil
	case "mixed":
		if len(cfg.VendorPaths) == 0 {
			return nil, fmt.Errorf("mixed attack requires vendor paths")
		}
		return MixedTargeter(cfg.BaseURL, cfg.VendorPaths, cfg.VendorRatio, cfg.ConditionalRatio, cfg.RateLimitBypass), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

func Run(cfg *Config, out io.Writer) error {
	targeter, err := NewTargeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
