package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"badgeserver/internal/loadtest"
	"badgeserver/internal/loadtest/attack"
	"badgeserver/internal/loadtest/warmup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadtest.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	paths := cfg.VendorPaths
	if cfg.BenchType != "generic" {
		paths, err = warmup.Run(ctx, cfg.BaseURL, cfg.VendorPaths, warmup.Options{
			BypassSecret:       cfg.RateLimitBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
			Timeout:            cfg.WarmupTimeout,
			Progress:           os.Stdout,
		})
		if err != nil {
			return fmt.Errorf("warm-up failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		VendorPaths:        paths,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		VendorRatio:        cfg.VendorRatio,
		ConditionalRatio:   cfg.ConditionalRatio,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	}, os.Stdout)
}
