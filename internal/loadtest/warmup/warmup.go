// Package warmup primes the vendor badge cache before an attack so the
// measured run is not dominated by upstream latency.
package warmup

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

const bypassHeader = "X-Rate-Limit-Bypass"

type Options struct {
	BypassSecret       string
	InsecureSkipVerify bool
	Timeout            time.Duration
	Progress           io.Writer
}

// Run requests every path once and returns the ones the server answered with
// 200.
func Run(ctx context.Context, baseURL string, paths []string, opts Options) ([]string, error) {
	numWorkers := runtime.NumCPU() * 2
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	fmt.Fprintf(progress, "Warming %d badges (workers: %d)...\n", len(paths), numWorkers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        numWorkers * 2,
			MaxIdleConnsPerHost: numWorkers * 2,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}

	ok := make([]bool, len(paths))
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(numWorkers)

	for i, path := range paths {
		g.Go(func() error {
			status, err := fetch(gctx, client, baseURL+path, opts.BypassSecret)
			if err != nil {
				return fmt.Errorf("failed to warm %s: %w", path, err)
			}
			ok[i] = status == http.StatusOK
			fmt.Fprintf(progress, "\rProgress: %d/%d", done.Add(1), len(paths))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	warmed := make([]string, 0, len(paths))
	for i, path := range paths {
		if ok[i] {
			warmed = append(warmed, path)
		}
	}
	fmt.Fprintf(progress, "\nWarm-up complete: %d/%d badges\n", len(warmed), len(paths))
	return warmed, nil
}

func fetch(ctx context.Context, client *http.Client, url, bypassSecret string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	if bypassSecret != "" {
		req.Header.Set(bypassHeader, bypassSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
