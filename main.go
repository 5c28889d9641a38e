package main

import (
	"cmp"
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/minio"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/net/netutil"

	"badgeserver/internal/analytics"
	"badgeserver/internal/cache"
	"badgeserver/internal/config"
	"badgeserver/internal/etag"
	"badgeserver/internal/handler"
	"badgeserver/internal/metrics"
	custommiddleware "badgeserver/internal/middleware"
	"badgeserver/internal/render"
	"badgeserver/internal/repository"
	"badgeserver/internal/router"
	"badgeserver/internal/service"
	"badgeserver/internal/upstream"
	"badgeserver/internal/validation"
	"badgeserver/internal/vendor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	start := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	endpoints, err := resolveEndpoints(&cfg.Upstream)
	if err != nil {
		return fmt.Errorf("invalid upstream override: %w", err)
	}

	var pool *pgxpool.Pool
	if cfg.Analytics.Backend == "postgres" || cfg.Metrics.Enabled {
		pool, err = repository.NewPool(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()
	}

	store, err := newAnalyticsStore(ctx, cfg, pool)
	if err != nil {
		return fmt.Errorf("failed to create analytics store: %w", err)
	}

	counters := analytics.NewCounters()
	persister := analytics.NewPersister(counters, store, cfg.Analytics.SaveInterval, logger)
	persister.Load(ctx)
	persister.Start(ctx)
	defer persister.Close()

	badgeCache, err := cache.New(cfg.Cache.MaxSizePow2, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("failed to create cache: %w", err)
	}
	defer badgeCache.Close()

	prom := metrics.NewPrometheus()
	var copier metrics.Copier
	if pool != nil {
		copier = pool
	}
	recorder := metrics.NewRecorder(copier, prom, &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	go collectInfraMetrics(ctx, recorder, pool, badgeCache)

	captures := validation.NewCaptureValidator(
		cfg.Validation.MaxPathLength,
		cfg.Validation.MaxCaptureLength,
		"branch",
	)
	fetcher := upstream.NewClient(cfg.Upstream.Timeout, cfg.Upstream.MaxBodyBytes, cfg.Upstream.UserAgent)
	badges := service.NewBadgeService(badgeCache, fetcher, counters, captures, recorder, logger)

	tags, err := etag.New(start)
	if err != nil {
		return fmt.Errorf("failed to create etag generator: %w", err)
	}

	h := handler.New(
		badges,
		router.New(vendor.NewRegistry(endpoints)),
		captures,
		render.NewSVGRenderer(),
		render.NewRasterizer(),
		tags,
		cfg.App.SiteURL,
		start,
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.Metrics(recorder))
	e.Use(custommiddleware.RateLimit(&cfg.RateLimit, logger))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(prom.Handler()))

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.Int("max_connections", cfg.Server.MaxConnections),
		slog.String("analytics_backend", cfg.Analytics.Backend))

	httpListener, err := net.Listen("tcp", httpAddr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		httpListener = netutil.LimitListener(httpListener, cfg.Server.MaxConnections)
	}

	httpServer := newServer(e)
	go func() {
		if err := httpServer.Serve(httpListener); err != nil && err != http.ErrServerClosed {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		tlsListener, err := newTLSListener(cfg)
		if err != nil {
			return err
		}
		logger.Info("starting HTTPS server", slog.Int("port", cfg.TLS.Port))

		httpsServer = newServer(e)
		go func() {
			if err := httpsServer.Serve(tlsListener); err != nil && err != http.ErrServerClosed {
				logger.Error("https server error", slog.String("error", err.Error()))
			}
		}()
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func newTLSListener(cfg *config.Config) (net.Listener, error) {
	httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
	ln, err := net.Listen("tcp", httpsAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTPS listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		ln = netutil.LimitListener(ln, cfg.Server.MaxConnections)
	}

	cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
	if err != nil {
		_ = ln.Close()
		return nil, fmt.Errorf("failed to load TLS certificate: %w", err)
	}

	return tls.NewListener(ln, &tls.Config{
		MinVersion:       tls.VersionTLS13,
		Certificates:     []tls.Certificate{cert},
		CurvePreferences: []tls.CurveID{tls.X25519},
	}), nil
}

// resolveEndpoints validates the configured upstream overrides and lays them
// over the public defaults.
func resolveEndpoints(cfg *config.UpstreamConfig) (vendor.Endpoints, error) {
	overrides := map[string]string{
		"travis":        cfg.TravisURL,
		"gittip":        cfg.GittipURL,
		"packagist":     cfg.PackagistURL,
		"npm-downloads": cfg.NPMDownloadsURL,
		"npm-registry":  cfg.NPMRegistryURL,
		"rubygems":      cfg.RubyGemsURL,
		"pypi":          cfg.PyPIURL,
		"coveralls":     cfg.CoverallsURL,
		"codeclimate":   cfg.CodeClimateURL,
		"gemnasium":     cfg.GemnasiumURL,
		"hackage":       cfg.HackageURL,
		"cocoapods":     cfg.CocoaPodsURL,
	}
	if err := validation.NewURLValidator(cfg.AllowPrivateIPs).ValidateEndpoints(overrides); err != nil {
		return vendor.Endpoints{}, err
	}

	d := vendor.DefaultEndpoints()
	return vendor.Endpoints{
		Travis:       cmp.Or(cfg.TravisURL, d.Travis),
		Gittip:       cmp.Or(cfg.GittipURL, d.Gittip),
		Packagist:    cmp.Or(cfg.PackagistURL, d.Packagist),
		NPMDownloads: cmp.Or(cfg.NPMDownloadsURL, d.NPMDownloads),
		NPMRegistry:  cmp.Or(cfg.NPMRegistryURL, d.NPMRegistry),
		RubyGems:     cmp.Or(cfg.RubyGemsURL, d.RubyGems),
		PyPI:         cmp.Or(cfg.PyPIURL, d.PyPI),
		Coveralls:    cmp.Or(cfg.CoverallsURL, d.Coveralls),
		CodeClimate:  cmp.Or(cfg.CodeClimateURL, d.CodeClimate),
		Gemnasium:    cmp.Or(cfg.GemnasiumURL, d.Gemnasium),
		Hackage:      cmp.Or(cfg.HackageURL, d.Hackage),
		CocoaPods:    cmp.Or(cfg.CocoaPodsURL, d.CocoaPods),
	}, nil
}

func newAnalyticsStore(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (analytics.Store, error) {
	switch cfg.Analytics.Backend {
	case "file":
		path, err := filepath.Abs(cfg.Analytics.Path)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", cfg.Analytics.Path, err)
		}
		return analytics.NewFileStore(billy.NewLocal(), filepath.ToSlash(path)), nil
	case "s3":
		s3 := cfg.Analytics.S3
		objects, err := minio.NewMinIO(minio.Config{
			Endpoint:  s3.Endpoint,
			Bucket:    s3.Bucket,
			AccessKey: s3.AccessKey,
			SecretKey: s3.SecretKey,
			UseSSL:    s3.UseSSL,
			Prefix:    s3.Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("connect to object store: %w", err)
		}
		return analytics.NewFileStore(objects, "analytics/"+cfg.App.InstanceID+".json"), nil
	case "postgres":
		repo, err := repository.NewAnalyticsRepository(ctx, pool, cfg.App.InstanceID)
		if err != nil {
			return nil, err
		}
		return repo, nil
	default:
		return nil, fmt.Errorf("unknown analytics backend %q", cfg.Analytics.Backend)
	}
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, pool *pgxpool.Pool, badgeCache *cache.BadgeCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cacheHits, cacheMisses, cacheRatio := badgeCache.Stats()

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			m := metrics.InfraMetric{
				Time:          time.Now(),
				CacheHits:     int64(cacheHits),
				CacheMisses:   int64(cacheMisses),
				CacheHitRatio: cacheRatio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			}
			if pool != nil {
				poolStat := pool.Stat()
				m.PoolAcquired = int(poolStat.AcquiredConns())
				m.PoolIdle = int(poolStat.IdleConns())
				m.PoolTotal = int(poolStat.TotalConns())
				m.PoolMax = int(poolStat.MaxConns())
			}
			recorder.RecordInfra(m)
		}
	}
}
