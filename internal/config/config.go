package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server     ServerConfig
	TLS        TLSConfig
	App        AppConfig
	Cache      CacheConfig
	Upstream   UpstreamConfig
	Analytics  AnalyticsConfig
	Database   DatabaseConfig
	Metrics    MetricsConfig
	RateLimit  RateLimitConfig
	Validation ValidationConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"10000"`
}

type TLSConfig struct {
	Enabled  bool   `env:"TLS_ENABLED" envDefault:"false"`
	Port     int    `env:"TLS_PORT" envDefault:"8443"`
	CertFile string `env:"TLS_CERT_FILE"`
	KeyFile  string `env:"TLS_KEY_FILE"`
}

type AppConfig struct {
	// SiteURL is where the root path redirects.
	SiteURL string `env:"SITE_URL" envDefault:"http://shields.io"`
	// InstanceID names this process in persisted analytics and ETags.
	InstanceID string `env:"INSTANCE_ID" envDefault:"main"`
}

type CacheConfig struct {
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"26"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"60s"`
}

type UpstreamConfig struct {
	Timeout         time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"5s"`
	MaxBodyBytes    int64         `env:"UPSTREAM_MAX_BODY_BYTES" envDefault:"4194304"`
	UserAgent       string        `env:"UPSTREAM_USER_AGENT" envDefault:"badgeserver"`
	AllowPrivateIPs bool          `env:"UPSTREAM_ALLOW_PRIVATE_IPS" envDefault:"false"`

	// Base URL overrides; empty keeps the public service.
	TravisURL       string `env:"UPSTREAM_TRAVIS_URL"`
	GittipURL       string `env:"UPSTREAM_GITTIP_URL"`
	PackagistURL    string `env:"UPSTREAM_PACKAGIST_URL"`
	NPMDownloadsURL string `env:"UPSTREAM_NPM_DOWNLOADS_URL"`
	NPMRegistryURL  string `env:"UPSTREAM_NPM_REGISTRY_URL"`
	RubyGemsURL     string `env:"UPSTREAM_RUBYGEMS_URL"`
	PyPIURL         string `env:"UPSTREAM_PYPI_URL"`
	CoverallsURL    string `env:"UPSTREAM_COVERALLS_URL"`
	CodeClimateURL  string `env:"UPSTREAM_CODECLIMATE_URL"`
	GemnasiumURL    string `env:"UPSTREAM_GEMNASIUM_URL"`
	HackageURL      string `env:"UPSTREAM_HACKAGE_URL"`
	CocoaPodsURL    string `env:"UPSTREAM_COCOAPODS_URL"`
}

type AnalyticsConfig struct {
	// Backend is one of file, s3 or postgres.
	Backend      string        `env:"ANALYTICS_BACKEND" envDefault:"file"`
	Path         string        `env:"ANALYTICS_PATH" envDefault:"./analytics.json"`
	SaveInterval time.Duration `env:"ANALYTICS_SAVE_INTERVAL" envDefault:"10s"`
	S3           S3Config
}

type S3Config struct {
	Endpoint  string `env:"ANALYTICS_S3_ENDPOINT" envDefault:"localhost:9000"`
	Bucket    string `env:"ANALYTICS_S3_BUCKET" envDefault:"badges"`
	Prefix    string `env:"ANALYTICS_S3_PREFIX"`
	AccessKey string `env:"ANALYTICS_S3_ACCESS_KEY"`
	SecretKey string `env:"ANALYTICS_S3_SECRET_KEY"`
	UseSSL    bool   `env:"ANALYTICS_S3_USE_SSL" envDefault:"true"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"badges"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns int32  `env:"POSTGRES_MIN_CONNS" envDefault:"1"`
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

type MetricsConfig struct {
	// Enabled turns on the Postgres sink; Prometheus counters are always kept.
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"10000"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"1000"`
}

type RateLimitConfig struct {
	Enabled       bool    `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"100"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"200"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type ValidationConfig struct {
	MaxPathLength    int `env:"VALIDATION_MAX_PATH_LENGTH" envDefault:"1024"`
	MaxCaptureLength int `env:"VALIDATION_MAX_CAPTURE_LENGTH" envDefault:"256"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
