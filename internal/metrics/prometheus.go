package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus holds the in-process collectors served on /metrics.
type Prometheus struct {
	registry  *prometheus.Registry
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	business  *prometheus.CounterVec
	cacheHits prometheus.Gauge
	cacheMiss prometheus.Gauge
	cacheRate prometheus.Gauge
	poolConns *prometheus.GaugeVec
}

func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "badge_http_requests_total",
			Help: "HTTP requests by route and status code.",
		}, []string{"method", "route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "badge_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
		business: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "badge_events_total",
			Help: "Badge resolution events.",
		}, []string{"event", "vendor"}),
		cacheHits: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "badge_cache_hits",
			Help: "Response cache hits since start.",
		}),
		cacheMiss: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "badge_cache_misses",
			Help: "Response cache misses since start.",
		}),
		cacheRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "badge_cache_hit_ratio",
			Help: "Response cache hit ratio.",
		}),
		poolConns: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "badge_db_pool_connections",
			Help: "Database pool connections by state.",
		}, []string{"state"}),
	}

	p.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.requests, p.duration, p.business,
		p.cacheHits, p.cacheMiss, p.cacheRate, p.poolConns,
	)
	return p
}

func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

func (p *Prometheus) observeHTTP(m HTTPMetric) {
	p.requests.WithLabelValues(m.Method, m.Route, strconv.Itoa(m.StatusCode)).Inc()
	p.duration.WithLabelValues(m.Route).Observe(m.DurationMs / 1000)
}

func (p *Prometheus) observeBusiness(m BusinessMetric) {
	if m.MetricName == UpstreamLatency {
		return
	}
	p.business.WithLabelValues(m.MetricName, m.Labels["vendor"]).Add(m.Value)
}

func (p *Prometheus) observeInfra(m InfraMetric) {
	p.cacheHits.Set(float64(m.CacheHits))
	p.cacheMiss.Set(float64(m.CacheMisses))
	p.cacheRate.Set(m.CacheHitRatio)
	p.poolConns.WithLabelValues("acquired").Set(float64(m.PoolAcquired))
	p.poolConns.WithLabelValues("idle").Set(float64(m.PoolIdle))
	p.poolConns.WithLabelValues("total").Set(float64(m.PoolTotal))
}
