package metrics

import (
	"context"
	"net/http"
	"time"

	cache "github.com/goforj/flexcache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flexcache"

// Collector records cache operations into its own Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	backendInfo       *prometheus.GaugeVec
}

// NewCollector creates a collector with the default Go and process
// collectors registered alongside the cache metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	c := &Collector{
		registry: registry,

		operationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "operations_total",
				Help:      "Total number of cache operations",
			},
			[]string{"op", "driver", "result"},
		),

		operationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "operation_duration_seconds",
				Help:      "Duration of cache operations in seconds",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"op", "driver"},
		),

		backendInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "backend_info",
				Help:      "Backend selected at startup (1 for the active driver)",
			},
			[]string{"driver"},
		),
	}

	registry.MustRegister(c.operationsTotal, c.operationDuration, c.backendInfo)
	return c
}

// OnCacheOp implements cache.Observer.
func (c *Collector) OnCacheOp(_ context.Context, op string, _ string, hit bool, err error, dur time.Duration, driver cache.Driver) {
	c.operationsTotal.WithLabelValues(op, string(driver), result(op, hit, err)).Inc()
	c.operationDuration.WithLabelValues(op, string(driver)).Observe(dur.Seconds())
}

// SetBackend records the driver chosen at startup.
func (c *Collector) SetBackend(driver cache.Driver) {
	c.backendInfo.Reset()
	c.backendInfo.WithLabelValues(string(driver)).Set(1)
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func result(op string, hit bool, err error) string {
	switch {
	case err != nil:
		return "error"
	case op != "get":
		return "ok"
	case hit:
		return "hit"
	default:
		return "miss"
	}
}
