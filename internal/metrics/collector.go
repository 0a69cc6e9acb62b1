// Package metrics exposes Prometheus collectors for outbound calls and request
// dispatch.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/cyphera/eth-gas-gateway/internal/apierrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gas_gateway"

// Collector owns a private registry so tests and multiple servers do not
// collide on the default registerer.
type Collector struct {
	registry *prometheus.Registry

	chainCalls    *prometheus.CounterVec
	chainDuration *prometheus.HistogramVec

	httpRequests *prometheus.CounterVec
	httpErrors   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dispatches *prometheus.CounterVec
}

// NewCollector creates and registers all collectors
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		chainCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "calls_total",
			Help:      "JSON-RPC calls issued to the Ethereum node",
		}, []string{"method", "outcome"}),
		chainDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "chain",
			Name:      "call_duration_seconds",
			Help:      "Latency of JSON-RPC calls to the Ethereum node",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "requests_total",
			Help:      "Outbound HTTP requests by status code",
		}, []string{"method", "path", "status"}),
		httpErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "errors_total",
			Help:      "Outbound HTTP requests that failed before a response",
		}, []string{"method", "path"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of outbound HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Gas estimate requests by handling mode and outcome",
		}, []string{"mode", "outcome"}),
	}

	c.registry.MustRegister(
		c.chainCalls,
		c.chainDuration,
		c.httpRequests,
		c.httpErrors,
		c.httpDuration,
		c.dispatches,
		prometheus.NewGoCollector(),
	)

	return c
}

// Registry returns the registry backing this collector
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordChainCall records one JSON-RPC call
func (c *Collector) RecordChainCall(method string, duration time.Duration, err error) {
	c.chainCalls.WithLabelValues(method, outcome(err)).Inc()
	c.chainDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordDispatch records the handling mode chosen for a request and how it ended
func (c *Collector) RecordDispatch(mode string, err error) {
	c.dispatches.WithLabelValues(mode, outcome(err)).Inc()
}

// RecordRequestDuration implements the HTTP client metrics hook
func (c *Collector) RecordRequestDuration(method, path string, statusCode int, duration time.Duration) {
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordRequestCount implements the HTTP client metrics hook
func (c *Collector) RecordRequestCount(method, path string, statusCode int) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// RecordRequestError implements the HTTP client metrics hook
func (c *Collector) RecordRequestError(method, path string) {
	c.httpErrors.WithLabelValues(method, path).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	if apiErr, ok := apierrors.As(err); ok {
		return string(apiErr.Kind)
	}
	return "error"
}
