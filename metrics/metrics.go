// Package metrics exposes Prometheus counters for archive mutations and
// HTTP request latencies.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mutation outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeNotFound   = "not_found"
	OutcomeStorageErr = "storage_error"
)

// Registry holds every collector of the process.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	mutations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pvtheatres",
		Name:      "mutations_total",
		Help:      "Archive mutations by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})

	requestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pvtheatres",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latencies by route pattern.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// ObserveMutation counts one finished mutation.
func ObserveMutation(entity, operation, outcome string) {
	mutations.WithLabelValues(entity, operation, outcome).Inc()
}

// MutationCounter exposes one mutation counter, for tests.
func MutationCounter(entity, operation, outcome string) prometheus.Counter {
	return mutations.WithLabelValues(entity, operation, outcome)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records the latency of every request under its chi route pattern,
// which keeps the label set bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		requestDuration.WithLabelValues(r.Method, route, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
