package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every nimbus collector. A dedicated registry keeps the
// process defaults out of tests.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	APIRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimbus_api_requests_total",
			Help: "Total Open-Meteo API requests by endpoint and outcome",
		},
		[]string{"endpoint", "status"},
	)

	APIRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "nimbus_api_request_duration_seconds",
			Help:    "Open-Meteo API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	SearchLookups = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "nimbus_search_lookups_total",
			Help: "Debounced geocoding lookups fired by the search controller",
		},
	)

	StaleResponsesDiscarded = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nimbus_stale_responses_discarded_total",
			Help: "Responses dropped because a newer request superseded them",
		},
		[]string{"kind"},
	)
)

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
}

// ObserveRequest records one upstream call
func ObserveRequest(endpoint, status string, started time.Time) {
	APIRequestsTotal.WithLabelValues(endpoint, status).Inc()
	APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(started).Seconds())
}

// Handler returns the /metrics handler for Registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is done
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
