// Package metrics exposes the run counters on a Prometheus endpoint.
package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsScheduled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oddsweep_events_scheduled_total",
		Help: "Events the schedule source announced.",
	}, []string{"league"})

	EventsMatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oddsweep_events_matched_total",
		Help: "Book listings matched to a scheduled event.",
	}, []string{"league", "book"})

	ListingsUnmatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oddsweep_listings_unmatched_total",
		Help: "Book listings that matched no scheduled event.",
	}, []string{"league", "book"})

	PicksScraped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oddsweep_picks_scraped_total",
		Help: "Picks scraped from event pages.",
	}, []string{"league", "book"})

	ScrapeErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "oddsweep_scrape_errors_total",
		Help: "Recovered scrape errors by scope.",
	}, []string{"book", "scope"})

	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "oddsweep_run_duration_seconds",
		Help:    "Wall time of a full scrape run.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 8),
	}, []string{"league"})
)

// Serve exposes /metrics until ctx is done. Port 0 disables the
// endpoint.
func Serve(ctx context.Context, port int) {
	if port == 0 {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("metrics server failed", "port", port, "error", err)
		}
	}()
}
