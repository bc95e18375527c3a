// Package metrics exposes Prometheus collectors for the HTTP layer and
// the business events worth alerting on.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts HTTP requests by method, route and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veugravata_http_requests_total",
		Help: "HTTP requests processed, partitioned by method, route and status code.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes request latency per route.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "veugravata_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// RSVPSubmissions counts public RSVP submissions by resulting status.
	RSVPSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veugravata_rsvp_submissions_total",
		Help: "Public RSVP submissions, partitioned by resulting status.",
	}, []string{"status"})

	// ContributionsConfirmed counts settled gift contributions.
	ContributionsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "veugravata_contributions_confirmed_total",
		Help: "Gift contributions confirmed by the payment webhook.",
	})

	// InvitationsSent counts invitation delivery attempts by outcome.
	InvitationsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "veugravata_invitations_sent_total",
		Help: "Invitation delivery attempts, partitioned by outcome.",
	}, []string{"outcome"})
)

// Serve exposes /metrics on its own listener so the scrape endpoint
// never mixes with public traffic. Blocks; run in a goroutine.
func Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	slog.Info("Metrics listener starting", "address", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Metrics listener failed", "error", err)
	}
}
