package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_webhook_events_total",
			Help: "Zoho webhook events by type and outcome",
		},
		[]string{"event_type", "outcome"},
	)

	RateWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_rate_writes_total",
			Help: "Exchange rate upserts by currency and outcome",
		},
		[]string{"currency", "outcome"},
	)

	RateFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_rate_fallbacks_total",
			Help: "Tracked currencies served from static defaults after a provider fetch",
		},
		[]string{"currency"},
	)
)
