package assistant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chatRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_chat_requests_total",
			Help: "Total number of answered chat requests by answer source",
		},
		[]string{"source"},
	)

	chatFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_chat_failures_total",
			Help: "Total number of failed chat requests by reason",
		},
		[]string{"reason"},
	)

	chatDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "assistant_chat_duration_seconds",
			Help: "Duration of chat request handling in seconds",
		},
	)
)
