package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Verifications counts initData checks by result ("ok" or the rejection reason).
	Verifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_initdata_verifications_total",
			Help: "Total number of initData verifications by result",
		},
		[]string{"result"},
	)

	// VerifyLatency tracks how long a single verification takes.
	VerifyLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_initdata_verify_seconds",
			Help:    "Latency of initData verification",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_http_requests_total",
			Help: "Total number of HTTP requests by path and status code",
		},
		[]string{"path", "code"},
	)

	// BotLinks counts deep links handed out by the companion bot.
	BotLinks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_bot_links_total",
			Help: "Total number of deep links sent by the bot by mode",
		},
		[]string{"mode"},
	)
)
