package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Label values
const (
	StatusSent   = "sent"
	StatusFailed = "failed"

	OutcomeValid     = "valid"
	OutcomeInvalid   = "invalid"
	OutcomeTransient = "transient"

	ClaimWon      = "claimed"
	ClaimConflict = "conflict"
	ClaimError    = "error"
	ClaimRecovery = "recovered"
)

var (
	CampaignClaimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campaign_claims_total", Help: "Scheduler claim attempts"},
		[]string{"result"},
	)
	CampaignMessagesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "campaign_messages_total", Help: "Campaign messages by delivery status"},
		[]string{"status"},
	)
	ContactValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "contact_validations_total", Help: "Contact existence checks by outcome"},
		[]string{"outcome"},
	)
	RateLimitWaitSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "campaign_rate_limit_wait_seconds",
			Help:    "Time a send waited on the per-company window",
			Buckets: []float64{1, 5, 10, 30, 60, 300, 900, 1800, 3600},
		},
	)
)

func init() {
	prometheus.MustRegister(
		CampaignClaimsTotal, CampaignMessagesTotal, ContactValidationsTotal, RateLimitWaitSeconds,
	)
}

func Handler() http.Handler { return promhttp.Handler() }
