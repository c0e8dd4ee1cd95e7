package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	MissionsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsCompleted,
			Help: HelpTextMissionsCompleted,
		},
		[]string{LabelType, LabelSource},
	)

	QuizFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuizFailures,
			Help: HelpTextQuizFailures,
		},
	)

	EvidenceReviewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvidenceReviewed,
			Help: HelpTextEvidenceReviewed,
		},
		[]string{LabelStatus},
	)

	PointsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePointsAwarded,
			Help: HelpTextPointsAwarded,
		},
	)

	CoinsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsAwarded,
			Help: HelpTextCoinsAwarded,
		},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	Redemptions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRedemptions,
			Help: HelpTextRedemptions,
		},
		[]string{LabelOutcome},
	)

	LeagueRollovers = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeagueRollovers,
			Help: HelpTextLeagueRollovers,
		},
	)

	LeaderboardSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameLeaderboardSize,
			Help: HelpTextLeaderboardSize,
		},
		[]string{LabelLeague},
	)
)

// Job Metrics
var (
	JobRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelResult},
	)
)

// RecordRedemption counts one redemption attempt by outcome
func RecordRedemption(outcome string) {
	Redemptions.WithLabelValues(outcome).Inc()
}
