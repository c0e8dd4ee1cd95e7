package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameMissionsCompleted = "impulsa_missions_completed_total"
	MetricNameQuizFailures      = "impulsa_quiz_failures_total"
	MetricNameEvidenceReviewed  = "impulsa_evidence_reviewed_total"
	MetricNamePointsAwarded     = "impulsa_points_awarded_total"
	MetricNameCoinsAwarded      = "impulsa_coins_awarded_total"
	MetricNameCoinsSpent        = "impulsa_coins_spent_total"
	MetricNameRedemptions       = "impulsa_redemptions_total"
	MetricNameLeagueRollovers   = "impulsa_league_rollovers_total"
	MetricNameLeaderboardSize   = "impulsa_leaderboard_size"
	MetricNameJobRuns           = "impulsa_job_runs_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextMissionsCompleted = "Total number of missions completed"
	HelpTextQuizFailures      = "Total number of failed quiz attempts"
	HelpTextEvidenceReviewed  = "Total number of evidence review decisions"
	HelpTextPointsAwarded     = "Total points credited to participants"
	HelpTextCoinsAwarded      = "Total coins credited to participants"
	HelpTextCoinsSpent        = "Total coins spent on rewards"
	HelpTextRedemptions       = "Total number of redemption attempts by outcome"
	HelpTextLeagueRollovers   = "Total number of weekly league rollovers performed"
	HelpTextLeaderboardSize   = "Number of ranked members in the last served leaderboard"
	HelpTextJobRuns           = "Total number of scheduled job runs by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelSource  = "source"
	LabelOutcome = "outcome"
	LabelLeague  = "league"
	LabelJob     = "job"
	LabelResult  = "result"
)

// Job results
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Redemption outcomes
const (
	OutcomeRedeemed          = "redeemed"
	OutcomeInsufficientCoins = "insufficient_coins"
	OutcomeOutOfStock        = "out_of_stock"
	OutcomeExpired           = "expired"
	OutcomeError             = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"
