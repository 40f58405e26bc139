package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Gameplay metric names
const (
	MetricNameActionsTotal       = "game_actions_total"
	MetricNameItemsGenerated     = "items_generated_total"
	MetricNameItemsSold          = "items_sold_total"
	MetricNameItemsCrafted       = "items_crafted_total"
	MetricNameMoneyEarned        = "money_earned_total"
	MetricNameDaysSimulated      = "days_simulated_total"
	MetricNameSnapshotOperations = "snapshot_operations_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Gameplay metric help text
const (
	HelpTextActionsTotal       = "Total number of game actions performed"
	HelpTextItemsGenerated     = "Total number of items produced by activity rewards"
	HelpTextItemsSold          = "Total number of items sold"
	HelpTextItemsCrafted       = "Total number of items crafted"
	HelpTextMoneyEarned        = "Total money earned from sales"
	HelpTextDaysSimulated      = "Total number of in-game days simulated"
	HelpTextSnapshotOperations = "Total number of snapshot save/load operations"
)

// Metric labels
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelAction   = "action"
	LabelActivity = "activity"
	LabelItem     = "item"
	LabelResult   = "result"
	LabelOp       = "op"
)

// HTTPLatencyBuckets are the histogram buckets for request latency.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}
