package worker

// Log messages - Worker Pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgQueueFull       = "Worker queue full, job dropped"
)

// Log messages - Rollover Job
const (
	LogMsgRolloverStarting  = "League rollover starting"
	LogMsgRolloverCompleted = "League rollover completed"
	LogMsgRolloverSkipped   = "League rollover skipped, cycle already current"
	LogMsgRolloverFailed    = "League rollover failed"
)

// JobNameRollover identifies the rollover job in logs and metrics
const JobNameRollover = "league_rollover"

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
