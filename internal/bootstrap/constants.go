package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9

	// ServiceName tags every log line and trace
	ServiceName = "impulsa-api"
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Impulsa API"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgBackendReady      = "Storage backend ready"
	LogMsgBlobStoreReady    = "Blob store ready"
	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedMigrate     = "failed to run migrations"
	ErrMsgFailedCreateBlobs = "failed to create blob store"
	ErrMsgUnknownBackend    = "unknown storage backend %q"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	LogMsgSyncingCatalog    = "Syncing catalog from YAML config..."
	LogMsgCatalogSynced     = "Catalog synced successfully"
	LogMsgCatalogMissing    = "Catalog file not found, skipping seed"
	ErrMsgFailedLoadCatalog = "failed to load catalog"
	ErrMsgFailedSyncCatalog = "failed to sync catalog to storage"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgNotifierRegistered         = "Notification subscriber registered"
	LogMsgRedisNotifierEnabled       = "Redis notifications enabled"
	LogMsgDiscordNotifierEnabled     = "Discord notifications enabled"
	LogMsgNotifierUnavailable        = "Notifier unavailable, continuing without it"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Service Wiring
// =============================================================================

const (
	ErrMsgFailedCreateLeagues  = "failed to create league service"
	ErrMsgFailedCreateSchedule = "failed to schedule rollover"
	LogMsgTelemetryUnavailable = "Tracing exporter unavailable, continuing without tracing"

	// WorkerCount and WorkerQueueSize size the background job pool
	WorkerCount     = 2
	WorkerQueueSize = 16
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgSchedulerStopFailed        = "Scheduler shutdown failed"
	LogMsgTelemetryShutdownFailed    = "Telemetry shutdown failed"
	LogMsgCloseFailed                = "Resource close failed"
)
