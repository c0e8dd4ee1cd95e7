package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service Configuration Values
const (
	DefaultServiceName = "impulsa-core"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environment String Values
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "production"
)

// Log Attribute Keys
const (
	AttrKeyService       = "service"
	AttrKeyVersion       = "version"
	AttrKeyEnvironment   = "environment"
	AttrKeyRequestID     = "request_id"
	AttrKeyParticipantID = "participant_id"
	AttrKeyClientIP      = "client_ip"
)
