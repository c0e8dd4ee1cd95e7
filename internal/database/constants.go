package database

const (
	// DefaultMinConnections is kept open once the pool is warm
	DefaultMinConnections = 2

	// ApplicationName shows up in pg_stat_activity
	ApplicationName = "impulsa-api"
)

// Session parameters set on every pooled connection
const (
	RuntimeParamTimeZone         = "timezone"
	RuntimeParamApplicationName  = "application_name"
	RuntimeParamStatementTimeout = "statement_timeout"
)

const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToMigrate         = "failed to run migrations"
)

const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to database"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgMigrationRolledBack             = "Rolled back migration"
)
