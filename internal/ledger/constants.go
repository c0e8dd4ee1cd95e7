package ledger

// Log messages
const (
	LogMsgParticipantRegistered = "Participant registered"
	LogMsgCreditApplied         = "Credit applied"
	LogMsgCreditFailed          = "Failed to apply credit"
	LogMsgPublishFailed         = "Failed to publish ledger event"
)

// Error messages
const (
	ErrMsgNameRequired     = "name is required"
	ErrMsgEmailRequired    = "email is required"
	ErrMsgCityRequired     = "city is required"
	ErrMsgNegativeCredit   = "credit amounts cannot be negative"
	ErrMsgBeginTxFailed    = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed   = "failed to commit transaction: %w"
	ErrMsgCreateFailed     = "failed to create participant: %w"
	ErrMsgCountsFailed     = "failed to load activity counts: %w"
	ErrMsgAchievementsFail = "failed to load achievements: %w"
)

// percentScale converts ratios to percentages
const percentScale = 100
