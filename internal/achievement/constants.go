package achievement

const LogMsgSaved = "Achievement saved"

// Error messages
const (
	ErrMsgTitleRequired = "achievement title is required"
	ErrMsgNegativeGoal  = "achievement thresholds cannot be negative"
	ErrMsgCountsFailed  = "failed to load activity counts: %w"
)
