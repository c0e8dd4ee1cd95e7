package league

// Log messages
const (
	LogMsgJoined          = "Participant joined league"
	LogMsgRolloverSkipped = "League rollover already performed for cycle"
	LogMsgRolloverDone    = "League rollover completed"
	LogMsgRewardPaid      = "League position reward paid"
	LogMsgPublishFailed   = "Failed to publish league event"
)

// Error messages
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
	ErrMsgLockCycle      = "failed to lock league cycle: %w"
	ErrMsgCloseLeague    = "failed to close league %s: %w"
	ErrMsgCreateLeague   = "failed to create league %s: %w"
	ErrMsgPayReward      = "failed to pay league reward to %s: %w"
	ErrMsgResetXP        = "failed to reset weekly xp: %w"
	ErrMsgNoCities       = "at least one league city is required"
)
