package rewards

// Redemption code format: IMP-XXXX-XXXX
const (
	CodePrefix          = "IMP"
	CodeGroupLength     = 4
	CodeGroups          = 2
	CodeAlphabet        = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	MaxCodeAttempts     = 5
	DefaultInstructions = "Present this code to the partner to claim your reward."
)

// Log messages
const (
	LogMsgRedeemed       = "Reward redeemed"
	LogMsgRedeemRejected = "Redemption rejected"
	LogMsgCodeCollision  = "Redemption code collision, retrying"
	LogMsgRedemptionUsed = "Redemption marked as used"
	LogMsgPublishFailed  = "Failed to publish reward event"
)

// Error messages
const (
	ErrMsgBeginTxFailed  = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed = "failed to commit transaction: %w"
	ErrMsgGenerateCode   = "failed to generate redemption code: %w"
	ErrMsgCodeExhausted  = "could not allocate a unique redemption code"
	ErrMsgCodeRequired   = "redemption code is required"
)
