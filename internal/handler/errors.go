package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidUpload         = "Invalid multipart upload"
	ErrMsgMissingFile           = "Missing file field"
	ErrMsgFileTooLarge          = "File exceeds the upload limit"

	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgUnavailable         = "database connection failed"
)

// User-facing messages derived from domain errors
const (
	ErrMsgParticipantNotFoundError = "Participant not found"
	ErrMsgMissionNotFoundError     = "Mission not found"
	ErrMsgEvidenceNotFoundError    = "Evidence not found"
	ErrMsgDocumentNotFoundError    = "Document not found"
	ErrMsgEventNotFoundError       = "Event not found"
	ErrMsgRewardNotFoundError      = "Reward not found"
	ErrMsgRedemptionNotFoundError  = "Redemption code not found"
	ErrMsgLeagueNotFoundError      = "League not found"

	ErrMsgCooldownActiveError    = "Mission is on cooldown. Try again later"
	ErrMsgAlreadyCompletedError  = "Mission already completed"
	ErrMsgAlreadyInReviewError   = "Mission is waiting for review"
	ErrMsgNotInReviewError       = "Mission is not waiting for review"
	ErrMsgMissionLockedError     = "Complete the prerequisite missions first"
	ErrMsgInsufficientCoinsError = "Not enough coins"
	ErrMsgOutOfStockError        = "Reward is out of stock"
	ErrMsgRewardExpiredError     = "Reward is no longer available"
	ErrMsgInvalidTransitionError = "Status change not allowed"
	ErrMsgAlreadyJoinedError     = "Already a member of a league this cycle"
	ErrMsgLeagueClosedError      = "League is closed"
	ErrMsgDuplicateEmailError    = "Email already registered"
	ErrMsgScopeMismatchError     = "League is not open to your city"
)

// Success messages for API responses
const (
	MsgRedemptionUsed       = "Redemption marked as used"
	MsgRolloverPerformed    = "League cycle rolled over"
	MsgRolloverSkipped      = "League cycle already current"
	MsgJoinedLeague         = "Joined league"
	MsgAlreadyMember        = "Already a member of this league"
	MsgTemplatesInvalidated = "Mission template cache cleared"
)

// Log messages
const (
	LogMsgRequestDecoded   = "%s request decoded"
	LogMsgDecodeFailed     = "Failed to decode %s request"
	LogMsgMissingParam     = "Missing %s path parameter"
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgUploadReadFailed = "Failed to read upload"
)
