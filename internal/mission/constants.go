package mission

import "time"

// Template cache sizing
const (
	TemplateCacheSize = 512
	TemplateCacheTTL  = 10 * time.Minute
)

// Completion sources carried on mission.completed events
const (
	SourceAttempt = "attempt"
	SourceReview  = "review"
)

// Cooldown status messages
const (
	MsgCanAttempt      = "mission can be attempted"
	MsgCooldownActive  = "quiz failed recently, retry after the cooldown"
	MsgAlreadyComplete = "mission already completed"
	MsgInReview        = "evidence is under review"
	MsgLocked          = "complete the prerequisite missions first"
)

// Log messages
const (
	LogMsgAttemptCompleted = "Mission completed"
	LogMsgQuizFailed       = "Quiz attempt failed"
	LogMsgSentToReview     = "Mission sent to review"
	LogMsgEvidenceStored   = "Evidence stored"
	LogMsgEvidenceReviewed = "Evidence reviewed"
	LogMsgCASLost          = "Lost progress update race"
	LogMsgPublishFailed    = "Failed to publish mission event"
	LogMsgBlobCleanup      = "Failed to delete orphaned evidence file"
)

// Error messages
const (
	ErrMsgBeginTxFailed      = "failed to begin transaction: %w"
	ErrMsgCommitTxFailed     = "failed to commit transaction: %w"
	ErrMsgProgressFailed     = "failed to load mission progress: %w"
	ErrMsgStoreFileFailed    = "failed to store evidence file: %w"
	ErrMsgCreateEvidence     = "failed to create evidence: %w"
	ErrMsgAnswersMissing     = "answers are required"
	ErrMsgAnswerCount        = "expected %d answers, got %d"
	ErrMsgAnswerIndex        = "answer for unknown question %d"
	ErrMsgAnswerOption       = "option %d out of range for question %d"
	ErrMsgNoQuestions        = "quiz has no questions"
	ErrMsgEvidenceRequired   = "evidence_id is required"
	ErrMsgEvidenceMismatch   = "evidence does not belong to this participant and mission"
	ErrMsgEvidenceNotPending = "evidence is not pending"
	ErrMsgInvalidDecision    = "invalid review decision %q"
	ErrMsgNotEvidenceMission = "mission does not accept evidence"
)
