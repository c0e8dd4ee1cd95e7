package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgNotFound            = "not found"
	ErrMsgParticipantNotFound = "participant not found"
	ErrMsgMissionNotFound     = "mission not found"
	ErrMsgEvidenceNotFound    = "evidence not found"
	ErrMsgDocumentNotFound    = "document not found"
	ErrMsgEventNotFound       = "event not found"
	ErrMsgRewardNotFound      = "reward not found"
	ErrMsgRedemptionNotFound  = "redemption not found"
	ErrMsgLeagueNotFound      = "league not found"

	// Submission errors
	ErrMsgValidation = "validation error"

	// Mission lifecycle errors
	ErrMsgCooldownActive   = "cooldown active"
	ErrMsgAlreadyCompleted = "mission already completed"
	ErrMsgAlreadyInReview  = "mission already in review"
	ErrMsgNotInReview      = "mission is not in review"
	ErrMsgMissionLocked    = "mission is locked"

	// Rewards errors
	ErrMsgInsufficientCoins = "insufficient coins"
	ErrMsgOutOfStock        = "reward out of stock"
	ErrMsgRewardExpired     = "reward no longer available"
	ErrMsgInvalidTransition = "invalid status transition"

	// League errors
	ErrMsgScopeMismatch = "league scope mismatch"
	ErrMsgAlreadyJoined = "already joined league"
	ErrMsgLeagueClosed  = "league is closed"

	// Registration errors
	ErrMsgDuplicateEmail = "email already registered"

	// Database/System errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrNotFound = errors.New(ErrMsgNotFound)

	// ErrTxClosed is returned by Commit or Rollback on a finished transaction
	ErrTxClosed = errors.New(ErrMsgTxClosed)

	ErrParticipantNotFound = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgParticipantNotFound)
	ErrMissionNotFound     = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgMissionNotFound)
	ErrEvidenceNotFound    = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgEvidenceNotFound)
	ErrDocumentNotFound    = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgDocumentNotFound)
	ErrEventNotFound       = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgEventNotFound)
	ErrRewardNotFound      = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgRewardNotFound)
	ErrRedemptionNotFound  = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgRedemptionNotFound)
	ErrLeagueNotFound      = fmt.Errorf("%w: %s", ErrNotFound, ErrMsgLeagueNotFound)

	ErrValidation = errors.New(ErrMsgValidation)

	ErrCooldownActive   = errors.New(ErrMsgCooldownActive)
	ErrAlreadyCompleted = errors.New(ErrMsgAlreadyCompleted)
	ErrAlreadyInReview  = errors.New(ErrMsgAlreadyInReview)
	ErrNotInReview      = errors.New(ErrMsgNotInReview)
	ErrMissionLocked    = errors.New(ErrMsgMissionLocked)

	ErrInsufficientCoins = errors.New(ErrMsgInsufficientCoins)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)
	ErrRewardExpired     = errors.New(ErrMsgRewardExpired)
	ErrInvalidTransition = errors.New(ErrMsgInvalidTransition)

	ErrScopeMismatch = errors.New(ErrMsgScopeMismatch)
	ErrAlreadyJoined = errors.New(ErrMsgAlreadyJoined)
	ErrLeagueClosed  = errors.New(ErrMsgLeagueClosed)

	ErrDuplicateEmail = errors.New(ErrMsgDuplicateEmail)
)

// CooldownError carries the instant a failed quiz may be retried.
// errors.Is(err, ErrCooldownActive) reports true for it.
type CooldownError struct {
	MissionID  string
	RetryAfter time.Time
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s until %s", ErrMsgCooldownActive, e.RetryAfter.UTC().Format(time.RFC3339))
}

// Is lets errors.Is match the sentinel.
func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}

// Validationf wraps ErrValidation with a formatted detail.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
