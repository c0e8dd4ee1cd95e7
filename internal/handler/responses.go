package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response. RetryAfter is set for cooldowns.
type ErrorResponse struct {
	Error      string     `json:"error"`
	RetryAfter *time.Time `json:"retry_after,omitempty"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	// Headers are already sent, so encoding failures can only be logged
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped status.
// Server errors are logged at error level, client errors at warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}

	resp := ErrorResponse{Error: message}
	var cooldown *domain.CooldownError
	if errors.As(err, &cooldown) {
		retry := cooldown.RetryAfter.UTC()
		resp.RetryAfter = &retry
		w.Header().Set("Retry-After", retry.Format(http.TimeFormat))
	}
	respondJSON(w, status, resp)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon. Validation errors carry their own detail.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrParticipantNotFound):
		return http.StatusNotFound, ErrMsgParticipantNotFoundError
	case errors.Is(err, domain.ErrMissionNotFound):
		return http.StatusNotFound, ErrMsgMissionNotFoundError
	case errors.Is(err, domain.ErrEvidenceNotFound):
		return http.StatusNotFound, ErrMsgEvidenceNotFoundError
	case errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound, ErrMsgDocumentNotFoundError
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, ErrMsgEventNotFoundError
	case errors.Is(err, domain.ErrRewardNotFound):
		return http.StatusNotFound, ErrMsgRewardNotFoundError
	case errors.Is(err, domain.ErrRedemptionNotFound):
		return http.StatusNotFound, ErrMsgRedemptionNotFoundError
	case errors.Is(err, domain.ErrLeagueNotFound):
		return http.StatusNotFound, ErrMsgLeagueNotFoundError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrCooldownActive):
		return http.StatusTooManyRequests, ErrMsgCooldownActiveError
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return http.StatusConflict, ErrMsgAlreadyCompletedError
	case errors.Is(err, domain.ErrAlreadyInReview):
		return http.StatusConflict, ErrMsgAlreadyInReviewError
	case errors.Is(err, domain.ErrNotInReview):
		return http.StatusConflict, ErrMsgNotInReviewError
	case errors.Is(err, domain.ErrMissionLocked):
		return http.StatusConflict, ErrMsgMissionLockedError
	case errors.Is(err, domain.ErrInsufficientCoins):
		return http.StatusConflict, ErrMsgInsufficientCoinsError
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrRewardExpired):
		return http.StatusConflict, ErrMsgRewardExpiredError
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, ErrMsgInvalidTransitionError
	case errors.Is(err, domain.ErrAlreadyJoined):
		return http.StatusConflict, ErrMsgAlreadyJoinedError
	case errors.Is(err, domain.ErrLeagueClosed):
		return http.StatusConflict, ErrMsgLeagueClosedError
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, ErrMsgDuplicateEmailError
	case errors.Is(err, domain.ErrScopeMismatch):
		return http.StatusForbidden, ErrMsgScopeMismatchError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
