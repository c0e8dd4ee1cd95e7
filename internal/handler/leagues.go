package handler

import (
	"net/http"
	"time"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/league"
)

// JoinLeagueRequest is the body of POST /leagues/{id}/join
type JoinLeagueRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,max=64"`
}

// JoinLeagueResponse wraps the join outcome with a message
type JoinLeagueResponse struct {
	domain.JoinResult
	Message string `json:"message"`
}

// RolloverResponse wraps the rollover summary with a message
type RolloverResponse struct {
	domain.RolloverResult
	Message string `json:"message"`
}

type LeagueHandler struct {
	service league.Service
	now     func() time.Time
}

func NewLeagueHandler(service league.Service, now func() time.Time) *LeagueHandler {
	return &LeagueHandler{service: service, now: now}
}

// HandleList returns the leagues of the current cycle
// @Summary Current leagues
// @Tags leagues
// @Produce json
// @Success 200 {array} domain.League
// @Router /api/v1/leagues [get]
func (h *LeagueHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leagues, err := h.service.Current(r.Context())
	if err != nil {
		respondServiceError(w, r, "List leagues", err)
		return
	}
	respondJSON(w, http.StatusOK, leagues)
}

// HandleLeaderboard returns the ranked standings of a league
// @Summary League leaderboard
// @Tags leagues
// @Produce json
// @Param id path string true "League ID"
// @Success 200 {array} domain.Standing
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/leagues/{id}/leaderboard [get]
func (h *LeagueHandler) HandleLeaderboard(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	standings, err := h.service.Leaderboard(r.Context(), leagueID)
	if err != nil {
		respondServiceError(w, r, "Get leaderboard", err)
		return
	}
	respondJSON(w, http.StatusOK, standings)
}

// HandleJoin adds a participant to a league of their city
// @Summary Join league
// @Tags leagues
// @Accept json
// @Produce json
// @Param id path string true "League ID"
// @Param request body JoinLeagueRequest true "Participant"
// @Success 200 {object} JoinLeagueResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/leagues/{id}/join [post]
func (h *LeagueHandler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	leagueID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req JoinLeagueRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Join league"); err != nil {
		return
	}
	result, err := h.service.Join(r.Context(), req.ParticipantID, leagueID)
	if err != nil {
		respondServiceError(w, r, "Join league", err)
		return
	}

	msg := MsgJoinedLeague
	if !result.Joined {
		msg = MsgAlreadyMember
	}
	respondJSON(w, http.StatusOK, JoinLeagueResponse{JoinResult: *result, Message: msg})
}

// HandleRollover closes the previous cycle if it has ended. Safe to repeat.
// @Summary Roll over league cycle
// @Tags admin
// @Produce json
// @Success 200 {object} RolloverResponse
// @Router /api/v1/admin/leagues/rollover [post]
func (h *LeagueHandler) HandleRollover(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Rollover(r.Context(), h.now())
	if err != nil {
		respondServiceError(w, r, "Rollover leagues", err)
		return
	}

	msg := MsgRolloverPerformed
	if !result.Performed {
		msg = MsgRolloverSkipped
	}
	respondJSON(w, http.StatusOK, RolloverResponse{RolloverResult: *result, Message: msg})
}
