package handler

import (
	"net/http"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
)

// RegisterParticipantRequest is the body of POST /participants
type RegisterParticipantRequest struct {
	Name   string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Email  string `json:"email" validate:"required,email,max=254"`
	City   string `json:"city" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Cohort string `json:"cohort,omitempty" validate:"max=50"`
}

type ParticipantHandler struct {
	service ledger.Service
}

func NewParticipantHandler(service ledger.Service) *ParticipantHandler {
	return &ParticipantHandler{service: service}
}

// HandleRegister creates a participant with zero balances
// @Summary Register participant
// @Tags participants
// @Accept json
// @Produce json
// @Param request body RegisterParticipantRequest true "Participant"
// @Success 201 {object} domain.Participant
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/participants [post]
func (h *ParticipantHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterParticipantRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Register participant"); err != nil {
		return
	}

	p, err := h.service.Register(r.Context(), ledger.RegisterInput{
		Name:   req.Name,
		Email:  req.Email,
		City:   req.City,
		Cohort: req.Cohort,
	})
	if err != nil {
		respondServiceError(w, r, "Register participant", err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

// HandleGet returns the participant's balances and streaks
// @Summary Get participant
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} domain.Participant
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/participants/{id} [get]
func (h *ParticipantHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	p, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get participant", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleStats returns aggregate progress figures
// @Summary Participant stats
// @Tags participants
// @Produce json
// @Param id path string true "Participant ID"
// @Success 200 {object} domain.ParticipantStats
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/participants/{id}/stats [get]
func (h *ParticipantHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	stats, err := h.service.Stats(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get participant stats", err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
