package handler

import (
	"net/http"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
)

// CompleteMissionRequest is the body of POST /missions/{id}/complete
type CompleteMissionRequest struct {
	ParticipantID  string            `json:"participant_id" validate:"required,max=64"`
	CompletionData domain.Submission `json:"completion_data"`
}

// ReviewEvidenceRequest is the body of POST /evidences/{id}/review
type ReviewEvidenceRequest struct {
	Status      string `json:"status" validate:"evidence_decision"`
	ReviewNotes string `json:"review_notes,omitempty" validate:"max=2000"`
}

type MissionHandler struct {
	service        mission.Service
	maxUploadBytes int64
}

func NewMissionHandler(service mission.Service, maxUploadBytes int64) *MissionHandler {
	return &MissionHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// HandleList returns the mission templates in path order
func (h *MissionHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	missions, err := h.service.ListMissions(r.Context())
	if err != nil {
		respondServiceError(w, r, "List missions", err)
		return
	}
	respondJSON(w, http.StatusOK, missions)
}

// HandleListWithStatus returns every mission with the participant's progress
// @Summary Missions with status
// @Tags missions
// @Produce json
// @Param participant path string true "Participant ID"
// @Success 200 {array} domain.MissionWithStatus
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/missions/{participant}/with-status [get]
func (h *MissionHandler) HandleListWithStatus(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	missions, err := h.service.ListWithStatus(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, "List missions with status", err)
		return
	}
	respondJSON(w, http.StatusOK, missions)
}

// HandleComplete grades a completion attempt
// @Summary Attempt mission
// @Tags missions
// @Accept json
// @Produce json
// @Param id path string true "Mission ID"
// @Param request body CompleteMissionRequest true "Attempt"
// @Success 200 {object} domain.AttemptResult
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/missions/{id}/complete [post]
func (h *MissionHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	missionID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req CompleteMissionRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete mission"); err != nil {
		return
	}

	result, err := h.service.Attempt(r.Context(), req.ParticipantID, missionID, req.CompletionData)
	if err != nil {
		respondServiceError(w, r, "Complete mission", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleCooldown reports whether the participant may attempt now
// @Summary Mission cooldown
// @Tags missions
// @Produce json
// @Param id path string true "Mission ID"
// @Param participant path string true "Participant ID"
// @Success 200 {object} domain.CooldownStatus
// @Router /api/v1/missions/{id}/cooldown/{participant} [get]
func (h *MissionHandler) HandleCooldown(w http.ResponseWriter, r *http.Request) {
	missionID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	status, err := h.service.CooldownStatus(r.Context(), participantID, missionID)
	if err != nil {
		respondServiceError(w, r, "Get cooldown", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleAttempts returns the attempt history, newest first
func (h *MissionHandler) HandleAttempts(w http.ResponseWriter, r *http.Request) {
	missionID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	attempts, err := h.service.Attempts(r.Context(), participantID, missionID)
	if err != nil {
		respondServiceError(w, r, "List attempts", err)
		return
	}
	respondJSON(w, http.StatusOK, attempts)
}

// HandleUploadEvidence stores a file for a mission that needs review
// @Summary Upload evidence
// @Tags evidences
// @Accept multipart/form-data
// @Produce json
// @Param participant_id formData string true "Participant ID"
// @Param mission_id formData string true "Mission ID"
// @Param description formData string false "Description"
// @Param file formData file true "Evidence file"
// @Success 201 {object} domain.Evidence
// @Failure 413 {object} ErrorResponse
// @Router /api/v1/evidences/upload [post]
func (h *MissionHandler) HandleUploadEvidence(w http.ResponseWriter, r *http.Request) {
	upload, ok := readUpload(w, r, h.maxUploadBytes)
	if !ok {
		return
	}
	evidence, err := h.service.SubmitEvidence(r.Context(), mission.EvidenceInput{
		ParticipantID: r.FormValue("participant_id"),
		MissionID:     r.FormValue("mission_id"),
		Description:   r.FormValue("description"),
		File:          upload,
	})
	if err != nil {
		respondServiceError(w, r, "Upload evidence", err)
		return
	}
	respondJSON(w, http.StatusCreated, evidence)
}

// HandleReviewEvidence applies a reviewer decision
// @Summary Review evidence
// @Tags evidences
// @Accept json
// @Produce json
// @Param id path string true "Evidence ID"
// @Param request body ReviewEvidenceRequest true "Decision"
// @Success 200 {object} domain.Evidence
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/evidences/{id}/review [post]
func (h *MissionHandler) HandleReviewEvidence(w http.ResponseWriter, r *http.Request) {
	evidenceID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req ReviewEvidenceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Review evidence"); err != nil {
		return
	}
	evidence, err := h.service.ReviewEvidence(r.Context(), evidenceID, domain.EvidenceStatus(req.Status), req.ReviewNotes)
	if err != nil {
		respondServiceError(w, r, "Review evidence", err)
		return
	}
	respondJSON(w, http.StatusOK, evidence)
}

// HandleListEvidence returns a participant's submissions
func (h *MissionHandler) HandleListEvidence(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	evidence, err := h.service.ListEvidence(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, "List evidence", err)
		return
	}
	respondJSON(w, http.StatusOK, evidence)
}

// HandleInvalidateTemplates drops cached mission templates after a catalog change
func (h *MissionHandler) HandleInvalidateTemplates(w http.ResponseWriter, r *http.Request) {
	h.service.InvalidateTemplates()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgTemplatesInvalidated})
}
