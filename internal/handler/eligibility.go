package handler

import (
	"net/http"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/eligibility"
)

// ReviewDocumentRequest is the body of POST /documents/{id}/review
type ReviewDocumentRequest struct {
	Status string `json:"status" validate:"document_decision"`
}

type EligibilityHandler struct {
	service        eligibility.Service
	maxUploadBytes int64
}

func NewEligibilityHandler(service eligibility.Service, maxUploadBytes int64) *EligibilityHandler {
	return &EligibilityHandler{service: service, maxUploadBytes: maxUploadBytes}
}

// HandleListEvents returns every event with its rules
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Router /api/v1/events [get]
func (h *EligibilityHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.service.ListEvents(r.Context())
	if err != nil {
		respondServiceError(w, r, "List events", err)
		return
	}
	respondJSON(w, http.StatusOK, events)
}

// HandleGetEvent returns one event
func (h *EligibilityHandler) HandleGetEvent(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	evt, err := h.service.GetEvent(r.Context(), eventID)
	if err != nil {
		respondServiceError(w, r, "Get event", err)
		return
	}
	respondJSON(w, http.StatusOK, evt)
}

// HandleEvaluate scores the participant against the event rules
// @Summary Evaluate eligibility
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Param participant path string true "Participant ID"
// @Success 200 {object} domain.EligibilityResult
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/events/{id}/eligibility/{participant} [get]
func (h *EligibilityHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	result, err := h.service.Evaluate(r.Context(), participantID, eventID)
	if err != nil {
		respondServiceError(w, r, "Evaluate eligibility", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// HandleSuggest lists the actions that would close unmet requirements
// @Summary Eligibility suggestions
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Param participant path string true "Participant ID"
// @Success 200 {array} domain.Suggestion
// @Router /api/v1/events/{id}/suggestions/{participant} [get]
func (h *EligibilityHandler) HandleSuggest(w http.ResponseWriter, r *http.Request) {
	eventID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	suggestions, err := h.service.Suggest(r.Context(), participantID, eventID)
	if err != nil {
		respondServiceError(w, r, "Suggest actions", err)
		return
	}
	respondJSON(w, http.StatusOK, suggestions)
}

// HandleUploadDocument stores a participant document pending verification
// @Summary Upload document
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param participant_id formData string true "Participant ID"
// @Param doc_type formData string true "Document type"
// @Param file formData file true "Document file"
// @Success 201 {object} domain.Document
// @Router /api/v1/documents/upload [post]
func (h *EligibilityHandler) HandleUploadDocument(w http.ResponseWriter, r *http.Request) {
	upload, ok := readUpload(w, r, h.maxUploadBytes)
	if !ok {
		return
	}
	doc, err := h.service.UploadDocument(r.Context(), eligibility.DocumentInput{
		ParticipantID: r.FormValue("participant_id"),
		DocType:       r.FormValue("doc_type"),
		File:          upload,
	})
	if err != nil {
		respondServiceError(w, r, "Upload document", err)
		return
	}
	respondJSON(w, http.StatusCreated, doc)
}

// HandleReviewDocument approves or rejects a pending document
func (h *EligibilityHandler) HandleReviewDocument(w http.ResponseWriter, r *http.Request) {
	documentID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req ReviewDocumentRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Review document"); err != nil {
		return
	}
	doc, err := h.service.ReviewDocument(r.Context(), documentID, domain.DocumentStatus(req.Status))
	if err != nil {
		respondServiceError(w, r, "Review document", err)
		return
	}
	respondJSON(w, http.StatusOK, doc)
}

func (h *EligibilityHandler) HandleListDocuments(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	docs, err := h.service.ListDocuments(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, "List documents", err)
		return
	}
	respondJSON(w, http.StatusOK, docs)
}
