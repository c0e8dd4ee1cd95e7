package handler

import (
	"net/http"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/achievement"
)

type AchievementHandler struct {
	service achievement.Service
}

func NewAchievementHandler(service achievement.Service) *AchievementHandler {
	return &AchievementHandler{service: service}
}

func (h *AchievementHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		respondServiceError(w, r, "List achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

// HandleEligible returns the achievements the participant has earned
// @Summary Earned achievements
// @Tags achievements
// @Produce json
// @Param participant path string true "Participant ID"
// @Success 200 {array} domain.Achievement
// @Router /api/v1/achievements/eligible/{participant} [get]
func (h *AchievementHandler) HandleEligible(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	list, err := h.service.Eligible(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, "List eligible achievements", err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
