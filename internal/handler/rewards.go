package handler

import (
	"net/http"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

// RedeemRequest is the body of POST /rewards/{id}/redeem
type RedeemRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,max=64"`
}

type RewardsHandler struct {
	service rewards.Service
}

func NewRewardsHandler(service rewards.Service) *RewardsHandler {
	return &RewardsHandler{service: service}
}

// HandleListCatalog returns the rewards with remaining stock
// @Summary Reward catalog
// @Tags rewards
// @Produce json
// @Success 200 {array} rewards.CatalogItem
// @Router /api/v1/rewards [get]
func (h *RewardsHandler) HandleListCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListCatalog(r.Context())
	if err != nil {
		respondServiceError(w, r, "List rewards", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// HandleRedeem exchanges coins for a reward
// @Summary Redeem reward
// @Tags rewards
// @Accept json
// @Produce json
// @Param id path string true "Reward ID"
// @Param request body RedeemRequest true "Participant"
// @Success 201 {object} domain.Redemption
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/rewards/{id}/redeem [post]
func (h *RewardsHandler) HandleRedeem(w http.ResponseWriter, r *http.Request) {
	rewardID, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}
	var req RedeemRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Redeem reward"); err != nil {
		return
	}
	redemption, err := h.service.Redeem(r.Context(), req.ParticipantID, rewardID)
	if err != nil {
		respondServiceError(w, r, "Redeem reward", err)
		return
	}
	respondJSON(w, http.StatusCreated, redemption)
}

// HandleListRedemptions returns the participant's redemption history
func (h *RewardsHandler) HandleListRedemptions(w http.ResponseWriter, r *http.Request) {
	participantID, ok := GetPathParam(r, w, "participant")
	if !ok {
		return
	}
	history, err := h.service.ListRedemptions(r.Context(), participantID)
	if err != nil {
		respondServiceError(w, r, "List redemptions", err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}

// HandleMarkUsed records partner fulfilment of a code
// @Summary Mark redemption used
// @Tags rewards
// @Produce json
// @Param code path string true "Redemption code"
// @Success 200 {object} domain.Redemption
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/rewards/redemptions/{code}/use [post]
func (h *RewardsHandler) HandleMarkUsed(w http.ResponseWriter, r *http.Request) {
	code, ok := GetPathParam(r, w, "code")
	if !ok {
		return
	}
	redemption, err := h.service.MarkUsed(r.Context(), code)
	if err != nil {
		respondServiceError(w, r, "Mark redemption used", err)
		return
	}
	respondJSON(w, http.StatusOK, redemption)
}
