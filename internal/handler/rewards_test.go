package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

func TestHandleRedeem(t *testing.T) {
	const pattern = "/rewards/{id}/redeem"

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, http.StatusCreated},
		{"insufficient coins", domain.ErrInsufficientCoins, http.StatusConflict},
		{"out of stock", domain.ErrOutOfStock, http.StatusConflict},
		{"expired", domain.ErrRewardExpired, http.StatusConflict},
		{"unknown reward", domain.ErrRewardNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRewardsService)
			h := NewRewardsHandler(svc)
			if tt.err != nil {
				svc.On("Redeem", mock.Anything, "p1", "cafe").Return(nil, tt.err)
			} else {
				svc.On("Redeem", mock.Anything, "p1", "cafe").Return(&domain.Redemption{
					ID: "r1", RewardID: "cafe", Code: "IMP-ABCD-EFGH", Status: domain.RedemptionRedeemed, CoinsSpent: 20,
				}, nil)
			}

			w := serve(http.MethodPost, pattern, "/rewards/cafe/redeem", h.HandleRedeem, jsonBody(RedeemRequest{ParticipantID: "p1"}))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.err == nil {
				var red domain.Redemption
				require.NoError(t, json.NewDecoder(w.Body).Decode(&red))
				assert.Equal(t, "IMP-ABCD-EFGH", red.Code)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleRedeem_MissingParticipant(t *testing.T) {
	svc := new(MockRewardsService)
	h := NewRewardsHandler(svc)

	w := serve(http.MethodPost, "/rewards/{id}/redeem", "/rewards/cafe/redeem", h.HandleRedeem, jsonBody(RedeemRequest{}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Redeem", mock.Anything, mock.Anything, mock.Anything)
}

func TestHandleListCatalog(t *testing.T) {
	svc := new(MockRewardsService)
	h := NewRewardsHandler(svc)
	svc.On("ListCatalog", mock.Anything).Return([]rewards.CatalogItem{
		{Reward: domain.Reward{ID: "cafe", Stock: 5, StockConsumed: 2}, Remaining: 3},
	}, nil)

	w := serve(http.MethodGet, "/rewards", "/rewards", h.HandleListCatalog, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining":3`)
}

func TestHandleMarkUsed(t *testing.T) {
	const pattern = "/rewards/redemptions/{code}/use"

	svc := new(MockRewardsService)
	h := NewRewardsHandler(svc)
	svc.On("MarkUsed", mock.Anything, "IMP-ABCD-EFGH").Return(&domain.Redemption{Status: domain.RedemptionUsed}, nil)
	svc.On("MarkUsed", mock.Anything, "IMP-USED-USED").Return(nil, domain.ErrInvalidTransition)

	w := serve(http.MethodPost, pattern, "/rewards/redemptions/IMP-ABCD-EFGH/use", h.HandleMarkUsed, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(http.MethodPost, pattern, "/rewards/redemptions/IMP-USED-USED/use", h.HandleMarkUsed, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleListRedemptions(t *testing.T) {
	svc := new(MockRewardsService)
	h := NewRewardsHandler(svc)
	svc.On("ListRedemptions", mock.Anything, "p1").Return([]domain.RedemptionView{
		{Redemption: domain.Redemption{Code: "IMP-ABCD-EFGH"}, Reward: &domain.Reward{Title: "Cafe"}},
	}, nil)

	w := serve(http.MethodGet, "/rewards/redemptions/{participant}", "/rewards/redemptions/p1", h.HandleListRedemptions, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redemption_code":"IMP-ABCD-EFGH"`)
	assert.Contains(t, w.Body.String(), `"title":"Cafe"`)
}
