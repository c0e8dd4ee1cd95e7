package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
)

func TestHandleRegister(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewParticipantHandler(svc)

		in := ledger.RegisterInput{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"}
		svc.On("Register", mock.Anything, in).Return(&domain.Participant{ID: "p1", Name: "Ana", Rank: domain.RankNovice}, nil)

		w := serve(http.MethodPost, "/participants", "/participants", h.HandleRegister,
			jsonBody(RegisterParticipantRequest{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		var p domain.Participant
		require.NoError(t, json.NewDecoder(w.Body).Decode(&p))
		assert.Equal(t, "p1", p.ID)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid email", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewParticipantHandler(svc)

		w := serve(http.MethodPost, "/participants", "/participants", h.HandleRegister,
			jsonBody(RegisterParticipantRequest{Name: "Ana", Email: "ana", City: "Guayaquil"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "Invalid email format", body.Fields["email"])
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewParticipantHandler(svc)

		w := serve(http.MethodPost, "/participants", "/participants", h.HandleRegister, strings.NewReader("{"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		svc := new(MockLedgerService)
		h := NewParticipantHandler(svc)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateEmail)

		w := serve(http.MethodPost, "/participants", "/participants", h.HandleRegister,
			jsonBody(RegisterParticipantRequest{Name: "Ana", Email: "ana@example.com", City: "Guayaquil"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleGetParticipant(t *testing.T) {
	svc := new(MockLedgerService)
	h := NewParticipantHandler(svc)
	svc.On("Get", mock.Anything, "p1").Return(&domain.Participant{ID: "p1", Coins: 30}, nil)
	svc.On("Get", mock.Anything, "ghost").Return(nil, domain.ErrParticipantNotFound)

	w := serve(http.MethodGet, "/participants/{id}", "/participants/p1", h.HandleGet, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"coins":30`)

	w = serve(http.MethodGet, "/participants/{id}", "/participants/ghost", h.HandleGet, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleStats(t *testing.T) {
	svc := new(MockLedgerService)
	h := NewParticipantHandler(svc)
	svc.On("Stats", mock.Anything, "p1").Return(&domain.ParticipantStats{
		ParticipantID:     "p1",
		MissionsCompleted: 2,
		MissionsAttempted: 4,
		CompletionRate:    50,
	}, nil)

	w := serve(http.MethodGet, "/participants/{id}/stats", "/participants/p1/stats", h.HandleStats, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats domain.ParticipantStats
	require.NoError(t, json.NewDecoder(w.Body).Decode(&stats))
	assert.Equal(t, 50.0, stats.CompletionRate)
}
