package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
)

var fixedNow = time.Date(2026, 10, 19, 0, 5, 0, 0, time.UTC)

func nowFunc() time.Time { return fixedNow }

func TestHandleJoin(t *testing.T) {
	const pattern = "/leagues/{id}/join"

	t.Run("Joined", func(t *testing.T) {
		svc := new(MockLeagueService)
		h := NewLeagueHandler(svc, nowFunc)
		svc.On("Join", mock.Anything, "p1", "gold-guayaquil-2026-w42").
			Return(&domain.JoinResult{LeagueID: "gold-guayaquil-2026-w42", Joined: true}, nil)

		w := serve(http.MethodPost, pattern, "/leagues/gold-guayaquil-2026-w42/join", h.HandleJoin,
			jsonBody(JoinLeagueRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusOK, w.Code)
		var res JoinLeagueResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.True(t, res.Joined)
		assert.Equal(t, MsgJoinedLeague, res.Message)
	})

	t.Run("Repeat join is a no-op", func(t *testing.T) {
		svc := new(MockLeagueService)
		h := NewLeagueHandler(svc, nowFunc)
		svc.On("Join", mock.Anything, "p1", "l1").Return(&domain.JoinResult{LeagueID: "l1"}, nil)

		w := serve(http.MethodPost, pattern, "/leagues/l1/join", h.HandleJoin, jsonBody(JoinLeagueRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), MsgAlreadyMember)
	})

	t.Run("Other city", func(t *testing.T) {
		svc := new(MockLeagueService)
		h := NewLeagueHandler(svc, nowFunc)
		svc.On("Join", mock.Anything, "p1", "l1").Return(nil, domain.ErrScopeMismatch)

		w := serve(http.MethodPost, pattern, "/leagues/l1/join", h.HandleJoin, jsonBody(JoinLeagueRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Closed league", func(t *testing.T) {
		svc := new(MockLeagueService)
		h := NewLeagueHandler(svc, nowFunc)
		svc.On("Join", mock.Anything, "p1", "l1").Return(nil, domain.ErrLeagueClosed)

		w := serve(http.MethodPost, pattern, "/leagues/l1/join", h.HandleJoin, jsonBody(JoinLeagueRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandleLeaderboard(t *testing.T) {
	svc := new(MockLeagueService)
	h := NewLeagueHandler(svc, nowFunc)
	svc.On("Leaderboard", mock.Anything, "l1").Return([]domain.Standing{
		{ParticipantID: "p2", WeeklyXP: 90, Position: 1},
		{ParticipantID: "p1", WeeklyXP: 40, Position: 2},
	}, nil)
	svc.On("Leaderboard", mock.Anything, "ghost").Return(nil, domain.ErrLeagueNotFound)

	w := serve(http.MethodGet, "/leagues/{id}/leaderboard", "/leagues/l1/leaderboard", h.HandleLeaderboard, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []domain.Standing
	require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "p2", rows[0].ParticipantID)

	w = serve(http.MethodGet, "/leagues/{id}/leaderboard", "/leagues/ghost/leaderboard", h.HandleLeaderboard, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleRollover(t *testing.T) {
	svc := new(MockLeagueService)
	h := NewLeagueHandler(svc, nowFunc)
	svc.On("Rollover", mock.Anything, fixedNow).Return(&domain.RolloverResult{
		Performed: true, PreviousCycle: "2026-W42", CurrentCycle: "2026-W43", LeaguesCreated: 4,
	}, nil).Once()
	svc.On("Rollover", mock.Anything, fixedNow).Return(&domain.RolloverResult{CurrentCycle: "2026-W43"}, nil).Once()

	w := serve(http.MethodPost, "/admin/leagues/rollover", "/admin/leagues/rollover", h.HandleRollover, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgRolloverPerformed)

	w = serve(http.MethodPost, "/admin/leagues/rollover", "/admin/leagues/rollover", h.HandleRollover, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgRolloverSkipped)
	svc.AssertExpectations(t)
}

func TestHandleEligibleAchievements(t *testing.T) {
	svc := new(MockAchievementService)
	h := NewAchievementHandler(svc)
	svc.On("Eligible", mock.Anything, "p1").Return([]domain.Achievement{{ID: "first-steps", Title: "Primeros pasos"}}, nil)

	w := serve(http.MethodGet, "/achievements/eligible/{participant}", "/achievements/eligible/p1", h.HandleEligible, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"first-steps"`)
}
