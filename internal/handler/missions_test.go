package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
)

const completePattern = "/missions/{id}/complete"

func TestHandleComplete(t *testing.T) {
	t.Run("Quiz passed", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)

		sub := domain.Submission{Answers: map[int]int{0: 1, 1: 2}}
		svc.On("Attempt", mock.Anything, "p1", "quiz-1", sub).Return(&domain.AttemptResult{
			Success:       true,
			Status:        domain.AttemptStatusCompleted,
			PointsAwarded: 50,
			CoinsAwarded:  10,
			MissionStatus: domain.MissionStatusCompleted,
		}, nil)

		body := strings.NewReader(`{"participant_id":"p1","completion_data":{"answers":{"0":1,"1":2}}}`)
		w := serve(http.MethodPost, completePattern, "/missions/quiz-1/complete", h.HandleComplete, body)

		assert.Equal(t, http.StatusOK, w.Code)
		var res domain.AttemptResult
		require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
		assert.True(t, res.Success)
		assert.Equal(t, int64(50), res.PointsAwarded)
		svc.AssertExpectations(t)
	})

	t.Run("Cooldown maps to 429", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)
		retry := time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
		svc.On("Attempt", mock.Anything, "p1", "quiz-1", mock.Anything).
			Return(nil, &domain.CooldownError{MissionID: "quiz-1", RetryAfter: retry})

		w := serve(http.MethodPost, completePattern, "/missions/quiz-1/complete", h.HandleComplete,
			jsonBody(CompleteMissionRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), `"retry_after":"2026-10-14T18:00:00Z"`)
	})

	t.Run("Already completed maps to 409", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)
		svc.On("Attempt", mock.Anything, "p1", "video-1", mock.Anything).Return(nil, domain.ErrAlreadyCompleted)

		w := serve(http.MethodPost, completePattern, "/missions/video-1/complete", h.HandleComplete,
			jsonBody(CompleteMissionRequest{ParticipantID: "p1"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Missing participant", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)

		w := serve(http.MethodPost, completePattern, "/missions/quiz-1/complete", h.HandleComplete,
			jsonBody(CompleteMissionRequest{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Attempt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestHandleCooldown(t *testing.T) {
	svc := new(MockMissionService)
	h := NewMissionHandler(svc, 1024)
	svc.On("CooldownStatus", mock.Anything, "p1", "quiz-1").Return(&domain.CooldownStatus{CanAttempt: true}, nil)

	w := serve(http.MethodGet, "/missions/{id}/cooldown/{participant}", "/missions/quiz-1/cooldown/p1", h.HandleCooldown, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"can_attempt":true`)
}

func TestHandleListWithStatus(t *testing.T) {
	svc := new(MockMissionService)
	h := NewMissionHandler(svc, 1024)
	svc.On("ListWithStatus", mock.Anything, "p1").Return([]domain.MissionWithStatus{
		{Mission: domain.Mission{ID: "m1", Content: domain.PassiveContent{}}, Locked: true},
	}, nil)

	w := serve(http.MethodGet, "/missions/{participant}/with-status", "/missions/p1/with-status", h.HandleListWithStatus, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locked":true`)
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestHandleUploadEvidence(t *testing.T) {
	fields := map[string]string{"participant_id": "p1", "mission_id": "plan-1", "description": "Mi plan"}

	t.Run("Success", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)
		svc.On("SubmitEvidence", mock.Anything, mock.MatchedBy(func(in mission.EvidenceInput) bool {
			return in.ParticipantID == "p1" && in.MissionID == "plan-1" &&
				in.File.FileName == "plan.pdf" && in.File.Size == 5 && string(in.File.Body) == "%PDF-"
		})).Return(&domain.Evidence{ID: "e1", Status: domain.EvidencePending}, nil)

		body, contentType := multipartUpload(t, fields, "plan.pdf", []byte("%PDF-"))
		req := newRequest(http.MethodPost, "/evidences/upload", body, contentType)
		w := serveRequest(http.MethodPost, "/evidences/upload", h.HandleUploadEvidence, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"pending"`)
		svc.AssertExpectations(t)
	})

	t.Run("Too large", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 4)

		body, contentType := multipartUpload(t, fields, "plan.pdf", []byte("%PDF-1.7"))
		req := newRequest(http.MethodPost, "/evidences/upload", body, contentType)
		w := serveRequest(http.MethodPost, "/evidences/upload", h.HandleUploadEvidence, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		svc.AssertNotCalled(t, "SubmitEvidence", mock.Anything, mock.Anything)
	})

	t.Run("Missing file", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)

		body, contentType := multipartUpload(t, fields, "", nil)
		req := newRequest(http.MethodPost, "/evidences/upload", body, contentType)
		w := serveRequest(http.MethodPost, "/evidences/upload", h.HandleUploadEvidence, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingFile)
	})
}

func TestHandleReviewEvidence(t *testing.T) {
	const pattern = "/evidences/{id}/review"

	t.Run("Approve", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)
		svc.On("ReviewEvidence", mock.Anything, "e1", domain.EvidenceApproved, "ok").
			Return(&domain.Evidence{ID: "e1", Status: domain.EvidenceApproved}, nil)

		w := serve(http.MethodPost, pattern, "/evidences/e1/review", h.HandleReviewEvidence,
			jsonBody(ReviewEvidenceRequest{Status: "approved", ReviewNotes: "ok"}))

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid decision", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)

		w := serve(http.MethodPost, pattern, "/evidences/e1/review", h.HandleReviewEvidence,
			jsonBody(ReviewEvidenceRequest{Status: "pending"}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "revision_required")
	})

	t.Run("Not in review", func(t *testing.T) {
		svc := new(MockMissionService)
		h := NewMissionHandler(svc, 1024)
		svc.On("ReviewEvidence", mock.Anything, "e1", domain.EvidenceRejected, "").Return(nil, domain.ErrNotInReview)

		w := serve(http.MethodPost, pattern, "/evidences/e1/review", h.HandleReviewEvidence,
			jsonBody(ReviewEvidenceRequest{Status: "rejected"}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
