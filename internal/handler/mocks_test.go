package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/domain"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/eligibility"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/ledger"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/mission"
	"github.com/moisesNGG/ImpulsaGuayaquil-2-sub000/internal/rewards"
)

// serve routes a single request through chi so URL params resolve
func serve(method, pattern, target string, h http.HandlerFunc, body io.Reader) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// MockLedgerService
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Register(ctx context.Context, in ledger.RegisterInput) (*domain.Participant, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockLedgerService) Get(ctx context.Context, participantID string) (*domain.Participant, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockLedgerService) Credit(ctx context.Context, participantID string, credit domain.Credit) (*domain.Participant, error) {
	args := m.Called(ctx, participantID, credit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Participant), args.Error(1)
}

func (m *MockLedgerService) Stats(ctx context.Context, participantID string) (*domain.ParticipantStats, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParticipantStats), args.Error(1)
}

// MockMissionService
type MockMissionService struct {
	mock.Mock
}

func (m *MockMissionService) ListMissions(ctx context.Context) ([]domain.Mission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mission), args.Error(1)
}

func (m *MockMissionService) GetMission(ctx context.Context, missionID string) (*domain.Mission, error) {
	args := m.Called(ctx, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mission), args.Error(1)
}

func (m *MockMissionService) GetStatus(ctx context.Context, participantID, missionID string) (*domain.MissionProgress, error) {
	args := m.Called(ctx, participantID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MissionProgress), args.Error(1)
}

func (m *MockMissionService) ListWithStatus(ctx context.Context, participantID string) ([]domain.MissionWithStatus, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionWithStatus), args.Error(1)
}

func (m *MockMissionService) ProgressFor(ctx context.Context, participantID string) (map[string]domain.MissionProgress, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.MissionProgress), args.Error(1)
}

func (m *MockMissionService) Attempt(ctx context.Context, participantID, missionID string, submission domain.Submission) (*domain.AttemptResult, error) {
	args := m.Called(ctx, participantID, missionID, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttemptResult), args.Error(1)
}

func (m *MockMissionService) CooldownStatus(ctx context.Context, participantID, missionID string) (*domain.CooldownStatus, error) {
	args := m.Called(ctx, participantID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CooldownStatus), args.Error(1)
}

func (m *MockMissionService) Attempts(ctx context.Context, participantID, missionID string) ([]domain.MissionAttempt, error) {
	args := m.Called(ctx, participantID, missionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MissionAttempt), args.Error(1)
}

func (m *MockMissionService) SubmitEvidence(ctx context.Context, in mission.EvidenceInput) (*domain.Evidence, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *MockMissionService) ReviewEvidence(ctx context.Context, evidenceID string, decision domain.EvidenceStatus, notes string) (*domain.Evidence, error) {
	args := m.Called(ctx, evidenceID, decision, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Evidence), args.Error(1)
}

func (m *MockMissionService) ListEvidence(ctx context.Context, participantID string) ([]domain.Evidence, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Evidence), args.Error(1)
}

func (m *MockMissionService) InvalidateTemplates() {
	m.Called()
}

// MockEligibilityService
type MockEligibilityService struct {
	mock.Mock
}

func (m *MockEligibilityService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEligibilityService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEligibilityService) Evaluate(ctx context.Context, participantID, eventID string) (*domain.EligibilityResult, error) {
	args := m.Called(ctx, participantID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EligibilityResult), args.Error(1)
}

func (m *MockEligibilityService) Suggest(ctx context.Context, participantID, eventID string) ([]domain.Suggestion, error) {
	args := m.Called(ctx, participantID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Suggestion), args.Error(1)
}

func (m *MockEligibilityService) UploadDocument(ctx context.Context, in eligibility.DocumentInput) (*domain.Document, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockEligibilityService) ReviewDocument(ctx context.Context, documentID string, decision domain.DocumentStatus) (*domain.Document, error) {
	args := m.Called(ctx, documentID, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockEligibilityService) ListDocuments(ctx context.Context, participantID string) ([]domain.Document, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Document), args.Error(1)
}

// MockRewardsService
type MockRewardsService struct {
	mock.Mock
}

func (m *MockRewardsService) ListCatalog(ctx context.Context) ([]rewards.CatalogItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]rewards.CatalogItem), args.Error(1)
}

func (m *MockRewardsService) GetReward(ctx context.Context, rewardID string) (*domain.Reward, error) {
	args := m.Called(ctx, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reward), args.Error(1)
}

func (m *MockRewardsService) Redeem(ctx context.Context, participantID, rewardID string) (*domain.Redemption, error) {
	args := m.Called(ctx, participantID, rewardID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Redemption), args.Error(1)
}

func (m *MockRewardsService) ListRedemptions(ctx context.Context, participantID string) ([]domain.RedemptionView, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RedemptionView), args.Error(1)
}

func (m *MockRewardsService) MarkUsed(ctx context.Context, code string) (*domain.Redemption, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Redemption), args.Error(1)
}

// MockLeagueService
type MockLeagueService struct {
	mock.Mock
}

func (m *MockLeagueService) Current(ctx context.Context) ([]domain.League, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.League), args.Error(1)
}

func (m *MockLeagueService) Join(ctx context.Context, participantID, leagueID string) (*domain.JoinResult, error) {
	args := m.Called(ctx, participantID, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JoinResult), args.Error(1)
}

func (m *MockLeagueService) Leaderboard(ctx context.Context, leagueID string) ([]domain.Standing, error) {
	args := m.Called(ctx, leagueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Standing), args.Error(1)
}

func (m *MockLeagueService) Rollover(ctx context.Context, now time.Time) (*domain.RolloverResult, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RolloverResult), args.Error(1)
}

// MockAchievementService
type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) List(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockAchievementService) Save(ctx context.Context, a *domain.Achievement) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAchievementService) Eligible(ctx context.Context, participantID string) ([]domain.Achievement, error) {
	args := m.Called(ctx, participantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func newRequest(method, target string, body io.Reader, contentType string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", contentType)
	return req
}

func serveRequest(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
