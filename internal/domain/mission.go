package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// MissionType is the authoring category of a mission
type MissionType string

const (
	MissionTypeVideo          MissionType = "video"
	MissionTypeMicrovideo     MissionType = "microvideo"
	MissionTypeGuide          MissionType = "guide"
	MissionTypeDownloadable   MissionType = "downloadable_guide"
	MissionTypeQuiz           MissionType = "quiz"
	MissionTypeMiniQuiz       MissionType = "mini_quiz"
	MissionTypePracticalTask  MissionType = "practical_task"
	MissionTypeExpertAdvice   MissionType = "expert_advice"
	MissionTypeDocumentUpload MissionType = "document_upload"
)

// IsQuiz reports whether missions of this type are graded as quizzes
func (t MissionType) IsQuiz() bool {
	return t == MissionTypeQuiz || t == MissionTypeMiniQuiz
}

// MissionStatus is the per participant state of a mission
type MissionStatus string

const (
	MissionStatusAvailable MissionStatus = "available"
	MissionStatusInReview  MissionStatus = "in_review"
	MissionStatusCompleted MissionStatus = "completed"
)

// Quiz grading constants
const (
	QuizPassPercent = 70
	QuizCooldown    = 7 * 24 * time.Hour
)

// ContentKind tags the mission content variant
type ContentKind string

const (
	ContentKindQuiz     ContentKind = "quiz"
	ContentKindEvidence ContentKind = "evidence"
	ContentKindPassive  ContentKind = "passive"
)

// MissionContent is the type specific payload of a mission.
// Exactly one of QuizContent, EvidenceContent or PassiveContent.
type MissionContent interface {
	Kind() ContentKind
}

// QuizQuestion is one multiple choice question
type QuizQuestion struct {
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectAnswer int      `json:"correct_answer" yaml:"correct_answer"`
}

// QuizContent is graded against the 70% threshold
type QuizContent struct {
	Questions []QuizQuestion `json:"questions" yaml:"questions"`
}

// Kind implements MissionContent
func (QuizContent) Kind() ContentKind { return ContentKindQuiz }

// EvidenceContent requires an uploaded artifact
type EvidenceContent struct {
	Instructions     string   `json:"instructions,omitempty" yaml:"instructions"`
	TemplateSections []string `json:"template_sections,omitempty" yaml:"template_sections"`
	DeadlineHours    int      `json:"deadline_hours,omitempty" yaml:"deadline_hours"`
}

// Kind implements MissionContent
func (EvidenceContent) Kind() ContentKind { return ContentKindEvidence }

// PassiveContent completes on any attempt
type PassiveContent struct {
	Instructions string   `json:"instructions,omitempty" yaml:"instructions"`
	VideoURL     string   `json:"video_url,omitempty" yaml:"video_url"`
	GuideURL     string   `json:"guide_url,omitempty" yaml:"guide_url"`
	ExpertName   string   `json:"expert_name,omitempty" yaml:"expert_name"`
	ExpertTitle  string   `json:"expert_title,omitempty" yaml:"expert_title"`
	Topics       []string `json:"topics,omitempty" yaml:"topics"`
	KeyPoints    []string `json:"key_points,omitempty" yaml:"key_points"`
	MaxDuration  int      `json:"max_duration,omitempty" yaml:"max_duration"`
}

// Kind implements MissionContent
func (PassiveContent) Kind() ContentKind { return ContentKindPassive }

// Mission is an immutable published task template
type Mission struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Type             MissionType    `json:"type"`
	PointsReward     int64          `json:"points_reward"`
	CoinsReward      int64          `json:"coins_reward"`
	CompetenceArea   string         `json:"competence_area"`
	DifficultyLevel  int            `json:"difficulty_level"`
	EstimatedMinutes int            `json:"estimated_time"`
	EvidenceRequired bool           `json:"evidence_required"`
	AutoApprove      bool           `json:"auto_approve"`
	Position         int            `json:"position"`
	Requirements     []string       `json:"requirements"`
	Content          MissionContent `json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
}

// ContentKindFor decides which content variant a mission carries
func ContentKindFor(t MissionType, evidenceRequired bool) ContentKind {
	switch {
	case t.IsQuiz():
		return ContentKindQuiz
	case evidenceRequired:
		return ContentKindEvidence
	default:
		return ContentKindPassive
	}
}

// Reward returns the ledger credit for completing the mission.
// Weekly XP accrues at the same rate as points.
func (m *Mission) Reward() Credit {
	return Credit{Points: m.PointsReward, Coins: m.CoinsReward, XP: m.PointsReward}
}

// DecodeContent unmarshals a stored content payload for the given kind
func DecodeContent(kind ContentKind, raw []byte) (MissionContent, error) {
	switch kind {
	case ContentKindQuiz:
		var c QuizContent
		if err := unmarshalContent(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case ContentKindEvidence:
		var c EvidenceContent
		if err := unmarshalContent(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	case ContentKindPassive:
		var c PassiveContent
		if err := unmarshalContent(raw, &c); err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown content kind %q", kind)
}

func unmarshalContent(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// Submission is the payload of a mission attempt
type Submission struct {
	Answers    map[int]int `json:"answers,omitempty"`
	EvidenceID string      `json:"evidence_id,omitempty"`
}

// QuizResult is the graded outcome of a quiz attempt
type QuizResult struct {
	Correct int     `json:"correct"`
	Total   int     `json:"total"`
	Score   float64 `json:"score"`
	Passed  bool    `json:"passed"`
}

// MissionProgress is the state of one mission for one participant
type MissionProgress struct {
	ParticipantID string        `json:"participant_id"`
	MissionID     string        `json:"mission_id"`
	Status        MissionStatus `json:"status"`
	LastAttemptAt *time.Time    `json:"last_attempt_at,omitempty"`
	LastResult    *QuizResult   `json:"last_result,omitempty"`
	CooldownUntil *time.Time    `json:"cooldown_until,omitempty"`
	EvidenceID    string        `json:"evidence_id,omitempty"`
	ReviewNotes   string        `json:"review_notes,omitempty"`
	Attempts      int           `json:"attempts"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// CooldownActiveAt reports whether the progress is cooling down at now
func (p *MissionProgress) CooldownActiveAt(now time.Time) bool {
	return p.CooldownUntil != nil && now.Before(*p.CooldownUntil)
}

// NewProgress returns fresh AVAILABLE progress
func NewProgress(participantID, missionID string, now time.Time) *MissionProgress {
	return &MissionProgress{
		ParticipantID: participantID,
		MissionID:     missionID,
		Status:        MissionStatusAvailable,
		UpdatedAt:     now,
	}
}

// MissionWithStatus pairs a mission with a participant's progress.
// Locked is derived from prerequisite completion and never stored.
type MissionWithStatus struct {
	Mission  Mission         `json:"mission"`
	Progress MissionProgress `json:"progress"`
	Locked   bool            `json:"locked"`
}

// AttemptOutcome labels an attempt history entry
type AttemptOutcome string

const (
	AttemptPassed    AttemptOutcome = "passed"
	AttemptFailed    AttemptOutcome = "failed"
	AttemptSubmitted AttemptOutcome = "submitted"
	AttemptCompleted AttemptOutcome = "completed"
	AttemptApproved  AttemptOutcome = "approved"
	AttemptRejected  AttemptOutcome = "rejected"
)

// MissionAttempt is one entry of a participant's attempt history
type MissionAttempt struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	MissionID     string         `json:"mission_id"`
	Outcome       AttemptOutcome `json:"outcome"`
	Score         *float64       `json:"score,omitempty"`
	AttemptedAt   time.Time      `json:"attempted_at"`
}

// AttemptResult is returned to the caller of a mission attempt
type AttemptResult struct {
	Success       bool          `json:"success"`
	Status        string        `json:"status"`
	PointsAwarded int64         `json:"points_awarded"`
	CoinsAwarded  int64         `json:"coins_awarded"`
	Result        *QuizResult   `json:"result,omitempty"`
	CooldownUntil *time.Time    `json:"cooldown_until,omitempty"`
	MissionStatus MissionStatus `json:"mission_status"`
}

// Attempt result labels
const (
	AttemptStatusCompleted     = "completed"
	AttemptStatusPendingReview = "pending_review"
	AttemptStatusFailed        = "failed"
)

// CooldownStatus answers whether a participant may attempt a mission now
type CooldownStatus struct {
	CanAttempt bool       `json:"can_attempt"`
	RetryAfter *time.Time `json:"retry_after,omitempty"`
	Message    string     `json:"message,omitempty"`
}

// MarshalJSON renders the content variant next to the template fields
func (m Mission) MarshalJSON() ([]byte, error) {
	type alias Mission
	var kind ContentKind
	if m.Content != nil {
		kind = m.Content.Kind()
	}
	return json.Marshal(struct {
		alias
		ContentKind ContentKind    `json:"content_kind,omitempty"`
		Content     MissionContent `json:"content,omitempty"`
	}{alias(m), kind, m.Content})
}

// QuizPrompt is quiz content with the answer key removed
type QuizPrompt struct {
	Questions []QuizPromptQuestion `json:"questions"`
}

// QuizPromptQuestion is a question without its correct answer
type QuizPromptQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Kind implements MissionContent
func (QuizPrompt) Kind() ContentKind { return ContentKindQuiz }

// Redacted returns a copy safe to show to participants
func (m Mission) Redacted() Mission {
	quiz, ok := m.Content.(QuizContent)
	if !ok {
		return m
	}
	prompt := QuizPrompt{Questions: make([]QuizPromptQuestion, len(quiz.Questions))}
	for i, q := range quiz.Questions {
		prompt.Questions[i] = QuizPromptQuestion{Question: q.Question, Options: q.Options}
	}
	m.Content = prompt
	return m
}
