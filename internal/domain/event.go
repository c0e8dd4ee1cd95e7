package domain

import "time"

// RuleKind selects the completion predicate of an eligibility rule
type RuleKind string

const (
	RuleMissionsCompleted RuleKind = "missions_completed"
	RuleMissionCount      RuleKind = "mission_count"
	RuleMinPoints         RuleKind = "min_points"
	RuleDocuments         RuleKind = "documents"
	RuleEvidenceApproved  RuleKind = "evidence_approved"
)

// DefaultDocumentMinutes is the effort estimate for a missing document
const DefaultDocumentMinutes = 30

// EligibilityRule is one named, weighted requirement of an event
type EligibilityRule struct {
	Name             string   `json:"name" yaml:"name"`
	Weight           float64  `json:"weight" yaml:"weight"`
	Kind             RuleKind `json:"kind" yaml:"kind"`
	MissionIDs       []string `json:"mission_ids,omitempty" yaml:"mission_ids"`
	Count            int      `json:"count,omitempty" yaml:"count"`
	CompetenceArea   string   `json:"competence_area,omitempty" yaml:"competence_area"`
	Points           int64    `json:"points,omitempty" yaml:"points"`
	DocTypes         []string `json:"doc_types,omitempty" yaml:"doc_types"`
	EstimatedMinutes int      `json:"estimated_minutes,omitempty" yaml:"estimated_minutes"`
}

// EffectiveWeight returns the rule weight, defaulting to 1
func (r EligibilityRule) EffectiveWeight() float64 {
	if r.Weight <= 0 {
		return 1
	}
	return r.Weight
}

// Event is a program activity participants qualify for
type Event struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Location    string            `json:"location"`
	Organizer   string            `json:"organizer"`
	Date        time.Time         `json:"date"`
	Capacity    int               `json:"capacity"`
	Rules       []EligibilityRule `json:"rules"`
}

// EligibilityStatus labels an overall eligibility percentage
type EligibilityStatus string

const (
	EligibilityEligible   EligibilityStatus = "eligible"
	EligibilityPartial    EligibilityStatus = "partial"
	EligibilityIneligible EligibilityStatus = "ineligible"
)

// StatusForPercentage derives the label from a percentage in [0,100]
func StatusForPercentage(pct float64) EligibilityStatus {
	switch {
	case pct >= 100:
		return EligibilityEligible
	case pct <= 0:
		return EligibilityIneligible
	default:
		return EligibilityPartial
	}
}

// RequirementResult is the evaluation of one rule
type RequirementResult struct {
	Name       string   `json:"name"`
	Kind       RuleKind `json:"kind"`
	Weight     float64  `json:"weight"`
	Percentage float64  `json:"percentage"`
	Met        bool     `json:"met"`
	Detail     string   `json:"detail,omitempty"`
	Order      int      `json:"-"`
}

// EligibilityResult is derived per query and never persisted
type EligibilityResult struct {
	EventID             string              `json:"event_id"`
	ParticipantID       string              `json:"participant_id"`
	Percentage          float64             `json:"percentage"`
	Status              EligibilityStatus   `json:"status"`
	Requirements        []RequirementResult `json:"requirements"`
	MissingRequirements []RequirementResult `json:"missing_requirements"`
}

// Priority ranks suggestions
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank orders priorities, lower first
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// ActionKind is the type of remediation a suggestion proposes
type ActionKind string

const (
	ActionCompleteMission ActionKind = "complete_mission"
	ActionUploadDocument  ActionKind = "upload_document"
	ActionSubmitEvidence  ActionKind = "submit_evidence"
)

// Suggestion is one remediating action for a missing requirement
type Suggestion struct {
	Requirement      string     `json:"requirement"`
	Action           ActionKind `json:"action"`
	ActionID         string     `json:"action_id"`
	Title            string     `json:"title"`
	Priority         Priority   `json:"priority"`
	EstimatedMinutes int        `json:"estimated_time"`
	PointsReward     int64      `json:"points_reward,omitempty"`
	RequirementOrder int        `json:"-"`
}
