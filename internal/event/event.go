package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"`            // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Event types published by the engines after their atomic unit commits
const (
	ParticipantRegistered Type = "participant.registered"
	MissionCompleted      Type = "mission.completed"
	MissionQuizFailed     Type = "mission.quiz_failed"
	EvidenceSubmitted     Type = "evidence.submitted"
	EvidenceReviewed      Type = "evidence.reviewed"
	DocumentUploaded      Type = "document.uploaded"
	RewardRedeemed        Type = "reward.redeemed"
	RedemptionUsed        Type = "reward.redemption_used"
	LeagueJoined          Type = "league.joined"
	LeagueRolledOver      Type = "league.rolled_over"
)

// ParticipantRegisteredPayloadV1 is the typed payload for participant registration
type ParticipantRegisteredPayloadV1 struct {
	ParticipantID string `json:"participant_id"`
	City          string `json:"city"`
	Cohort        string `json:"cohort,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// MissionCompletedPayloadV1 is the typed payload for mission completions
type MissionCompletedPayloadV1 struct {
	ParticipantID string  `json:"participant_id"`
	MissionID     string  `json:"mission_id"`
	MissionType   string  `json:"mission_type"`
	PointsAwarded int64   `json:"points_awarded"`
	CoinsAwarded  int64   `json:"coins_awarded"`
	Score         float64 `json:"score,omitempty"`
	Source        string  `json:"source"`          // "attempt" or "review"
	Timestamp     int64   `json:"timestamp"`
}

// MissionQuizFailedPayloadV1 is the typed payload for failed quiz attempts
type MissionQuizFailedPayloadV1 struct {
	ParticipantID string    `json:"participant_id"`
	MissionID     string    `json:"mission_id"`
	Score         float64   `json:"score"`
	RetryAfter    time.Time `json:"retry_after"`
}

// EvidencePayloadV1 is the typed payload for evidence submission and review
type EvidencePayloadV1 struct {
	EvidenceID    string `json:"evidence_id"`
	ParticipantID string `json:"participant_id"`
	MissionID     string `json:"mission_id"`
	MissionTitle  string `json:"mission_title,omitempty"`
	Status        string `json:"status"`
	FileRef       string `json:"file_ref,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Timestamp     int64  `json:"timestamp"`
}

// DocumentUploadedPayloadV1 is the typed payload for document uploads
type DocumentUploadedPayloadV1 struct {
	DocumentID    string `json:"document_id"`
	ParticipantID string `json:"participant_id"`
	DocType       string `json:"doc_type"`
	Timestamp     int64  `json:"timestamp"`
}

// RewardRedeemedPayloadV1 is the typed payload for redemptions and their fulfilment
type RewardRedeemedPayloadV1 struct {
	ParticipantID  string `json:"participant_id"`
	RewardID       string `json:"reward_id"`
	RedemptionCode string `json:"redemption_code"`
	CoinsSpent     int64  `json:"coins_spent"`
	Status         string `json:"status"`
	Timestamp      int64  `json:"timestamp"`
}

// LeagueJoinedPayloadV1 is the typed payload for league joins
type LeagueJoinedPayloadV1 struct {
	LeagueID      string `json:"league_id"`
	ParticipantID string `json:"participant_id"`
	Timestamp     int64  `json:"timestamp"`
}

// LeagueRolledOverPayloadV1 is the typed payload for completed weekly rollovers
type LeagueRolledOverPayloadV1 struct {
	PreviousCycle     string `json:"previous_cycle"`
	CurrentCycle      string `json:"current_cycle"`
	LeaguesClosed     int    `json:"leagues_closed"`
	LeaguesCreated    int    `json:"leagues_created"`
	ParticipantsReset int64  `json:"participants_reset"`
	RewardsPaid       int    `json:"rewards_paid"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}, metadata Metadata) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     t,
		Payload:  payload,
		Metadata: metadata,
	}
}

// NewParticipantRegisteredEvent creates a participant registration event
func NewParticipantRegisteredEvent(participantID, city, cohort string) Event {
	return newEvent(ParticipantRegistered, ParticipantRegisteredPayloadV1{
		ParticipantID: participantID,
		City:          city,
		Cohort:        cohort,
		Timestamp:     time.Now().Unix(),
	}, nil)
}

// NewMissionCompletedEvent creates a mission completion event
func NewMissionCompletedEvent(participantID, missionID, missionType string, points, coins int64, score float64, source string) Event {
	return newEvent(MissionCompleted, MissionCompletedPayloadV1{
		ParticipantID: participantID,
		MissionID:     missionID,
		MissionType:   missionType,
		PointsAwarded: points,
		CoinsAwarded:  coins,
		Score:         score,
		Source:        source,
		Timestamp:     time.Now().Unix(),
	}, Metadata{MetadataKeySource: source})
}

// NewMissionQuizFailedEvent creates a failed quiz event
func NewMissionQuizFailedEvent(participantID, missionID string, score float64, retryAfter time.Time) Event {
	return newEvent(MissionQuizFailed, MissionQuizFailedPayloadV1{
		ParticipantID: participantID,
		MissionID:     missionID,
		Score:         score,
		RetryAfter:    retryAfter,
	}, nil)
}

// NewEvidenceEvent creates an evidence submitted or reviewed event
func NewEvidenceEvent(t Type, payload EvidencePayloadV1) Event {
	if payload.Timestamp == 0 {
		payload.Timestamp = time.Now().Unix()
	}
	return newEvent(t, payload, nil)
}

// NewDocumentUploadedEvent creates a document upload event
func NewDocumentUploadedEvent(documentID, participantID, docType string) Event {
	return newEvent(DocumentUploaded, DocumentUploadedPayloadV1{
		DocumentID:    documentID,
		ParticipantID: participantID,
		DocType:       docType,
		Timestamp:     time.Now().Unix(),
	}, nil)
}

// NewRewardRedeemedEvent creates a redemption event of type t
func NewRewardRedeemedEvent(t Type, participantID, rewardID, code string, coinsSpent int64, status string) Event {
	return newEvent(t, RewardRedeemedPayloadV1{
		ParticipantID:  participantID,
		RewardID:       rewardID,
		RedemptionCode: code,
		CoinsSpent:     coinsSpent,
		Status:         status,
		Timestamp:      time.Now().Unix(),
	}, nil)
}

// NewLeagueJoinedEvent creates a league join event
func NewLeagueJoinedEvent(leagueID, participantID string) Event {
	return newEvent(LeagueJoined, LeagueJoinedPayloadV1{
		LeagueID:      leagueID,
		ParticipantID: participantID,
		Timestamp:     time.Now().Unix(),
	}, nil)
}

// NewLeagueRolledOverEvent creates a rollover completion event
func NewLeagueRolledOverEvent(payload LeagueRolledOverPayloadV1) Event {
	return newEvent(LeagueRolledOver, payload, Metadata{MetadataKeyCycle: payload.CurrentCycle})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
