package domain

import "time"

// EvidenceStatus is the review state of submitted evidence
type EvidenceStatus string

const (
	EvidencePending          EvidenceStatus = "pending"
	EvidenceApproved         EvidenceStatus = "approved"
	EvidenceRejected         EvidenceStatus = "rejected"
	EvidenceRevisionRequired EvidenceStatus = "revision_required"
)

// IsReviewDecision reports whether s is a valid reviewer decision
func (s EvidenceStatus) IsReviewDecision() bool {
	return s == EvidenceApproved || s == EvidenceRejected || s == EvidenceRevisionRequired
}

// Evidence is an artifact submitted to prove mission completion
type Evidence struct {
	ID            string         `json:"id"`
	MissionID     string         `json:"mission_id"`
	ParticipantID string         `json:"participant_id"`
	FileRef       string         `json:"file_url"`
	FileName      string         `json:"file_name"`
	ContentType   string         `json:"content_type"`
	SizeBytes     int64          `json:"size_bytes"`
	Description   string         `json:"description"`
	Status        EvidenceStatus `json:"status"`
	ReviewNotes   string         `json:"review_notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty"`
}

// DocumentStatus is the verification state of a participant document
type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// Document is a participant paper such as a RUC or business plan
type Document struct {
	ID            string         `json:"id"`
	ParticipantID string         `json:"participant_id"`
	DocType       string         `json:"doc_type"`
	FileRef       string         `json:"file_url"`
	FileName      string         `json:"file_name"`
	Status        DocumentStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	ReviewedAt    *time.Time     `json:"reviewed_at,omitempty"`
}

// Upload is a file received from a participant
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Body        []byte
}
