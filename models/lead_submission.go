package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission outcomes, mirroring the workflow's outcome kinds
const (
	OutcomeSuccess   = "success"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport"
	OutcomeMalformed = "malformed"
	OutcomeAborted   = "aborted"
)

// ValidOutcomes lists every stored outcome value
var ValidOutcomes = []string{OutcomeSuccess, OutcomeRejected, OutcomeTransport, OutcomeMalformed, OutcomeAborted}

// IsValidOutcome checks a filter value against ValidOutcomes
func IsValidOutcome(outcome string) bool {
	for _, o := range ValidOutcomes {
		if o == outcome {
			return true
		}
	}
	return false
}

// LeadSubmission records one resolved demo request attempt
type LeadSubmission struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Lead data as sent to the intake endpoint
	Name     string `gorm:"not null" json:"name"`
	Company  string `gorm:"not null" json:"company"`
	Email    string `gorm:"not null;index" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	Industry string `gorm:"not null;index" json:"industry"`

	// Attempt result
	Outcome      string `gorm:"not null;index" json:"outcome"`
	ErrorMessage string `gorm:"type:text" json:"error_message,omitempty"`
	LatencyMS    int64  `json:"latency_ms"`

	// Audit fields
	SessionID string `gorm:"index" json:"-"`
	IPAddress string `json:"ip_address,omitempty"`
	UserAgent string `gorm:"type:text" json:"user_agent,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// BeforeCreate hook to generate UUID
func (s *LeadSubmission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

// Succeeded reports whether the endpoint accepted the lead
func (s *LeadSubmission) Succeeded() bool {
	return s.Outcome == OutcomeSuccess
}
