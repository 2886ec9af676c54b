package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationDraft is one candidate submission for a posting. Drafts are
// ephemeral: they are validated and acknowledged, never stored.
type ApplicationDraft struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
	LinkedIn          string `json:"linkedin,omitempty"`
	MotivationText    string `json:"motivation_text"`
	NationalityAnswer string `json:"nationality_answer,omitempty"`
}

// ApplicationReceipt acknowledges a successful submission.
type ApplicationReceipt struct {
	Reference   uuid.UUID `json:"reference"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// NewApplicationReceipt builds the acknowledgement for a validated draft.
func NewApplicationReceipt(jobID, jobTitle string, now time.Time) ApplicationReceipt {
	return ApplicationReceipt{
		Reference:   uuid.New(),
		JobID:       jobID,
		JobTitle:    jobTitle,
		SubmittedAt: now.UTC(),
	}
}
