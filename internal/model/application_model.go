package model

import (
	"time"
)

// JobApplication links a candidate to a job. The matcher reads it only to
// derive visibility scopes; status transitions happen elsewhere.
type JobApplication struct {
	ID          string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	JobID       string    `gorm:"index" json:"job_id"`
	CandidateID string    `gorm:"index" json:"candidate_id"`
	Status      string    `gorm:"type:varchar(30)" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *JobApplication) TableName() string {
	return "job_applications"
}

// ClientRecruiterConnection is one document per client-recruiter pair; a
// client can be connected to multiple recruiters at once.
type ClientRecruiterConnection struct {
	ID          string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClientID    string    `gorm:"index" json:"client_id"`
	RecruiterID string    `json:"recruiter_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *ClientRecruiterConnection) TableName() string {
	return "client_connected_recruiters"
}
