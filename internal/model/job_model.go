package model

import (
	"time"
)

const JobStatusActive = "active"

type Job struct {
	ID              string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title           string    `json:"title"`
	Department      string    `json:"department"`
	Location        string    `json:"location"`
	ExperienceLevel string    `json:"experience_level"` // free text, e.g. "Senior (5+ years)"
	Requirements    string    `gorm:"type:text" json:"requirements"`
	Description     string    `gorm:"type:text" json:"description"`
	RecruiterID     string    `gorm:"index" json:"recruiter_id"`
	ClientID        string    `gorm:"index" json:"client_id"`
	Status          string    `gorm:"type:varchar(20);index" json:"status"` // "active" or "inactive"
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}

// RequirementText is the text the matcher extracts skill tokens and the
// years-of-experience requirement from.
func (j *Job) RequirementText() string {
	return j.Requirements + " " + j.Description
}
