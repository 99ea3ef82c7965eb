package model

import (
	"strconv"
	"strings"
	"time"
)

type Candidate struct {
	ID              string    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Location        string    `json:"location"`
	TechnicalSkills string    `gorm:"type:text" json:"technical_skills"` // free text, comma/space delimited
	ExperienceYears string    `gorm:"type:varchar(20)" json:"experience_years"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}

// Experience parses the raw experience_years field. Bulk-uploaded candidates
// sometimes carry garbage here ("5 yrs", "", "n/a"); anything unparseable
// counts as zero years.
func (c *Candidate) Experience() int {
	raw := strings.TrimSpace(c.ExperienceYears)
	if raw == "" {
		return 0
	}
	years, err := strconv.Atoi(raw)
	if err != nil || years < 0 {
		return 0
	}
	return years
}
