package repository

import (
	"github.com/fadilmartias/talent-matcher/internal/model"
	"gorm.io/gorm"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db}
}

// DistinctCandidateIDs returns each candidate that applied to any of the
// given jobs exactly once, regardless of how many applications they filed.
func (r *ApplicationRepository) DistinctCandidateIDs(jobIDs []string) ([]string, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.Model(&model.JobApplication{}).
		Distinct("candidate_id").
		Where("job_id IN ?", jobIDs).
		Pluck("candidate_id", &ids).Error
	return ids, err
}
