package repository

import (
	"github.com/fadilmartias/talent-matcher/internal/model"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) FindByIDs(ids []string) ([]model.Candidate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var candidates []model.Candidate
	err := r.db.Where("id IN ?", ids).Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepository) FindAll(limit int) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := r.db.Limit(limit).Find(&candidates).Error
	return candidates, err
}
