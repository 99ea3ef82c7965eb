package repository

import (
	"github.com/fadilmartias/talent-matcher/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) FindJobByID(id string) (*model.Job, error) {
	var j model.Job
	err := r.db.First(&j, "id = ?", id).Error
	return &j, err
}

func (r *JobRepository) ActiveJobIDsByRecruiter(recruiterID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Job{}).
		Where("status = ? AND recruiter_id = ?", model.JobStatusActive, recruiterID).
		Limit(500).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepository) ActiveJobIDsByClient(clientID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.Job{}).
		Where("status = ? AND client_id = ?", model.JobStatusActive, clientID).
		Limit(500).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *JobRepository) ActiveJobIDsByRecruiters(recruiterIDs []string) ([]string, error) {
	if len(recruiterIDs) == 0 {
		return nil, nil
	}
	var ids []string
	err := r.db.Model(&model.Job{}).
		Where("status = ? AND recruiter_id IN ?", model.JobStatusActive, recruiterIDs).
		Limit(1000).
		Pluck("id", &ids).Error
	return ids, err
}
