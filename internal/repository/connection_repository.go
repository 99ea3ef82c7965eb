package repository

import (
	"github.com/fadilmartias/talent-matcher/internal/model"
	"gorm.io/gorm"
)

type ConnectionRepository struct {
	db *gorm.DB
}

func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db}
}

func (r *ConnectionRepository) ConnectedRecruiterIDs(clientID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.ClientRecruiterConnection{}).
		Where("client_id = ?", clientID).
		Limit(100).
		Pluck("recruiter_id", &ids).Error
	return ids, err
}
