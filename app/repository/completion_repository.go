package repository

import (
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompletionRepository defines database operations for internship
// completions.
type CompletionRepository interface {
	Create(completion *model.InternshipCompletion) error
	FindByID(id uuid.UUID) (*model.InternshipCompletion, error)
	FindByApplication(applicationID uuid.UUID) (*model.InternshipCompletion, error)
	ExistsForApplication(applicationID uuid.UUID) (bool, error)
	UpdateVerification(id uuid.UUID, status string, at time.Time) error
	CountCompleted() (int64, error)
}

type completionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db}
}

func (r *completionRepository) Create(completion *model.InternshipCompletion) error {
	return r.db.Create(completion).Error
}

func (r *completionRepository) FindByID(id uuid.UUID) (*model.InternshipCompletion, error) {
	var c model.InternshipCompletion
	if err := r.db.Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *completionRepository) FindByApplication(applicationID uuid.UUID) (*model.InternshipCompletion, error) {
	var c model.InternshipCompletion
	if err := r.db.Where("application_id = ?", applicationID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *completionRepository) ExistsForApplication(applicationID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.InternshipCompletion{}).
		Where("application_id = ?", applicationID).
		Count(&count).Error
	return count > 0, err
}

func (r *completionRepository) UpdateVerification(id uuid.UUID, status string, at time.Time) error {
	return r.db.Model(&model.InternshipCompletion{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"faculty_verification_status": status,
			"verification_date":           at,
		}).Error
}

func (r *completionRepository) CountCompleted() (int64, error) {
	var count int64
	err := r.db.Model(&model.InternshipCompletion{}).
		Where("completion_status = ?", true).
		Count(&count).Error
	return count, err
}
