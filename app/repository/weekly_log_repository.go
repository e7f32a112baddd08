package repository

import (
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeeklyLogRepository defines database operations for weekly logs.
type WeeklyLogRepository interface {
	Create(log *model.WeeklyLog) error
	FindByID(id uuid.UUID) (*model.WeeklyLog, error)
	FindByApplication(applicationID uuid.UUID) ([]model.WeeklyLog, error)
	WeekExists(applicationID uuid.UUID, weekNumber int) (bool, error)
	MarkReviewed(id uuid.UUID, feedback string, reviewerID uuid.UUID, at time.Time) error
	CountByApplicationAndStatus(applicationID uuid.UUID, status string) (int64, error)
	CountByFacultyAndStatus(facultyID uuid.UUID, status string) (int64, error)
}

type weeklyLogRepository struct {
	db *gorm.DB
}

func NewWeeklyLogRepository(db *gorm.DB) WeeklyLogRepository {
	return &weeklyLogRepository{db}
}

func (r *weeklyLogRepository) Create(log *model.WeeklyLog) error {
	return r.db.Create(log).Error
}

func (r *weeklyLogRepository) FindByID(id uuid.UUID) (*model.WeeklyLog, error) {
	var entry model.WeeklyLog
	if err := r.db.Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *weeklyLogRepository) FindByApplication(applicationID uuid.UUID) ([]model.WeeklyLog, error) {
	var logs []model.WeeklyLog
	err := r.db.
		Preload("ReviewedBy").
		Where("application_id = ?", applicationID).
		Order("week_number ASC").
		Find(&logs).Error
	return logs, err
}

func (r *weeklyLogRepository) WeekExists(applicationID uuid.UUID, weekNumber int) (bool, error) {
	var count int64
	err := r.db.Model(&model.WeeklyLog{}).
		Where("application_id = ? AND week_number = ?", applicationID, weekNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *weeklyLogRepository) MarkReviewed(id uuid.UUID, feedback string, reviewerID uuid.UUID, at time.Time) error {
	return r.db.Model(&model.WeeklyLog{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"review_status":    model.ReviewReviewed,
			"faculty_feedback": feedback,
			"reviewed_by_id":   reviewerID,
			"review_date":      at,
		}).Error
}

func (r *weeklyLogRepository) CountByApplicationAndStatus(applicationID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.WeeklyLog{}).
		Where("application_id = ? AND review_status = ?", applicationID, status).
		Count(&count).Error
	return count, err
}

func (r *weeklyLogRepository) CountByFacultyAndStatus(facultyID uuid.UUID, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.WeeklyLog{}).
		Joins("JOIN internship_applications ON internship_applications.id = weekly_logs.application_id").
		Where("internship_applications.assigned_faculty_id = ? AND weekly_logs.review_status = ?", facultyID, status).
		Count(&count).Error
	return count, err
}
