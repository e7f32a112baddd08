package repository

import (
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewUpdate carries the fields a faculty review writes back.
type ReviewUpdate struct {
	Status       string
	Remarks      string
	ReviewerID   uuid.UUID
	ApprovalDate *time.Time
}

// ApplicationRepository defines database operations for internship
// applications.
type ApplicationRepository interface {
	Create(app *model.InternshipApplication) error
	FindByID(id uuid.UUID) (*model.InternshipApplication, error)
	FindByStudent(studentID uuid.UUID) ([]model.InternshipApplication, error)
	FindByAssignedFaculty(facultyID uuid.UUID) ([]model.InternshipApplication, error)
	FindAll() ([]model.InternshipApplication, error)
	UpdateReview(id uuid.UUID, update ReviewUpdate) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db}
}

func (r *applicationRepository) Create(app *model.InternshipApplication) error {
	return r.db.Create(app).Error
}

func (r *applicationRepository) FindByID(id uuid.UUID) (*model.InternshipApplication, error) {
	var app model.InternshipApplication
	err := r.db.
		Preload("Student").
		Preload("AssignedFaculty").
		Where("id = ?", id).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByStudent(studentID uuid.UUID) ([]model.InternshipApplication, error) {
	var apps []model.InternshipApplication
	err := r.db.
		Preload("AssignedFaculty").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindByAssignedFaculty(facultyID uuid.UUID) ([]model.InternshipApplication, error) {
	var apps []model.InternshipApplication
	err := r.db.
		Preload("Student").
		Where("assigned_faculty_id = ?", facultyID).
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) FindAll() ([]model.InternshipApplication, error) {
	var apps []model.InternshipApplication
	err := r.db.
		Preload("Student").
		Preload("AssignedFaculty").
		Order("created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *applicationRepository) UpdateReview(id uuid.UUID, update ReviewUpdate) error {
	updates := map[string]interface{}{
		"status":          update.Status,
		"faculty_remarks": update.Remarks,
	}
	if update.ApprovalDate != nil {
		updates["approval_date"] = *update.ApprovalDate
	}
	return r.db.Model(&model.InternshipApplication{}).
		Where("id = ?", id).
		Updates(updates).Error
}
