package repository

import (
	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FacultyLoad pairs a faculty member with the number of applications
// currently assigned to them.
type FacultyLoad struct {
	Faculty  model.UserProfile
	Assigned int64
}

// UserRepository defines the database contract for UserProfile.
type UserRepository interface {
	Create(user *model.UserProfile) error
	FindByUsername(username string) (*model.UserProfile, error)
	FindByID(id uuid.UUID) (*model.UserProfile, error)
	FindByRole(role string) ([]model.UserProfile, error)
	CountByRole(role string) (int64, error)
	// FacultyLoads lists faculty with their assigned-application counts.
	// department == "" means all departments.
	FacultyLoads(department string) ([]FacultyLoad, error)
	UpdatePasswordHash(id uuid.UUID, hash string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) Create(user *model.UserProfile) error {
	return r.db.Create(user).Error
}

func (r *userRepository) FindByUsername(username string) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(id uuid.UUID) (*model.UserProfile, error) {
	var user model.UserProfile
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByRole(role string) ([]model.UserProfile, error) {
	var users []model.UserProfile
	err := r.db.Where("role = ?", role).Order("full_name ASC").Find(&users).Error
	return users, err
}

func (r *userRepository) CountByRole(role string) (int64, error) {
	var count int64
	err := r.db.Model(&model.UserProfile{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (r *userRepository) FacultyLoads(department string) ([]FacultyLoad, error) {
	query := r.db.Where("role = ?", model.RoleFaculty)
	if department != "" {
		query = query.Where("department = ?", department)
	}

	var faculty []model.UserProfile
	if err := query.Order("full_name ASC").Find(&faculty).Error; err != nil {
		return nil, err
	}

	loads := make([]FacultyLoad, 0, len(faculty))
	for _, f := range faculty {
		var assigned int64
		err := r.db.Model(&model.InternshipApplication{}).
			Where("assigned_faculty_id = ?", f.ID).
			Count(&assigned).Error
		if err != nil {
			return nil, err
		}
		loads = append(loads, FacultyLoad{Faculty: f, Assigned: assigned})
	}
	return loads, nil
}

func (r *userRepository) UpdatePasswordHash(id uuid.UUID, hash string) error {
	return r.db.Model(&model.UserProfile{}).
		Where("id = ?", id).
		Update("password_hash", hash).Error
}
