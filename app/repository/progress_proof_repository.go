package repository

import (
	"time"

	"github.com/rakesh-s-omen/SmartIntern/app/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProgressProofRepository defines database operations for progress proofs.
type ProgressProofRepository interface {
	Create(proof *model.ProgressProof) error
	FindByID(id uuid.UUID) (*model.ProgressProof, error)
	FindByApplication(applicationID uuid.UUID) ([]model.ProgressProof, error)
	UpdateVerification(id uuid.UUID, status, remarks string, verifierID uuid.UUID, at time.Time) error
}

type progressProofRepository struct {
	db *gorm.DB
}

func NewProgressProofRepository(db *gorm.DB) ProgressProofRepository {
	return &progressProofRepository{db}
}

func (r *progressProofRepository) Create(proof *model.ProgressProof) error {
	return r.db.Create(proof).Error
}

func (r *progressProofRepository) FindByID(id uuid.UUID) (*model.ProgressProof, error) {
	var proof model.ProgressProof
	if err := r.db.Where("id = ?", id).First(&proof).Error; err != nil {
		return nil, err
	}
	return &proof, nil
}

func (r *progressProofRepository) FindByApplication(applicationID uuid.UUID) ([]model.ProgressProof, error) {
	var proofs []model.ProgressProof
	err := r.db.
		Preload("VerifiedBy").
		Where("application_id = ?", applicationID).
		Order("submission_date DESC").
		Find(&proofs).Error
	return proofs, err
}

func (r *progressProofRepository) UpdateVerification(id uuid.UUID, status, remarks string, verifierID uuid.UUID, at time.Time) error {
	return r.db.Model(&model.ProgressProof{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_status": status,
			"faculty_remarks":     remarks,
			"verified_by_id":      verifierID,
			"verification_date":   at,
		}).Error
}
