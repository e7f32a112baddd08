package service

import (
	"errors"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Actor is the authenticated identity a request acts as, taken from the
// JWT claims so workflow checks don't need an extra user lookup.
type Actor struct {
	ID         uuid.UUID
	Role       string
	Department string
}

func (a Actor) IsAdmin() bool   { return a.Role == model.RoleAdmin }
func (a Actor) IsFaculty() bool { return a.Role == model.RoleFaculty }
func (a Actor) IsStudent() bool { return a.Role == model.RoleStudent }

// FileUpload is an uploaded artifact as received from a multipart form.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// notFoundOr converts gorm's record-not-found into the API's not-found
// error, passing other errors through.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NewNotFound(message)
	}
	return err
}
