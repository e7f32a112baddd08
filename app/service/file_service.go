package service

import (
	"context"
	"errors"

	"github.com/rakesh-s-omen/SmartIntern/app/model"
	"github.com/rakesh-s-omen/SmartIntern/app/repository"
	"github.com/rakesh-s-omen/SmartIntern/utils"
)

// FileService serves stored artifacts with the portal's access rule:
// students see their own files, faculty see files of students in their
// department, admin sees everything.
type FileService interface {
	Serve(ctx context.Context, actor Actor, fileID string) (*model.StoredFile, error)
}

type fileService struct {
	fileRepo repository.FileRepository
}

func NewFileService(fileRepo repository.FileRepository) FileService {
	return &fileService{fileRepo: fileRepo}
}

func (s *fileService) Serve(ctx context.Context, actor Actor, fileID string) (*model.StoredFile, error) {
	file, err := s.fileRepo.FindByID(ctx, fileID)
	if errors.Is(err, repository.ErrFileNotFound) {
		return nil, utils.NewNotFound("file not found")
	}
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsAdmin():
	case actor.IsStudent() && file.OwnerID == actor.ID:
	case actor.IsFaculty() && file.Department == actor.Department:
	default:
		return nil, utils.NewPermissionDenied("you do not have access to this file")
	}

	return file, nil
}
