package services

import (
	"strings"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type StartupService interface {
	CreateStartup(db *gorm.DB, subject auth.Subject, req *dto.CreateStartupRequest) (*dto.StartupResponse, error)
	GetStartup(db *gorm.DB, startupID string) (*dto.StartupResponse, error)
}

type startupService struct {
	startupRepo repositories.StartupRepository
}

func NewStartupService(startupRepo repositories.StartupRepository) StartupService {
	return &startupService{startupRepo: startupRepo}
}

func (s *startupService) CreateStartup(db *gorm.DB, subject auth.Subject, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	startup := &models.Startup{
		Name:        strings.TrimSpace(req.Name),
		Industry:    strings.TrimSpace(req.Industry),
		Description: req.Description,
		FounderID:   subject.UserID,
		Skills:      datatypes.JSONSlice[string](req.Skills),
	}
	if startup.Skills == nil {
		startup.Skills = datatypes.JSONSlice[string]{}
	}

	if err := s.startupRepo.Create(db, startup); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewStartupResponse(startup), nil
}

func (s *startupService) GetStartup(db *gorm.DB, startupID string) (*dto.StartupResponse, error) {
	if _, err := uuid.Parse(startupID); err != nil {
		return nil, apperrors.ErrStartupNotFound
	}

	startup, err := s.startupRepo.FindByID(db, startupID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrStartupNotFound, apperrors.ErrStartupNotFound)
	}
	return dto.NewStartupResponse(startup), nil
}
