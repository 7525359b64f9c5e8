package services

import (
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MatchExpertsLimit = 10

type MatchingService interface {
	MatchExperts(db *gorm.DB, startupID string) ([]*dto.UserResponse, error)
}

type matchingService struct {
	startupRepo repositories.StartupRepository
	userRepo    repositories.UserRepository
}

func NewMatchingService(startupRepo repositories.StartupRepository, userRepo repositories.UserRepository) MatchingService {
	return &matchingService{
		startupRepo: startupRepo,
		userRepo:    userRepo,
	}
}

// MatchExperts - эксперты, у которых экспертиза или один из навыков равны индустрии стартапа.
// Без ранжирования: порядок регистрации, не больше MatchExpertsLimit.
func (s *matchingService) MatchExperts(db *gorm.DB, startupID string) ([]*dto.UserResponse, error) {
	if _, err := uuid.Parse(startupID); err != nil {
		return nil, apperrors.ErrStartupNotFound
	}

	startup, err := s.startupRepo.FindByID(db, startupID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrStartupNotFound, apperrors.ErrStartupNotFound)
	}

	experts, err := s.userRepo.FindExpertsByIndustry(db, startup.Industry, MatchExpertsLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserList(experts), nil
}
