package services

import (
	"strings"
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ListByRoleLimit  = 50
	SearchUsersLimit = 20

	DefaultBannerDismissDays = 7
	MaxBannerDismissDays     = 90
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error)
	UpdateProfile(db *gorm.DB, subject auth.Subject, patch *dto.ProfilePatch) (*dto.UserResponse, error)
	ListByRole(db *gorm.DB, role models.UserRole) ([]*dto.UserResponse, error)
	SearchUsers(db *gorm.DB, query *dto.SearchUsersQuery) ([]*dto.UserResponse, error)
	DismissVerificationBanner(db *gorm.DB, subject auth.Subject, days int) (*dto.DismissBannerResponse, error)
}

type profileService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &profileService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// GetProfile: некорректный id неотличим от отсутствующего пользователя
func (s *profileService) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	return dto.NewUserResponse(user), nil
}

// UpdateProfile - частичное обновление: непереданные поля не трогаем
func (s *profileService) UpdateProfile(db *gorm.DB, subject auth.Subject, patch *dto.ProfilePatch) (*dto.UserResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, subject.UserID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	if patch.IsEmpty() {
		return dto.NewUserResponse(user), nil
	}

	skillsChanged := patch.Apply(user)
	if err := s.userRepo.UpdateProfile(db, user, skillsChanged); err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	updated, err := s.userRepo.FindByID(db, user.ID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	return dto.NewUserResponse(updated), nil
}

func (s *profileService) ListByRole(db *gorm.DB, role models.UserRole) ([]*dto.UserResponse, error) {
	if role != "" && !role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, err := s.userRepo.FindByRole(db, role, ListByRoleLimit)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserList(users), nil
}

func (s *profileService) SearchUsers(db *gorm.DB, query *dto.SearchUsersQuery) ([]*dto.UserResponse, error) {
	if query.Role != "" && !query.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	users, err := s.userRepo.Search(db, repositories.UserSearch{
		Query: strings.TrimSpace(query.Q),
		Role:  query.Role,
		Limit: SearchUsersLimit,
	})
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewUserList(users), nil
}

// DismissVerificationBanner скрывает баннер на days дней (0 - по умолчанию)
func (s *profileService) DismissVerificationBanner(db *gorm.DB, subject auth.Subject, days int) (*dto.DismissBannerResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if days == 0 {
		days = DefaultBannerDismissDays
	}
	if days < 0 || days > MaxBannerDismissDays {
		return nil, apperrors.NewBadRequestError("days must be between 1 and 90")
	}

	until := s.now().UTC().Add(time.Duration(days) * 24 * time.Hour)
	if err := s.userRepo.UpdateBannerDismissal(db, subject.UserID, until); err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	return &dto.DismissBannerResponse{VerificationBannerDismissedUntil: until}, nil
}
