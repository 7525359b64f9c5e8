package services

import (
	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FollowService interface {
	FollowUser(db *gorm.DB, subject auth.Subject, otherID string) error
	UnfollowUser(db *gorm.DB, subject auth.Subject, otherID string) error
	GetMyFollowing(db *gorm.DB, subject auth.Subject) (*dto.FollowingResponse, error)
	GetFollowStats(db *gorm.DB, userID string) (*dto.FollowStatsResponse, error)
}

type followService struct {
	followRepo repositories.FollowRepository
	userRepo   repositories.UserRepository
}

func NewFollowService(followRepo repositories.FollowRepository, userRepo repositories.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func validateUserID(id string) error {
	if id == "" {
		return apperrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.ErrInvalidUserID
	}
	return nil
}

// FollowUser гарантирует наличие ребра; повторные и параллельные вызовы успешны
func (s *followService) FollowUser(db *gorm.DB, subject auth.Subject, otherID string) error {
	if err := requireSubject(subject.UserID); err != nil {
		return err
	}
	if err := validateUserID(otherID); err != nil {
		return err
	}
	if subject.Is(otherID) {
		return apperrors.ErrCannotFollowSelf
	}

	exists, err := s.userRepo.Exists(db, otherID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}

	created, err := s.followRepo.Ensure(db, subject.UserID, otherID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if created {
		metrics.FollowEventsTotal.WithLabelValues("follow").Inc()
	}
	return nil
}

// UnfollowUser: отсутствие ребра не ошибка
func (s *followService) UnfollowUser(db *gorm.DB, subject auth.Subject, otherID string) error {
	if err := requireSubject(subject.UserID); err != nil {
		return err
	}
	if err := validateUserID(otherID); err != nil {
		return err
	}

	if err := s.followRepo.Delete(db, subject.UserID, otherID); err != nil {
		return apperrors.DatabaseError(err)
	}
	metrics.FollowEventsTotal.WithLabelValues("unfollow").Inc()
	return nil
}

func (s *followService) GetMyFollowing(db *gorm.DB, subject auth.Subject) (*dto.FollowingResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	ids, err := s.followRepo.FollowingIDs(db, subject.UserID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.FollowingResponse{FollowingUserIDs: ids}, nil
}

func (s *followService) GetFollowStats(db *gorm.DB, userID string) (*dto.FollowStatsResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	exists, err := s.userRepo.Exists(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	followers, err := s.followRepo.CountFollowers(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	following, err := s.followRepo.CountFollowing(db, userID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &dto.FollowStatsResponse{Followers: followers, Following: following}, nil
}
