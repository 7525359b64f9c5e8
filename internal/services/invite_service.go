package services

import (
	"errors"
	"strings"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/email"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InviteService interface {
	CreateCommunity(db *gorm.DB, subject auth.Subject, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error)
	CreateInvite(db *gorm.DB, subject auth.Subject, communityID string, req *dto.CreateInviteRequest) (*dto.InviteResponse, error)
	RespondInvite(db *gorm.DB, subject auth.Subject, inviteID string, accept bool) (*dto.InviteResponse, error)
	CancelInvite(db *gorm.DB, subject auth.Subject, inviteID string) (*dto.InviteResponse, error)
	ListMyInvites(db *gorm.DB, subject auth.Subject) ([]*dto.InviteResponse, error)
}

type inviteService struct {
	communityRepo repositories.CommunityRepository
	userRepo      repositories.UserRepository
	notifier      *Notifier
}

func NewInviteService(
	communityRepo repositories.CommunityRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) InviteService {
	return &inviteService{
		communityRepo: communityRepo,
		userRepo:      userRepo,
		notifier:      notifier,
	}
}

func (s *inviteService) CreateCommunity(db *gorm.DB, subject auth.Subject, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	community := &models.Community{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		OwnerID:     subject.UserID,
	}
	if err := s.communityRepo.CreateCommunity(db, community); err != nil {
		if errors.Is(err, repositories.ErrCommunityNameTaken) {
			return nil, apperrors.ErrCommunityNameTaken
		}
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewCommunityResponse(community), nil
}

// CreateInvite: один pending инвайт на (сообщество, приглашенный) и один инвайт на тройку
func (s *inviteService) CreateInvite(db *gorm.DB, subject auth.Subject, communityID string, req *dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if subject.Is(req.InviteeID) {
		return nil, apperrors.ErrCannotInviteSelf
	}
	if _, err := uuid.Parse(communityID); err != nil {
		return nil, apperrors.ErrCommunityNotFound
	}
	if _, err := uuid.Parse(req.InviteeID); err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	community, err := s.communityRepo.FindCommunityByID(db, communityID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrCommunityNotFound, apperrors.ErrCommunityNotFound)
	}
	invitee, err := s.userRepo.FindByID(db, req.InviteeID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}
	inviter, err := s.userRepo.FindByID(db, subject.UserID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	invite := &models.CommunityInvite{
		CommunityID: community.ID,
		InviteeID:   invitee.ID,
		InviterID:   inviter.ID,
	}
	if err := s.communityRepo.CreateInvite(db, invite); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInviteAlreadyPending):
			return nil, apperrors.ErrInviteAlreadyPending
		case errors.Is(err, repositories.ErrInviteAlreadySent):
			return nil, apperrors.ErrInviteAlreadySent
		}
		return nil, apperrors.DatabaseError(err)
	}
	invite.Community = community

	metrics.InviteEventsTotal.WithLabelValues(string(invite.Status)).Inc()
	s.notifier.Notify(db.Statement.Context, invitee.Email, "You are invited to "+community.Name, email.TemplateCommunityInvite, email.TemplateData{
		"InviteeName":   invitee.Name,
		"InviterName":   inviter.Name,
		"CommunityName": community.Name,
	})

	return dto.NewInviteResponse(invite), nil
}

// RespondInvite - принять или отклонить может только приглашенный
func (s *inviteService) RespondInvite(db *gorm.DB, subject auth.Subject, inviteID string, accept bool) (*dto.InviteResponse, error) {
	next := models.InviteStatusDeclined
	if accept {
		next = models.InviteStatusAccepted
	}
	return s.transition(db, subject, inviteID, next, func(inv *models.CommunityInvite) bool {
		return subject.Is(inv.InviteeID)
	})
}

// CancelInvite - отозвать может только пригласивший
func (s *inviteService) CancelInvite(db *gorm.DB, subject auth.Subject, inviteID string) (*dto.InviteResponse, error) {
	return s.transition(db, subject, inviteID, models.InviteStatusCancelled, func(inv *models.CommunityInvite) bool {
		return subject.Is(inv.InviterID)
	})
}

func (s *inviteService) transition(
	db *gorm.DB,
	subject auth.Subject,
	inviteID string,
	next models.InviteStatus,
	allowed func(*models.CommunityInvite) bool,
) (*dto.InviteResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(inviteID); err != nil {
		return nil, apperrors.ErrInviteNotFound
	}

	invite, err := s.communityRepo.FindInviteByID(db, inviteID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrInviteNotFound, apperrors.ErrInviteNotFound)
	}
	if !allowed(invite) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if invite.Status.IsTerminal() {
		return nil, apperrors.ErrInviteNotPending
	}

	if err := s.communityRepo.UpdateInviteStatus(db, invite.ID, models.InviteStatusPending, next); err != nil {
		if errors.Is(err, repositories.ErrInviteStatusChanged) {
			return nil, apperrors.ErrInviteNotPending
		}
		return nil, apperrors.DatabaseError(err)
	}

	updated, err := s.communityRepo.FindInviteByID(db, invite.ID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrInviteNotFound, apperrors.ErrInviteNotFound)
	}

	metrics.InviteEventsTotal.WithLabelValues(string(next)).Inc()
	return dto.NewInviteResponse(updated), nil
}

func (s *inviteService) ListMyInvites(db *gorm.DB, subject auth.Subject) ([]*dto.InviteResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	invites, err := s.communityRepo.FindPendingInvitesForUser(db, subject.UserID)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewInviteList(invites), nil
}
