package repositories

import (
	"errors"
	"time"

	"nextignition_backend/internal/models"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	CreateCommunity(db *gorm.DB, community *models.Community) error
	FindCommunityByID(db *gorm.DB, id string) (*models.Community, error)

	// CreateInvite проверяет оба ограничения уникальности; индексы страхуют от гонки
	CreateInvite(db *gorm.DB, invite *models.CommunityInvite) error
	FindInviteByID(db *gorm.DB, id string) (*models.CommunityInvite, error)
	FindPendingInvitesForUser(db *gorm.DB, inviteeID string) ([]models.CommunityInvite, error)
	UpdateInviteStatus(db *gorm.DB, id string, from, to models.InviteStatus) error
}

type communityRepository struct{}

func NewCommunityRepository() CommunityRepository {
	return &communityRepository{}
}

func (r *communityRepository) CreateCommunity(db *gorm.DB, community *models.Community) error {
	if err := db.Create(community).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCommunityNameTaken
		}
		return err
	}
	return nil
}

func (r *communityRepository) FindCommunityByID(db *gorm.DB, id string) (*models.Community, error) {
	var community models.Community
	if err := db.First(&community, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrCommunityNotFound)
	}
	return &community, nil
}

func (r *communityRepository) CreateInvite(db *gorm.DB, invite *models.CommunityInvite) error {
	var count int64
	err := db.Model(&models.CommunityInvite{}).
		Where("community_id = ? AND invitee_id = ? AND inviter_id = ?", invite.CommunityID, invite.InviteeID, invite.InviterID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInviteAlreadySent
	}

	err = db.Model(&models.CommunityInvite{}).
		Where("community_id = ? AND invitee_id = ? AND status = ?", invite.CommunityID, invite.InviteeID, models.InviteStatusPending).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrInviteAlreadyPending
	}

	invite.Status = models.InviteStatusPending
	if err := db.Omit("Community").Create(invite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrInviteAlreadyPending
		}
		return err
	}
	return nil
}

func (r *communityRepository) FindInviteByID(db *gorm.DB, id string) (*models.CommunityInvite, error) {
	var invite models.CommunityInvite
	if err := db.Preload("Community").First(&invite, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrInviteNotFound)
	}
	return &invite, nil
}

func (r *communityRepository) FindPendingInvitesForUser(db *gorm.DB, inviteeID string) ([]models.CommunityInvite, error) {
	var invites []models.CommunityInvite
	err := db.Preload("Community").
		Where("invitee_id = ? AND status = ?", inviteeID, models.InviteStatusPending).
		Order("created_at DESC").
		Find(&invites).Error
	return invites, err
}

func (r *communityRepository) UpdateInviteStatus(db *gorm.DB, id string, from, to models.InviteStatus) error {
	result := db.Model(&models.CommunityInvite{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInviteStatusChanged
	}
	return nil
}
