package repositories

import (
	"nextignition_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	// Ensure создает ребро, если его нет; created=false при повторе
	Ensure(db *gorm.DB, followerID, followingID string) (created bool, err error)
	Delete(db *gorm.DB, followerID, followingID string) error
	FollowingIDs(db *gorm.DB, followerID string) ([]string, error)
	CountFollowers(db *gorm.DB, userID string) (int64, error)
	CountFollowing(db *gorm.DB, userID string) (int64, error)
}

type followRepository struct{}

func NewFollowRepository() FollowRepository {
	return &followRepository{}
}

func (r *followRepository) Ensure(db *gorm.DB, followerID, followingID string) (bool, error) {
	follow := models.Follow{FollowerID: followerID, FollowingID: followingID}
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *followRepository) Delete(db *gorm.DB, followerID, followingID string) error {
	return db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) FollowingIDs(db *gorm.DB, followerID string) ([]string, error) {
	ids := make([]string, 0)
	err := db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Order("created_at ASC").
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *followRepository) CountFollowers(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("following_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *followRepository) CountFollowing(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}
