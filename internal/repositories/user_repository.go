package repositories

import (
	"errors"
	"time"

	"nextignition_backend/internal/models"

	"gorm.io/gorm"
)

// UserSearch - фильтр поиска пользователей
type UserSearch struct {
	Query string
	Role  models.UserRole
	Limit int
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	Exists(db *gorm.DB, id string) (bool, error)

	// UpdateProfile сохраняет скалярные поля; при replaceSkills навыки перезаписываются целиком
	UpdateProfile(db *gorm.DB, user *models.User, replaceSkills bool) error
	UpdateRoles(db *gorm.DB, user *models.User) error
	UpdateAvatar(db *gorm.DB, userID, avatarURL string) error
	UpdateBannerDismissal(db *gorm.DB, userID string, until time.Time) error

	FindByRole(db *gorm.DB, role models.UserRole, limit int) ([]models.User, error)
	Search(db *gorm.DB, filter UserSearch) ([]models.User, error)
	FindExpertsByIndustry(db *gorm.DB, industry string, limit int) ([]models.User, error)
}

type userRepository struct{}

func NewUserRepository() UserRepository {
	return &userRepository{}
}

func withSkills(db *gorm.DB) *gorm.DB {
	return db.Preload("Skills", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	})
}

func (r *userRepository) Create(db *gorm.DB, user *models.User) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUserAlreadyExists
	}

	// уникальный индекс ловит гонку двух регистраций
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := withSkills(db).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := withSkills(db).First(&user, "email = ?", email).Error; err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	return &user, nil
}

func (r *userRepository) Exists(db *gorm.DB, id string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UpdateProfile(db *gorm.DB, user *models.User, replaceSkills bool) error {
	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
			"profile_bio":         user.Profile.Bio,
			"profile_location":    user.Profile.Location,
			"profile_experience":  user.Profile.Experience,
			"profile_expertise":   user.Profile.Expertise,
			"profile_hourly_rate": user.Profile.HourlyRate,
			"profile_socials":     user.Profile.Socials,
			"updated_at":          time.Now(),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		if !replaceSkills {
			return nil
		}

		if err := tx.Where("user_id = ?", user.ID).Delete(&models.UserSkill{}).Error; err != nil {
			return err
		}
		if len(user.Skills) == 0 {
			return nil
		}
		for i := range user.Skills {
			user.Skills[i].ID = 0
			user.Skills[i].UserID = user.ID
			user.Skills[i].Position = i
		}
		return tx.Create(&user.Skills).Error
	})
}

func (r *userRepository) UpdateRoles(db *gorm.DB, user *models.User) error {
	result := db.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"role":       user.Role,
		"roles":      user.Roles,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateAvatar(db *gorm.DB, userID, avatarURL string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"avatar":     avatarURL,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) UpdateBannerDismissal(db *gorm.DB, userID string, until time.Time) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"verification_banner_dismissed_until": until,
		"updated_at":                          time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *userRepository) FindByRole(db *gorm.DB, role models.UserRole, limit int) ([]models.User, error) {
	query := withSkills(db)
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var users []models.User
	err := query.Order("created_at ASC").Limit(limit).Find(&users).Error
	return users, err
}

// Search ищет по подстроке в имени, био и навыках без учета регистра
func (r *userRepository) Search(db *gorm.DB, filter UserSearch) ([]models.User, error) {
	query := withSkills(db)
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.Query != "" {
		like := likePattern(filter.Query)
		query = query.Where(
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(profile_bio) LIKE ? ESCAPE '\' OR EXISTS (
				SELECT 1 FROM user_skills s WHERE s.user_id = users.id AND LOWER(s.skill) LIKE ? ESCAPE '\'))`,
			like, like, like,
		)
	}

	var users []models.User
	err := query.Order("created_at ASC").Limit(filter.Limit).Find(&users).Error
	return users, err
}

// FindExpertsByIndustry: активная роль expert и совпадение экспертизы или одного из навыков
func (r *userRepository) FindExpertsByIndustry(db *gorm.DB, industry string, limit int) ([]models.User, error) {
	var users []models.User
	err := withSkills(db).
		Where("role = ?", models.UserRoleExpert).
		Where(`(profile_expertise = ? OR EXISTS (
			SELECT 1 FROM user_skills s WHERE s.user_id = users.id AND s.skill = ?))`, industry, industry).
		Order("created_at ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
