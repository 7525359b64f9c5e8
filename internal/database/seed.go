package database

import (
	"errors"
	"fmt"

	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SeedFirstAdmin создает администратора, если пользователя с таким email еще нет.
// Регистрация через API роль admin не выдает, поэтому это единственный вход в нее.
func SeedFirstAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", email).First(&existing).Error
		if err == nil {
			if existing.HasRole(models.UserRoleAdmin) {
				logger.Info("Admin user already exists. Skipping creation.", "email", email)
				return nil
			}
			existing.GrantRole(models.UserRoleAdmin)
			logger.Warn("Granting admin role to existing user", "email", email)
			return tx.Model(&existing).Update("roles", existing.Roles).Error
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check for admin user: %w", err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}

		admin := &models.User{
			Name:         "Administrator",
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.UserRoleAdmin,
			Roles:        datatypes.NewJSONSlice([]models.UserRole{models.UserRoleAdmin}),
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		logger.Info("Created first admin user", "email", email)
		return nil
	})
}
