package repositories

import (
	"nextignition_backend/internal/models"

	"gorm.io/gorm"
)

type StartupRepository interface {
	Create(db *gorm.DB, startup *models.Startup) error
	FindByID(db *gorm.DB, id string) (*models.Startup, error)
}

type startupRepository struct{}

func NewStartupRepository() StartupRepository {
	return &startupRepository{}
}

func (r *startupRepository) Create(db *gorm.DB, startup *models.Startup) error {
	return db.Create(startup).Error
}

func (r *startupRepository) FindByID(db *gorm.DB, id string) (*models.Startup, error) {
	var startup models.Startup
	if err := db.First(&startup, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrStartupNotFound)
	}
	return &startup, nil
}
