package repositories

import (
	"time"

	"nextignition_backend/internal/models"

	"gorm.io/gorm"
)

// BookingFilter - чьи брони отдавать; пустой фильтр означает все
type BookingFilter struct {
	FounderID string
	ExpertID  string
}

type BookingRepository interface {
	Create(db *gorm.DB, booking *models.Booking) error
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	List(db *gorm.DB, filter BookingFilter) ([]models.Booking, error)

	// UpdateStatus меняет статус, только если он все еще равен from
	UpdateStatus(db *gorm.DB, id string, from, to models.BookingStatus) error

	// CompleteBefore завершает подтвержденные брони с датой раньше day (YYYY-MM-DD)
	CompleteBefore(db *gorm.DB, day string) (int64, error)
}

type bookingRepository struct{}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{}
}

// публичная карточка участника: без email и профиля
func withParties(db *gorm.DB) *gorm.DB {
	party := func(tx *gorm.DB) *gorm.DB {
		return tx.Select("id", "name", "avatar")
	}
	return db.Preload("Founder", party).Preload("Expert", party)
}

func (r *bookingRepository) Create(db *gorm.DB, booking *models.Booking) error {
	return db.Omit("Founder", "Expert").Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := withParties(db).First(&booking, "id = ?", id).Error; err != nil {
		return nil, notFound(err, ErrBookingNotFound)
	}
	return &booking, nil
}

func (r *bookingRepository) List(db *gorm.DB, filter BookingFilter) ([]models.Booking, error) {
	query := withParties(db)
	if filter.FounderID != "" {
		query = query.Where("founder_id = ?", filter.FounderID)
	}
	if filter.ExpertID != "" {
		query = query.Where("expert_id = ?", filter.ExpertID)
	}

	var bookings []models.Booking
	err := query.Order("date ASC").Order("start_time ASC").Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepository) UpdateStatus(db *gorm.DB, id string, from, to models.BookingStatus) error {
	result := db.Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookingStatusChanged
	}
	return nil
}

func (r *bookingRepository) CompleteBefore(db *gorm.DB, day string) (int64, error) {
	result := db.Model(&models.Booking{}).
		Where("status = ? AND date < ?", models.BookingStatusConfirmed, day).
		Updates(map[string]interface{}{
			"status":     models.BookingStatusCompleted,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}
