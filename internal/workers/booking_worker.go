package workers

import (
	"context"
	"time"

	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// BookingWorker переводит подтвержденные сессии прошедших дней в completed
type BookingWorker struct {
	db          *gorm.DB
	bookingRepo repositories.BookingRepository
	interval    time.Duration
	now         func() time.Time
}

func NewBookingWorker(db *gorm.DB, bookingRepo repositories.BookingRepository, interval time.Duration) *BookingWorker {
	return &BookingWorker{
		db:          db,
		bookingRepo: bookingRepo,
		interval:    interval,
		now:         time.Now,
	}
}

// Start запускает фоновую задачу; останавливается вместе с ctx.
// interval <= 0 отключает воркер.
func (w *BookingWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		logger.Info("Booking worker disabled")
		return
	}
	go w.loop(ctx)
}

func (w *BookingWorker) loop(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Booking worker stopped")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				logger.WithError(err).Error("Error auto-completing bookings")
			}
		}
	}
}

// RunOnce - один проход; сегодняшние сессии не трогаем
func (w *BookingWorker) RunOnce(ctx context.Context) (int64, error) {
	today := w.now().UTC().Format(dateLayout)

	n, err := w.bookingRepo.CompleteBefore(w.db.WithContext(ctx), today)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		metrics.BookingEventsTotal.WithLabelValues(string(models.BookingStatusCompleted)).Add(float64(n))
		logger.Info("Auto-completed past bookings", "count", n, "before", today)
	}
	return n, nil
}
