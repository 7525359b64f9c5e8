package services

import (
	"context"
	"errors"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/email"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingService interface {
	CreateBooking(db *gorm.DB, subject auth.Subject, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	ListMyBookings(db *gorm.DB, subject auth.Subject) ([]*dto.BookingResponse, error)
	UpdateBookingStatus(db *gorm.DB, subject auth.Subject, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error)
}

type bookingService struct {
	bookingRepo repositories.BookingRepository
	userRepo    repositories.UserRepository
	notifier    *Notifier
}

func NewBookingService(
	bookingRepo repositories.BookingRepository,
	userRepo repositories.UserRepository,
	notifier *Notifier,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

// CreateBooking - бронь от имени вызывающего; пересечения слотов не проверяются
func (s *bookingService) CreateBooking(db *gorm.DB, subject auth.Subject, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if subject.Is(req.Expert) {
		return nil, apperrors.ErrCannotBookSelf
	}
	if _, err := uuid.Parse(req.Expert); err != nil {
		return nil, apperrors.ErrExpertNotFound
	}

	expert, err := s.userRepo.FindByID(db, req.Expert)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrExpertNotFound)
	}

	booking := &models.Booking{
		FounderID: subject.UserID,
		ExpertID:  expert.ID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Duration:  req.Duration,
		Topic:     req.Topic,
		Notes:     req.Notes,
		Status:    models.BookingStatusPending,
	}
	if err := s.bookingRepo.Create(db, booking); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	created, err := s.bookingRepo.FindByID(db, booking.ID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrBookingNotFound, apperrors.ErrBookingNotFound)
	}

	metrics.BookingEventsTotal.WithLabelValues(string(created.Status)).Inc()
	s.notifyExpert(db.Statement.Context, expert, created)

	return dto.NewBookingResponse(created), nil
}

func (s *bookingService) notifyExpert(ctx context.Context, expert *models.User, b *models.Booking) {
	founderName := ""
	if b.Founder != nil {
		founderName = b.Founder.Name
	}
	s.notifier.Notify(ctx, expert.Email, "New session request", email.TemplateBookingRequest, email.TemplateData{
		"ExpertName":  expert.Name,
		"FounderName": founderName,
		"Date":        b.Date,
		"StartTime":   b.StartTime,
		"Duration":    b.Duration,
		"Topic":       b.Topic,
	})
}

// ListMyBookings: founder видит свои запросы, expert - входящие, admin - все, остальные - ничего
func (s *bookingService) ListMyBookings(db *gorm.DB, subject auth.Subject) ([]*dto.BookingResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	var filter repositories.BookingFilter
	switch subject.Role {
	case models.UserRoleFounder:
		filter.FounderID = subject.UserID
	case models.UserRoleExpert:
		filter.ExpertID = subject.UserID
	case models.UserRoleAdmin:
	default:
		return []*dto.BookingResponse{}, nil
	}

	bookings, err := s.bookingRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return dto.NewBookingList(bookings), nil
}

// UpdateBookingStatus проверяет права, затем граф переходов; запись условная по текущему статусу
func (s *bookingService) UpdateBookingStatus(db *gorm.DB, subject auth.Subject, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if !req.Status.IsValid() {
		return nil, apperrors.ErrInvalidBookingStatus
	}
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, apperrors.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.FindByID(db, bookingID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrBookingNotFound, apperrors.ErrBookingNotFound)
	}

	if !auth.CanSetBookingStatus(subject, booking, req.Status) {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if !booking.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidBookingTransition.WithDetails(map[string]string{
			"from": string(booking.Status),
			"to":   string(req.Status),
		})
	}

	if err := s.bookingRepo.UpdateStatus(db, booking.ID, booking.Status, req.Status); err != nil {
		if errors.Is(err, repositories.ErrBookingStatusChanged) {
			return nil, apperrors.ErrInvalidBookingTransition
		}
		return nil, mapNotFound(err, repositories.ErrBookingNotFound, apperrors.ErrBookingNotFound)
	}

	updated, err := s.bookingRepo.FindByID(db, booking.ID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrBookingNotFound, apperrors.ErrBookingNotFound)
	}

	metrics.BookingEventsTotal.WithLabelValues(string(updated.Status)).Inc()
	logger.CtxInfo(db.Statement.Context, "booking status changed",
		"booking_id", updated.ID, "from", booking.Status, "to", updated.Status)

	return dto.NewBookingResponse(updated), nil
}
