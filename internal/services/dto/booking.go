package dto

import (
	"time"

	"nextignition_backend/internal/models"
)

// CreateBookingRequest - founder запрашивает сессию с экспертом
type CreateBookingRequest struct {
	Expert    string `json:"expert" validate:"required,uuid"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	Duration  int    `json:"duration" validate:"required,min=15,max=480"`
	Topic     string `json:"topic" validate:"max=200"`
	Notes     string `json:"notes" validate:"max=2000"`
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" validate:"required,is-booking-status"`
}

// BookingParty - отображаемые поля участника брони
type BookingParty struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type BookingResponse struct {
	ID        string               `json:"id"`
	Founder   BookingParty         `json:"founder"`
	Expert    BookingParty         `json:"expert"`
	Date      string               `json:"date"`
	StartTime string               `json:"startTime"`
	Duration  int                  `json:"duration"`
	Topic     string               `json:"topic"`
	Notes     string               `json:"notes"`
	Status    models.BookingStatus `json:"status"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func NewBookingResponse(b *models.Booking) *BookingResponse {
	return &BookingResponse{
		ID:        b.ID,
		Founder:   partyOf(b.FounderID, b.Founder),
		Expert:    partyOf(b.ExpertID, b.Expert),
		Date:      b.Date,
		StartTime: b.StartTime,
		Duration:  b.Duration,
		Topic:     b.Topic,
		Notes:     b.Notes,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func NewBookingList(bookings []models.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingResponse(&bookings[i]))
	}
	return out
}

func partyOf(id string, u *models.User) BookingParty {
	if u == nil {
		return BookingParty{ID: id}
	}
	return BookingParty{ID: id, Name: u.Name, Avatar: u.Avatar}
}
