package handlers_test

import (
	"net/http"
	"testing"

	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const expertID = "22222222-2222-2222-2222-222222222222"

func TestBookingHandler_CreateBooking(t *testing.T) {
	valid := map[string]interface{}{
		"expert": expertID, "date": "2026-03-10", "startTime": "14:30", "duration": 60, "topic": "Fundraising",
	}

	t.Run("created", func(t *testing.T) {
		e := newEnv(t)
		subject := founder()
		e.booking.On("CreateBooking", e.db, *subject, mock.MatchedBy(func(r *dto.CreateBookingRequest) bool {
			return r.Expert == expertID && r.Duration == 60
		})).Return(&dto.BookingResponse{ID: "b1", Status: models.BookingStatusPending}, nil)

		w := e.do(t, http.MethodPost, "/api/v1/bookings", valid, subject)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, models.BookingStatusPending, decode[dto.BookingResponse](t, w).Status)
	})

	t.Run("bad time format", func(t *testing.T) {
		e := newEnv(t)
		body := map[string]interface{}{"expert": expertID, "date": "2026-03-10", "startTime": "2pm", "duration": 60}
		w := e.do(t, http.MethodPost, "/api/v1/bookings", body, founder())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("requires auth", func(t *testing.T) {
		e := newEnv(t)
		w := e.do(t, http.MethodPost, "/api/v1/bookings", valid, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBookingHandler_ListMyBookings(t *testing.T) {
	e := newEnv(t)
	subject := expert()
	e.booking.On("ListMyBookings", e.db, *subject).Return([]*dto.BookingResponse{}, nil)

	w := e.do(t, http.MethodGet, "/api/v1/bookings/mine", nil, subject)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestBookingHandler_UpdateStatus(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		e := newEnv(t)
		subject := founder()
		e.booking.On("UpdateBookingStatus", e.db, *subject, "b1", mock.MatchedBy(func(r *dto.UpdateBookingStatusRequest) bool {
			return r.Status == models.BookingStatusConfirmed
		})).Return(nil, apperrors.ErrInsufficientPermissions)

		w := e.do(t, http.MethodPatch, "/api/v1/bookings/b1/status", map[string]string{"status": "confirmed"}, subject)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid transition", func(t *testing.T) {
		e := newEnv(t)
		subject := expert()
		e.booking.On("UpdateBookingStatus", e.db, *subject, "b1", mock.Anything).
			Return(nil, apperrors.ErrInvalidBookingTransition)

		w := e.do(t, http.MethodPatch, "/api/v1/bookings/b1/status", map[string]string{"status": "pending"}, subject)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, apperrors.CodeInvalidTransition, decodeError(t, w).Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		e := newEnv(t)
		w := e.do(t, http.MethodPatch, "/api/v1/bookings/b1/status", map[string]string{"status": "archived"}, expert())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
