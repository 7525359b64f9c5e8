package handlers

import (
	"net/http"

	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	*BaseHandler
	bookingService services.BookingService
}

func NewBookingHandler(base *BaseHandler, bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		BaseHandler:    base,
		bookingService: bookingService,
	}
}

func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	bookings := rg.Group("/bookings", authMiddleware)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("/mine", h.ListMyBookings)
		bookings.PATCH("/:id/status", h.UpdateStatus)
	}
}

// CreateBooking godoc
// @Summary Запросить сессию с экспертом
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBookingRequest true "Слот и тема"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.CreateBooking(h.GetDB(c), subject, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListMyBookings godoc
// @Summary Мои брони, по дате и времени начала
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.BookingResponse
// @Router /bookings/mine [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	bookings, err := h.bookingService.ListMyBookings(h.GetDB(c), subject)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// UpdateStatus godoc
// @Summary Сменить статус брони
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Новый статус"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(h.GetDB(c), subject, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}
