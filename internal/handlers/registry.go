package handlers

import (
	"database/sql"

	"nextignition_backend/internal/services"
	"nextignition_backend/internal/validator"

	"github.com/gin-gonic/gin"
)

// RouteRegistrar - хендлер, который сам вешает свои маршруты на /api/v1
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc)
}

// AppHandlers содержит все хендлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	UserHandler      *UserHandler
	FollowHandler    *FollowHandler
	BookingHandler   *BookingHandler
	MatchingHandler  *MatchingHandler
	CommunityHandler *CommunityHandler
	HealthHandler    *HealthHandler
}

func NewAppHandlers(s *services.ServiceContainer, v *validator.Validator, sqlDB *sql.DB) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		AuthHandler:      NewAuthHandler(base, s.AuthService),
		UserHandler:      NewUserHandler(base, s.ProfileService, s.AuthService, s.AvatarService, s.FollowService),
		FollowHandler:    NewFollowHandler(base, s.FollowService),
		BookingHandler:   NewBookingHandler(base, s.BookingService),
		MatchingHandler:  NewMatchingHandler(base, s.MatchingService, s.StartupService),
		CommunityHandler: NewCommunityHandler(base, s.InviteService),
		HealthHandler:    NewHealthHandler(sqlDB),
	}
}

// Registrars - порядок регистрации маршрутов под /api/v1
func (h *AppHandlers) Registrars() []RouteRegistrar {
	return []RouteRegistrar{
		h.AuthHandler,
		h.UserHandler,
		h.FollowHandler,
		h.BookingHandler,
		h.MatchingHandler,
		h.CommunityHandler,
	}
}
