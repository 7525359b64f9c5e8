package services

import (
	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/email"
	"nextignition_backend/internal/imageprocessor"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/storage"
)

// Dependencies - внешние зависимости сервисов
type Dependencies struct {
	Tokens    *auth.TokenManager
	Storage   storage.Storage
	Processor *imageprocessor.Processor
	Email     email.Provider
	Avatar    AvatarConfig
}

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	ProfileService  ProfileService
	AvatarService   AvatarService
	BookingService  BookingService
	FollowService   FollowService
	MatchingService MatchingService
	StartupService  StartupService
	InviteService   InviteService
	Notifier        *Notifier
}

func NewServiceContainer(deps Dependencies) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	bookingRepo := repositories.NewBookingRepository()
	followRepo := repositories.NewFollowRepository()
	startupRepo := repositories.NewStartupRepository()
	communityRepo := repositories.NewCommunityRepository()

	notifier := NewNotifier(deps.Email)

	return &ServiceContainer{
		AuthService:     NewAuthService(userRepo, deps.Tokens),
		ProfileService:  NewProfileService(userRepo),
		AvatarService:   NewAvatarService(userRepo, deps.Storage, deps.Processor, deps.Avatar),
		BookingService:  NewBookingService(bookingRepo, userRepo, notifier),
		FollowService:   NewFollowService(followRepo, userRepo),
		MatchingService: NewMatchingService(startupRepo, userRepo),
		StartupService:  NewStartupService(startupRepo),
		InviteService:   NewInviteService(communityRepo, userRepo, notifier),
		Notifier:        notifier,
	}
}
