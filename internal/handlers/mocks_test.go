package handlers_test

import (
	"context"
	"mime/multipart"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/services/dto"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// моки сервисов; возвращаемые значения задаются через On(...).Return(...)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	args := m.Called(db, req)
	resp, _ := args.Get(0).(*dto.RegisterResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(db, req)
	resp, _ := args.Get(0).(*dto.LoginResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) GetMe(db *gorm.DB, subject auth.Subject) (*dto.MeResponse, error) {
	args := m.Called(db, subject)
	resp, _ := args.Get(0).(*dto.MeResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) SwitchRole(db *gorm.DB, subject auth.Subject, req *dto.SwitchRoleRequest) (*dto.SwitchRoleResponse, error) {
	args := m.Called(db, subject, req)
	resp, _ := args.Get(0).(*dto.SwitchRoleResponse)
	return resp, args.Error(1)
}

type mockProfileService struct{ mock.Mock }

func (m *mockProfileService) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	args := m.Called(db, userID)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) UpdateProfile(db *gorm.DB, subject auth.Subject, patch *dto.ProfilePatch) (*dto.UserResponse, error) {
	args := m.Called(db, subject, patch)
	resp, _ := args.Get(0).(*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) ListByRole(db *gorm.DB, role models.UserRole) ([]*dto.UserResponse, error) {
	args := m.Called(db, role)
	resp, _ := args.Get(0).([]*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) SearchUsers(db *gorm.DB, query *dto.SearchUsersQuery) ([]*dto.UserResponse, error) {
	args := m.Called(db, query)
	resp, _ := args.Get(0).([]*dto.UserResponse)
	return resp, args.Error(1)
}

func (m *mockProfileService) DismissVerificationBanner(db *gorm.DB, subject auth.Subject, days int) (*dto.DismissBannerResponse, error) {
	args := m.Called(db, subject, days)
	resp, _ := args.Get(0).(*dto.DismissBannerResponse)
	return resp, args.Error(1)
}

type mockAvatarService struct{ mock.Mock }

func (m *mockAvatarService) UploadAvatar(ctx context.Context, db *gorm.DB, subject auth.Subject, file *multipart.FileHeader) (*dto.AvatarResponse, error) {
	args := m.Called(ctx, db, subject, file)
	resp, _ := args.Get(0).(*dto.AvatarResponse)
	return resp, args.Error(1)
}

type mockFollowService struct{ mock.Mock }

func (m *mockFollowService) FollowUser(db *gorm.DB, subject auth.Subject, otherID string) error {
	return m.Called(db, subject, otherID).Error(0)
}

func (m *mockFollowService) UnfollowUser(db *gorm.DB, subject auth.Subject, otherID string) error {
	return m.Called(db, subject, otherID).Error(0)
}

func (m *mockFollowService) GetMyFollowing(db *gorm.DB, subject auth.Subject) (*dto.FollowingResponse, error) {
	args := m.Called(db, subject)
	resp, _ := args.Get(0).(*dto.FollowingResponse)
	return resp, args.Error(1)
}

func (m *mockFollowService) GetFollowStats(db *gorm.DB, userID string) (*dto.FollowStatsResponse, error) {
	args := m.Called(db, userID)
	resp, _ := args.Get(0).(*dto.FollowStatsResponse)
	return resp, args.Error(1)
}

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(db *gorm.DB, subject auth.Subject, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	args := m.Called(db, subject, req)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) ListMyBookings(db *gorm.DB, subject auth.Subject) ([]*dto.BookingResponse, error) {
	args := m.Called(db, subject)
	resp, _ := args.Get(0).([]*dto.BookingResponse)
	return resp, args.Error(1)
}

func (m *mockBookingService) UpdateBookingStatus(db *gorm.DB, subject auth.Subject, bookingID string, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	args := m.Called(db, subject, bookingID, req)
	resp, _ := args.Get(0).(*dto.BookingResponse)
	return resp, args.Error(1)
}

type mockMatchingService struct{ mock.Mock }

func (m *mockMatchingService) MatchExperts(db *gorm.DB, startupID string) ([]*dto.UserResponse, error) {
	args := m.Called(db, startupID)
	resp, _ := args.Get(0).([]*dto.UserResponse)
	return resp, args.Error(1)
}

type mockStartupService struct{ mock.Mock }

func (m *mockStartupService) CreateStartup(db *gorm.DB, subject auth.Subject, req *dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	args := m.Called(db, subject, req)
	resp, _ := args.Get(0).(*dto.StartupResponse)
	return resp, args.Error(1)
}

func (m *mockStartupService) GetStartup(db *gorm.DB, startupID string) (*dto.StartupResponse, error) {
	args := m.Called(db, startupID)
	resp, _ := args.Get(0).(*dto.StartupResponse)
	return resp, args.Error(1)
}

type mockInviteService struct{ mock.Mock }

func (m *mockInviteService) CreateCommunity(db *gorm.DB, subject auth.Subject, req *dto.CreateCommunityRequest) (*dto.CommunityResponse, error) {
	args := m.Called(db, subject, req)
	resp, _ := args.Get(0).(*dto.CommunityResponse)
	return resp, args.Error(1)
}

func (m *mockInviteService) CreateInvite(db *gorm.DB, subject auth.Subject, communityID string, req *dto.CreateInviteRequest) (*dto.InviteResponse, error) {
	args := m.Called(db, subject, communityID, req)
	resp, _ := args.Get(0).(*dto.InviteResponse)
	return resp, args.Error(1)
}

func (m *mockInviteService) RespondInvite(db *gorm.DB, subject auth.Subject, inviteID string, accept bool) (*dto.InviteResponse, error) {
	args := m.Called(db, subject, inviteID, accept)
	resp, _ := args.Get(0).(*dto.InviteResponse)
	return resp, args.Error(1)
}

func (m *mockInviteService) CancelInvite(db *gorm.DB, subject auth.Subject, inviteID string) (*dto.InviteResponse, error) {
	args := m.Called(db, subject, inviteID)
	resp, _ := args.Get(0).(*dto.InviteResponse)
	return resp, args.Error(1)
}

func (m *mockInviteService) ListMyInvites(db *gorm.DB, subject auth.Subject) ([]*dto.InviteResponse, error) {
	args := m.Called(db, subject)
	resp, _ := args.Get(0).([]*dto.InviteResponse)
	return resp, args.Error(1)
}
