package dto

import (
	"time"

	"nextignition_backend/internal/models"
)

// UserResponse - пользователь без хеша пароля
type UserResponse struct {
	ID                               string            `json:"id"`
	Name                             string            `json:"name"`
	Email                            string            `json:"email"`
	Role                             models.UserRole   `json:"role"`
	Roles                            []models.UserRole `json:"roles"`
	Avatar                           string            `json:"avatar"`
	Profile                          ProfileResponse   `json:"profile"`
	VerificationBannerDismissedUntil *time.Time        `json:"verificationBannerDismissedUntil"`
	CreatedAt                        time.Time         `json:"createdAt"`
	UpdatedAt                        time.Time         `json:"updatedAt"`
}

type ProfileResponse struct {
	Bio        string            `json:"bio"`
	Location   string            `json:"location"`
	Skills     []string          `json:"skills"`
	Experience string            `json:"experience"`
	Expertise  string            `json:"expertise"`
	HourlyRate float64           `json:"hourlyRate"`
	Socials    map[string]string `json:"socials"`
}

func NewProfileResponse(u *models.User) ProfileResponse {
	return ProfileResponse{
		Bio:        u.Profile.Bio,
		Location:   u.Profile.Location,
		Skills:     u.SkillNames(),
		Experience: u.Profile.Experience,
		Expertise:  u.Profile.Expertise,
		HourlyRate: u.Profile.HourlyRate,
		Socials:    socialsOf(u.Profile.Socials),
	}
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:                               u.ID,
		Name:                             u.Name,
		Email:                            u.Email,
		Role:                             u.Role,
		Roles:                            rolesOf(u),
		Avatar:                           u.Avatar,
		Profile:                          NewProfileResponse(u),
		VerificationBannerDismissedUntil: u.VerificationBannerDismissedUntil,
		CreatedAt:                        u.CreatedAt,
		UpdatedAt:                        u.UpdatedAt,
	}
}

func NewUserList(users []models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// socialsOf приводит JSONMap к map[string]string, нестроковые значения пропускаются
func socialsOf(m map[string]interface{}) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// ListUsersQuery - GET /users
type ListUsersQuery struct {
	Role models.UserRole `form:"role" validate:"omitempty,is-user-role"`
}

// SearchUsersQuery - GET /users/search
type SearchUsersQuery struct {
	Q    string          `form:"q" validate:"max=100"`
	Role models.UserRole `form:"role" validate:"omitempty,is-user-role"`
}

// DismissBannerRequest - на сколько дней скрыть баннер верификации
type DismissBannerRequest struct {
	Days int `json:"days" validate:"omitempty,min=1,max=90"`
}

type DismissBannerResponse struct {
	VerificationBannerDismissedUntil time.Time `json:"verificationBannerDismissedUntil"`
}

type AvatarResponse struct {
	Avatar string `json:"avatar"`
}

type FollowStatsResponse struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}

type FollowingResponse struct {
	FollowingUserIDs []string `json:"followingUserIds"`
}

// OKResponse - {ok:true}
type OKResponse struct {
	OK bool `json:"ok"`
}
