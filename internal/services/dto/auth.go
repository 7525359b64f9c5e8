package dto

import (
	"time"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/models"
)

// RegisterRequest - запрос регистрации; роль по умолчанию founder
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,max=100"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,min=6,max=72"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-self-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SwitchRoleRequest - смена активной роли
type SwitchRoleRequest struct {
	Role models.UserRole `json:"role" validate:"required,is-user-role"`
}

// RegisterResponse - 201 на /auth/register
type RegisterResponse struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	Avatar string          `json:"avatar"`
	Token  string          `json:"token"`
}

// LoginResponse - профиль и свежий токен
type LoginResponse struct {
	ID                               string            `json:"id"`
	Name                             string            `json:"name"`
	Email                            string            `json:"email"`
	Role                             models.UserRole   `json:"role"`
	Roles                            []models.UserRole `json:"roles"`
	Avatar                           string            `json:"avatar"`
	VerificationBannerDismissedUntil *time.Time        `json:"verificationBannerDismissedUntil"`
	Profile                          ProfileResponse   `json:"profile"`
	Token                            string            `json:"token"`
}

// SwitchRoleResponse - новый токен с новой активной ролью
type SwitchRoleResponse struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Email   string            `json:"email"`
	Role    models.UserRole   `json:"role"`
	Roles   []models.UserRole `json:"roles"`
	Profile ProfileResponse   `json:"profile"`
	Token   string            `json:"token"`
}

// MeResponse - пользователь и представление профиля для активной роли
type MeResponse struct {
	UserResponse
	RoleProfile auth.RoleProfile `json:"roleProfile"`
}

func NewLoginResponse(u *models.User, token string) *LoginResponse {
	return &LoginResponse{
		ID:                               u.ID,
		Name:                             u.Name,
		Email:                            u.Email,
		Role:                             u.Role,
		Roles:                            rolesOf(u),
		Avatar:                           u.Avatar,
		VerificationBannerDismissedUntil: u.VerificationBannerDismissedUntil,
		Profile:                          NewProfileResponse(u),
		Token:                            token,
	}
}

func NewSwitchRoleResponse(u *models.User, token string) *SwitchRoleResponse {
	return &SwitchRoleResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Roles:   rolesOf(u),
		Profile: NewProfileResponse(u),
		Token:   token,
	}
}

func rolesOf(u *models.User) []models.UserRole {
	roles := make([]models.UserRole, len(u.Roles))
	copy(roles, u.Roles)
	return roles
}
