package services

import (
	"errors"
	"slices"
	"strings"

	"nextignition_backend/internal/auth"
	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/metrics"
	"nextignition_backend/internal/models"
	"nextignition_backend/internal/repositories"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetMe(db *gorm.DB, subject auth.Subject) (*dto.MeResponse, error)
	SwitchRole(db *gorm.DB, subject auth.Subject, req *dto.SwitchRoleRequest) (*dto.SwitchRoleResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register - регистрация; роль по умолчанию founder, roles = [role]
func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	role := req.Role
	if role == "" {
		role = models.UserRoleFounder
	}
	if !slices.Contains(auth.SelfAssignableRoles, role) {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         role,
		Roles:        datatypes.JSONSlice[models.UserRole]{role},
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	metrics.RegistrationsTotal.WithLabelValues(string(role)).Inc()
	logger.CtxInfo(db.Statement.Context, "user registered", "user_id", user.ID, "role", role)

	return &dto.RegisterResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		Token:  token,
	}, nil
}

// Login: неизвестный email и неверный пароль неразличимы для клиента
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return dto.NewLoginResponse(user, token), nil
}

func (s *authService) GetMe(db *gorm.DB, subject auth.Subject) (*dto.MeResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(db, subject.UserID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	return &dto.MeResponse{
		UserResponse: *dto.NewUserResponse(user),
		RoleProfile:  auth.NewRoleProfile(user),
	}, nil
}

// SwitchRole добавляет роль в набор и делает ее активной; admin только для уже имеющих ее
func (s *authService) SwitchRole(db *gorm.DB, subject auth.Subject, req *dto.SwitchRoleRequest) (*dto.SwitchRoleResponse, error) {
	if err := requireSubject(subject.UserID); err != nil {
		return nil, err
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidUserRole
	}

	user, err := s.userRepo.FindByID(db, subject.UserID)
	if err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	if !auth.CanSwitchTo(user, req.Role) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user.GrantRole(req.Role)
	user.Role = req.Role
	if err := s.userRepo.UpdateRoles(db, user); err != nil {
		return nil, mapNotFound(err, repositories.ErrUserNotFound, apperrors.ErrUserNotFound)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(db.Statement.Context, "active role switched", "role", user.Role)
	return dto.NewSwitchRoleResponse(user, token), nil
}
