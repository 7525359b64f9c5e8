package handlers

import (
	"errors"
	"net/http"

	"nextignition_backend/internal/logger"
	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"
	"nextignition_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	profileService services.ProfileService
	authService    services.AuthService
	avatarService  services.AvatarService
	followService  services.FollowService
}

func NewUserHandler(
	base *BaseHandler,
	profileService services.ProfileService,
	authService services.AuthService,
	avatarService services.AvatarService,
	followService services.FollowService,
) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		profileService: profileService,
		authService:    authService,
		avatarService:  avatarService,
		followService:  followService,
	}
}

// RegisterRoutes регистрирует маршруты /users (кроме follow, см. FollowHandler)
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.GET("/search", h.SearchUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/follow-stats", h.GetFollowStats)
	}

	me := users.Group("/me", authMiddleware)
	{
		me.PUT("", h.UpdateMe)
		me.POST("/role", h.SwitchRole)
		me.POST("/avatar", h.UploadAvatar)
		me.POST("/verification-banner/dismiss", h.DismissVerificationBanner)
	}
}

// ListUsers godoc
// @Summary Пользователи (до 50), опционально по роли
// @Tags users
// @Produce json
// @Param role query string false "founder | expert | investor | admin"
// @Success 200 {array} dto.UserResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, err := h.profileService.ListByRole(h.GetDB(c), query.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SearchUsers godoc
// @Summary Поиск по имени, био и навыкам (до 20)
// @Tags users
// @Produce json
// @Param q query string false "Подстрока"
// @Param role query string false "Роль"
// @Success 200 {array} dto.UserResponse
// @Router /users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var query dto.SearchUsersQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	users, err := h.profileService.SearchUsers(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Профиль пользователя
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.profileService.GetProfile(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetFollowStats godoc
// @Summary Счетчики подписчиков и подписок
// @Tags follows
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.FollowStatsResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id}/follow-stats [get]
func (h *UserHandler) GetFollowStats(c *gin.Context) {
	stats, err := h.followService.GetFollowStats(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// UpdateMe godoc
// @Summary Частичное обновление профиля
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfilePatch true "Только изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var patch dto.ProfilePatch
	if !h.BindAndValidate_JSON(c, &patch) {
		return
	}

	user, err := h.profileService.UpdateProfile(h.GetDB(c), subject, &patch)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// SwitchRole godoc
// @Summary Сменить активную роль
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SwitchRoleRequest true "Новая роль"
// @Success 200 {object} dto.SwitchRoleResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /users/me/role [post]
func (h *UserHandler) SwitchRole(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.SwitchRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.authService.SwitchRole(h.GetDB(c), subject, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UploadAvatar godoc
// @Summary Загрузить аватар
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Изображение (jpeg, png, gif, webp)"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 413 {object} apperrors.ErrorResponse
// @Failure 415 {object} apperrors.ErrorResponse
// @Router /users/me/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	file, err := c.FormFile("avatar")
	switch {
	case err == nil:
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		file = nil
	default:
		logger.CtxWarn(c.Request.Context(), "Failed to parse multipart form", "error", err.Error())
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid multipart form"))
		return
	}

	resp, err := h.avatarService.UploadAvatar(c.Request.Context(), h.GetDB(c), subject, file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DismissVerificationBanner godoc
// @Summary Скрыть баннер верификации на N дней
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DismissBannerRequest false "days (1-90, по умолчанию 7)"
// @Success 200 {object} dto.DismissBannerResponse
// @Router /users/me/verification-banner/dismiss [post]
func (h *UserHandler) DismissVerificationBanner(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.DismissBannerRequest
	if c.Request.ContentLength != 0 && !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.profileService.DismissVerificationBanner(h.GetDB(c), subject, req.Days)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
