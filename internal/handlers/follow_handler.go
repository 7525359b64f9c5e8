package handlers

import (
	"net/http"

	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	*BaseHandler
	followService services.FollowService
}

func NewFollowHandler(base *BaseHandler, followService services.FollowService) *FollowHandler {
	return &FollowHandler{
		BaseHandler:   base,
		followService: followService,
	}
}

func (h *FollowHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	users := rg.Group("/users", authMiddleware)
	{
		users.POST("/:id/follow", h.Follow)
		users.DELETE("/:id/follow", h.Unfollow)
	}

	rg.GET("/follows/mine", authMiddleware, h.MyFollowing)
}

// Follow godoc
// @Summary Подписаться (идемпотентно)
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /users/{id}/follow [post]
func (h *FollowHandler) Follow(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	if err := h.followService.FollowUser(h.GetDB(c), subject, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// Unfollow godoc
// @Summary Отписаться; отсутствие подписки не ошибка
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.OKResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /users/{id}/follow [delete]
func (h *FollowHandler) Unfollow(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	if err := h.followService.UnfollowUser(h.GetDB(c), subject, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OKResponse{OK: true})
}

// MyFollowing godoc
// @Summary ID пользователей, на которых подписан текущий
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.FollowingResponse
// @Router /follows/mine [get]
func (h *FollowHandler) MyFollowing(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	resp, err := h.followService.GetMyFollowing(h.GetDB(c), subject)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
