package handlers

import (
	"net/http"

	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	*BaseHandler
	inviteService services.InviteService
}

func NewCommunityHandler(base *BaseHandler, inviteService services.InviteService) *CommunityHandler {
	return &CommunityHandler{
		BaseHandler:   base,
		inviteService: inviteService,
	}
}

func (h *CommunityHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	communities := rg.Group("/communities", authMiddleware)
	{
		communities.POST("", h.CreateCommunity)
		communities.POST("/:id/invites", h.CreateInvite)
	}

	invites := rg.Group("/invites", authMiddleware)
	{
		invites.GET("/mine", h.ListMyInvites)
		invites.POST("/:id/accept", h.AcceptInvite)
		invites.POST("/:id/decline", h.DeclineInvite)
		invites.POST("/:id/cancel", h.CancelInvite)
	}
}

// CreateCommunity godoc
// @Summary Создать сообщество
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCommunityRequest true "Сообщество"
// @Success 201 {object} dto.CommunityResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /communities [post]
func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.CreateCommunityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	community, err := h.inviteService.CreateCommunity(h.GetDB(c), subject, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, community)
}

// CreateInvite godoc
// @Summary Пригласить пользователя в сообщество
// @Tags communities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Community ID"
// @Param request body dto.CreateInviteRequest true "Кого приглашаем"
// @Success 201 {object} dto.InviteResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /communities/{id}/invites [post]
func (h *CommunityHandler) CreateInvite(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.CreateInviteRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	invite, err := h.inviteService.CreateInvite(h.GetDB(c), subject, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invite)
}

// ListMyInvites godoc
// @Summary Входящие инвайты текущего пользователя
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InviteResponse
// @Router /invites/mine [get]
func (h *CommunityHandler) ListMyInvites(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	invites, err := h.inviteService.ListMyInvites(h.GetDB(c), subject)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invites)
}

// AcceptInvite godoc
// @Summary Принять инвайт
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} dto.InviteResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /invites/{id}/accept [post]
func (h *CommunityHandler) AcceptInvite(c *gin.Context) {
	h.respond(c, true)
}

// DeclineInvite godoc
// @Summary Отклонить инвайт
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} dto.InviteResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /invites/{id}/decline [post]
func (h *CommunityHandler) DeclineInvite(c *gin.Context) {
	h.respond(c, false)
}

func (h *CommunityHandler) respond(c *gin.Context, accept bool) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	invite, err := h.inviteService.RespondInvite(h.GetDB(c), subject, c.Param("id"), accept)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}

// CancelInvite godoc
// @Summary Отозвать свой инвайт
// @Tags communities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Invite ID"
// @Success 200 {object} dto.InviteResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse
// @Router /invites/{id}/cancel [post]
func (h *CommunityHandler) CancelInvite(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	invite, err := h.inviteService.CancelInvite(h.GetDB(c), subject, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, invite)
}
