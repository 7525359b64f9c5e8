package handlers

import (
	"net/http"

	"nextignition_backend/internal/services"
	"nextignition_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
	startupService  services.StartupService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService, startupService services.StartupService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
		startupService:  startupService,
	}
}

func (h *MatchingHandler) RegisterRoutes(rg *gin.RouterGroup, authMiddleware gin.HandlerFunc) {
	startups := rg.Group("/startups")
	{
		startups.POST("", authMiddleware, h.CreateStartup)
		startups.GET("/:startupId", h.GetStartup)
		startups.GET("/:startupId/matches", h.MatchExperts)
	}
}

// CreateStartup godoc
// @Summary Создать стартап
// @Tags startups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStartupRequest true "Стартап"
// @Success 201 {object} dto.StartupResponse
// @Router /startups [post]
func (h *MatchingHandler) CreateStartup(c *gin.Context) {
	subject, ok := h.GetSubject(c)
	if !ok {
		return
	}

	var req dto.CreateStartupRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	startup, err := h.startupService.CreateStartup(h.GetDB(c), subject, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, startup)
}

// GetStartup godoc
// @Summary Стартап по ID
// @Tags startups
// @Produce json
// @Param startupId path string true "Startup ID"
// @Success 200 {object} dto.StartupResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /startups/{startupId} [get]
func (h *MatchingHandler) GetStartup(c *gin.Context) {
	startup, err := h.startupService.GetStartup(h.GetDB(c), c.Param("startupId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, startup)
}

// MatchExperts godoc
// @Summary Эксперты для стартапа (до 10)
// @Tags startups
// @Produce json
// @Param startupId path string true "Startup ID"
// @Success 200 {array} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /startups/{startupId}/matches [get]
func (h *MatchingHandler) MatchExperts(c *gin.Context) {
	experts, err := h.matchingService.MatchExperts(h.GetDB(c), c.Param("startupId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, experts)
}
