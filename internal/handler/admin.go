package handler

import (
	"readiness-engine/internal/dto"
	"readiness-engine/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	insights service.InsightsService
}

// NewAdminHandler creates a new AdminHandler instance
func NewAdminHandler(insights service.InsightsService) *AdminHandler {
	return &AdminHandler{insights: insights}
}

// GetStats godoc
// @Summary Get submission statistics across all companies
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Router /admin/stats [get]
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.insights.AdminStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.AdminStatsResponse{Stats: stats})
}
