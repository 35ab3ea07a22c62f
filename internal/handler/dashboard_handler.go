package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/service"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
)

// DashboardHandler wires HTTP endpoints to the dashboard service.
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Counts godoc
// @Summary Dashboard record counts (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/dashboard-counts [get]
func (h *DashboardHandler) Counts(c *gin.Context) {
	counts, cacheHit, err := h.service.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, counts, map[string]interface{}{"cacheHit": cacheHit})
}
