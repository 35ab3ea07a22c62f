package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
)

type citizenRosterLister interface {
	List(ctx context.Context, filter models.CitizenFilter) ([]models.Citizen, error)
}

// CitizenAdminHandler exposes the admin citizen roster.
type CitizenAdminHandler struct {
	roster citizenRosterLister
}

// NewCitizenAdminHandler creates a new handler.
func NewCitizenAdminHandler(roster citizenRosterLister) *CitizenAdminHandler {
	return &CitizenAdminHandler{roster: roster}
}

// List godoc
// @Summary List registered citizens (admin)
// @Tags Admin
// @Produce json
// @Param search query string false "Free-text search across profile fields"
// @Param ward query string false "Ward filter"
// @Param from query string false "Registered from (yyyy-mm-dd)"
// @Param to query string false "Registered to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /admin/get-citizens [get]
func (h *CitizenAdminHandler) List(c *gin.Context) {
	filter := models.CitizenFilter{
		Search: c.Query("search"),
		Ward:   c.Query("ward"),
	}
	var err error
	if filter.From, err = parseDateQuery(c.Query("from"), false); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}
	if filter.To, err = parseDateQuery(c.Query("to"), true); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, err.Error()))
		return
	}

	citizens, err := h.roster.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch citizens"))
		return
	}
	if citizens == nil {
		citizens = []models.Citizen{}
	}
	response.JSON(c, http.StatusOK, citizens)
}
