package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
)

// ExportHandler serves tabular admin exports.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

// Complaints godoc
// @Summary Export complaint register (admin)
// @Tags Admin
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Param ward query string false "Ward filter"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/export-complaints [get]
func (h *ExportHandler) Complaints(c *gin.Context) {
	filter := models.ComplaintFilter{
		Status: c.Query("status"),
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

	result, err := h.service.ExportComplaints(c.Request.Context(), c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

// Citizens godoc
// @Summary Export citizen roster (admin)
// @Tags Admin
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /admin/export-citizens [get]
func (h *ExportHandler) Citizens(c *gin.Context) {
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

	result, err := h.service.ExportCitizens(c.Request.Context(), c.Query("format"), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	writeExport(c, result)
}

func writeExport(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
