package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/middleware"
	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
	"github.com/nmc-egov/civic-portal-api/pkg/storage"
)

// HealthCampHandler wires HTTP endpoints to the health-camp service.
type HealthCampHandler struct {
	service *service.HealthCampService
	store   storage.ObjectStorage
}

// NewHealthCampHandler creates a new handler.
func NewHealthCampHandler(svc *service.HealthCampService, store storage.ObjectStorage) *HealthCampHandler {
	return &HealthCampHandler{service: svc, store: store}
}

// Submit godoc
// @Summary Submit health camp request
// @Description Request approval to conduct a health camp, with an optional proposal document
// @Tags Citizen
// @Accept mpfd
// @Produce json
// @Param uploadProposal formData file false "Proposal document"
// @Success 201 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /submit-health-camp [post]
func (h *HealthCampHandler) Submit(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmitHealthCampRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid health camp payload"))
		return
	}

	uploadProposal, err := saveAttachment(c, "uploadProposal", h.store)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment"))
		return
	}

	request, err := h.service.Submit(c.Request.Context(), data.Username, req, uploadProposal)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"message":        "health camp request submitted successfully",
		"HealthcampId":   request.HealthCampID,
		"uploadProposal": request.UploadProposal,
	})
}

// ListMine godoc
// @Summary List own health camp requests
// @Tags Citizen
// @Produce json
// @Param status query string false "Status filter"
// @Param from query string false "Submitted from (yyyy-mm-dd)"
// @Param to query string false "Submitted to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /get-healthcamps [get]
func (h *HealthCampHandler) ListMine(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	filter := models.HealthCampFilter{
		Username: data.Username,
		Status:   c.Query("status"),
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

	requests, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// Delete godoc
// @Summary Delete own health camp request
// @Tags Citizen
// @Produce json
// @Param id path string true "Health camp ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete-healthcamp/{id} [delete]
func (h *HealthCampHandler) Delete(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), data.Username); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "health camp request deleted successfully"})
}

// AdminList godoc
// @Summary List health camp requests (admin)
// @Tags Admin
// @Produce json
// @Param from query string false "Camp date from (yyyy-mm-dd)"
// @Param to query string false "Camp date to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /admin/get-health-camp-requests [get]
func (h *HealthCampHandler) AdminList(c *gin.Context) {
	filter := models.HealthCampFilter{
		CampDateFrom: c.Query("from"),
		CampDateTo:   c.Query("to"),
	}

	requests, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests)
}

// UpdateStatus godoc
// @Summary Update health camp status (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Health camp ID"
// @Param payload body models.UpdateStatusRequest true "Transition payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/update-health-camp-status/{id} [patch]
func (h *HealthCampHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid transition payload"))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "health camp request status updated successfully"})
}
