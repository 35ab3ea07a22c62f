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

// ComplaintHandler wires HTTP endpoints to the complaint service.
type ComplaintHandler struct {
	service *service.ComplaintService
	store   storage.ObjectStorage
}

// NewComplaintHandler creates a new handler.
func NewComplaintHandler(svc *service.ComplaintService, store storage.ObjectStorage) *ComplaintHandler {
	return &ComplaintHandler{service: svc, store: store}
}

// Submit godoc
// @Summary Submit complaint
// @Description File a complaint with an optional image attachment
// @Tags Citizen
// @Accept mpfd
// @Produce json
// @Param image formData file false "Image attachment"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /submit-complaint [post]
func (h *ComplaintHandler) Submit(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmitComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid complaint payload"))
		return
	}

	imagePath, err := saveAttachment(c, "image", h.store)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment"))
		return
	}

	complaint, err := h.service.Submit(c.Request.Context(), data.Username, req, imagePath)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":     "complaint submitted successfully",
		"ComplaintId": complaint.ComplaintID,
		"imagePath":   complaint.ImagePath,
	})
}

// ListMine godoc
// @Summary List own complaints
// @Tags Citizen
// @Produce json
// @Param status query string false "Status filter"
// @Param from query string false "Submitted from (yyyy-mm-dd)"
// @Param to query string false "Submitted to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /get-complaints [get]
func (h *ComplaintHandler) ListMine(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	filter := models.ComplaintFilter{
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

	complaints, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaints)
}

// Delete godoc
// @Summary Delete own complaint
// @Tags Citizen
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete-complaint/{id} [delete]
func (h *ComplaintHandler) Delete(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), data.Username); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "complaint deleted successfully"})
}

// AdminList godoc
// @Summary List complaints (admin)
// @Tags Admin
// @Produce json
// @Param ward query string false "Ward filter"
// @Param from query string false "Submitted from (yyyy-mm-dd)"
// @Param to query string false "Submitted to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /admin/get-complaints [get]
func (h *ComplaintHandler) AdminList(c *gin.Context) {
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

	complaints, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, complaints)
}

// UpdateStatus godoc
// @Summary Update complaint status (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Complaint ID"
// @Param payload body models.UpdateStatusRequest true "Transition payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/update-complaint-status/{id} [patch]
func (h *ComplaintHandler) UpdateStatus(c *gin.Context) {
	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid transition payload"))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "status updated successfully"})
}
