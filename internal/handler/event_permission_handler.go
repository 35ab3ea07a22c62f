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

// EventPermissionHandler wires HTTP endpoints to the event-permission service.
type EventPermissionHandler struct {
	service *service.EventPermissionService
	store   storage.ObjectStorage
}

// NewEventPermissionHandler creates a new handler.
func NewEventPermissionHandler(svc *service.EventPermissionService, store storage.ObjectStorage) *EventPermissionHandler {
	return &EventPermissionHandler{service: svc, store: store}
}

// Submit godoc
// @Summary Submit event permission request
// @Description Request permission to hold a public event, with an optional supporting document
// @Tags Citizen
// @Accept mpfd
// @Produce json
// @Param uploadDoc formData file false "Supporting document"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /submit-event-request [post]
func (h *EventPermissionHandler) Submit(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.SubmitEventPermissionRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid event permission payload"))
		return
	}

	uploadDoc, err := saveAttachment(c, "uploadDoc", h.store)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store attachment"))
		return
	}

	permission, err := h.service.Submit(c.Request.Context(), data.Username, req, uploadDoc)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{
		"message":           "event permission request submitted successfully",
		"EventpermissionId": permission.EventPermissionID,
		"uploadDoc":         permission.UploadDoc,
	})
}

// ListMine godoc
// @Summary List own event permission requests
// @Tags Citizen
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /get-event-permissions [get]
func (h *EventPermissionHandler) ListMine(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	permissions, err := h.service.List(c.Request.Context(), models.EventPermissionFilter{Username: data.Username})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, permissions)
}

// Delete godoc
// @Summary Delete own event permission request
// @Tags Citizen
// @Produce json
// @Param id path string true "Event permission ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete-event-permission/{id} [delete]
func (h *EventPermissionHandler) Delete(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("id"), data.Username); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "event permission deleted successfully"})
}

// AdminList godoc
// @Summary List event permission requests (admin)
// @Tags Admin
// @Produce json
// @Param from query string false "Event date from (yyyy-mm-dd)"
// @Param to query string false "Event date to (yyyy-mm-dd)"
// @Success 200 {object} response.Envelope
// @Router /admin/get-event-permissions [get]
func (h *EventPermissionHandler) AdminList(c *gin.Context) {
	filter := models.EventPermissionFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
	}

	permissions, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, permissions)
}

// UpdateStatus godoc
// @Summary Update event permission status (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Event permission ID"
// @Param payload body models.UpdateStatusRequest true "Transition payload"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/update-event-permission-status/{id} [patch]
func (h *EventPermissionHandler) UpdateStatus(c *gin.Context) {
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
