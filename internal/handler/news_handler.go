package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/service"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
)

// NewsHandler wires HTTP endpoints to the scrolling-news service.
type NewsHandler struct {
	service *service.NewsService
}

// NewNewsHandler creates a new handler.
func NewNewsHandler(svc *service.NewsService) *NewsHandler {
	return &NewsHandler{service: svc}
}

type newsPayload struct {
	Message string `json:"message"`
}

// ListActive godoc
// @Summary Public scrolling news feed
// @Tags News
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /api/get-active-scrolling-news [get]
func (h *NewsHandler) ListActive(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// List godoc
// @Summary List scrolling news (admin)
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/get-scrolling-news [get]
func (h *NewsHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Fetch one scrolling news item (admin)
// @Tags Admin
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/get-scrolling-news-item/{id} [get]
func (h *NewsHandler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Add scrolling news item (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/add-scrolling-news-item [post]
func (h *NewsHandler) Create(c *gin.Context) {
	var payload newsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid news payload"))
		return
	}

	item, err := h.service.Create(c.Request.Context(), payload.Message)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update scrolling news item (admin)
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/update-scrolling-news-item/{id} [patch]
func (h *NewsHandler) Update(c *gin.Context) {
	var payload newsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid news payload"))
		return
	}

	if err := h.service.Update(c.Request.Context(), c.Param("id"), payload.Message); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "news item updated successfully"})
}

// Delete godoc
// @Summary Delete scrolling news item (admin)
// @Tags Admin
// @Produce json
// @Param id path string true "News item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/delete-scrolling-news-item/{id} [delete]
func (h *NewsHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "news item deleted successfully"})
}
