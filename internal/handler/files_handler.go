package handler

import (
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
	"github.com/nmc-egov/civic-portal-api/pkg/storage"
)

// FilesHandler serves locally stored attachments through signed tokens.
// It is only registered when the local storage driver is active.
type FilesHandler struct {
	local *storage.LocalStorage
}

// NewFilesHandler creates a new handler.
func NewFilesHandler(local *storage.LocalStorage) *FilesHandler {
	return &FilesHandler{local: local}
}

// Download godoc
// @Summary Download attachment
// @Description Stream a stored attachment referenced by a signed token
// @Tags Files
// @Produce octet-stream
// @Param token path string true "Signed download token"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /files/{token} [get]
func (h *FilesHandler) Download(c *gin.Context) {
	file, err := h.local.Open(c.Param("token"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "attachment not found"))
		return
	}
	defer file.Close() //nolint:errcheck

	contentType := mime.TypeByExtension(filepath.Ext(file.Name()))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, file); err != nil {
		c.Abort()
	}
}
