package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/pkg/storage"
)

// saveAttachment uploads the optional file under the given multipart field
// and returns the stored path. A missing file is not an error.
func saveAttachment(c *gin.Context, field string, store storage.ObjectStorage) (*string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s upload: %w", field, err)
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s upload: %w", field, err)
	}
	defer file.Close()

	key := fmt.Sprintf("uploads/upload_%d%s", time.Now().UnixMilli(), filepath.Ext(header.Filename))
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path, err := store.Put(c.Request.Context(), key, file, contentType)
	if err != nil {
		return nil, fmt.Errorf("store %s upload: %w", field, err)
	}
	return &path, nil
}
