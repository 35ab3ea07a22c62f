package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmc-egov/civic-portal-api/pkg/storage"
)

func newFilesRouter(t *testing.T) (*gin.Engine, *storage.LocalStorage) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	signer := storage.NewSignedURLSigner("test-secret", time.Hour)
	local, err := storage.NewLocalStorage(t.TempDir(), signer)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/files/:token", NewFilesHandler(local).Download)
	return r, local
}

func TestFilesHandlerDownload(t *testing.T) {
	r, local := newFilesRouter(t)

	path, err := local.Put(context.Background(), "uploads/upload_123.txt", strings.NewReader("attachment body"), "text/plain")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment body", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestFilesHandlerDownloadBadToken(t *testing.T) {
	r, _ := newFilesRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/files/not-a-token", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	envelope := decodeEnvelope(t, w)
	errBody := envelope["error"].(map[string]interface{})
	assert.Equal(t, "attachment not found", errBody["message"])
}
