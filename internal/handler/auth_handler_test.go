package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nmc-egov/civic-portal-api/internal/middleware"
	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	"github.com/nmc-egov/civic-portal-api/pkg/config"
	"github.com/nmc-egov/civic-portal-api/pkg/session"
)

type fakeSessionStore struct {
	entries map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{entries: make(map[string]string)}
}

func (f *fakeSessionStore) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.entries[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeSessionStore) Get(ctx context.Context, key string) *redis.StringCmd {
	if payload, ok := f.entries[key]; ok {
		return redis.NewStringResult(payload, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeSessionStore) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var removed int64
	for _, key := range keys {
		if _, ok := f.entries[key]; ok {
			delete(f.entries, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

type citizenStore struct {
	citizens map[string]*models.Citizen
}

func (m *citizenStore) FindByMobile(ctx context.Context, mobile string) (*models.Citizen, error) {
	if citizen, ok := m.citizens[mobile]; ok {
		copy := *citizen
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (m *citizenStore) Create(ctx context.Context, citizen *models.Citizen) error {
	if m.citizens == nil {
		m.citizens = make(map[string]*models.Citizen)
	}
	if _, exists := m.citizens[citizen.Mobile]; exists {
		return &pq.Error{Code: "23505"}
	}
	copy := *citizen
	m.citizens[citizen.Mobile] = &copy
	return nil
}

func (m *citizenStore) UpdateProfile(ctx context.Context, mobile, firstName, lastName, email, ward, address string) error {
	if _, ok := m.citizens[mobile]; !ok {
		return sql.ErrNoRows
	}
	return nil
}

func (m *citizenStore) UpdatePassword(ctx context.Context, mobile, passwordHash string) error {
	citizen, ok := m.citizens[mobile]
	if !ok {
		return sql.ErrNoRows
	}
	citizen.PasswordHash = passwordHash
	return nil
}

const testAdminUser = "admin"

func newAuthRouter(t *testing.T) (*gin.Engine, *citizenStore, *fakeSessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	store := &citizenStore{}
	sessionStore := newFakeSessionStore()
	sessions := session.NewManager(sessionStore, config.SessionConfig{})
	svc := service.NewAuthService(store, nil, nil, nil, config.AdminConfig{
		Username:     testAdminUser,
		PasswordHash: string(adminHash),
	})
	h := NewAuthHandler(svc, sessions, testAdminUser)

	r := gin.New()
	r.POST("/citizen-register", h.Register)
	r.POST("/citizen-login", h.Login)
	r.POST("/admin-login", h.AdminLogin)
	r.POST("/logout", h.Logout)

	citizenOnly := r.Group("/", middleware.RequireCitizen(sessions))
	citizenOnly.GET("/api/check-auth-status", h.CheckAuthStatus)
	citizenOnly.GET("/get-profile", h.GetProfile)

	adminOnly := r.Group("/", middleware.RequireAdmin(sessions, testAdminUser))
	adminOnly.GET("/api/check-admin-auth-status", h.CheckAdminAuthStatus)

	return r, store, sessionStore
}

func postJSON(r *gin.Engine, path string, payload interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postPatchJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPatch, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getWithCookies(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func registerPayload() models.RegisterCitizenRequest {
	return models.RegisterCitizenRequest{
		FirstName: "Ravi",
		LastName:  "Kumar",
		Mobile:    "9999999999",
		Ward:      "12",
		Email:     "ravi@example.com",
		Address:   "12 Gandhi Road",
		Password:  "secret123",
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	r, store, _ := newAuthRouter(t)

	w := postJSON(r, "/citizen-register", registerPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "citizen registered successfully", data["message"])
	assert.Contains(t, store.citizens, "9999999999")
}

func TestAuthHandlerRegisterDuplicateMobile(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	w := postJSON(r, "/citizen-register", registerPayload())
	require.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	errBody := envelope["error"].(map[string]interface{})
	assert.Equal(t, "MOBILE_REGISTERED", errBody["code"])
}

func TestAuthHandlerLoginSetsSessionCookie(t *testing.T) {
	r, _, sessionStore := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	w := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "secret123"})
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "/citizen/dashboard", data["redirect"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "portal_sid", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Contains(t, sessionStore.entries, "session:"+cookies[0].Value)
}

func TestAuthHandlerLoginWrongPassword(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	w := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "wrong"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	envelope := decodeEnvelope(t, w)
	errBody := envelope["error"].(map[string]interface{})
	assert.Equal(t, "INVALID_CREDENTIALS", errBody["code"])
}

func TestAuthHandlerProtectedRouteWithoutSession(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	w := getWithCookies(r, "/get-profile")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	envelope := decodeEnvelope(t, w)
	errBody := envelope["error"].(map[string]interface{})
	assert.Equal(t, "unauthorized: please login", errBody["message"])
}

func TestAuthHandlerCheckAuthStatus(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	login := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "secret123"})
	require.Equal(t, http.StatusOK, login.Code)
	sid := login.Result().Cookies()[0]

	w := getWithCookies(r, "/api/check-auth-status", sid)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, true, data["authenticated"])
	assert.Equal(t, "9999999999", data["username"])
}

func TestAuthHandlerGetProfile(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	login := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "secret123"})
	sid := login.Result().Cookies()[0]

	w := getWithCookies(r, "/get-profile", sid)
	require.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "Ravi Kumar", data["fullName"])
	assert.Equal(t, "9999999999", data["mobile"])
}

func TestAuthHandlerAdminLoginAndProbe(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	login := postJSON(r, "/admin-login", models.LoginRequest{Username: testAdminUser, Password: "admin-pass"})
	require.Equal(t, http.StatusOK, login.Code)

	envelope := decodeEnvelope(t, login)
	data := envelope["data"].(map[string]interface{})
	assert.Equal(t, "/admin/dashboard", data["redirect"])

	sid := login.Result().Cookies()[0]
	w := getWithCookies(r, "/api/check-admin-auth-status", sid)
	require.Equal(t, http.StatusOK, w.Code)

	probe := decodeEnvelope(t, w)
	probeData := probe["data"].(map[string]interface{})
	assert.Equal(t, testAdminUser, probeData["username"])
}

func TestAuthHandlerAdminRouteRejectsCitizenSession(t *testing.T) {
	r, _, _ := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	login := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "secret123"})
	sid := login.Result().Cookies()[0]

	w := getWithCookies(r, "/api/check-admin-auth-status", sid)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	envelope := decodeEnvelope(t, w)
	errBody := envelope["error"].(map[string]interface{})
	assert.Equal(t, "unauthorized: admin access required", errBody["message"])
}

func TestAuthHandlerAdminLoginBadPassword(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	w := postJSON(r, "/admin-login", models.LoginRequest{Username: testAdminUser, Password: "nope"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerLogoutDestroysSession(t *testing.T) {
	r, _, sessionStore := newAuthRouter(t)
	require.Equal(t, http.StatusCreated, postJSON(r, "/citizen-register", registerPayload()).Code)

	login := postJSON(r, "/citizen-login", models.LoginRequest{Username: "9999999999", Password: "secret123"})
	sid := login.Result().Cookies()[0]

	w := postJSON(r, "/logout", nil, sid)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sessionStore.entries)

	after := getWithCookies(r, "/get-profile", sid)
	assert.Equal(t, http.StatusUnauthorized, after.Code)
}
