package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nmc-egov/civic-portal-api/internal/middleware"
	"github.com/nmc-egov/civic-portal-api/internal/models"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	appErrors "github.com/nmc-egov/civic-portal-api/pkg/errors"
	"github.com/nmc-egov/civic-portal-api/pkg/response"
	"github.com/nmc-egov/civic-portal-api/pkg/session"
)

// AuthHandler wires HTTP endpoints to the auth service and session manager.
type AuthHandler struct {
	service  *service.AuthService
	sessions *session.Manager
	admin    string
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, sessions *session.Manager, adminUsername string) *AuthHandler {
	return &AuthHandler{service: svc, sessions: sessions, admin: adminUsername}
}

// Register godoc
// @Summary Register citizen
// @Description Create a citizen account keyed by mobile number
// @Tags Citizen
// @Accept json
// @Produce json
// @Param payload body models.RegisterCitizenRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /citizen-register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterCitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "citizen registered successfully"})
}

// Login godoc
// @Summary Citizen login
// @Description Authenticate a citizen by mobile number and password
// @Tags Citizen
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /citizen-login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	citizen, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.sessions.Create(c, session.Data{Username: citizen.Mobile}); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session"))
		return
	}

	response.JSON(c, http.StatusOK, models.LoginResponse{
		Message:  "login successful, redirecting",
		Redirect: "/citizen/dashboard",
	})
}

// Logout godoc
// @Summary Logout
// @Description Destroy the current session and clear the cookie
// @Tags Citizen
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "could not log out"))
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "logged out successfully"})
}

// CheckAuthStatus godoc
// @Summary Citizen session probe
// @Tags Citizen
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/check-auth-status [get]
func (h *AuthHandler) CheckAuthStatus(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"authenticated": true, "username": data.Username})
}

// GetProfile godoc
// @Summary Fetch own profile
// @Tags Citizen
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /get-profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), data.Username)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags Citizen
// @Accept json
// @Produce json
// @Param payload body models.UpdateProfileRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /update-profile [post]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "full name and email are required"))
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), data.Username, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "profile updated successfully"})
}

// ChangePassword godoc
// @Summary Change own password
// @Tags Citizen
// @Accept json
// @Produce json
// @Param payload body models.ChangePasswordRequest true "Password payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "password must be at least 6 characters"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), data.Username, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "password updated successfully"})
}

// AdminLogin godoc
// @Summary Administrator login
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin-login [post]
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	if err := h.service.AdminLogin(req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.sessions.Create(c, session.Data{
		AdminUsername: h.admin,
		IsAdmin:       true,
		LastLogin:     time.Now().UTC(),
	}); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session"))
		return
	}

	response.JSON(c, http.StatusOK, models.LoginResponse{
		Message:  "login successful, redirecting",
		Redirect: "/admin/dashboard",
	})
}

// AdminLogout destroys the admin session.
func (h *AuthHandler) AdminLogout(c *gin.Context) {
	h.Logout(c)
}

// CheckAdminAuthStatus godoc
// @Summary Admin session probe
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /api/check-admin-auth-status [get]
func (h *AuthHandler) CheckAdminAuthStatus(c *gin.Context) {
	data, ok := middleware.SessionFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"authenticated": true,
		"username":      data.AdminUsername,
		"lastLogin":     data.LastLogin,
	})
}
