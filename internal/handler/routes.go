package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/nmc-egov/civic-portal-api/internal/middleware"
	"github.com/nmc-egov/civic-portal-api/internal/service"
	"github.com/nmc-egov/civic-portal-api/pkg/session"
)

// Handlers bundles all route handlers plus the infrastructure needed by
// the readiness probe and the auth middleware.
type Handlers struct {
	Auth            *AuthHandler
	Complaints      *ComplaintHandler
	EventPermission *EventPermissionHandler
	HealthCamps     *HealthCampHandler
	News            *NewsHandler
	Dashboard       *DashboardHandler
	Citizens        *CitizenAdminHandler
	Exports         *ExportHandler
	Files           *FilesHandler

	Sessions      *session.Manager
	AdminUsername string
	Metrics       *service.MetricsService
	DB            *sqlx.DB
	Redis         *redis.Client
}

// RegisterRoutes attaches every route to the engine.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		ctx := c.Request.Context()
		if h.DB != nil {
			if err := h.DB.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "database unavailable"})
				return
			}
		}
		if h.Redis != nil {
			if err := h.Redis.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "redis unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	}

	citizenAuth := middleware.RequireCitizen(h.Sessions)
	adminAuth := middleware.RequireAdmin(h.Sessions, h.AdminUsername)

	// Public surface.
	r.POST("/citizen-register", h.Auth.Register)
	r.POST("/citizen-login", h.Auth.Login)
	r.POST("/admin-login", h.Auth.AdminLogin)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/api/get-active-scrolling-news", h.News.ListActive)
	if h.Files != nil {
		r.GET("/files/:token", h.Files.Download)
	}

	// Citizen-gated surface.
	citizen := r.Group("/", citizenAuth)
	citizen.GET("/api/check-auth-status", h.Auth.CheckAuthStatus)
	citizen.GET("/get-profile", h.Auth.GetProfile)
	citizen.POST("/update-profile", h.Auth.UpdateProfile)
	citizen.POST("/change-password", h.Auth.ChangePassword)

	citizen.POST("/submit-complaint", h.Complaints.Submit)
	citizen.GET("/get-complaints", h.Complaints.ListMine)
	citizen.DELETE("/delete-complaint/:id", h.Complaints.Delete)

	citizen.POST("/submit-event-request", h.EventPermission.Submit)
	citizen.GET("/get-event-permissions", h.EventPermission.ListMine)
	citizen.DELETE("/delete-event-permission/:id", h.EventPermission.Delete)

	citizen.POST("/submit-health-camp", h.HealthCamps.Submit)
	citizen.GET("/get-healthcamps", h.HealthCamps.ListMine)
	citizen.DELETE("/delete-healthcamp/:id", h.HealthCamps.Delete)

	// Admin-gated surface.
	r.GET("/api/check-admin-auth-status", adminAuth, h.Auth.CheckAdminAuthStatus)
	admin := r.Group("/admin", adminAuth)
	admin.POST("/logout", h.Auth.AdminLogout)
	admin.GET("/dashboard-counts", h.Dashboard.Counts)

	admin.GET("/get-complaints", h.Complaints.AdminList)
	admin.PATCH("/update-complaint-status/:id", h.Complaints.UpdateStatus)
	admin.GET("/get-event-permissions", h.EventPermission.AdminList)
	admin.PATCH("/update-event-permission-status/:id", h.EventPermission.UpdateStatus)
	admin.GET("/get-health-camp-requests", h.HealthCamps.AdminList)
	admin.PATCH("/update-health-camp-status/:id", h.HealthCamps.UpdateStatus)

	admin.GET("/get-citizens", h.Citizens.List)
	admin.GET("/export-complaints", h.Exports.Complaints)
	admin.GET("/export-citizens", h.Exports.Citizens)

	admin.GET("/get-scrolling-news", h.News.List)
	admin.GET("/get-scrolling-news-item/:id", h.News.Get)
	admin.POST("/add-scrolling-news-item", h.News.Create)
	admin.PATCH("/update-scrolling-news-item/:id", h.News.Update)
	admin.DELETE("/delete-scrolling-news-item/:id", h.News.Delete)
}
