package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/samson-vesta/credmapping/internal/handlers"
	"github.com/samson-vesta/credmapping/internal/middleware"
)

type RouterConfig struct {
	CORSOrigins []string

	AuthMiddleware *middleware.AuthMiddleware

	AuthHandler       *handlers.AuthHandler
	UserHandler       *handlers.UserHandler
	DashboardHandler  *handlers.DashboardHandler
	ProviderHandler   *handlers.ProviderHandler
	FacilityHandler   *handlers.FacilityHandler
	ContactHandler    *handlers.ContactHandler
	CredentialHandler *handlers.CredentialHandler
	PreLiveHandler    *handlers.PreLiveHandler
	LicenseHandler    *handlers.LicenseHandler
	PrivilegeHandler  *handlers.PrivilegeHandler
	CommLogHandler    *handlers.CommLogHandler
	AuditHandler      *handlers.AuditHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())
	// Auth
	api.POST("/refresh", cfg.AuthHandler.Refresh)
	api.POST("/logout", cfg.AuthHandler.Logout)
	api.POST("/register", cfg.AuthHandler.Register)
	// Users
	api.GET("/me", cfg.UserHandler.GetMe)
	api.GET("/users", cfg.UserHandler.List)
	api.PUT("/users/:id/role", cfg.UserHandler.UpdateRole)
	// Dashboard
	api.GET("/dashboard/:view", cfg.DashboardHandler.Render)
	// Providers
	api.GET("/providers", cfg.ProviderHandler.List)
	api.GET("/providers/:id", cfg.ProviderHandler.Get)
	api.POST("/providers", cfg.ProviderHandler.Create)
	api.PUT("/providers/:id", cfg.ProviderHandler.Update)
	api.DELETE("/providers/:id", cfg.ProviderHandler.Delete)
	// Facilities
	api.GET("/facilities", cfg.FacilityHandler.List)
	api.GET("/facilities/:id", cfg.FacilityHandler.Get)
	api.GET("/facilities/:id/contacts", cfg.FacilityHandler.ListContacts)
	api.POST("/facilities", cfg.FacilityHandler.Create)
	api.PUT("/facilities/:id", cfg.FacilityHandler.Update)
	api.DELETE("/facilities/:id", cfg.FacilityHandler.Delete)
	// Contacts
	api.GET("/contacts", cfg.ContactHandler.List)
	api.GET("/contacts/:id", cfg.ContactHandler.Get)
	api.POST("/contacts", cfg.ContactHandler.Create)
	api.PUT("/contacts/:id", cfg.ContactHandler.Update)
	api.DELETE("/contacts/:id", cfg.ContactHandler.Delete)
	// Credentials
	api.GET("/credentials", cfg.CredentialHandler.List)
	api.GET("/credentials/:id", cfg.CredentialHandler.Get)
	api.POST("/credentials", cfg.CredentialHandler.Create)
	api.PUT("/credentials/:id", cfg.CredentialHandler.Update)
	api.DELETE("/credentials/:id", cfg.CredentialHandler.Delete)
	// Pre-live records
	api.GET("/prelive", cfg.PreLiveHandler.List)
	api.GET("/prelive/:id", cfg.PreLiveHandler.Get)
	api.POST("/prelive", cfg.PreLiveHandler.Create)
	api.PUT("/prelive/:id", cfg.PreLiveHandler.Update)
	api.DELETE("/prelive/:id", cfg.PreLiveHandler.Delete)
	// State licenses
	api.GET("/licenses", cfg.LicenseHandler.List)
	api.GET("/licenses/:id", cfg.LicenseHandler.Get)
	api.POST("/licenses", cfg.LicenseHandler.Create)
	api.PUT("/licenses/:id", cfg.LicenseHandler.Update)
	api.DELETE("/licenses/:id", cfg.LicenseHandler.Delete)
	// Privileges
	api.GET("/privileges", cfg.PrivilegeHandler.List)
	api.GET("/privileges/:id", cfg.PrivilegeHandler.Get)
	api.POST("/privileges", cfg.PrivilegeHandler.Create)
	api.PUT("/privileges/:id", cfg.PrivilegeHandler.Update)
	api.DELETE("/privileges/:id", cfg.PrivilegeHandler.Delete)
	// Communication logs
	api.GET("/comm-logs/:entity_type/:entity_id", cfg.CommLogHandler.ListByEntity)
	api.POST("/comm-logs", cfg.CommLogHandler.Create)
	api.PUT("/comm-logs/:id", cfg.CommLogHandler.Update)
	api.DELETE("/comm-logs/:id", cfg.CommLogHandler.Delete)
	// Audit trail
	api.GET("/audit-logs", cfg.AuditHandler.ListRecent)
	api.GET("/audit-logs/:entity_type/:entity_id", cfg.AuditHandler.ListByEntity)

	return router
}
