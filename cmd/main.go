package main

import (
	"fmt"
	"os"
	"time"

	"github.com/samson-vesta/credmapping/internal/clients/redis"
	"github.com/samson-vesta/credmapping/internal/config"
	"github.com/samson-vesta/credmapping/internal/db"
	"github.com/samson-vesta/credmapping/internal/handlers"
	"github.com/samson-vesta/credmapping/internal/logger"
	"github.com/samson-vesta/credmapping/internal/middleware"
	"github.com/samson-vesta/credmapping/internal/repos"
	"github.com/samson-vesta/credmapping/internal/server"
	"github.com/samson-vesta/credmapping/internal/services"
	"github.com/samson-vesta/credmapping/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration from main...")
	cfg, err := config.Load(utils.GetEnv("CONFIG_FILE", "config.yaml", log), log)
	if err != nil {
		log.Error("Config load failed", "error", err)
		os.Exit(1)
	}

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Redis snapshot cache
	var snapshotCache services.SnapshotCache
	redisCache, err := redis.NewSnapshotCache(log, time.Duration(cfg.SnapshotTTL)*time.Second)
	if err != nil {
		log.Warn("Redis unavailable, dashboard snapshots will not be cached", "error", err)
		snapshotCache = services.NoopSnapshotCache{}
	} else {
		defer redisCache.Close()
		snapshotCache = redisCache
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	providerRepo := repos.NewProviderRepo(thePG, log)
	facilityRepo := repos.NewFacilityRepo(thePG, log)
	contactRepo := repos.NewContactRepo(thePG, log)
	credentialRepo := repos.NewCredentialRepo(thePG, log)
	preLiveRepo := repos.NewPreLiveRepo(thePG, log)
	licenseRepo := repos.NewLicenseRepo(thePG, log)
	privilegeRepo := repos.NewPrivilegeRepo(thePG, log)
	commLogRepo := repos.NewCommLogRepo(thePG, log)
	auditLogRepo := repos.NewAuditLogRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	auditService := services.NewAuditService(thePG, log, auditLogRepo)
	authService := services.NewAuthService(
		thePG,
		log,
		userRepo,
		userTokenRepo,
		cfg.JWTSecretKey,
		time.Duration(cfg.AccessTokenTTL)*time.Second,
		time.Duration(cfg.RefreshTokenTTL)*time.Second,
	)
	userService := services.NewUserService(thePG, log, userRepo)
	providerService := services.NewProviderService(thePG, log, providerRepo, auditService, snapshotCache)
	facilityService := services.NewFacilityService(thePG, log, facilityRepo, auditService, snapshotCache)
	contactService := services.NewContactService(thePG, log, contactRepo, auditService)
	credentialService := services.NewCredentialService(thePG, log, credentialRepo, auditService, snapshotCache)
	preLiveService := services.NewPreLiveService(thePG, log, preLiveRepo, auditService, snapshotCache)
	licenseService := services.NewLicenseService(thePG, log, licenseRepo, auditService, snapshotCache)
	privilegeService := services.NewPrivilegeService(thePG, log, privilegeRepo, auditService, snapshotCache)
	commLogService := services.NewCommLogService(thePG, log, commLogRepo, auditService)
	dashboardService := services.NewDashboardService(thePG, log, credentialRepo, preLiveRepo, licenseRepo, privilegeRepo, snapshotCache)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(log, userService)
	dashboardHandler := handlers.NewDashboardHandler(log, dashboardService)
	providerHandler := handlers.NewProviderHandler(log, providerService)
	facilityHandler := handlers.NewFacilityHandler(log, facilityService, contactService)
	contactHandler := handlers.NewContactHandler(log, contactService)
	credentialHandler := handlers.NewCredentialHandler(log, credentialService)
	preLiveHandler := handlers.NewPreLiveHandler(log, preLiveService)
	licenseHandler := handlers.NewLicenseHandler(log, licenseService)
	privilegeHandler := handlers.NewPrivilegeHandler(log, privilegeService)
	commLogHandler := handlers.NewCommLogHandler(log, commLogService)
	auditHandler := handlers.NewAuditHandler(log, auditService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		CORSOrigins:       cfg.CORSOrigins,
		AuthMiddleware:    authMiddleware,
		AuthHandler:       authHandler,
		UserHandler:       userHandler,
		DashboardHandler:  dashboardHandler,
		ProviderHandler:   providerHandler,
		FacilityHandler:   facilityHandler,
		ContactHandler:    contactHandler,
		CredentialHandler: credentialHandler,
		PreLiveHandler:    preLiveHandler,
		LicenseHandler:    licenseHandler,
		PrivilegeHandler:  privilegeHandler,
		CommLogHandler:    commLogHandler,
		AuditHandler:      auditHandler,
	})

	fmt.Printf("Server listening on %s\n", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
