package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"reviu-server/config"
	"reviu-server/database"
	"reviu-server/jobs"
	"reviu-server/middleware"
	"reviu-server/models"
	"reviu-server/routes"
	"reviu-server/services"
	ws "reviu-server/websocket"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	config.Load()

	if err := routes.InitAdminCredential(config.AppConfig.Admin.Pin); err != nil {
		log.Fatal("Failed to prepare admin credential:", err)
	}

	// Initialize database
	if err := database.Initialize(); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if config.AppConfig.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Disable automatic redirects for trailing slashes
	router.RedirectTrailingSlash = false
	router.RedirectFixedPath = false

	// Security headers (must be first)
	router.Use(middleware.SecurityHeadersMiddleware())

	// Rate limiting
	router.Use(middleware.RateLimitMiddleware())

	// CORS: the review wizard runs in customer browsers on arbitrary networks
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Audit logging
	router.Use(middleware.AuditLogMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Reviu server is running",
			"time":    time.Now().UTC(),
		})
	})

	// Dashboard notification hub
	hub := ws.NewHub()
	go hub.Run()
	routes.InitNotificationHub(hub)

	// Wizard session manager: finished reviews go to the database and, for
	// the owning tenant, to any connected manager dashboards.
	wizardManager := services.NewWizardManager(func(review *models.Review) error {
		if err := database.InsertReview(review); err != nil {
			return err
		}
		hub.Notify(ws.EventReviewCreated, review.TenantID, review)
		return nil
	}, config.AppConfig.Review.DefaultGoogleReviewLink)
	routes.InitWizard(wizardManager)

	// API routes
	api := router.Group("/api/v1")
	{
		// Public: session scope resolution, tenant directory, wizard
		routes.RegisterSessionRoutes(api)
		routes.RegisterTenantDirectoryRoutes(api)
		routes.RegisterWizardRoutes(api)

		// Auth routes (no authentication required) - with strict rate limiting
		authRoutes := api.Group("/auth")
		authRoutes.Use(middleware.AuthRateLimitMiddleware())
		routes.RegisterAuthRoutes(authRoutes)

		// Manager routes (tenant-scoped)
		manager := api.Group("/manager")
		manager.Use(middleware.ManagerAuthMiddleware())
		{
			routes.RegisterDashboardRoutes(manager)
			routes.RegisterReviewRoutes(manager)
			routes.RegisterWaiterRoutes(manager)
			routes.RegisterManagerSettingsRoutes(manager)
			routes.RegisterNotificationRoutes(manager)
		}

		// Admin routes (platform operator)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			routes.RegisterAdminTenantRoutes(admin)
		}
	}

	// Start background jobs
	sessionTTL := time.Duration(config.AppConfig.Wizard.SessionTTLMinutes) * time.Minute
	cleanupJob := jobs.NewSessionCleanupJob(wizardManager, sessionTTL)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
