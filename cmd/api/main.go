package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/amirulafiq/kerjago/internal/auth"
	"github.com/amirulafiq/kerjago/internal/config"
	"github.com/amirulafiq/kerjago/internal/database"
	"github.com/amirulafiq/kerjago/internal/dtos"
	"github.com/amirulafiq/kerjago/internal/handlers"
	"github.com/amirulafiq/kerjago/internal/repository"
	"github.com/amirulafiq/kerjago/internal/stores"
)

func main() {
	// 1. Configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	// 2. Storage. DATABASE_URL empty runs everything on the in-memory
	// fixture: fine for development, nothing survives a restart.
	var (
		jobRepo       repository.JobRepository
		applicantRepo repository.ApplicantRepository
		profileRepo   repository.ProfileRepository
		userStore     auth.UserStore
	)
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		jobRepo = repository.NewGormJobRepository(db)
		applicantRepo = repository.NewGormApplicantRepository(db)
		profileRepo = repository.NewGormProfileRepository(db)
		userStore = repository.NewGormUserRepository(db)
		logger.Info("Database connection established")
	} else {
		jobRepo = repository.NewMemoryJobRepository()
		applicantRepo = repository.NewMemoryApplicantRepository()
		profileRepo = repository.NewMemoryProfileRepository()
		userStore = repository.NewMemoryUserRepository()
		logger.Warn("DATABASE_URL not set, using in-memory storage (non-durable)")
	}

	// 3. Application state container, injected into every handler.
	state := stores.NewAppState()

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobRepo, state, logger)
	applicantHandler := handlers.NewApplicantHandler(applicantRepo, state, logger)
	profileHandler := handlers.NewProfileHandler(profileRepo, state, logger)

	// 5. Auth middleware with the 60s user cache.
	verifier := auth.NewHTTPVerifier(cfg.AuthAPIURL, cfg.AuthSecret, cfg.RequestTimeout)
	authMW := auth.NewMiddleware(verifier, userStore, cfg.AuthCacheTTL, logger)

	// 6. Router & CORS
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		// Nothing escapes the handler boundary unformatted.
		logger.Error("Handler panic", zap.Any("recovered", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.ErrorResponse{
			Error:   "Internal server error",
			Message: "Unknown error",
		})
	}))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.HealthCheck)

	// 7. Routes
	api := r.Group("/api")
	api.Use(authMW.Handler())
	{
		api.GET("/jobs", jobHandler.ListJobs)
		api.POST("/jobs", jobHandler.CreateJob)
		api.PUT("/jobs", jobHandler.UpdateJob)
		api.DELETE("/jobs", jobHandler.DeleteJob)

		api.GET("/applicants", applicantHandler.ListApplicants)
		api.GET("/applicants/:id", applicantHandler.GetApplicant)
		api.PATCH("/applicants/:id/status", applicantHandler.UpdateApplicantStatus)

		api.GET("/profile", profileHandler.GetProfile)
		api.POST("/profile", profileHandler.SaveProfile)
	}

	logger.Info("Server starting", zap.String("port", cfg.ServerPort))
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
