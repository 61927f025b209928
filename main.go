package main

import (
	"log"
	"time"

	"traveldiary-be/internal/cache"
	"traveldiary-be/internal/config"
	"traveldiary-be/internal/controllers"
	"traveldiary-be/internal/database"
	"traveldiary-be/internal/jwt"
	"traveldiary-be/internal/middleware"
	"traveldiary-be/internal/repository"
	"traveldiary-be/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	diaryRepo := repository.NewDiaryRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	diaryService := service.NewDiaryService(diaryRepo, cacheClient)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	diaryController := controllers.NewDiaryController(diaryService)

	// Create a Gin router
	router := gin.Default()

	// Allow the frontend origin when configured
	if cfg.FrontendURL != "" {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
		router.Use(cors.New(corsConfig))
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Auth routes (public)
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// Diary entry routes - require JWT authentication
	protected := router.Group("/diary-entries")
	protected.Use(middleware.AuthMiddleware(jwtService))
	{
		protected.POST("", diaryController.CreateEntry)
		protected.GET("", diaryController.GetEntries)
		protected.GET("/:id", diaryController.GetEntryByID)
		protected.PUT("/:id", diaryController.UpdateEntry)
		protected.DELETE("/:id", diaryController.DeleteEntry)
	}

	// Start the server
	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
