package main

import (
	stdlog "log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/tasklight/task-tracker-api/internal/config"
	"github.com/tasklight/task-tracker-api/internal/constants"
	"github.com/tasklight/task-tracker-api/internal/database"
	"github.com/tasklight/task-tracker-api/internal/handlers"
	"github.com/tasklight/task-tracker-api/internal/logger"
	"github.com/tasklight/task-tracker-api/internal/middleware"
	"github.com/tasklight/task-tracker-api/internal/repository"
	"github.com/tasklight/task-tracker-api/internal/services"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		stdlog.Fatalf("Failed to build logger: %v", err)
	}
	defer log.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Select the store backend
	var (
		userRepo repository.UserRepository
		taskRepo repository.TaskRepository
	)
	if cfg.DBDriver == "memory" {
		userRepo = repository.NewMemoryUserRepository()
		taskRepo = repository.NewMemoryTaskRepository()
		log.Info("using in-memory stores; all data is discarded on restart")
	} else {
		db, err := database.Connect(cfg)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
		userRepo = repository.NewGormUserRepository(db)
		taskRepo = repository.NewGormTaskRepository(db)
		log.Info("database connection established", zap.String("driver", cfg.DBDriver))
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup the cookie session middleware. The cookie itself is the full
	// session state; there is no server-side session table.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(constants.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize services and handlers
	authService := services.NewAuthService(userRepo)
	taskService := services.NewTaskService(taskRepo)
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(middleware.RequireAuth())
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.PATCH("/:id", taskHandler.SetTaskCompleted)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
		}
	}

	// Start server
	log.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
