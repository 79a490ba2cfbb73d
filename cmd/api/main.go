package main

import (
	"fmt"
	"net/http"
	"os"

	"paisabook/internal/config"
	"paisabook/internal/database"
	"paisabook/internal/handlers"
	"paisabook/internal/logger"
	"paisabook/internal/middleware"
	"paisabook/internal/services"
	"paisabook/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "paisabook/internal/docs" // Import swagger docs
)

// @title           PaisaBook API
// @version         1.0
// @description     PaisaBook is a budget tracking and group expense splitting application for managing personal budgets and settling shared spending.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	groupService := services.NewGroupService(db)
	budgetService := services.NewBudgetService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	groupHandler := handlers.NewGroupHandler(groupService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	trackerHandler := handlers.NewTrackerHandler(nil)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics
	router.GET("/metrics", middleware.MetricsHandler())

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Group routes
	groups := protected.Group("/groups")
	groups.POST("", groupHandler.CreateGroup)
	groups.GET("", groupHandler.GetUserGroups)
	groups.GET("/:id", groupHandler.GetGroupDetails)
	groups.DELETE("/:id", groupHandler.DeleteGroup)
	groups.POST("/:id/members", groupHandler.AddMembers)
	groups.DELETE("/:id/members/:memberId", groupHandler.RemoveMember)
	groups.POST("/:id/expenses", groupHandler.PostExpense)
	groups.GET("/:id/balances", groupHandler.GetBalances)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetUserBudgets)
	budgets.PATCH("/:id", budgetHandler.UpdateBudget)

	// Tracker routes
	trackerRoutes := protected.Group("/tracker")
	trackerRoutes.GET("/categories", trackerHandler.GetCategories)
	trackerRoutes.PATCH("/categories/:id/spending", trackerHandler.UpdateSpending)
	trackerRoutes.PATCH("/categories/:id/limit", trackerHandler.AdjustLimit)
	trackerRoutes.PATCH("/categories/:id/limit/quick", trackerHandler.QuickAdjustLimit)
	trackerRoutes.POST("/expenses", trackerHandler.RecordExpense)
	trackerRoutes.GET("/alerts", trackerHandler.GetAlerts)
	trackerRoutes.DELETE("/alerts/:id", trackerHandler.DismissAlert)
	trackerRoutes.GET("/achievements", trackerHandler.GetAchievements)
	trackerRoutes.GET("/status", trackerHandler.GetStatus)
	trackerRoutes.POST("/rewards", trackerHandler.TriggerReward)
	trackerRoutes.POST("/rewards/claim", trackerHandler.ClaimReward)

	log.Infof("Starting PaisaBook backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
