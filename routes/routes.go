package routes

import (
	"time"

	"rating-voyage-backend/handlers"
	"rating-voyage-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	userHandler := &handlers.UserHandler{DB: db}
	storeHandler := &handlers.StoreHandler{DB: db}
	ratingHandler := &handlers.RatingHandler{DB: db}
	dashboardHandler := &handlers.DashboardHandler{DB: db}

	// Rate limit the credential endpoints: 10 attempts per minute per IP
	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authLimiter.Middleware(), authHandler.Register)
		api.POST("/auth/login", authLimiter.Middleware(), authHandler.Login)

		// Public store routes
		api.GET("/stores", storeHandler.ListStores)
		api.GET("/stores/nearby", storeHandler.GetNearbyStores)
		api.GET("/stores/:id", storeHandler.GetStore)
		api.GET("/stores/:id/hours", storeHandler.GetStoreHours)

		// Public rating routes
		api.GET("/ratings", ratingHandler.ListRatings)
		api.GET("/ratings/:id", ratingHandler.GetRating)

		// Public dashboard routes
		api.GET("/dashboard/top-rated-stores", dashboardHandler.GetTopRatedStores)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// User profile
		protected.GET("/auth/profile", authHandler.GetProfile)
		protected.PUT("/auth/profile", authHandler.UpdateProfile)
		protected.PUT("/auth/password", authHandler.ChangePassword)

		// Store management
		protected.GET("/stores/my-stores", storeHandler.GetMyStores)
		protected.POST("/stores", middleware.Authorize("store-owner", "admin"), storeHandler.CreateStore)
		protected.PUT("/stores/:id", storeHandler.UpdateStore)
		protected.DELETE("/stores/:id", storeHandler.DeleteStore)
		protected.PUT("/stores/:id/hours", storeHandler.UpdateStoreHours)

		// Rating management
		protected.GET("/ratings/my-ratings", ratingHandler.GetMyRatings)
		protected.POST("/ratings", ratingHandler.CreateRating)
		protected.PUT("/ratings/:id", ratingHandler.UpdateRating)
		protected.DELETE("/ratings/:id", ratingHandler.DeleteRating)
		protected.POST("/ratings/:id/helpful", ratingHandler.MarkHelpful)

		// Dashboards
		protected.GET("/dashboard/user-stats", dashboardHandler.GetUserStats)
		protected.GET("/dashboard/store-stats/:storeId", dashboardHandler.GetStoreStats)
	}

	// Admin routes (require admin role)
	admin := api.Group("")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.Authorize("admin"))
	{
		// User management
		admin.GET("/users", userHandler.ListUsers)
		admin.POST("/users", userHandler.CreateUser)
		admin.GET("/users/:id", userHandler.GetUser)
		admin.PUT("/users/:id", userHandler.UpdateUser)
		admin.DELETE("/users/:id", userHandler.DeleteUser)

		// Admin dashboard
		admin.GET("/dashboard/stats", dashboardHandler.GetStats)
		admin.GET("/dashboard/recent-activity", dashboardHandler.GetRecentActivity)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
