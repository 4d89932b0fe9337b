// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shoply/shoply-backend/internal/config"
	"github.com/shoply/shoply-backend/internal/handlers"
	"github.com/shoply/shoply-backend/internal/middleware"
	"github.com/shoply/shoply-backend/internal/services"
)

// Setup wires services, handlers, and middleware into the HTTP engine.
func Setup(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Services
	notificationService := services.NewNotificationService(db)
	orderService := services.NewOrderService(db, notificationService)
	catalogService := services.NewCatalogService(db, notificationService)
	analyticsService := services.NewAnalyticsService(db)
	favoriteService := services.NewFavoriteService(db)
	authService := services.NewAuthService(db, cfg)
	paymentService := services.NewPaymentService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	catalogHandler := handlers.NewCatalogHandler(catalogService, storageService)
	orderHandler := handlers.NewOrderHandler(orderService)
	adminHandler := handlers.NewAdminHandler(analyticsService, orderService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth
		auth := api.Group("/auth")
		{
			auth.POST("/register", middleware.AuthRateLimit(), authHandler.Register)
			auth.POST("/login", middleware.AuthRateLimit(), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog (public reads)
		api.GET("/products", catalogHandler.GetProducts)
		api.GET("/products/:id", catalogHandler.GetProduct)
		api.GET("/categories", catalogHandler.GetCategories)

		// Orders
		api.POST("/orders/success", middleware.CheckoutRateLimit(), orderHandler.RecordOrder)
		api.GET("/orders", middleware.AuthRequired(), middleware.AdminRequired(), orderHandler.GetOrders)
		api.GET("/orders/user/:userId", middleware.AuthRequired(), orderHandler.GetUserOrders)

		// Favorites
		favorites := api.Group("/favorites")
		favorites.Use(middleware.AuthRequired())
		{
			favorites.GET("/:userId", favoriteHandler.GetFavorites)
			favorites.POST("", favoriteHandler.AddFavorite)
			favorites.DELETE("/:userId/:productId", favoriteHandler.RemoveFavorite)
			favorites.GET("/check/:userId/:productId", favoriteHandler.CheckFavorite)
		}

		// Notifications
		notifications := api.Group("/notifications")
		notifications.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			notifications.GET("", notificationHandler.GetNotifications)
			notifications.GET("/unread-count", notificationHandler.GetUnreadCount)
			notifications.POST("", notificationHandler.CreateNotification)
			notifications.PUT("/mark-all-read", notificationHandler.MarkAllAsRead)
			notifications.PUT("/:id/read", notificationHandler.MarkAsRead)
		}

		// Payments
		payments := api.Group("/payments")
		{
			payments.GET("/config", paymentHandler.GetConfig)
			payments.POST("/checkout-session", middleware.CheckoutRateLimit(), paymentHandler.CreateCheckoutSession)
		}

		// Admin
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/dashboard", adminHandler.GetDashboard)
			admin.GET("/dashboard-stats", adminHandler.GetDashboardStats)
			admin.GET("/sales-trend", adminHandler.GetSalesTrend)
			admin.GET("/category-distribution", adminHandler.GetCategoryDistribution)
			admin.GET("/top-products", adminHandler.GetTopProducts)
			admin.GET("/low-stock-products", adminHandler.GetLowStockProducts)
			admin.GET("/customers-report", adminHandler.GetCustomersReport)
			admin.GET("/customer-orders/:userId", adminHandler.GetCustomerOrders)

			admin.POST("/products", catalogHandler.CreateProduct)
			admin.PUT("/products/:id", catalogHandler.UpdateProduct)
			admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
			admin.PUT("/products/:id/stock", catalogHandler.AdjustStock)
			admin.POST("/categories", catalogHandler.CreateCategory)
			admin.POST("/products/upload-image", middleware.UploadRateLimit(), catalogHandler.UploadImage)
		}
	}

	return r, nil
}
