// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/blendsoft/pos-terminal/internal/cart"
	"github.com/blendsoft/pos-terminal/internal/config"
	"github.com/blendsoft/pos-terminal/internal/gateway"
	"github.com/blendsoft/pos-terminal/internal/handlers"
	"github.com/blendsoft/pos-terminal/internal/middleware"
	"github.com/blendsoft/pos-terminal/internal/services"
	"github.com/blendsoft/pos-terminal/internal/store"
	"github.com/blendsoft/pos-terminal/internal/utils"
)

func Initialize(cfg *config.Config, gw *gateway.Client, st *store.Store, ct *cart.Cart) *gin.Engine {
	// Initialize services
	productService := services.NewProductService(gw, st)
	providerService := services.NewProviderService(gw, st)
	userService := services.NewUserService(gw, st)
	saleService := services.NewSaleService(gw, st, ct)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	providerHandler := handlers.NewProviderHandler(providerService)
	userHandler := handlers.NewUserHandler(userService)
	saleHandler := handlers.NewSaleHandler(saleService)
	cartHandler := handlers.NewCartHandler(ct, st, saleService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.GeneralRateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Session mint for local development; deployed environments take
		// tokens from the external identity service.
		if cfg.Environment != "production" {
			sessionHandler := handlers.NewSessionHandler(cfg.Auth.SessionTTL)
			v1.POST("/auth/session", sessionHandler.MintSession)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)

			protected := products.Group("")
			protected.Use(middleware.SessionRequired())
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PUT("/:id", productHandler.UpdateProduct)
				protected.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Provider routes
		providers := v1.Group("/providers")
		{
			providers.GET("", providerHandler.GetProviders)

			protected := providers.Group("")
			protected.Use(middleware.SessionRequired())
			{
				protected.POST("", providerHandler.CreateProvider)
				protected.PUT("/:id", providerHandler.UpdateProvider)
				protected.DELETE("/:id", providerHandler.DeleteProvider)
			}
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("/:document", userHandler.GetUser)
			users.POST("", userHandler.CreateUser) // registration

			protected := users.Group("")
			protected.Use(middleware.SessionRequired())
			{
				protected.GET("", userHandler.GetUsers)
				protected.PUT("/:document", userHandler.UpdateUser)
				protected.DELETE("/:document", userHandler.DeleteUser)
			}
		}

		// Sale routes (read-only; sales are created through checkout)
		sales := v1.Group("/sales")
		sales.Use(middleware.SessionRequired())
		{
			sales.GET("", saleHandler.GetSales)
			sales.GET("/:id", saleHandler.GetSale)
		}

		// Cart routes
		cartRoutes := v1.Group("/cart")
		cartRoutes.Use(middleware.SessionRequired())
		{
			cartRoutes.GET("", cartHandler.GetCart)
			cartRoutes.POST("/items", cartHandler.AddItem)
			cartRoutes.PUT("/items/:id", cartHandler.SetQuantity)
			cartRoutes.DELETE("/items/:id", cartHandler.RemoveItem)
			cartRoutes.DELETE("", cartHandler.ClearCart)
			cartRoutes.POST("/checkout", cartHandler.Checkout)
		}
	}

	return r
}
