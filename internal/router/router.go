// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/javajoker/catalog-backend/internal/config"
	"github.com/javajoker/catalog-backend/internal/handlers"
	"github.com/javajoker/catalog-backend/internal/middleware"
	"github.com/javajoker/catalog-backend/internal/repository"
	"github.com/javajoker/catalog-backend/internal/services"
	"github.com/javajoker/catalog-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *gin.Engine {
	// Initialize repositories and services
	productRepository := repository.NewProductRepository(db)
	catalogService := services.NewCatalogService(db, productRepository, logger)
	authService := services.NewAuthService(db, cfg, logger)
	seedService := services.NewSeedService(db, catalogService, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService)
	seedHandler := handlers.NewSeedHandler(seedService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Rate limiters
	generalLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 10)
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Minute), 5)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(generalLimiter.Middleware())

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
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(authLimiter.Middleware())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/check-status", middleware.AuthRequired(db), authHandler.CheckStatus)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:term", productHandler.GetProduct)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired(db))
			{
				protected.POST("", productHandler.CreateProduct)
				protected.PATCH("/:term", productHandler.UpdateProduct)
				protected.DELETE("/:term", productHandler.DeleteProduct)
			}
		}

		// Seed route
		v1.GET("/seed", seedHandler.ExecuteSeed)
	}

	return r
}
