package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
		c.Metrics.Middleware(),
	)
	if c.RateLimiter != nil {
		router.Use(c.RateLimiter.Middleware(middleware.ByClientIP))
	}
	router.Use(middleware.ErrorHandler())

	router.NoRoute(middleware.NotFound())
	router.NoMethod(middleware.MethodNotAllowed())

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))

	api := router.Group("/api")
	{
		setupAuthRoutes(api, c)

		protected := api.Group("")
		if c.Config.Auth.Enabled {
			protected.Use(middleware.AuthMiddleware(c.JWTManager))
		}

		setupAuthorRoutes(protected, c)
		setupBookRoutes(protected, c)
		setupBiographyRoutes(protected, c)
		setupEventRoutes(protected, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/Auths")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/Authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.GetByID)
		authors.PUT("/:id", c.AuthorHandler.Replace)
		authors.PATCH("/:id", c.AuthorHandler.Patch)
		authors.DELETE("/:id", c.AuthorHandler.Delete)
		authors.GET("/:id/Books", c.BookHandler.ListByAuthor)
		authors.GET("/:id/Events", c.AssociationHandler.ListEvents)
	}
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/Books")
	{
		books.GET("", c.BookHandler.List)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.GetByID)
		books.PUT("/:id", c.BookHandler.Replace)
		books.PATCH("/:id", c.BookHandler.Patch)
		books.DELETE("/:id", c.BookHandler.Delete)
	}
}

// ========================================
// BIOGRAPHY ROUTES
// ========================================
func setupBiographyRoutes(api *gin.RouterGroup, c *container.Container) {
	bios := api.Group("/Biographies")
	{
		bios.GET("", c.BiographyHandler.List)
		bios.POST("", c.BiographyHandler.Create)
		bios.GET("/:authorId", c.BiographyHandler.GetByAuthorID)
		bios.PUT("/:authorId", c.BiographyHandler.Replace)
		bios.PATCH("/:authorId", c.BiographyHandler.Patch)
		bios.DELETE("/:authorId", c.BiographyHandler.Delete)
	}
}

// ========================================
// EVENT ROUTES
// ========================================
func setupEventRoutes(api *gin.RouterGroup, c *container.Container) {
	events := api.Group("/Events")
	{
		events.GET("", c.EventHandler.List)
		events.POST("", c.EventHandler.Create)
		events.GET("/:id", c.EventHandler.GetByID)
		events.PUT("/:id", c.EventHandler.Replace)
		events.PATCH("/:id", c.EventHandler.Patch)
		events.DELETE("/:id", c.EventHandler.Delete)

		events.GET("/:id/Authors", c.AssociationHandler.ListAuthors)
		events.POST("/:id/Authors", c.AssociationHandler.AddAuthor)
		events.DELETE("/:id/Authors/:authorId", c.AssociationHandler.RemoveAuthor)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		services := gin.H{"store": appCtx.Config.Store.Driver}
		for name := range appCtx.Health {
			services[name] = "ok"
		}

		status, code := "ok", http.StatusOK
		for name, msg := range appCtx.CheckHealth(ctx) {
			services[name] = "error: " + msg
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  services,
		})
	}
}
