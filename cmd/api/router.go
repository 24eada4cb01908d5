package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/config"
	"blog-backend/internal/shared/middleware"
	"blog-backend/internal/shared/response"
	"blog-backend/pkg/container"
)

// NewHandler is the full HTTP stack: the scs session layer wraps the gin router
// so that the session is loaded before authentication runs.
func NewHandler(c *container.Container) http.Handler {
	return c.Sessions.LoadAndSave(SetupRouter(c))
}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Authenticate(c.JWTManager, c.Sessions),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.ErrorResponse(ctx, http.StatusNotFound, "ROUTE_NOT_FOUND", "route not found")
	})

	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)

	api := router.Group("/api")
	{
		setupTokenRoutes(api, c)
		setupArticleRoutes(api, c)
		setupCommentRoutes(api, c)
		setupUserRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(router *gin.Engine, c *container.Container) {
	router.POST("/login", c.UserHandler.Login)
	router.POST("/logout", c.UserHandler.Logout)
}

func setupTokenRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/token", c.UserHandler.IssueToken)
	api.GET("/me", middleware.RequireAuth(), c.UserHandler.Me)
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	articles := api.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.ListArticles)
		articles.POST("", middleware.RequireAuth(), c.ArticleHandler.CreateArticle)
		articles.GET("/:id", c.ArticleHandler.GetArticle)
		articles.PUT("/:id", c.ArticleHandler.UpdateArticle)
		articles.DELETE("/:id", c.ArticleHandler.DeleteArticle)

		articles.GET("/:id/comments", c.CommentHandler.ListComments)
		articles.POST("/:id/comments", middleware.RequireAuth(), c.CommentHandler.CreateComment)
	}
}

// ========================================
// COMMENT ROUTES
// ========================================
func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	api.DELETE("/comments/:id", c.CommentHandler.DeleteComment)
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.POST("", c.UserHandler.CreateUser)
		users.GET("/:id", c.UserHandler.GetUser)
		users.PUT("/:id", c.UserHandler.UpdateUser)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Check database
		dbStatus := "ok"
		switch {
		case appCtx.Config.Storage.Driver == config.StorageMemory:
			dbStatus = "memory"
		case appCtx.DB == nil || appCtx.DB.Pool == nil:
			dbStatus = "disconnected"
		default:
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = "error: " + err.Error()
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		// Check redis
		redisStatus := "disabled"
		if appCtx.Redis != nil {
			redisStatus = "ok"
			if err := appCtx.Redis.HealthCheck(ctx); err != nil {
				redisStatus = "error: " + err.Error()
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" && dbStatus != "memory" {
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else if redisStatus != "ok" && redisStatus != "disabled" {
			health["status"] = "degraded"
		}

		c.JSON(statusCode, health)
	}
}
