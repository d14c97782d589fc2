package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/config"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/handler"
	"github.com/MiguelSerea/TCC-Espaco-BK-Backend/internal/http/middleware"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(
	cfg config.Config,
	authHandler *handler.AuthHandler,
	taskHandler *handler.TaskHandler,
	clientHandler *handler.ClientHandler,
	campaignHandler *handler.CampaignHandler,
	sessionAuth *middleware.SessionAuth,
	rateLimiter *middleware.RateLimiter,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	if rateLimiter != nil {
		r.Use(rateLimiter.Handler())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/check", authHandler.Check)
	}

	tasks := r.Group("/tasks", sessionAuth.RequireUser)
	{
		tasks.GET("/", taskHandler.List)
		tasks.POST("/", taskHandler.Create)
		tasks.GET("/:id", taskHandler.Get)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
		tasks.PATCH("/:id/complete", taskHandler.Complete)
	}

	clients := r.Group("/clients")
	{
		clients.GET("/", clientHandler.List)
		clients.GET("/:id", clientHandler.Get)
		clients.POST("/", sessionAuth.RequireUser, clientHandler.Create)
		clients.PUT("/:id", sessionAuth.RequireUser, clientHandler.Update)
		clients.DELETE("/:id", sessionAuth.RequireUser, clientHandler.Delete)
	}

	campaigns := r.Group("/campaigns")
	{
		campaigns.GET("/", campaignHandler.List)
		campaigns.GET("/:id", campaignHandler.Get)
	}

	return r
}
