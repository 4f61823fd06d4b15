package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/comitanigiacomo/kanso-steps/docs"
	"github.com/comitanigiacomo/kanso-steps/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-steps/internal/metrics"
)

type RouterDependencies struct {
	AuthHandler         *AuthHandler
	DashboardHandler    *DashboardHandler
	EntryHandler        *EntryHandler
	NotificationHandler *NotificationHandler

	// TokenService nil disables authentication on the write routes.
	TokenService middleware.TokenValidator

	// DB nil means in-memory storage.
	DB                 *sqlx.DB
	Redis              *redis.Client
	RateLimitPerMinute int

	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer

	StartTime time.Time
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.Default()

	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	if deps.Metrics != nil {
		router.Use(middleware.RequestMetrics(deps.Metrics))
	}

	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimitPerMinute, 1*time.Minute))
	}

	router.GET("/health", func(c *gin.Context) {
		storage := "memory"
		if deps.DB != nil {
			storage = "connected"
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				storage = "unreachable"
			}
		}

		redisStatus := "disabled"
		if deps.Redis != nil {
			redisStatus = "connected"
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = "unreachable"
			}
		}

		statusCode := http.StatusOK
		if storage == "unreachable" || redisStatus == "unreachable" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":  "ok",
			"storage": storage,
			"redis":   redisStatus,
			"uptime":  time.Since(deps.StartTime).String(),
		})
	})

	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.DashboardHandler.RegisterRoutes(apiV1)
	deps.EntryHandler.RegisterRoutes(apiV1)
	if deps.NotificationHandler != nil {
		deps.NotificationHandler.RegisterRoutes(apiV1)
	}

	protected := apiV1.Group("")
	if deps.TokenService != nil {
		if deps.AuthHandler != nil {
			deps.AuthHandler.RegisterRoutes(apiV1)
		}
		protected.Use(middleware.AuthMiddleware(deps.TokenService))
	}
	{
		deps.DashboardHandler.RegisterProtectedRoutes(protected)
		deps.EntryHandler.RegisterProtectedRoutes(protected)
	}

	return router
}
