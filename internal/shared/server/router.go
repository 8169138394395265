package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medrights-backend/internal/agencies"
	"medrights-backend/internal/services/health"
	"medrights-backend/internal/shared/config"
	"medrights-backend/internal/shared/metrics"
	"medrights-backend/internal/shared/server/middleware"
	"medrights-backend/internal/shared/server/respond"
	"medrights-backend/internal/triage"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config          config.Config
	TriageHandler   *triage.Handler
	AgenciesHandler *agencies.Handler
	HealthService   *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)
	if deps.Config.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(middleware.RateLimitRule{
			Rate:  deps.Config.RateLimitRPS,
			Burst: deps.Config.RateLimitBurst,
		}, nil))
	}

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.HealthService.Status())
	})
	deps.TriageHandler.RegisterRoutes(api)
	deps.AgenciesHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
