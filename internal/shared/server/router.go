package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-roadmap/internal/content"
	"ai-roadmap/internal/planner"
	"ai-roadmap/internal/services/health"
	"ai-roadmap/internal/shared/config"
	"ai-roadmap/internal/shared/metrics"
	"ai-roadmap/internal/shared/server/middleware"
	"ai-roadmap/internal/shared/server/respond"
)

const (
	groupDefault   = "DEFAULT"
	groupUnlimited = "UNLIMITED"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, page content.Page) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: groupDefault,
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				groupDefault: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}),
	)

	healthSvc := health.NewService(page)
	plannerHandler := planner.NewHandler(page, cfg.SiteTitle, cfg.DefaultObjective)

	plannerHandler.RegisterPageRoutes(r)
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	plannerHandler.RegisterRoutes(api)

	return r
}

// Probes and scrapes are never throttled.
func rateLimitGroup(c *gin.Context) string {
	switch c.FullPath() {
	case "/metrics", "/api/v1/health":
		return groupUnlimited
	}
	return groupDefault
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
