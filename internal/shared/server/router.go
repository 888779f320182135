package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumegen/internal/ats"
	"resumegen/internal/generations"
	"resumegen/internal/shared/config"
	"resumegen/internal/shared/metrics"
	"resumegen/internal/shared/server/middleware"
	"resumegen/internal/shared/server/respond"
	"resumegen/internal/webform"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config             config.Config
	GenerationsHandler *generations.Handler
	WebFormHandler     *webform.Handler
	ATSHandler         *ats.Handler
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
		middleware.ClientID(),
		middleware.RateLimit(middleware.RateLimitConfig{
			DefaultGroup: "DEFAULT",
			GroupFor:     rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":  {Rate: 5, Burst: 20},
				"GENERATE": {Rate: 1, Burst: 5},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	if deps.GenerationsHandler != nil {
		deps.GenerationsHandler.RegisterRoutes(api)
	}
	if deps.ATSHandler != nil {
		deps.ATSHandler.RegisterRoutes(api)
	}
	if deps.WebFormHandler != nil {
		deps.WebFormHandler.RegisterRoutes(r)
	}

	return r
}

// Rendering a document is much heavier than reading records, so generation
// endpoints get a tighter bucket.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method != http.MethodPost {
		return "DEFAULT"
	}
	switch c.FullPath() {
	case "/api/v1/generations", "/generate", "/save_json", "/upload_json":
		return "GENERATE"
	}
	return "DEFAULT"
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
