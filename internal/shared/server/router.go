package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studybuddy-backend/internal/ai"
	"studybuddy-backend/internal/auth"
	"studybuddy-backend/internal/documents"
	"studybuddy-backend/internal/shared/config"
	"studybuddy-backend/internal/shared/metrics"
	"studybuddy-backend/internal/shared/server/middleware"
	"studybuddy-backend/internal/shared/server/respond"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Auth  *auth.Handler
	Files *documents.Handler
	AI    *ai.Handler
}

// NewRouter constructs the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	public := r.Group("")
	h.Auth.RegisterPublicRoutes(public)

	protected := r.Group("", middleware.Auth())
	h.Auth.RegisterProtectedRoutes(protected)
	h.Files.RegisterRoutes(protected)
	h.AI.RegisterRoutes(protected)

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
