package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-backend/internal/chat"
	"hr-backend/internal/jobs"
	"hr-backend/internal/screening"
	"hr-backend/internal/shared/auth"
	"hr-backend/internal/shared/config"
	"hr-backend/internal/shared/metrics"
	"hr-backend/internal/shared/server/middleware"
	"hr-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers and infrastructure the router wires up.
type RouterDeps struct {
	Config           config.Config
	Signer           *auth.Signer
	ChatHandler      *chat.Handler
	JobsHandler      *jobs.Handler
	ScreeningHandler *screening.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Chat is open to any authenticated or anonymous caller; screening and JD
// generation require the hr role.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Signer),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"SCREEN": {Rate: 1, Burst: 5},
				"CHAT":   {Rate: 5, Burst: 20},
			},
			GroupFor: func(c *gin.Context) string {
				switch c.FullPath() {
				case "/api/v1/resume/screen":
					return "SCREEN"
				case "/api/v1/chat":
					return "CHAT"
				}
				return ""
			},
		}),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	registerAuthRoutes(api, deps.Signer)
	if deps.ChatHandler != nil {
		deps.ChatHandler.RegisterRoutes(api)
	}

	hr := api.Group("", middleware.RequireRole(auth.RoleHR))
	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(hr)
	}
	if deps.ScreeningHandler != nil {
		deps.ScreeningHandler.RegisterRoutes(hr)
	}

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
