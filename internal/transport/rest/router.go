package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/stepspeak-backend/internal/config"
	"github.com/heartmarshall/stepspeak-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP surface needs.
type RouterDeps struct {
	Auth      *AuthHandler
	Users     *UsersHandler
	Words     *WordsHandler
	Exercises *ExercisesHandler
	Stats     *StatsHandler
	Health    *HealthHandler

	Logger      *slog.Logger
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	RateLimiter *middleware.RateLimiter
}

// NewRouter assembles the full HTTP handler: health and auth endpoints are
// open, everything under /api besides auth requires an identity.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("POST /api/auth/register", deps.Auth.Register)
	mux.HandleFunc("POST /api/auth/login", deps.Auth.Login)

	identified := middleware.Chain(middleware.Identity)

	mux.Handle("GET /api/users/me", identified(http.HandlerFunc(deps.Users.Me)))

	mux.Handle("GET /api/words", identified(http.HandlerFunc(deps.Words.List)))
	mux.Handle("POST /api/words", identified(http.HandlerFunc(deps.Words.Add)))
	mux.Handle("PUT /api/words/status", identified(http.HandlerFunc(deps.Words.UpdateStatus)))
	mux.Handle("DELETE /api/words", identified(http.HandlerFunc(deps.Words.Delete)))
	mux.Handle("POST /api/words/generate", identified(http.HandlerFunc(deps.Words.Generate)))

	mux.Handle("GET /api/exercises", identified(http.HandlerFunc(deps.Exercises.Generate)))
	mux.Handle("POST /api/exercises", identified(http.HandlerFunc(deps.Exercises.Submit)))

	mux.Handle("GET /api/stats", identified(http.HandlerFunc(deps.Stats.Get)))

	chain := []middleware.Middleware{
		middleware.RequestID,
		middleware.CORS(deps.CORS),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
	}
	if deps.RateLimiter != nil && deps.RateLimit.Enabled {
		chain = append(chain, deps.RateLimiter.Limit(deps.RateLimit.MaxPerMinute))
	}

	return middleware.Chain(chain...)(mux)
}
