package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vnest-fi/vnest-backend/internal/config"
	"github.com/vnest-fi/vnest-backend/internal/domain"
	"github.com/vnest-fi/vnest-backend/internal/transport/middleware"
)

// tokenValidator resolves bearer tokens for the auth middleware.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (int64, domain.UserRole, error)
}

// Handlers groups the REST handlers the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Words        *WordHandler
	Combinations *CombinationHandler
	Health       *HealthHandler
}

// NewRouter builds the chi router with the full middleware stack and all
// routes. Reads are public; writes live under /admin and require the
// ADMIN role.
func NewRouter(logger *slog.Logger, cfg config.CORSConfig, validator tokenValidator, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg),
		middleware.Auth(validator),
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Auth.Login)

		r.Get("/words", h.Words.List)
		r.Get("/words/{id}", h.Words.Get)
		r.Get("/groups", h.Words.ListGroups)
		r.Get("/groups/{id}", h.Words.GetGroup)

		r.Get("/combinations", h.Combinations.List)
		r.Get("/combinations/{id}", h.Combinations.Get)

		r.Get("/suggestions", h.Combinations.Suggest)
		r.Post("/suggestions/validate", h.Combinations.Validate)
		r.Get("/suggestions/{verb_id}", h.Combinations.SuggestByVerb)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminOnly)

		r.Post("/words", h.Words.Create)
		r.Put("/words/{id}", h.Words.Update)
		r.Delete("/words/{id}", h.Words.Delete)

		r.Post("/groups", h.Words.CreateGroup)
		r.Put("/groups/{id}", h.Words.UpdateGroup)
		r.Delete("/groups/{id}", h.Words.DeleteGroup)

		r.Post("/combinations", h.Combinations.Create)
		r.Post("/combinations/batch", h.Combinations.CreateBatch)
		r.Delete("/combinations/{id}", h.Combinations.Delete)
		r.Delete("/combinations/by-verb/{verb_id}", h.Combinations.DeleteByVerb)
	})

	r.Get("/health", h.Health.Health)
	r.Get("/health/live", h.Health.Live)
	r.Get("/health/ready", h.Health.Ready)

	return r
}
