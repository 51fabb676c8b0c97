package middleware

import (
	"context"
	"net/http"

	"github.com/vnest-fi/vnest-backend/internal/domain"
	"github.com/vnest-fi/vnest-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not an
// admin, and domain.ErrUnauthorized if there is no user at all.
// Use in handlers that need finer control than the route-level middleware.
func RequireAdmin(ctx context.Context) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// AdminOnly rejects anonymous requests with 401 and non-admin users with 403.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !ctxutil.IsAdminCtx(r.Context()) {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
