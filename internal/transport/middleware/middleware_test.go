package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vnest-fi/vnest-backend/internal/domain"
	"github.com/vnest-fi/vnest-backend/pkg/ctxutil"
)

type stubValidator struct {
	userID int64
	role   domain.UserRole
	err    error
}

func (s *stubValidator) ValidateToken(_ context.Context, _ string) (int64, domain.UserRole, error) {
	return s.userID, s.role, s.err
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(mw("first"), mw("second"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "handler" {
		t.Errorf("execution order: %v", order)
	}
}

func TestAuth_AnonymousPassesThrough(t *testing.T) {
	var sawUser bool
	handler := Auth(&stubValidator{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUser = ctxutil.UserIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
	if sawUser {
		t.Error("anonymous request must not carry a user")
	}
}

func TestAuth_ValidToken(t *testing.T) {
	validator := &stubValidator{userID: 7, role: domain.UserRoleAdmin}

	var gotID int64
	var gotRole string
	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = ctxutil.UserIDFromCtx(r.Context())
		gotRole = ctxutil.UserRoleFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if gotID != 7 || gotRole != "ADMIN" {
		t.Errorf("context user: got %d/%s, want 7/ADMIN", gotID, gotRole)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	validator := &stubValidator{err: errors.New("bad token")}

	handler := Auth(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want 401", rec.Code)
	}
}

func TestAdminOnly(t *testing.T) {
	handler := AdminOnly(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		ctx        context.Context
		wantStatus int
	}{
		{"anonymous", context.Background(), http.StatusUnauthorized},
		{"regular user", ctxutil.WithUser(context.Background(), 1, "USER"), http.StatusForbidden},
		{"admin", ctxutil.WithUser(context.Background(), 2, "ADMIN"), http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(tt.ctx)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	if err := RequireAdmin(context.Background()); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}

	userCtx := ctxutil.WithUser(context.Background(), 1, "USER")
	if err := RequireAdmin(userCtx); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("user: got %v, want ErrForbidden", err)
	}

	adminCtx := ctxutil.WithUser(context.Background(), 2, "ADMIN")
	if err := RequireAdmin(adminCtx); err != nil {
		t.Errorf("admin: got %v, want nil", err)
	}
}

func TestRequestID_Generated(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if ctxID == "" {
		t.Error("request id missing from context")
	}
	if rec.Header().Get("X-Request-Id") != ctxID {
		t.Error("response header does not echo the request id")
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var ctxID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "client-id-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ctxID != "client-id-123" {
		t.Errorf("request id: got %q, want client-id-123", ctxID)
	}
}
