package ctxutil

import (
	"context"
	"testing"
)

func TestUserRoundTrip(t *testing.T) {
	ctx := WithUser(context.Background(), 42, "ADMIN")

	id, ok := UserIDFromCtx(ctx)
	if !ok || id != 42 {
		t.Errorf("UserIDFromCtx: got (%d, %v), want (42, true)", id, ok)
	}
	if role := UserRoleFromCtx(ctx); role != "ADMIN" {
		t.Errorf("UserRoleFromCtx: got %q, want %q", role, "ADMIN")
	}
}

func TestUserIDFromCtx_Missing(t *testing.T) {
	if id, ok := UserIDFromCtx(context.Background()); ok || id != 0 {
		t.Errorf("got (%d, %v), want (0, false)", id, ok)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	if got := RequestIDFromCtx(ctx); got != "req-1" {
		t.Errorf("got %q, want %q", got, "req-1")
	}
	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("empty context: got %q, want empty", got)
	}
}
