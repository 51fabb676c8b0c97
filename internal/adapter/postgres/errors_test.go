package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: domain.ErrNotFound},
		{name: "unique violation", in: &pgconn.PgError{Code: "23505"}, want: domain.ErrAlreadyExists},
		{name: "fk violation", in: &pgconn.PgError{Code: "23503"}, want: domain.ErrNotFound},
		{name: "check violation", in: &pgconn.PgError{Code: "23514"}, want: domain.ErrValidation},
		{name: "deadline passes through", in: context.DeadlineExceeded, want: context.DeadlineExceeded},
		{name: "canceled passes through", in: context.Canceled, want: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.in, "word", 7)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("got %v, want nil", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("got %v, want wrapped %v", got, tt.want)
			}
		})
	}
}

func TestMapError_UnknownWrapped(t *testing.T) {
	in := fmt.Errorf("boom")
	got := MapError(in, "word", 1)
	if !errors.Is(got, in) {
		t.Errorf("unknown errors should be wrapped, got %v", got)
	}
	if errors.Is(got, domain.ErrNotFound) {
		t.Error("unknown error must not map to ErrNotFound")
	}
}
