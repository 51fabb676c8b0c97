// Package user implements the User repository using PostgreSQL.
// Users come exclusively from the startup bootstrapper, so the write
// surface is a single upsert keyed by email.
package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const userColumns = "id, email, name, password_hash, role, created_at, updated_at"

const getUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

const upsertUserSQL = `
INSERT INTO users (email, name, password_hash, role)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE
SET name = EXCLUDED.name,
    password_hash = EXCLUDED.password_hash,
    role = EXCLUDED.role,
    updated_at = now()
RETURNING ` + userColumns

const countUsersSQL = `SELECT count(*) FROM users`

// GetByEmail returns the user with the given email.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getUserByEmailSQL, email)
	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return u, nil
}

// Upsert inserts the user or, when the email already exists, refreshes
// name, password hash and role.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, upsertUserSQL, u.Email, u.Name, u.PasswordHash, u.Role.String())
	saved, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	return saved, nil
}

// Count returns the total number of users.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, countUsersSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}

	return count, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
