// Package wordgroup implements the WordGroup repository using PostgreSQL.
package wordgroup

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Repo provides word group persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word group repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const groupColumns = "id, name, description, created_at, updated_at"

const createGroupSQL = `
INSERT INTO word_groups (name, description)
VALUES ($1, $2)
RETURNING ` + groupColumns

const updateGroupSQL = `
UPDATE word_groups
SET name = $2, description = $3, updated_at = now()
WHERE id = $1
RETURNING ` + groupColumns

const getGroupByIDSQL = `SELECT ` + groupColumns + ` FROM word_groups WHERE id = $1`

const getGroupByNameSQL = `SELECT ` + groupColumns + ` FROM word_groups WHERE name = $1`

const listGroupsSQL = `SELECT ` + groupColumns + ` FROM word_groups ORDER BY name ASC`

const deleteGroupSQL = `DELETE FROM word_groups WHERE id = $1`

// Create inserts a new group and returns the persisted domain.WordGroup.
// Returns domain.ErrAlreadyExists when the name is taken.
func (r *Repo) Create(ctx context.Context, group *domain.WordGroup) (*domain.WordGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createGroupSQL, group.Name, group.Description)
	created, err := scanGroup(row)
	if err != nil {
		return nil, postgres.MapError(err, "word_group", 0)
	}

	return created, nil
}

// Update replaces a group's name and description.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) Update(ctx context.Context, id int64, group *domain.WordGroup) (*domain.WordGroup, error) {
	if err := group.Validate(); err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, updateGroupSQL, id, group.Name, group.Description)
	updated, err := scanGroup(row)
	if err != nil {
		return nil, postgres.MapError(err, "word_group", id)
	}

	return updated, nil
}

// Delete removes a group. The foreign key from words is RESTRICT, so the
// caller must verify the group is unused first; a racing reference shows
// up here as domain.ErrConflict.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteGroupSQL, id)
	if err != nil {
		mapped := postgres.MapError(err, "word_group", id)
		return mapped
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word_group %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns a group by primary key.
// Returns domain.ErrNotFound if the group does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.WordGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getGroupByIDSQL, id)
	group, err := scanGroup(row)
	if err != nil {
		return nil, postgres.MapError(err, "word_group", id)
	}

	return group, nil
}

// GetByName returns a group by its unique name.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.WordGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getGroupByNameSQL, name)
	group, err := scanGroup(row)
	if err != nil {
		return nil, postgres.MapError(err, "word_group", 0)
	}

	return group, nil
}

// List returns all groups ordered by name.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]domain.WordGroup, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, listGroupsSQL)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()

	var result []domain.WordGroup
	for rows.Next() {
		var g domain.WordGroup
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.WordGroup{}
	}

	return result, nil
}

func scanGroup(row pgx.Row) (*domain.WordGroup, error) {
	var g domain.WordGroup
	if err := row.Scan(&g.ID, &g.Name, &g.Description, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}
