// Package combination implements the AllowedCombination repository using
// PostgreSQL. The (subject_id, verb_id, object_id) triple carries a unique
// index, so a racing duplicate insert surfaces as domain.ErrAlreadyExists.
package combination

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Repo provides allowed-combination persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new combination repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const combinationColumns = "id, subject_id, verb_id, object_id, created_at"

const createCombinationSQL = `
INSERT INTO allowed_combinations (subject_id, verb_id, object_id)
VALUES ($1, $2, $3)
RETURNING ` + combinationColumns

const getCombinationByIDSQL = `SELECT ` + combinationColumns + ` FROM allowed_combinations WHERE id = $1`

const getCombinationByTripleSQL = `
SELECT ` + combinationColumns + `
FROM allowed_combinations
WHERE subject_id = $1 AND verb_id = $2 AND object_id = $3`

const deleteCombinationSQL = `DELETE FROM allowed_combinations WHERE id = $1`

const deleteCombinationsByVerbSQL = `DELETE FROM allowed_combinations WHERE verb_id = $1`

const countCombinationsSQL = `SELECT count(*) FROM allowed_combinations`

const distinctVerbIDsSQL = `SELECT DISTINCT verb_id FROM allowed_combinations ORDER BY verb_id`

// Create inserts a new combination and returns the persisted entity.
// Returns domain.ErrAlreadyExists when the exact triple is already present
// and domain.ErrNotFound when a referenced word id does not exist.
func (r *Repo) Create(ctx context.Context, c *domain.AllowedCombination) (*domain.AllowedCombination, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createCombinationSQL, c.SubjectID, c.VerbID, c.ObjectID)
	created, err := scanCombination(row)
	if err != nil {
		return nil, postgres.MapError(err, "combination", 0)
	}

	return created, nil
}

// GetByID returns a combination by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.AllowedCombination, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getCombinationByIDSQL, id)
	c, err := scanCombination(row)
	if err != nil {
		return nil, postgres.MapError(err, "combination", id)
	}

	return c, nil
}

// GetByTriple returns the combination with the exact (subject, verb, object)
// ids. Returns domain.ErrNotFound when the triple is not allowed.
func (r *Repo) GetByTriple(ctx context.Context, subjectID, verbID, objectID int64) (*domain.AllowedCombination, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getCombinationByTripleSQL, subjectID, verbID, objectID)
	c, err := scanCombination(row)
	if err != nil {
		return nil, postgres.MapError(err, "combination", 0)
	}

	return c, nil
}

// List returns combinations, optionally filtered to one verb id, ordered
// by id. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, verbID *int64) ([]domain.AllowedCombination, error) {
	builder := postgres.Builder().
		Select("id", "subject_id", "verb_id", "object_id", "created_at").
		From("allowed_combinations").
		OrderBy("id ASC")

	if verbID != nil {
		builder = builder.Where("verb_id = ?", *verbID)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list combinations: %w", err)
	}
	defer rows.Close()

	return scanCombinations(rows)
}

// DeleteByID removes one combination.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) DeleteByID(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteCombinationSQL, id)
	if err != nil {
		return postgres.MapError(err, "combination", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("combination %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// DeleteByVerb removes all combinations for a verb and returns how many
// were deleted. Zero matches is not an error.
func (r *Repo) DeleteByVerb(ctx context.Context, verbID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteCombinationsByVerbSQL, verbID)
	if err != nil {
		return 0, postgres.MapError(err, "combination", verbID)
	}

	return tag.RowsAffected(), nil
}

// Count returns the total number of stored combinations.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, countCombinationsSQL).Scan(&count); err != nil {
		return 0, fmt.Errorf("count combinations: %w", err)
	}

	return count, nil
}

// DistinctVerbIDs returns the ids of verbs that appear in at least one
// combination, ordered by id.
func (r *Repo) DistinctVerbIDs(ctx context.Context) ([]int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, distinctVerbIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("distinct verb ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if ids == nil {
		ids = []int64{}
	}

	return ids, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCombination(row pgx.Row) (*domain.AllowedCombination, error) {
	var c domain.AllowedCombination
	err := row.Scan(&c.ID, &c.SubjectID, &c.VerbID, &c.ObjectID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCombinations(rows pgx.Rows) ([]domain.AllowedCombination, error) {
	var result []domain.AllowedCombination
	for rows.Next() {
		var c domain.AllowedCombination
		if err := rows.Scan(&c.ID, &c.SubjectID, &c.VerbID, &c.ObjectID, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.AllowedCombination{}
	}

	return result, nil
}
