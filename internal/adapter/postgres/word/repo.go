// Package word implements the Word repository using PostgreSQL.
// It provides CRUD operations plus the lookups the importer and the
// combination service need (by text+type, by id set, count per group).
package word

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	postgres "github.com/vnest-fi/vnest-backend/internal/adapter/postgres"
	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const wordColumns = "id, text, type, group_id, created_at, updated_at"

const createWordSQL = `
INSERT INTO words (text, type, group_id)
VALUES ($1, $2, $3)
RETURNING ` + wordColumns

const updateWordSQL = `
UPDATE words
SET text = $2, type = $3, group_id = $4, updated_at = now()
WHERE id = $1
RETURNING ` + wordColumns

const getWordByIDSQL = `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

const getWordByTextAndTypeSQL = `SELECT ` + wordColumns + ` FROM words WHERE text = $1 AND type = $2`

const getWordsByIDsSQL = `SELECT ` + wordColumns + ` FROM words WHERE id = ANY($1::bigint[]) ORDER BY id`

const deleteWordSQL = `DELETE FROM words WHERE id = $1`

const countWordsByGroupSQL = `SELECT count(*) FROM words WHERE group_id = $1`

// Create inserts a new word and returns the persisted domain.Word.
// The word invariants are checked before touching the database.
func (r *Repo) Create(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	if err := word.Validate(); err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, createWordSQL, word.Text, word.Type.String(), word.GroupID)
	created, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", 0)
	}

	return created, nil
}

// Update replaces a word's text, type and group association.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Update(ctx context.Context, id int64, word *domain.Word) (*domain.Word, error) {
	if err := word.Validate(); err != nil {
		return nil, err
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, updateWordSQL, id, word.Text, word.Type.String(), word.GroupID)
	updated, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return updated, nil
}

// Delete removes a word. Combinations referencing it are removed by the
// ON DELETE CASCADE foreign keys.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, deleteWordSQL, id)
	if err != nil {
		return postgres.MapError(err, "word", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// GetByID returns a word by primary key.
// Returns domain.ErrNotFound if the word does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getWordByIDSQL, id)
	word, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", id)
	}

	return word, nil
}

// GetByTextAndType returns the word with the exact text and type.
// Returns domain.ErrNotFound when absent.
func (r *Repo) GetByTextAndType(ctx context.Context, text string, typ domain.WordType) (*domain.Word, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	row := q.QueryRow(ctx, getWordByTextAndTypeSQL, text, typ.String())
	word, err := scanWord(row)
	if err != nil {
		return nil, postgres.MapError(err, "word", 0)
	}

	return word, nil
}

// GetByIDs returns the words matching the given ids, ordered by id.
// Missing ids are silently skipped; an empty input returns an empty slice.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Word, error) {
	if len(ids) == 0 {
		return []domain.Word{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, getWordsByIDsSQL, ids)
	if err != nil {
		return nil, fmt.Errorf("get words by ids: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// List returns all words, optionally filtered to one type, ordered by text.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, typ *domain.WordType) ([]domain.Word, error) {
	builder := postgres.Builder().
		Select("id", "text", "type", "group_id", "created_at", "updated_at").
		From("words").
		OrderBy("text ASC")

	if typ != nil {
		builder = builder.Where("type = ?", typ.String())
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	return scanWords(rows)
}

// CountByGroup returns the number of words referencing the given group.
func (r *Repo) CountByGroup(ctx context.Context, groupID int64) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, countWordsByGroupSQL, groupID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count words by group: %w", err)
	}

	return count, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanWord(row pgx.Row) (*domain.Word, error) {
	var (
		w       domain.Word
		typ     string
		groupID *int64
	)

	err := row.Scan(&w.ID, &w.Text, &typ, &groupID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}

	w.Type = domain.WordType(typ)
	w.GroupID = groupID
	return &w, nil
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var result []domain.Word
	for rows.Next() {
		var (
			w         domain.Word
			typ       string
			groupID   *int64
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&w.ID, &w.Text, &typ, &groupID, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		w.Type = domain.WordType(typ)
		w.GroupID = groupID
		w.CreatedAt = createdAt
		w.UpdatedAt = updatedAt
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.Word{}
	}

	return result, nil
}
