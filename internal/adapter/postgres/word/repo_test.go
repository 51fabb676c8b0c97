package word

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

func newMockRepo(t *testing.T) (*Repo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return New(mock), mock
}

func wordRows(id int64, text, typ string, groupID *int64) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{"id", "text", "type", "group_id", "created_at", "updated_at"}).
		AddRow(id, text, typ, groupID, now, now)
}

func TestRepo_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO words`).
		WithArgs("koira", "SUBJECT", (*int64)(nil)).
		WillReturnRows(wordRows(1, "koira", "SUBJECT", nil))

	created, err := repo.Create(context.Background(), &domain.Word{
		Text: "koira",
		Type: domain.WordTypeSubject,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 || created.Text != "koira" || created.Type != domain.WordTypeSubject {
		t.Errorf("unexpected word: %+v", created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRepo_Create_InvalidSkipsDatabase(t *testing.T) {
	repo, _ := newMockRepo(t)

	groupID := int64(5)
	_, err := repo.Create(context.Background(), &domain.Word{
		Text:    "koira",
		Type:    domain.WordTypeSubject,
		GroupID: &groupID,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, text, type, group_id, created_at, updated_at FROM words WHERE id`).
		WithArgs(int64(42)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRepo_GetByTextAndType(t *testing.T) {
	repo, mock := newMockRepo(t)

	groupID := int64(3)
	mock.ExpectQuery(`SELECT id, text, type, group_id, created_at, updated_at FROM words WHERE text`).
		WithArgs("juosta", "VERB").
		WillReturnRows(wordRows(7, "juosta", "VERB", &groupID))

	w, err := repo.GetByTextAndType(context.Background(), "juosta", domain.WordTypeVerb)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.GroupID == nil || *w.GroupID != 3 {
		t.Errorf("group_id: got %v, want 3", w.GroupID)
	}
}

func TestRepo_GetByIDs_EmptyInput(t *testing.T) {
	repo, _ := newMockRepo(t)

	words, err := repo.GetByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if words == nil || len(words) != 0 {
		t.Errorf("got %v, want empty non-nil slice", words)
	}
}

func TestRepo_List_TypeFilter(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "text", "type", "group_id", "created_at", "updated_at"}).
		AddRow(int64(1), "kissa", "SUBJECT", (*int64)(nil), now, now).
		AddRow(int64(2), "koira", "SUBJECT", (*int64)(nil), now, now)

	mock.ExpectQuery(`SELECT id, text, type, group_id, created_at, updated_at FROM words WHERE type`).
		WithArgs("SUBJECT").
		WillReturnRows(rows)

	typ := domain.WordTypeSubject
	words, err := repo.List(context.Background(), &typ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("len: got %d, want 2", len(words))
	}
	if words[0].Text != "kissa" {
		t.Errorf("order: got %q first, want kissa", words[0].Text)
	}
}

func TestRepo_Delete_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM words WHERE id`).
		WithArgs(int64(9)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), 9)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestRepo_CountByGroup(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT count`).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountByGroup(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 4 {
		t.Errorf("count: got %d, want 4", count)
	}
}
