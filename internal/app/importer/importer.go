package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/vnest-fi/vnest-backend/internal/config"
	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordStore interface {
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	Update(ctx context.Context, id int64, word *domain.Word) (*domain.Word, error)
	GetByTextAndType(ctx context.Context, text string, typ domain.WordType) (*domain.Word, error)
}

type groupStore interface {
	Create(ctx context.Context, group *domain.WordGroup) (*domain.WordGroup, error)
	GetByName(ctx context.Context, name string) (*domain.WordGroup, error)
}

type combinationStore interface {
	Create(ctx context.Context, c *domain.AllowedCombination) (*domain.AllowedCombination, error)
	GetByTriple(ctx context.Context, subjectID, verbID, objectID int64) (*domain.AllowedCombination, error)
	Count(ctx context.Context) (int64, error)
}

// ---------------------------------------------------------------------------
// Importer
// ---------------------------------------------------------------------------

// Result summarizes one import run.
type Result struct {
	Rows                 int
	SkippedRows          int
	FailedRows           int
	WordsCreated         int
	GroupsCreated        int
	CombinationsCreated  int
	CombinationsExisting int
	Duration             time.Duration
}

// Importer performs the one-time dataset bootstrap.
type Importer struct {
	log          *slog.Logger
	words        wordStore
	groups       groupStore
	combinations combinationStore
	cfg          config.ImportConfig

	// Run-scoped caches keyed by "TYPE:text" and group name. They make
	// the import idempotent within one file without re-querying.
	wordCache  map[string]*domain.Word
	groupCache map[string]*domain.WordGroup
}

// New creates a new importer.
func New(logger *slog.Logger, words wordStore, groups groupStore, combinations combinationStore, cfg config.ImportConfig) *Importer {
	return &Importer{
		log:          logger.With("component", "importer"),
		words:        words,
		groups:       groups,
		combinations: combinations,
		cfg:          cfg,
	}
}

// Run imports the dataset file. The run is skipped when importing is
// disabled or when combinations already exist, which makes it safe to
// call on every startup. Rows that fail to apply are logged and skipped.
func (i *Importer) Run(ctx context.Context) (*Result, error) {
	if !i.cfg.Enabled {
		i.log.InfoContext(ctx, "import disabled, skipping")
		return &Result{}, nil
	}

	count, err := i.combinations.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("importer: count combinations: %w", err)
	}
	if count > 0 {
		i.log.InfoContext(ctx, "database already populated, skipping import",
			slog.Int64("combinations", count))
		return &Result{}, nil
	}

	file, err := os.Open(i.cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("importer: open dataset: %w", err)
	}
	defer file.Close()

	rows, skipped, malformed, err := Parse(file, i.cfg.DelimiterRune())
	if err != nil {
		return nil, fmt.Errorf("importer: parse dataset: %w", err)
	}
	if malformed > 0 {
		i.log.WarnContext(ctx, "malformed rows rejected",
			slog.Int("count", malformed))
	}

	i.wordCache = make(map[string]*domain.Word)
	i.groupCache = make(map[string]*domain.WordGroup)

	start := time.Now()
	result := &Result{Rows: len(rows), SkippedRows: skipped, FailedRows: malformed}

	for idx, row := range rows {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("importer: %w", err)
		}

		if err := i.applyRow(ctx, row, result); err != nil {
			result.FailedRows++
			i.log.WarnContext(ctx, "failed to import row",
				slog.Int("row", idx+2), // 1-based, after the header
				slog.String("verb", row.Verb),
				slog.String("error", err.Error()))
		}
	}

	result.Duration = time.Since(start)

	i.log.InfoContext(ctx, "import finished",
		slog.Int("rows", result.Rows),
		slog.Int("skipped_rows", result.SkippedRows),
		slog.Int("failed_rows", result.FailedRows),
		slog.Int("words_created", result.WordsCreated),
		slog.Int("groups_created", result.GroupsCreated),
		slog.Int("combinations_created", result.CombinationsCreated),
		slog.Duration("duration", result.Duration))

	return result, nil
}

// applyRow imports one combination row: group, three words, combination.
func (i *Importer) applyRow(ctx context.Context, row Row, result *Result) error {
	group, err := i.getOrCreateGroup(ctx, row.Section, result)
	if err != nil {
		return fmt.Errorf("group %q: %w", row.Section, err)
	}

	subject, err := i.getOrCreateWord(ctx, row.Subject, domain.WordTypeSubject, nil, result)
	if err != nil {
		return fmt.Errorf("subject %q: %w", row.Subject, err)
	}

	verb, err := i.getOrCreateWord(ctx, row.Verb, domain.WordTypeVerb, &group.ID, result)
	if err != nil {
		return fmt.Errorf("verb %q: %w", row.Verb, err)
	}

	object, err := i.getOrCreateWord(ctx, row.Object, domain.WordTypeObject, nil, result)
	if err != nil {
		return fmt.Errorf("object %q: %w", row.Object, err)
	}

	_, err = i.combinations.GetByTriple(ctx, subject.ID, verb.ID, object.ID)
	if err == nil {
		result.CombinationsExisting++
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("check combination: %w", err)
	}

	_, err = i.combinations.Create(ctx, &domain.AllowedCombination{
		SubjectID: subject.ID,
		VerbID:    verb.ID,
		ObjectID:  object.ID,
	})
	if err != nil {
		return fmt.Errorf("create combination: %w", err)
	}

	result.CombinationsCreated++
	return nil
}

func (i *Importer) getOrCreateGroup(ctx context.Context, name string, result *Result) (*domain.WordGroup, error) {
	if g, ok := i.groupCache[name]; ok {
		return g, nil
	}

	g, err := i.groups.GetByName(ctx, name)
	if err == nil {
		i.groupCache[name] = g
		return g, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	desc := "Section " + name
	g, err = i.groups.Create(ctx, &domain.WordGroup{Name: name, Description: &desc})
	if err != nil {
		return nil, err
	}

	result.GroupsCreated++
	i.groupCache[name] = g
	return g, nil
}

// getOrCreateWord resolves a word by text and type, creating it when
// absent. A verb found under a different group, whether cached or loaded,
// is moved to the group of the current row: the last section mentioning a
// verb wins.
func (i *Importer) getOrCreateWord(ctx context.Context, text string, typ domain.WordType, groupID *int64, result *Result) (*domain.Word, error) {
	key := typ.String() + ":" + text
	if w, ok := i.wordCache[key]; ok {
		return i.regroupVerb(ctx, key, w, groupID)
	}

	w, err := i.words.GetByTextAndType(ctx, text, typ)
	if err == nil {
		i.wordCache[key] = w
		return i.regroupVerb(ctx, key, w, groupID)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	w, err = i.words.Create(ctx, &domain.Word{
		Text:    text,
		Type:    typ,
		GroupID: groupID,
	})
	if err != nil {
		return nil, err
	}

	result.WordsCreated++
	i.wordCache[key] = w
	return w, nil
}

// regroupVerb moves a verb whose stored group differs from the current
// row's group, refreshing the cache with the updated word. Non-verbs and
// matching groups pass through unchanged.
func (i *Importer) regroupVerb(ctx context.Context, key string, w *domain.Word, groupID *int64) (*domain.Word, error) {
	if w.Type != domain.WordTypeVerb || groupID == nil || sameGroup(w.GroupID, groupID) {
		return w, nil
	}

	updated, err := i.words.Update(ctx, w.ID, &domain.Word{
		Text:    w.Text,
		Type:    w.Type,
		GroupID: groupID,
	})
	if err != nil {
		return nil, fmt.Errorf("regroup verb: %w", err)
	}

	i.wordCache[key] = updated
	return updated, nil
}

func sameGroup(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
