package domain

import (
	"strings"
	"time"
)

// Word is a single lexical item tagged SUBJECT, VERB, or OBJECT.
// Only VERB words may belong to a WordGroup.
type Word struct {
	ID        int64
	Text      string
	Type      WordType
	GroupID   *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the word invariants before any insert or update.
// The store calls it on every write path; there are no lifecycle hooks.
func (w *Word) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(w.Text) == "" {
		errs = append(errs, FieldError{Field: "text", Message: "required"})
	}
	if !w.Type.IsValid() {
		errs = append(errs, FieldError{Field: "type", Message: "must be SUBJECT, VERB or OBJECT"})
	}
	if w.GroupID != nil && w.Type != WordTypeVerb {
		errs = append(errs, FieldError{Field: "group_id", Message: "group can only be set for VERB words"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// WordGroup is a named category used to cluster VERB words,
// e.g. thematic exercise sections. Name is unique.
type WordGroup struct {
	ID          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks the group invariants before any insert or update.
func (g *WordGroup) Validate() error {
	name := strings.TrimSpace(g.Name)
	if name == "" {
		return NewValidationError("name", "required")
	}
	if len(name) > 50 {
		return NewValidationError("name", "max 50 characters")
	}
	return nil
}

// AllowedCombination is a sanctioned (subject, verb, object) triple
// representing a grammatically valid exercise sentence. At most one
// combination exists per exact triple.
type AllowedCombination struct {
	ID        int64
	SubjectID int64
	VerbID    int64
	ObjectID  int64
	CreatedAt time.Time
}
