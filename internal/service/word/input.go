package word

import (
	"strings"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// WordInput holds the parameters for creating or updating a word.
type WordInput struct {
	Text    string
	Type    domain.WordType
	GroupID *int64
}

// toDomain builds a domain.Word with normalized text. Invariant checks
// live in domain.Word.Validate, which the repositories run before writes.
func (i WordInput) toDomain() *domain.Word {
	return &domain.Word{
		Text:    strings.TrimSpace(i.Text),
		Type:    i.Type,
		GroupID: i.GroupID,
	}
}

// GroupInput holds the parameters for creating or updating a verb group.
type GroupInput struct {
	Name        string
	Description *string
}

func (i GroupInput) toDomain() *domain.WordGroup {
	return &domain.WordGroup{
		Name:        strings.TrimSpace(i.Name),
		Description: i.Description,
	}
}
