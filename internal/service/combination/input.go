package combination

import (
	"strconv"

	"github.com/vnest-fi/vnest-backend/internal/domain"
)

// TripleInput identifies one subject-verb-object triple by word ids.
type TripleInput struct {
	SubjectID int64
	VerbID    int64
	ObjectID  int64
}

// Validate checks that all three ids are set.
func (i TripleInput) Validate() error {
	var errs []domain.FieldError

	if i.SubjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "subject_id", Message: "required"})
	}
	if i.VerbID <= 0 {
		errs = append(errs, domain.FieldError{Field: "verb_id", Message: "required"})
	}
	if i.ObjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "object_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// batchListMax bounds each id list so one request cannot explode into an
// unbounded cross product.
const batchListMax = 100

// BatchCreateInput describes a batch create: one verb combined with the
// cross product of the subject and object id lists.
type BatchCreateInput struct {
	VerbID     int64
	SubjectIDs []int64
	ObjectIDs  []int64
}

// Validate checks the verb id and that both id lists are non-empty.
func (i BatchCreateInput) Validate() error {
	var errs []domain.FieldError

	if i.VerbID <= 0 {
		errs = append(errs, domain.FieldError{Field: "verb_id", Message: "required"})
	}

	errs = append(errs, checkIDList("subject_ids", i.SubjectIDs)...)
	errs = append(errs, checkIDList("object_ids", i.ObjectIDs)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func checkIDList(field string, ids []int64) []domain.FieldError {
	if len(ids) == 0 {
		return []domain.FieldError{{Field: field, Message: "required (at least 1)"}}
	}
	if len(ids) > batchListMax {
		return []domain.FieldError{{Field: field, Message: "too many (max " + strconv.Itoa(batchListMax) + ")"}}
	}

	var errs []domain.FieldError
	for idx, id := range ids {
		if id <= 0 {
			errs = append(errs, domain.FieldError{Field: fieldIdx(field, idx, ""), Message: "required"})
		}
	}
	return errs
}

// fieldIdx formats an indexed field path like "subject_ids[0]".
func fieldIdx(parent string, idx int, field string) string {
	path := parent + "[" + strconv.Itoa(idx) + "]"
	if field != "" {
		path += "." + field
	}
	return path
}
