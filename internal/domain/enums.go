package domain

// WordType classifies a word by its role in an exercise sentence.
type WordType string

const (
	WordTypeSubject WordType = "SUBJECT"
	WordTypeVerb    WordType = "VERB"
	WordTypeObject  WordType = "OBJECT"
)

func (t WordType) String() string { return string(t) }

func (t WordType) IsValid() bool {
	switch t {
	case WordTypeSubject, WordTypeVerb, WordTypeObject:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
