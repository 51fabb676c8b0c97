package domain

// VerbSuggestion is one verb in a suggestion set together with the
// distinct subject/object ids that form allowed combinations with it.
type VerbSuggestion struct {
	ID                   int64
	Text                 string
	GroupID              *int64
	CompatibleSubjectIDs []int64
	CompatibleObjectIDs  []int64
}

// SuggestionSet drives the exercise UI: the selected verbs and the
// flattened list of subject/object words referenced by them.
type SuggestionSet struct {
	Verbs []VerbSuggestion
	Words []Word
}

// ValidationResult is the outcome of checking one subject-verb-object
// triple against the allowed combinations. Sentence is a best-effort
// concatenation of the three word texts for echoing to the caller.
type ValidationResult struct {
	Valid    bool
	Sentence string
	Message  string
}
