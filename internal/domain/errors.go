package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrItemNotFound indicates the referenced watchlist item does not exist
	ErrItemNotFound = errors.New("watchlist item not found")

	// ErrInvalidScore indicates a score outside the 0-10 range
	ErrInvalidScore = errors.New("score must be between 0 and 10")

	// ErrInvalidCategory indicates an unknown lifecycle category
	ErrInvalidCategory = errors.New("unknown category")

	// ErrInvalidType indicates an unknown media type
	ErrInvalidType = errors.New("unknown media type")

	// ErrInvalidImport indicates an import file that does not parse to a
	// watchlist item array
	ErrInvalidImport = errors.New("invalid JSON file")
)

// PersistWarning reports a failed durable-slot write. The in-memory mutation
// it accompanies has already been applied and is the user-visible truth for
// the session; callers surface the warning instead of rolling back.
type PersistWarning struct {
	Err error
}

func (w *PersistWarning) Error() string {
	return "failed to persist watchlist: " + w.Err.Error()
}

func (w *PersistWarning) Unwrap() error {
	return w.Err
}
