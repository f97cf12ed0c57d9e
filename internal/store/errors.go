package store

import "errors"

// Error kinds reported by store operations. Callers match with errors.Is;
// every returned error wraps one of these with the entity name and operation
// context needed for a one-line user message.
var (
	// ErrNotFound is returned when a named list or item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateName is returned on a name collision during create,
	// rename, or move.
	ErrDuplicateName = errors.New("name already in use")

	// ErrAmbiguous is returned when a name prefix matches more than one
	// list or item.
	ErrAmbiguous = errors.New("ambiguous name")

	// ErrCycle is returned when adding a reference would make a list
	// reachable from itself.
	ErrCycle = errors.New("would create a reference cycle")

	// ErrReferenced is returned when deleting a list that other lists
	// still reference, absent force mode.
	ErrReferenced = errors.New("still referenced by another list")

	// ErrCorrupt is returned by backends when the persisted document
	// cannot be read or violates the store invariants.
	ErrCorrupt = errors.New("corrupt state")
)
