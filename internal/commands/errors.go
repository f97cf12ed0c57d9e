package commands

import (
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/store"
)

// fail prints a one-line message for a store error and returns the matching
// exit code. Everything the user can fix (bad names, collisions, cycles) is
// a user error; anything else is a storage error.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)
	switch {
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrDuplicateName),
		errors.Is(err, store.ErrAmbiguous),
		errors.Is(err, store.ErrCycle),
		errors.Is(err, store.ErrReferenced):
		return exitcode.UserError
	default:
		return exitcode.StorageError
	}
}
