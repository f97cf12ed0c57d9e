// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, not found, duplicate,
	// ambiguous, cycle, referenced).
	UserError = 1

	// ConfigError indicates a configuration error.
	ConfigError = 2

	// StorageError indicates a persistence error (corrupt state, I/O).
	StorageError = 3
)
