package cli

import "errors"

// ErrAbstained is returned by the align command when --strict is set and
// at least one group could not be aligned. main checks for it with
// errors.Is to pick ExitAbstained over ExitInternalError without logging
// it as an unexpected failure.
var ErrAbstained = errors.New("one or more groups could not be aligned")

// Exit codes for tabalign.
const (
	// ExitSuccess indicates the run completed; groups may still have
	// abstained unless --strict was given.
	ExitSuccess = 0

	// ExitAbstained indicates at least one group could not be aligned and
	// was left unchanged (only reported as a failure in strict mode).
	ExitAbstained = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)
