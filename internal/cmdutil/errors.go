package cmdutil

import "fmt"

// Exit codes returned by the segpath binary
const (
	ExitOK = 0
	// ExitFailure covers failed operations and empty matches
	ExitFailure = 1
	// ExitUsage covers bad arguments, flags and configuration
	ExitUsage = 2
)

// Error is returned by a command to specify the exit code. A nil Err exits
// without printing anything.
type Error struct {
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %v", e.ExitCode)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Failure wraps err so that the command exits with ExitFailure
func Failure(err error) error {
	return &Error{ExitCode: ExitFailure, Err: err}
}

// Usage wraps err so that the command exits with ExitUsage
func Usage(err error) error {
	return &Error{ExitCode: ExitUsage, Err: err}
}
