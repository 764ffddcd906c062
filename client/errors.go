package client

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled indicates the operator aborted the transfer.
	ErrCancelled = errors.New("transfer cancelled")
	// ErrNoSources indicates a mirror fetch was given no source URLs.
	ErrNoSources = errors.New("no sources given")
)

// ToolError is a failure reported by the transfer tool itself: it ran and
// exited nonzero. Message is the text extracted from its diagnostic stream
// and may be empty when no recognizable error line was written.
type ToolError struct {
	ExitCode int
	Message  string
}

func (e *ToolError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("transfer tool exited with status %d", e.ExitCode)
	}
	return e.Message
}

// MirrorAttempt captures one failed source in a mirror fetch.
type MirrorAttempt struct {
	Source string
	Err    error
}

// AllMirrorsFailedError is returned when every source of a mirror fetch
// failed with a tool-reported error.
type AllMirrorsFailedError struct {
	Attempts []MirrorAttempt
}

func (e *AllMirrorsFailedError) Error() string {
	if len(e.Attempts) == 0 {
		return "all mirrors failed"
	}
	return fmt.Sprintf("all mirrors failed: %d attempt(s)", len(e.Attempts))
}
