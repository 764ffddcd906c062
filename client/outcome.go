package client

import (
	"regexp"
	"strings"

	"github.com/famomatic/curlfetch/internal/runner"
)

// curl writes failures to stderr as "curl: (<code>) <message>".
var toolErrorPattern = regexp.MustCompile(`curl: \(\d+\) `)

// classify maps a finished invocation to its outcome. Cancellation wins over
// whatever exit status the terminated process reported; a zero exit is
// success regardless of stderr contents.
func classify(res *runner.Result) error {
	if res.Cancelled {
		return ErrCancelled
	}
	if res.ExitCode == 0 {
		return nil
	}
	return &ToolError{
		ExitCode: res.ExitCode,
		Message:  extractToolMessage(res.Stderr),
	}
}

// extractToolMessage returns everything after the first error marker in the
// diagnostic stream, trimmed of the trailing newline. Empty when the tool
// wrote no recognizable error line.
func extractToolMessage(stderr []byte) string {
	loc := toolErrorPattern.FindIndex(stderr)
	if loc == nil {
		return ""
	}
	return strings.TrimRight(string(stderr[loc[1]:]), "\r\n")
}
