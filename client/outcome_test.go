package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famomatic/curlfetch/internal/runner"
)

func TestClassify_ToolErrorMessageExtraction(t *testing.T) {
	err := classify(&runner.Result{
		ExitCode: 6,
		Stderr:   []byte("curl: (6) Could not resolve host: example.com\n"),
	})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, 6, toolErr.ExitCode)
	require.Equal(t, "Could not resolve host: example.com", toolErr.Message)
}

func TestClassify_MessageAfterProgressNoise(t *testing.T) {
	stderr := []byte("\r 12 1024 5 50 8 80 1k 0 00:01 00:00 00:01 2k\rcurl: (28) Operation timed out\n")
	err := classify(&runner.Result{ExitCode: 28, Stderr: stderr})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	require.Equal(t, "Operation timed out", toolErr.Message)
}

func TestClassify_SuccessIgnoresStderr(t *testing.T) {
	err := classify(&runner.Result{
		ExitCode: 0,
		Stderr:   []byte("curl: (6) this line is irrelevant on a clean exit\n"),
	})
	require.NoError(t, err)
}

func TestClassify_CancelledWinsOverExitCode(t *testing.T) {
	err := classify(&runner.Result{ExitCode: 0, Cancelled: true})
	require.ErrorIs(t, err, ErrCancelled)

	err = classify(&runner.Result{ExitCode: 23, Cancelled: true})
	require.ErrorIs(t, err, ErrCancelled)
}

func TestClassify_NoPatternYieldsEmptyMessage(t *testing.T) {
	err := classify(&runner.Result{
		ExitCode: 7,
		Stderr:   []byte("something went wrong but not in the usual shape\n"),
	})
	var toolErr *ToolError
	require.True(t, errors.As(err, &toolErr))
	require.Equal(t, "", toolErr.Message)
	require.Equal(t, "transfer tool exited with status 7", toolErr.Error())
}
