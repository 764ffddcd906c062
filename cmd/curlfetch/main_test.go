package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/famomatic/curlfetch/client"
)

func TestDeriveFileName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{source: "https://example.com/pkg/file.tar.gz", want: "file.tar.gz"},
		{source: "https://example.com/file", want: "file"},
		{source: "https://example.com/", want: "index.html"},
		{source: "https://example.com", want: "index.html"},
		{source: "http://[::1:broken", want: "index.html"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, deriveFileName(tt.source), "source %q", tt.source)
	}
}

func TestExitCode(t *testing.T) {
	require.Equal(t, 0, exitCode(nil))
	require.Equal(t, 130, exitCode(client.ErrCancelled))
	require.Equal(t, 1, exitCode(&client.ToolError{ExitCode: 6, Message: "no such host"}))
}

func TestRun_VersionFlag(t *testing.T) {
	require.Equal(t, 0, run([]string{"--version"}))
}

func TestRun_NoSourcesIsUsageError(t *testing.T) {
	require.Equal(t, 2, run([]string{}))
}
