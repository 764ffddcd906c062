// Package runner supervises a single curl invocation.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"
)

// DefaultTool is the binary looked up in PATH when no explicit path is given.
const DefaultTool = "curl"

// Result is the captured outcome of one finished invocation.
type Result struct {
	// ExitCode is the child's exit status. Meaningless when Cancelled is set:
	// a terminated process reports whatever the signal left behind.
	ExitCode int

	// Stdout holds the full captured standard output.
	Stdout []byte

	// Stderr holds the full captured diagnostic output.
	Stderr []byte

	// Cancelled is set when the context was cancelled before the child
	// exited on its own.
	Cancelled bool
}

// Runner spawns the transfer tool. The zero value is not usable; call New.
type Runner struct {
	toolPath string
}

// New returns a Runner for the given tool path.
// An empty path means DefaultTool resolved through PATH.
func New(toolPath string) *Runner {
	if toolPath == "" {
		toolPath = DefaultTool
	}
	return &Runner{toolPath: toolPath}
}

// ToolPath reports the configured binary path or name.
func (r *Runner) ToolPath() string { return r.toolPath }

// Available reports whether the tool binary can be resolved and executed.
func (r *Runner) Available() bool {
	_, err := exec.LookPath(r.toolPath)
	return err == nil
}

// Run executes the tool with args and the process environment extended by
// extraEnv ("KEY=value" entries). onStderr, if non-nil, receives every chunk
// of diagnostic output in write order while the child is still running.
//
// Cancelling ctx terminates the child and marks the result Cancelled; the
// call still returns the captured output. A non-nil error means the tool
// could not be spawned at all — a nonzero exit status is reported through
// Result.ExitCode, not through the error.
func (r *Runner) Run(ctx context.Context, args []string, extraEnv []string, onStderr func([]byte)) (*Result, error) {
	cmd := exec.CommandContext(ctx, r.toolPath, args...)
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}
	// Bounded teardown: if the terminated child's pipe readers linger,
	// give up on them after a grace period instead of blocking Wait.
	cmd.WaitDelay = 5 * time.Second

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	stderr := &streamCapture{onChunk: onStderr}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", r.toolPath, err)
	}

	err := cmd.Wait()
	stderr.stop()

	res := &Result{
		ExitCode:  cmd.ProcessState.ExitCode(),
		Stdout:    stdout.Bytes(),
		Stderr:    stderr.bytes(),
		Cancelled: ctx.Err() != nil,
	}
	if err != nil && !res.Cancelled {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("wait for %s: %w", r.toolPath, err)
		}
	}
	return res, nil
}

// streamCapture tees child output: every write is buffered for the final
// result and forwarded live to the chunk callback. Writes arrive from the
// exec copying goroutine, so the callback must tolerate that context.
type streamCapture struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	onChunk func([]byte)
	stopped bool
}

func (s *streamCapture) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.Write(p)
	if s.onChunk != nil && !s.stopped {
		s.onChunk(p)
	}
	return len(p), nil
}

// stop ends live forwarding once the child has exited.
func (s *streamCapture) stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}

func (s *streamCapture) bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Bytes()
}
