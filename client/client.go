// Package client coordinates supervised file transfers through an external
// curl process: it builds the command line from transport policies, streams
// the tool's progress meter into rendered progress lines, and normalizes
// exit behavior into a small set of typed outcomes.
package client

import (
	"context"

	"github.com/famomatic/curlfetch/internal/runner"
)

// invoker is the child-process contract the coordinator depends on.
type invoker interface {
	Run(ctx context.Context, args []string, extraEnv []string, onStderr func([]byte)) (*runner.Result, error)
	Available() bool
	ToolPath() string
}

// Client is the transfer coordinator. A Client holds no state across calls;
// distinct instances are independent, but a single instance is not meant for
// concurrent overlapping calls.
type Client struct {
	config Config
	runner invoker
	logger Logger
}

// New creates a Client with the given configuration.
func New(config Config) *Client {
	c := &Client{
		config: config,
		runner: runner.New(config.CurlPath),
		logger: config.Logger,
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	return c
}

// Available reports whether the transfer tool binary is executable.
func (c *Client) Available() bool {
	return c.runner.Available()
}
