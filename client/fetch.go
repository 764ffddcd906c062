package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/famomatic/curlfetch/internal/curlargs"
	"github.com/famomatic/curlfetch/internal/progress"
)

// FetchToFile downloads req.Source to req.Destination.
//
// It returns nil on success, ErrCancelled when ctx was cancelled mid-flight,
// a *ToolError when the tool ran and reported a failure, or a spawn error
// when the tool could not be launched at all. A failed or cancelled transfer
// may leave a partial file at the destination; resuming it is the caller's
// choice via TransportConfig.Resume.
func (c *Client) FetchToFile(ctx context.Context, req TransferRequest) error {
	args, env := c.buildArgs(req)
	args = append(args, "--output", req.Destination, req.Source)

	var onStderr func([]byte)
	if c.config.UI != nil {
		parser := progress.NewParser(c.renderSample)
		onStderr = parser.Feed
		// No stale progress line on any exit path.
		defer c.config.UI.ClearLine()
	}

	res, err := c.runner.Run(ctx, args, env, onStderr)
	if err != nil {
		return err
	}
	return classify(res)
}

// ProbeHeaders performs a head-only request for req.Source and returns the
// raw response header text. No progress is rendered: the tool moves no data.
func (c *Client) ProbeHeaders(ctx context.Context, req TransferRequest) (string, error) {
	args, env := c.buildArgs(req)
	args = append([]string{"--head", req.Source}, args...)

	res, err := c.runner.Run(ctx, args, env, nil)
	if err != nil {
		return "", err
	}
	return string(res.Stdout), classify(res)
}

// FetchAny downloads destination from the first source that succeeds, trying
// them in order. Cancellation and spawn failures abort immediately; tool
// errors move on to the next mirror. When every mirror fails the combined
// attempts come back as *AllMirrorsFailedError.
func (c *Client) FetchAny(ctx context.Context, destination string, transport TransportConfig, sources ...string) error {
	if len(sources) == 0 {
		return ErrNoSources
	}
	var attempts []MirrorAttempt
	for _, src := range sources {
		req := NewTransferRequest(src, destination, transport)
		err := c.FetchToFile(ctx, req)
		if err == nil {
			return nil
		}
		var toolErr *ToolError
		if !errors.As(err, &toolErr) {
			return err
		}
		c.logger.Warnf("mirror %s failed: %v", req.Source, err)
		attempts = append(attempts, MirrorAttempt{Source: req.Source, Err: err})
	}
	return &AllMirrorsFailedError{Attempts: attempts}
}

func (c *Client) buildArgs(req TransferRequest) (args, env []string) {
	return curlargs.Build(curlargs.Options{
		Auth:           req.Transport.Auth,
		CACertPath:     req.Transport.CACertPath,
		CADirPath:      req.Transport.CADirPath,
		ClientCertPath: req.Transport.ClientCertPath,
		Resume:         req.Transport.Resume,
		InsecureTLS:    req.Transport.InsecureTLS,
		Headers:        req.Transport.Headers,
		PackagedMode:   c.config.PackagedMode,
		InstallerDir:   c.config.InstallerDir,
	})
}

func (c *Client) renderSample(s progress.Sample) {
	c.config.UI.ClearLine()
	line := fmt.Sprintf("Progress: %s%% (Rate: %s/s, Estimated time remaining: %s)",
		s.TotalPercent, s.CurrentRate, s.RemainingTime)
	c.config.UI.RenderDetail(line, false)
}
