package client

import (
	"context"
	"fmt"
	"strings"
)

// ToolVersion runs the transfer tool's version query and returns its version
// number, e.g. "8.5.0". It is a diagnostic helper; transfers never depend on
// a particular tool version.
func (c *Client) ToolVersion(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, []string{"--version"}, nil, nil)
	if err != nil {
		return "", err
	}
	if err := classify(res); err != nil {
		return "", err
	}
	fields := strings.Fields(string(res.Stdout))
	if len(fields) >= 2 && fields[0] == "curl" {
		return fields[1], nil
	}
	return "", fmt.Errorf("unrecognized version output from %s", c.runner.ToolPath())
}
