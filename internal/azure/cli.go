package azure

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultBinary is the az CLI executable resolved from PATH.
const DefaultBinary = "az"

// runFunc executes one az invocation and returns its captured stdout.
// Swapped out in tests so nothing shells out.
type runFunc func(ctx context.Context, args ...string) (string, error)

// Client wraps the az CLI binary. Every remote interaction goes through the
// external process; the client only shapes arguments and parses stdout.
type Client struct {
	bin     string
	timeout time.Duration
	run     runFunc
}

// NewClient returns a client for the given az binary. Each invocation is
// bounded by timeout when it is positive (the az CLI can hang on a bad
// control-plane connection).
func NewClient(bin string, timeout time.Duration) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	c := &Client{bin: bin, timeout: timeout}
	c.run = c.runAz
	return c
}

func (c *Client) runAz(ctx context.Context, args ...string) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.bin, args...)
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut

	if err := cmd.Run(); err != nil {
		if msg := firstLine(errOut.String()); msg != "" {
			return "", fmt.Errorf("%s %s: %w: %s", c.bin, args[0], err, msg)
		}
		return "", fmt.Errorf("%s %s: %w", c.bin, args[0], err)
	}
	return out.String(), nil
}

// firstLine trims stderr down to its first non-empty line so per-context
// warnings stay single-line.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
