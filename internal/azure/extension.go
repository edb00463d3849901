package azure

import (
	"context"
	"fmt"
)

// extensionName is the az extension shipping the eligibility command.
const extensionName = "functionapp"

// EnsureExtension installs or upgrades the az extension the eligibility
// command lives in. Failures are reported to the caller but are never
// fatal to a scan; the command may already be available.
func (c *Client) EnsureExtension(ctx context.Context) error {
	_, err := c.run(ctx, "extension", "add", "--upgrade", "--name", extensionName, "--only-show-errors")
	if err != nil {
		return fmt.Errorf("failed to update %s extension: %w", extensionName, err)
	}
	return nil
}
