package azure

import (
	"context"

	"github.com/flexscan/cli/internal/scan"
)

// ListFlexEligibility runs the Flex Consumption eligibility enumeration
// against the currently active subscription and returns its raw stdout.
// The output is requested as JSON but may still carry diagnostic preamble
// lines on the same stream; extraction is the caller's job.
func (c *Client) ListFlexEligibility(ctx context.Context, sub scan.Subscription) (string, error) {
	return c.run(ctx,
		"functionapp", "list-flexconsumption-eligibility",
		"--output", "json",
		"--only-show-errors",
	)
}
