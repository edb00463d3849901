package azure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// MinCLIVersion is the oldest az CLI release the eligibility command is
// known to work with.
const MinCLIVersion = "2.60.0"

type versionInfo struct {
	AzureCLI string `json:"azure-cli"`
}

// CheckCLIVersion reports the installed az CLI version and whether it is
// older than MinCLIVersion.
func (c *Client) CheckCLIVersion(ctx context.Context) (string, bool, error) {
	out, err := c.run(ctx, "version", "--output", "json")
	if err != nil {
		return "", false, err
	}

	var info versionInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		return "", false, fmt.Errorf("failed to parse az version output: %w", err)
	}

	current, err := semver.NewVersion(info.AzureCLI)
	if err != nil {
		return info.AzureCLI, false, fmt.Errorf("unexpected az version %q: %w", info.AzureCLI, err)
	}
	return info.AzureCLI, current.LessThan(semver.MustParse(MinCLIVersion)), nil
}
