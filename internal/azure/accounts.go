package azure

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flexscan/cli/internal/scan"
)

type account struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// ListSubscriptions returns the subscriptions visible to the signed-in az
// CLI, restricted to those in the Enabled state.
func (c *Client) ListSubscriptions(ctx context.Context) ([]scan.Subscription, error) {
	out, err := c.run(ctx, "account", "list", "--all", "--output", "json", "--only-show-errors")
	if err != nil {
		return nil, err
	}

	var accounts []account
	if err := json.Unmarshal([]byte(out), &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse account list: %w", err)
	}

	var subs []scan.Subscription
	for _, a := range accounts {
		if a.State != "Enabled" {
			continue
		}
		subs = append(subs, scan.Subscription{ID: a.ID, Name: a.Name})
	}
	return subs, nil
}

// CurrentSubscription returns the subscription the az CLI currently
// targets. An error here usually means no account is configured yet; the
// caller treats it as "nothing to restore".
func (c *Client) CurrentSubscription(ctx context.Context) (*scan.Subscription, error) {
	out, err := c.run(ctx, "account", "show", "--output", "json", "--only-show-errors")
	if err != nil {
		return nil, err
	}

	var a account
	if err := json.Unmarshal([]byte(out), &a); err != nil {
		return nil, fmt.Errorf("failed to parse current account: %w", err)
	}
	return &scan.Subscription{ID: a.ID, Name: a.Name}, nil
}

// SetSubscription makes the given subscription the az CLI's active account
// for every subsequent invocation.
func (c *Client) SetSubscription(ctx context.Context, id string) error {
	_, err := c.run(ctx, "account", "set", "--subscription", id)
	return err
}
