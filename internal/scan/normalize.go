package scan

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload indicates the extracted text did not parse as an
// eligibility payload.
var ErrMalformedPayload = errors.New("malformed eligibility payload")

// Normalize parses an eligibility payload and flattens both app lists into
// uniform records for the given subscription. Eligible apps come first with
// a nil reason, then ineligible apps with their reason copied through; each
// list keeps its source order. Absent or empty lists contribute nothing.
func Normalize(jsonText string, sub Subscription) ([]Record, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(jsonText), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	records := make([]Record, 0, len(payload.EligibleApps)+len(payload.IneligibleApps))
	for _, app := range payload.EligibleApps {
		records = append(records, Record{
			SubscriptionID:   sub.ID,
			SubscriptionName: sub.Name,
			AppName:          app.Name,
			ResourceGroup:    app.ResourceGroup,
			Eligibility:      Eligible,
		})
	}
	for _, app := range payload.IneligibleApps {
		records = append(records, Record{
			SubscriptionID:   sub.ID,
			SubscriptionName: sub.Name,
			AppName:          app.Name,
			ResourceGroup:    app.ResourceGroup,
			Eligibility:      Ineligible,
			Reason:           app.Reason,
		})
	}
	return records, nil
}
