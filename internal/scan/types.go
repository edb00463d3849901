package scan

// Subscription identifies one enumerable Azure subscription. The set is
// fetched once at startup and never mutated afterwards.
type Subscription struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Eligibility is the migration verdict for a single function app.
type Eligibility string

const (
	Eligible   Eligibility = "Eligible"
	Ineligible Eligibility = "Ineligible"
)

// Record is one normalized eligibility result. Reason is always nil for
// eligible apps and carries the tool-reported reason for ineligible ones.
type Record struct {
	SubscriptionID   string      `json:"subscription_id"`
	SubscriptionName string      `json:"subscription_name"`
	AppName          string      `json:"app_name"`
	ResourceGroup    string      `json:"resource_group"`
	Eligibility      Eligibility `json:"eligibility"`
	Reason           *string     `json:"reason"`
}

// Summary is the per-subscription rollup derived from the accumulated
// records. TotalApps always equals EligibleApps + IneligibleApps.
type Summary struct {
	SubscriptionID   string `json:"subscription_id"`
	SubscriptionName string `json:"subscription_name"`
	TotalApps        int    `json:"total_apps"`
	EligibleApps     int    `json:"eligible_apps"`
	IneligibleApps   int    `json:"ineligible_apps"`
}

// Payload is the validated shape of the enumeration command's JSON output.
// Both lists are optional in the document and default to empty.
type Payload struct {
	EligibleApps   []EligibleApp   `json:"eligible_apps"`
	IneligibleApps []IneligibleApp `json:"ineligible_apps"`
}

// EligibleApp is one entry of the payload's eligible_apps list.
type EligibleApp struct {
	Name          string `json:"name"`
	ResourceGroup string `json:"resource_group"`
}

// IneligibleApp is one entry of the payload's ineligible_apps list.
type IneligibleApp struct {
	Name          string  `json:"name"`
	ResourceGroup string  `json:"resource_group"`
	Reason        *string `json:"reason"`
}
