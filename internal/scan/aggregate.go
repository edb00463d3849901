package scan

import "sort"

// Aggregator accumulates records across subscriptions in processing order
// and derives the per-subscription summaries once the run completes.
type Aggregator struct {
	records []Record
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Append adds records to the run-wide sequence, preserving their order.
func (a *Aggregator) Append(records ...Record) {
	a.records = append(a.records, records...)
}

// Records returns the accumulated record sequence.
func (a *Aggregator) Records() []Record {
	return a.records
}

// Summarize groups the accumulated records by subscription in first-seen
// order, counts eligibility per group, and returns the summaries sorted by
// TotalApps descending. The sort is stable so ties keep the first-seen
// grouping order.
func (a *Aggregator) Summarize() []Summary {
	index := make(map[string]int)
	summaries := make([]Summary, 0)
	for _, r := range a.records {
		i, ok := index[r.SubscriptionID]
		if !ok {
			i = len(summaries)
			index[r.SubscriptionID] = i
			summaries = append(summaries, Summary{
				SubscriptionID:   r.SubscriptionID,
				SubscriptionName: r.SubscriptionName,
			})
		}
		summaries[i].TotalApps++
		if r.Eligibility == Eligible {
			summaries[i].EligibleApps++
		} else {
			summaries[i].IneligibleApps++
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalApps > summaries[j].TotalApps
	})
	return summaries
}
