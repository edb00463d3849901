package scan

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAzure implements all three scanner collaborators against canned data
// and records every account switch so tests can assert on restoration.
type fakeAzure struct {
	subs       []Subscription
	listErr    error
	current    *Subscription
	currentErr error
	outputs    map[string]string // subscription id -> raw stdout
	invokeErr  map[string]error
	switchErr  map[string]error

	active      string
	switchCalls []string
}

func (f *fakeAzure) ListSubscriptions(ctx context.Context) ([]Subscription, error) {
	return f.subs, f.listErr
}

func (f *fakeAzure) CurrentSubscription(ctx context.Context) (*Subscription, error) {
	return f.current, f.currentErr
}

func (f *fakeAzure) SetSubscription(ctx context.Context, id string) error {
	f.switchCalls = append(f.switchCalls, id)
	if err := f.switchErr[id]; err != nil {
		return err
	}
	f.active = id
	return nil
}

func (f *fakeAzure) ListFlexEligibility(ctx context.Context, sub Subscription) (string, error) {
	if err := f.invokeErr[sub.ID]; err != nil {
		return "", err
	}
	return f.outputs[sub.ID], nil
}

type testLogger struct {
	warnings []string
}

func (l *testLogger) Debug(message string, args ...interface{}) {}
func (l *testLogger) Info(message string, args ...interface{})  {}
func (l *testLogger) Warning(message string, args ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(message, args...))
}

func newTestScanner(fake *fakeAzure) (*Scanner, *testLogger) {
	log := &testLogger{}
	return NewScanner(fake, fake, fake, log), log
}

func TestRunCollectsAcrossSubscriptionsWithFailures(t *testing.T) {
	// Scenario A: one healthy subscription, one whose invocation fails.
	fake := &fakeAzure{
		subs: []Subscription{
			{ID: "sub-1", Name: "one"},
			{ID: "sub-2", Name: "two"},
		},
		current: &Subscription{ID: "sub-0", Name: "original"},
		outputs: map[string]string{
			"sub-1": `{"eligible_apps":[{"name":"fa1","resource_group":"rg1"}],"ineligible_apps":[]}`,
		},
		invokeErr: map[string]error{
			"sub-2": errors.New("command timed out"),
		},
	}

	scanner, log := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "fa1", result.Records[0].AppName)
	assert.Equal(t, Eligible, result.Records[0].Eligibility)
	assert.Nil(t, result.Records[0].Reason)

	require.Len(t, result.Summaries, 1)
	assert.Equal(t, "sub-1", result.Summaries[0].SubscriptionID)
	assert.Equal(t, 1, result.Summaries[0].TotalApps)

	assert.Equal(t, 2, result.Subscriptions)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "sub-2")

	// Original account restored after everything else.
	assert.Equal(t, "sub-0", fake.active)
	assert.Equal(t, "sub-0", fake.switchCalls[len(fake.switchCalls)-1])
}

func TestRunDiscardsPreambleLines(t *testing.T) {
	// Scenario B: diagnostic preamble before the payload.
	fake := &fakeAzure{
		subs:    []Subscription{{ID: "sub-1", Name: "one"}},
		current: &Subscription{ID: "sub-0", Name: "original"},
		outputs: map[string]string{
			"sub-1": "Loading...\n{\"eligible_apps\":[],\"ineligible_apps\":[{\"name\":\"fa2\",\"resource_group\":\"rg2\",\"reason\":\"unsupported-runtime\"}]}",
		},
	}

	scanner, _ := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, Ineligible, result.Records[0].Eligibility)
	require.NotNil(t, result.Records[0].Reason)
	assert.Equal(t, "unsupported-runtime", *result.Records[0].Reason)
}

func TestRunWithNoSubscriptions(t *testing.T) {
	// Scenario C: nothing enabled; the run ends early but still restores.
	fake := &fakeAzure{
		current: &Subscription{ID: "sub-0", Name: "original"},
	}

	scanner, _ := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Subscriptions)
	assert.Empty(t, result.Records)
	assert.Empty(t, result.Summaries)
	assert.Equal(t, []string{"sub-0"}, fake.switchCalls)
}

func TestRunRestoresWhenEverythingFails(t *testing.T) {
	fake := &fakeAzure{
		subs: []Subscription{
			{ID: "sub-1", Name: "one"},
			{ID: "sub-2", Name: "two"},
			{ID: "sub-3", Name: "three"},
		},
		current: &Subscription{ID: "sub-0", Name: "original"},
		switchErr: map[string]error{
			"sub-1": errors.New("switch denied"),
			"sub-2": errors.New("switch denied"),
		},
		invokeErr: map[string]error{
			"sub-3": errors.New("invocation failed"),
		},
	}

	scanner, log := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.Equal(t, 3, result.Skipped)
	assert.Len(t, log.warnings, 3)
	assert.Equal(t, "sub-0", fake.active)
}

func TestRunSkipsOnNoJSONAndMalformedPayload(t *testing.T) {
	fake := &fakeAzure{
		subs: []Subscription{
			{ID: "sub-1", Name: "one"},
			{ID: "sub-2", Name: "two"},
			{ID: "sub-3", Name: "three"},
		},
		current: &Subscription{ID: "sub-0", Name: "original"},
		outputs: map[string]string{
			"sub-1": "ERROR: please run az login\n",
			"sub-2": "Loading...\n{broken json",
			"sub-3": `{"eligible_apps":[{"name":"fa9","resource_group":"rg9"}]}`,
		},
	}

	scanner, log := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "fa9", result.Records[0].AppName)
	assert.Equal(t, 2, result.Skipped)
	require.Len(t, log.warnings, 2)
	assert.Contains(t, log.warnings[0], "no JSON document")
	assert.Contains(t, log.warnings[1], "malformed eligibility payload")
}

func TestRunWithoutOriginalSubscription(t *testing.T) {
	// No account configured yet: capture fails, restore is skipped.
	fake := &fakeAzure{
		subs:       []Subscription{{ID: "sub-1", Name: "one"}},
		currentErr: errors.New("az account show: no account found"),
		outputs: map[string]string{
			"sub-1": `{"eligible_apps":[{"name":"fa1","resource_group":"rg1"}]}`,
		},
	}

	scanner, _ := newTestScanner(fake)
	result, err := scanner.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.Equal(t, []string{"sub-1"}, fake.switchCalls)
}

func TestRunListFailureStillRestores(t *testing.T) {
	fake := &fakeAzure{
		listErr: errors.New("az account list failed"),
		current: &Subscription{ID: "sub-0", Name: "original"},
	}

	scanner, _ := newTestScanner(fake)
	_, err := scanner.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list subscriptions")
	assert.Equal(t, []string{"sub-0"}, fake.switchCalls)
}
