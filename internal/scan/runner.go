package scan

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SubscriptionLister enumerates the subscriptions visible to the CLI,
// restricted to those in an enabled state.
type SubscriptionLister interface {
	ListSubscriptions(ctx context.Context) ([]Subscription, error)
}

// AccountSwitcher reads and sets the CLI's ambient active subscription.
// CurrentSubscription is best-effort: (nil, err) means no original account
// could be determined and restoration is skipped at the end of the run.
type AccountSwitcher interface {
	CurrentSubscription(ctx context.Context) (*Subscription, error)
	SetSubscription(ctx context.Context, id string) error
}

// EligibilityInvoker runs the per-subscription enumeration command against
// the currently active subscription and returns its raw stdout.
type EligibilityInvoker interface {
	ListFlexEligibility(ctx context.Context, sub Subscription) (string, error)
}

// Logger is the subset of the CLI logger the scanner needs.
type Logger interface {
	Debug(message string, args ...interface{})
	Info(message string, args ...interface{})
	Warning(message string, args ...interface{})
}

// Result holds everything a completed run produced.
type Result struct {
	RunID         string
	Subscriptions int // enabled subscriptions enumerated
	Skipped       int // subscriptions that contributed zero records due to a failure
	Records       []Record
	Summaries     []Summary
}

// Scanner drives the scan pipeline: enumerate subscriptions, then for each
// one switch the active account, invoke the eligibility command, extract
// and normalize its payload, and accumulate the records. Processing is
// strictly sequential because the active account is process-wide state
// shared by every az invocation.
type Scanner struct {
	lister   SubscriptionLister
	switcher AccountSwitcher
	invoker  EligibilityInvoker
	log      Logger

	// OnSubscription, when set, is called before each subscription is
	// processed. Used by the CLI to update the progress spinner.
	OnSubscription func(index, total int, sub Subscription)
}

// NewScanner wires a scanner from its collaborators.
func NewScanner(lister SubscriptionLister, switcher AccountSwitcher, invoker EligibilityInvoker, log Logger) *Scanner {
	return &Scanner{
		lister:   lister,
		switcher: switcher,
		invoker:  invoker,
		log:      log,
	}
}

// Run executes the full pipeline. The original active subscription is
// captured up front and restored in a defer, so every exit path restores
// it no matter how many per-subscription steps failed in between.
//
// Per-subscription failures (switch, invocation, extraction, parse) are
// logged and skipped; they never abort the run. Only a failure to list
// subscriptions at all is returned as an error.
func (s *Scanner) Run(ctx context.Context) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}
	s.log.Debug("starting eligibility scan run %s", result.RunID)

	original, err := s.switcher.CurrentSubscription(ctx)
	if err != nil {
		s.log.Debug("no original subscription to restore: %v", err)
		original = nil
	}
	defer func() {
		if original == nil {
			return
		}
		if err := s.switcher.SetSubscription(ctx, original.ID); err != nil {
			s.log.Warning("failed to restore original subscription %q (%s): %v", original.Name, original.ID, err)
			return
		}
		s.log.Debug("restored original subscription %q", original.Name)
	}()

	subs, err := s.lister.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	result.Subscriptions = len(subs)
	if len(subs) == 0 {
		return result, nil
	}

	agg := NewAggregator()
	for i, sub := range subs {
		if s.OnSubscription != nil {
			s.OnSubscription(i, len(subs), sub)
		}
		records, err := s.scanOne(ctx, sub)
		if err != nil {
			result.Skipped++
			s.log.Warning("skipping subscription %q (%s): %v", sub.Name, sub.ID, err)
			continue
		}
		s.log.Debug("subscription %q contributed %d records", sub.Name, len(records))
		agg.Append(records...)
	}

	result.Records = agg.Records()
	result.Summaries = agg.Summarize()
	return result, nil
}

func (s *Scanner) scanOne(ctx context.Context, sub Subscription) ([]Record, error) {
	if err := s.switcher.SetSubscription(ctx, sub.ID); err != nil {
		return nil, fmt.Errorf("failed to switch subscription: %w", err)
	}
	raw, err := s.invoker.ListFlexEligibility(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("eligibility enumeration failed: %w", err)
	}
	jsonText, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	return Normalize(jsonText, sub)
}
