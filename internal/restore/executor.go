package restore

import (
	"context"
	"errors"
	"sync"
)

// Deleter is the single mutating primitive: delete one version of one key.
// Implementations report a vanished target as ErrVersionGone and wrap other
// failures in ActionError.
type Deleter interface {
	DeleteVersion(ctx context.Context, key, versionID string) error
}

type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeAlreadySatisfied
	OutcomeFailed
)

type Result struct {
	Key     string
	Outcome Outcome
	Kind    ErrorKind
	Err     error
}

// Report aggregates per-action outcomes. Counts always sum to the number of
// planned actions, even after cancellation.
type Report struct {
	Applied          int
	AlreadySatisfied int
	Failed           int
	Failures         []Result
}

// Execute issues one delete-by-version-id call per planned action. A failed
// key is recorded and never blocks the rest of the batch. With concurrency
// above one, actions run on a bounded worker pool; each worker writes only
// its own pre-sized result slot, so merging loses no updates and the report
// keeps plan order. Re-running a finished plan is safe: every target already
// gone classifies as AlreadySatisfied.
func Execute(ctx context.Context, d Deleter, plan *Plan, concurrency int) (*Report, error) {
	results := make([]Result, len(plan.Actions))

	if concurrency <= 1 {
		for i, a := range plan.Actions {
			if err := ctx.Err(); err != nil {
				results[i] = cancelled(a)
				continue
			}
			results[i] = apply(ctx, d, a)
		}
	} else {
		sem := make(chan struct{}, concurrency)
		var wg sync.WaitGroup
		for i, a := range plan.Actions {
			i, a := i, a
			wg.Add(1)
			go func() {
				defer wg.Done()
				select {
				case sem <- struct{}{}:
				case <-ctx.Done():
					results[i] = cancelled(a)
					return
				}
				defer func() { <-sem }()
				results[i] = apply(ctx, d, a)
			}()
		}
		wg.Wait()
	}

	report := &Report{}
	for _, r := range results {
		switch r.Outcome {
		case OutcomeApplied:
			report.Applied++
		case OutcomeAlreadySatisfied:
			report.AlreadySatisfied++
		default:
			report.Failed++
			report.Failures = append(report.Failures, r)
		}
	}
	return report, ctx.Err()
}

func apply(ctx context.Context, d Deleter, a Action) Result {
	err := d.DeleteVersion(ctx, a.Key, a.TargetVersionID)
	switch {
	case err == nil:
		return Result{Key: a.Key, Outcome: OutcomeApplied}
	case errors.Is(err, ErrVersionGone):
		return Result{Key: a.Key, Outcome: OutcomeAlreadySatisfied}
	}

	kind := KindOther
	var ae *ActionError
	if errors.As(err, &ae) {
		kind = ae.Kind
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		kind = KindCancelled
	}
	return Result{Key: a.Key, Outcome: OutcomeFailed, Kind: kind, Err: err}
}

func cancelled(a Action) Result {
	return Result{Key: a.Key, Outcome: OutcomeFailed, Kind: KindCancelled, Err: context.Canceled}
}
