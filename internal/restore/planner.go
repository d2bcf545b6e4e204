package restore

import (
	"context"

	"VelRestore/internal/scan"
)

// Plan is the exact, auditable set of mutations one run would perform.
// It is built once per invocation from live bucket state, never cached, and
// read-only after BuildPlan returns. Dry-run and execute share this code
// path, so both see identical totals.
type Plan struct {
	Mode       Mode
	Bucket     string
	PathFilter string

	// Actions holds only executable entries; skips are counted below.
	Actions []Action
	Skipped map[string]int

	TotalCount int
	TotalBytes int64
}

func (p *Plan) SkippedTotal() int {
	n := 0
	for _, c := range p.Skipped {
		n += c
	}
	return n
}

// ChainSource is satisfied by *scan.Scanner.
type ChainSource interface {
	Next(ctx context.Context) (*scan.Chain, error)
}

// BuildPlan streams chains from src through the classifier and folds the
// results. TotalBytes sums the size of each version that would become current
// after its action; this is the figure shown to the operator before any
// confirmation, so it must match exactly what gets restored.
func BuildPlan(ctx context.Context, src ChainSource, mode Mode, bucket, pathFilter string) (*Plan, error) {
	plan := &Plan{
		Mode:       mode,
		Bucket:     bucket,
		PathFilter: pathFilter,
		Skipped:    make(map[string]int),
	}

	for {
		chain, err := src.Next(ctx)
		if err != nil {
			return nil, err
		}
		if chain == nil {
			return plan, nil
		}

		a := Classify(mode, chain)
		if a.Kind == ActionSkip {
			plan.Skipped[a.SkipReason]++
			continue
		}
		plan.Actions = append(plan.Actions, a)
		plan.TotalCount++
		plan.TotalBytes += a.ExposedSize
	}
}
