package restore

import "errors"

// ErrDryRun is the default outcome: no explicit execute intent was given.
// Callers treat it as "render the plan and stop", not as a failure.
var ErrDryRun = errors.New("no execute intent given; dry run")

// ErrDestructiveNotAcknowledged blocks destructive plans until the caller has
// acknowledged that previous current versions will be permanently discarded.
var ErrDestructiveNotAcknowledged = errors.New("destructive plan requires explicit acknowledgement of irreversibility")

// Summary is the aggregate shown to the operator before any mutating call.
type Summary struct {
	ActionCount  int
	SkippedCount int
	TotalBytes   int64
	Destructive  bool
}

func Summarize(p *Plan) Summary {
	return Summary{
		ActionCount:  p.TotalCount,
		SkippedCount: p.SkippedTotal(),
		TotalBytes:   p.TotalBytes,
		Destructive:  p.Mode.Destructive(),
	}
}

// Intent carries the caller's explicit confirmations. The zero value is
// always a dry run: no ambient default can enable execution.
type Intent struct {
	Execute                bool
	AcknowledgeDestructive bool
}

// Authorize decides whether execution may proceed. Execute unlocks mutating
// calls in general; destructive plans additionally require the second-tier
// acknowledgement.
func Authorize(s Summary, i Intent) error {
	if !i.Execute {
		return ErrDryRun
	}
	if s.Destructive && !i.AcknowledgeDestructive {
		return ErrDestructiveNotAcknowledged
	}
	return nil
}
