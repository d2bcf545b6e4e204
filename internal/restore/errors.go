package restore

import (
	"errors"
	"fmt"
)

// ErrVersionGone reports that the version targeted by an action no longer
// exists. The executor treats it as idempotent success: the desired end state
// (marker or stale version removed) already holds.
var ErrVersionGone = errors.New("target version no longer present")

type ErrorKind string

const (
	KindPermission ErrorKind = "permission"
	KindThrottled  ErrorKind = "throttled"
	KindOther      ErrorKind = "error"
	KindCancelled  ErrorKind = "cancelled"
)

// ActionError wraps a failed mutating call with a coarse kind for the final
// report. It never aborts the batch.
type ActionError struct {
	Kind ErrorKind
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }
