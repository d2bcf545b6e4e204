package scan

import (
	"errors"
	"fmt"
)

// PermanentError aborts a scan: the bucket is not versioned, does not exist,
// or the caller lacks list permission. Listing is read-only, so aborting
// leaves no partial side effects.
type PermanentError struct {
	Reason string
	Err    error
}

func (e *PermanentError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return fmt.Sprintf("%s: %v", e.Reason, e.Err)
}

func (e *PermanentError) Unwrap() error { return e.Err }

// TransientError marks a retryable listing failure (throttling, network).
// The scanner does not advance its cursor on failure, so the caller may call
// Next again to resume from the last good page.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient listing failure: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}
