package s3

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"

	"VelRestore/internal/restore"
	"VelRestore/internal/scan"
)

// classifyListError maps a ListObjectVersions failure onto the scan taxonomy.
// Listing is read-only and has not advanced the cursor when it fails, so
// transient errors are safely retryable by calling Next again; everything
// that indicates a missing bucket, missing permission, or an endpoint without
// versioning support is permanent and aborts the run before any mutation.
func classifyListError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "SlowDown", "Throttling", "ThrottlingException", "RequestTimeout",
			"RequestTimeoutException", "ServiceUnavailable", "InternalError":
			return &scan.TransientError{Err: err}
		case "NoSuchBucket":
			return &scan.PermanentError{Reason: "bucket does not exist", Err: err}
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return &scan.PermanentError{Reason: "no permission to list versions", Err: err}
		case "NotImplemented":
			return &scan.PermanentError{Reason: "endpoint does not support versioning operations", Err: err}
		default:
			return &scan.PermanentError{Reason: fmt.Sprintf("listing failed (%s)", apiErr.ErrorCode()), Err: err}
		}
	}
	// Anything below the API layer is a network condition.
	return &scan.TransientError{Err: err}
}

// classifyDeleteError maps a DeleteObject failure onto the executor taxonomy.
// A target version that is already gone is a conflict, not a failure: the
// desired end state holds, which is what makes re-running a plan safe.
func classifyDeleteError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchVersion", "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %v", restore.ErrVersionGone, err)
		case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
			return &restore.ActionError{Kind: restore.KindPermission, Err: err}
		case "SlowDown", "Throttling", "ThrottlingException", "RequestTimeout",
			"RequestTimeoutException", "ServiceUnavailable", "InternalError":
			return &restore.ActionError{Kind: restore.KindThrottled, Err: err}
		}
	}
	return &restore.ActionError{Kind: restore.KindOther, Err: err}
}
