package notifier

import (
	"context"
	"time"
)

type Notifier interface {
	NotifyStart(ctx context.Context, bucket, mode string) error
	NotifySuccess(ctx context.Context, bucket, mode string, restored int, bytes int64, duration time.Duration) error
	NotifyError(ctx context.Context, bucket, mode string, err error) error
}
