package config

import (
	"errors"
	"fmt"
)

var ErrMissingCredentials = errors.New("missing S3 credentials: set s3.access_key/s3.secret_key in the config or S3_ACCESS_KEY_ID/S3_SECRET_ACCESS_KEY in the environment")

func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.S3 == nil || cfg.S3.AccessKey == "" || cfg.S3.SecretKey == "" {
		return ErrMissingCredentials
	}
	if cfg.Restore != nil && cfg.Restore.Concurrency < 0 {
		return fmt.Errorf("restore.concurrency must be >= 0, got %d", cfg.Restore.Concurrency)
	}
	return nil
}
