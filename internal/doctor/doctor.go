package doctor

import (
	"context"
	"fmt"
	"time"

	"VelRestore/internal/config"
	"VelRestore/internal/s3"
)

type CheckResult struct {
	Name   string
	OK     bool
	Detail string
}

// Run checks the configuration, S3 reachability, and (when a bucket is
// given) the versioning capability this tool depends on.
func Run(ctx context.Context, cfg *config.Config, bucket string) []CheckResult {
	var results []CheckResult

	results = append(results, CheckResult{
		Name:   "config",
		OK:     cfg != nil,
		Detail: "configuration loaded",
	})

	if cfg == nil || cfg.S3 == nil {
		results = append(results, CheckResult{Name: "s3", OK: false, Detail: "s3 not configured"})
		return results
	}

	client, err := s3.New(ctx, s3.Options{
		Endpoint:           cfg.S3.Endpoint,
		Region:             cfg.S3.Region,
		AccessKey:          cfg.S3.AccessKey,
		SecretKey:          cfg.S3.SecretKey,
		PathStyle:          config.S3PathStyle(cfg.S3),
		InsecureSkipVerify: cfg.S3.TLS != nil && cfg.S3.TLS.InsecureSkipVerify,
	})
	if err != nil {
		results = append(results, CheckResult{Name: "s3", OK: false, Detail: fmt.Sprintf("s3 client init failed: %v", err)})
		return results
	}

	ok, detail := checkConnectivity(ctx, client)
	results = append(results, CheckResult{Name: "s3", OK: ok, Detail: detail})

	if bucket != "" {
		ok, detail = checkVersioning(ctx, client, bucket)
		results = append(results, CheckResult{Name: "versioning", OK: ok, Detail: detail})
	}

	return results
}

func checkConnectivity(ctx context.Context, client *s3.Client) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		return false, fmt.Sprintf("s3 list buckets failed: %v", err)
	}
	return true, fmt.Sprintf("s3 OK (%d buckets visible)", len(buckets))
}

func checkVersioning(ctx context.Context, client *s3.Client, bucket string) (bool, string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.HeadBucket(ctx, bucket); err != nil {
		return false, fmt.Sprintf("bucket check failed: %v", err)
	}
	status, err := client.BucketVersioning(ctx, bucket)
	if err != nil {
		return false, fmt.Sprintf("versioning check failed: %v", err)
	}
	if !status.Capable() {
		return false, fmt.Sprintf("bucket %s has versioning %s; nothing can be restored", bucket, status)
	}
	return true, fmt.Sprintf("bucket %s versioning %s", bucket, status)
}
