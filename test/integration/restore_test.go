//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"VelRestore/internal/restore"
	s3client "VelRestore/internal/s3"
	"VelRestore/internal/scan"
)

// rawClient builds a plain SDK client for seeding test objects; the code
// under test never uploads bytes, so the seeding path stays out of it.
func rawClient(t *testing.T, endpoint, accessKey, secretKey string) *awss3.Client {
	t.Helper()
	endpointURL, err := url.Parse(endpoint)
	if err != nil {
		t.Fatalf("endpoint: %v", err)
	}
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{URL: endpointURL.String(), SigningRegion: "us-east-1", HostnameImmutable: true}, nil
	})
	cfg := aws.Config{
		Region:                      "us-east-1",
		EndpointResolverWithOptions: resolver,
		Credentials:                 credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
	}
	return awss3.NewFromConfig(cfg, func(o *awss3.Options) { o.UsePathStyle = true })
}

func ensureVersionedBucket(t *testing.T, ctx context.Context, raw *awss3.Client, bucket string) {
	t.Helper()
	_, err := raw.CreateBucket(ctx, &awss3.CreateBucketInput{Bucket: aws.String(bucket)})
	if err != nil && !strings.Contains(err.Error(), "BucketAlreadyOwnedByYou") && !strings.Contains(err.Error(), "BucketAlreadyExists") {
		t.Fatalf("create bucket: %v", err)
	}
	_, err = raw.PutBucketVersioning(ctx, &awss3.PutBucketVersioningInput{
		Bucket: aws.String(bucket),
		VersioningConfiguration: &types.VersioningConfiguration{
			Status: types.BucketVersioningStatusEnabled,
		},
	})
	if err != nil {
		t.Fatalf("enable versioning: %v", err)
	}
}

func put(t *testing.T, ctx context.Context, raw *awss3.Client, bucket, key, body string) {
	t.Helper()
	_, err := raw.PutObject(ctx, &awss3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader(body),
	})
	if err != nil {
		t.Fatalf("put %s: %v", key, err)
	}
}

func del(t *testing.T, ctx context.Context, raw *awss3.Client, bucket, key string) {
	t.Helper()
	_, err := raw.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		t.Fatalf("delete %s: %v", key, err)
	}
}

func TestUndeleteRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	endpoint, accessKey, secretKey, bucket := getMinIOEnv()
	raw := rawClient(t, endpoint, accessKey, secretKey)
	ensureVersionedBucket(t, ctx, raw, bucket)

	// Unique prefix per run so reruns against the same bucket stay isolated.
	prefix := fmt.Sprintf("undelete-%d/", time.Now().UnixNano())
	deleted := prefix + "docs/a.txt"
	alive := prefix + "cfg/c.yml"

	put(t, ctx, raw, bucket, deleted, "version one")
	put(t, ctx, raw, bucket, deleted, "version two")
	del(t, ctx, raw, bucket, deleted)
	put(t, ctx, raw, bucket, alive, "still here")

	client, err := s3client.New(ctx, s3client.Options{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		PathStyle: true,
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	status, err := client.BucketVersioning(ctx, bucket)
	if err != nil || !status.Capable() {
		t.Fatalf("versioning = %v, %v", status, err)
	}

	plan, err := restore.BuildPlan(ctx, scan.NewScanner(client.Versions(bucket, prefix)), restore.ModeUndelete, bucket, prefix)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.TotalCount != 1 {
		t.Fatalf("plan = %d actions, want 1 (only the deleted key)", plan.TotalCount)
	}
	if plan.Actions[0].Key != deleted {
		t.Fatalf("plan targets %s, want %s", plan.Actions[0].Key, deleted)
	}
	if plan.TotalBytes != int64(len("version two")) {
		t.Errorf("TotalBytes = %d, want size of the exposed version", plan.TotalBytes)
	}

	report, err := restore.Execute(ctx, client.Deleter(bucket), plan, 2)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if report.Applied != 1 || report.Failed != 0 {
		t.Fatalf("report = %+v", report)
	}

	// The object is visible again with its newest real version.
	out, err := raw.GetObject(ctx, &awss3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(deleted)})
	if err != nil {
		t.Fatalf("object still hidden after undelete: %v", err)
	}
	_ = out.Body.Close()

	// Second execution of the same plan is a pure no-op.
	second, err := restore.Execute(ctx, client.Deleter(bucket), plan, 1)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if second.Applied != 0 || second.AlreadySatisfied != 1 {
		t.Errorf("second run = %+v, want 0 applied / 1 satisfied", second)
	}

	// A rescan finds nothing left to do.
	replan, err := restore.BuildPlan(ctx, scan.NewScanner(client.Versions(bucket, prefix)), restore.ModeUndelete, bucket, prefix)
	if err != nil {
		t.Fatalf("replan: %v", err)
	}
	if replan.TotalCount != 0 {
		t.Errorf("replan = %d actions, want 0", replan.TotalCount)
	}
}

func TestRevertRoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	endpoint, accessKey, secretKey, bucket := getMinIOEnv()
	raw := rawClient(t, endpoint, accessKey, secretKey)
	ensureVersionedBucket(t, ctx, raw, bucket)

	prefix := fmt.Sprintf("revert-%d/", time.Now().UnixNano())
	key := prefix + "img/b.png"

	put(t, ctx, raw, bucket, key, "old contents")
	put(t, ctx, raw, bucket, key, "new contents, longer")

	client, err := s3client.New(ctx, s3client.Options{
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
		PathStyle: true,
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}

	plan, err := restore.BuildPlan(ctx, scan.NewScanner(client.Versions(bucket, prefix)), restore.ModeRevert, bucket, prefix)
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}
	if plan.TotalCount != 1 || plan.TotalBytes != int64(len("old contents")) {
		t.Fatalf("plan = %d actions / %d bytes", plan.TotalCount, plan.TotalBytes)
	}

	report, err := restore.Execute(ctx, client.Deleter(bucket), plan, 1)
	if err != nil || report.Applied != 1 {
		t.Fatalf("report = %+v, %v", report, err)
	}

	out, err := raw.GetObject(ctx, &awss3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		t.Fatalf("get after revert: %v", err)
	}
	defer out.Body.Close()
	if got := aws.ToInt64(out.ContentLength); got != int64(len("old contents")) {
		t.Errorf("current size = %d, want the previous version's %d", got, len("old contents"))
	}
}
