package s3

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type Options struct {
	Endpoint           string
	Region             string
	AccessKey          string
	SecretKey          string
	PathStyle          bool
	InsecureSkipVerify bool
}

type Client struct {
	client *s3.Client
}

func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}

	cfg := aws.Config{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
	}

	if opts.Endpoint != "" {
		endpointURL, err := url.Parse(strings.TrimSpace(opts.Endpoint))
		if err != nil {
			return nil, fmt.Errorf("s3 endpoint: %w", err)
		}
		if endpointURL.Scheme == "" {
			endpointURL.Scheme = "https"
			endpointURL, _ = url.Parse(endpointURL.String())
		}
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               endpointURL.String(),
				SigningRegion:     opts.Region,
				HostnameImmutable: true,
			}, nil
		})
		cfg.EndpointResolverWithOptions = resolver
	}

	httpClient := http.DefaultClient
	if opts.InsecureSkipVerify {
		httpClient = &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		}
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = opts.PathStyle
		o.HTTPClient = httpClient
	})

	return &Client{client: client}, nil
}

type BucketInfo struct {
	Name    string
	Created time.Time
}

func (c *Client) ListBuckets(ctx context.Context) ([]BucketInfo, error) {
	out, err := c.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", err)
	}
	var buckets []BucketInfo
	for _, b := range out.Buckets {
		info := BucketInfo{Name: aws.ToString(b.Name)}
		if b.CreationDate != nil {
			info.Created = *b.CreationDate
		}
		buckets = append(buckets, info)
	}
	return buckets, nil
}

func (c *Client) HeadBucket(ctx context.Context, bucket string) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)})
	if err != nil {
		return fmt.Errorf("access bucket %s: %w", bucket, err)
	}
	return nil
}

type VersioningStatus string

const (
	VersioningEnabled   VersioningStatus = "enabled"
	VersioningSuspended VersioningStatus = "suspended"
	VersioningDisabled  VersioningStatus = "disabled"
)

// Capable reports whether version history exists to operate on. Suspended
// buckets keep their existing versions, so they remain restorable.
func (s VersioningStatus) Capable() bool {
	return s == VersioningEnabled || s == VersioningSuspended
}

func (c *Client) BucketVersioning(ctx context.Context, bucket string) (VersioningStatus, error) {
	out, err := c.client.GetBucketVersioning(ctx, &s3.GetBucketVersioningInput{
		Bucket: aws.String(bucket),
	})
	if err != nil {
		return VersioningDisabled, fmt.Errorf("get bucket versioning: %w", err)
	}
	switch out.Status {
	case types.BucketVersioningStatusEnabled:
		return VersioningEnabled, nil
	case types.BucketVersioningStatusSuspended:
		return VersioningSuspended, nil
	default:
		return VersioningDisabled, nil
	}
}
