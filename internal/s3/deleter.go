package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// VersionDeleter issues the single mutating primitive the executor needs:
// delete one version of one key in a fixed bucket.
type VersionDeleter struct {
	c      *Client
	bucket string
}

func (c *Client) Deleter(bucket string) *VersionDeleter {
	return &VersionDeleter{c: c, bucket: bucket}
}

func (d *VersionDeleter) DeleteVersion(ctx context.Context, key, versionID string) error {
	_, err := d.c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket:    aws.String(d.bucket),
		Key:       aws.String(key),
		VersionId: aws.String(versionID),
	})
	if err != nil {
		return classifyDeleteError(err)
	}
	return nil
}
