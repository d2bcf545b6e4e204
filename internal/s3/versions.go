package s3

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"VelRestore/internal/scan"
)

// VersionPager adapts ListObjectVersions to the scanner's Pager contract for
// one bucket and prefix.
type VersionPager struct {
	c      *Client
	bucket string
	prefix string
}

func (c *Client) Versions(bucket, prefix string) *VersionPager {
	return &VersionPager{c: c, bucket: bucket, prefix: prefix}
}

func (p *VersionPager) ListVersions(ctx context.Context, cursor *scan.Cursor) (scan.Page, error) {
	input := &s3.ListObjectVersionsInput{
		Bucket: aws.String(p.bucket),
	}
	if p.prefix != "" {
		input.Prefix = aws.String(p.prefix)
	}
	if cursor != nil {
		input.KeyMarker = aws.String(cursor.KeyMarker)
		if cursor.VersionIDMarker != "" {
			input.VersionIdMarker = aws.String(cursor.VersionIDMarker)
		}
	}

	out, err := p.c.client.ListObjectVersions(ctx, input)
	if err != nil {
		return scan.Page{}, classifyListError(err)
	}

	versions := make([]scan.Record, 0, len(out.Versions))
	for _, v := range out.Versions {
		r := scan.Record{
			Key:       aws.ToString(v.Key),
			VersionID: aws.ToString(v.VersionId),
			IsLatest:  aws.ToBool(v.IsLatest),
			Size:      aws.ToInt64(v.Size),
		}
		if v.LastModified != nil {
			r.LastModified = *v.LastModified
		}
		versions = append(versions, r)
	}

	markers := make([]scan.Record, 0, len(out.DeleteMarkers))
	for _, m := range out.DeleteMarkers {
		r := scan.Record{
			Key:            aws.ToString(m.Key),
			VersionID:      aws.ToString(m.VersionId),
			IsDeleteMarker: true,
			IsLatest:       aws.ToBool(m.IsLatest),
		}
		if m.LastModified != nil {
			r.LastModified = *m.LastModified
		}
		markers = append(markers, r)
	}

	page := scan.Page{Records: mergeRecords(versions, markers)}
	if aws.ToBool(out.IsTruncated) {
		page.Next = &scan.Cursor{
			KeyMarker:       aws.ToString(out.NextKeyMarker),
			VersionIDMarker: aws.ToString(out.NextVersionIdMarker),
		}
	}
	return page, nil
}

// mergeRecords interleaves the API's separate Versions and DeleteMarkers
// arrays back into the single per-key newest-first stream the scanner needs.
// Both inputs arrive sorted by key ascending, then last-modified descending;
// a plain two-pointer merge preserves that ordering. On a timestamp tie the
// record flagged latest wins the head position.
func mergeRecords(a, b []scan.Record) []scan.Record {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	merged := make([]scan.Record, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if recordBefore(a[i], b[j]) {
			merged = append(merged, a[i])
			i++
		} else {
			merged = append(merged, b[j])
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return merged
}

func recordBefore(a, b scan.Record) bool {
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	if !a.LastModified.Equal(b.LastModified) {
		return a.LastModified.After(b.LastModified)
	}
	return a.IsLatest
}
