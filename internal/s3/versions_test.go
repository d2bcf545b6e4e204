package s3

import (
	"testing"
	"time"

	"VelRestore/internal/scan"
)

func TestMergeRecords(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	versions := []scan.Record{
		{Key: "a", VersionID: "a-v2", LastModified: t0.Add(-1 * time.Hour)},
		{Key: "a", VersionID: "a-v1", LastModified: t0.Add(-3 * time.Hour)},
		{Key: "b", VersionID: "b-v1", IsLatest: true, LastModified: t0.Add(-1 * time.Hour)},
	}
	markers := []scan.Record{
		{Key: "a", VersionID: "a-m", IsDeleteMarker: true, IsLatest: true, LastModified: t0},
		{Key: "c", VersionID: "c-m", IsDeleteMarker: true, IsLatest: true, LastModified: t0},
	}

	merged := mergeRecords(versions, markers)

	want := []string{"a-m", "a-v2", "a-v1", "b-v1", "c-m"}
	if len(merged) != len(want) {
		t.Fatalf("merged %d records, want %d", len(merged), len(want))
	}
	for i, id := range want {
		if merged[i].VersionID != id {
			t.Errorf("merged[%d] = %s, want %s", i, merged[i].VersionID, id)
		}
	}
}

func TestMergeRecordsTimestampTie(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	versions := []scan.Record{
		{Key: "k", VersionID: "old", LastModified: t0},
	}
	markers := []scan.Record{
		{Key: "k", VersionID: "marker", IsDeleteMarker: true, IsLatest: true, LastModified: t0},
	}

	merged := mergeRecords(versions, markers)
	if merged[0].VersionID != "marker" {
		t.Errorf("head = %s, want the IsLatest record to win the tie", merged[0].VersionID)
	}
}

func TestMergeRecordsOneSideEmpty(t *testing.T) {
	only := []scan.Record{{Key: "a", VersionID: "v1", IsLatest: true}}
	if got := mergeRecords(only, nil); len(got) != 1 {
		t.Errorf("versions-only merge = %d records, want 1", len(got))
	}
	if got := mergeRecords(nil, only); len(got) != 1 {
		t.Errorf("markers-only merge = %d records, want 1", len(got))
	}
}
