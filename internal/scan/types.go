package scan

import (
	"context"
	"time"
)

// Record is one entry in a key's version history. Delete markers are records
// too, with Size 0.
type Record struct {
	Key            string
	VersionID      string
	IsDeleteMarker bool
	IsLatest       bool
	LastModified   time.Time
	Size           int64
}

// Chain holds every known version of one key, newest first. A chain is never
// empty and carries at most one IsLatest record.
type Chain struct {
	Key     string
	Records []Record
}

func (c *Chain) Head() Record {
	return c.Records[0]
}

// Cursor is the listing API's continuation marker pair.
type Cursor struct {
	KeyMarker       string
	VersionIDMarker string
}

// Page is one listing response: records in API order (keys ascending, versions
// newest first within a key) plus the cursor for the next page, nil on the
// last page.
type Page struct {
	Records []Record
	Next    *Cursor
}

// Pager fetches one page of the version listing. A nil cursor requests the
// first page. Implementations must preserve the API guarantee that all
// versions of a key appear contiguously before the next key.
type Pager interface {
	ListVersions(ctx context.Context, cursor *Cursor) (Page, error)
}
