package scan

import "context"

// Scanner turns the paged version listing into a stream of complete chains.
// It holds at most one page plus the current key's records in memory, so
// usage is O(chain length) regardless of bucket size. Paging is strictly
// sequential: the continuation cursor is stateful and ordered.
type Scanner struct {
	pager   Pager
	cursor  *Cursor
	pending []Record
	current []Record
	done    bool
}

func NewScanner(p Pager) *Scanner {
	return &Scanner{pager: p}
}

// Next returns the next complete chain, or (nil, nil) once the listing is
// exhausted. A chain's records may span page boundaries, so a chain is only
// emitted after a record for a different key (or the end of the listing) has
// been seen. On a transient error the cursor is not advanced and Next may be
// called again to resume.
func (s *Scanner) Next(ctx context.Context) (*Chain, error) {
	for {
		for len(s.pending) > 0 {
			r := s.pending[0]
			if len(s.current) > 0 && r.Key != s.current[0].Key {
				return s.emit(), nil
			}
			s.current = append(s.current, r)
			s.pending = s.pending[1:]
		}

		if s.done {
			if len(s.current) > 0 {
				return s.emit(), nil
			}
			return nil, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.pager.ListVersions(ctx, s.cursor)
		if err != nil {
			return nil, err
		}
		s.pending = page.Records
		if page.Next == nil {
			s.done = true
		} else {
			s.cursor = page.Next
		}
	}
}

func (s *Scanner) emit() *Chain {
	chain := &Chain{Key: s.current[0].Key, Records: s.current}
	s.current = nil
	return chain
}
