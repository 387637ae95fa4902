package legacy

import (
	"sync"

	"github.com/agrobase-io/agrobase/constants"
)

// TableStats is the per-table slice of a run summary.
type TableStats struct {
	Parsed  int
	Mapped  int
	Skipped map[constants.SkipReason]int
}

// Summary aggregates what a migration run did so operators can audit
// completeness. Every excluded row lands under exactly one reason code;
// nothing is dropped uncounted.
type Summary struct {
	mu     sync.Mutex
	tables map[constants.LegacyTable]*TableStats
}

func NewSummary() *Summary {
	return &Summary{tables: make(map[constants.LegacyTable]*TableStats)}
}

func (s *Summary) stats(table constants.LegacyTable) *TableStats {
	st, ok := s.tables[table]
	if !ok {
		st = &TableStats{Skipped: make(map[constants.SkipReason]int)}
		s.tables[table] = st
	}
	return st
}

// Parsed records one tuple successfully extracted for table.
func (s *Summary) Parsed(table constants.LegacyTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats(table).Parsed++
}

// Mapped records one canonical entity produced for table.
func (s *Summary) Mapped(table constants.LegacyTable) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats(table).Mapped++
}

// Skipped records one excluded row for table under reason.
func (s *Summary) Skipped(table constants.LegacyTable, reason constants.SkipReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats(table).Skipped[reason]++
}

// SkippedN records n excluded rows at once (tokenizer malformed counts).
func (s *Summary) SkippedN(table constants.LegacyTable, reason constants.SkipReason, n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats(table).Skipped[reason] += n
}

// Table returns a copy of the stats for one table.
func (s *Summary) Table(table constants.LegacyTable) TableStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.stats(table)
	out := TableStats{Parsed: st.Parsed, Mapped: st.Mapped, Skipped: make(map[constants.SkipReason]int, len(st.Skipped))}
	for r, n := range st.Skipped {
		out.Skipped[r] = n
	}
	return out
}

// Totals sums across all tables.
func (s *Summary) Totals() TableStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := TableStats{Skipped: make(map[constants.SkipReason]int)}
	for _, st := range s.tables {
		out.Parsed += st.Parsed
		out.Mapped += st.Mapped
		for r, n := range st.Skipped {
			out.Skipped[r] += n
		}
	}
	return out
}
