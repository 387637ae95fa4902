package legacy

import (
	"sync"

	"github.com/google/uuid"
)

// Ledger guarantees at-most-once ingestion per natural key within one
// migration run. Later occurrences of a key are re-exports of the same
// source row, so they are dropped, never merged or overwritten.
//
// Observe is safe for concurrent use; table passes may run in parallel and
// two tuples for the same key can appear in different shards. Idempotence
// across runs is handled separately by the store's upsert-if-absent.
type Ledger struct {
	mu   sync.Mutex
	seen map[uuid.UUID]struct{}
}

func NewLedger() *Ledger {
	return &Ledger{seen: make(map[uuid.UUID]struct{})}
}

// Observe records a key and reports whether this was its first occurrence.
func (l *Ledger) Observe(id uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, dup := l.seen[id]; dup {
		return false
	}
	l.seen[id] = struct{}{}
	return true
}

// Len reports how many distinct keys the run has produced.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.seen)
}
