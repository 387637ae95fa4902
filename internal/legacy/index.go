package legacy

import (
	"sync"

	"github.com/google/uuid"
)

// BlockIndex maps legacy block refs to the entity ids minted for them during
// the blocks pass. Dependent tables (harvests, archived cycles) resolve their
// block_ref columns through it, so linkage holds whether a block kept its
// UUID-shaped legacy id or had one derived from the ref.
type BlockIndex struct {
	mu  sync.Mutex
	ids map[string]uuid.UUID
}

func NewBlockIndex() *BlockIndex {
	return &BlockIndex{ids: make(map[string]uuid.UUID)}
}

// Add records the id minted for ref. The first mapping wins, matching the
// ledger's at-most-once rule for duplicate rows.
func (x *BlockIndex) Add(ref string, id uuid.UUID) {
	x.mu.Lock()
	defer x.mu.Unlock()
	if _, ok := x.ids[ref]; !ok {
		x.ids[ref] = id
	}
}

// Lookup resolves a block ref to the id of the block ingested under it.
func (x *BlockIndex) Lookup(ref string) (uuid.UUID, bool) {
	x.mu.Lock()
	defer x.mu.Unlock()
	id, ok := x.ids[ref]
	return id, ok
}
