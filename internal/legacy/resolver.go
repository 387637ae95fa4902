package legacy

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FarmSeed is one entry of the fixed seed list a reference table is built from.
type FarmSeed struct {
	ID    uuid.UUID
	Code  string // canonical code, also the legacy prefix (e.g. "TVGH")
	Name  string // free-text farm name as the legacy system wrote it
	Alias string // secondary legacy name, optional
}

// FarmRef is the canonical identity a legacy farm reference resolves to.
type FarmRef struct {
	ID   uuid.UUID
	Code string
}

// ReferenceTable maps legacy farm prefixes and names to canonical farms.
// It is built once per migration run and never mutated during ingestion.
//
// Resolution is two-tier because the legacy system mixed structured code
// prefixes with inconsistent free-text names, and neither alone is complete:
// longest prefix first (so "TVGH" wins over "TV" for "TVGH-03"), then an
// exact-name fallback.
type ReferenceTable struct {
	prefixes []prefixEntry // sorted by descending prefix length
	byName   map[string]FarmRef
}

type prefixEntry struct {
	prefix string
	ref    FarmRef
}

// NewReferenceTable builds the immutable lookup structures from seeds.
func NewReferenceTable(seeds []FarmSeed) *ReferenceTable {
	t := &ReferenceTable{
		byName: make(map[string]FarmRef, len(seeds)),
	}
	for _, s := range seeds {
		ref := FarmRef{ID: s.ID, Code: s.Code}
		t.prefixes = append(t.prefixes, prefixEntry{prefix: s.Code, ref: ref})
		t.byName[normalizeName(s.Name)] = ref
		if s.Alias != "" {
			t.byName[normalizeName(s.Alias)] = ref
		}
	}
	sort.SliceStable(t.prefixes, func(i, j int) bool {
		return len(t.prefixes[i].prefix) > len(t.prefixes[j].prefix)
	})
	return t
}

// Resolve maps a legacy code (and a free-text fallback name) to a canonical
// farm. ok=false means the caller must log, skip the record, and count it as
// unresolved-reference rather than abort the run.
func (t *ReferenceTable) Resolve(legacyCode, fallbackName string) (FarmRef, bool) {
	code := strings.TrimSpace(legacyCode)
	for _, e := range t.prefixes {
		if strings.HasPrefix(code, e.prefix) {
			return e.ref, true
		}
	}
	if name := normalizeName(fallbackName); name != "" {
		if ref, ok := t.byName[name]; ok {
			return ref, true
		}
	}
	return FarmRef{}, false
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
