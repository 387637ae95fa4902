package legacy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeeds() []FarmSeed {
	return []FarmSeed{
		{ID: uuid.MustParse("6b1a2f34-0000-4000-8000-000000000001"), Code: "TV", Name: "Tierra Verde"},
		{ID: uuid.MustParse("6b1a2f34-0000-4000-8000-000000000002"), Code: "TVGH", Name: "Tierra Verde Greenhouses", Alias: "TV Greenhouses"},
		{ID: uuid.MustParse("6b1a2f34-0000-4000-8000-000000000003"), Code: "A", Name: "Altamira"},
	}
}

func TestResolveLongestPrefixWins(t *testing.T) {
	table := NewReferenceTable(testSeeds())

	// "TVGH-03" matches both the TV and TVGH prefixes; the longer one must win.
	ref, ok := table.Resolve("TVGH-03", "")
	require.True(t, ok)
	assert.Equal(t, "TVGH", ref.Code)

	ref, ok = table.Resolve("TV-11", "")
	require.True(t, ok)
	assert.Equal(t, "TV", ref.Code)
}

func TestResolveNameFallback(t *testing.T) {
	table := NewReferenceTable(testSeeds())

	ref, ok := table.Resolve("ZZ-9", "  tierra verde greenhouses ")
	require.True(t, ok)
	assert.Equal(t, "TVGH", ref.Code)

	// Alias names resolve too.
	ref, ok = table.Resolve("", "TV Greenhouses")
	require.True(t, ok)
	assert.Equal(t, "TVGH", ref.Code)
}

func TestResolvePrefixBeatsName(t *testing.T) {
	table := NewReferenceTable(testSeeds())

	// A valid prefix is authoritative even when the name points elsewhere.
	ref, ok := table.Resolve("A-21", "Tierra Verde")
	require.True(t, ok)
	assert.Equal(t, "A", ref.Code)
}

func TestResolveUnresolved(t *testing.T) {
	table := NewReferenceTable(testSeeds())

	_, ok := table.Resolve("ZZ-9", "Unknown Farm")
	assert.False(t, ok)

	_, ok = table.Resolve("", "")
	assert.False(t, ok)
}
