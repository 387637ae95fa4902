package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTableName(t *testing.T) {
	assert.Equal(t, TableBlocks, NormalizeTableName("  Blocks "))
	assert.Equal(t, TablePhysicalBlocks, NormalizeTableName("PHYSICAL_BLOCKS"))
	assert.Equal(t, LegacyTable("unknown"), NormalizeTableName("Unknown"))
}

func TestKnownTablesUnique(t *testing.T) {
	seen := make(map[LegacyTable]bool, len(KnownTables))
	for _, table := range KnownTables {
		assert.False(t, seen[table], string(table))
		seen[table] = true
	}
}
