package constants

import "strings"

// LegacyTable identifies one of the known dump table layouts.
// Table identity and column order are configuration, never inferred.
type LegacyTable string

// Stable values (these exact strings appear in run summaries and reports).
const (
	TablePhysicalBlocks LegacyTable = "physical_blocks"
	TableBlocks         LegacyTable = "blocks"
	TableArchivedCycles LegacyTable = "archived_cycles"
	TableHarvests       LegacyTable = "harvests"
	TablePrices         LegacyTable = "prices"
)

// KnownTables holds every layout the migrator understands.
var KnownTables = []LegacyTable{
	TablePhysicalBlocks,
	TableBlocks,
	TableArchivedCycles,
	TableHarvests,
	TablePrices,
}

// NormalizeTableName lowercases and trims a table name from configuration.
func NormalizeTableName(name string) LegacyTable {
	return LegacyTable(strings.ToLower(strings.TrimSpace(name)))
}
