package legacy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/lifecycle"
)

func newTestMapper(t *testing.T) *Mapper {
	t.Helper()
	return NewMapper(NewReferenceTable(testSeeds()), NewBlockIndex(), nil)
}

// ingestBlock maps a minimal blocks row so dependent rows can resolve ref.
func ingestBlock(t *testing.T, m *Mapper, legacyID, ref string) entity.Canonical {
	t.Helper()
	got, err := m.Map(constants.TableBlocks, RawTuple{
		"NULL", legacyID, "'" + ref + "'", "'tunnel'", "40", "'growing'", "'2025-01-01'", "'tomato'",
	})
	require.NoError(t, err)
	return got
}

func mapReason(t *testing.T, err error) constants.SkipReason {
	t.Helper()
	var me *MappingError
	require.ErrorAs(t, err, &me)
	return me.Reason
}

func TestMapPhysicalBlock(t *testing.T) {
	m := newTestMapper(t)

	got, err := m.Map(constants.TablePhysicalBlocks,
		RawTuple{"101", "'TV-2'", "'North Bay'", "'Tierra Verde'", "120.5"})
	require.NoError(t, err)

	pb, ok := got.(*entity.PhysicalBlock)
	require.True(t, ok)
	assert.Equal(t, "TV-2", pb.LegacyCode)
	assert.Equal(t, "North Bay", pb.Name)
	require.NotNil(t, pb.AreaSqM)
	assert.InDelta(t, 120.5, *pb.AreaSqM, 1e-9)
	assert.Equal(t, testSeeds()[0].ID, pb.FarmID)
}

func TestMapArityMismatch(t *testing.T) {
	m := newTestMapper(t)

	_, err := m.Map(constants.TablePhysicalBlocks, RawTuple{"101", "'TV-2'"})
	assert.Equal(t, constants.SkipMalformed, mapReason(t, err))

	_, err = m.Map(constants.LegacyTable("unknown_table"), RawTuple{"1"})
	assert.Equal(t, constants.SkipMalformed, mapReason(t, err))
}

func TestMapMissingRef(t *testing.T) {
	m := newTestMapper(t)

	_, err := m.Map(constants.TablePhysicalBlocks,
		RawTuple{"101", "NULL", "'North Bay'", "'Tierra Verde'", "120.5"})
	assert.Equal(t, constants.SkipMissingRequired, mapReason(t, err))
}

func TestMapUnresolvedFarm(t *testing.T) {
	m := newTestMapper(t)

	_, err := m.Map(constants.TablePhysicalBlocks,
		RawTuple{"101", "'ZZ-9'", "'lost plot'", "'Nowhere Farm'", "10"})
	assert.Equal(t, constants.SkipUnresolvedRef, mapReason(t, err))
}

func TestMapBlock(t *testing.T) {
	m := newTestMapper(t)

	got, err := m.Map(constants.TableBlocks, RawTuple{
		`{"watering_frequency_days": 2, "irrigation": "drip"}`,
		"12", "'TVGH-03'", "'Greenhouse'", "500", "'growing'", "'2025-01-01'", "'tomato'",
	})
	require.NoError(t, err)

	b, ok := got.(*entity.Block)
	require.True(t, ok)
	assert.Equal(t, "TVGH-03", b.LegacyCode)
	assert.Equal(t, 3, b.SequenceNumber)
	assert.Equal(t, "greenhouse", b.BlockType)
	assert.Equal(t, 500, b.MaxCapacity)
	assert.Equal(t, lifecycle.StateGrowing, b.State)
	assert.Equal(t, "tomato", b.CropName)
	assert.Equal(t, 2, b.WateringFrequencyDays)
	require.NotNil(t, b.PlantingDate)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *b.PlantingDate)
	// TVGH must win over the shorter TV prefix.
	assert.Equal(t, testSeeds()[1].ID, b.FarmID)
}

func TestMapBlockSettingsDefaults(t *testing.T) {
	m := newTestMapper(t)

	cases := []struct {
		name string
		blob string
	}{
		{"absent blob", "NULL"},
		{"invalid json", `{"watering_frequency_days": "often"}`},
		{"empty object", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Map(constants.TableBlocks, RawTuple{
				tc.blob, "12", "'TV-4'", "NULL", "NULL", "NULL", "NULL", "NULL",
			})
			require.NoError(t, err)
			b := got.(*entity.Block)
			assert.Equal(t, constants.DefaultWateringFrequencyDays, b.WateringFrequencyDays)
			assert.Equal(t, constants.DefaultBlockType, b.BlockType)
		})
	}
}

func TestMapBlockStateFallback(t *testing.T) {
	m := newTestMapper(t)

	// Unknown state with a planting date implies a planned block.
	got, err := m.Map(constants.TableBlocks, RawTuple{
		"NULL", "12", "'TV-4'", "'tunnel'", "40", "'???'", "'2025-02-01'", "'lettuce'",
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatePlanned, got.(*entity.Block).State)

	// No state and no planting date means the block sits empty.
	got, err = m.Map(constants.TableBlocks, RawTuple{
		"NULL", "13", "'TV-5'", "'tunnel'", "40", "NULL", "NULL", "NULL",
	})
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StateEmpty, got.(*entity.Block).State)
}

func TestMapHarvestLinksBlock(t *testing.T) {
	m := newTestMapper(t)
	block := ingestBlock(t, m, "12", "TV-2")

	harvest, err := m.Map(constants.TableHarvests,
		RawTuple{"55", "'H-55'", "'TV-2'", "'tomato'", "'2025-03-01'", "12.25", "'A'"})
	require.NoError(t, err)

	h := harvest.(*entity.Harvest)
	assert.Equal(t, block.EntityID(), h.BlockID)
	assert.Equal(t, "H-55", h.LegacyCode)
	assert.InDelta(t, 12.25, h.QuantityKg, 1e-9)
	assert.Equal(t, "A", h.Grade)
}

func TestMapHarvestLinksUUIDKeyedBlock(t *testing.T) {
	m := newTestMapper(t)

	// A block that kept its UUID-shaped legacy id must still be the one its
	// harvests join to.
	block := ingestBlock(t, m, "'c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234'", "TV-7")
	require.Equal(t, "c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234", block.EntityID().String())

	harvest, err := m.Map(constants.TableHarvests,
		RawTuple{"56", "'H-56'", "'TV-7'", "'tomato'", "'2025-03-02'", "3.5", "'B'"})
	require.NoError(t, err)
	assert.Equal(t, block.EntityID(), harvest.(*entity.Harvest).BlockID)
}

func TestMapHarvestUnknownBlock(t *testing.T) {
	m := newTestMapper(t)

	_, err := m.Map(constants.TableHarvests,
		RawTuple{"57", "'H-57'", "'TV-99'", "'tomato'", "'2025-03-03'", "1.0", "NULL"})
	assert.Equal(t, constants.SkipUnresolvedRef, mapReason(t, err))
}

func TestMapArchivedCycle(t *testing.T) {
	m := newTestMapper(t)
	block := ingestBlock(t, m, "12", "TVGH-03")

	got, err := m.Map(constants.TableArchivedCycles, RawTuple{
		"7", "'C-7'", "'TVGH-03'", "'tomato'", "'2024-06-01'", "'2024-08-10'", "310.4",
	})
	require.NoError(t, err)

	c := got.(*entity.ArchivedCycle)
	assert.Equal(t, "C-7", c.LegacyCode)
	assert.Equal(t, block.EntityID(), c.BlockID)
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), c.PlantingDate)
	require.NotNil(t, c.ClearedDate)
	require.NotNil(t, c.YieldKg)
	assert.InDelta(t, 310.4, *c.YieldKg, 1e-9)
	assert.Equal(t, testSeeds()[1].ID, c.FarmID)

	// A cycle without a planting date is unusable.
	_, err = m.Map(constants.TableArchivedCycles, RawTuple{
		"8", "'C-8'", "'TVGH-03'", "'tomato'", "NULL", "NULL", "NULL",
	})
	assert.Equal(t, constants.SkipMissingRequired, mapReason(t, err))
}

func TestMapPrice(t *testing.T) {
	m := newTestMapper(t)

	got, err := m.Map(constants.TablePrices,
		RawTuple{"3", "'P-3'", "'tomato'", "'2025-01-15'", "2.35", "'eur'"})
	require.NoError(t, err)

	p := got.(*entity.PriceRecord)
	assert.Equal(t, "EUR", p.CurrencyCode)
	assert.InDelta(t, 2.35, p.PricePerKg, 1e-9)

	// Absent currency falls back on the default.
	got, err = m.Map(constants.TablePrices,
		RawTuple{"4", "'P-4'", "'tomato'", "'2025-01-16'", "2.40", "NULL"})
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultCurrencyCode, got.(*entity.PriceRecord).CurrencyCode)
}

func TestMapDeterministicIDs(t *testing.T) {
	m := newTestMapper(t)

	row := RawTuple{"101", "'TV-2'", "'North Bay'", "'Tierra Verde'", "120.5"}
	first, err := m.Map(constants.TablePhysicalBlocks, row)
	require.NoError(t, err)
	second, err := m.Map(constants.TablePhysicalBlocks, row)
	require.NoError(t, err)
	assert.Equal(t, first.EntityID(), second.EntityID())

	// A UUID-shaped legacy id is kept verbatim.
	keep := RawTuple{"'c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234'", "'TV-3'", "NULL", "'Tierra Verde'", "NULL"}
	got, err := m.Map(constants.TablePhysicalBlocks, keep)
	require.NoError(t, err)
	assert.Equal(t, "c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234", got.EntityID().String())
}
