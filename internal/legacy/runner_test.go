package legacy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
)

type fakeSink struct {
	mu      sync.Mutex
	stored  map[uuid.UUID]entity.Canonical
	created int
}

func newFakeSink() *fakeSink {
	return &fakeSink{stored: make(map[uuid.UUID]entity.Canonical)}
}

func (f *fakeSink) UpsertIfAbsent(_ context.Context, e entity.Canonical) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.stored[e.EntityID()]; ok {
		return false, nil
	}
	f.stored[e.EntityID()] = e
	f.created++
	return true, nil
}

type fakeCatalog struct {
	cycles map[string]entity.GrowthCycle
}

func (f fakeCatalog) GrowthCycleByName(_ context.Context, cropName string) (entity.GrowthCycle, error) {
	if c, ok := f.cycles[cropName]; ok {
		return c, nil
	}
	return entity.GrowthCycle{}, errors.New("unknown crop " + cropName)
}

func testCatalog() fakeCatalog {
	return fakeCatalog{cycles: map[string]entity.GrowthCycle{
		"tomato": {
			GerminationDays: intPtr(5),
			VegetativeDays:  intPtr(20),
			FloweringDays:   intPtr(0),
			TotalCycleDays:  intPtr(45),
		},
	}}
}

func intPtr(v int) *int { return &v }

func testDumps() []TableDump {
	return []TableDump{
		{
			Table: constants.TablePhysicalBlocks,
			Text: `INSERT INTO physical_blocks VALUES
(101, 'TV-2', 'North Bay', 'Tierra Verde', 120.5),
(102, 'A-1', 'Hill Terrace', 'Altamira', 80),
(101, 'TV-2', 'North Bay', 'Tierra Verde', 120.5),
(103, 'ZZ-1', 'Lost Plot', 'Nowhere Farm', 10),
(999, 'TV-9', 'unterminated;`,
		},
		{
			Table: constants.TableBlocks,
			Text: `INSERT INTO blocks VALUES
('{"watering_frequency_days": 2}', 12, 'TVGH-03', 'greenhouse', 500, 'growing', '2025-01-01', 'tomato'),
('{}', 13, 'TV-4', 'tunnel', 40, 'empty', NULL, NULL);`,
		},
		{
			Table: constants.TableHarvests,
			Text:  `INSERT INTO harvests VALUES (55, 'H-55', 'TVGH-03', 'tomato', '2025-03-01', 12.25, 'A');`,
		},
	}
}

func TestRunCountsEveryRow(t *testing.T) {
	r := NewRunner(testSeeds(), nil, WithCatalog(testCatalog()))

	result, err := r.Run(context.Background(), testDumps())
	require.NoError(t, err)

	pb := result.Summary.Table(constants.TablePhysicalBlocks)
	assert.Equal(t, 4, pb.Parsed)
	assert.Equal(t, 2, pb.Mapped)
	assert.Equal(t, 1, pb.Skipped[constants.SkipDuplicate])
	assert.Equal(t, 1, pb.Skipped[constants.SkipUnresolvedRef])
	assert.Equal(t, 1, pb.Skipped[constants.SkipMalformed])

	blocks := result.Summary.Table(constants.TableBlocks)
	assert.Equal(t, 2, blocks.Parsed)
	assert.Equal(t, 2, blocks.Mapped)

	totals := result.Summary.Totals()
	assert.Equal(t, 7, totals.Parsed)
	assert.Equal(t, 5, totals.Mapped)
	assert.Len(t, result.Entities, 5)
}

func TestRunProjectsCatalogCrops(t *testing.T) {
	r := NewRunner(testSeeds(), nil, WithCatalog(testCatalog()))

	result, err := r.Run(context.Background(), testDumps())
	require.NoError(t, err)

	var tomato, idle *entity.Block
	for _, rec := range result.Entities {
		b, ok := rec.(*entity.Block)
		if !ok {
			continue
		}
		switch b.LegacyCode {
		case "TVGH-03":
			tomato = b
		case "TV-4":
			idle = b
		}
	}
	require.NotNil(t, tomato)
	require.NotNil(t, idle)

	require.NotEmpty(t, tomato.ExpectedChanges)
	assert.Equal(t, time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC),
		tomato.ExpectedChanges[entity.StageHarvesting])
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC),
		tomato.ExpectedChanges[entity.StageCleaning])

	// No crop, no planting date: nothing to project.
	assert.Empty(t, idle.ExpectedChanges)
}

func TestRunIsRepeatable(t *testing.T) {
	first, err := NewRunner(testSeeds(), nil).Run(context.Background(), testDumps())
	require.NoError(t, err)
	second, err := NewRunner(testSeeds(), nil).Run(context.Background(), testDumps())
	require.NoError(t, err)

	assert.Equal(t, len(first.Entities), len(second.Entities))
	assert.Equal(t, first.Summary.Totals(), second.Summary.Totals())

	// Derived IDs are stable, so the same rows mint the same keys.
	ids := func(rs []entity.Canonical) map[uuid.UUID]bool {
		out := make(map[uuid.UUID]bool, len(rs))
		for _, r := range rs {
			out[r.EntityID()] = true
		}
		return out
	}
	assert.Equal(t, ids(first.Entities), ids(second.Entities))
}

func TestRunSinkCreatesAtMostOncePerKey(t *testing.T) {
	sink := newFakeSink()

	result, err := NewRunner(testSeeds(), nil, WithSink(sink)).Run(context.Background(), testDumps())
	require.NoError(t, err)
	require.Equal(t, len(result.Entities), sink.created)

	// Re-running against the same store creates nothing new.
	_, err = NewRunner(testSeeds(), nil, WithSink(sink)).Run(context.Background(), testDumps())
	require.NoError(t, err)
	assert.Equal(t, len(result.Entities), sink.created)
}

func TestRunLinksDependentsAfterBlocks(t *testing.T) {
	// The harvests dump is listed first, and the block keeps its UUID-shaped
	// legacy id; the harvest must still join to that exact block.
	dumps := []TableDump{
		{
			Table: constants.TableHarvests,
			Text:  `INSERT INTO harvests VALUES (55, 'H-55', 'TVGH-03', 'tomato', '2025-03-01', 12.25, 'A');`,
		},
		{
			Table: constants.TableBlocks,
			Text:  `INSERT INTO blocks VALUES ('{}', 'c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234', 'TVGH-03', 'greenhouse', 500, 'growing', '2025-01-01', 'tomato');`,
		},
	}

	result, err := NewRunner(testSeeds(), nil).Run(context.Background(), dumps)
	require.NoError(t, err)

	var block *entity.Block
	var harvest *entity.Harvest
	for _, rec := range result.Entities {
		switch e := rec.(type) {
		case *entity.Block:
			block = e
		case *entity.Harvest:
			harvest = e
		}
	}
	require.NotNil(t, block)
	require.NotNil(t, harvest)
	assert.Equal(t, "c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234", block.ID.String())
	assert.Equal(t, block.ID, harvest.BlockID)
}

func TestRunCountsHarvestWithoutBlock(t *testing.T) {
	dumps := []TableDump{
		{
			Table: constants.TableHarvests,
			Text:  `(55, 'H-55', 'TV-9', 'tomato', '2025-03-01', 2.0, NULL)`,
		},
	}

	result, err := NewRunner(testSeeds(), nil).Run(context.Background(), dumps)
	require.NoError(t, err)

	st := result.Summary.Table(constants.TableHarvests)
	assert.Equal(t, 1, st.Parsed)
	assert.Zero(t, st.Mapped)
	assert.Equal(t, 1, st.Skipped[constants.SkipUnresolvedRef])
	assert.Empty(t, result.Entities)
}

func TestRunWithoutSeedsFails(t *testing.T) {
	_, err := NewRunner(nil, nil).Run(context.Background(), testDumps())
	require.Error(t, err)
}
