package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrobase-io/agrobase/internal/entity"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func TestProjectFullCycle(t *testing.T) {
	// Tomato-like profile: 5 germination, 20 vegetative, no flowering stage,
	// 45 days total.
	cycle := entity.GrowthCycle{
		GerminationDays: intPtr(5),
		VegetativeDays:  intPtr(20),
		FloweringDays:   intPtr(0),
		TotalCycleDays:  intPtr(45),
	}
	planted := day(2025, time.January, 1)

	changes := Project(planted, cycle)

	require.Len(t, changes, 5)
	assert.Equal(t, day(2025, time.January, 1), changes[entity.StagePlanted])
	assert.Equal(t, day(2025, time.January, 6), changes[entity.StageGrowing])
	assert.Equal(t, day(2025, time.January, 26), changes[entity.StageFruiting])
	assert.Equal(t, day(2025, time.January, 26), changes[entity.StageHarvesting])
	assert.Equal(t, day(2025, time.February, 15), changes[entity.StageCleaning])
}

func TestProjectZeroAndAbsentFloweringAgree(t *testing.T) {
	// A crop whose profile omits flowering and one that records 0 days must
	// project identically.
	planted := day(2025, time.March, 10)
	withZero := entity.GrowthCycle{
		GerminationDays: intPtr(3),
		VegetativeDays:  intPtr(12),
		FloweringDays:   intPtr(0),
		TotalCycleDays:  intPtr(30),
	}
	withNil := withZero
	withNil.FloweringDays = nil

	assert.Equal(t, Project(planted, withZero), Project(planted, withNil))
}

func TestProjectFloweringShiftsHarvesting(t *testing.T) {
	cycle := entity.GrowthCycle{
		GerminationDays: intPtr(5),
		VegetativeDays:  intPtr(20),
		FloweringDays:   intPtr(7),
	}
	planted := day(2025, time.January, 1)

	changes := Project(planted, cycle)

	assert.Equal(t, day(2025, time.January, 26), changes[entity.StageFruiting])
	assert.Equal(t, day(2025, time.February, 2), changes[entity.StageHarvesting])
	// No total cycle days, so no cleaning entry.
	_, ok := changes[entity.StageCleaning]
	assert.False(t, ok)
}

func TestProjectMissingGermination(t *testing.T) {
	// Without germination nothing downstream of planting can be derived,
	// but cleaning still projects from the total.
	cycle := entity.GrowthCycle{
		VegetativeDays: intPtr(20),
		TotalCycleDays: intPtr(40),
	}
	planted := day(2025, time.June, 1)

	changes := Project(planted, cycle)

	require.Len(t, changes, 2)
	assert.Equal(t, planted, changes[entity.StagePlanted])
	assert.Equal(t, day(2025, time.July, 11), changes[entity.StageCleaning])
}

func TestProjectBlock(t *testing.T) {
	planted := day(2025, time.January, 1)
	cycle := entity.GrowthCycle{GerminationDays: intPtr(5)}

	block := &entity.Block{PlantingDate: &planted}
	changes, err := ProjectBlock(block, cycle)
	require.NoError(t, err)
	assert.Equal(t, day(2025, time.January, 6), changes[entity.StageGrowing])

	empty := &entity.Block{}
	_, err = ProjectBlock(empty, cycle)
	assert.ErrorIs(t, err, ErrNoActiveCycle)
}
