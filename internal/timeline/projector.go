// Package timeline projects expected lifecycle transition dates for a block
// from a crop's growth-cycle profile. Projections are advisory: they never
// touch the block's authoritative state.
package timeline

import (
	"errors"
	"time"

	"github.com/agrobase-io/agrobase/internal/entity"
)

// ErrNoActiveCycle is returned when a projection is requested for a block
// that has no planting in progress. Projecting from a null planting date
// would fabricate dates, so the call refuses instead.
var ErrNoActiveCycle = errors.New("no active cycle")

// Project computes the full expected-status-changes map for one planting.
// It is pure and deterministic; callers replace any previously stored map
// wholesale with the result, never patch individual entries.
//
// Each stage is included only when its prerequisite durations are present:
//
//	planted     always
//	growing     germination
//	fruiting    germination + vegetative
//	harvesting  germination + vegetative, plus flowering only when > 0
//	cleaning    total cycle days (independent of the other stages)
//
// A crop with no flowering stage (nil or zero) reaches harvesting on the
// fruiting date.
func Project(planted time.Time, cycle entity.GrowthCycle) entity.ExpectedStatusChanges {
	changes := entity.ExpectedStatusChanges{
		entity.StagePlanted: planted,
	}

	if cycle.GerminationDays != nil {
		growing := planted.AddDate(0, 0, *cycle.GerminationDays)
		changes[entity.StageGrowing] = growing

		if cycle.VegetativeDays != nil {
			fruiting := growing.AddDate(0, 0, *cycle.VegetativeDays)
			changes[entity.StageFruiting] = fruiting

			harvesting := fruiting
			if cycle.FloweringDays != nil && *cycle.FloweringDays > 0 {
				harvesting = harvesting.AddDate(0, 0, *cycle.FloweringDays)
			}
			changes[entity.StageHarvesting] = harvesting
		}
	}

	if cycle.TotalCycleDays != nil {
		changes[entity.StageCleaning] = planted.AddDate(0, 0, *cycle.TotalCycleDays)
	}

	return changes
}

// ProjectBlock recomputes the map for a block. Recomputation is permitted in
// any lifecycle state, but a block with no planting date (typically one
// sitting empty between cycles) has nothing to project and the call refuses
// rather than fabricate dates from a zero time.
func ProjectBlock(block *entity.Block, cycle entity.GrowthCycle) (entity.ExpectedStatusChanges, error) {
	if block.PlantingDate == nil {
		return nil, ErrNoActiveCycle
	}
	return Project(*block.PlantingDate, cycle), nil
}
