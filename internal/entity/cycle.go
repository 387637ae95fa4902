package entity

import (
	"time"

	"github.com/google/uuid"
)

// GrowthCycle is a crop's stage-duration profile, read from the crop catalog.
// A nil field means the catalog carries no value for that stage; for flowering
// that means the crop skips the stage entirely.
type GrowthCycle struct {
	GerminationDays *int `json:"germination_days,omitempty"`
	VegetativeDays  *int `json:"vegetative_days,omitempty"`
	FloweringDays   *int `json:"flowering_days,omitempty"`
	TotalCycleDays  *int `json:"total_cycle_days,omitempty"`
}

// Stage names the projected lifecycle milestones of one planting.
type Stage string

const (
	StagePlanted    Stage = "planted"
	StageGrowing    Stage = "growing"
	StageFruiting   Stage = "fruiting"
	StageHarvesting Stage = "harvesting"
	StageCleaning   Stage = "cleaning"
)

// ExpectedStatusChanges maps a stage to its projected calendar date. It is
// always recomputed in full and overwritten on the owning block, never patched.
type ExpectedStatusChanges map[Stage]time.Time

// ArchivedCycle is a completed planting cycle imported from the legacy export.
type ArchivedCycle struct {
	ID           uuid.UUID  `json:"id"`
	BlockID      uuid.UUID  `json:"block_id"`
	FarmID       uuid.UUID  `json:"farm_id"`
	LegacyCode   string     `json:"legacy_code"`
	CropName     string     `json:"crop_name"`
	PlantingDate time.Time  `json:"planting_date"`
	ClearedDate  *time.Time `json:"cleared_date,omitempty"`
	YieldKg      *float64   `json:"yield_kg,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (c *ArchivedCycle) EntityID() uuid.UUID { return c.ID }
func (c *ArchivedCycle) Legacy() string      { return c.LegacyCode }
func (c *ArchivedCycle) EntityKind() Kind    { return KindArchivedCycle }
