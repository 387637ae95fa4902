package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/agrobase-io/agrobase/internal/lifecycle"
)

// PhysicalBlock is a physical structure (greenhouse bay, open-field section)
// that hosts one or more virtual blocks.
type PhysicalBlock struct {
	ID         uuid.UUID `json:"id"`
	FarmID     uuid.UUID `json:"farm_id"`
	LegacyCode string    `json:"legacy_code"`
	Name       string    `json:"name"`
	AreaSqM    *float64  `json:"area_sq_m,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *PhysicalBlock) EntityID() uuid.UUID { return b.ID }
func (b *PhysicalBlock) Legacy() string      { return b.LegacyCode }
func (b *PhysicalBlock) EntityKind() Kind    { return KindPhysicalBlock }

// Block is the cultivable unit tracked through a planting lifecycle.
// ExpectedChanges is predictive only; State is the authoritative field.
type Block struct {
	ID                    uuid.UUID             `json:"id"`
	FarmID                uuid.UUID             `json:"farm_id"`
	PhysicalBlockID       *uuid.UUID            `json:"physical_block_id,omitempty"`
	LegacyCode            string                `json:"legacy_code"`
	SequenceNumber        int                   `json:"sequence_number"`
	BlockType             string                `json:"block_type"`
	MaxCapacity           int                   `json:"max_capacity"`
	State                 lifecycle.State       `json:"state"`
	CropID                *uuid.UUID            `json:"crop_id,omitempty"`
	CropName              string                `json:"crop_name,omitempty"`
	PlantingDate          *time.Time            `json:"planting_date,omitempty"`
	WateringFrequencyDays int                   `json:"watering_frequency_days"`
	ExpectedChanges       ExpectedStatusChanges `json:"expected_status_changes,omitempty"`
	CreatedAt             time.Time             `json:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at"`
}

func (b *Block) EntityID() uuid.UUID { return b.ID }
func (b *Block) Legacy() string      { return b.LegacyCode }
func (b *Block) EntityKind() Kind    { return KindBlock }
