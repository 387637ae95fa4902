package entity

import (
	"time"

	"github.com/google/uuid"
)

// Harvest is one recorded picking event on a block.
type Harvest struct {
	ID         uuid.UUID `json:"id"`
	BlockID    uuid.UUID `json:"block_id"`
	LegacyCode string    `json:"legacy_code"`
	CropName   string    `json:"crop_name"`
	Date       time.Time `json:"date"`
	QuantityKg float64   `json:"quantity_kg"`
	Grade      string    `json:"grade,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *Harvest) EntityID() uuid.UUID { return h.ID }
func (h *Harvest) Legacy() string      { return h.LegacyCode }
func (h *Harvest) EntityKind() Kind    { return KindHarvest }
