package entity

import (
	"time"

	"github.com/google/uuid"
)

// PriceRecord is a dated market price for a crop, imported for reporting.
type PriceRecord struct {
	ID           uuid.UUID `json:"id"`
	LegacyCode   string    `json:"legacy_code"`
	CropName     string    `json:"crop_name"`
	Date         time.Time `json:"date"`
	PricePerKg   float64   `json:"price_per_kg"`
	CurrencyCode string    `json:"currency_code"`
	CreatedAt    time.Time `json:"created_at"`
}

func (p *PriceRecord) EntityID() uuid.UUID { return p.ID }
func (p *PriceRecord) Legacy() string      { return p.LegacyCode }
func (p *PriceRecord) EntityKind() Kind    { return KindPriceRecord }
