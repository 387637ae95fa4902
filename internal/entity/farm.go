package entity

import (
	"time"

	"github.com/google/uuid"
)

// Farm represents a farm site for data transfer between layers.
type Farm struct {
	ID         uuid.UUID `json:"id"`
	LegacyCode string    `json:"legacy_code"`
	Name       string    `json:"name"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (f *Farm) EntityID() uuid.UUID { return f.ID }
func (f *Farm) Legacy() string      { return f.LegacyCode }
func (f *Farm) EntityKind() Kind    { return KindFarm }
