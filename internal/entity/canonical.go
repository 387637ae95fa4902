package entity

import "github.com/google/uuid"

// Kind discriminates the canonical entity variants produced by a migration run.
type Kind string

const (
	KindFarm          Kind = "FARM"
	KindPhysicalBlock Kind = "PHYSICAL_BLOCK"
	KindBlock         Kind = "BLOCK"
	KindArchivedCycle Kind = "ARCHIVED_CYCLE"
	KindHarvest       Kind = "HARVEST"
	KindPriceRecord   Kind = "PRICE_RECORD"
)

// Canonical is any normalized record emitted by the migration pipeline.
// EntityID is the natural key for dedup and downstream reference; Legacy is
// the human-readable source code kept only for traceability.
type Canonical interface {
	EntityID() uuid.UUID
	Legacy() string
	EntityKind() Kind
}
