package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agrobase-io/agrobase/gen/ent"
	"github.com/agrobase-io/agrobase/internal/entity"
)

// CanonicalStore persists migration output. It only ever issues
// check-then-insert writes keyed by entity id, so re-running a migration
// against a populated store is a no-op for already-present keys.
type CanonicalStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCanonicalStore(client *ent.Client, logger *slog.Logger) *CanonicalStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &CanonicalStore{client: client, logger: logger}
}

// UpsertIfAbsent inserts the record unless its entity id already exists.
// created=false means the key was present and the stored record was left
// untouched; a blind overwrite is never issued.
func (s *CanonicalStore) UpsertIfAbsent(ctx context.Context, e entity.Canonical) (bool, error) {
	switch rec := e.(type) {
	case *entity.Farm:
		return s.upsertFarm(ctx, rec)
	case *entity.PhysicalBlock:
		return s.upsertPhysicalBlock(ctx, rec)
	case *entity.Block:
		return s.upsertBlock(ctx, rec)
	case *entity.ArchivedCycle:
		return s.upsertArchivedCycle(ctx, rec)
	case *entity.Harvest:
		return s.upsertHarvest(ctx, rec)
	case *entity.PriceRecord:
		return s.upsertPriceRecord(ctx, rec)
	}
	return false, fmt.Errorf("unsupported entity kind %q", e.EntityKind())
}

func (s *CanonicalStore) upsertFarm(ctx context.Context, f *entity.Farm) (bool, error) {
	if _, err := s.client.Farm.Get(ctx, f.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	err := s.client.Farm.Create().
		SetID(f.ID).
		SetLegacyCode(f.LegacyCode).
		SetName(f.Name).
		SetLocation(f.Location).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to create farm", "id", f.ID, "legacy_code", f.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

func (s *CanonicalStore) upsertPhysicalBlock(ctx context.Context, b *entity.PhysicalBlock) (bool, error) {
	if _, err := s.client.PhysicalBlock.Get(ctx, b.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	err := s.client.PhysicalBlock.Create().
		SetID(b.ID).
		SetFarmID(b.FarmID).
		SetLegacyCode(b.LegacyCode).
		SetName(b.Name).
		SetNillableAreaSqM(b.AreaSqM).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to create physical block", "id", b.ID, "legacy_code", b.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

func (s *CanonicalStore) upsertBlock(ctx context.Context, b *entity.Block) (bool, error) {
	if _, err := s.client.Block.Get(ctx, b.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	builder := s.client.Block.Create().
		SetID(b.ID).
		SetFarmID(b.FarmID).
		SetNillablePhysicalBlockID(b.PhysicalBlockID).
		SetLegacyCode(b.LegacyCode).
		SetSequenceNumber(b.SequenceNumber).
		SetBlockType(b.BlockType).
		SetMaxCapacity(b.MaxCapacity).
		SetState(string(b.State)).
		SetCropName(b.CropName).
		SetNillablePlantingDate(b.PlantingDate).
		SetWateringFrequencyDays(b.WateringFrequencyDays)
	if len(b.ExpectedChanges) > 0 {
		builder = builder.SetExpectedStatusChanges(expectedChangesColumn(b.ExpectedChanges))
	}
	if err := builder.Exec(ctx); err != nil {
		s.logger.Error("failed to create block", "id", b.ID, "legacy_code", b.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

func (s *CanonicalStore) upsertArchivedCycle(ctx context.Context, c *entity.ArchivedCycle) (bool, error) {
	if _, err := s.client.ArchivedCycle.Get(ctx, c.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	if _, err := s.client.Block.Get(ctx, c.BlockID); err != nil {
		if ent.IsNotFound(err) {
			// Orphaned legacy row: its block never made it into the store.
			s.logger.Warn("archived cycle references unknown block, not persisted", "id", c.ID, "legacy_code", c.LegacyCode)
			return false, nil
		}
		return false, err
	}
	err := s.client.ArchivedCycle.Create().
		SetID(c.ID).
		SetBlockID(c.BlockID).
		SetFarmID(c.FarmID).
		SetLegacyCode(c.LegacyCode).
		SetCropName(c.CropName).
		SetPlantingDate(c.PlantingDate).
		SetNillableClearedDate(c.ClearedDate).
		SetNillableYieldKg(c.YieldKg).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to create archived cycle", "id", c.ID, "legacy_code", c.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

func (s *CanonicalStore) upsertHarvest(ctx context.Context, h *entity.Harvest) (bool, error) {
	if _, err := s.client.Harvest.Get(ctx, h.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	if _, err := s.client.Block.Get(ctx, h.BlockID); err != nil {
		if ent.IsNotFound(err) {
			s.logger.Warn("harvest references unknown block, not persisted", "id", h.ID, "legacy_code", h.LegacyCode)
			return false, nil
		}
		return false, err
	}
	err := s.client.Harvest.Create().
		SetID(h.ID).
		SetBlockID(h.BlockID).
		SetLegacyCode(h.LegacyCode).
		SetCropName(h.CropName).
		SetDate(h.Date).
		SetQuantityKg(h.QuantityKg).
		SetGrade(h.Grade).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to create harvest", "id", h.ID, "legacy_code", h.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

func (s *CanonicalStore) upsertPriceRecord(ctx context.Context, p *entity.PriceRecord) (bool, error) {
	if _, err := s.client.PriceRecord.Get(ctx, p.ID); err == nil {
		return false, nil
	} else if !ent.IsNotFound(err) {
		return false, err
	}
	err := s.client.PriceRecord.Create().
		SetID(p.ID).
		SetLegacyCode(p.LegacyCode).
		SetCropName(p.CropName).
		SetDate(p.Date).
		SetPricePerKg(p.PricePerKg).
		SetCurrencyCode(p.CurrencyCode).
		Exec(ctx)
	if err != nil {
		s.logger.Error("failed to create price record", "id", p.ID, "legacy_code", p.LegacyCode, "error", err)
		return false, err
	}
	return true, nil
}

// expectedChangesColumn flattens the typed stage map into the JSON column shape.
func expectedChangesColumn(changes entity.ExpectedStatusChanges) map[string]time.Time {
	out := make(map[string]time.Time, len(changes))
	for stage, date := range changes {
		out[string(stage)] = date
	}
	return out
}
