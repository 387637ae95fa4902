package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agrobase-io/agrobase/gen/ent"
	entblock "github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/lifecycle"
)

// BlockRepository serves the blocks side of the store: natural-key lookup and
// full-replacement projection writes.
type BlockRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBlockRepository(client *ent.Client, logger *slog.Logger) *BlockRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlockRepository{client: client, logger: logger}
}

// GetByNaturalKey looks a block up by its entity id.
func (r *BlockRepository) GetByNaturalKey(ctx context.Context, id uuid.UUID) (*entity.Block, error) {
	row, err := r.client.Block.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toBlock(row), nil
}

// GetByLegacyCode looks a block up by farm and legacy code, for traceability
// tooling only; the entity id is the key everything else joins on.
func (r *BlockRepository) GetByLegacyCode(ctx context.Context, farmID uuid.UUID, code string) (*entity.Block, error) {
	row, err := r.client.Block.Query().
		Where(entblock.FarmID(farmID), entblock.LegacyCode(code)).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return toBlock(row), nil
}

// ListByState returns blocks currently in the given lifecycle state.
func (r *BlockRepository) ListByState(ctx context.Context, state lifecycle.State) ([]*entity.Block, error) {
	rows, err := r.client.Block.Query().
		Where(entblock.State(string(state))).
		Order(entblock.ByLegacyCode()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list blocks", "state", state, "error", err)
		return nil, err
	}
	out := make([]*entity.Block, len(rows))
	for i, row := range rows {
		out[i] = toBlock(row)
	}
	return out, nil
}

// ReplaceExpectedChanges overwrites a block's projected timeline wholesale.
// Partial patches are never issued, so stale mixes of old and new projected
// dates cannot occur.
func (r *BlockRepository) ReplaceExpectedChanges(ctx context.Context, id uuid.UUID, changes entity.ExpectedStatusChanges) error {
	col := make(map[string]time.Time, len(changes))
	for stage, date := range changes {
		col[string(stage)] = date
	}
	err := r.client.Block.UpdateOneID(id).
		SetExpectedStatusChanges(col).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to replace expected changes", "block_id", id, "error", err)
	}
	return err
}

func toBlock(row *ent.Block) *entity.Block {
	b := &entity.Block{
		ID:                    row.ID,
		FarmID:                row.FarmID,
		PhysicalBlockID:       row.PhysicalBlockID,
		LegacyCode:            row.LegacyCode,
		SequenceNumber:        row.SequenceNumber,
		BlockType:             row.BlockType,
		MaxCapacity:           row.MaxCapacity,
		State:                 lifecycle.State(row.State),
		CropName:              row.CropName,
		PlantingDate:          row.PlantingDate,
		WateringFrequencyDays: row.WateringFrequencyDays,
		CreatedAt:             row.CreatedAt,
		UpdatedAt:             row.UpdatedAt,
	}
	if len(row.ExpectedStatusChanges) > 0 {
		b.ExpectedChanges = make(entity.ExpectedStatusChanges, len(row.ExpectedStatusChanges))
		for stage, date := range row.ExpectedStatusChanges {
			b.ExpectedChanges[entity.Stage(stage)] = date
		}
	}
	return b
}
