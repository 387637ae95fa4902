package repository

import (
	"context"
	"log/slog"

	"github.com/agrobase-io/agrobase/gen/ent"
	entfarm "github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/internal/legacy"
)

// FarmRepository reads and seeds the farm reference data a run resolves against.
type FarmRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFarmRepository(client *ent.Client, logger *slog.Logger) *FarmRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &FarmRepository{client: client, logger: logger}
}

// EnsureSeeds persists the fixed farm seed list, skipping codes already
// present.
func (r *FarmRepository) EnsureSeeds(ctx context.Context, seeds []legacy.FarmSeed) error {
	for _, s := range seeds {
		exists, err := r.client.Farm.Query().
			Where(entfarm.LegacyCode(s.Code)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		err = r.client.Farm.Create().
			SetID(s.ID).
			SetLegacyCode(s.Code).
			SetName(s.Name).
			Exec(ctx)
		if err != nil {
			r.logger.Error("failed to seed farm", "code", s.Code, "error", err)
			return err
		}
	}
	return nil
}

// CountFarms is used by health checks.
func (r *FarmRepository) CountFarms(ctx context.Context) (int, error) {
	return r.client.Farm.Query().Count(ctx)
}
