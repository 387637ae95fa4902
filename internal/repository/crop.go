package repository

import (
	"context"
	"log/slog"

	"github.com/agrobase-io/agrobase/gen/ent"
	entcrop "github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/internal/common"
	"github.com/agrobase-io/agrobase/internal/entity"
)

// CropSeed is one catalog entry loaded before a run (the plant catalog is an
// external collaborator; this repository is its read side plus a seed helper
// for self-contained runs).
type CropSeed struct {
	Name            string
	Variety         string
	GerminationDays *int
	VegetativeDays  *int
	FloweringDays   *int
	TotalCycleDays  *int
}

// CropCatalog resolves crops to growth-cycle profiles.
type CropCatalog struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCropCatalog(client *ent.Client, logger *slog.Logger) *CropCatalog {
	if logger == nil {
		logger = slog.Default()
	}
	return &CropCatalog{client: client, logger: logger}
}

// GrowthCycleByName returns the stage-duration profile for a crop. A missing
// catalog entry yields common.ErrNotFound: reportable, never fatal to a run.
func (c *CropCatalog) GrowthCycleByName(ctx context.Context, cropName string) (entity.GrowthCycle, error) {
	row, err := c.client.Crop.Query().
		Where(entcrop.NameEqualFold(cropName)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.GrowthCycle{}, common.NewAppError("CATALOG_MISS", "no catalog entry for crop "+cropName, common.ErrNotFound)
		}
		c.logger.Error("failed to query crop catalog", "crop", cropName, "error", err)
		return entity.GrowthCycle{}, err
	}
	return entity.GrowthCycle{
		GerminationDays: row.GerminationDays,
		VegetativeDays:  row.VegetativeDays,
		FloweringDays:   row.FloweringDays,
		TotalCycleDays:  row.TotalCycleDays,
	}, nil
}

// Seed loads catalog entries that are not already present, keyed by name.
func (c *CropCatalog) Seed(ctx context.Context, seeds []CropSeed) error {
	for _, s := range seeds {
		exists, err := c.client.Crop.Query().
			Where(entcrop.NameEqualFold(s.Name)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			continue
		}
		err = c.client.Crop.Create().
			SetName(s.Name).
			SetVariety(s.Variety).
			SetNillableGerminationDays(s.GerminationDays).
			SetNillableVegetativeDays(s.VegetativeDays).
			SetNillableFloweringDays(s.FloweringDays).
			SetNillableTotalCycleDays(s.TotalCycleDays).
			Exec(ctx)
		if err != nil {
			c.logger.Error("failed to seed crop", "crop", s.Name, "error", err)
			return err
		}
	}
	return nil
}
