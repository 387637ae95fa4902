package main

import (
	"github.com/google/uuid"

	"github.com/agrobase-io/agrobase/internal/legacy"
	repo "github.com/agrobase-io/agrobase/internal/repository"
)

// defaultFarmSeeds is the fixed reference list the legacy deployment used.
// Prefixes are matched longest-first, so TVGH wins over TV for TVGH-* codes.
func defaultFarmSeeds() []legacy.FarmSeed {
	return []legacy.FarmSeed{
		{
			ID:   uuid.MustParse("6f1f7a2e-0b4c-4c83-9b0e-2f8a6a3f1d01"),
			Code: "TV",
			Name: "Tierra Verde",
		},
		{
			ID:    uuid.MustParse("6f1f7a2e-0b4c-4c83-9b0e-2f8a6a3f1d02"),
			Code:  "TVGH",
			Name:  "Tierra Verde Greenhouses",
			Alias: "TV Greenhouses",
		},
		{
			ID:   uuid.MustParse("6f1f7a2e-0b4c-4c83-9b0e-2f8a6a3f1d03"),
			Code: "A",
			Name: "Altamira",
		},
	}
}

func intPtr(v int) *int { return &v }

// defaultCropSeeds is a minimal catalog for self-contained runs; production
// runs read the catalog the collaborating service maintains.
func defaultCropSeeds() []repo.CropSeed {
	return []repo.CropSeed{
		{
			Name:            "tomato",
			Variety:         "roma",
			GerminationDays: intPtr(7),
			VegetativeDays:  intPtr(30),
			FloweringDays:   intPtr(20),
			TotalCycleDays:  intPtr(95),
		},
		{
			Name:            "lettuce",
			GerminationDays: intPtr(5),
			VegetativeDays:  intPtr(20),
			// no flowering stage: harvested straight out of vegetative
			TotalCycleDays: intPtr(45),
		},
		{
			Name:            "cucumber",
			GerminationDays: intPtr(6),
			VegetativeDays:  intPtr(25),
			FloweringDays:   intPtr(0),
			TotalCycleDays:  intPtr(70),
		},
	}
}
