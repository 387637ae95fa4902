// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/agrobase-io/agrobase/db/ent/schema"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	archivedcycleFields := schema.ArchivedCycle{}.Fields()
	_ = archivedcycleFields
	// archivedcycleDescLegacyCode is the schema descriptor for legacy_code field.
	archivedcycleDescLegacyCode := archivedcycleFields[3].Descriptor()
	// archivedcycle.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	archivedcycle.LegacyCodeValidator = archivedcycleDescLegacyCode.Validators[0].(func(string) error)
	// archivedcycleDescCreatedAt is the schema descriptor for created_at field.
	archivedcycleDescCreatedAt := archivedcycleFields[8].Descriptor()
	// archivedcycle.DefaultCreatedAt holds the default value on creation for the created_at field.
	archivedcycle.DefaultCreatedAt = archivedcycleDescCreatedAt.Default.(func() time.Time)
	// archivedcycleDescID is the schema descriptor for id field.
	archivedcycleDescID := archivedcycleFields[0].Descriptor()
	// archivedcycle.DefaultID holds the default value on creation for the id field.
	archivedcycle.DefaultID = archivedcycleDescID.Default.(func() uuid.UUID)
	blockFields := schema.Block{}.Fields()
	_ = blockFields
	// blockDescLegacyCode is the schema descriptor for legacy_code field.
	blockDescLegacyCode := blockFields[3].Descriptor()
	// block.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	block.LegacyCodeValidator = blockDescLegacyCode.Validators[0].(func(string) error)
	// blockDescSequenceNumber is the schema descriptor for sequence_number field.
	blockDescSequenceNumber := blockFields[4].Descriptor()
	// block.SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	block.SequenceNumberValidator = blockDescSequenceNumber.Validators[0].(func(int) error)
	// blockDescBlockType is the schema descriptor for block_type field.
	blockDescBlockType := blockFields[5].Descriptor()
	// block.BlockTypeValidator is a validator for the "block_type" field. It is called by the builders before save.
	block.BlockTypeValidator = blockDescBlockType.Validators[0].(func(string) error)
	// blockDescMaxCapacity is the schema descriptor for max_capacity field.
	blockDescMaxCapacity := blockFields[6].Descriptor()
	// block.MaxCapacityValidator is a validator for the "max_capacity" field. It is called by the builders before save.
	block.MaxCapacityValidator = blockDescMaxCapacity.Validators[0].(func(int) error)
	// blockDescState is the schema descriptor for state field.
	blockDescState := blockFields[7].Descriptor()
	// block.StateValidator is a validator for the "state" field. It is called by the builders before save.
	block.StateValidator = func() func(string) error {
		validators := blockDescState.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(state string) error {
			for _, fn := range fns {
				if err := fn(state); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// blockDescWateringFrequencyDays is the schema descriptor for watering_frequency_days field.
	blockDescWateringFrequencyDays := blockFields[10].Descriptor()
	// block.WateringFrequencyDaysValidator is a validator for the "watering_frequency_days" field. It is called by the builders before save.
	block.WateringFrequencyDaysValidator = blockDescWateringFrequencyDays.Validators[0].(func(int) error)
	// blockDescCreatedAt is the schema descriptor for created_at field.
	blockDescCreatedAt := blockFields[12].Descriptor()
	// block.DefaultCreatedAt holds the default value on creation for the created_at field.
	block.DefaultCreatedAt = blockDescCreatedAt.Default.(func() time.Time)
	// blockDescUpdatedAt is the schema descriptor for updated_at field.
	blockDescUpdatedAt := blockFields[13].Descriptor()
	// block.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	block.DefaultUpdatedAt = blockDescUpdatedAt.Default.(func() time.Time)
	// block.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	block.UpdateDefaultUpdatedAt = blockDescUpdatedAt.UpdateDefault.(func() time.Time)
	// blockDescID is the schema descriptor for id field.
	blockDescID := blockFields[0].Descriptor()
	// block.DefaultID holds the default value on creation for the id field.
	block.DefaultID = blockDescID.Default.(func() uuid.UUID)
	cropFields := schema.Crop{}.Fields()
	_ = cropFields
	// cropDescName is the schema descriptor for name field.
	cropDescName := cropFields[1].Descriptor()
	// crop.NameValidator is a validator for the "name" field. It is called by the builders before save.
	crop.NameValidator = cropDescName.Validators[0].(func(string) error)
	// cropDescGerminationDays is the schema descriptor for germination_days field.
	cropDescGerminationDays := cropFields[3].Descriptor()
	// crop.GerminationDaysValidator is a validator for the "germination_days" field. It is called by the builders before save.
	crop.GerminationDaysValidator = cropDescGerminationDays.Validators[0].(func(int) error)
	// cropDescVegetativeDays is the schema descriptor for vegetative_days field.
	cropDescVegetativeDays := cropFields[4].Descriptor()
	// crop.VegetativeDaysValidator is a validator for the "vegetative_days" field. It is called by the builders before save.
	crop.VegetativeDaysValidator = cropDescVegetativeDays.Validators[0].(func(int) error)
	// cropDescFloweringDays is the schema descriptor for flowering_days field.
	cropDescFloweringDays := cropFields[5].Descriptor()
	// crop.FloweringDaysValidator is a validator for the "flowering_days" field. It is called by the builders before save.
	crop.FloweringDaysValidator = cropDescFloweringDays.Validators[0].(func(int) error)
	// cropDescTotalCycleDays is the schema descriptor for total_cycle_days field.
	cropDescTotalCycleDays := cropFields[6].Descriptor()
	// crop.TotalCycleDaysValidator is a validator for the "total_cycle_days" field. It is called by the builders before save.
	crop.TotalCycleDaysValidator = cropDescTotalCycleDays.Validators[0].(func(int) error)
	// cropDescCreatedAt is the schema descriptor for created_at field.
	cropDescCreatedAt := cropFields[7].Descriptor()
	// crop.DefaultCreatedAt holds the default value on creation for the created_at field.
	crop.DefaultCreatedAt = cropDescCreatedAt.Default.(func() time.Time)
	// cropDescUpdatedAt is the schema descriptor for updated_at field.
	cropDescUpdatedAt := cropFields[8].Descriptor()
	// crop.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	crop.DefaultUpdatedAt = cropDescUpdatedAt.Default.(func() time.Time)
	// crop.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	crop.UpdateDefaultUpdatedAt = cropDescUpdatedAt.UpdateDefault.(func() time.Time)
	// cropDescID is the schema descriptor for id field.
	cropDescID := cropFields[0].Descriptor()
	// crop.DefaultID holds the default value on creation for the id field.
	crop.DefaultID = cropDescID.Default.(func() uuid.UUID)
	farmFields := schema.Farm{}.Fields()
	_ = farmFields
	// farmDescLegacyCode is the schema descriptor for legacy_code field.
	farmDescLegacyCode := farmFields[1].Descriptor()
	// farm.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	farm.LegacyCodeValidator = farmDescLegacyCode.Validators[0].(func(string) error)
	// farmDescName is the schema descriptor for name field.
	farmDescName := farmFields[2].Descriptor()
	// farm.NameValidator is a validator for the "name" field. It is called by the builders before save.
	farm.NameValidator = farmDescName.Validators[0].(func(string) error)
	// farmDescCreatedAt is the schema descriptor for created_at field.
	farmDescCreatedAt := farmFields[4].Descriptor()
	// farm.DefaultCreatedAt holds the default value on creation for the created_at field.
	farm.DefaultCreatedAt = farmDescCreatedAt.Default.(func() time.Time)
	// farmDescUpdatedAt is the schema descriptor for updated_at field.
	farmDescUpdatedAt := farmFields[5].Descriptor()
	// farm.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	farm.DefaultUpdatedAt = farmDescUpdatedAt.Default.(func() time.Time)
	// farm.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	farm.UpdateDefaultUpdatedAt = farmDescUpdatedAt.UpdateDefault.(func() time.Time)
	// farmDescID is the schema descriptor for id field.
	farmDescID := farmFields[0].Descriptor()
	// farm.DefaultID holds the default value on creation for the id field.
	farm.DefaultID = farmDescID.Default.(func() uuid.UUID)
	harvestFields := schema.Harvest{}.Fields()
	_ = harvestFields
	// harvestDescLegacyCode is the schema descriptor for legacy_code field.
	harvestDescLegacyCode := harvestFields[2].Descriptor()
	// harvest.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	harvest.LegacyCodeValidator = harvestDescLegacyCode.Validators[0].(func(string) error)
	// harvestDescQuantityKg is the schema descriptor for quantity_kg field.
	harvestDescQuantityKg := harvestFields[5].Descriptor()
	// harvest.QuantityKgValidator is a validator for the "quantity_kg" field. It is called by the builders before save.
	harvest.QuantityKgValidator = harvestDescQuantityKg.Validators[0].(func(float64) error)
	// harvestDescCreatedAt is the schema descriptor for created_at field.
	harvestDescCreatedAt := harvestFields[7].Descriptor()
	// harvest.DefaultCreatedAt holds the default value on creation for the created_at field.
	harvest.DefaultCreatedAt = harvestDescCreatedAt.Default.(func() time.Time)
	// harvestDescID is the schema descriptor for id field.
	harvestDescID := harvestFields[0].Descriptor()
	// harvest.DefaultID holds the default value on creation for the id field.
	harvest.DefaultID = harvestDescID.Default.(func() uuid.UUID)
	physicalblockFields := schema.PhysicalBlock{}.Fields()
	_ = physicalblockFields
	// physicalblockDescLegacyCode is the schema descriptor for legacy_code field.
	physicalblockDescLegacyCode := physicalblockFields[2].Descriptor()
	// physicalblock.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	physicalblock.LegacyCodeValidator = physicalblockDescLegacyCode.Validators[0].(func(string) error)
	// physicalblockDescCreatedAt is the schema descriptor for created_at field.
	physicalblockDescCreatedAt := physicalblockFields[5].Descriptor()
	// physicalblock.DefaultCreatedAt holds the default value on creation for the created_at field.
	physicalblock.DefaultCreatedAt = physicalblockDescCreatedAt.Default.(func() time.Time)
	// physicalblockDescUpdatedAt is the schema descriptor for updated_at field.
	physicalblockDescUpdatedAt := physicalblockFields[6].Descriptor()
	// physicalblock.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	physicalblock.DefaultUpdatedAt = physicalblockDescUpdatedAt.Default.(func() time.Time)
	// physicalblock.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	physicalblock.UpdateDefaultUpdatedAt = physicalblockDescUpdatedAt.UpdateDefault.(func() time.Time)
	// physicalblockDescID is the schema descriptor for id field.
	physicalblockDescID := physicalblockFields[0].Descriptor()
	// physicalblock.DefaultID holds the default value on creation for the id field.
	physicalblock.DefaultID = physicalblockDescID.Default.(func() uuid.UUID)
	pricerecordFields := schema.PriceRecord{}.Fields()
	_ = pricerecordFields
	// pricerecordDescLegacyCode is the schema descriptor for legacy_code field.
	pricerecordDescLegacyCode := pricerecordFields[2].Descriptor()
	// pricerecord.LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	pricerecord.LegacyCodeValidator = pricerecordDescLegacyCode.Validators[0].(func(string) error)
	// pricerecordDescCropName is the schema descriptor for crop_name field.
	pricerecordDescCropName := pricerecordFields[3].Descriptor()
	// pricerecord.CropNameValidator is a validator for the "crop_name" field. It is called by the builders before save.
	pricerecord.CropNameValidator = pricerecordDescCropName.Validators[0].(func(string) error)
	// pricerecordDescPricePerKg is the schema descriptor for price_per_kg field.
	pricerecordDescPricePerKg := pricerecordFields[5].Descriptor()
	// pricerecord.PricePerKgValidator is a validator for the "price_per_kg" field. It is called by the builders before save.
	pricerecord.PricePerKgValidator = pricerecordDescPricePerKg.Validators[0].(func(float64) error)
	// pricerecordDescCurrencyCode is the schema descriptor for currency_code field.
	pricerecordDescCurrencyCode := pricerecordFields[6].Descriptor()
	// pricerecord.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	pricerecord.CurrencyCodeValidator = func() func(string) error {
		validators := pricerecordDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// pricerecordDescCreatedAt is the schema descriptor for created_at field.
	pricerecordDescCreatedAt := pricerecordFields[7].Descriptor()
	// pricerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	pricerecord.DefaultCreatedAt = pricerecordDescCreatedAt.Default.(func() time.Time)
	// pricerecordDescID is the schema descriptor for id field.
	pricerecordDescID := pricerecordFields[0].Descriptor()
	// pricerecord.DefaultID holds the default value on creation for the id field.
	pricerecord.DefaultID = pricerecordDescID.Default.(func() uuid.UUID)
}
