// Code generated by ent, DO NOT EDIT.

package block

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldID, id))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldFarmID, v))
}

// PhysicalBlockID applies equality check predicate on the "physical_block_id" field. It's identical to PhysicalBlockIDEQ.
func PhysicalBlockID(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldPhysicalBlockID, v))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldLegacyCode, v))
}

// SequenceNumber applies equality check predicate on the "sequence_number" field. It's identical to SequenceNumberEQ.
func SequenceNumber(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldSequenceNumber, v))
}

// BlockType applies equality check predicate on the "block_type" field. It's identical to BlockTypeEQ.
func BlockType(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldBlockType, v))
}

// MaxCapacity applies equality check predicate on the "max_capacity" field. It's identical to MaxCapacityEQ.
func MaxCapacity(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldMaxCapacity, v))
}

// State applies equality check predicate on the "state" field. It's identical to StateEQ.
func State(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldState, v))
}

// CropName applies equality check predicate on the "crop_name" field. It's identical to CropNameEQ.
func CropName(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldCropName, v))
}

// PlantingDate applies equality check predicate on the "planting_date" field. It's identical to PlantingDateEQ.
func PlantingDate(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldPlantingDate, v))
}

// WateringFrequencyDays applies equality check predicate on the "watering_frequency_days" field. It's identical to WateringFrequencyDaysEQ.
func WateringFrequencyDays(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldWateringFrequencyDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldFarmID, vs...))
}

// PhysicalBlockIDEQ applies the EQ predicate on the "physical_block_id" field.
func PhysicalBlockIDEQ(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldPhysicalBlockID, v))
}

// PhysicalBlockIDNEQ applies the NEQ predicate on the "physical_block_id" field.
func PhysicalBlockIDNEQ(v uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldPhysicalBlockID, v))
}

// PhysicalBlockIDIn applies the In predicate on the "physical_block_id" field.
func PhysicalBlockIDIn(vs ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldPhysicalBlockID, vs...))
}

// PhysicalBlockIDNotIn applies the NotIn predicate on the "physical_block_id" field.
func PhysicalBlockIDNotIn(vs ...uuid.UUID) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldPhysicalBlockID, vs...))
}

// PhysicalBlockIDIsNil applies the IsNil predicate on the "physical_block_id" field.
func PhysicalBlockIDIsNil() predicate.Block {
	return predicate.Block(sql.FieldIsNull(FieldPhysicalBlockID))
}

// PhysicalBlockIDNotNil applies the NotNil predicate on the "physical_block_id" field.
func PhysicalBlockIDNotNil() predicate.Block {
	return predicate.Block(sql.FieldNotNull(FieldPhysicalBlockID))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.Block {
	return predicate.Block(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.Block {
	return predicate.Block(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.Block {
	return predicate.Block(sql.FieldContainsFold(FieldLegacyCode, v))
}

// SequenceNumberEQ applies the EQ predicate on the "sequence_number" field.
func SequenceNumberEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldSequenceNumber, v))
}

// SequenceNumberNEQ applies the NEQ predicate on the "sequence_number" field.
func SequenceNumberNEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldSequenceNumber, v))
}

// SequenceNumberIn applies the In predicate on the "sequence_number" field.
func SequenceNumberIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldSequenceNumber, vs...))
}

// SequenceNumberNotIn applies the NotIn predicate on the "sequence_number" field.
func SequenceNumberNotIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldSequenceNumber, vs...))
}

// SequenceNumberGT applies the GT predicate on the "sequence_number" field.
func SequenceNumberGT(v int) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldSequenceNumber, v))
}

// SequenceNumberGTE applies the GTE predicate on the "sequence_number" field.
func SequenceNumberGTE(v int) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldSequenceNumber, v))
}

// SequenceNumberLT applies the LT predicate on the "sequence_number" field.
func SequenceNumberLT(v int) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldSequenceNumber, v))
}

// SequenceNumberLTE applies the LTE predicate on the "sequence_number" field.
func SequenceNumberLTE(v int) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldSequenceNumber, v))
}

// BlockTypeEQ applies the EQ predicate on the "block_type" field.
func BlockTypeEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldBlockType, v))
}

// BlockTypeNEQ applies the NEQ predicate on the "block_type" field.
func BlockTypeNEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldBlockType, v))
}

// BlockTypeIn applies the In predicate on the "block_type" field.
func BlockTypeIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldBlockType, vs...))
}

// BlockTypeNotIn applies the NotIn predicate on the "block_type" field.
func BlockTypeNotIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldBlockType, vs...))
}

// BlockTypeGT applies the GT predicate on the "block_type" field.
func BlockTypeGT(v string) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldBlockType, v))
}

// BlockTypeGTE applies the GTE predicate on the "block_type" field.
func BlockTypeGTE(v string) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldBlockType, v))
}

// BlockTypeLT applies the LT predicate on the "block_type" field.
func BlockTypeLT(v string) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldBlockType, v))
}

// BlockTypeLTE applies the LTE predicate on the "block_type" field.
func BlockTypeLTE(v string) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldBlockType, v))
}

// BlockTypeContains applies the Contains predicate on the "block_type" field.
func BlockTypeContains(v string) predicate.Block {
	return predicate.Block(sql.FieldContains(FieldBlockType, v))
}

// BlockTypeHasPrefix applies the HasPrefix predicate on the "block_type" field.
func BlockTypeHasPrefix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasPrefix(FieldBlockType, v))
}

// BlockTypeHasSuffix applies the HasSuffix predicate on the "block_type" field.
func BlockTypeHasSuffix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasSuffix(FieldBlockType, v))
}

// BlockTypeEqualFold applies the EqualFold predicate on the "block_type" field.
func BlockTypeEqualFold(v string) predicate.Block {
	return predicate.Block(sql.FieldEqualFold(FieldBlockType, v))
}

// BlockTypeContainsFold applies the ContainsFold predicate on the "block_type" field.
func BlockTypeContainsFold(v string) predicate.Block {
	return predicate.Block(sql.FieldContainsFold(FieldBlockType, v))
}

// MaxCapacityEQ applies the EQ predicate on the "max_capacity" field.
func MaxCapacityEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldMaxCapacity, v))
}

// MaxCapacityNEQ applies the NEQ predicate on the "max_capacity" field.
func MaxCapacityNEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldMaxCapacity, v))
}

// MaxCapacityIn applies the In predicate on the "max_capacity" field.
func MaxCapacityIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldMaxCapacity, vs...))
}

// MaxCapacityNotIn applies the NotIn predicate on the "max_capacity" field.
func MaxCapacityNotIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldMaxCapacity, vs...))
}

// MaxCapacityGT applies the GT predicate on the "max_capacity" field.
func MaxCapacityGT(v int) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldMaxCapacity, v))
}

// MaxCapacityGTE applies the GTE predicate on the "max_capacity" field.
func MaxCapacityGTE(v int) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldMaxCapacity, v))
}

// MaxCapacityLT applies the LT predicate on the "max_capacity" field.
func MaxCapacityLT(v int) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldMaxCapacity, v))
}

// MaxCapacityLTE applies the LTE predicate on the "max_capacity" field.
func MaxCapacityLTE(v int) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldMaxCapacity, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldState, vs...))
}

// StateGT applies the GT predicate on the "state" field.
func StateGT(v string) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldState, v))
}

// StateGTE applies the GTE predicate on the "state" field.
func StateGTE(v string) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldState, v))
}

// StateLT applies the LT predicate on the "state" field.
func StateLT(v string) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldState, v))
}

// StateLTE applies the LTE predicate on the "state" field.
func StateLTE(v string) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldState, v))
}

// StateContains applies the Contains predicate on the "state" field.
func StateContains(v string) predicate.Block {
	return predicate.Block(sql.FieldContains(FieldState, v))
}

// StateHasPrefix applies the HasPrefix predicate on the "state" field.
func StateHasPrefix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasPrefix(FieldState, v))
}

// StateHasSuffix applies the HasSuffix predicate on the "state" field.
func StateHasSuffix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasSuffix(FieldState, v))
}

// StateEqualFold applies the EqualFold predicate on the "state" field.
func StateEqualFold(v string) predicate.Block {
	return predicate.Block(sql.FieldEqualFold(FieldState, v))
}

// StateContainsFold applies the ContainsFold predicate on the "state" field.
func StateContainsFold(v string) predicate.Block {
	return predicate.Block(sql.FieldContainsFold(FieldState, v))
}

// CropNameEQ applies the EQ predicate on the "crop_name" field.
func CropNameEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldCropName, v))
}

// CropNameNEQ applies the NEQ predicate on the "crop_name" field.
func CropNameNEQ(v string) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldCropName, v))
}

// CropNameIn applies the In predicate on the "crop_name" field.
func CropNameIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldCropName, vs...))
}

// CropNameNotIn applies the NotIn predicate on the "crop_name" field.
func CropNameNotIn(vs ...string) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldCropName, vs...))
}

// CropNameGT applies the GT predicate on the "crop_name" field.
func CropNameGT(v string) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldCropName, v))
}

// CropNameGTE applies the GTE predicate on the "crop_name" field.
func CropNameGTE(v string) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldCropName, v))
}

// CropNameLT applies the LT predicate on the "crop_name" field.
func CropNameLT(v string) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldCropName, v))
}

// CropNameLTE applies the LTE predicate on the "crop_name" field.
func CropNameLTE(v string) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldCropName, v))
}

// CropNameContains applies the Contains predicate on the "crop_name" field.
func CropNameContains(v string) predicate.Block {
	return predicate.Block(sql.FieldContains(FieldCropName, v))
}

// CropNameHasPrefix applies the HasPrefix predicate on the "crop_name" field.
func CropNameHasPrefix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasPrefix(FieldCropName, v))
}

// CropNameHasSuffix applies the HasSuffix predicate on the "crop_name" field.
func CropNameHasSuffix(v string) predicate.Block {
	return predicate.Block(sql.FieldHasSuffix(FieldCropName, v))
}

// CropNameIsNil applies the IsNil predicate on the "crop_name" field.
func CropNameIsNil() predicate.Block {
	return predicate.Block(sql.FieldIsNull(FieldCropName))
}

// CropNameNotNil applies the NotNil predicate on the "crop_name" field.
func CropNameNotNil() predicate.Block {
	return predicate.Block(sql.FieldNotNull(FieldCropName))
}

// CropNameEqualFold applies the EqualFold predicate on the "crop_name" field.
func CropNameEqualFold(v string) predicate.Block {
	return predicate.Block(sql.FieldEqualFold(FieldCropName, v))
}

// CropNameContainsFold applies the ContainsFold predicate on the "crop_name" field.
func CropNameContainsFold(v string) predicate.Block {
	return predicate.Block(sql.FieldContainsFold(FieldCropName, v))
}

// PlantingDateEQ applies the EQ predicate on the "planting_date" field.
func PlantingDateEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldPlantingDate, v))
}

// PlantingDateNEQ applies the NEQ predicate on the "planting_date" field.
func PlantingDateNEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldPlantingDate, v))
}

// PlantingDateIn applies the In predicate on the "planting_date" field.
func PlantingDateIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldPlantingDate, vs...))
}

// PlantingDateNotIn applies the NotIn predicate on the "planting_date" field.
func PlantingDateNotIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldPlantingDate, vs...))
}

// PlantingDateGT applies the GT predicate on the "planting_date" field.
func PlantingDateGT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldPlantingDate, v))
}

// PlantingDateGTE applies the GTE predicate on the "planting_date" field.
func PlantingDateGTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldPlantingDate, v))
}

// PlantingDateLT applies the LT predicate on the "planting_date" field.
func PlantingDateLT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldPlantingDate, v))
}

// PlantingDateLTE applies the LTE predicate on the "planting_date" field.
func PlantingDateLTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldPlantingDate, v))
}

// PlantingDateIsNil applies the IsNil predicate on the "planting_date" field.
func PlantingDateIsNil() predicate.Block {
	return predicate.Block(sql.FieldIsNull(FieldPlantingDate))
}

// PlantingDateNotNil applies the NotNil predicate on the "planting_date" field.
func PlantingDateNotNil() predicate.Block {
	return predicate.Block(sql.FieldNotNull(FieldPlantingDate))
}

// WateringFrequencyDaysEQ applies the EQ predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldWateringFrequencyDays, v))
}

// WateringFrequencyDaysNEQ applies the NEQ predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysNEQ(v int) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldWateringFrequencyDays, v))
}

// WateringFrequencyDaysIn applies the In predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldWateringFrequencyDays, vs...))
}

// WateringFrequencyDaysNotIn applies the NotIn predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysNotIn(vs ...int) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldWateringFrequencyDays, vs...))
}

// WateringFrequencyDaysGT applies the GT predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysGT(v int) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldWateringFrequencyDays, v))
}

// WateringFrequencyDaysGTE applies the GTE predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysGTE(v int) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldWateringFrequencyDays, v))
}

// WateringFrequencyDaysLT applies the LT predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysLT(v int) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldWateringFrequencyDays, v))
}

// WateringFrequencyDaysLTE applies the LTE predicate on the "watering_frequency_days" field.
func WateringFrequencyDaysLTE(v int) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldWateringFrequencyDays, v))
}

// ExpectedStatusChangesIsNil applies the IsNil predicate on the "expected_status_changes" field.
func ExpectedStatusChangesIsNil() predicate.Block {
	return predicate.Block(sql.FieldIsNull(FieldExpectedStatusChanges))
}

// ExpectedStatusChangesNotNil applies the NotNil predicate on the "expected_status_changes" field.
func ExpectedStatusChangesNotNil() predicate.Block {
	return predicate.Block(sql.FieldNotNull(FieldExpectedStatusChanges))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Block {
	return predicate.Block(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Block {
	return predicate.Block(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFarm applies the HasEdge predicate on the "farm" edge.
func HasFarm() predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FarmTable, FarmColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFarmWith applies the HasEdge predicate on the "farm" edge with a given conditions (other predicates).
func HasFarmWith(preds ...predicate.Farm) predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := newFarmStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasPhysicalBlock applies the HasEdge predicate on the "physical_block" edge.
func HasPhysicalBlock() predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PhysicalBlockTable, PhysicalBlockColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhysicalBlockWith applies the HasEdge predicate on the "physical_block" edge with a given conditions (other predicates).
func HasPhysicalBlockWith(preds ...predicate.PhysicalBlock) predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := newPhysicalBlockStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasArchivedCycles applies the HasEdge predicate on the "archived_cycles" edge.
func HasArchivedCycles() predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ArchivedCyclesTable, ArchivedCyclesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasArchivedCyclesWith applies the HasEdge predicate on the "archived_cycles" edge with a given conditions (other predicates).
func HasArchivedCyclesWith(preds ...predicate.ArchivedCycle) predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := newArchivedCyclesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHarvests applies the HasEdge predicate on the "harvests" edge.
func HasHarvests() predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HarvestsTable, HarvestsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHarvestsWith applies the HasEdge predicate on the "harvests" edge with a given conditions (other predicates).
func HasHarvestsWith(preds ...predicate.Harvest) predicate.Block {
	return predicate.Block(func(s *sql.Selector) {
		step := newHarvestsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Block) predicate.Block {
	return predicate.Block(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Block) predicate.Block {
	return predicate.Block(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Block) predicate.Block {
	return predicate.Block(sql.NotPredicates(p))
}
