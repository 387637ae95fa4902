// Code generated by ent, DO NOT EDIT.

package archivedcycle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldID, id))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldBlockID, v))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldFarmID, v))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldLegacyCode, v))
}

// CropName applies equality check predicate on the "crop_name" field. It's identical to CropNameEQ.
func CropName(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldCropName, v))
}

// PlantingDate applies equality check predicate on the "planting_date" field. It's identical to PlantingDateEQ.
func PlantingDate(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldPlantingDate, v))
}

// ClearedDate applies equality check predicate on the "cleared_date" field. It's identical to ClearedDateEQ.
func ClearedDate(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldClearedDate, v))
}

// YieldKg applies equality check predicate on the "yield_kg" field. It's identical to YieldKgEQ.
func YieldKg(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldYieldKg, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldBlockID, vs...))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldFarmID, vs...))
}

// FarmIDGT applies the GT predicate on the "farm_id" field.
func FarmIDGT(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldFarmID, v))
}

// FarmIDGTE applies the GTE predicate on the "farm_id" field.
func FarmIDGTE(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldFarmID, v))
}

// FarmIDLT applies the LT predicate on the "farm_id" field.
func FarmIDLT(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldFarmID, v))
}

// FarmIDLTE applies the LTE predicate on the "farm_id" field.
func FarmIDLTE(v uuid.UUID) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldFarmID, v))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldContainsFold(FieldLegacyCode, v))
}

// CropNameEQ applies the EQ predicate on the "crop_name" field.
func CropNameEQ(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldCropName, v))
}

// CropNameNEQ applies the NEQ predicate on the "crop_name" field.
func CropNameNEQ(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldCropName, v))
}

// CropNameIn applies the In predicate on the "crop_name" field.
func CropNameIn(vs ...string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldCropName, vs...))
}

// CropNameNotIn applies the NotIn predicate on the "crop_name" field.
func CropNameNotIn(vs ...string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldCropName, vs...))
}

// CropNameGT applies the GT predicate on the "crop_name" field.
func CropNameGT(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldCropName, v))
}

// CropNameGTE applies the GTE predicate on the "crop_name" field.
func CropNameGTE(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldCropName, v))
}

// CropNameLT applies the LT predicate on the "crop_name" field.
func CropNameLT(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldCropName, v))
}

// CropNameLTE applies the LTE predicate on the "crop_name" field.
func CropNameLTE(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldCropName, v))
}

// CropNameContains applies the Contains predicate on the "crop_name" field.
func CropNameContains(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldContains(FieldCropName, v))
}

// CropNameHasPrefix applies the HasPrefix predicate on the "crop_name" field.
func CropNameHasPrefix(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldHasPrefix(FieldCropName, v))
}

// CropNameHasSuffix applies the HasSuffix predicate on the "crop_name" field.
func CropNameHasSuffix(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldHasSuffix(FieldCropName, v))
}

// CropNameIsNil applies the IsNil predicate on the "crop_name" field.
func CropNameIsNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIsNull(FieldCropName))
}

// CropNameNotNil applies the NotNil predicate on the "crop_name" field.
func CropNameNotNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotNull(FieldCropName))
}

// CropNameEqualFold applies the EqualFold predicate on the "crop_name" field.
func CropNameEqualFold(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEqualFold(FieldCropName, v))
}

// CropNameContainsFold applies the ContainsFold predicate on the "crop_name" field.
func CropNameContainsFold(v string) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldContainsFold(FieldCropName, v))
}

// PlantingDateEQ applies the EQ predicate on the "planting_date" field.
func PlantingDateEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldPlantingDate, v))
}

// PlantingDateNEQ applies the NEQ predicate on the "planting_date" field.
func PlantingDateNEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldPlantingDate, v))
}

// PlantingDateIn applies the In predicate on the "planting_date" field.
func PlantingDateIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldPlantingDate, vs...))
}

// PlantingDateNotIn applies the NotIn predicate on the "planting_date" field.
func PlantingDateNotIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldPlantingDate, vs...))
}

// PlantingDateGT applies the GT predicate on the "planting_date" field.
func PlantingDateGT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldPlantingDate, v))
}

// PlantingDateGTE applies the GTE predicate on the "planting_date" field.
func PlantingDateGTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldPlantingDate, v))
}

// PlantingDateLT applies the LT predicate on the "planting_date" field.
func PlantingDateLT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldPlantingDate, v))
}

// PlantingDateLTE applies the LTE predicate on the "planting_date" field.
func PlantingDateLTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldPlantingDate, v))
}

// ClearedDateEQ applies the EQ predicate on the "cleared_date" field.
func ClearedDateEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldClearedDate, v))
}

// ClearedDateNEQ applies the NEQ predicate on the "cleared_date" field.
func ClearedDateNEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldClearedDate, v))
}

// ClearedDateIn applies the In predicate on the "cleared_date" field.
func ClearedDateIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldClearedDate, vs...))
}

// ClearedDateNotIn applies the NotIn predicate on the "cleared_date" field.
func ClearedDateNotIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldClearedDate, vs...))
}

// ClearedDateGT applies the GT predicate on the "cleared_date" field.
func ClearedDateGT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldClearedDate, v))
}

// ClearedDateGTE applies the GTE predicate on the "cleared_date" field.
func ClearedDateGTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldClearedDate, v))
}

// ClearedDateLT applies the LT predicate on the "cleared_date" field.
func ClearedDateLT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldClearedDate, v))
}

// ClearedDateLTE applies the LTE predicate on the "cleared_date" field.
func ClearedDateLTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldClearedDate, v))
}

// ClearedDateIsNil applies the IsNil predicate on the "cleared_date" field.
func ClearedDateIsNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIsNull(FieldClearedDate))
}

// ClearedDateNotNil applies the NotNil predicate on the "cleared_date" field.
func ClearedDateNotNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotNull(FieldClearedDate))
}

// YieldKgEQ applies the EQ predicate on the "yield_kg" field.
func YieldKgEQ(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldYieldKg, v))
}

// YieldKgNEQ applies the NEQ predicate on the "yield_kg" field.
func YieldKgNEQ(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldYieldKg, v))
}

// YieldKgIn applies the In predicate on the "yield_kg" field.
func YieldKgIn(vs ...float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldYieldKg, vs...))
}

// YieldKgNotIn applies the NotIn predicate on the "yield_kg" field.
func YieldKgNotIn(vs ...float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldYieldKg, vs...))
}

// YieldKgGT applies the GT predicate on the "yield_kg" field.
func YieldKgGT(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldYieldKg, v))
}

// YieldKgGTE applies the GTE predicate on the "yield_kg" field.
func YieldKgGTE(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldYieldKg, v))
}

// YieldKgLT applies the LT predicate on the "yield_kg" field.
func YieldKgLT(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldYieldKg, v))
}

// YieldKgLTE applies the LTE predicate on the "yield_kg" field.
func YieldKgLTE(v float64) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldYieldKg, v))
}

// YieldKgIsNil applies the IsNil predicate on the "yield_kg" field.
func YieldKgIsNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIsNull(FieldYieldKg))
}

// YieldKgNotNil applies the NotNil predicate on the "yield_kg" field.
func YieldKgNotNil() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotNull(FieldYieldKg))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBlock applies the HasEdge predicate on the "block" edge.
func HasBlock() predicate.ArchivedCycle {
	return predicate.ArchivedCycle(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlockTable, BlockColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlockWith applies the HasEdge predicate on the "block" edge with a given conditions (other predicates).
func HasBlockWith(preds ...predicate.Block) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(func(s *sql.Selector) {
		step := newBlockStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ArchivedCycle) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ArchivedCycle) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ArchivedCycle) predicate.ArchivedCycle {
	return predicate.ArchivedCycle(sql.NotPredicates(p))
}
