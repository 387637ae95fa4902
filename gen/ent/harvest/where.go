// Code generated by ent, DO NOT EDIT.

package harvest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldID, id))
}

// BlockID applies equality check predicate on the "block_id" field. It's identical to BlockIDEQ.
func BlockID(v uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldBlockID, v))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldLegacyCode, v))
}

// CropName applies equality check predicate on the "crop_name" field. It's identical to CropNameEQ.
func CropName(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldCropName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldDate, v))
}

// QuantityKg applies equality check predicate on the "quantity_kg" field. It's identical to QuantityKgEQ.
func QuantityKg(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldQuantityKg, v))
}

// Grade applies equality check predicate on the "grade" field. It's identical to GradeEQ.
func Grade(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldGrade, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldCreatedAt, v))
}

// BlockIDEQ applies the EQ predicate on the "block_id" field.
func BlockIDEQ(v uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldBlockID, v))
}

// BlockIDNEQ applies the NEQ predicate on the "block_id" field.
func BlockIDNEQ(v uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldBlockID, v))
}

// BlockIDIn applies the In predicate on the "block_id" field.
func BlockIDIn(vs ...uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldBlockID, vs...))
}

// BlockIDNotIn applies the NotIn predicate on the "block_id" field.
func BlockIDNotIn(vs ...uuid.UUID) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldBlockID, vs...))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContainsFold(FieldLegacyCode, v))
}

// CropNameEQ applies the EQ predicate on the "crop_name" field.
func CropNameEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldCropName, v))
}

// CropNameNEQ applies the NEQ predicate on the "crop_name" field.
func CropNameNEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldCropName, v))
}

// CropNameIn applies the In predicate on the "crop_name" field.
func CropNameIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldCropName, vs...))
}

// CropNameNotIn applies the NotIn predicate on the "crop_name" field.
func CropNameNotIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldCropName, vs...))
}

// CropNameGT applies the GT predicate on the "crop_name" field.
func CropNameGT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldCropName, v))
}

// CropNameGTE applies the GTE predicate on the "crop_name" field.
func CropNameGTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldCropName, v))
}

// CropNameLT applies the LT predicate on the "crop_name" field.
func CropNameLT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldCropName, v))
}

// CropNameLTE applies the LTE predicate on the "crop_name" field.
func CropNameLTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldCropName, v))
}

// CropNameContains applies the Contains predicate on the "crop_name" field.
func CropNameContains(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContains(FieldCropName, v))
}

// CropNameHasPrefix applies the HasPrefix predicate on the "crop_name" field.
func CropNameHasPrefix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasPrefix(FieldCropName, v))
}

// CropNameHasSuffix applies the HasSuffix predicate on the "crop_name" field.
func CropNameHasSuffix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasSuffix(FieldCropName, v))
}

// CropNameIsNil applies the IsNil predicate on the "crop_name" field.
func CropNameIsNil() predicate.Harvest {
	return predicate.Harvest(sql.FieldIsNull(FieldCropName))
}

// CropNameNotNil applies the NotNil predicate on the "crop_name" field.
func CropNameNotNil() predicate.Harvest {
	return predicate.Harvest(sql.FieldNotNull(FieldCropName))
}

// CropNameEqualFold applies the EqualFold predicate on the "crop_name" field.
func CropNameEqualFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEqualFold(FieldCropName, v))
}

// CropNameContainsFold applies the ContainsFold predicate on the "crop_name" field.
func CropNameContainsFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContainsFold(FieldCropName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldDate, v))
}

// QuantityKgEQ applies the EQ predicate on the "quantity_kg" field.
func QuantityKgEQ(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldQuantityKg, v))
}

// QuantityKgNEQ applies the NEQ predicate on the "quantity_kg" field.
func QuantityKgNEQ(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldQuantityKg, v))
}

// QuantityKgIn applies the In predicate on the "quantity_kg" field.
func QuantityKgIn(vs ...float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldQuantityKg, vs...))
}

// QuantityKgNotIn applies the NotIn predicate on the "quantity_kg" field.
func QuantityKgNotIn(vs ...float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldQuantityKg, vs...))
}

// QuantityKgGT applies the GT predicate on the "quantity_kg" field.
func QuantityKgGT(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldQuantityKg, v))
}

// QuantityKgGTE applies the GTE predicate on the "quantity_kg" field.
func QuantityKgGTE(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldQuantityKg, v))
}

// QuantityKgLT applies the LT predicate on the "quantity_kg" field.
func QuantityKgLT(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldQuantityKg, v))
}

// QuantityKgLTE applies the LTE predicate on the "quantity_kg" field.
func QuantityKgLTE(v float64) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldQuantityKg, v))
}

// GradeEQ applies the EQ predicate on the "grade" field.
func GradeEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldGrade, v))
}

// GradeNEQ applies the NEQ predicate on the "grade" field.
func GradeNEQ(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldGrade, v))
}

// GradeIn applies the In predicate on the "grade" field.
func GradeIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldGrade, vs...))
}

// GradeNotIn applies the NotIn predicate on the "grade" field.
func GradeNotIn(vs ...string) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldGrade, vs...))
}

// GradeGT applies the GT predicate on the "grade" field.
func GradeGT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldGrade, v))
}

// GradeGTE applies the GTE predicate on the "grade" field.
func GradeGTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldGrade, v))
}

// GradeLT applies the LT predicate on the "grade" field.
func GradeLT(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldGrade, v))
}

// GradeLTE applies the LTE predicate on the "grade" field.
func GradeLTE(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldGrade, v))
}

// GradeContains applies the Contains predicate on the "grade" field.
func GradeContains(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContains(FieldGrade, v))
}

// GradeHasPrefix applies the HasPrefix predicate on the "grade" field.
func GradeHasPrefix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasPrefix(FieldGrade, v))
}

// GradeHasSuffix applies the HasSuffix predicate on the "grade" field.
func GradeHasSuffix(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldHasSuffix(FieldGrade, v))
}

// GradeIsNil applies the IsNil predicate on the "grade" field.
func GradeIsNil() predicate.Harvest {
	return predicate.Harvest(sql.FieldIsNull(FieldGrade))
}

// GradeNotNil applies the NotNil predicate on the "grade" field.
func GradeNotNil() predicate.Harvest {
	return predicate.Harvest(sql.FieldNotNull(FieldGrade))
}

// GradeEqualFold applies the EqualFold predicate on the "grade" field.
func GradeEqualFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldEqualFold(FieldGrade, v))
}

// GradeContainsFold applies the ContainsFold predicate on the "grade" field.
func GradeContainsFold(v string) predicate.Harvest {
	return predicate.Harvest(sql.FieldContainsFold(FieldGrade, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Harvest {
	return predicate.Harvest(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBlock applies the HasEdge predicate on the "block" edge.
func HasBlock() predicate.Harvest {
	return predicate.Harvest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BlockTable, BlockColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlockWith applies the HasEdge predicate on the "block" edge with a given conditions (other predicates).
func HasBlockWith(preds ...predicate.Block) predicate.Harvest {
	return predicate.Harvest(func(s *sql.Selector) {
		step := newBlockStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Harvest) predicate.Harvest {
	return predicate.Harvest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Harvest) predicate.Harvest {
	return predicate.Harvest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Harvest) predicate.Harvest {
	return predicate.Harvest(sql.NotPredicates(p))
}
