// Code generated by ent, DO NOT EDIT.

package pricerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldID, id))
}

// CropID applies equality check predicate on the "crop_id" field. It's identical to CropIDEQ.
func CropID(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCropID, v))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldLegacyCode, v))
}

// CropName applies equality check predicate on the "crop_name" field. It's identical to CropNameEQ.
func CropName(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCropName, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldDate, v))
}

// PricePerKg applies equality check predicate on the "price_per_kg" field. It's identical to PricePerKgEQ.
func PricePerKg(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPricePerKg, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CropIDEQ applies the EQ predicate on the "crop_id" field.
func CropIDEQ(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCropID, v))
}

// CropIDNEQ applies the NEQ predicate on the "crop_id" field.
func CropIDNEQ(v uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCropID, v))
}

// CropIDIn applies the In predicate on the "crop_id" field.
func CropIDIn(vs ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCropID, vs...))
}

// CropIDNotIn applies the NotIn predicate on the "crop_id" field.
func CropIDNotIn(vs ...uuid.UUID) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCropID, vs...))
}

// CropIDIsNil applies the IsNil predicate on the "crop_id" field.
func CropIDIsNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIsNull(FieldCropID))
}

// CropIDNotNil applies the NotNil predicate on the "crop_id" field.
func CropIDNotNil() predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotNull(FieldCropID))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldLegacyCode, v))
}

// CropNameEQ applies the EQ predicate on the "crop_name" field.
func CropNameEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCropName, v))
}

// CropNameNEQ applies the NEQ predicate on the "crop_name" field.
func CropNameNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCropName, v))
}

// CropNameIn applies the In predicate on the "crop_name" field.
func CropNameIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCropName, vs...))
}

// CropNameNotIn applies the NotIn predicate on the "crop_name" field.
func CropNameNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCropName, vs...))
}

// CropNameGT applies the GT predicate on the "crop_name" field.
func CropNameGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCropName, v))
}

// CropNameGTE applies the GTE predicate on the "crop_name" field.
func CropNameGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCropName, v))
}

// CropNameLT applies the LT predicate on the "crop_name" field.
func CropNameLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCropName, v))
}

// CropNameLTE applies the LTE predicate on the "crop_name" field.
func CropNameLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCropName, v))
}

// CropNameContains applies the Contains predicate on the "crop_name" field.
func CropNameContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldCropName, v))
}

// CropNameHasPrefix applies the HasPrefix predicate on the "crop_name" field.
func CropNameHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldCropName, v))
}

// CropNameHasSuffix applies the HasSuffix predicate on the "crop_name" field.
func CropNameHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldCropName, v))
}

// CropNameEqualFold applies the EqualFold predicate on the "crop_name" field.
func CropNameEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldCropName, v))
}

// CropNameContainsFold applies the ContainsFold predicate on the "crop_name" field.
func CropNameContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldCropName, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldDate, v))
}

// PricePerKgEQ applies the EQ predicate on the "price_per_kg" field.
func PricePerKgEQ(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldPricePerKg, v))
}

// PricePerKgNEQ applies the NEQ predicate on the "price_per_kg" field.
func PricePerKgNEQ(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldPricePerKg, v))
}

// PricePerKgIn applies the In predicate on the "price_per_kg" field.
func PricePerKgIn(vs ...float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldPricePerKg, vs...))
}

// PricePerKgNotIn applies the NotIn predicate on the "price_per_kg" field.
func PricePerKgNotIn(vs ...float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldPricePerKg, vs...))
}

// PricePerKgGT applies the GT predicate on the "price_per_kg" field.
func PricePerKgGT(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldPricePerKg, v))
}

// PricePerKgGTE applies the GTE predicate on the "price_per_kg" field.
func PricePerKgGTE(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldPricePerKg, v))
}

// PricePerKgLT applies the LT predicate on the "price_per_kg" field.
func PricePerKgLT(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldPricePerKg, v))
}

// PricePerKgLTE applies the LTE predicate on the "price_per_kg" field.
func PricePerKgLTE(v float64) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldPricePerKg, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PriceRecord {
	return predicate.PriceRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCrop applies the HasEdge predicate on the "crop" edge.
func HasCrop() predicate.PriceRecord {
	return predicate.PriceRecord(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CropTable, CropColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCropWith applies the HasEdge predicate on the "crop" edge with a given conditions (other predicates).
func HasCropWith(preds ...predicate.Crop) predicate.PriceRecord {
	return predicate.PriceRecord(func(s *sql.Selector) {
		step := newCropStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PriceRecord) predicate.PriceRecord {
	return predicate.PriceRecord(sql.NotPredicates(p))
}
