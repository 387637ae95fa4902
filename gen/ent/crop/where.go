// Code generated by ent, DO NOT EDIT.

package crop

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldName, v))
}

// Variety applies equality check predicate on the "variety" field. It's identical to VarietyEQ.
func Variety(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldVariety, v))
}

// GerminationDays applies equality check predicate on the "germination_days" field. It's identical to GerminationDaysEQ.
func GerminationDays(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldGerminationDays, v))
}

// VegetativeDays applies equality check predicate on the "vegetative_days" field. It's identical to VegetativeDaysEQ.
func VegetativeDays(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldVegetativeDays, v))
}

// FloweringDays applies equality check predicate on the "flowering_days" field. It's identical to FloweringDaysEQ.
func FloweringDays(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldFloweringDays, v))
}

// TotalCycleDays applies equality check predicate on the "total_cycle_days" field. It's identical to TotalCycleDaysEQ.
func TotalCycleDays(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldTotalCycleDays, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Crop {
	return predicate.Crop(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Crop {
	return predicate.Crop(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Crop {
	return predicate.Crop(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Crop {
	return predicate.Crop(sql.FieldContainsFold(FieldName, v))
}

// VarietyEQ applies the EQ predicate on the "variety" field.
func VarietyEQ(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldVariety, v))
}

// VarietyNEQ applies the NEQ predicate on the "variety" field.
func VarietyNEQ(v string) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldVariety, v))
}

// VarietyIn applies the In predicate on the "variety" field.
func VarietyIn(vs ...string) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldVariety, vs...))
}

// VarietyNotIn applies the NotIn predicate on the "variety" field.
func VarietyNotIn(vs ...string) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldVariety, vs...))
}

// VarietyGT applies the GT predicate on the "variety" field.
func VarietyGT(v string) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldVariety, v))
}

// VarietyGTE applies the GTE predicate on the "variety" field.
func VarietyGTE(v string) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldVariety, v))
}

// VarietyLT applies the LT predicate on the "variety" field.
func VarietyLT(v string) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldVariety, v))
}

// VarietyLTE applies the LTE predicate on the "variety" field.
func VarietyLTE(v string) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldVariety, v))
}

// VarietyContains applies the Contains predicate on the "variety" field.
func VarietyContains(v string) predicate.Crop {
	return predicate.Crop(sql.FieldContains(FieldVariety, v))
}

// VarietyHasPrefix applies the HasPrefix predicate on the "variety" field.
func VarietyHasPrefix(v string) predicate.Crop {
	return predicate.Crop(sql.FieldHasPrefix(FieldVariety, v))
}

// VarietyHasSuffix applies the HasSuffix predicate on the "variety" field.
func VarietyHasSuffix(v string) predicate.Crop {
	return predicate.Crop(sql.FieldHasSuffix(FieldVariety, v))
}

// VarietyIsNil applies the IsNil predicate on the "variety" field.
func VarietyIsNil() predicate.Crop {
	return predicate.Crop(sql.FieldIsNull(FieldVariety))
}

// VarietyNotNil applies the NotNil predicate on the "variety" field.
func VarietyNotNil() predicate.Crop {
	return predicate.Crop(sql.FieldNotNull(FieldVariety))
}

// VarietyEqualFold applies the EqualFold predicate on the "variety" field.
func VarietyEqualFold(v string) predicate.Crop {
	return predicate.Crop(sql.FieldEqualFold(FieldVariety, v))
}

// VarietyContainsFold applies the ContainsFold predicate on the "variety" field.
func VarietyContainsFold(v string) predicate.Crop {
	return predicate.Crop(sql.FieldContainsFold(FieldVariety, v))
}

// GerminationDaysEQ applies the EQ predicate on the "germination_days" field.
func GerminationDaysEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldGerminationDays, v))
}

// GerminationDaysNEQ applies the NEQ predicate on the "germination_days" field.
func GerminationDaysNEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldGerminationDays, v))
}

// GerminationDaysIn applies the In predicate on the "germination_days" field.
func GerminationDaysIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldGerminationDays, vs...))
}

// GerminationDaysNotIn applies the NotIn predicate on the "germination_days" field.
func GerminationDaysNotIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldGerminationDays, vs...))
}

// GerminationDaysGT applies the GT predicate on the "germination_days" field.
func GerminationDaysGT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldGerminationDays, v))
}

// GerminationDaysGTE applies the GTE predicate on the "germination_days" field.
func GerminationDaysGTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldGerminationDays, v))
}

// GerminationDaysLT applies the LT predicate on the "germination_days" field.
func GerminationDaysLT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldGerminationDays, v))
}

// GerminationDaysLTE applies the LTE predicate on the "germination_days" field.
func GerminationDaysLTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldGerminationDays, v))
}

// GerminationDaysIsNil applies the IsNil predicate on the "germination_days" field.
func GerminationDaysIsNil() predicate.Crop {
	return predicate.Crop(sql.FieldIsNull(FieldGerminationDays))
}

// GerminationDaysNotNil applies the NotNil predicate on the "germination_days" field.
func GerminationDaysNotNil() predicate.Crop {
	return predicate.Crop(sql.FieldNotNull(FieldGerminationDays))
}

// VegetativeDaysEQ applies the EQ predicate on the "vegetative_days" field.
func VegetativeDaysEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldVegetativeDays, v))
}

// VegetativeDaysNEQ applies the NEQ predicate on the "vegetative_days" field.
func VegetativeDaysNEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldVegetativeDays, v))
}

// VegetativeDaysIn applies the In predicate on the "vegetative_days" field.
func VegetativeDaysIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldVegetativeDays, vs...))
}

// VegetativeDaysNotIn applies the NotIn predicate on the "vegetative_days" field.
func VegetativeDaysNotIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldVegetativeDays, vs...))
}

// VegetativeDaysGT applies the GT predicate on the "vegetative_days" field.
func VegetativeDaysGT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldVegetativeDays, v))
}

// VegetativeDaysGTE applies the GTE predicate on the "vegetative_days" field.
func VegetativeDaysGTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldVegetativeDays, v))
}

// VegetativeDaysLT applies the LT predicate on the "vegetative_days" field.
func VegetativeDaysLT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldVegetativeDays, v))
}

// VegetativeDaysLTE applies the LTE predicate on the "vegetative_days" field.
func VegetativeDaysLTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldVegetativeDays, v))
}

// VegetativeDaysIsNil applies the IsNil predicate on the "vegetative_days" field.
func VegetativeDaysIsNil() predicate.Crop {
	return predicate.Crop(sql.FieldIsNull(FieldVegetativeDays))
}

// VegetativeDaysNotNil applies the NotNil predicate on the "vegetative_days" field.
func VegetativeDaysNotNil() predicate.Crop {
	return predicate.Crop(sql.FieldNotNull(FieldVegetativeDays))
}

// FloweringDaysEQ applies the EQ predicate on the "flowering_days" field.
func FloweringDaysEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldFloweringDays, v))
}

// FloweringDaysNEQ applies the NEQ predicate on the "flowering_days" field.
func FloweringDaysNEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldFloweringDays, v))
}

// FloweringDaysIn applies the In predicate on the "flowering_days" field.
func FloweringDaysIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldFloweringDays, vs...))
}

// FloweringDaysNotIn applies the NotIn predicate on the "flowering_days" field.
func FloweringDaysNotIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldFloweringDays, vs...))
}

// FloweringDaysGT applies the GT predicate on the "flowering_days" field.
func FloweringDaysGT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldFloweringDays, v))
}

// FloweringDaysGTE applies the GTE predicate on the "flowering_days" field.
func FloweringDaysGTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldFloweringDays, v))
}

// FloweringDaysLT applies the LT predicate on the "flowering_days" field.
func FloweringDaysLT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldFloweringDays, v))
}

// FloweringDaysLTE applies the LTE predicate on the "flowering_days" field.
func FloweringDaysLTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldFloweringDays, v))
}

// FloweringDaysIsNil applies the IsNil predicate on the "flowering_days" field.
func FloweringDaysIsNil() predicate.Crop {
	return predicate.Crop(sql.FieldIsNull(FieldFloweringDays))
}

// FloweringDaysNotNil applies the NotNil predicate on the "flowering_days" field.
func FloweringDaysNotNil() predicate.Crop {
	return predicate.Crop(sql.FieldNotNull(FieldFloweringDays))
}

// TotalCycleDaysEQ applies the EQ predicate on the "total_cycle_days" field.
func TotalCycleDaysEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldTotalCycleDays, v))
}

// TotalCycleDaysNEQ applies the NEQ predicate on the "total_cycle_days" field.
func TotalCycleDaysNEQ(v int) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldTotalCycleDays, v))
}

// TotalCycleDaysIn applies the In predicate on the "total_cycle_days" field.
func TotalCycleDaysIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldTotalCycleDays, vs...))
}

// TotalCycleDaysNotIn applies the NotIn predicate on the "total_cycle_days" field.
func TotalCycleDaysNotIn(vs ...int) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldTotalCycleDays, vs...))
}

// TotalCycleDaysGT applies the GT predicate on the "total_cycle_days" field.
func TotalCycleDaysGT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldTotalCycleDays, v))
}

// TotalCycleDaysGTE applies the GTE predicate on the "total_cycle_days" field.
func TotalCycleDaysGTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldTotalCycleDays, v))
}

// TotalCycleDaysLT applies the LT predicate on the "total_cycle_days" field.
func TotalCycleDaysLT(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldTotalCycleDays, v))
}

// TotalCycleDaysLTE applies the LTE predicate on the "total_cycle_days" field.
func TotalCycleDaysLTE(v int) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldTotalCycleDays, v))
}

// TotalCycleDaysIsNil applies the IsNil predicate on the "total_cycle_days" field.
func TotalCycleDaysIsNil() predicate.Crop {
	return predicate.Crop(sql.FieldIsNull(FieldTotalCycleDays))
}

// TotalCycleDaysNotNil applies the NotNil predicate on the "total_cycle_days" field.
func TotalCycleDaysNotNil() predicate.Crop {
	return predicate.Crop(sql.FieldNotNull(FieldTotalCycleDays))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Crop {
	return predicate.Crop(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPriceRecords applies the HasEdge predicate on the "price_records" edge.
func HasPriceRecords() predicate.Crop {
	return predicate.Crop(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PriceRecordsTable, PriceRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPriceRecordsWith applies the HasEdge predicate on the "price_records" edge with a given conditions (other predicates).
func HasPriceRecordsWith(preds ...predicate.PriceRecord) predicate.Crop {
	return predicate.Crop(func(s *sql.Selector) {
		step := newPriceRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Crop) predicate.Crop {
	return predicate.Crop(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Crop) predicate.Crop {
	return predicate.Crop(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Crop) predicate.Crop {
	return predicate.Crop(sql.NotPredicates(p))
}
