// Code generated by ent, DO NOT EDIT.

package physicalblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldID, id))
}

// FarmID applies equality check predicate on the "farm_id" field. It's identical to FarmIDEQ.
func FarmID(v uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldFarmID, v))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldLegacyCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldName, v))
}

// AreaSqM applies equality check predicate on the "area_sq_m" field. It's identical to AreaSqMEQ.
func AreaSqM(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldAreaSqM, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// FarmIDEQ applies the EQ predicate on the "farm_id" field.
func FarmIDEQ(v uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldFarmID, v))
}

// FarmIDNEQ applies the NEQ predicate on the "farm_id" field.
func FarmIDNEQ(v uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldFarmID, v))
}

// FarmIDIn applies the In predicate on the "farm_id" field.
func FarmIDIn(vs ...uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldFarmID, vs...))
}

// FarmIDNotIn applies the NotIn predicate on the "farm_id" field.
func FarmIDNotIn(vs ...uuid.UUID) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldFarmID, vs...))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldContainsFold(FieldLegacyCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldHasSuffix(FieldName, v))
}

// NameIsNil applies the IsNil predicate on the "name" field.
func NameIsNil() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIsNull(FieldName))
}

// NameNotNil applies the NotNil predicate on the "name" field.
func NameNotNil() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotNull(FieldName))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldContainsFold(FieldName, v))
}

// AreaSqMEQ applies the EQ predicate on the "area_sq_m" field.
func AreaSqMEQ(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldAreaSqM, v))
}

// AreaSqMNEQ applies the NEQ predicate on the "area_sq_m" field.
func AreaSqMNEQ(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldAreaSqM, v))
}

// AreaSqMIn applies the In predicate on the "area_sq_m" field.
func AreaSqMIn(vs ...float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldAreaSqM, vs...))
}

// AreaSqMNotIn applies the NotIn predicate on the "area_sq_m" field.
func AreaSqMNotIn(vs ...float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldAreaSqM, vs...))
}

// AreaSqMGT applies the GT predicate on the "area_sq_m" field.
func AreaSqMGT(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldAreaSqM, v))
}

// AreaSqMGTE applies the GTE predicate on the "area_sq_m" field.
func AreaSqMGTE(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldAreaSqM, v))
}

// AreaSqMLT applies the LT predicate on the "area_sq_m" field.
func AreaSqMLT(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldAreaSqM, v))
}

// AreaSqMLTE applies the LTE predicate on the "area_sq_m" field.
func AreaSqMLTE(v float64) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldAreaSqM, v))
}

// AreaSqMIsNil applies the IsNil predicate on the "area_sq_m" field.
func AreaSqMIsNil() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIsNull(FieldAreaSqM))
}

// AreaSqMNotNil applies the NotNil predicate on the "area_sq_m" field.
func AreaSqMNotNil() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotNull(FieldAreaSqM))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFarm applies the HasEdge predicate on the "farm" edge.
func HasFarm() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FarmTable, FarmColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFarmWith applies the HasEdge predicate on the "farm" edge with a given conditions (other predicates).
func HasFarmWith(preds ...predicate.Farm) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(func(s *sql.Selector) {
		step := newFarmStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlocks applies the HasEdge predicate on the "blocks" edge.
func HasBlocks() predicate.PhysicalBlock {
	return predicate.PhysicalBlock(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BlocksTable, BlocksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlocksWith applies the HasEdge predicate on the "blocks" edge with a given conditions (other predicates).
func HasBlocksWith(preds ...predicate.Block) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(func(s *sql.Selector) {
		step := newBlocksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PhysicalBlock) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PhysicalBlock) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PhysicalBlock) predicate.PhysicalBlock {
	return predicate.PhysicalBlock(sql.NotPredicates(p))
}
