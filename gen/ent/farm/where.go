// Code generated by ent, DO NOT EDIT.

package farm

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldID, id))
}

// LegacyCode applies equality check predicate on the "legacy_code" field. It's identical to LegacyCodeEQ.
func LegacyCode(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldLegacyCode, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldName, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldLocation, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldUpdatedAt, v))
}

// LegacyCodeEQ applies the EQ predicate on the "legacy_code" field.
func LegacyCodeEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldLegacyCode, v))
}

// LegacyCodeNEQ applies the NEQ predicate on the "legacy_code" field.
func LegacyCodeNEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldLegacyCode, v))
}

// LegacyCodeIn applies the In predicate on the "legacy_code" field.
func LegacyCodeIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldLegacyCode, vs...))
}

// LegacyCodeNotIn applies the NotIn predicate on the "legacy_code" field.
func LegacyCodeNotIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldLegacyCode, vs...))
}

// LegacyCodeGT applies the GT predicate on the "legacy_code" field.
func LegacyCodeGT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldLegacyCode, v))
}

// LegacyCodeGTE applies the GTE predicate on the "legacy_code" field.
func LegacyCodeGTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldLegacyCode, v))
}

// LegacyCodeLT applies the LT predicate on the "legacy_code" field.
func LegacyCodeLT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldLegacyCode, v))
}

// LegacyCodeLTE applies the LTE predicate on the "legacy_code" field.
func LegacyCodeLTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldLegacyCode, v))
}

// LegacyCodeContains applies the Contains predicate on the "legacy_code" field.
func LegacyCodeContains(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContains(FieldLegacyCode, v))
}

// LegacyCodeHasPrefix applies the HasPrefix predicate on the "legacy_code" field.
func LegacyCodeHasPrefix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasPrefix(FieldLegacyCode, v))
}

// LegacyCodeHasSuffix applies the HasSuffix predicate on the "legacy_code" field.
func LegacyCodeHasSuffix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasSuffix(FieldLegacyCode, v))
}

// LegacyCodeEqualFold applies the EqualFold predicate on the "legacy_code" field.
func LegacyCodeEqualFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEqualFold(FieldLegacyCode, v))
}

// LegacyCodeContainsFold applies the ContainsFold predicate on the "legacy_code" field.
func LegacyCodeContainsFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContainsFold(FieldLegacyCode, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContainsFold(FieldName, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Farm {
	return predicate.Farm(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Farm {
	return predicate.Farm(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Farm {
	return predicate.Farm(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Farm {
	return predicate.Farm(sql.FieldContainsFold(FieldLocation, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Farm {
	return predicate.Farm(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPhysicalBlocks applies the HasEdge predicate on the "physical_blocks" edge.
func HasPhysicalBlocks() predicate.Farm {
	return predicate.Farm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PhysicalBlocksTable, PhysicalBlocksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPhysicalBlocksWith applies the HasEdge predicate on the "physical_blocks" edge with a given conditions (other predicates).
func HasPhysicalBlocksWith(preds ...predicate.PhysicalBlock) predicate.Farm {
	return predicate.Farm(func(s *sql.Selector) {
		step := newPhysicalBlocksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasBlocks applies the HasEdge predicate on the "blocks" edge.
func HasBlocks() predicate.Farm {
	return predicate.Farm(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, BlocksTable, BlocksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBlocksWith applies the HasEdge predicate on the "blocks" edge with a given conditions (other predicates).
func HasBlocksWith(preds ...predicate.Block) predicate.Farm {
	return predicate.Farm(func(s *sql.Selector) {
		step := newBlocksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Farm) predicate.Farm {
	return predicate.Farm(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Farm) predicate.Farm {
	return predicate.Farm(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Farm) predicate.Farm {
	return predicate.Farm(sql.NotPredicates(p))
}
