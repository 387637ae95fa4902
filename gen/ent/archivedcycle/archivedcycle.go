// Code generated by ent, DO NOT EDIT.

package archivedcycle

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the archivedcycle type in the database.
	Label = "archived_cycle"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBlockID holds the string denoting the block_id field in the database.
	FieldBlockID = "block_id"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldLegacyCode holds the string denoting the legacy_code field in the database.
	FieldLegacyCode = "legacy_code"
	// FieldCropName holds the string denoting the crop_name field in the database.
	FieldCropName = "crop_name"
	// FieldPlantingDate holds the string denoting the planting_date field in the database.
	FieldPlantingDate = "planting_date"
	// FieldClearedDate holds the string denoting the cleared_date field in the database.
	FieldClearedDate = "cleared_date"
	// FieldYieldKg holds the string denoting the yield_kg field in the database.
	FieldYieldKg = "yield_kg"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBlock holds the string denoting the block edge name in mutations.
	EdgeBlock = "block"
	// Table holds the table name of the archivedcycle in the database.
	Table = "archived_cycles"
	// BlockTable is the table that holds the block relation/edge.
	BlockTable = "archived_cycles"
	// BlockInverseTable is the table name for the Block entity.
	// It exists in this package in order to avoid circular dependency with the "block" package.
	BlockInverseTable = "blocks"
	// BlockColumn is the table column denoting the block relation/edge.
	BlockColumn = "block_id"
)

// Columns holds all SQL columns for archivedcycle fields.
var Columns = []string{
	FieldID,
	FieldBlockID,
	FieldFarmID,
	FieldLegacyCode,
	FieldCropName,
	FieldPlantingDate,
	FieldClearedDate,
	FieldYieldKg,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	LegacyCodeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ArchivedCycle queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlockID orders the results by the block_id field.
func ByBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockID, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByLegacyCode orders the results by the legacy_code field.
func ByLegacyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyCode, opts...).ToFunc()
}

// ByCropName orders the results by the crop_name field.
func ByCropName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropName, opts...).ToFunc()
}

// ByPlantingDate orders the results by the planting_date field.
func ByPlantingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlantingDate, opts...).ToFunc()
}

// ByClearedDate orders the results by the cleared_date field.
func ByClearedDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClearedDate, opts...).ToFunc()
}

// ByYieldKg orders the results by the yield_kg field.
func ByYieldKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYieldKg, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBlockField orders the results by block field.
func ByBlockField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlockStep(), sql.OrderByField(field, opts...))
	}
}
func newBlockStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlockInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BlockTable, BlockColumn),
	)
}
