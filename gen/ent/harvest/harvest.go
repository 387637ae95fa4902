// Code generated by ent, DO NOT EDIT.

package harvest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the harvest type in the database.
	Label = "harvest"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBlockID holds the string denoting the block_id field in the database.
	FieldBlockID = "block_id"
	// FieldLegacyCode holds the string denoting the legacy_code field in the database.
	FieldLegacyCode = "legacy_code"
	// FieldCropName holds the string denoting the crop_name field in the database.
	FieldCropName = "crop_name"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldQuantityKg holds the string denoting the quantity_kg field in the database.
	FieldQuantityKg = "quantity_kg"
	// FieldGrade holds the string denoting the grade field in the database.
	FieldGrade = "grade"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBlock holds the string denoting the block edge name in mutations.
	EdgeBlock = "block"
	// Table holds the table name of the harvest in the database.
	Table = "harvests"
	// BlockTable is the table that holds the block relation/edge.
	BlockTable = "harvests"
	// BlockInverseTable is the table name for the Block entity.
	// It exists in this package in order to avoid circular dependency with the "block" package.
	BlockInverseTable = "blocks"
	// BlockColumn is the table column denoting the block relation/edge.
	BlockColumn = "block_id"
)

// Columns holds all SQL columns for harvest fields.
var Columns = []string{
	FieldID,
	FieldBlockID,
	FieldLegacyCode,
	FieldCropName,
	FieldDate,
	FieldQuantityKg,
	FieldGrade,
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
	// QuantityKgValidator is a validator for the "quantity_kg" field. It is called by the builders before save.
	QuantityKgValidator func(float64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Harvest queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBlockID orders the results by the block_id field.
func ByBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockID, opts...).ToFunc()
}

// ByLegacyCode orders the results by the legacy_code field.
func ByLegacyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyCode, opts...).ToFunc()
}

// ByCropName orders the results by the crop_name field.
func ByCropName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropName, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// ByQuantityKg orders the results by the quantity_kg field.
func ByQuantityKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuantityKg, opts...).ToFunc()
}

// ByGrade orders the results by the grade field.
func ByGrade(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrade, opts...).ToFunc()
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
