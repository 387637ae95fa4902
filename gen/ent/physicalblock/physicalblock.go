// Code generated by ent, DO NOT EDIT.

package physicalblock

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the physicalblock type in the database.
	Label = "physical_block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldLegacyCode holds the string denoting the legacy_code field in the database.
	FieldLegacyCode = "legacy_code"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldAreaSqM holds the string denoting the area_sq_m field in the database.
	FieldAreaSqM = "area_sq_m"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFarm holds the string denoting the farm edge name in mutations.
	EdgeFarm = "farm"
	// EdgeBlocks holds the string denoting the blocks edge name in mutations.
	EdgeBlocks = "blocks"
	// Table holds the table name of the physicalblock in the database.
	Table = "physical_blocks"
	// FarmTable is the table that holds the farm relation/edge.
	FarmTable = "physical_blocks"
	// FarmInverseTable is the table name for the Farm entity.
	// It exists in this package in order to avoid circular dependency with the "farm" package.
	FarmInverseTable = "farms"
	// FarmColumn is the table column denoting the farm relation/edge.
	FarmColumn = "farm_id"
	// BlocksTable is the table that holds the blocks relation/edge.
	BlocksTable = "blocks"
	// BlocksInverseTable is the table name for the Block entity.
	// It exists in this package in order to avoid circular dependency with the "block" package.
	BlocksInverseTable = "blocks"
	// BlocksColumn is the table column denoting the blocks relation/edge.
	BlocksColumn = "physical_block_id"
)

// Columns holds all SQL columns for physicalblock fields.
var Columns = []string{
	FieldID,
	FieldFarmID,
	FieldLegacyCode,
	FieldName,
	FieldAreaSqM,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PhysicalBlock queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByLegacyCode orders the results by the legacy_code field.
func ByLegacyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyCode, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByAreaSqM orders the results by the area_sq_m field.
func ByAreaSqM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAreaSqM, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFarmField orders the results by farm field.
func ByFarmField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFarmStep(), sql.OrderByField(field, opts...))
	}
}

// ByBlocksCount orders the results by blocks count.
func ByBlocksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBlocksStep(), opts...)
	}
}

// ByBlocks orders the results by blocks terms.
func ByBlocks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBlocksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFarmStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FarmInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FarmTable, FarmColumn),
	)
}
func newBlocksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BlocksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BlocksTable, BlocksColumn),
	)
}
