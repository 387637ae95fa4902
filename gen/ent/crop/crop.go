// Code generated by ent, DO NOT EDIT.

package crop

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the crop type in the database.
	Label = "crop"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldVariety holds the string denoting the variety field in the database.
	FieldVariety = "variety"
	// FieldGerminationDays holds the string denoting the germination_days field in the database.
	FieldGerminationDays = "germination_days"
	// FieldVegetativeDays holds the string denoting the vegetative_days field in the database.
	FieldVegetativeDays = "vegetative_days"
	// FieldFloweringDays holds the string denoting the flowering_days field in the database.
	FieldFloweringDays = "flowering_days"
	// FieldTotalCycleDays holds the string denoting the total_cycle_days field in the database.
	FieldTotalCycleDays = "total_cycle_days"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePriceRecords holds the string denoting the price_records edge name in mutations.
	EdgePriceRecords = "price_records"
	// Table holds the table name of the crop in the database.
	Table = "crops"
	// PriceRecordsTable is the table that holds the price_records relation/edge.
	PriceRecordsTable = "price_records"
	// PriceRecordsInverseTable is the table name for the PriceRecord entity.
	// It exists in this package in order to avoid circular dependency with the "pricerecord" package.
	PriceRecordsInverseTable = "price_records"
	// PriceRecordsColumn is the table column denoting the price_records relation/edge.
	PriceRecordsColumn = "crop_id"
)

// Columns holds all SQL columns for crop fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldVariety,
	FieldGerminationDays,
	FieldVegetativeDays,
	FieldFloweringDays,
	FieldTotalCycleDays,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// GerminationDaysValidator is a validator for the "germination_days" field. It is called by the builders before save.
	GerminationDaysValidator func(int) error
	// VegetativeDaysValidator is a validator for the "vegetative_days" field. It is called by the builders before save.
	VegetativeDaysValidator func(int) error
	// FloweringDaysValidator is a validator for the "flowering_days" field. It is called by the builders before save.
	FloweringDaysValidator func(int) error
	// TotalCycleDaysValidator is a validator for the "total_cycle_days" field. It is called by the builders before save.
	TotalCycleDaysValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Crop queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByVariety orders the results by the variety field.
func ByVariety(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariety, opts...).ToFunc()
}

// ByGerminationDays orders the results by the germination_days field.
func ByGerminationDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGerminationDays, opts...).ToFunc()
}

// ByVegetativeDays orders the results by the vegetative_days field.
func ByVegetativeDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVegetativeDays, opts...).ToFunc()
}

// ByFloweringDays orders the results by the flowering_days field.
func ByFloweringDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFloweringDays, opts...).ToFunc()
}

// ByTotalCycleDays orders the results by the total_cycle_days field.
func ByTotalCycleDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalCycleDays, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPriceRecordsCount orders the results by price_records count.
func ByPriceRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPriceRecordsStep(), opts...)
	}
}

// ByPriceRecords orders the results by price_records terms.
func ByPriceRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPriceRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPriceRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PriceRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PriceRecordsTable, PriceRecordsColumn),
	)
}
