// Code generated by ent, DO NOT EDIT.

package pricerecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the pricerecord type in the database.
	Label = "price_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCropID holds the string denoting the crop_id field in the database.
	FieldCropID = "crop_id"
	// FieldLegacyCode holds the string denoting the legacy_code field in the database.
	FieldLegacyCode = "legacy_code"
	// FieldCropName holds the string denoting the crop_name field in the database.
	FieldCropName = "crop_name"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldPricePerKg holds the string denoting the price_per_kg field in the database.
	FieldPricePerKg = "price_per_kg"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeCrop holds the string denoting the crop edge name in mutations.
	EdgeCrop = "crop"
	// Table holds the table name of the pricerecord in the database.
	Table = "price_records"
	// CropTable is the table that holds the crop relation/edge.
	CropTable = "price_records"
	// CropInverseTable is the table name for the Crop entity.
	// It exists in this package in order to avoid circular dependency with the "crop" package.
	CropInverseTable = "crops"
	// CropColumn is the table column denoting the crop relation/edge.
	CropColumn = "crop_id"
)

// Columns holds all SQL columns for pricerecord fields.
var Columns = []string{
	FieldID,
	FieldCropID,
	FieldLegacyCode,
	FieldCropName,
	FieldDate,
	FieldPricePerKg,
	FieldCurrencyCode,
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
	// CropNameValidator is a validator for the "crop_name" field. It is called by the builders before save.
	CropNameValidator func(string) error
	// PricePerKgValidator is a validator for the "price_per_kg" field. It is called by the builders before save.
	PricePerKgValidator func(float64) error
	// CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	CurrencyCodeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PriceRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCropID orders the results by the crop_id field.
func ByCropID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropID, opts...).ToFunc()
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

// ByPricePerKg orders the results by the price_per_kg field.
func ByPricePerKg(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerKg, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByCropField orders the results by crop field.
func ByCropField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCropStep(), sql.OrderByField(field, opts...))
	}
}
func newCropStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CropInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CropTable, CropColumn),
	)
}
