// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

// PriceRecord is the model entity for the PriceRecord schema.
type PriceRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CropID holds the value of the "crop_id" field.
	CropID *uuid.UUID `json:"crop_id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// CropName holds the value of the "crop_name" field.
	CropName string `json:"crop_name,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// PricePerKg holds the value of the "price_per_kg" field.
	PricePerKg float64 `json:"price_per_kg,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PriceRecordQuery when eager-loading is set.
	Edges        PriceRecordEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PriceRecordEdges holds the relations/edges for other nodes in the graph.
type PriceRecordEdges struct {
	// Crop holds the value of the crop edge.
	Crop *Crop `json:"crop,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// CropOrErr returns the Crop value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PriceRecordEdges) CropOrErr() (*Crop, error) {
	if e.Crop != nil {
		return e.Crop, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: crop.Label}
	}
	return nil, &NotLoadedError{edge: "crop"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PriceRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pricerecord.FieldCropID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case pricerecord.FieldPricePerKg:
			values[i] = new(sql.NullFloat64)
		case pricerecord.FieldLegacyCode, pricerecord.FieldCropName, pricerecord.FieldCurrencyCode:
			values[i] = new(sql.NullString)
		case pricerecord.FieldDate, pricerecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case pricerecord.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PriceRecord fields.
func (_m *PriceRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pricerecord.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case pricerecord.FieldCropID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field crop_id", values[i])
			} else if value.Valid {
				_m.CropID = new(uuid.UUID)
				*_m.CropID = *value.S.(*uuid.UUID)
			}
		case pricerecord.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case pricerecord.FieldCropName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_name", values[i])
			} else if value.Valid {
				_m.CropName = value.String
			}
		case pricerecord.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case pricerecord.FieldPricePerKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_kg", values[i])
			} else if value.Valid {
				_m.PricePerKg = value.Float64
			}
		case pricerecord.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case pricerecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PriceRecord.
// This includes values selected through modifiers, order, etc.
func (_m *PriceRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryCrop queries the "crop" edge of the PriceRecord entity.
func (_m *PriceRecord) QueryCrop() *CropQuery {
	return NewPriceRecordClient(_m.config).QueryCrop(_m)
}

// Update returns a builder for updating this PriceRecord.
// Note that you need to call PriceRecord.Unwrap() before calling this method if this PriceRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PriceRecord) Update() *PriceRecordUpdateOne {
	return NewPriceRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PriceRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PriceRecord) Unwrap() *PriceRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PriceRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PriceRecord) String() string {
	var builder strings.Builder
	builder.WriteString("PriceRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.CropID; v != nil {
		builder.WriteString("crop_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("legacy_code=")
	builder.WriteString(_m.LegacyCode)
	builder.WriteString(", ")
	builder.WriteString("crop_name=")
	builder.WriteString(_m.CropName)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("price_per_kg=")
	builder.WriteString(fmt.Sprintf("%v", _m.PricePerKg))
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PriceRecords is a parsable slice of PriceRecord.
type PriceRecords []*PriceRecord
