// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/google/uuid"
)

// Crop is the model entity for the Crop schema.
type Crop struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Variety holds the value of the "variety" field.
	Variety string `json:"variety,omitempty"`
	// GerminationDays holds the value of the "germination_days" field.
	GerminationDays *int `json:"germination_days,omitempty"`
	// VegetativeDays holds the value of the "vegetative_days" field.
	VegetativeDays *int `json:"vegetative_days,omitempty"`
	// FloweringDays holds the value of the "flowering_days" field.
	FloweringDays *int `json:"flowering_days,omitempty"`
	// TotalCycleDays holds the value of the "total_cycle_days" field.
	TotalCycleDays *int `json:"total_cycle_days,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CropQuery when eager-loading is set.
	Edges        CropEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CropEdges holds the relations/edges for other nodes in the graph.
type CropEdges struct {
	// PriceRecords holds the value of the price_records edge.
	PriceRecords []*PriceRecord `json:"price_records,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PriceRecordsOrErr returns the PriceRecords value or an error if the edge
// was not loaded in eager-loading.
func (e CropEdges) PriceRecordsOrErr() ([]*PriceRecord, error) {
	if e.loadedTypes[0] {
		return e.PriceRecords, nil
	}
	return nil, &NotLoadedError{edge: "price_records"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Crop) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crop.FieldGerminationDays, crop.FieldVegetativeDays, crop.FieldFloweringDays, crop.FieldTotalCycleDays:
			values[i] = new(sql.NullInt64)
		case crop.FieldName, crop.FieldVariety:
			values[i] = new(sql.NullString)
		case crop.FieldCreatedAt, crop.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case crop.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Crop fields.
func (_m *Crop) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crop.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case crop.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case crop.FieldVariety:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variety", values[i])
			} else if value.Valid {
				_m.Variety = value.String
			}
		case crop.FieldGerminationDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field germination_days", values[i])
			} else if value.Valid {
				_m.GerminationDays = new(int)
				*_m.GerminationDays = int(value.Int64)
			}
		case crop.FieldVegetativeDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vegetative_days", values[i])
			} else if value.Valid {
				_m.VegetativeDays = new(int)
				*_m.VegetativeDays = int(value.Int64)
			}
		case crop.FieldFloweringDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flowering_days", values[i])
			} else if value.Valid {
				_m.FloweringDays = new(int)
				*_m.FloweringDays = int(value.Int64)
			}
		case crop.FieldTotalCycleDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_cycle_days", values[i])
			} else if value.Valid {
				_m.TotalCycleDays = new(int)
				*_m.TotalCycleDays = int(value.Int64)
			}
		case crop.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case crop.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Crop.
// This includes values selected through modifiers, order, etc.
func (_m *Crop) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPriceRecords queries the "price_records" edge of the Crop entity.
func (_m *Crop) QueryPriceRecords() *PriceRecordQuery {
	return NewCropClient(_m.config).QueryPriceRecords(_m)
}

// Update returns a builder for updating this Crop.
// Note that you need to call Crop.Unwrap() before calling this method if this Crop
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Crop) Update() *CropUpdateOne {
	return NewCropClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Crop entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Crop) Unwrap() *Crop {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Crop is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Crop) String() string {
	var builder strings.Builder
	builder.WriteString("Crop(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("variety=")
	builder.WriteString(_m.Variety)
	builder.WriteString(", ")
	if v := _m.GerminationDays; v != nil {
		builder.WriteString("germination_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.VegetativeDays; v != nil {
		builder.WriteString("vegetative_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.FloweringDays; v != nil {
		builder.WriteString("flowering_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.TotalCycleDays; v != nil {
		builder.WriteString("total_cycle_days=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Crops is a parsable slice of Crop.
type Crops []*Crop
