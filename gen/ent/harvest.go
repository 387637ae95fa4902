// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/google/uuid"
)

// Harvest is the model entity for the Harvest schema.
type Harvest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BlockID holds the value of the "block_id" field.
	BlockID uuid.UUID `json:"block_id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// CropName holds the value of the "crop_name" field.
	CropName string `json:"crop_name,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// QuantityKg holds the value of the "quantity_kg" field.
	QuantityKg float64 `json:"quantity_kg,omitempty"`
	// Grade holds the value of the "grade" field.
	Grade string `json:"grade,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HarvestQuery when eager-loading is set.
	Edges        HarvestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HarvestEdges holds the relations/edges for other nodes in the graph.
type HarvestEdges struct {
	// Block holds the value of the block edge.
	Block *Block `json:"block,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlockOrErr returns the Block value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HarvestEdges) BlockOrErr() (*Block, error) {
	if e.Block != nil {
		return e.Block, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: block.Label}
	}
	return nil, &NotLoadedError{edge: "block"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Harvest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case harvest.FieldQuantityKg:
			values[i] = new(sql.NullFloat64)
		case harvest.FieldLegacyCode, harvest.FieldCropName, harvest.FieldGrade:
			values[i] = new(sql.NullString)
		case harvest.FieldDate, harvest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case harvest.FieldID, harvest.FieldBlockID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Harvest fields.
func (_m *Harvest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case harvest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case harvest.FieldBlockID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field block_id", values[i])
			} else if value != nil {
				_m.BlockID = *value
			}
		case harvest.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case harvest.FieldCropName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_name", values[i])
			} else if value.Valid {
				_m.CropName = value.String
			}
		case harvest.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case harvest.FieldQuantityKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field quantity_kg", values[i])
			} else if value.Valid {
				_m.QuantityKg = value.Float64
			}
		case harvest.FieldGrade:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field grade", values[i])
			} else if value.Valid {
				_m.Grade = value.String
			}
		case harvest.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Harvest.
// This includes values selected through modifiers, order, etc.
func (_m *Harvest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlock queries the "block" edge of the Harvest entity.
func (_m *Harvest) QueryBlock() *BlockQuery {
	return NewHarvestClient(_m.config).QueryBlock(_m)
}

// Update returns a builder for updating this Harvest.
// Note that you need to call Harvest.Unwrap() before calling this method if this Harvest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Harvest) Update() *HarvestUpdateOne {
	return NewHarvestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Harvest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Harvest) Unwrap() *Harvest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Harvest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Harvest) String() string {
	var builder strings.Builder
	builder.WriteString("Harvest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("block_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockID))
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
	builder.WriteString("quantity_kg=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuantityKg))
	builder.WriteString(", ")
	builder.WriteString("grade=")
	builder.WriteString(_m.Grade)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Harvests is a parsable slice of Harvest.
type Harvests []*Harvest
