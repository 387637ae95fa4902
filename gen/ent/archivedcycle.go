// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/google/uuid"
)

// ArchivedCycle is the model entity for the ArchivedCycle schema.
type ArchivedCycle struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BlockID holds the value of the "block_id" field.
	BlockID uuid.UUID `json:"block_id,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID uuid.UUID `json:"farm_id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// CropName holds the value of the "crop_name" field.
	CropName string `json:"crop_name,omitempty"`
	// PlantingDate holds the value of the "planting_date" field.
	PlantingDate time.Time `json:"planting_date,omitempty"`
	// ClearedDate holds the value of the "cleared_date" field.
	ClearedDate *time.Time `json:"cleared_date,omitempty"`
	// YieldKg holds the value of the "yield_kg" field.
	YieldKg *float64 `json:"yield_kg,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ArchivedCycleQuery when eager-loading is set.
	Edges        ArchivedCycleEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ArchivedCycleEdges holds the relations/edges for other nodes in the graph.
type ArchivedCycleEdges struct {
	// Block holds the value of the block edge.
	Block *Block `json:"block,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BlockOrErr returns the Block value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ArchivedCycleEdges) BlockOrErr() (*Block, error) {
	if e.Block != nil {
		return e.Block, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: block.Label}
	}
	return nil, &NotLoadedError{edge: "block"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ArchivedCycle) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case archivedcycle.FieldYieldKg:
			values[i] = new(sql.NullFloat64)
		case archivedcycle.FieldLegacyCode, archivedcycle.FieldCropName:
			values[i] = new(sql.NullString)
		case archivedcycle.FieldPlantingDate, archivedcycle.FieldClearedDate, archivedcycle.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case archivedcycle.FieldID, archivedcycle.FieldBlockID, archivedcycle.FieldFarmID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ArchivedCycle fields.
func (_m *ArchivedCycle) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case archivedcycle.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case archivedcycle.FieldBlockID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field block_id", values[i])
			} else if value != nil {
				_m.BlockID = *value
			}
		case archivedcycle.FieldFarmID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value != nil {
				_m.FarmID = *value
			}
		case archivedcycle.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case archivedcycle.FieldCropName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_name", values[i])
			} else if value.Valid {
				_m.CropName = value.String
			}
		case archivedcycle.FieldPlantingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field planting_date", values[i])
			} else if value.Valid {
				_m.PlantingDate = value.Time
			}
		case archivedcycle.FieldClearedDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cleared_date", values[i])
			} else if value.Valid {
				_m.ClearedDate = new(time.Time)
				*_m.ClearedDate = value.Time
			}
		case archivedcycle.FieldYieldKg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field yield_kg", values[i])
			} else if value.Valid {
				_m.YieldKg = new(float64)
				*_m.YieldKg = value.Float64
			}
		case archivedcycle.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ArchivedCycle.
// This includes values selected through modifiers, order, etc.
func (_m *ArchivedCycle) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBlock queries the "block" edge of the ArchivedCycle entity.
func (_m *ArchivedCycle) QueryBlock() *BlockQuery {
	return NewArchivedCycleClient(_m.config).QueryBlock(_m)
}

// Update returns a builder for updating this ArchivedCycle.
// Note that you need to call ArchivedCycle.Unwrap() before calling this method if this ArchivedCycle
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ArchivedCycle) Update() *ArchivedCycleUpdateOne {
	return NewArchivedCycleClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ArchivedCycle entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ArchivedCycle) Unwrap() *ArchivedCycle {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ArchivedCycle is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ArchivedCycle) String() string {
	var builder strings.Builder
	builder.WriteString("ArchivedCycle(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("block_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BlockID))
	builder.WriteString(", ")
	builder.WriteString("farm_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmID))
	builder.WriteString(", ")
	builder.WriteString("legacy_code=")
	builder.WriteString(_m.LegacyCode)
	builder.WriteString(", ")
	builder.WriteString("crop_name=")
	builder.WriteString(_m.CropName)
	builder.WriteString(", ")
	builder.WriteString("planting_date=")
	builder.WriteString(_m.PlantingDate.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.ClearedDate; v != nil {
		builder.WriteString("cleared_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.YieldKg; v != nil {
		builder.WriteString("yield_kg=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ArchivedCycles is a parsable slice of ArchivedCycle.
type ArchivedCycles []*ArchivedCycle
