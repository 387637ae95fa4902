// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/google/uuid"
)

// PhysicalBlock is the model entity for the PhysicalBlock schema.
type PhysicalBlock struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID uuid.UUID `json:"farm_id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// AreaSqM holds the value of the "area_sq_m" field.
	AreaSqM *float64 `json:"area_sq_m,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PhysicalBlockQuery when eager-loading is set.
	Edges        PhysicalBlockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PhysicalBlockEdges holds the relations/edges for other nodes in the graph.
type PhysicalBlockEdges struct {
	// Farm holds the value of the farm edge.
	Farm *Farm `json:"farm,omitempty"`
	// Blocks holds the value of the blocks edge.
	Blocks []*Block `json:"blocks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FarmOrErr returns the Farm value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PhysicalBlockEdges) FarmOrErr() (*Farm, error) {
	if e.Farm != nil {
		return e.Farm, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: farm.Label}
	}
	return nil, &NotLoadedError{edge: "farm"}
}

// BlocksOrErr returns the Blocks value or an error if the edge
// was not loaded in eager-loading.
func (e PhysicalBlockEdges) BlocksOrErr() ([]*Block, error) {
	if e.loadedTypes[1] {
		return e.Blocks, nil
	}
	return nil, &NotLoadedError{edge: "blocks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PhysicalBlock) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case physicalblock.FieldAreaSqM:
			values[i] = new(sql.NullFloat64)
		case physicalblock.FieldLegacyCode, physicalblock.FieldName:
			values[i] = new(sql.NullString)
		case physicalblock.FieldCreatedAt, physicalblock.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case physicalblock.FieldID, physicalblock.FieldFarmID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PhysicalBlock fields.
func (_m *PhysicalBlock) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case physicalblock.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case physicalblock.FieldFarmID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value != nil {
				_m.FarmID = *value
			}
		case physicalblock.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case physicalblock.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case physicalblock.FieldAreaSqM:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field area_sq_m", values[i])
			} else if value.Valid {
				_m.AreaSqM = new(float64)
				*_m.AreaSqM = value.Float64
			}
		case physicalblock.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case physicalblock.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the PhysicalBlock.
// This includes values selected through modifiers, order, etc.
func (_m *PhysicalBlock) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFarm queries the "farm" edge of the PhysicalBlock entity.
func (_m *PhysicalBlock) QueryFarm() *FarmQuery {
	return NewPhysicalBlockClient(_m.config).QueryFarm(_m)
}

// QueryBlocks queries the "blocks" edge of the PhysicalBlock entity.
func (_m *PhysicalBlock) QueryBlocks() *BlockQuery {
	return NewPhysicalBlockClient(_m.config).QueryBlocks(_m)
}

// Update returns a builder for updating this PhysicalBlock.
// Note that you need to call PhysicalBlock.Unwrap() before calling this method if this PhysicalBlock
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PhysicalBlock) Update() *PhysicalBlockUpdateOne {
	return NewPhysicalBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PhysicalBlock entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PhysicalBlock) Unwrap() *PhysicalBlock {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PhysicalBlock is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PhysicalBlock) String() string {
	var builder strings.Builder
	builder.WriteString("PhysicalBlock(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farm_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmID))
	builder.WriteString(", ")
	builder.WriteString("legacy_code=")
	builder.WriteString(_m.LegacyCode)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.AreaSqM; v != nil {
		builder.WriteString("area_sq_m=")
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

// PhysicalBlocks is a parsable slice of PhysicalBlock.
type PhysicalBlocks []*PhysicalBlock
