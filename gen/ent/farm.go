// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/google/uuid"
)

// Farm is the model entity for the Farm schema.
type Farm struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Location holds the value of the "location" field.
	Location string `json:"location,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FarmQuery when eager-loading is set.
	Edges        FarmEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FarmEdges holds the relations/edges for other nodes in the graph.
type FarmEdges struct {
	// PhysicalBlocks holds the value of the physical_blocks edge.
	PhysicalBlocks []*PhysicalBlock `json:"physical_blocks,omitempty"`
	// Blocks holds the value of the blocks edge.
	Blocks []*Block `json:"blocks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// PhysicalBlocksOrErr returns the PhysicalBlocks value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) PhysicalBlocksOrErr() ([]*PhysicalBlock, error) {
	if e.loadedTypes[0] {
		return e.PhysicalBlocks, nil
	}
	return nil, &NotLoadedError{edge: "physical_blocks"}
}

// BlocksOrErr returns the Blocks value or an error if the edge
// was not loaded in eager-loading.
func (e FarmEdges) BlocksOrErr() ([]*Block, error) {
	if e.loadedTypes[1] {
		return e.Blocks, nil
	}
	return nil, &NotLoadedError{edge: "blocks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Farm) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case farm.FieldLegacyCode, farm.FieldName, farm.FieldLocation:
			values[i] = new(sql.NullString)
		case farm.FieldCreatedAt, farm.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case farm.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Farm fields.
func (_m *Farm) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case farm.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case farm.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case farm.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case farm.FieldLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field location", values[i])
			} else if value.Valid {
				_m.Location = value.String
			}
		case farm.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case farm.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Farm.
// This includes values selected through modifiers, order, etc.
func (_m *Farm) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPhysicalBlocks queries the "physical_blocks" edge of the Farm entity.
func (_m *Farm) QueryPhysicalBlocks() *PhysicalBlockQuery {
	return NewFarmClient(_m.config).QueryPhysicalBlocks(_m)
}

// QueryBlocks queries the "blocks" edge of the Farm entity.
func (_m *Farm) QueryBlocks() *BlockQuery {
	return NewFarmClient(_m.config).QueryBlocks(_m)
}

// Update returns a builder for updating this Farm.
// Note that you need to call Farm.Unwrap() before calling this method if this Farm
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Farm) Update() *FarmUpdateOne {
	return NewFarmClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Farm entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Farm) Unwrap() *Farm {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Farm is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Farm) String() string {
	var builder strings.Builder
	builder.WriteString("Farm(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("legacy_code=")
	builder.WriteString(_m.LegacyCode)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("location=")
	builder.WriteString(_m.Location)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Farms is a parsable slice of Farm.
type Farms []*Farm
