// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/google/uuid"
)

// Block is the model entity for the Block schema.
type Block struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FarmID holds the value of the "farm_id" field.
	FarmID uuid.UUID `json:"farm_id,omitempty"`
	// PhysicalBlockID holds the value of the "physical_block_id" field.
	PhysicalBlockID *uuid.UUID `json:"physical_block_id,omitempty"`
	// LegacyCode holds the value of the "legacy_code" field.
	LegacyCode string `json:"legacy_code,omitempty"`
	// SequenceNumber holds the value of the "sequence_number" field.
	SequenceNumber int `json:"sequence_number,omitempty"`
	// BlockType holds the value of the "block_type" field.
	BlockType string `json:"block_type,omitempty"`
	// MaxCapacity holds the value of the "max_capacity" field.
	MaxCapacity int `json:"max_capacity,omitempty"`
	// State holds the value of the "state" field.
	State string `json:"state,omitempty"`
	// CropName holds the value of the "crop_name" field.
	CropName string `json:"crop_name,omitempty"`
	// PlantingDate holds the value of the "planting_date" field.
	PlantingDate *time.Time `json:"planting_date,omitempty"`
	// WateringFrequencyDays holds the value of the "watering_frequency_days" field.
	WateringFrequencyDays int `json:"watering_frequency_days,omitempty"`
	// ExpectedStatusChanges holds the value of the "expected_status_changes" field.
	ExpectedStatusChanges map[string]time.Time `json:"expected_status_changes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BlockQuery when eager-loading is set.
	Edges        BlockEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BlockEdges holds the relations/edges for other nodes in the graph.
type BlockEdges struct {
	// Farm holds the value of the farm edge.
	Farm *Farm `json:"farm,omitempty"`
	// PhysicalBlock holds the value of the physical_block edge.
	PhysicalBlock *PhysicalBlock `json:"physical_block,omitempty"`
	// ArchivedCycles holds the value of the archived_cycles edge.
	ArchivedCycles []*ArchivedCycle `json:"archived_cycles,omitempty"`
	// Harvests holds the value of the harvests edge.
	Harvests []*Harvest `json:"harvests,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// FarmOrErr returns the Farm value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlockEdges) FarmOrErr() (*Farm, error) {
	if e.Farm != nil {
		return e.Farm, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: farm.Label}
	}
	return nil, &NotLoadedError{edge: "farm"}
}

// PhysicalBlockOrErr returns the PhysicalBlock value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BlockEdges) PhysicalBlockOrErr() (*PhysicalBlock, error) {
	if e.PhysicalBlock != nil {
		return e.PhysicalBlock, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: physicalblock.Label}
	}
	return nil, &NotLoadedError{edge: "physical_block"}
}

// ArchivedCyclesOrErr returns the ArchivedCycles value or an error if the edge
// was not loaded in eager-loading.
func (e BlockEdges) ArchivedCyclesOrErr() ([]*ArchivedCycle, error) {
	if e.loadedTypes[2] {
		return e.ArchivedCycles, nil
	}
	return nil, &NotLoadedError{edge: "archived_cycles"}
}

// HarvestsOrErr returns the Harvests value or an error if the edge
// was not loaded in eager-loading.
func (e BlockEdges) HarvestsOrErr() ([]*Harvest, error) {
	if e.loadedTypes[3] {
		return e.Harvests, nil
	}
	return nil, &NotLoadedError{edge: "harvests"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Block) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case block.FieldPhysicalBlockID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case block.FieldExpectedStatusChanges:
			values[i] = new([]byte)
		case block.FieldSequenceNumber, block.FieldMaxCapacity, block.FieldWateringFrequencyDays:
			values[i] = new(sql.NullInt64)
		case block.FieldLegacyCode, block.FieldBlockType, block.FieldState, block.FieldCropName:
			values[i] = new(sql.NullString)
		case block.FieldPlantingDate, block.FieldCreatedAt, block.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case block.FieldID, block.FieldFarmID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Block fields.
func (_m *Block) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case block.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case block.FieldFarmID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field farm_id", values[i])
			} else if value != nil {
				_m.FarmID = *value
			}
		case block.FieldPhysicalBlockID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field physical_block_id", values[i])
			} else if value.Valid {
				_m.PhysicalBlockID = new(uuid.UUID)
				*_m.PhysicalBlockID = *value.S.(*uuid.UUID)
			}
		case block.FieldLegacyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field legacy_code", values[i])
			} else if value.Valid {
				_m.LegacyCode = value.String
			}
		case block.FieldSequenceNumber:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence_number", values[i])
			} else if value.Valid {
				_m.SequenceNumber = int(value.Int64)
			}
		case block.FieldBlockType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field block_type", values[i])
			} else if value.Valid {
				_m.BlockType = value.String
			}
		case block.FieldMaxCapacity:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field max_capacity", values[i])
			} else if value.Valid {
				_m.MaxCapacity = int(value.Int64)
			}
		case block.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case block.FieldCropName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field crop_name", values[i])
			} else if value.Valid {
				_m.CropName = value.String
			}
		case block.FieldPlantingDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field planting_date", values[i])
			} else if value.Valid {
				_m.PlantingDate = new(time.Time)
				*_m.PlantingDate = value.Time
			}
		case block.FieldWateringFrequencyDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field watering_frequency_days", values[i])
			} else if value.Valid {
				_m.WateringFrequencyDays = int(value.Int64)
			}
		case block.FieldExpectedStatusChanges:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field expected_status_changes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ExpectedStatusChanges); err != nil {
					return fmt.Errorf("unmarshal field expected_status_changes: %w", err)
				}
			}
		case block.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case block.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Block.
// This includes values selected through modifiers, order, etc.
func (_m *Block) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFarm queries the "farm" edge of the Block entity.
func (_m *Block) QueryFarm() *FarmQuery {
	return NewBlockClient(_m.config).QueryFarm(_m)
}

// QueryPhysicalBlock queries the "physical_block" edge of the Block entity.
func (_m *Block) QueryPhysicalBlock() *PhysicalBlockQuery {
	return NewBlockClient(_m.config).QueryPhysicalBlock(_m)
}

// QueryArchivedCycles queries the "archived_cycles" edge of the Block entity.
func (_m *Block) QueryArchivedCycles() *ArchivedCycleQuery {
	return NewBlockClient(_m.config).QueryArchivedCycles(_m)
}

// QueryHarvests queries the "harvests" edge of the Block entity.
func (_m *Block) QueryHarvests() *HarvestQuery {
	return NewBlockClient(_m.config).QueryHarvests(_m)
}

// Update returns a builder for updating this Block.
// Note that you need to call Block.Unwrap() before calling this method if this Block
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Block) Update() *BlockUpdateOne {
	return NewBlockClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Block entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Block) Unwrap() *Block {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Block is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Block) String() string {
	var builder strings.Builder
	builder.WriteString("Block(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("farm_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FarmID))
	builder.WriteString(", ")
	if v := _m.PhysicalBlockID; v != nil {
		builder.WriteString("physical_block_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("legacy_code=")
	builder.WriteString(_m.LegacyCode)
	builder.WriteString(", ")
	builder.WriteString("sequence_number=")
	builder.WriteString(fmt.Sprintf("%v", _m.SequenceNumber))
	builder.WriteString(", ")
	builder.WriteString("block_type=")
	builder.WriteString(_m.BlockType)
	builder.WriteString(", ")
	builder.WriteString("max_capacity=")
	builder.WriteString(fmt.Sprintf("%v", _m.MaxCapacity))
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("crop_name=")
	builder.WriteString(_m.CropName)
	builder.WriteString(", ")
	if v := _m.PlantingDate; v != nil {
		builder.WriteString("planting_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("watering_frequency_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.WateringFrequencyDays))
	builder.WriteString(", ")
	builder.WriteString("expected_status_changes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ExpectedStatusChanges))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Blocks is a parsable slice of Block.
type Blocks []*Block
