// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/google/uuid"
)

// BlockCreate is the builder for creating a Block entity.
type BlockCreate struct {
	config
	mutation *BlockMutation
	hooks    []Hook
}

// SetFarmID sets the "farm_id" field.
func (_c *BlockCreate) SetFarmID(v uuid.UUID) *BlockCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetPhysicalBlockID sets the "physical_block_id" field.
func (_c *BlockCreate) SetPhysicalBlockID(v uuid.UUID) *BlockCreate {
	_c.mutation.SetPhysicalBlockID(v)
	return _c
}

// SetNillablePhysicalBlockID sets the "physical_block_id" field if the given value is not nil.
func (_c *BlockCreate) SetNillablePhysicalBlockID(v *uuid.UUID) *BlockCreate {
	if v != nil {
		_c.SetPhysicalBlockID(*v)
	}
	return _c
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *BlockCreate) SetLegacyCode(v string) *BlockCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetSequenceNumber sets the "sequence_number" field.
func (_c *BlockCreate) SetSequenceNumber(v int) *BlockCreate {
	_c.mutation.SetSequenceNumber(v)
	return _c
}

// SetBlockType sets the "block_type" field.
func (_c *BlockCreate) SetBlockType(v string) *BlockCreate {
	_c.mutation.SetBlockType(v)
	return _c
}

// SetMaxCapacity sets the "max_capacity" field.
func (_c *BlockCreate) SetMaxCapacity(v int) *BlockCreate {
	_c.mutation.SetMaxCapacity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *BlockCreate) SetState(v string) *BlockCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetCropName sets the "crop_name" field.
func (_c *BlockCreate) SetCropName(v string) *BlockCreate {
	_c.mutation.SetCropName(v)
	return _c
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_c *BlockCreate) SetNillableCropName(v *string) *BlockCreate {
	if v != nil {
		_c.SetCropName(*v)
	}
	return _c
}

// SetPlantingDate sets the "planting_date" field.
func (_c *BlockCreate) SetPlantingDate(v time.Time) *BlockCreate {
	_c.mutation.SetPlantingDate(v)
	return _c
}

// SetNillablePlantingDate sets the "planting_date" field if the given value is not nil.
func (_c *BlockCreate) SetNillablePlantingDate(v *time.Time) *BlockCreate {
	if v != nil {
		_c.SetPlantingDate(*v)
	}
	return _c
}

// SetWateringFrequencyDays sets the "watering_frequency_days" field.
func (_c *BlockCreate) SetWateringFrequencyDays(v int) *BlockCreate {
	_c.mutation.SetWateringFrequencyDays(v)
	return _c
}

// SetExpectedStatusChanges sets the "expected_status_changes" field.
func (_c *BlockCreate) SetExpectedStatusChanges(v map[string]time.Time) *BlockCreate {
	_c.mutation.SetExpectedStatusChanges(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BlockCreate) SetCreatedAt(v time.Time) *BlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BlockCreate) SetNillableCreatedAt(v *time.Time) *BlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BlockCreate) SetUpdatedAt(v time.Time) *BlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BlockCreate) SetNillableUpdatedAt(v *time.Time) *BlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BlockCreate) SetID(v uuid.UUID) *BlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BlockCreate) SetNillableID(v *uuid.UUID) *BlockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_c *BlockCreate) SetFarm(v *Farm) *BlockCreate {
	return _c.SetFarmID(v.ID)
}

// SetPhysicalBlock sets the "physical_block" edge to the PhysicalBlock entity.
func (_c *BlockCreate) SetPhysicalBlock(v *PhysicalBlock) *BlockCreate {
	return _c.SetPhysicalBlockID(v.ID)
}

// AddArchivedCycleIDs adds the "archived_cycles" edge to the ArchivedCycle entity by IDs.
func (_c *BlockCreate) AddArchivedCycleIDs(ids ...uuid.UUID) *BlockCreate {
	_c.mutation.AddArchivedCycleIDs(ids...)
	return _c
}

// AddArchivedCycles adds the "archived_cycles" edges to the ArchivedCycle entity.
func (_c *BlockCreate) AddArchivedCycles(v ...*ArchivedCycle) *BlockCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddArchivedCycleIDs(ids...)
}

// AddHarvestIDs adds the "harvests" edge to the Harvest entity by IDs.
func (_c *BlockCreate) AddHarvestIDs(ids ...uuid.UUID) *BlockCreate {
	_c.mutation.AddHarvestIDs(ids...)
	return _c
}

// AddHarvests adds the "harvests" edges to the Harvest entity.
func (_c *BlockCreate) AddHarvests(v ...*Harvest) *BlockCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddHarvestIDs(ids...)
}

// Mutation returns the BlockMutation object of the builder.
func (_c *BlockCreate) Mutation() *BlockMutation {
	return _c.mutation
}

// Save creates the Block in the database.
func (_c *BlockCreate) Save(ctx context.Context) (*Block, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BlockCreate) SaveX(ctx context.Context) *Block {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := block.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := block.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := block.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BlockCreate) check() error {
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "Block.farm_id"`)}
	}
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "Block.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := block.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Block.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SequenceNumber(); !ok {
		return &ValidationError{Name: "sequence_number", err: errors.New(`ent: missing required field "Block.sequence_number"`)}
	}
	if v, ok := _c.mutation.SequenceNumber(); ok {
		if err := block.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "Block.sequence_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BlockType(); !ok {
		return &ValidationError{Name: "block_type", err: errors.New(`ent: missing required field "Block.block_type"`)}
	}
	if v, ok := _c.mutation.BlockType(); ok {
		if err := block.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "Block.block_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxCapacity(); !ok {
		return &ValidationError{Name: "max_capacity", err: errors.New(`ent: missing required field "Block.max_capacity"`)}
	}
	if v, ok := _c.mutation.MaxCapacity(); ok {
		if err := block.MaxCapacityValidator(v); err != nil {
			return &ValidationError{Name: "max_capacity", err: fmt.Errorf(`ent: validator failed for field "Block.max_capacity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Block.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := block.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Block.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WateringFrequencyDays(); !ok {
		return &ValidationError{Name: "watering_frequency_days", err: errors.New(`ent: missing required field "Block.watering_frequency_days"`)}
	}
	if v, ok := _c.mutation.WateringFrequencyDays(); ok {
		if err := block.WateringFrequencyDaysValidator(v); err != nil {
			return &ValidationError{Name: "watering_frequency_days", err: fmt.Errorf(`ent: validator failed for field "Block.watering_frequency_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Block.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Block.updated_at"`)}
	}
	if len(_c.mutation.FarmIDs()) == 0 {
		return &ValidationError{Name: "farm", err: errors.New(`ent: missing required edge "Block.farm"`)}
	}
	return nil
}

func (_c *BlockCreate) sqlSave(ctx context.Context) (*Block, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BlockCreate) createSpec() (*Block, *sqlgraph.CreateSpec) {
	var (
		_node = &Block{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(block.Table, sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(block.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.SequenceNumber(); ok {
		_spec.SetField(block.FieldSequenceNumber, field.TypeInt, value)
		_node.SequenceNumber = value
	}
	if value, ok := _c.mutation.BlockType(); ok {
		_spec.SetField(block.FieldBlockType, field.TypeString, value)
		_node.BlockType = value
	}
	if value, ok := _c.mutation.MaxCapacity(); ok {
		_spec.SetField(block.FieldMaxCapacity, field.TypeInt, value)
		_node.MaxCapacity = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(block.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.CropName(); ok {
		_spec.SetField(block.FieldCropName, field.TypeString, value)
		_node.CropName = value
	}
	if value, ok := _c.mutation.PlantingDate(); ok {
		_spec.SetField(block.FieldPlantingDate, field.TypeTime, value)
		_node.PlantingDate = &value
	}
	if value, ok := _c.mutation.WateringFrequencyDays(); ok {
		_spec.SetField(block.FieldWateringFrequencyDays, field.TypeInt, value)
		_node.WateringFrequencyDays = value
	}
	if value, ok := _c.mutation.ExpectedStatusChanges(); ok {
		_spec.SetField(block.FieldExpectedStatusChanges, field.TypeJSON, value)
		_node.ExpectedStatusChanges = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(block.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(block.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FarmIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   block.FarmTable,
			Columns: []string{block.FarmColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FarmID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PhysicalBlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   block.PhysicalBlockTable,
			Columns: []string{block.PhysicalBlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PhysicalBlockID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ArchivedCyclesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   block.ArchivedCyclesTable,
			Columns: []string{block.ArchivedCyclesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(archivedcycle.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.HarvestsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   block.HarvestsTable,
			Columns: []string{block.HarvestsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(harvest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BlockCreateBulk is the builder for creating many Block entities in bulk.
type BlockCreateBulk struct {
	config
	err      error
	builders []*BlockCreate
}

// Save creates the Block entities in the database.
func (_c *BlockCreateBulk) Save(ctx context.Context) ([]*Block, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Block, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BlockMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BlockCreateBulk) SaveX(ctx context.Context) []*Block {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
