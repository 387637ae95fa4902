// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// BlockUpdate is the builder for updating Block entities.
type BlockUpdate struct {
	config
	hooks    []Hook
	mutation *BlockMutation
}

// Where appends a list predicates to the BlockUpdate builder.
func (_u *BlockUpdate) Where(ps ...predicate.Block) *BlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *BlockUpdate) SetFarmID(v uuid.UUID) *BlockUpdate {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableFarmID(v *uuid.UUID) *BlockUpdate {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetPhysicalBlockID sets the "physical_block_id" field.
func (_u *BlockUpdate) SetPhysicalBlockID(v uuid.UUID) *BlockUpdate {
	_u.mutation.SetPhysicalBlockID(v)
	return _u
}

// SetNillablePhysicalBlockID sets the "physical_block_id" field if the given value is not nil.
func (_u *BlockUpdate) SetNillablePhysicalBlockID(v *uuid.UUID) *BlockUpdate {
	if v != nil {
		_u.SetPhysicalBlockID(*v)
	}
	return _u
}

// ClearPhysicalBlockID clears the value of the "physical_block_id" field.
func (_u *BlockUpdate) ClearPhysicalBlockID() *BlockUpdate {
	_u.mutation.ClearPhysicalBlockID()
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *BlockUpdate) SetLegacyCode(v string) *BlockUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableLegacyCode(v *string) *BlockUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *BlockUpdate) SetSequenceNumber(v int) *BlockUpdate {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableSequenceNumber(v *int) *BlockUpdate {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *BlockUpdate) AddSequenceNumber(v int) *BlockUpdate {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *BlockUpdate) SetBlockType(v string) *BlockUpdate {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableBlockType(v *string) *BlockUpdate {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetMaxCapacity sets the "max_capacity" field.
func (_u *BlockUpdate) SetMaxCapacity(v int) *BlockUpdate {
	_u.mutation.ResetMaxCapacity()
	_u.mutation.SetMaxCapacity(v)
	return _u
}

// SetNillableMaxCapacity sets the "max_capacity" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableMaxCapacity(v *int) *BlockUpdate {
	if v != nil {
		_u.SetMaxCapacity(*v)
	}
	return _u
}

// AddMaxCapacity adds value to the "max_capacity" field.
func (_u *BlockUpdate) AddMaxCapacity(v int) *BlockUpdate {
	_u.mutation.AddMaxCapacity(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BlockUpdate) SetState(v string) *BlockUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableState(v *string) *BlockUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *BlockUpdate) SetCropName(v string) *BlockUpdate {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableCropName(v *string) *BlockUpdate {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *BlockUpdate) ClearCropName() *BlockUpdate {
	_u.mutation.ClearCropName()
	return _u
}

// SetPlantingDate sets the "planting_date" field.
func (_u *BlockUpdate) SetPlantingDate(v time.Time) *BlockUpdate {
	_u.mutation.SetPlantingDate(v)
	return _u
}

// SetNillablePlantingDate sets the "planting_date" field if the given value is not nil.
func (_u *BlockUpdate) SetNillablePlantingDate(v *time.Time) *BlockUpdate {
	if v != nil {
		_u.SetPlantingDate(*v)
	}
	return _u
}

// ClearPlantingDate clears the value of the "planting_date" field.
func (_u *BlockUpdate) ClearPlantingDate() *BlockUpdate {
	_u.mutation.ClearPlantingDate()
	return _u
}

// SetWateringFrequencyDays sets the "watering_frequency_days" field.
func (_u *BlockUpdate) SetWateringFrequencyDays(v int) *BlockUpdate {
	_u.mutation.ResetWateringFrequencyDays()
	_u.mutation.SetWateringFrequencyDays(v)
	return _u
}

// SetNillableWateringFrequencyDays sets the "watering_frequency_days" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableWateringFrequencyDays(v *int) *BlockUpdate {
	if v != nil {
		_u.SetWateringFrequencyDays(*v)
	}
	return _u
}

// AddWateringFrequencyDays adds value to the "watering_frequency_days" field.
func (_u *BlockUpdate) AddWateringFrequencyDays(v int) *BlockUpdate {
	_u.mutation.AddWateringFrequencyDays(v)
	return _u
}

// SetExpectedStatusChanges sets the "expected_status_changes" field.
func (_u *BlockUpdate) SetExpectedStatusChanges(v map[string]time.Time) *BlockUpdate {
	_u.mutation.SetExpectedStatusChanges(v)
	return _u
}

// ClearExpectedStatusChanges clears the value of the "expected_status_changes" field.
func (_u *BlockUpdate) ClearExpectedStatusChanges() *BlockUpdate {
	_u.mutation.ClearExpectedStatusChanges()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BlockUpdate) SetCreatedAt(v time.Time) *BlockUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BlockUpdate) SetNillableCreatedAt(v *time.Time) *BlockUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlockUpdate) SetUpdatedAt(v time.Time) *BlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *BlockUpdate) SetFarm(v *Farm) *BlockUpdate {
	return _u.SetFarmID(v.ID)
}

// SetPhysicalBlock sets the "physical_block" edge to the PhysicalBlock entity.
func (_u *BlockUpdate) SetPhysicalBlock(v *PhysicalBlock) *BlockUpdate {
	return _u.SetPhysicalBlockID(v.ID)
}

// AddArchivedCycleIDs adds the "archived_cycles" edge to the ArchivedCycle entity by IDs.
func (_u *BlockUpdate) AddArchivedCycleIDs(ids ...uuid.UUID) *BlockUpdate {
	_u.mutation.AddArchivedCycleIDs(ids...)
	return _u
}

// AddArchivedCycles adds the "archived_cycles" edges to the ArchivedCycle entity.
func (_u *BlockUpdate) AddArchivedCycles(v ...*ArchivedCycle) *BlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchivedCycleIDs(ids...)
}

// AddHarvestIDs adds the "harvests" edge to the Harvest entity by IDs.
func (_u *BlockUpdate) AddHarvestIDs(ids ...uuid.UUID) *BlockUpdate {
	_u.mutation.AddHarvestIDs(ids...)
	return _u
}

// AddHarvests adds the "harvests" edges to the Harvest entity.
func (_u *BlockUpdate) AddHarvests(v ...*Harvest) *BlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHarvestIDs(ids...)
}

// Mutation returns the BlockMutation object of the builder.
func (_u *BlockUpdate) Mutation() *BlockMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *BlockUpdate) ClearFarm() *BlockUpdate {
	_u.mutation.ClearFarm()
	return _u
}

// ClearPhysicalBlock clears the "physical_block" edge to the PhysicalBlock entity.
func (_u *BlockUpdate) ClearPhysicalBlock() *BlockUpdate {
	_u.mutation.ClearPhysicalBlock()
	return _u
}

// ClearArchivedCycles clears all "archived_cycles" edges to the ArchivedCycle entity.
func (_u *BlockUpdate) ClearArchivedCycles() *BlockUpdate {
	_u.mutation.ClearArchivedCycles()
	return _u
}

// RemoveArchivedCycleIDs removes the "archived_cycles" edge to ArchivedCycle entities by IDs.
func (_u *BlockUpdate) RemoveArchivedCycleIDs(ids ...uuid.UUID) *BlockUpdate {
	_u.mutation.RemoveArchivedCycleIDs(ids...)
	return _u
}

// RemoveArchivedCycles removes "archived_cycles" edges to ArchivedCycle entities.
func (_u *BlockUpdate) RemoveArchivedCycles(v ...*ArchivedCycle) *BlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchivedCycleIDs(ids...)
}

// ClearHarvests clears all "harvests" edges to the Harvest entity.
func (_u *BlockUpdate) ClearHarvests() *BlockUpdate {
	_u.mutation.ClearHarvests()
	return _u
}

// RemoveHarvestIDs removes the "harvests" edge to Harvest entities by IDs.
func (_u *BlockUpdate) RemoveHarvestIDs(ids ...uuid.UUID) *BlockUpdate {
	_u.mutation.RemoveHarvestIDs(ids...)
	return _u
}

// RemoveHarvests removes "harvests" edges to Harvest entities.
func (_u *BlockUpdate) RemoveHarvests(v ...*Harvest) *BlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHarvestIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := block.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := block.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Block.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := block.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "Block.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockType(); ok {
		if err := block.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "Block.block_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxCapacity(); ok {
		if err := block.MaxCapacityValidator(v); err != nil {
			return &ValidationError{Name: "max_capacity", err: fmt.Errorf(`ent: validator failed for field "Block.max_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := block.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Block.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WateringFrequencyDays(); ok {
		if err := block.WateringFrequencyDaysValidator(v); err != nil {
			return &ValidationError{Name: "watering_frequency_days", err: fmt.Errorf(`ent: validator failed for field "Block.watering_frequency_days": %w`, err)}
		}
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Block.farm"`)
	}
	return nil
}

func (_u *BlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(block.Table, block.Columns, sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(block.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(block.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(block.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(block.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxCapacity(); ok {
		_spec.SetField(block.FieldMaxCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCapacity(); ok {
		_spec.AddField(block.FieldMaxCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(block.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(block.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(block.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.PlantingDate(); ok {
		_spec.SetField(block.FieldPlantingDate, field.TypeTime, value)
	}
	if _u.mutation.PlantingDateCleared() {
		_spec.ClearField(block.FieldPlantingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.WateringFrequencyDays(); ok {
		_spec.SetField(block.FieldWateringFrequencyDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWateringFrequencyDays(); ok {
		_spec.AddField(block.FieldWateringFrequencyDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedStatusChanges(); ok {
		_spec.SetField(block.FieldExpectedStatusChanges, field.TypeJSON, value)
	}
	if _u.mutation.ExpectedStatusChangesCleared() {
		_spec.ClearField(block.FieldExpectedStatusChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(block.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(block.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhysicalBlockCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalBlockIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivedCyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchivedCyclesIDs(); len(nodes) > 0 && !_u.mutation.ArchivedCyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivedCyclesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HarvestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHarvestsIDs(); len(nodes) > 0 && !_u.mutation.HarvestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HarvestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{block.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BlockUpdateOne is the builder for updating a single Block entity.
type BlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BlockMutation
}

// SetFarmID sets the "farm_id" field.
func (_u *BlockUpdateOne) SetFarmID(v uuid.UUID) *BlockUpdateOne {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableFarmID(v *uuid.UUID) *BlockUpdateOne {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetPhysicalBlockID sets the "physical_block_id" field.
func (_u *BlockUpdateOne) SetPhysicalBlockID(v uuid.UUID) *BlockUpdateOne {
	_u.mutation.SetPhysicalBlockID(v)
	return _u
}

// SetNillablePhysicalBlockID sets the "physical_block_id" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillablePhysicalBlockID(v *uuid.UUID) *BlockUpdateOne {
	if v != nil {
		_u.SetPhysicalBlockID(*v)
	}
	return _u
}

// ClearPhysicalBlockID clears the value of the "physical_block_id" field.
func (_u *BlockUpdateOne) ClearPhysicalBlockID() *BlockUpdateOne {
	_u.mutation.ClearPhysicalBlockID()
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *BlockUpdateOne) SetLegacyCode(v string) *BlockUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableLegacyCode(v *string) *BlockUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetSequenceNumber sets the "sequence_number" field.
func (_u *BlockUpdateOne) SetSequenceNumber(v int) *BlockUpdateOne {
	_u.mutation.ResetSequenceNumber()
	_u.mutation.SetSequenceNumber(v)
	return _u
}

// SetNillableSequenceNumber sets the "sequence_number" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableSequenceNumber(v *int) *BlockUpdateOne {
	if v != nil {
		_u.SetSequenceNumber(*v)
	}
	return _u
}

// AddSequenceNumber adds value to the "sequence_number" field.
func (_u *BlockUpdateOne) AddSequenceNumber(v int) *BlockUpdateOne {
	_u.mutation.AddSequenceNumber(v)
	return _u
}

// SetBlockType sets the "block_type" field.
func (_u *BlockUpdateOne) SetBlockType(v string) *BlockUpdateOne {
	_u.mutation.SetBlockType(v)
	return _u
}

// SetNillableBlockType sets the "block_type" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableBlockType(v *string) *BlockUpdateOne {
	if v != nil {
		_u.SetBlockType(*v)
	}
	return _u
}

// SetMaxCapacity sets the "max_capacity" field.
func (_u *BlockUpdateOne) SetMaxCapacity(v int) *BlockUpdateOne {
	_u.mutation.ResetMaxCapacity()
	_u.mutation.SetMaxCapacity(v)
	return _u
}

// SetNillableMaxCapacity sets the "max_capacity" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableMaxCapacity(v *int) *BlockUpdateOne {
	if v != nil {
		_u.SetMaxCapacity(*v)
	}
	return _u
}

// AddMaxCapacity adds value to the "max_capacity" field.
func (_u *BlockUpdateOne) AddMaxCapacity(v int) *BlockUpdateOne {
	_u.mutation.AddMaxCapacity(v)
	return _u
}

// SetState sets the "state" field.
func (_u *BlockUpdateOne) SetState(v string) *BlockUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableState(v *string) *BlockUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *BlockUpdateOne) SetCropName(v string) *BlockUpdateOne {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableCropName(v *string) *BlockUpdateOne {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *BlockUpdateOne) ClearCropName() *BlockUpdateOne {
	_u.mutation.ClearCropName()
	return _u
}

// SetPlantingDate sets the "planting_date" field.
func (_u *BlockUpdateOne) SetPlantingDate(v time.Time) *BlockUpdateOne {
	_u.mutation.SetPlantingDate(v)
	return _u
}

// SetNillablePlantingDate sets the "planting_date" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillablePlantingDate(v *time.Time) *BlockUpdateOne {
	if v != nil {
		_u.SetPlantingDate(*v)
	}
	return _u
}

// ClearPlantingDate clears the value of the "planting_date" field.
func (_u *BlockUpdateOne) ClearPlantingDate() *BlockUpdateOne {
	_u.mutation.ClearPlantingDate()
	return _u
}

// SetWateringFrequencyDays sets the "watering_frequency_days" field.
func (_u *BlockUpdateOne) SetWateringFrequencyDays(v int) *BlockUpdateOne {
	_u.mutation.ResetWateringFrequencyDays()
	_u.mutation.SetWateringFrequencyDays(v)
	return _u
}

// SetNillableWateringFrequencyDays sets the "watering_frequency_days" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableWateringFrequencyDays(v *int) *BlockUpdateOne {
	if v != nil {
		_u.SetWateringFrequencyDays(*v)
	}
	return _u
}

// AddWateringFrequencyDays adds value to the "watering_frequency_days" field.
func (_u *BlockUpdateOne) AddWateringFrequencyDays(v int) *BlockUpdateOne {
	_u.mutation.AddWateringFrequencyDays(v)
	return _u
}

// SetExpectedStatusChanges sets the "expected_status_changes" field.
func (_u *BlockUpdateOne) SetExpectedStatusChanges(v map[string]time.Time) *BlockUpdateOne {
	_u.mutation.SetExpectedStatusChanges(v)
	return _u
}

// ClearExpectedStatusChanges clears the value of the "expected_status_changes" field.
func (_u *BlockUpdateOne) ClearExpectedStatusChanges() *BlockUpdateOne {
	_u.mutation.ClearExpectedStatusChanges()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *BlockUpdateOne) SetCreatedAt(v time.Time) *BlockUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *BlockUpdateOne) SetNillableCreatedAt(v *time.Time) *BlockUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BlockUpdateOne) SetUpdatedAt(v time.Time) *BlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *BlockUpdateOne) SetFarm(v *Farm) *BlockUpdateOne {
	return _u.SetFarmID(v.ID)
}

// SetPhysicalBlock sets the "physical_block" edge to the PhysicalBlock entity.
func (_u *BlockUpdateOne) SetPhysicalBlock(v *PhysicalBlock) *BlockUpdateOne {
	return _u.SetPhysicalBlockID(v.ID)
}

// AddArchivedCycleIDs adds the "archived_cycles" edge to the ArchivedCycle entity by IDs.
func (_u *BlockUpdateOne) AddArchivedCycleIDs(ids ...uuid.UUID) *BlockUpdateOne {
	_u.mutation.AddArchivedCycleIDs(ids...)
	return _u
}

// AddArchivedCycles adds the "archived_cycles" edges to the ArchivedCycle entity.
func (_u *BlockUpdateOne) AddArchivedCycles(v ...*ArchivedCycle) *BlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddArchivedCycleIDs(ids...)
}

// AddHarvestIDs adds the "harvests" edge to the Harvest entity by IDs.
func (_u *BlockUpdateOne) AddHarvestIDs(ids ...uuid.UUID) *BlockUpdateOne {
	_u.mutation.AddHarvestIDs(ids...)
	return _u
}

// AddHarvests adds the "harvests" edges to the Harvest entity.
func (_u *BlockUpdateOne) AddHarvests(v ...*Harvest) *BlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddHarvestIDs(ids...)
}

// Mutation returns the BlockMutation object of the builder.
func (_u *BlockUpdateOne) Mutation() *BlockMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *BlockUpdateOne) ClearFarm() *BlockUpdateOne {
	_u.mutation.ClearFarm()
	return _u
}

// ClearPhysicalBlock clears the "physical_block" edge to the PhysicalBlock entity.
func (_u *BlockUpdateOne) ClearPhysicalBlock() *BlockUpdateOne {
	_u.mutation.ClearPhysicalBlock()
	return _u
}

// ClearArchivedCycles clears all "archived_cycles" edges to the ArchivedCycle entity.
func (_u *BlockUpdateOne) ClearArchivedCycles() *BlockUpdateOne {
	_u.mutation.ClearArchivedCycles()
	return _u
}

// RemoveArchivedCycleIDs removes the "archived_cycles" edge to ArchivedCycle entities by IDs.
func (_u *BlockUpdateOne) RemoveArchivedCycleIDs(ids ...uuid.UUID) *BlockUpdateOne {
	_u.mutation.RemoveArchivedCycleIDs(ids...)
	return _u
}

// RemoveArchivedCycles removes "archived_cycles" edges to ArchivedCycle entities.
func (_u *BlockUpdateOne) RemoveArchivedCycles(v ...*ArchivedCycle) *BlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveArchivedCycleIDs(ids...)
}

// ClearHarvests clears all "harvests" edges to the Harvest entity.
func (_u *BlockUpdateOne) ClearHarvests() *BlockUpdateOne {
	_u.mutation.ClearHarvests()
	return _u
}

// RemoveHarvestIDs removes the "harvests" edge to Harvest entities by IDs.
func (_u *BlockUpdateOne) RemoveHarvestIDs(ids ...uuid.UUID) *BlockUpdateOne {
	_u.mutation.RemoveHarvestIDs(ids...)
	return _u
}

// RemoveHarvests removes "harvests" edges to Harvest entities.
func (_u *BlockUpdateOne) RemoveHarvests(v ...*Harvest) *BlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveHarvestIDs(ids...)
}

// Where appends a list predicates to the BlockUpdate builder.
func (_u *BlockUpdateOne) Where(ps ...predicate.Block) *BlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BlockUpdateOne) Select(field string, fields ...string) *BlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Block entity.
func (_u *BlockUpdateOne) Save(ctx context.Context) (*Block, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BlockUpdateOne) SaveX(ctx context.Context) *Block {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := block.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BlockUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := block.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Block.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SequenceNumber(); ok {
		if err := block.SequenceNumberValidator(v); err != nil {
			return &ValidationError{Name: "sequence_number", err: fmt.Errorf(`ent: validator failed for field "Block.sequence_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BlockType(); ok {
		if err := block.BlockTypeValidator(v); err != nil {
			return &ValidationError{Name: "block_type", err: fmt.Errorf(`ent: validator failed for field "Block.block_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxCapacity(); ok {
		if err := block.MaxCapacityValidator(v); err != nil {
			return &ValidationError{Name: "max_capacity", err: fmt.Errorf(`ent: validator failed for field "Block.max_capacity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := block.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Block.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WateringFrequencyDays(); ok {
		if err := block.WateringFrequencyDaysValidator(v); err != nil {
			return &ValidationError{Name: "watering_frequency_days", err: fmt.Errorf(`ent: validator failed for field "Block.watering_frequency_days": %w`, err)}
		}
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Block.farm"`)
	}
	return nil
}

func (_u *BlockUpdateOne) sqlSave(ctx context.Context) (_node *Block, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(block.Table, block.Columns, sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Block.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, block.FieldID)
		for _, f := range fields {
			if !block.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != block.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(block.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.SequenceNumber(); ok {
		_spec.SetField(block.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequenceNumber(); ok {
		_spec.AddField(block.FieldSequenceNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BlockType(); ok {
		_spec.SetField(block.FieldBlockType, field.TypeString, value)
	}
	if value, ok := _u.mutation.MaxCapacity(); ok {
		_spec.SetField(block.FieldMaxCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxCapacity(); ok {
		_spec.AddField(block.FieldMaxCapacity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(block.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(block.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(block.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.PlantingDate(); ok {
		_spec.SetField(block.FieldPlantingDate, field.TypeTime, value)
	}
	if _u.mutation.PlantingDateCleared() {
		_spec.ClearField(block.FieldPlantingDate, field.TypeTime)
	}
	if value, ok := _u.mutation.WateringFrequencyDays(); ok {
		_spec.SetField(block.FieldWateringFrequencyDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWateringFrequencyDays(); ok {
		_spec.AddField(block.FieldWateringFrequencyDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ExpectedStatusChanges(); ok {
		_spec.SetField(block.FieldExpectedStatusChanges, field.TypeJSON, value)
	}
	if _u.mutation.ExpectedStatusChangesCleared() {
		_spec.ClearField(block.FieldExpectedStatusChanges, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(block.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(block.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FarmIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PhysicalBlockCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalBlockIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ArchivedCyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedArchivedCyclesIDs(); len(nodes) > 0 && !_u.mutation.ArchivedCyclesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ArchivedCyclesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.HarvestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedHarvestsIDs(); len(nodes) > 0 && !_u.mutation.HarvestsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.HarvestsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Block{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{block.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
