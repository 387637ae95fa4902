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
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// ArchivedCycleUpdate is the builder for updating ArchivedCycle entities.
type ArchivedCycleUpdate struct {
	config
	hooks    []Hook
	mutation *ArchivedCycleMutation
}

// Where appends a list predicates to the ArchivedCycleUpdate builder.
func (_u *ArchivedCycleUpdate) Where(ps ...predicate.ArchivedCycle) *ArchivedCycleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockID sets the "block_id" field.
func (_u *ArchivedCycleUpdate) SetBlockID(v uuid.UUID) *ArchivedCycleUpdate {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableBlockID(v *uuid.UUID) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *ArchivedCycleUpdate) SetFarmID(v uuid.UUID) *ArchivedCycleUpdate {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableFarmID(v *uuid.UUID) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *ArchivedCycleUpdate) SetLegacyCode(v string) *ArchivedCycleUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableLegacyCode(v *string) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *ArchivedCycleUpdate) SetCropName(v string) *ArchivedCycleUpdate {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableCropName(v *string) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *ArchivedCycleUpdate) ClearCropName() *ArchivedCycleUpdate {
	_u.mutation.ClearCropName()
	return _u
}

// SetPlantingDate sets the "planting_date" field.
func (_u *ArchivedCycleUpdate) SetPlantingDate(v time.Time) *ArchivedCycleUpdate {
	_u.mutation.SetPlantingDate(v)
	return _u
}

// SetNillablePlantingDate sets the "planting_date" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillablePlantingDate(v *time.Time) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetPlantingDate(*v)
	}
	return _u
}

// SetClearedDate sets the "cleared_date" field.
func (_u *ArchivedCycleUpdate) SetClearedDate(v time.Time) *ArchivedCycleUpdate {
	_u.mutation.SetClearedDate(v)
	return _u
}

// SetNillableClearedDate sets the "cleared_date" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableClearedDate(v *time.Time) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetClearedDate(*v)
	}
	return _u
}

// ClearClearedDate clears the value of the "cleared_date" field.
func (_u *ArchivedCycleUpdate) ClearClearedDate() *ArchivedCycleUpdate {
	_u.mutation.ClearClearedDate()
	return _u
}

// SetYieldKg sets the "yield_kg" field.
func (_u *ArchivedCycleUpdate) SetYieldKg(v float64) *ArchivedCycleUpdate {
	_u.mutation.ResetYieldKg()
	_u.mutation.SetYieldKg(v)
	return _u
}

// SetNillableYieldKg sets the "yield_kg" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableYieldKg(v *float64) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetYieldKg(*v)
	}
	return _u
}

// AddYieldKg adds value to the "yield_kg" field.
func (_u *ArchivedCycleUpdate) AddYieldKg(v float64) *ArchivedCycleUpdate {
	_u.mutation.AddYieldKg(v)
	return _u
}

// ClearYieldKg clears the value of the "yield_kg" field.
func (_u *ArchivedCycleUpdate) ClearYieldKg() *ArchivedCycleUpdate {
	_u.mutation.ClearYieldKg()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArchivedCycleUpdate) SetCreatedAt(v time.Time) *ArchivedCycleUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArchivedCycleUpdate) SetNillableCreatedAt(v *time.Time) *ArchivedCycleUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBlock sets the "block" edge to the Block entity.
func (_u *ArchivedCycleUpdate) SetBlock(v *Block) *ArchivedCycleUpdate {
	return _u.SetBlockID(v.ID)
}

// Mutation returns the ArchivedCycleMutation object of the builder.
func (_u *ArchivedCycleUpdate) Mutation() *ArchivedCycleMutation {
	return _u.mutation
}

// ClearBlock clears the "block" edge to the Block entity.
func (_u *ArchivedCycleUpdate) ClearBlock() *ArchivedCycleUpdate {
	_u.mutation.ClearBlock()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArchivedCycleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedCycleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArchivedCycleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedCycleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchivedCycleUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := archivedcycle.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "ArchivedCycle.legacy_code": %w`, err)}
		}
	}
	if _u.mutation.BlockCleared() && len(_u.mutation.BlockIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchivedCycle.block"`)
	}
	return nil
}

func (_u *ArchivedCycleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archivedcycle.Table, archivedcycle.Columns, sqlgraph.NewFieldSpec(archivedcycle.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FarmID(); ok {
		_spec.SetField(archivedcycle.FieldFarmID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(archivedcycle.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(archivedcycle.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(archivedcycle.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.PlantingDate(); ok {
		_spec.SetField(archivedcycle.FieldPlantingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClearedDate(); ok {
		_spec.SetField(archivedcycle.FieldClearedDate, field.TypeTime, value)
	}
	if _u.mutation.ClearedDateCleared() {
		_spec.ClearField(archivedcycle.FieldClearedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.YieldKg(); ok {
		_spec.SetField(archivedcycle.FieldYieldKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedYieldKg(); ok {
		_spec.AddField(archivedcycle.FieldYieldKg, field.TypeFloat64, value)
	}
	if _u.mutation.YieldKgCleared() {
		_spec.ClearField(archivedcycle.FieldYieldKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(archivedcycle.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   archivedcycle.BlockTable,
			Columns: []string{archivedcycle.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   archivedcycle.BlockTable,
			Columns: []string{archivedcycle.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArchivedCycleUpdateOne is the builder for updating a single ArchivedCycle entity.
type ArchivedCycleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArchivedCycleMutation
}

// SetBlockID sets the "block_id" field.
func (_u *ArchivedCycleUpdateOne) SetBlockID(v uuid.UUID) *ArchivedCycleUpdateOne {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableBlockID(v *uuid.UUID) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *ArchivedCycleUpdateOne) SetFarmID(v uuid.UUID) *ArchivedCycleUpdateOne {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableFarmID(v *uuid.UUID) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *ArchivedCycleUpdateOne) SetLegacyCode(v string) *ArchivedCycleUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableLegacyCode(v *string) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *ArchivedCycleUpdateOne) SetCropName(v string) *ArchivedCycleUpdateOne {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableCropName(v *string) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *ArchivedCycleUpdateOne) ClearCropName() *ArchivedCycleUpdateOne {
	_u.mutation.ClearCropName()
	return _u
}

// SetPlantingDate sets the "planting_date" field.
func (_u *ArchivedCycleUpdateOne) SetPlantingDate(v time.Time) *ArchivedCycleUpdateOne {
	_u.mutation.SetPlantingDate(v)
	return _u
}

// SetNillablePlantingDate sets the "planting_date" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillablePlantingDate(v *time.Time) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetPlantingDate(*v)
	}
	return _u
}

// SetClearedDate sets the "cleared_date" field.
func (_u *ArchivedCycleUpdateOne) SetClearedDate(v time.Time) *ArchivedCycleUpdateOne {
	_u.mutation.SetClearedDate(v)
	return _u
}

// SetNillableClearedDate sets the "cleared_date" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableClearedDate(v *time.Time) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetClearedDate(*v)
	}
	return _u
}

// ClearClearedDate clears the value of the "cleared_date" field.
func (_u *ArchivedCycleUpdateOne) ClearClearedDate() *ArchivedCycleUpdateOne {
	_u.mutation.ClearClearedDate()
	return _u
}

// SetYieldKg sets the "yield_kg" field.
func (_u *ArchivedCycleUpdateOne) SetYieldKg(v float64) *ArchivedCycleUpdateOne {
	_u.mutation.ResetYieldKg()
	_u.mutation.SetYieldKg(v)
	return _u
}

// SetNillableYieldKg sets the "yield_kg" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableYieldKg(v *float64) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetYieldKg(*v)
	}
	return _u
}

// AddYieldKg adds value to the "yield_kg" field.
func (_u *ArchivedCycleUpdateOne) AddYieldKg(v float64) *ArchivedCycleUpdateOne {
	_u.mutation.AddYieldKg(v)
	return _u
}

// ClearYieldKg clears the value of the "yield_kg" field.
func (_u *ArchivedCycleUpdateOne) ClearYieldKg() *ArchivedCycleUpdateOne {
	_u.mutation.ClearYieldKg()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ArchivedCycleUpdateOne) SetCreatedAt(v time.Time) *ArchivedCycleUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ArchivedCycleUpdateOne) SetNillableCreatedAt(v *time.Time) *ArchivedCycleUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBlock sets the "block" edge to the Block entity.
func (_u *ArchivedCycleUpdateOne) SetBlock(v *Block) *ArchivedCycleUpdateOne {
	return _u.SetBlockID(v.ID)
}

// Mutation returns the ArchivedCycleMutation object of the builder.
func (_u *ArchivedCycleUpdateOne) Mutation() *ArchivedCycleMutation {
	return _u.mutation
}

// ClearBlock clears the "block" edge to the Block entity.
func (_u *ArchivedCycleUpdateOne) ClearBlock() *ArchivedCycleUpdateOne {
	_u.mutation.ClearBlock()
	return _u
}

// Where appends a list predicates to the ArchivedCycleUpdate builder.
func (_u *ArchivedCycleUpdateOne) Where(ps ...predicate.ArchivedCycle) *ArchivedCycleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArchivedCycleUpdateOne) Select(field string, fields ...string) *ArchivedCycleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ArchivedCycle entity.
func (_u *ArchivedCycleUpdateOne) Save(ctx context.Context) (*ArchivedCycle, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArchivedCycleUpdateOne) SaveX(ctx context.Context) *ArchivedCycle {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArchivedCycleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArchivedCycleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ArchivedCycleUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := archivedcycle.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "ArchivedCycle.legacy_code": %w`, err)}
		}
	}
	if _u.mutation.BlockCleared() && len(_u.mutation.BlockIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ArchivedCycle.block"`)
	}
	return nil
}

func (_u *ArchivedCycleUpdateOne) sqlSave(ctx context.Context) (_node *ArchivedCycle, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(archivedcycle.Table, archivedcycle.Columns, sqlgraph.NewFieldSpec(archivedcycle.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ArchivedCycle.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, archivedcycle.FieldID)
		for _, f := range fields {
			if !archivedcycle.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != archivedcycle.FieldID {
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
	if value, ok := _u.mutation.FarmID(); ok {
		_spec.SetField(archivedcycle.FieldFarmID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(archivedcycle.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(archivedcycle.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(archivedcycle.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.PlantingDate(); ok {
		_spec.SetField(archivedcycle.FieldPlantingDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ClearedDate(); ok {
		_spec.SetField(archivedcycle.FieldClearedDate, field.TypeTime, value)
	}
	if _u.mutation.ClearedDateCleared() {
		_spec.ClearField(archivedcycle.FieldClearedDate, field.TypeTime)
	}
	if value, ok := _u.mutation.YieldKg(); ok {
		_spec.SetField(archivedcycle.FieldYieldKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedYieldKg(); ok {
		_spec.AddField(archivedcycle.FieldYieldKg, field.TypeFloat64, value)
	}
	if _u.mutation.YieldKgCleared() {
		_spec.ClearField(archivedcycle.FieldYieldKg, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(archivedcycle.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   archivedcycle.BlockTable,
			Columns: []string{archivedcycle.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   archivedcycle.BlockTable,
			Columns: []string{archivedcycle.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ArchivedCycle{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{archivedcycle.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
