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
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// PhysicalBlockUpdate is the builder for updating PhysicalBlock entities.
type PhysicalBlockUpdate struct {
	config
	hooks    []Hook
	mutation *PhysicalBlockMutation
}

// Where appends a list predicates to the PhysicalBlockUpdate builder.
func (_u *PhysicalBlockUpdate) Where(ps ...predicate.PhysicalBlock) *PhysicalBlockUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFarmID sets the "farm_id" field.
func (_u *PhysicalBlockUpdate) SetFarmID(v uuid.UUID) *PhysicalBlockUpdate {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *PhysicalBlockUpdate) SetNillableFarmID(v *uuid.UUID) *PhysicalBlockUpdate {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *PhysicalBlockUpdate) SetLegacyCode(v string) *PhysicalBlockUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *PhysicalBlockUpdate) SetNillableLegacyCode(v *string) *PhysicalBlockUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PhysicalBlockUpdate) SetName(v string) *PhysicalBlockUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PhysicalBlockUpdate) SetNillableName(v *string) *PhysicalBlockUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PhysicalBlockUpdate) ClearName() *PhysicalBlockUpdate {
	_u.mutation.ClearName()
	return _u
}

// SetAreaSqM sets the "area_sq_m" field.
func (_u *PhysicalBlockUpdate) SetAreaSqM(v float64) *PhysicalBlockUpdate {
	_u.mutation.ResetAreaSqM()
	_u.mutation.SetAreaSqM(v)
	return _u
}

// SetNillableAreaSqM sets the "area_sq_m" field if the given value is not nil.
func (_u *PhysicalBlockUpdate) SetNillableAreaSqM(v *float64) *PhysicalBlockUpdate {
	if v != nil {
		_u.SetAreaSqM(*v)
	}
	return _u
}

// AddAreaSqM adds value to the "area_sq_m" field.
func (_u *PhysicalBlockUpdate) AddAreaSqM(v float64) *PhysicalBlockUpdate {
	_u.mutation.AddAreaSqM(v)
	return _u
}

// ClearAreaSqM clears the value of the "area_sq_m" field.
func (_u *PhysicalBlockUpdate) ClearAreaSqM() *PhysicalBlockUpdate {
	_u.mutation.ClearAreaSqM()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhysicalBlockUpdate) SetCreatedAt(v time.Time) *PhysicalBlockUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhysicalBlockUpdate) SetNillableCreatedAt(v *time.Time) *PhysicalBlockUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysicalBlockUpdate) SetUpdatedAt(v time.Time) *PhysicalBlockUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *PhysicalBlockUpdate) SetFarm(v *Farm) *PhysicalBlockUpdate {
	return _u.SetFarmID(v.ID)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_u *PhysicalBlockUpdate) AddBlockIDs(ids ...uuid.UUID) *PhysicalBlockUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_u *PhysicalBlockUpdate) AddBlocks(v ...*Block) *PhysicalBlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the PhysicalBlockMutation object of the builder.
func (_u *PhysicalBlockUpdate) Mutation() *PhysicalBlockMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *PhysicalBlockUpdate) ClearFarm() *PhysicalBlockUpdate {
	_u.mutation.ClearFarm()
	return _u
}

// ClearBlocks clears all "blocks" edges to the Block entity.
func (_u *PhysicalBlockUpdate) ClearBlocks() *PhysicalBlockUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to Block entities by IDs.
func (_u *PhysicalBlockUpdate) RemoveBlockIDs(ids ...uuid.UUID) *PhysicalBlockUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to Block entities.
func (_u *PhysicalBlockUpdate) RemoveBlocks(v ...*Block) *PhysicalBlockUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhysicalBlockUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalBlockUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhysicalBlockUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalBlockUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysicalBlockUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physicalblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalBlockUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := physicalblock.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PhysicalBlock.legacy_code": %w`, err)}
		}
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhysicalBlock.farm"`)
	}
	return nil
}

func (_u *PhysicalBlockUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicalblock.Table, physicalblock.Columns, sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(physicalblock.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(physicalblock.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(physicalblock.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AreaSqM(); ok {
		_spec.SetField(physicalblock.FieldAreaSqM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqM(); ok {
		_spec.AddField(physicalblock.FieldAreaSqM, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqMCleared() {
		_spec.ClearField(physicalblock.FieldAreaSqM, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(physicalblock.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(physicalblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   physicalblock.FarmTable,
			Columns: []string{physicalblock.FarmColumn},
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
			Table:   physicalblock.FarmTable,
			Columns: []string{physicalblock.FarmColumn},
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
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
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
			err = &NotFoundError{physicalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhysicalBlockUpdateOne is the builder for updating a single PhysicalBlock entity.
type PhysicalBlockUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhysicalBlockMutation
}

// SetFarmID sets the "farm_id" field.
func (_u *PhysicalBlockUpdateOne) SetFarmID(v uuid.UUID) *PhysicalBlockUpdateOne {
	_u.mutation.SetFarmID(v)
	return _u
}

// SetNillableFarmID sets the "farm_id" field if the given value is not nil.
func (_u *PhysicalBlockUpdateOne) SetNillableFarmID(v *uuid.UUID) *PhysicalBlockUpdateOne {
	if v != nil {
		_u.SetFarmID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *PhysicalBlockUpdateOne) SetLegacyCode(v string) *PhysicalBlockUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *PhysicalBlockUpdateOne) SetNillableLegacyCode(v *string) *PhysicalBlockUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *PhysicalBlockUpdateOne) SetName(v string) *PhysicalBlockUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PhysicalBlockUpdateOne) SetNillableName(v *string) *PhysicalBlockUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// ClearName clears the value of the "name" field.
func (_u *PhysicalBlockUpdateOne) ClearName() *PhysicalBlockUpdateOne {
	_u.mutation.ClearName()
	return _u
}

// SetAreaSqM sets the "area_sq_m" field.
func (_u *PhysicalBlockUpdateOne) SetAreaSqM(v float64) *PhysicalBlockUpdateOne {
	_u.mutation.ResetAreaSqM()
	_u.mutation.SetAreaSqM(v)
	return _u
}

// SetNillableAreaSqM sets the "area_sq_m" field if the given value is not nil.
func (_u *PhysicalBlockUpdateOne) SetNillableAreaSqM(v *float64) *PhysicalBlockUpdateOne {
	if v != nil {
		_u.SetAreaSqM(*v)
	}
	return _u
}

// AddAreaSqM adds value to the "area_sq_m" field.
func (_u *PhysicalBlockUpdateOne) AddAreaSqM(v float64) *PhysicalBlockUpdateOne {
	_u.mutation.AddAreaSqM(v)
	return _u
}

// ClearAreaSqM clears the value of the "area_sq_m" field.
func (_u *PhysicalBlockUpdateOne) ClearAreaSqM() *PhysicalBlockUpdateOne {
	_u.mutation.ClearAreaSqM()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PhysicalBlockUpdateOne) SetCreatedAt(v time.Time) *PhysicalBlockUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PhysicalBlockUpdateOne) SetNillableCreatedAt(v *time.Time) *PhysicalBlockUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PhysicalBlockUpdateOne) SetUpdatedAt(v time.Time) *PhysicalBlockUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_u *PhysicalBlockUpdateOne) SetFarm(v *Farm) *PhysicalBlockUpdateOne {
	return _u.SetFarmID(v.ID)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_u *PhysicalBlockUpdateOne) AddBlockIDs(ids ...uuid.UUID) *PhysicalBlockUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_u *PhysicalBlockUpdateOne) AddBlocks(v ...*Block) *PhysicalBlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the PhysicalBlockMutation object of the builder.
func (_u *PhysicalBlockUpdateOne) Mutation() *PhysicalBlockMutation {
	return _u.mutation
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (_u *PhysicalBlockUpdateOne) ClearFarm() *PhysicalBlockUpdateOne {
	_u.mutation.ClearFarm()
	return _u
}

// ClearBlocks clears all "blocks" edges to the Block entity.
func (_u *PhysicalBlockUpdateOne) ClearBlocks() *PhysicalBlockUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to Block entities by IDs.
func (_u *PhysicalBlockUpdateOne) RemoveBlockIDs(ids ...uuid.UUID) *PhysicalBlockUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to Block entities.
func (_u *PhysicalBlockUpdateOne) RemoveBlocks(v ...*Block) *PhysicalBlockUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Where appends a list predicates to the PhysicalBlockUpdate builder.
func (_u *PhysicalBlockUpdateOne) Where(ps ...predicate.PhysicalBlock) *PhysicalBlockUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhysicalBlockUpdateOne) Select(field string, fields ...string) *PhysicalBlockUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhysicalBlock entity.
func (_u *PhysicalBlockUpdateOne) Save(ctx context.Context) (*PhysicalBlock, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhysicalBlockUpdateOne) SaveX(ctx context.Context) *PhysicalBlock {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhysicalBlockUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhysicalBlockUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PhysicalBlockUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := physicalblock.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhysicalBlockUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := physicalblock.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PhysicalBlock.legacy_code": %w`, err)}
		}
	}
	if _u.mutation.FarmCleared() && len(_u.mutation.FarmIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhysicalBlock.farm"`)
	}
	return nil
}

func (_u *PhysicalBlockUpdateOne) sqlSave(ctx context.Context) (_node *PhysicalBlock, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(physicalblock.Table, physicalblock.Columns, sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhysicalBlock.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, physicalblock.FieldID)
		for _, f := range fields {
			if !physicalblock.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != physicalblock.FieldID {
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
		_spec.SetField(physicalblock.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(physicalblock.FieldName, field.TypeString, value)
	}
	if _u.mutation.NameCleared() {
		_spec.ClearField(physicalblock.FieldName, field.TypeString)
	}
	if value, ok := _u.mutation.AreaSqM(); ok {
		_spec.SetField(physicalblock.FieldAreaSqM, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAreaSqM(); ok {
		_spec.AddField(physicalblock.FieldAreaSqM, field.TypeFloat64, value)
	}
	if _u.mutation.AreaSqMCleared() {
		_spec.ClearField(physicalblock.FieldAreaSqM, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(physicalblock.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(physicalblock.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FarmCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   physicalblock.FarmTable,
			Columns: []string{physicalblock.FarmColumn},
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
			Table:   physicalblock.FarmTable,
			Columns: []string{physicalblock.FarmColumn},
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
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBlocksIDs(); len(nodes) > 0 && !_u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   physicalblock.BlocksTable,
			Columns: []string{physicalblock.BlocksColumn},
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
	_node = &PhysicalBlock{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{physicalblock.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
