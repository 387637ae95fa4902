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

// FarmUpdate is the builder for updating Farm entities.
type FarmUpdate struct {
	config
	hooks    []Hook
	mutation *FarmMutation
}

// Where appends a list predicates to the FarmUpdate builder.
func (_u *FarmUpdate) Where(ps ...predicate.Farm) *FarmUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *FarmUpdate) SetLegacyCode(v string) *FarmUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableLegacyCode(v *string) *FarmUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FarmUpdate) SetName(v string) *FarmUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableName(v *string) *FarmUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FarmUpdate) SetLocation(v string) *FarmUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableLocation(v *string) *FarmUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FarmUpdate) ClearLocation() *FarmUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmUpdate) SetCreatedAt(v time.Time) *FarmUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmUpdate) SetNillableCreatedAt(v *time.Time) *FarmUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmUpdate) SetUpdatedAt(v time.Time) *FarmUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPhysicalBlockIDs adds the "physical_blocks" edge to the PhysicalBlock entity by IDs.
func (_u *FarmUpdate) AddPhysicalBlockIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddPhysicalBlockIDs(ids...)
	return _u
}

// AddPhysicalBlocks adds the "physical_blocks" edges to the PhysicalBlock entity.
func (_u *FarmUpdate) AddPhysicalBlocks(v ...*PhysicalBlock) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhysicalBlockIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_u *FarmUpdate) AddBlockIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_u *FarmUpdate) AddBlocks(v ...*Block) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the FarmMutation object of the builder.
func (_u *FarmUpdate) Mutation() *FarmMutation {
	return _u.mutation
}

// ClearPhysicalBlocks clears all "physical_blocks" edges to the PhysicalBlock entity.
func (_u *FarmUpdate) ClearPhysicalBlocks() *FarmUpdate {
	_u.mutation.ClearPhysicalBlocks()
	return _u
}

// RemovePhysicalBlockIDs removes the "physical_blocks" edge to PhysicalBlock entities by IDs.
func (_u *FarmUpdate) RemovePhysicalBlockIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemovePhysicalBlockIDs(ids...)
	return _u
}

// RemovePhysicalBlocks removes "physical_blocks" edges to PhysicalBlock entities.
func (_u *FarmUpdate) RemovePhysicalBlocks(v ...*PhysicalBlock) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhysicalBlockIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the Block entity.
func (_u *FarmUpdate) ClearBlocks() *FarmUpdate {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to Block entities by IDs.
func (_u *FarmUpdate) RemoveBlockIDs(ids ...uuid.UUID) *FarmUpdate {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to Block entities.
func (_u *FarmUpdate) RemoveBlocks(v ...*Block) *FarmUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FarmUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FarmUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := farm.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Farm.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farm.Table, farm.Columns, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(farm.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(farm.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(farm.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PhysicalBlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhysicalBlocksIDs(); len(nodes) > 0 && !_u.mutation.PhysicalBlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalBlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
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
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
			err = &NotFoundError{farm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FarmUpdateOne is the builder for updating a single Farm entity.
type FarmUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FarmMutation
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *FarmUpdateOne) SetLegacyCode(v string) *FarmUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableLegacyCode(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *FarmUpdateOne) SetName(v string) *FarmUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableName(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetLocation sets the "location" field.
func (_u *FarmUpdateOne) SetLocation(v string) *FarmUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableLocation(v *string) *FarmUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *FarmUpdateOne) ClearLocation() *FarmUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FarmUpdateOne) SetCreatedAt(v time.Time) *FarmUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FarmUpdateOne) SetNillableCreatedAt(v *time.Time) *FarmUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FarmUpdateOne) SetUpdatedAt(v time.Time) *FarmUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPhysicalBlockIDs adds the "physical_blocks" edge to the PhysicalBlock entity by IDs.
func (_u *FarmUpdateOne) AddPhysicalBlockIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddPhysicalBlockIDs(ids...)
	return _u
}

// AddPhysicalBlocks adds the "physical_blocks" edges to the PhysicalBlock entity.
func (_u *FarmUpdateOne) AddPhysicalBlocks(v ...*PhysicalBlock) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPhysicalBlockIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_u *FarmUpdateOne) AddBlockIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.AddBlockIDs(ids...)
	return _u
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_u *FarmUpdateOne) AddBlocks(v ...*Block) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBlockIDs(ids...)
}

// Mutation returns the FarmMutation object of the builder.
func (_u *FarmUpdateOne) Mutation() *FarmMutation {
	return _u.mutation
}

// ClearPhysicalBlocks clears all "physical_blocks" edges to the PhysicalBlock entity.
func (_u *FarmUpdateOne) ClearPhysicalBlocks() *FarmUpdateOne {
	_u.mutation.ClearPhysicalBlocks()
	return _u
}

// RemovePhysicalBlockIDs removes the "physical_blocks" edge to PhysicalBlock entities by IDs.
func (_u *FarmUpdateOne) RemovePhysicalBlockIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemovePhysicalBlockIDs(ids...)
	return _u
}

// RemovePhysicalBlocks removes "physical_blocks" edges to PhysicalBlock entities.
func (_u *FarmUpdateOne) RemovePhysicalBlocks(v ...*PhysicalBlock) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePhysicalBlockIDs(ids...)
}

// ClearBlocks clears all "blocks" edges to the Block entity.
func (_u *FarmUpdateOne) ClearBlocks() *FarmUpdateOne {
	_u.mutation.ClearBlocks()
	return _u
}

// RemoveBlockIDs removes the "blocks" edge to Block entities by IDs.
func (_u *FarmUpdateOne) RemoveBlockIDs(ids ...uuid.UUID) *FarmUpdateOne {
	_u.mutation.RemoveBlockIDs(ids...)
	return _u
}

// RemoveBlocks removes "blocks" edges to Block entities.
func (_u *FarmUpdateOne) RemoveBlocks(v ...*Block) *FarmUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBlockIDs(ids...)
}

// Where appends a list predicates to the FarmUpdate builder.
func (_u *FarmUpdateOne) Where(ps ...predicate.Farm) *FarmUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FarmUpdateOne) Select(field string, fields ...string) *FarmUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Farm entity.
func (_u *FarmUpdateOne) Save(ctx context.Context) (*Farm, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FarmUpdateOne) SaveX(ctx context.Context) *Farm {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FarmUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FarmUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FarmUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := farm.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FarmUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := farm.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Farm.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	return nil
}

func (_u *FarmUpdateOne) sqlSave(ctx context.Context) (_node *Farm, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(farm.Table, farm.Columns, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Farm.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, farm.FieldID)
		for _, f := range fields {
			if !farm.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != farm.FieldID {
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
		_spec.SetField(farm.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(farm.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(farm.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PhysicalBlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPhysicalBlocksIDs(); len(nodes) > 0 && !_u.mutation.PhysicalBlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PhysicalBlocksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.PhysicalBlocksTable,
			Columns: []string{farm.PhysicalBlocksColumn},
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
	if _u.mutation.BlocksCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
			Table:   farm.BlocksTable,
			Columns: []string{farm.BlocksColumn},
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
	_node = &Farm{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{farm.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
