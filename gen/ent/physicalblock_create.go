// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/google/uuid"
)

// PhysicalBlockCreate is the builder for creating a PhysicalBlock entity.
type PhysicalBlockCreate struct {
	config
	mutation *PhysicalBlockMutation
	hooks    []Hook
}

// SetFarmID sets the "farm_id" field.
func (_c *PhysicalBlockCreate) SetFarmID(v uuid.UUID) *PhysicalBlockCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *PhysicalBlockCreate) SetLegacyCode(v string) *PhysicalBlockCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *PhysicalBlockCreate) SetName(v string) *PhysicalBlockCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *PhysicalBlockCreate) SetNillableName(v *string) *PhysicalBlockCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetAreaSqM sets the "area_sq_m" field.
func (_c *PhysicalBlockCreate) SetAreaSqM(v float64) *PhysicalBlockCreate {
	_c.mutation.SetAreaSqM(v)
	return _c
}

// SetNillableAreaSqM sets the "area_sq_m" field if the given value is not nil.
func (_c *PhysicalBlockCreate) SetNillableAreaSqM(v *float64) *PhysicalBlockCreate {
	if v != nil {
		_c.SetAreaSqM(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhysicalBlockCreate) SetCreatedAt(v time.Time) *PhysicalBlockCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhysicalBlockCreate) SetNillableCreatedAt(v *time.Time) *PhysicalBlockCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PhysicalBlockCreate) SetUpdatedAt(v time.Time) *PhysicalBlockCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PhysicalBlockCreate) SetNillableUpdatedAt(v *time.Time) *PhysicalBlockCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhysicalBlockCreate) SetID(v uuid.UUID) *PhysicalBlockCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PhysicalBlockCreate) SetNillableID(v *uuid.UUID) *PhysicalBlockCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFarm sets the "farm" edge to the Farm entity.
func (_c *PhysicalBlockCreate) SetFarm(v *Farm) *PhysicalBlockCreate {
	return _c.SetFarmID(v.ID)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_c *PhysicalBlockCreate) AddBlockIDs(ids ...uuid.UUID) *PhysicalBlockCreate {
	_c.mutation.AddBlockIDs(ids...)
	return _c
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_c *PhysicalBlockCreate) AddBlocks(v ...*Block) *PhysicalBlockCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlockIDs(ids...)
}

// Mutation returns the PhysicalBlockMutation object of the builder.
func (_c *PhysicalBlockCreate) Mutation() *PhysicalBlockMutation {
	return _c.mutation
}

// Save creates the PhysicalBlock in the database.
func (_c *PhysicalBlockCreate) Save(ctx context.Context) (*PhysicalBlock, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhysicalBlockCreate) SaveX(ctx context.Context) *PhysicalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalBlockCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalBlockCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhysicalBlockCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := physicalblock.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := physicalblock.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := physicalblock.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhysicalBlockCreate) check() error {
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "PhysicalBlock.farm_id"`)}
	}
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "PhysicalBlock.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := physicalblock.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PhysicalBlock.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhysicalBlock.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PhysicalBlock.updated_at"`)}
	}
	if len(_c.mutation.FarmIDs()) == 0 {
		return &ValidationError{Name: "farm", err: errors.New(`ent: missing required edge "PhysicalBlock.farm"`)}
	}
	return nil
}

func (_c *PhysicalBlockCreate) sqlSave(ctx context.Context) (*PhysicalBlock, error) {
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

func (_c *PhysicalBlockCreate) createSpec() (*PhysicalBlock, *sqlgraph.CreateSpec) {
	var (
		_node = &PhysicalBlock{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(physicalblock.Table, sqlgraph.NewFieldSpec(physicalblock.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(physicalblock.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(physicalblock.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.AreaSqM(); ok {
		_spec.SetField(physicalblock.FieldAreaSqM, field.TypeFloat64, value)
		_node.AreaSqM = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(physicalblock.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(physicalblock.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FarmIDs(); len(nodes) > 0 {
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
		_node.FarmID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlocksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhysicalBlockCreateBulk is the builder for creating many PhysicalBlock entities in bulk.
type PhysicalBlockCreateBulk struct {
	config
	err      error
	builders []*PhysicalBlockCreate
}

// Save creates the PhysicalBlock entities in the database.
func (_c *PhysicalBlockCreateBulk) Save(ctx context.Context) ([]*PhysicalBlock, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhysicalBlock, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhysicalBlockMutation)
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
func (_c *PhysicalBlockCreateBulk) SaveX(ctx context.Context) []*PhysicalBlock {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhysicalBlockCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhysicalBlockCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
