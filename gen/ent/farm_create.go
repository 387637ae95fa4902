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

// FarmCreate is the builder for creating a Farm entity.
type FarmCreate struct {
	config
	mutation *FarmMutation
	hooks    []Hook
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *FarmCreate) SetLegacyCode(v string) *FarmCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetName sets the "name" field.
func (_c *FarmCreate) SetName(v string) *FarmCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetLocation sets the "location" field.
func (_c *FarmCreate) SetLocation(v string) *FarmCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *FarmCreate) SetNillableLocation(v *string) *FarmCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FarmCreate) SetCreatedAt(v time.Time) *FarmCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FarmCreate) SetNillableCreatedAt(v *time.Time) *FarmCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FarmCreate) SetUpdatedAt(v time.Time) *FarmCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FarmCreate) SetNillableUpdatedAt(v *time.Time) *FarmCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FarmCreate) SetID(v uuid.UUID) *FarmCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FarmCreate) SetNillableID(v *uuid.UUID) *FarmCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPhysicalBlockIDs adds the "physical_blocks" edge to the PhysicalBlock entity by IDs.
func (_c *FarmCreate) AddPhysicalBlockIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddPhysicalBlockIDs(ids...)
	return _c
}

// AddPhysicalBlocks adds the "physical_blocks" edges to the PhysicalBlock entity.
func (_c *FarmCreate) AddPhysicalBlocks(v ...*PhysicalBlock) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPhysicalBlockIDs(ids...)
}

// AddBlockIDs adds the "blocks" edge to the Block entity by IDs.
func (_c *FarmCreate) AddBlockIDs(ids ...uuid.UUID) *FarmCreate {
	_c.mutation.AddBlockIDs(ids...)
	return _c
}

// AddBlocks adds the "blocks" edges to the Block entity.
func (_c *FarmCreate) AddBlocks(v ...*Block) *FarmCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBlockIDs(ids...)
}

// Mutation returns the FarmMutation object of the builder.
func (_c *FarmCreate) Mutation() *FarmMutation {
	return _c.mutation
}

// Save creates the Farm in the database.
func (_c *FarmCreate) Save(ctx context.Context) (*Farm, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FarmCreate) SaveX(ctx context.Context) *Farm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FarmCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := farm.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := farm.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := farm.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FarmCreate) check() error {
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "Farm.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := farm.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Farm.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Farm.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := farm.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Farm.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Farm.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Farm.updated_at"`)}
	}
	return nil
}

func (_c *FarmCreate) sqlSave(ctx context.Context) (*Farm, error) {
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

func (_c *FarmCreate) createSpec() (*Farm, *sqlgraph.CreateSpec) {
	var (
		_node = &Farm{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(farm.Table, sqlgraph.NewFieldSpec(farm.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(farm.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(farm.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(farm.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(farm.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(farm.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PhysicalBlocksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlocksIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FarmCreateBulk is the builder for creating many Farm entities in bulk.
type FarmCreateBulk struct {
	config
	err      error
	builders []*FarmCreate
}

// Save creates the Farm entities in the database.
func (_c *FarmCreateBulk) Save(ctx context.Context) ([]*Farm, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Farm, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FarmMutation)
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
func (_c *FarmCreateBulk) SaveX(ctx context.Context) []*Farm {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FarmCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FarmCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
