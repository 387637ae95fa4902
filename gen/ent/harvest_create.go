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
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/google/uuid"
)

// HarvestCreate is the builder for creating a Harvest entity.
type HarvestCreate struct {
	config
	mutation *HarvestMutation
	hooks    []Hook
}

// SetBlockID sets the "block_id" field.
func (_c *HarvestCreate) SetBlockID(v uuid.UUID) *HarvestCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *HarvestCreate) SetLegacyCode(v string) *HarvestCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetCropName sets the "crop_name" field.
func (_c *HarvestCreate) SetCropName(v string) *HarvestCreate {
	_c.mutation.SetCropName(v)
	return _c
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_c *HarvestCreate) SetNillableCropName(v *string) *HarvestCreate {
	if v != nil {
		_c.SetCropName(*v)
	}
	return _c
}

// SetDate sets the "date" field.
func (_c *HarvestCreate) SetDate(v time.Time) *HarvestCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetQuantityKg sets the "quantity_kg" field.
func (_c *HarvestCreate) SetQuantityKg(v float64) *HarvestCreate {
	_c.mutation.SetQuantityKg(v)
	return _c
}

// SetGrade sets the "grade" field.
func (_c *HarvestCreate) SetGrade(v string) *HarvestCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_c *HarvestCreate) SetNillableGrade(v *string) *HarvestCreate {
	if v != nil {
		_c.SetGrade(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HarvestCreate) SetCreatedAt(v time.Time) *HarvestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HarvestCreate) SetNillableCreatedAt(v *time.Time) *HarvestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HarvestCreate) SetID(v uuid.UUID) *HarvestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HarvestCreate) SetNillableID(v *uuid.UUID) *HarvestCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBlock sets the "block" edge to the Block entity.
func (_c *HarvestCreate) SetBlock(v *Block) *HarvestCreate {
	return _c.SetBlockID(v.ID)
}

// Mutation returns the HarvestMutation object of the builder.
func (_c *HarvestCreate) Mutation() *HarvestMutation {
	return _c.mutation
}

// Save creates the Harvest in the database.
func (_c *HarvestCreate) Save(ctx context.Context) (*Harvest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HarvestCreate) SaveX(ctx context.Context) *Harvest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HarvestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HarvestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HarvestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := harvest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := harvest.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HarvestCreate) check() error {
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`ent: missing required field "Harvest.block_id"`)}
	}
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "Harvest.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := harvest.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Harvest.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "Harvest.date"`)}
	}
	if _, ok := _c.mutation.QuantityKg(); !ok {
		return &ValidationError{Name: "quantity_kg", err: errors.New(`ent: missing required field "Harvest.quantity_kg"`)}
	}
	if v, ok := _c.mutation.QuantityKg(); ok {
		if err := harvest.QuantityKgValidator(v); err != nil {
			return &ValidationError{Name: "quantity_kg", err: fmt.Errorf(`ent: validator failed for field "Harvest.quantity_kg": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Harvest.created_at"`)}
	}
	if len(_c.mutation.BlockIDs()) == 0 {
		return &ValidationError{Name: "block", err: errors.New(`ent: missing required edge "Harvest.block"`)}
	}
	return nil
}

func (_c *HarvestCreate) sqlSave(ctx context.Context) (*Harvest, error) {
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

func (_c *HarvestCreate) createSpec() (*Harvest, *sqlgraph.CreateSpec) {
	var (
		_node = &Harvest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(harvest.Table, sqlgraph.NewFieldSpec(harvest.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(harvest.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.CropName(); ok {
		_spec.SetField(harvest.FieldCropName, field.TypeString, value)
		_node.CropName = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(harvest.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.QuantityKg(); ok {
		_spec.SetField(harvest.FieldQuantityKg, field.TypeFloat64, value)
		_node.QuantityKg = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(harvest.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(harvest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BlockIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   harvest.BlockTable,
			Columns: []string{harvest.BlockColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(block.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BlockID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HarvestCreateBulk is the builder for creating many Harvest entities in bulk.
type HarvestCreateBulk struct {
	config
	err      error
	builders []*HarvestCreate
}

// Save creates the Harvest entities in the database.
func (_c *HarvestCreateBulk) Save(ctx context.Context) ([]*Harvest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Harvest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HarvestMutation)
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
func (_c *HarvestCreateBulk) SaveX(ctx context.Context) []*Harvest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HarvestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HarvestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
