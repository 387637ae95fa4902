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
	"github.com/google/uuid"
)

// ArchivedCycleCreate is the builder for creating a ArchivedCycle entity.
type ArchivedCycleCreate struct {
	config
	mutation *ArchivedCycleMutation
	hooks    []Hook
}

// SetBlockID sets the "block_id" field.
func (_c *ArchivedCycleCreate) SetBlockID(v uuid.UUID) *ArchivedCycleCreate {
	_c.mutation.SetBlockID(v)
	return _c
}

// SetFarmID sets the "farm_id" field.
func (_c *ArchivedCycleCreate) SetFarmID(v uuid.UUID) *ArchivedCycleCreate {
	_c.mutation.SetFarmID(v)
	return _c
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *ArchivedCycleCreate) SetLegacyCode(v string) *ArchivedCycleCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetCropName sets the "crop_name" field.
func (_c *ArchivedCycleCreate) SetCropName(v string) *ArchivedCycleCreate {
	_c.mutation.SetCropName(v)
	return _c
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_c *ArchivedCycleCreate) SetNillableCropName(v *string) *ArchivedCycleCreate {
	if v != nil {
		_c.SetCropName(*v)
	}
	return _c
}

// SetPlantingDate sets the "planting_date" field.
func (_c *ArchivedCycleCreate) SetPlantingDate(v time.Time) *ArchivedCycleCreate {
	_c.mutation.SetPlantingDate(v)
	return _c
}

// SetClearedDate sets the "cleared_date" field.
func (_c *ArchivedCycleCreate) SetClearedDate(v time.Time) *ArchivedCycleCreate {
	_c.mutation.SetClearedDate(v)
	return _c
}

// SetNillableClearedDate sets the "cleared_date" field if the given value is not nil.
func (_c *ArchivedCycleCreate) SetNillableClearedDate(v *time.Time) *ArchivedCycleCreate {
	if v != nil {
		_c.SetClearedDate(*v)
	}
	return _c
}

// SetYieldKg sets the "yield_kg" field.
func (_c *ArchivedCycleCreate) SetYieldKg(v float64) *ArchivedCycleCreate {
	_c.mutation.SetYieldKg(v)
	return _c
}

// SetNillableYieldKg sets the "yield_kg" field if the given value is not nil.
func (_c *ArchivedCycleCreate) SetNillableYieldKg(v *float64) *ArchivedCycleCreate {
	if v != nil {
		_c.SetYieldKg(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArchivedCycleCreate) SetCreatedAt(v time.Time) *ArchivedCycleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArchivedCycleCreate) SetNillableCreatedAt(v *time.Time) *ArchivedCycleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ArchivedCycleCreate) SetID(v uuid.UUID) *ArchivedCycleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ArchivedCycleCreate) SetNillableID(v *uuid.UUID) *ArchivedCycleCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBlock sets the "block" edge to the Block entity.
func (_c *ArchivedCycleCreate) SetBlock(v *Block) *ArchivedCycleCreate {
	return _c.SetBlockID(v.ID)
}

// Mutation returns the ArchivedCycleMutation object of the builder.
func (_c *ArchivedCycleCreate) Mutation() *ArchivedCycleMutation {
	return _c.mutation
}

// Save creates the ArchivedCycle in the database.
func (_c *ArchivedCycleCreate) Save(ctx context.Context) (*ArchivedCycle, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArchivedCycleCreate) SaveX(ctx context.Context) *ArchivedCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedCycleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedCycleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArchivedCycleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := archivedcycle.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := archivedcycle.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArchivedCycleCreate) check() error {
	if _, ok := _c.mutation.BlockID(); !ok {
		return &ValidationError{Name: "block_id", err: errors.New(`ent: missing required field "ArchivedCycle.block_id"`)}
	}
	if _, ok := _c.mutation.FarmID(); !ok {
		return &ValidationError{Name: "farm_id", err: errors.New(`ent: missing required field "ArchivedCycle.farm_id"`)}
	}
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "ArchivedCycle.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := archivedcycle.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "ArchivedCycle.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PlantingDate(); !ok {
		return &ValidationError{Name: "planting_date", err: errors.New(`ent: missing required field "ArchivedCycle.planting_date"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ArchivedCycle.created_at"`)}
	}
	if len(_c.mutation.BlockIDs()) == 0 {
		return &ValidationError{Name: "block", err: errors.New(`ent: missing required edge "ArchivedCycle.block"`)}
	}
	return nil
}

func (_c *ArchivedCycleCreate) sqlSave(ctx context.Context) (*ArchivedCycle, error) {
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

func (_c *ArchivedCycleCreate) createSpec() (*ArchivedCycle, *sqlgraph.CreateSpec) {
	var (
		_node = &ArchivedCycle{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(archivedcycle.Table, sqlgraph.NewFieldSpec(archivedcycle.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FarmID(); ok {
		_spec.SetField(archivedcycle.FieldFarmID, field.TypeUUID, value)
		_node.FarmID = value
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(archivedcycle.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.CropName(); ok {
		_spec.SetField(archivedcycle.FieldCropName, field.TypeString, value)
		_node.CropName = value
	}
	if value, ok := _c.mutation.PlantingDate(); ok {
		_spec.SetField(archivedcycle.FieldPlantingDate, field.TypeTime, value)
		_node.PlantingDate = value
	}
	if value, ok := _c.mutation.ClearedDate(); ok {
		_spec.SetField(archivedcycle.FieldClearedDate, field.TypeTime, value)
		_node.ClearedDate = &value
	}
	if value, ok := _c.mutation.YieldKg(); ok {
		_spec.SetField(archivedcycle.FieldYieldKg, field.TypeFloat64, value)
		_node.YieldKg = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(archivedcycle.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BlockIDs(); len(nodes) > 0 {
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
		_node.BlockID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ArchivedCycleCreateBulk is the builder for creating many ArchivedCycle entities in bulk.
type ArchivedCycleCreateBulk struct {
	config
	err      error
	builders []*ArchivedCycleCreate
}

// Save creates the ArchivedCycle entities in the database.
func (_c *ArchivedCycleCreateBulk) Save(ctx context.Context) ([]*ArchivedCycle, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ArchivedCycle, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArchivedCycleMutation)
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
func (_c *ArchivedCycleCreateBulk) SaveX(ctx context.Context) []*ArchivedCycle {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArchivedCycleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArchivedCycleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
