// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

// CropCreate is the builder for creating a Crop entity.
type CropCreate struct {
	config
	mutation *CropMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *CropCreate) SetName(v string) *CropCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetVariety sets the "variety" field.
func (_c *CropCreate) SetVariety(v string) *CropCreate {
	_c.mutation.SetVariety(v)
	return _c
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_c *CropCreate) SetNillableVariety(v *string) *CropCreate {
	if v != nil {
		_c.SetVariety(*v)
	}
	return _c
}

// SetGerminationDays sets the "germination_days" field.
func (_c *CropCreate) SetGerminationDays(v int) *CropCreate {
	_c.mutation.SetGerminationDays(v)
	return _c
}

// SetNillableGerminationDays sets the "germination_days" field if the given value is not nil.
func (_c *CropCreate) SetNillableGerminationDays(v *int) *CropCreate {
	if v != nil {
		_c.SetGerminationDays(*v)
	}
	return _c
}

// SetVegetativeDays sets the "vegetative_days" field.
func (_c *CropCreate) SetVegetativeDays(v int) *CropCreate {
	_c.mutation.SetVegetativeDays(v)
	return _c
}

// SetNillableVegetativeDays sets the "vegetative_days" field if the given value is not nil.
func (_c *CropCreate) SetNillableVegetativeDays(v *int) *CropCreate {
	if v != nil {
		_c.SetVegetativeDays(*v)
	}
	return _c
}

// SetFloweringDays sets the "flowering_days" field.
func (_c *CropCreate) SetFloweringDays(v int) *CropCreate {
	_c.mutation.SetFloweringDays(v)
	return _c
}

// SetNillableFloweringDays sets the "flowering_days" field if the given value is not nil.
func (_c *CropCreate) SetNillableFloweringDays(v *int) *CropCreate {
	if v != nil {
		_c.SetFloweringDays(*v)
	}
	return _c
}

// SetTotalCycleDays sets the "total_cycle_days" field.
func (_c *CropCreate) SetTotalCycleDays(v int) *CropCreate {
	_c.mutation.SetTotalCycleDays(v)
	return _c
}

// SetNillableTotalCycleDays sets the "total_cycle_days" field if the given value is not nil.
func (_c *CropCreate) SetNillableTotalCycleDays(v *int) *CropCreate {
	if v != nil {
		_c.SetTotalCycleDays(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CropCreate) SetCreatedAt(v time.Time) *CropCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CropCreate) SetNillableCreatedAt(v *time.Time) *CropCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CropCreate) SetUpdatedAt(v time.Time) *CropCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CropCreate) SetNillableUpdatedAt(v *time.Time) *CropCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CropCreate) SetID(v uuid.UUID) *CropCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CropCreate) SetNillableID(v *uuid.UUID) *CropCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPriceRecordIDs adds the "price_records" edge to the PriceRecord entity by IDs.
func (_c *CropCreate) AddPriceRecordIDs(ids ...uuid.UUID) *CropCreate {
	_c.mutation.AddPriceRecordIDs(ids...)
	return _c
}

// AddPriceRecords adds the "price_records" edges to the PriceRecord entity.
func (_c *CropCreate) AddPriceRecords(v ...*PriceRecord) *CropCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPriceRecordIDs(ids...)
}

// Mutation returns the CropMutation object of the builder.
func (_c *CropCreate) Mutation() *CropMutation {
	return _c.mutation
}

// Save creates the Crop in the database.
func (_c *CropCreate) Save(ctx context.Context) (*Crop, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CropCreate) SaveX(ctx context.Context) *Crop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CropCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CropCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CropCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := crop.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := crop.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := crop.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CropCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Crop.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := crop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Crop.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.GerminationDays(); ok {
		if err := crop.GerminationDaysValidator(v); err != nil {
			return &ValidationError{Name: "germination_days", err: fmt.Errorf(`ent: validator failed for field "Crop.germination_days": %w`, err)}
		}
	}
	if v, ok := _c.mutation.VegetativeDays(); ok {
		if err := crop.VegetativeDaysValidator(v); err != nil {
			return &ValidationError{Name: "vegetative_days", err: fmt.Errorf(`ent: validator failed for field "Crop.vegetative_days": %w`, err)}
		}
	}
	if v, ok := _c.mutation.FloweringDays(); ok {
		if err := crop.FloweringDaysValidator(v); err != nil {
			return &ValidationError{Name: "flowering_days", err: fmt.Errorf(`ent: validator failed for field "Crop.flowering_days": %w`, err)}
		}
	}
	if v, ok := _c.mutation.TotalCycleDays(); ok {
		if err := crop.TotalCycleDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_cycle_days", err: fmt.Errorf(`ent: validator failed for field "Crop.total_cycle_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Crop.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Crop.updated_at"`)}
	}
	return nil
}

func (_c *CropCreate) sqlSave(ctx context.Context) (*Crop, error) {
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

func (_c *CropCreate) createSpec() (*Crop, *sqlgraph.CreateSpec) {
	var (
		_node = &Crop{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crop.Table, sqlgraph.NewFieldSpec(crop.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(crop.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Variety(); ok {
		_spec.SetField(crop.FieldVariety, field.TypeString, value)
		_node.Variety = value
	}
	if value, ok := _c.mutation.GerminationDays(); ok {
		_spec.SetField(crop.FieldGerminationDays, field.TypeInt, value)
		_node.GerminationDays = &value
	}
	if value, ok := _c.mutation.VegetativeDays(); ok {
		_spec.SetField(crop.FieldVegetativeDays, field.TypeInt, value)
		_node.VegetativeDays = &value
	}
	if value, ok := _c.mutation.FloweringDays(); ok {
		_spec.SetField(crop.FieldFloweringDays, field.TypeInt, value)
		_node.FloweringDays = &value
	}
	if value, ok := _c.mutation.TotalCycleDays(); ok {
		_spec.SetField(crop.FieldTotalCycleDays, field.TypeInt, value)
		_node.TotalCycleDays = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(crop.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(crop.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PriceRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   crop.PriceRecordsTable,
			Columns: []string{crop.PriceRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// CropCreateBulk is the builder for creating many Crop entities in bulk.
type CropCreateBulk struct {
	config
	err      error
	builders []*CropCreate
}

// Save creates the Crop entities in the database.
func (_c *CropCreateBulk) Save(ctx context.Context) ([]*Crop, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Crop, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CropMutation)
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
func (_c *CropCreateBulk) SaveX(ctx context.Context) []*Crop {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CropCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CropCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
