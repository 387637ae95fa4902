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

// PriceRecordCreate is the builder for creating a PriceRecord entity.
type PriceRecordCreate struct {
	config
	mutation *PriceRecordMutation
	hooks    []Hook
}

// SetCropID sets the "crop_id" field.
func (_c *PriceRecordCreate) SetCropID(v uuid.UUID) *PriceRecordCreate {
	_c.mutation.SetCropID(v)
	return _c
}

// SetNillableCropID sets the "crop_id" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCropID(v *uuid.UUID) *PriceRecordCreate {
	if v != nil {
		_c.SetCropID(*v)
	}
	return _c
}

// SetLegacyCode sets the "legacy_code" field.
func (_c *PriceRecordCreate) SetLegacyCode(v string) *PriceRecordCreate {
	_c.mutation.SetLegacyCode(v)
	return _c
}

// SetCropName sets the "crop_name" field.
func (_c *PriceRecordCreate) SetCropName(v string) *PriceRecordCreate {
	_c.mutation.SetCropName(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *PriceRecordCreate) SetDate(v time.Time) *PriceRecordCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetPricePerKg sets the "price_per_kg" field.
func (_c *PriceRecordCreate) SetPricePerKg(v float64) *PriceRecordCreate {
	_c.mutation.SetPricePerKg(v)
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *PriceRecordCreate) SetCurrencyCode(v string) *PriceRecordCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PriceRecordCreate) SetCreatedAt(v time.Time) *PriceRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableCreatedAt(v *time.Time) *PriceRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PriceRecordCreate) SetID(v uuid.UUID) *PriceRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PriceRecordCreate) SetNillableID(v *uuid.UUID) *PriceRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetCrop sets the "crop" edge to the Crop entity.
func (_c *PriceRecordCreate) SetCrop(v *Crop) *PriceRecordCreate {
	return _c.SetCropID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_c *PriceRecordCreate) Mutation() *PriceRecordMutation {
	return _c.mutation
}

// Save creates the PriceRecord in the database.
func (_c *PriceRecordCreate) Save(ctx context.Context) (*PriceRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PriceRecordCreate) SaveX(ctx context.Context) *PriceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PriceRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pricerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := pricerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PriceRecordCreate) check() error {
	if _, ok := _c.mutation.LegacyCode(); !ok {
		return &ValidationError{Name: "legacy_code", err: errors.New(`ent: missing required field "PriceRecord.legacy_code"`)}
	}
	if v, ok := _c.mutation.LegacyCode(); ok {
		if err := pricerecord.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.legacy_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CropName(); !ok {
		return &ValidationError{Name: "crop_name", err: errors.New(`ent: missing required field "PriceRecord.crop_name"`)}
	}
	if v, ok := _c.mutation.CropName(); ok {
		if err := pricerecord.CropNameValidator(v); err != nil {
			return &ValidationError{Name: "crop_name", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.crop_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "PriceRecord.date"`)}
	}
	if _, ok := _c.mutation.PricePerKg(); !ok {
		return &ValidationError{Name: "price_per_kg", err: errors.New(`ent: missing required field "PriceRecord.price_per_kg"`)}
	}
	if v, ok := _c.mutation.PricePerKg(); ok {
		if err := pricerecord.PricePerKgValidator(v); err != nil {
			return &ValidationError{Name: "price_per_kg", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.price_per_kg": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "PriceRecord.currency_code"`)}
	}
	if v, ok := _c.mutation.CurrencyCode(); ok {
		if err := pricerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.currency_code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PriceRecord.created_at"`)}
	}
	return nil
}

func (_c *PriceRecordCreate) sqlSave(ctx context.Context) (*PriceRecord, error) {
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

func (_c *PriceRecordCreate) createSpec() (*PriceRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &PriceRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pricerecord.Table, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.LegacyCode(); ok {
		_spec.SetField(pricerecord.FieldLegacyCode, field.TypeString, value)
		_node.LegacyCode = value
	}
	if value, ok := _c.mutation.CropName(); ok {
		_spec.SetField(pricerecord.FieldCropName, field.TypeString, value)
		_node.CropName = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(pricerecord.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.PricePerKg(); ok {
		_spec.SetField(pricerecord.FieldPricePerKg, field.TypeFloat64, value)
		_node.PricePerKg = value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(pricerecord.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.CropIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   pricerecord.CropTable,
			Columns: []string{pricerecord.CropColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crop.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CropID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PriceRecordCreateBulk is the builder for creating many PriceRecord entities in bulk.
type PriceRecordCreateBulk struct {
	config
	err      error
	builders []*PriceRecordCreate
}

// Save creates the PriceRecord entities in the database.
func (_c *PriceRecordCreateBulk) Save(ctx context.Context) ([]*PriceRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PriceRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PriceRecordMutation)
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
func (_c *PriceRecordCreateBulk) SaveX(ctx context.Context) []*PriceRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PriceRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PriceRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
