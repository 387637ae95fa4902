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
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

// PriceRecordUpdate is the builder for updating PriceRecord entities.
type PriceRecordUpdate struct {
	config
	hooks    []Hook
	mutation *PriceRecordMutation
}

// Where appends a list predicates to the PriceRecordUpdate builder.
func (_u *PriceRecordUpdate) Where(ps ...predicate.PriceRecord) *PriceRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCropID sets the "crop_id" field.
func (_u *PriceRecordUpdate) SetCropID(v uuid.UUID) *PriceRecordUpdate {
	_u.mutation.SetCropID(v)
	return _u
}

// SetNillableCropID sets the "crop_id" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCropID(v *uuid.UUID) *PriceRecordUpdate {
	if v != nil {
		_u.SetCropID(*v)
	}
	return _u
}

// ClearCropID clears the value of the "crop_id" field.
func (_u *PriceRecordUpdate) ClearCropID() *PriceRecordUpdate {
	_u.mutation.ClearCropID()
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *PriceRecordUpdate) SetLegacyCode(v string) *PriceRecordUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableLegacyCode(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *PriceRecordUpdate) SetCropName(v string) *PriceRecordUpdate {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCropName(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PriceRecordUpdate) SetDate(v time.Time) *PriceRecordUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableDate(v *time.Time) *PriceRecordUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPricePerKg sets the "price_per_kg" field.
func (_u *PriceRecordUpdate) SetPricePerKg(v float64) *PriceRecordUpdate {
	_u.mutation.ResetPricePerKg()
	_u.mutation.SetPricePerKg(v)
	return _u
}

// SetNillablePricePerKg sets the "price_per_kg" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillablePricePerKg(v *float64) *PriceRecordUpdate {
	if v != nil {
		_u.SetPricePerKg(*v)
	}
	return _u
}

// AddPricePerKg adds value to the "price_per_kg" field.
func (_u *PriceRecordUpdate) AddPricePerKg(v float64) *PriceRecordUpdate {
	_u.mutation.AddPricePerKg(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PriceRecordUpdate) SetCurrencyCode(v string) *PriceRecordUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCurrencyCode(v *string) *PriceRecordUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceRecordUpdate) SetCreatedAt(v time.Time) *PriceRecordUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceRecordUpdate) SetNillableCreatedAt(v *time.Time) *PriceRecordUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCrop sets the "crop" edge to the Crop entity.
func (_u *PriceRecordUpdate) SetCrop(v *Crop) *PriceRecordUpdate {
	return _u.SetCropID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_u *PriceRecordUpdate) Mutation() *PriceRecordMutation {
	return _u.mutation
}

// ClearCrop clears the "crop" edge to the Crop entity.
func (_u *PriceRecordUpdate) ClearCrop() *PriceRecordUpdate {
	_u.mutation.ClearCrop()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PriceRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PriceRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceRecordUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := pricerecord.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CropName(); ok {
		if err := pricerecord.CropNameValidator(v); err != nil {
			return &ValidationError{Name: "crop_name", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.crop_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PricePerKg(); ok {
		if err := pricerecord.PricePerKgValidator(v); err != nil {
			return &ValidationError{Name: "price_per_kg", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.price_per_kg": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := pricerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricerecord.Table, pricerecord.Columns, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(pricerecord.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(pricerecord.FieldCropName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(pricerecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PricePerKg(); ok {
		_spec.SetField(pricerecord.FieldPricePerKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerKg(); ok {
		_spec.AddField(pricerecord.FieldPricePerKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(pricerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CropCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CropIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PriceRecordUpdateOne is the builder for updating a single PriceRecord entity.
type PriceRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PriceRecordMutation
}

// SetCropID sets the "crop_id" field.
func (_u *PriceRecordUpdateOne) SetCropID(v uuid.UUID) *PriceRecordUpdateOne {
	_u.mutation.SetCropID(v)
	return _u
}

// SetNillableCropID sets the "crop_id" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCropID(v *uuid.UUID) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCropID(*v)
	}
	return _u
}

// ClearCropID clears the value of the "crop_id" field.
func (_u *PriceRecordUpdateOne) ClearCropID() *PriceRecordUpdateOne {
	_u.mutation.ClearCropID()
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *PriceRecordUpdateOne) SetLegacyCode(v string) *PriceRecordUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableLegacyCode(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *PriceRecordUpdateOne) SetCropName(v string) *PriceRecordUpdateOne {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCropName(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *PriceRecordUpdateOne) SetDate(v time.Time) *PriceRecordUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableDate(v *time.Time) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetPricePerKg sets the "price_per_kg" field.
func (_u *PriceRecordUpdateOne) SetPricePerKg(v float64) *PriceRecordUpdateOne {
	_u.mutation.ResetPricePerKg()
	_u.mutation.SetPricePerKg(v)
	return _u
}

// SetNillablePricePerKg sets the "price_per_kg" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillablePricePerKg(v *float64) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetPricePerKg(*v)
	}
	return _u
}

// AddPricePerKg adds value to the "price_per_kg" field.
func (_u *PriceRecordUpdateOne) AddPricePerKg(v float64) *PriceRecordUpdateOne {
	_u.mutation.AddPricePerKg(v)
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PriceRecordUpdateOne) SetCurrencyCode(v string) *PriceRecordUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCurrencyCode(v *string) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PriceRecordUpdateOne) SetCreatedAt(v time.Time) *PriceRecordUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PriceRecordUpdateOne) SetNillableCreatedAt(v *time.Time) *PriceRecordUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetCrop sets the "crop" edge to the Crop entity.
func (_u *PriceRecordUpdateOne) SetCrop(v *Crop) *PriceRecordUpdateOne {
	return _u.SetCropID(v.ID)
}

// Mutation returns the PriceRecordMutation object of the builder.
func (_u *PriceRecordUpdateOne) Mutation() *PriceRecordMutation {
	return _u.mutation
}

// ClearCrop clears the "crop" edge to the Crop entity.
func (_u *PriceRecordUpdateOne) ClearCrop() *PriceRecordUpdateOne {
	_u.mutation.ClearCrop()
	return _u
}

// Where appends a list predicates to the PriceRecordUpdate builder.
func (_u *PriceRecordUpdateOne) Where(ps ...predicate.PriceRecord) *PriceRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PriceRecordUpdateOne) Select(field string, fields ...string) *PriceRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PriceRecord entity.
func (_u *PriceRecordUpdateOne) Save(ctx context.Context) (*PriceRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PriceRecordUpdateOne) SaveX(ctx context.Context) *PriceRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PriceRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PriceRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PriceRecordUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := pricerecord.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CropName(); ok {
		if err := pricerecord.CropNameValidator(v); err != nil {
			return &ValidationError{Name: "crop_name", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.crop_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PricePerKg(); ok {
		if err := pricerecord.PricePerKgValidator(v); err != nil {
			return &ValidationError{Name: "price_per_kg", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.price_per_kg": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrencyCode(); ok {
		if err := pricerecord.CurrencyCodeValidator(v); err != nil {
			return &ValidationError{Name: "currency_code", err: fmt.Errorf(`ent: validator failed for field "PriceRecord.currency_code": %w`, err)}
		}
	}
	return nil
}

func (_u *PriceRecordUpdateOne) sqlSave(ctx context.Context) (_node *PriceRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pricerecord.Table, pricerecord.Columns, sqlgraph.NewFieldSpec(pricerecord.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PriceRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pricerecord.FieldID)
		for _, f := range fields {
			if !pricerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pricerecord.FieldID {
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
		_spec.SetField(pricerecord.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(pricerecord.FieldCropName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(pricerecord.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PricePerKg(); ok {
		_spec.SetField(pricerecord.FieldPricePerKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPricePerKg(); ok {
		_spec.AddField(pricerecord.FieldPricePerKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(pricerecord.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(pricerecord.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.CropCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CropIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PriceRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pricerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
