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
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/google/uuid"
)

// HarvestUpdate is the builder for updating Harvest entities.
type HarvestUpdate struct {
	config
	hooks    []Hook
	mutation *HarvestMutation
}

// Where appends a list predicates to the HarvestUpdate builder.
func (_u *HarvestUpdate) Where(ps ...predicate.Harvest) *HarvestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBlockID sets the "block_id" field.
func (_u *HarvestUpdate) SetBlockID(v uuid.UUID) *HarvestUpdate {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableBlockID(v *uuid.UUID) *HarvestUpdate {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *HarvestUpdate) SetLegacyCode(v string) *HarvestUpdate {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableLegacyCode(v *string) *HarvestUpdate {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *HarvestUpdate) SetCropName(v string) *HarvestUpdate {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableCropName(v *string) *HarvestUpdate {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *HarvestUpdate) ClearCropName() *HarvestUpdate {
	_u.mutation.ClearCropName()
	return _u
}

// SetDate sets the "date" field.
func (_u *HarvestUpdate) SetDate(v time.Time) *HarvestUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableDate(v *time.Time) *HarvestUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetQuantityKg sets the "quantity_kg" field.
func (_u *HarvestUpdate) SetQuantityKg(v float64) *HarvestUpdate {
	_u.mutation.ResetQuantityKg()
	_u.mutation.SetQuantityKg(v)
	return _u
}

// SetNillableQuantityKg sets the "quantity_kg" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableQuantityKg(v *float64) *HarvestUpdate {
	if v != nil {
		_u.SetQuantityKg(*v)
	}
	return _u
}

// AddQuantityKg adds value to the "quantity_kg" field.
func (_u *HarvestUpdate) AddQuantityKg(v float64) *HarvestUpdate {
	_u.mutation.AddQuantityKg(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *HarvestUpdate) SetGrade(v string) *HarvestUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableGrade(v *string) *HarvestUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *HarvestUpdate) ClearGrade() *HarvestUpdate {
	_u.mutation.ClearGrade()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HarvestUpdate) SetCreatedAt(v time.Time) *HarvestUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HarvestUpdate) SetNillableCreatedAt(v *time.Time) *HarvestUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBlock sets the "block" edge to the Block entity.
func (_u *HarvestUpdate) SetBlock(v *Block) *HarvestUpdate {
	return _u.SetBlockID(v.ID)
}

// Mutation returns the HarvestMutation object of the builder.
func (_u *HarvestUpdate) Mutation() *HarvestMutation {
	return _u.mutation
}

// ClearBlock clears the "block" edge to the Block entity.
func (_u *HarvestUpdate) ClearBlock() *HarvestUpdate {
	_u.mutation.ClearBlock()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HarvestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HarvestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HarvestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HarvestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HarvestUpdate) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := harvest.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Harvest.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuantityKg(); ok {
		if err := harvest.QuantityKgValidator(v); err != nil {
			return &ValidationError{Name: "quantity_kg", err: fmt.Errorf(`ent: validator failed for field "Harvest.quantity_kg": %w`, err)}
		}
	}
	if _u.mutation.BlockCleared() && len(_u.mutation.BlockIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Harvest.block"`)
	}
	return nil
}

func (_u *HarvestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(harvest.Table, harvest.Columns, sqlgraph.NewFieldSpec(harvest.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LegacyCode(); ok {
		_spec.SetField(harvest.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(harvest.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(harvest.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(harvest.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuantityKg(); ok {
		_spec.SetField(harvest.FieldQuantityKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantityKg(); ok {
		_spec.AddField(harvest.FieldQuantityKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(harvest.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(harvest.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(harvest.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{harvest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HarvestUpdateOne is the builder for updating a single Harvest entity.
type HarvestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HarvestMutation
}

// SetBlockID sets the "block_id" field.
func (_u *HarvestUpdateOne) SetBlockID(v uuid.UUID) *HarvestUpdateOne {
	_u.mutation.SetBlockID(v)
	return _u
}

// SetNillableBlockID sets the "block_id" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableBlockID(v *uuid.UUID) *HarvestUpdateOne {
	if v != nil {
		_u.SetBlockID(*v)
	}
	return _u
}

// SetLegacyCode sets the "legacy_code" field.
func (_u *HarvestUpdateOne) SetLegacyCode(v string) *HarvestUpdateOne {
	_u.mutation.SetLegacyCode(v)
	return _u
}

// SetNillableLegacyCode sets the "legacy_code" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableLegacyCode(v *string) *HarvestUpdateOne {
	if v != nil {
		_u.SetLegacyCode(*v)
	}
	return _u
}

// SetCropName sets the "crop_name" field.
func (_u *HarvestUpdateOne) SetCropName(v string) *HarvestUpdateOne {
	_u.mutation.SetCropName(v)
	return _u
}

// SetNillableCropName sets the "crop_name" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableCropName(v *string) *HarvestUpdateOne {
	if v != nil {
		_u.SetCropName(*v)
	}
	return _u
}

// ClearCropName clears the value of the "crop_name" field.
func (_u *HarvestUpdateOne) ClearCropName() *HarvestUpdateOne {
	_u.mutation.ClearCropName()
	return _u
}

// SetDate sets the "date" field.
func (_u *HarvestUpdateOne) SetDate(v time.Time) *HarvestUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableDate(v *time.Time) *HarvestUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetQuantityKg sets the "quantity_kg" field.
func (_u *HarvestUpdateOne) SetQuantityKg(v float64) *HarvestUpdateOne {
	_u.mutation.ResetQuantityKg()
	_u.mutation.SetQuantityKg(v)
	return _u
}

// SetNillableQuantityKg sets the "quantity_kg" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableQuantityKg(v *float64) *HarvestUpdateOne {
	if v != nil {
		_u.SetQuantityKg(*v)
	}
	return _u
}

// AddQuantityKg adds value to the "quantity_kg" field.
func (_u *HarvestUpdateOne) AddQuantityKg(v float64) *HarvestUpdateOne {
	_u.mutation.AddQuantityKg(v)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *HarvestUpdateOne) SetGrade(v string) *HarvestUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableGrade(v *string) *HarvestUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// ClearGrade clears the value of the "grade" field.
func (_u *HarvestUpdateOne) ClearGrade() *HarvestUpdateOne {
	_u.mutation.ClearGrade()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *HarvestUpdateOne) SetCreatedAt(v time.Time) *HarvestUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *HarvestUpdateOne) SetNillableCreatedAt(v *time.Time) *HarvestUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetBlock sets the "block" edge to the Block entity.
func (_u *HarvestUpdateOne) SetBlock(v *Block) *HarvestUpdateOne {
	return _u.SetBlockID(v.ID)
}

// Mutation returns the HarvestMutation object of the builder.
func (_u *HarvestUpdateOne) Mutation() *HarvestMutation {
	return _u.mutation
}

// ClearBlock clears the "block" edge to the Block entity.
func (_u *HarvestUpdateOne) ClearBlock() *HarvestUpdateOne {
	_u.mutation.ClearBlock()
	return _u
}

// Where appends a list predicates to the HarvestUpdate builder.
func (_u *HarvestUpdateOne) Where(ps ...predicate.Harvest) *HarvestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HarvestUpdateOne) Select(field string, fields ...string) *HarvestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Harvest entity.
func (_u *HarvestUpdateOne) Save(ctx context.Context) (*Harvest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HarvestUpdateOne) SaveX(ctx context.Context) *Harvest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HarvestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HarvestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HarvestUpdateOne) check() error {
	if v, ok := _u.mutation.LegacyCode(); ok {
		if err := harvest.LegacyCodeValidator(v); err != nil {
			return &ValidationError{Name: "legacy_code", err: fmt.Errorf(`ent: validator failed for field "Harvest.legacy_code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuantityKg(); ok {
		if err := harvest.QuantityKgValidator(v); err != nil {
			return &ValidationError{Name: "quantity_kg", err: fmt.Errorf(`ent: validator failed for field "Harvest.quantity_kg": %w`, err)}
		}
	}
	if _u.mutation.BlockCleared() && len(_u.mutation.BlockIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Harvest.block"`)
	}
	return nil
}

func (_u *HarvestUpdateOne) sqlSave(ctx context.Context) (_node *Harvest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(harvest.Table, harvest.Columns, sqlgraph.NewFieldSpec(harvest.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Harvest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, harvest.FieldID)
		for _, f := range fields {
			if !harvest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != harvest.FieldID {
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
		_spec.SetField(harvest.FieldLegacyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.CropName(); ok {
		_spec.SetField(harvest.FieldCropName, field.TypeString, value)
	}
	if _u.mutation.CropNameCleared() {
		_spec.ClearField(harvest.FieldCropName, field.TypeString)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(harvest.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.QuantityKg(); ok {
		_spec.SetField(harvest.FieldQuantityKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuantityKg(); ok {
		_spec.AddField(harvest.FieldQuantityKg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(harvest.FieldGrade, field.TypeString, value)
	}
	if _u.mutation.GradeCleared() {
		_spec.ClearField(harvest.FieldGrade, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(harvest.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.BlockCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlockIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Harvest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{harvest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
