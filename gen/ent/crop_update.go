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

// CropUpdate is the builder for updating Crop entities.
type CropUpdate struct {
	config
	hooks    []Hook
	mutation *CropMutation
}

// Where appends a list predicates to the CropUpdate builder.
func (_u *CropUpdate) Where(ps ...predicate.Crop) *CropUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *CropUpdate) SetName(v string) *CropUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CropUpdate) SetNillableName(v *string) *CropUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariety sets the "variety" field.
func (_u *CropUpdate) SetVariety(v string) *CropUpdate {
	_u.mutation.SetVariety(v)
	return _u
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_u *CropUpdate) SetNillableVariety(v *string) *CropUpdate {
	if v != nil {
		_u.SetVariety(*v)
	}
	return _u
}

// ClearVariety clears the value of the "variety" field.
func (_u *CropUpdate) ClearVariety() *CropUpdate {
	_u.mutation.ClearVariety()
	return _u
}

// SetGerminationDays sets the "germination_days" field.
func (_u *CropUpdate) SetGerminationDays(v int) *CropUpdate {
	_u.mutation.ResetGerminationDays()
	_u.mutation.SetGerminationDays(v)
	return _u
}

// SetNillableGerminationDays sets the "germination_days" field if the given value is not nil.
func (_u *CropUpdate) SetNillableGerminationDays(v *int) *CropUpdate {
	if v != nil {
		_u.SetGerminationDays(*v)
	}
	return _u
}

// AddGerminationDays adds value to the "germination_days" field.
func (_u *CropUpdate) AddGerminationDays(v int) *CropUpdate {
	_u.mutation.AddGerminationDays(v)
	return _u
}

// ClearGerminationDays clears the value of the "germination_days" field.
func (_u *CropUpdate) ClearGerminationDays() *CropUpdate {
	_u.mutation.ClearGerminationDays()
	return _u
}

// SetVegetativeDays sets the "vegetative_days" field.
func (_u *CropUpdate) SetVegetativeDays(v int) *CropUpdate {
	_u.mutation.ResetVegetativeDays()
	_u.mutation.SetVegetativeDays(v)
	return _u
}

// SetNillableVegetativeDays sets the "vegetative_days" field if the given value is not nil.
func (_u *CropUpdate) SetNillableVegetativeDays(v *int) *CropUpdate {
	if v != nil {
		_u.SetVegetativeDays(*v)
	}
	return _u
}

// AddVegetativeDays adds value to the "vegetative_days" field.
func (_u *CropUpdate) AddVegetativeDays(v int) *CropUpdate {
	_u.mutation.AddVegetativeDays(v)
	return _u
}

// ClearVegetativeDays clears the value of the "vegetative_days" field.
func (_u *CropUpdate) ClearVegetativeDays() *CropUpdate {
	_u.mutation.ClearVegetativeDays()
	return _u
}

// SetFloweringDays sets the "flowering_days" field.
func (_u *CropUpdate) SetFloweringDays(v int) *CropUpdate {
	_u.mutation.ResetFloweringDays()
	_u.mutation.SetFloweringDays(v)
	return _u
}

// SetNillableFloweringDays sets the "flowering_days" field if the given value is not nil.
func (_u *CropUpdate) SetNillableFloweringDays(v *int) *CropUpdate {
	if v != nil {
		_u.SetFloweringDays(*v)
	}
	return _u
}

// AddFloweringDays adds value to the "flowering_days" field.
func (_u *CropUpdate) AddFloweringDays(v int) *CropUpdate {
	_u.mutation.AddFloweringDays(v)
	return _u
}

// ClearFloweringDays clears the value of the "flowering_days" field.
func (_u *CropUpdate) ClearFloweringDays() *CropUpdate {
	_u.mutation.ClearFloweringDays()
	return _u
}

// SetTotalCycleDays sets the "total_cycle_days" field.
func (_u *CropUpdate) SetTotalCycleDays(v int) *CropUpdate {
	_u.mutation.ResetTotalCycleDays()
	_u.mutation.SetTotalCycleDays(v)
	return _u
}

// SetNillableTotalCycleDays sets the "total_cycle_days" field if the given value is not nil.
func (_u *CropUpdate) SetNillableTotalCycleDays(v *int) *CropUpdate {
	if v != nil {
		_u.SetTotalCycleDays(*v)
	}
	return _u
}

// AddTotalCycleDays adds value to the "total_cycle_days" field.
func (_u *CropUpdate) AddTotalCycleDays(v int) *CropUpdate {
	_u.mutation.AddTotalCycleDays(v)
	return _u
}

// ClearTotalCycleDays clears the value of the "total_cycle_days" field.
func (_u *CropUpdate) ClearTotalCycleDays() *CropUpdate {
	_u.mutation.ClearTotalCycleDays()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CropUpdate) SetCreatedAt(v time.Time) *CropUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CropUpdate) SetNillableCreatedAt(v *time.Time) *CropUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CropUpdate) SetUpdatedAt(v time.Time) *CropUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPriceRecordIDs adds the "price_records" edge to the PriceRecord entity by IDs.
func (_u *CropUpdate) AddPriceRecordIDs(ids ...uuid.UUID) *CropUpdate {
	_u.mutation.AddPriceRecordIDs(ids...)
	return _u
}

// AddPriceRecords adds the "price_records" edges to the PriceRecord entity.
func (_u *CropUpdate) AddPriceRecords(v ...*PriceRecord) *CropUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPriceRecordIDs(ids...)
}

// Mutation returns the CropMutation object of the builder.
func (_u *CropUpdate) Mutation() *CropMutation {
	return _u.mutation
}

// ClearPriceRecords clears all "price_records" edges to the PriceRecord entity.
func (_u *CropUpdate) ClearPriceRecords() *CropUpdate {
	_u.mutation.ClearPriceRecords()
	return _u
}

// RemovePriceRecordIDs removes the "price_records" edge to PriceRecord entities by IDs.
func (_u *CropUpdate) RemovePriceRecordIDs(ids ...uuid.UUID) *CropUpdate {
	_u.mutation.RemovePriceRecordIDs(ids...)
	return _u
}

// RemovePriceRecords removes "price_records" edges to PriceRecord entities.
func (_u *CropUpdate) RemovePriceRecords(v ...*PriceRecord) *CropUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePriceRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CropUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CropUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CropUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CropUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CropUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CropUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := crop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Crop.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GerminationDays(); ok {
		if err := crop.GerminationDaysValidator(v); err != nil {
			return &ValidationError{Name: "germination_days", err: fmt.Errorf(`ent: validator failed for field "Crop.germination_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VegetativeDays(); ok {
		if err := crop.VegetativeDaysValidator(v); err != nil {
			return &ValidationError{Name: "vegetative_days", err: fmt.Errorf(`ent: validator failed for field "Crop.vegetative_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FloweringDays(); ok {
		if err := crop.FloweringDaysValidator(v); err != nil {
			return &ValidationError{Name: "flowering_days", err: fmt.Errorf(`ent: validator failed for field "Crop.flowering_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCycleDays(); ok {
		if err := crop.TotalCycleDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_cycle_days", err: fmt.Errorf(`ent: validator failed for field "Crop.total_cycle_days": %w`, err)}
		}
	}
	return nil
}

func (_u *CropUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crop.Table, crop.Columns, sqlgraph.NewFieldSpec(crop.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(crop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variety(); ok {
		_spec.SetField(crop.FieldVariety, field.TypeString, value)
	}
	if _u.mutation.VarietyCleared() {
		_spec.ClearField(crop.FieldVariety, field.TypeString)
	}
	if value, ok := _u.mutation.GerminationDays(); ok {
		_spec.SetField(crop.FieldGerminationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGerminationDays(); ok {
		_spec.AddField(crop.FieldGerminationDays, field.TypeInt, value)
	}
	if _u.mutation.GerminationDaysCleared() {
		_spec.ClearField(crop.FieldGerminationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.VegetativeDays(); ok {
		_spec.SetField(crop.FieldVegetativeDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVegetativeDays(); ok {
		_spec.AddField(crop.FieldVegetativeDays, field.TypeInt, value)
	}
	if _u.mutation.VegetativeDaysCleared() {
		_spec.ClearField(crop.FieldVegetativeDays, field.TypeInt)
	}
	if value, ok := _u.mutation.FloweringDays(); ok {
		_spec.SetField(crop.FieldFloweringDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFloweringDays(); ok {
		_spec.AddField(crop.FieldFloweringDays, field.TypeInt, value)
	}
	if _u.mutation.FloweringDaysCleared() {
		_spec.ClearField(crop.FieldFloweringDays, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalCycleDays(); ok {
		_spec.SetField(crop.FieldTotalCycleDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCycleDays(); ok {
		_spec.AddField(crop.FieldTotalCycleDays, field.TypeInt, value)
	}
	if _u.mutation.TotalCycleDaysCleared() {
		_spec.ClearField(crop.FieldTotalCycleDays, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(crop.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crop.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PriceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPriceRecordsIDs(); len(nodes) > 0 && !_u.mutation.PriceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PriceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CropUpdateOne is the builder for updating a single Crop entity.
type CropUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CropMutation
}

// SetName sets the "name" field.
func (_u *CropUpdateOne) SetName(v string) *CropUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableName(v *string) *CropUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetVariety sets the "variety" field.
func (_u *CropUpdateOne) SetVariety(v string) *CropUpdateOne {
	_u.mutation.SetVariety(v)
	return _u
}

// SetNillableVariety sets the "variety" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableVariety(v *string) *CropUpdateOne {
	if v != nil {
		_u.SetVariety(*v)
	}
	return _u
}

// ClearVariety clears the value of the "variety" field.
func (_u *CropUpdateOne) ClearVariety() *CropUpdateOne {
	_u.mutation.ClearVariety()
	return _u
}

// SetGerminationDays sets the "germination_days" field.
func (_u *CropUpdateOne) SetGerminationDays(v int) *CropUpdateOne {
	_u.mutation.ResetGerminationDays()
	_u.mutation.SetGerminationDays(v)
	return _u
}

// SetNillableGerminationDays sets the "germination_days" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableGerminationDays(v *int) *CropUpdateOne {
	if v != nil {
		_u.SetGerminationDays(*v)
	}
	return _u
}

// AddGerminationDays adds value to the "germination_days" field.
func (_u *CropUpdateOne) AddGerminationDays(v int) *CropUpdateOne {
	_u.mutation.AddGerminationDays(v)
	return _u
}

// ClearGerminationDays clears the value of the "germination_days" field.
func (_u *CropUpdateOne) ClearGerminationDays() *CropUpdateOne {
	_u.mutation.ClearGerminationDays()
	return _u
}

// SetVegetativeDays sets the "vegetative_days" field.
func (_u *CropUpdateOne) SetVegetativeDays(v int) *CropUpdateOne {
	_u.mutation.ResetVegetativeDays()
	_u.mutation.SetVegetativeDays(v)
	return _u
}

// SetNillableVegetativeDays sets the "vegetative_days" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableVegetativeDays(v *int) *CropUpdateOne {
	if v != nil {
		_u.SetVegetativeDays(*v)
	}
	return _u
}

// AddVegetativeDays adds value to the "vegetative_days" field.
func (_u *CropUpdateOne) AddVegetativeDays(v int) *CropUpdateOne {
	_u.mutation.AddVegetativeDays(v)
	return _u
}

// ClearVegetativeDays clears the value of the "vegetative_days" field.
func (_u *CropUpdateOne) ClearVegetativeDays() *CropUpdateOne {
	_u.mutation.ClearVegetativeDays()
	return _u
}

// SetFloweringDays sets the "flowering_days" field.
func (_u *CropUpdateOne) SetFloweringDays(v int) *CropUpdateOne {
	_u.mutation.ResetFloweringDays()
	_u.mutation.SetFloweringDays(v)
	return _u
}

// SetNillableFloweringDays sets the "flowering_days" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableFloweringDays(v *int) *CropUpdateOne {
	if v != nil {
		_u.SetFloweringDays(*v)
	}
	return _u
}

// AddFloweringDays adds value to the "flowering_days" field.
func (_u *CropUpdateOne) AddFloweringDays(v int) *CropUpdateOne {
	_u.mutation.AddFloweringDays(v)
	return _u
}

// ClearFloweringDays clears the value of the "flowering_days" field.
func (_u *CropUpdateOne) ClearFloweringDays() *CropUpdateOne {
	_u.mutation.ClearFloweringDays()
	return _u
}

// SetTotalCycleDays sets the "total_cycle_days" field.
func (_u *CropUpdateOne) SetTotalCycleDays(v int) *CropUpdateOne {
	_u.mutation.ResetTotalCycleDays()
	_u.mutation.SetTotalCycleDays(v)
	return _u
}

// SetNillableTotalCycleDays sets the "total_cycle_days" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableTotalCycleDays(v *int) *CropUpdateOne {
	if v != nil {
		_u.SetTotalCycleDays(*v)
	}
	return _u
}

// AddTotalCycleDays adds value to the "total_cycle_days" field.
func (_u *CropUpdateOne) AddTotalCycleDays(v int) *CropUpdateOne {
	_u.mutation.AddTotalCycleDays(v)
	return _u
}

// ClearTotalCycleDays clears the value of the "total_cycle_days" field.
func (_u *CropUpdateOne) ClearTotalCycleDays() *CropUpdateOne {
	_u.mutation.ClearTotalCycleDays()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *CropUpdateOne) SetCreatedAt(v time.Time) *CropUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *CropUpdateOne) SetNillableCreatedAt(v *time.Time) *CropUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CropUpdateOne) SetUpdatedAt(v time.Time) *CropUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddPriceRecordIDs adds the "price_records" edge to the PriceRecord entity by IDs.
func (_u *CropUpdateOne) AddPriceRecordIDs(ids ...uuid.UUID) *CropUpdateOne {
	_u.mutation.AddPriceRecordIDs(ids...)
	return _u
}

// AddPriceRecords adds the "price_records" edges to the PriceRecord entity.
func (_u *CropUpdateOne) AddPriceRecords(v ...*PriceRecord) *CropUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPriceRecordIDs(ids...)
}

// Mutation returns the CropMutation object of the builder.
func (_u *CropUpdateOne) Mutation() *CropMutation {
	return _u.mutation
}

// ClearPriceRecords clears all "price_records" edges to the PriceRecord entity.
func (_u *CropUpdateOne) ClearPriceRecords() *CropUpdateOne {
	_u.mutation.ClearPriceRecords()
	return _u
}

// RemovePriceRecordIDs removes the "price_records" edge to PriceRecord entities by IDs.
func (_u *CropUpdateOne) RemovePriceRecordIDs(ids ...uuid.UUID) *CropUpdateOne {
	_u.mutation.RemovePriceRecordIDs(ids...)
	return _u
}

// RemovePriceRecords removes "price_records" edges to PriceRecord entities.
func (_u *CropUpdateOne) RemovePriceRecords(v ...*PriceRecord) *CropUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePriceRecordIDs(ids...)
}

// Where appends a list predicates to the CropUpdate builder.
func (_u *CropUpdateOne) Where(ps ...predicate.Crop) *CropUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CropUpdateOne) Select(field string, fields ...string) *CropUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Crop entity.
func (_u *CropUpdateOne) Save(ctx context.Context) (*Crop, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CropUpdateOne) SaveX(ctx context.Context) *Crop {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CropUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CropUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CropUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := crop.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CropUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := crop.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Crop.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GerminationDays(); ok {
		if err := crop.GerminationDaysValidator(v); err != nil {
			return &ValidationError{Name: "germination_days", err: fmt.Errorf(`ent: validator failed for field "Crop.germination_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VegetativeDays(); ok {
		if err := crop.VegetativeDaysValidator(v); err != nil {
			return &ValidationError{Name: "vegetative_days", err: fmt.Errorf(`ent: validator failed for field "Crop.vegetative_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FloweringDays(); ok {
		if err := crop.FloweringDaysValidator(v); err != nil {
			return &ValidationError{Name: "flowering_days", err: fmt.Errorf(`ent: validator failed for field "Crop.flowering_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalCycleDays(); ok {
		if err := crop.TotalCycleDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_cycle_days", err: fmt.Errorf(`ent: validator failed for field "Crop.total_cycle_days": %w`, err)}
		}
	}
	return nil
}

func (_u *CropUpdateOne) sqlSave(ctx context.Context) (_node *Crop, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(crop.Table, crop.Columns, sqlgraph.NewFieldSpec(crop.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Crop.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, crop.FieldID)
		for _, f := range fields {
			if !crop.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != crop.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(crop.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Variety(); ok {
		_spec.SetField(crop.FieldVariety, field.TypeString, value)
	}
	if _u.mutation.VarietyCleared() {
		_spec.ClearField(crop.FieldVariety, field.TypeString)
	}
	if value, ok := _u.mutation.GerminationDays(); ok {
		_spec.SetField(crop.FieldGerminationDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGerminationDays(); ok {
		_spec.AddField(crop.FieldGerminationDays, field.TypeInt, value)
	}
	if _u.mutation.GerminationDaysCleared() {
		_spec.ClearField(crop.FieldGerminationDays, field.TypeInt)
	}
	if value, ok := _u.mutation.VegetativeDays(); ok {
		_spec.SetField(crop.FieldVegetativeDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedVegetativeDays(); ok {
		_spec.AddField(crop.FieldVegetativeDays, field.TypeInt, value)
	}
	if _u.mutation.VegetativeDaysCleared() {
		_spec.ClearField(crop.FieldVegetativeDays, field.TypeInt)
	}
	if value, ok := _u.mutation.FloweringDays(); ok {
		_spec.SetField(crop.FieldFloweringDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFloweringDays(); ok {
		_spec.AddField(crop.FieldFloweringDays, field.TypeInt, value)
	}
	if _u.mutation.FloweringDaysCleared() {
		_spec.ClearField(crop.FieldFloweringDays, field.TypeInt)
	}
	if value, ok := _u.mutation.TotalCycleDays(); ok {
		_spec.SetField(crop.FieldTotalCycleDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalCycleDays(); ok {
		_spec.AddField(crop.FieldTotalCycleDays, field.TypeInt, value)
	}
	if _u.mutation.TotalCycleDaysCleared() {
		_spec.ClearField(crop.FieldTotalCycleDays, field.TypeInt)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(crop.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(crop.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PriceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPriceRecordsIDs(); len(nodes) > 0 && !_u.mutation.PriceRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PriceRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Crop{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{crop.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
