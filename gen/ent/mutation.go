// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/agrobase-io/agrobase/gen/ent/archivedcycle"
	"github.com/agrobase-io/agrobase/gen/ent/block"
	"github.com/agrobase-io/agrobase/gen/ent/crop"
	"github.com/agrobase-io/agrobase/gen/ent/farm"
	"github.com/agrobase-io/agrobase/gen/ent/harvest"
	"github.com/agrobase-io/agrobase/gen/ent/physicalblock"
	"github.com/agrobase-io/agrobase/gen/ent/predicate"
	"github.com/agrobase-io/agrobase/gen/ent/pricerecord"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArchivedCycle = "ArchivedCycle"
	TypeBlock         = "Block"
	TypeCrop          = "Crop"
	TypeFarm          = "Farm"
	TypeHarvest       = "Harvest"
	TypePhysicalBlock = "PhysicalBlock"
	TypePriceRecord   = "PriceRecord"
)

// ArchivedCycleMutation represents an operation that mutates the ArchivedCycle nodes in the graph.
type ArchivedCycleMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	farm_id       *uuid.UUID
	legacy_code   *string
	crop_name     *string
	planting_date *time.Time
	cleared_date  *time.Time
	yield_kg      *float64
	addyield_kg   *float64
	created_at    *time.Time
	clearedFields map[string]struct{}
	block         *uuid.UUID
	clearedblock  bool
	done          bool
	oldValue      func(context.Context) (*ArchivedCycle, error)
	predicates    []predicate.ArchivedCycle
}

var _ ent.Mutation = (*ArchivedCycleMutation)(nil)

// archivedcycleOption allows management of the mutation configuration using functional options.
type archivedcycleOption func(*ArchivedCycleMutation)

// newArchivedCycleMutation creates new mutation for the ArchivedCycle entity.
func newArchivedCycleMutation(c config, op Op, opts ...archivedcycleOption) *ArchivedCycleMutation {
	m := &ArchivedCycleMutation{
		config:        c,
		op:            op,
		typ:           TypeArchivedCycle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArchivedCycleID sets the ID field of the mutation.
func withArchivedCycleID(id uuid.UUID) archivedcycleOption {
	return func(m *ArchivedCycleMutation) {
		var (
			err   error
			once  sync.Once
			value *ArchivedCycle
		)
		m.oldValue = func(ctx context.Context) (*ArchivedCycle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArchivedCycle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArchivedCycle sets the old ArchivedCycle of the mutation.
func withArchivedCycle(node *ArchivedCycle) archivedcycleOption {
	return func(m *ArchivedCycleMutation) {
		m.oldValue = func(context.Context) (*ArchivedCycle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArchivedCycleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArchivedCycleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ArchivedCycle entities.
func (m *ArchivedCycleMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArchivedCycleMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArchivedCycleMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArchivedCycle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlockID sets the "block_id" field.
func (m *ArchivedCycleMutation) SetBlockID(u uuid.UUID) {
	m.block = &u
}

// BlockID returns the value of the "block_id" field in the mutation.
func (m *ArchivedCycleMutation) BlockID() (r uuid.UUID, exists bool) {
	v := m.block
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockID returns the old "block_id" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldBlockID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockID: %w", err)
	}
	return oldValue.BlockID, nil
}

// ResetBlockID resets all changes to the "block_id" field.
func (m *ArchivedCycleMutation) ResetBlockID() {
	m.block = nil
}

// SetFarmID sets the "farm_id" field.
func (m *ArchivedCycleMutation) SetFarmID(u uuid.UUID) {
	m.farm_id = &u
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *ArchivedCycleMutation) FarmID() (r uuid.UUID, exists bool) {
	v := m.farm_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldFarmID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *ArchivedCycleMutation) ResetFarmID() {
	m.farm_id = nil
}

// SetLegacyCode sets the "legacy_code" field.
func (m *ArchivedCycleMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *ArchivedCycleMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *ArchivedCycleMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetCropName sets the "crop_name" field.
func (m *ArchivedCycleMutation) SetCropName(s string) {
	m.crop_name = &s
}

// CropName returns the value of the "crop_name" field in the mutation.
func (m *ArchivedCycleMutation) CropName() (r string, exists bool) {
	v := m.crop_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCropName returns the old "crop_name" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldCropName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropName: %w", err)
	}
	return oldValue.CropName, nil
}

// ClearCropName clears the value of the "crop_name" field.
func (m *ArchivedCycleMutation) ClearCropName() {
	m.crop_name = nil
	m.clearedFields[archivedcycle.FieldCropName] = struct{}{}
}

// CropNameCleared returns if the "crop_name" field was cleared in this mutation.
func (m *ArchivedCycleMutation) CropNameCleared() bool {
	_, ok := m.clearedFields[archivedcycle.FieldCropName]
	return ok
}

// ResetCropName resets all changes to the "crop_name" field.
func (m *ArchivedCycleMutation) ResetCropName() {
	m.crop_name = nil
	delete(m.clearedFields, archivedcycle.FieldCropName)
}

// SetPlantingDate sets the "planting_date" field.
func (m *ArchivedCycleMutation) SetPlantingDate(t time.Time) {
	m.planting_date = &t
}

// PlantingDate returns the value of the "planting_date" field in the mutation.
func (m *ArchivedCycleMutation) PlantingDate() (r time.Time, exists bool) {
	v := m.planting_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlantingDate returns the old "planting_date" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldPlantingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlantingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlantingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlantingDate: %w", err)
	}
	return oldValue.PlantingDate, nil
}

// ResetPlantingDate resets all changes to the "planting_date" field.
func (m *ArchivedCycleMutation) ResetPlantingDate() {
	m.planting_date = nil
}

// SetClearedDate sets the "cleared_date" field.
func (m *ArchivedCycleMutation) SetClearedDate(t time.Time) {
	m.cleared_date = &t
}

// ClearedDate returns the value of the "cleared_date" field in the mutation.
func (m *ArchivedCycleMutation) ClearedDate() (r time.Time, exists bool) {
	v := m.cleared_date
	if v == nil {
		return
	}
	return *v, true
}

// OldClearedDate returns the old "cleared_date" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldClearedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClearedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClearedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClearedDate: %w", err)
	}
	return oldValue.ClearedDate, nil
}

// ClearClearedDate clears the value of the "cleared_date" field.
func (m *ArchivedCycleMutation) ClearClearedDate() {
	m.cleared_date = nil
	m.clearedFields[archivedcycle.FieldClearedDate] = struct{}{}
}

// ClearedDateCleared returns if the "cleared_date" field was cleared in this mutation.
func (m *ArchivedCycleMutation) ClearedDateCleared() bool {
	_, ok := m.clearedFields[archivedcycle.FieldClearedDate]
	return ok
}

// ResetClearedDate resets all changes to the "cleared_date" field.
func (m *ArchivedCycleMutation) ResetClearedDate() {
	m.cleared_date = nil
	delete(m.clearedFields, archivedcycle.FieldClearedDate)
}

// SetYieldKg sets the "yield_kg" field.
func (m *ArchivedCycleMutation) SetYieldKg(f float64) {
	m.yield_kg = &f
	m.addyield_kg = nil
}

// YieldKg returns the value of the "yield_kg" field in the mutation.
func (m *ArchivedCycleMutation) YieldKg() (r float64, exists bool) {
	v := m.yield_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldYieldKg returns the old "yield_kg" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldYieldKg(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYieldKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYieldKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYieldKg: %w", err)
	}
	return oldValue.YieldKg, nil
}

// AddYieldKg adds f to the "yield_kg" field.
func (m *ArchivedCycleMutation) AddYieldKg(f float64) {
	if m.addyield_kg != nil {
		*m.addyield_kg += f
	} else {
		m.addyield_kg = &f
	}
}

// AddedYieldKg returns the value that was added to the "yield_kg" field in this mutation.
func (m *ArchivedCycleMutation) AddedYieldKg() (r float64, exists bool) {
	v := m.addyield_kg
	if v == nil {
		return
	}
	return *v, true
}

// ClearYieldKg clears the value of the "yield_kg" field.
func (m *ArchivedCycleMutation) ClearYieldKg() {
	m.yield_kg = nil
	m.addyield_kg = nil
	m.clearedFields[archivedcycle.FieldYieldKg] = struct{}{}
}

// YieldKgCleared returns if the "yield_kg" field was cleared in this mutation.
func (m *ArchivedCycleMutation) YieldKgCleared() bool {
	_, ok := m.clearedFields[archivedcycle.FieldYieldKg]
	return ok
}

// ResetYieldKg resets all changes to the "yield_kg" field.
func (m *ArchivedCycleMutation) ResetYieldKg() {
	m.yield_kg = nil
	m.addyield_kg = nil
	delete(m.clearedFields, archivedcycle.FieldYieldKg)
}

// SetCreatedAt sets the "created_at" field.
func (m *ArchivedCycleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArchivedCycleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArchivedCycle entity.
// If the ArchivedCycle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArchivedCycleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArchivedCycleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBlock clears the "block" edge to the Block entity.
func (m *ArchivedCycleMutation) ClearBlock() {
	m.clearedblock = true
	m.clearedFields[archivedcycle.FieldBlockID] = struct{}{}
}

// BlockCleared reports if the "block" edge to the Block entity was cleared.
func (m *ArchivedCycleMutation) BlockCleared() bool {
	return m.clearedblock
}

// BlockIDs returns the "block" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlockID instead. It exists only for internal usage by the builders.
func (m *ArchivedCycleMutation) BlockIDs() (ids []uuid.UUID) {
	if id := m.block; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlock resets all changes to the "block" edge.
func (m *ArchivedCycleMutation) ResetBlock() {
	m.block = nil
	m.clearedblock = false
}

// Where appends a list predicates to the ArchivedCycleMutation builder.
func (m *ArchivedCycleMutation) Where(ps ...predicate.ArchivedCycle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArchivedCycleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArchivedCycleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArchivedCycle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArchivedCycleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArchivedCycleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArchivedCycle).
func (m *ArchivedCycleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArchivedCycleMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.block != nil {
		fields = append(fields, archivedcycle.FieldBlockID)
	}
	if m.farm_id != nil {
		fields = append(fields, archivedcycle.FieldFarmID)
	}
	if m.legacy_code != nil {
		fields = append(fields, archivedcycle.FieldLegacyCode)
	}
	if m.crop_name != nil {
		fields = append(fields, archivedcycle.FieldCropName)
	}
	if m.planting_date != nil {
		fields = append(fields, archivedcycle.FieldPlantingDate)
	}
	if m.cleared_date != nil {
		fields = append(fields, archivedcycle.FieldClearedDate)
	}
	if m.yield_kg != nil {
		fields = append(fields, archivedcycle.FieldYieldKg)
	}
	if m.created_at != nil {
		fields = append(fields, archivedcycle.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArchivedCycleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case archivedcycle.FieldBlockID:
		return m.BlockID()
	case archivedcycle.FieldFarmID:
		return m.FarmID()
	case archivedcycle.FieldLegacyCode:
		return m.LegacyCode()
	case archivedcycle.FieldCropName:
		return m.CropName()
	case archivedcycle.FieldPlantingDate:
		return m.PlantingDate()
	case archivedcycle.FieldClearedDate:
		return m.ClearedDate()
	case archivedcycle.FieldYieldKg:
		return m.YieldKg()
	case archivedcycle.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArchivedCycleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case archivedcycle.FieldBlockID:
		return m.OldBlockID(ctx)
	case archivedcycle.FieldFarmID:
		return m.OldFarmID(ctx)
	case archivedcycle.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case archivedcycle.FieldCropName:
		return m.OldCropName(ctx)
	case archivedcycle.FieldPlantingDate:
		return m.OldPlantingDate(ctx)
	case archivedcycle.FieldClearedDate:
		return m.OldClearedDate(ctx)
	case archivedcycle.FieldYieldKg:
		return m.OldYieldKg(ctx)
	case archivedcycle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArchivedCycle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedCycleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case archivedcycle.FieldBlockID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockID(v)
		return nil
	case archivedcycle.FieldFarmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case archivedcycle.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case archivedcycle.FieldCropName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropName(v)
		return nil
	case archivedcycle.FieldPlantingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlantingDate(v)
		return nil
	case archivedcycle.FieldClearedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClearedDate(v)
		return nil
	case archivedcycle.FieldYieldKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYieldKg(v)
		return nil
	case archivedcycle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArchivedCycleMutation) AddedFields() []string {
	var fields []string
	if m.addyield_kg != nil {
		fields = append(fields, archivedcycle.FieldYieldKg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArchivedCycleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case archivedcycle.FieldYieldKg:
		return m.AddedYieldKg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArchivedCycleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case archivedcycle.FieldYieldKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYieldKg(v)
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArchivedCycleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(archivedcycle.FieldCropName) {
		fields = append(fields, archivedcycle.FieldCropName)
	}
	if m.FieldCleared(archivedcycle.FieldClearedDate) {
		fields = append(fields, archivedcycle.FieldClearedDate)
	}
	if m.FieldCleared(archivedcycle.FieldYieldKg) {
		fields = append(fields, archivedcycle.FieldYieldKg)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArchivedCycleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArchivedCycleMutation) ClearField(name string) error {
	switch name {
	case archivedcycle.FieldCropName:
		m.ClearCropName()
		return nil
	case archivedcycle.FieldClearedDate:
		m.ClearClearedDate()
		return nil
	case archivedcycle.FieldYieldKg:
		m.ClearYieldKg()
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArchivedCycleMutation) ResetField(name string) error {
	switch name {
	case archivedcycle.FieldBlockID:
		m.ResetBlockID()
		return nil
	case archivedcycle.FieldFarmID:
		m.ResetFarmID()
		return nil
	case archivedcycle.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case archivedcycle.FieldCropName:
		m.ResetCropName()
		return nil
	case archivedcycle.FieldPlantingDate:
		m.ResetPlantingDate()
		return nil
	case archivedcycle.FieldClearedDate:
		m.ResetClearedDate()
		return nil
	case archivedcycle.FieldYieldKg:
		m.ResetYieldKg()
		return nil
	case archivedcycle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArchivedCycleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.block != nil {
		edges = append(edges, archivedcycle.EdgeBlock)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArchivedCycleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case archivedcycle.EdgeBlock:
		if id := m.block; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArchivedCycleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArchivedCycleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArchivedCycleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblock {
		edges = append(edges, archivedcycle.EdgeBlock)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArchivedCycleMutation) EdgeCleared(name string) bool {
	switch name {
	case archivedcycle.EdgeBlock:
		return m.clearedblock
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArchivedCycleMutation) ClearEdge(name string) error {
	switch name {
	case archivedcycle.EdgeBlock:
		m.ClearBlock()
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArchivedCycleMutation) ResetEdge(name string) error {
	switch name {
	case archivedcycle.EdgeBlock:
		m.ResetBlock()
		return nil
	}
	return fmt.Errorf("unknown ArchivedCycle edge %s", name)
}

// BlockMutation represents an operation that mutates the Block nodes in the graph.
type BlockMutation struct {
	config
	op                         Op
	typ                        string
	id                         *uuid.UUID
	legacy_code                *string
	sequence_number            *int
	addsequence_number         *int
	block_type                 *string
	max_capacity               *int
	addmax_capacity            *int
	state                      *string
	crop_name                  *string
	planting_date              *time.Time
	watering_frequency_days    *int
	addwatering_frequency_days *int
	expected_status_changes    *map[string]time.Time
	created_at                 *time.Time
	updated_at                 *time.Time
	clearedFields              map[string]struct{}
	farm                       *uuid.UUID
	clearedfarm                bool
	physical_block             *uuid.UUID
	clearedphysical_block      bool
	archived_cycles            map[uuid.UUID]struct{}
	removedarchived_cycles     map[uuid.UUID]struct{}
	clearedarchived_cycles     bool
	harvests                   map[uuid.UUID]struct{}
	removedharvests            map[uuid.UUID]struct{}
	clearedharvests            bool
	done                       bool
	oldValue                   func(context.Context) (*Block, error)
	predicates                 []predicate.Block
}

var _ ent.Mutation = (*BlockMutation)(nil)

// blockOption allows management of the mutation configuration using functional options.
type blockOption func(*BlockMutation)

// newBlockMutation creates new mutation for the Block entity.
func newBlockMutation(c config, op Op, opts ...blockOption) *BlockMutation {
	m := &BlockMutation{
		config:        c,
		op:            op,
		typ:           TypeBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBlockID sets the ID field of the mutation.
func withBlockID(id uuid.UUID) blockOption {
	return func(m *BlockMutation) {
		var (
			err   error
			once  sync.Once
			value *Block
		)
		m.oldValue = func(ctx context.Context) (*Block, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Block.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBlock sets the old Block of the mutation.
func withBlock(node *Block) blockOption {
	return func(m *BlockMutation) {
		m.oldValue = func(context.Context) (*Block, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Block entities.
func (m *BlockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BlockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BlockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Block.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmID sets the "farm_id" field.
func (m *BlockMutation) SetFarmID(u uuid.UUID) {
	m.farm = &u
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *BlockMutation) FarmID() (r uuid.UUID, exists bool) {
	v := m.farm
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldFarmID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *BlockMutation) ResetFarmID() {
	m.farm = nil
}

// SetPhysicalBlockID sets the "physical_block_id" field.
func (m *BlockMutation) SetPhysicalBlockID(u uuid.UUID) {
	m.physical_block = &u
}

// PhysicalBlockID returns the value of the "physical_block_id" field in the mutation.
func (m *BlockMutation) PhysicalBlockID() (r uuid.UUID, exists bool) {
	v := m.physical_block
	if v == nil {
		return
	}
	return *v, true
}

// OldPhysicalBlockID returns the old "physical_block_id" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldPhysicalBlockID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhysicalBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhysicalBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhysicalBlockID: %w", err)
	}
	return oldValue.PhysicalBlockID, nil
}

// ClearPhysicalBlockID clears the value of the "physical_block_id" field.
func (m *BlockMutation) ClearPhysicalBlockID() {
	m.physical_block = nil
	m.clearedFields[block.FieldPhysicalBlockID] = struct{}{}
}

// PhysicalBlockIDCleared returns if the "physical_block_id" field was cleared in this mutation.
func (m *BlockMutation) PhysicalBlockIDCleared() bool {
	_, ok := m.clearedFields[block.FieldPhysicalBlockID]
	return ok
}

// ResetPhysicalBlockID resets all changes to the "physical_block_id" field.
func (m *BlockMutation) ResetPhysicalBlockID() {
	m.physical_block = nil
	delete(m.clearedFields, block.FieldPhysicalBlockID)
}

// SetLegacyCode sets the "legacy_code" field.
func (m *BlockMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *BlockMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *BlockMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetSequenceNumber sets the "sequence_number" field.
func (m *BlockMutation) SetSequenceNumber(i int) {
	m.sequence_number = &i
	m.addsequence_number = nil
}

// SequenceNumber returns the value of the "sequence_number" field in the mutation.
func (m *BlockMutation) SequenceNumber() (r int, exists bool) {
	v := m.sequence_number
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNumber returns the old "sequence_number" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldSequenceNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNumber: %w", err)
	}
	return oldValue.SequenceNumber, nil
}

// AddSequenceNumber adds i to the "sequence_number" field.
func (m *BlockMutation) AddSequenceNumber(i int) {
	if m.addsequence_number != nil {
		*m.addsequence_number += i
	} else {
		m.addsequence_number = &i
	}
}

// AddedSequenceNumber returns the value that was added to the "sequence_number" field in this mutation.
func (m *BlockMutation) AddedSequenceNumber() (r int, exists bool) {
	v := m.addsequence_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNumber resets all changes to the "sequence_number" field.
func (m *BlockMutation) ResetSequenceNumber() {
	m.sequence_number = nil
	m.addsequence_number = nil
}

// SetBlockType sets the "block_type" field.
func (m *BlockMutation) SetBlockType(s string) {
	m.block_type = &s
}

// BlockType returns the value of the "block_type" field in the mutation.
func (m *BlockMutation) BlockType() (r string, exists bool) {
	v := m.block_type
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockType returns the old "block_type" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldBlockType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockType: %w", err)
	}
	return oldValue.BlockType, nil
}

// ResetBlockType resets all changes to the "block_type" field.
func (m *BlockMutation) ResetBlockType() {
	m.block_type = nil
}

// SetMaxCapacity sets the "max_capacity" field.
func (m *BlockMutation) SetMaxCapacity(i int) {
	m.max_capacity = &i
	m.addmax_capacity = nil
}

// MaxCapacity returns the value of the "max_capacity" field in the mutation.
func (m *BlockMutation) MaxCapacity() (r int, exists bool) {
	v := m.max_capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxCapacity returns the old "max_capacity" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldMaxCapacity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxCapacity: %w", err)
	}
	return oldValue.MaxCapacity, nil
}

// AddMaxCapacity adds i to the "max_capacity" field.
func (m *BlockMutation) AddMaxCapacity(i int) {
	if m.addmax_capacity != nil {
		*m.addmax_capacity += i
	} else {
		m.addmax_capacity = &i
	}
}

// AddedMaxCapacity returns the value that was added to the "max_capacity" field in this mutation.
func (m *BlockMutation) AddedMaxCapacity() (r int, exists bool) {
	v := m.addmax_capacity
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxCapacity resets all changes to the "max_capacity" field.
func (m *BlockMutation) ResetMaxCapacity() {
	m.max_capacity = nil
	m.addmax_capacity = nil
}

// SetState sets the "state" field.
func (m *BlockMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *BlockMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *BlockMutation) ResetState() {
	m.state = nil
}

// SetCropName sets the "crop_name" field.
func (m *BlockMutation) SetCropName(s string) {
	m.crop_name = &s
}

// CropName returns the value of the "crop_name" field in the mutation.
func (m *BlockMutation) CropName() (r string, exists bool) {
	v := m.crop_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCropName returns the old "crop_name" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldCropName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropName: %w", err)
	}
	return oldValue.CropName, nil
}

// ClearCropName clears the value of the "crop_name" field.
func (m *BlockMutation) ClearCropName() {
	m.crop_name = nil
	m.clearedFields[block.FieldCropName] = struct{}{}
}

// CropNameCleared returns if the "crop_name" field was cleared in this mutation.
func (m *BlockMutation) CropNameCleared() bool {
	_, ok := m.clearedFields[block.FieldCropName]
	return ok
}

// ResetCropName resets all changes to the "crop_name" field.
func (m *BlockMutation) ResetCropName() {
	m.crop_name = nil
	delete(m.clearedFields, block.FieldCropName)
}

// SetPlantingDate sets the "planting_date" field.
func (m *BlockMutation) SetPlantingDate(t time.Time) {
	m.planting_date = &t
}

// PlantingDate returns the value of the "planting_date" field in the mutation.
func (m *BlockMutation) PlantingDate() (r time.Time, exists bool) {
	v := m.planting_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPlantingDate returns the old "planting_date" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldPlantingDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlantingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlantingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlantingDate: %w", err)
	}
	return oldValue.PlantingDate, nil
}

// ClearPlantingDate clears the value of the "planting_date" field.
func (m *BlockMutation) ClearPlantingDate() {
	m.planting_date = nil
	m.clearedFields[block.FieldPlantingDate] = struct{}{}
}

// PlantingDateCleared returns if the "planting_date" field was cleared in this mutation.
func (m *BlockMutation) PlantingDateCleared() bool {
	_, ok := m.clearedFields[block.FieldPlantingDate]
	return ok
}

// ResetPlantingDate resets all changes to the "planting_date" field.
func (m *BlockMutation) ResetPlantingDate() {
	m.planting_date = nil
	delete(m.clearedFields, block.FieldPlantingDate)
}

// SetWateringFrequencyDays sets the "watering_frequency_days" field.
func (m *BlockMutation) SetWateringFrequencyDays(i int) {
	m.watering_frequency_days = &i
	m.addwatering_frequency_days = nil
}

// WateringFrequencyDays returns the value of the "watering_frequency_days" field in the mutation.
func (m *BlockMutation) WateringFrequencyDays() (r int, exists bool) {
	v := m.watering_frequency_days
	if v == nil {
		return
	}
	return *v, true
}

// OldWateringFrequencyDays returns the old "watering_frequency_days" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldWateringFrequencyDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWateringFrequencyDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWateringFrequencyDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWateringFrequencyDays: %w", err)
	}
	return oldValue.WateringFrequencyDays, nil
}

// AddWateringFrequencyDays adds i to the "watering_frequency_days" field.
func (m *BlockMutation) AddWateringFrequencyDays(i int) {
	if m.addwatering_frequency_days != nil {
		*m.addwatering_frequency_days += i
	} else {
		m.addwatering_frequency_days = &i
	}
}

// AddedWateringFrequencyDays returns the value that was added to the "watering_frequency_days" field in this mutation.
func (m *BlockMutation) AddedWateringFrequencyDays() (r int, exists bool) {
	v := m.addwatering_frequency_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetWateringFrequencyDays resets all changes to the "watering_frequency_days" field.
func (m *BlockMutation) ResetWateringFrequencyDays() {
	m.watering_frequency_days = nil
	m.addwatering_frequency_days = nil
}

// SetExpectedStatusChanges sets the "expected_status_changes" field.
func (m *BlockMutation) SetExpectedStatusChanges(value map[string]time.Time) {
	m.expected_status_changes = &value
}

// ExpectedStatusChanges returns the value of the "expected_status_changes" field in the mutation.
func (m *BlockMutation) ExpectedStatusChanges() (r map[string]time.Time, exists bool) {
	v := m.expected_status_changes
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedStatusChanges returns the old "expected_status_changes" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldExpectedStatusChanges(ctx context.Context) (v map[string]time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedStatusChanges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedStatusChanges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedStatusChanges: %w", err)
	}
	return oldValue.ExpectedStatusChanges, nil
}

// ClearExpectedStatusChanges clears the value of the "expected_status_changes" field.
func (m *BlockMutation) ClearExpectedStatusChanges() {
	m.expected_status_changes = nil
	m.clearedFields[block.FieldExpectedStatusChanges] = struct{}{}
}

// ExpectedStatusChangesCleared returns if the "expected_status_changes" field was cleared in this mutation.
func (m *BlockMutation) ExpectedStatusChangesCleared() bool {
	_, ok := m.clearedFields[block.FieldExpectedStatusChanges]
	return ok
}

// ResetExpectedStatusChanges resets all changes to the "expected_status_changes" field.
func (m *BlockMutation) ResetExpectedStatusChanges() {
	m.expected_status_changes = nil
	delete(m.clearedFields, block.FieldExpectedStatusChanges)
}

// SetCreatedAt sets the "created_at" field.
func (m *BlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Block entity.
// If the Block object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (m *BlockMutation) ClearFarm() {
	m.clearedfarm = true
	m.clearedFields[block.FieldFarmID] = struct{}{}
}

// FarmCleared reports if the "farm" edge to the Farm entity was cleared.
func (m *BlockMutation) FarmCleared() bool {
	return m.clearedfarm
}

// FarmIDs returns the "farm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FarmID instead. It exists only for internal usage by the builders.
func (m *BlockMutation) FarmIDs() (ids []uuid.UUID) {
	if id := m.farm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFarm resets all changes to the "farm" edge.
func (m *BlockMutation) ResetFarm() {
	m.farm = nil
	m.clearedfarm = false
}

// ClearPhysicalBlock clears the "physical_block" edge to the PhysicalBlock entity.
func (m *BlockMutation) ClearPhysicalBlock() {
	m.clearedphysical_block = true
	m.clearedFields[block.FieldPhysicalBlockID] = struct{}{}
}

// PhysicalBlockCleared reports if the "physical_block" edge to the PhysicalBlock entity was cleared.
func (m *BlockMutation) PhysicalBlockCleared() bool {
	return m.PhysicalBlockIDCleared() || m.clearedphysical_block
}

// PhysicalBlockIDs returns the "physical_block" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PhysicalBlockID instead. It exists only for internal usage by the builders.
func (m *BlockMutation) PhysicalBlockIDs() (ids []uuid.UUID) {
	if id := m.physical_block; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPhysicalBlock resets all changes to the "physical_block" edge.
func (m *BlockMutation) ResetPhysicalBlock() {
	m.physical_block = nil
	m.clearedphysical_block = false
}

// AddArchivedCycleIDs adds the "archived_cycles" edge to the ArchivedCycle entity by ids.
func (m *BlockMutation) AddArchivedCycleIDs(ids ...uuid.UUID) {
	if m.archived_cycles == nil {
		m.archived_cycles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.archived_cycles[ids[i]] = struct{}{}
	}
}

// ClearArchivedCycles clears the "archived_cycles" edge to the ArchivedCycle entity.
func (m *BlockMutation) ClearArchivedCycles() {
	m.clearedarchived_cycles = true
}

// ArchivedCyclesCleared reports if the "archived_cycles" edge to the ArchivedCycle entity was cleared.
func (m *BlockMutation) ArchivedCyclesCleared() bool {
	return m.clearedarchived_cycles
}

// RemoveArchivedCycleIDs removes the "archived_cycles" edge to the ArchivedCycle entity by IDs.
func (m *BlockMutation) RemoveArchivedCycleIDs(ids ...uuid.UUID) {
	if m.removedarchived_cycles == nil {
		m.removedarchived_cycles = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.archived_cycles, ids[i])
		m.removedarchived_cycles[ids[i]] = struct{}{}
	}
}

// RemovedArchivedCycles returns the removed IDs of the "archived_cycles" edge to the ArchivedCycle entity.
func (m *BlockMutation) RemovedArchivedCyclesIDs() (ids []uuid.UUID) {
	for id := range m.removedarchived_cycles {
		ids = append(ids, id)
	}
	return
}

// ArchivedCyclesIDs returns the "archived_cycles" edge IDs in the mutation.
func (m *BlockMutation) ArchivedCyclesIDs() (ids []uuid.UUID) {
	for id := range m.archived_cycles {
		ids = append(ids, id)
	}
	return
}

// ResetArchivedCycles resets all changes to the "archived_cycles" edge.
func (m *BlockMutation) ResetArchivedCycles() {
	m.archived_cycles = nil
	m.clearedarchived_cycles = false
	m.removedarchived_cycles = nil
}

// AddHarvestIDs adds the "harvests" edge to the Harvest entity by ids.
func (m *BlockMutation) AddHarvestIDs(ids ...uuid.UUID) {
	if m.harvests == nil {
		m.harvests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.harvests[ids[i]] = struct{}{}
	}
}

// ClearHarvests clears the "harvests" edge to the Harvest entity.
func (m *BlockMutation) ClearHarvests() {
	m.clearedharvests = true
}

// HarvestsCleared reports if the "harvests" edge to the Harvest entity was cleared.
func (m *BlockMutation) HarvestsCleared() bool {
	return m.clearedharvests
}

// RemoveHarvestIDs removes the "harvests" edge to the Harvest entity by IDs.
func (m *BlockMutation) RemoveHarvestIDs(ids ...uuid.UUID) {
	if m.removedharvests == nil {
		m.removedharvests = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.harvests, ids[i])
		m.removedharvests[ids[i]] = struct{}{}
	}
}

// RemovedHarvests returns the removed IDs of the "harvests" edge to the Harvest entity.
func (m *BlockMutation) RemovedHarvestsIDs() (ids []uuid.UUID) {
	for id := range m.removedharvests {
		ids = append(ids, id)
	}
	return
}

// HarvestsIDs returns the "harvests" edge IDs in the mutation.
func (m *BlockMutation) HarvestsIDs() (ids []uuid.UUID) {
	for id := range m.harvests {
		ids = append(ids, id)
	}
	return
}

// ResetHarvests resets all changes to the "harvests" edge.
func (m *BlockMutation) ResetHarvests() {
	m.harvests = nil
	m.clearedharvests = false
	m.removedharvests = nil
}

// Where appends a list predicates to the BlockMutation builder.
func (m *BlockMutation) Where(ps ...predicate.Block) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Block, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Block).
func (m *BlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BlockMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.farm != nil {
		fields = append(fields, block.FieldFarmID)
	}
	if m.physical_block != nil {
		fields = append(fields, block.FieldPhysicalBlockID)
	}
	if m.legacy_code != nil {
		fields = append(fields, block.FieldLegacyCode)
	}
	if m.sequence_number != nil {
		fields = append(fields, block.FieldSequenceNumber)
	}
	if m.block_type != nil {
		fields = append(fields, block.FieldBlockType)
	}
	if m.max_capacity != nil {
		fields = append(fields, block.FieldMaxCapacity)
	}
	if m.state != nil {
		fields = append(fields, block.FieldState)
	}
	if m.crop_name != nil {
		fields = append(fields, block.FieldCropName)
	}
	if m.planting_date != nil {
		fields = append(fields, block.FieldPlantingDate)
	}
	if m.watering_frequency_days != nil {
		fields = append(fields, block.FieldWateringFrequencyDays)
	}
	if m.expected_status_changes != nil {
		fields = append(fields, block.FieldExpectedStatusChanges)
	}
	if m.created_at != nil {
		fields = append(fields, block.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, block.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case block.FieldFarmID:
		return m.FarmID()
	case block.FieldPhysicalBlockID:
		return m.PhysicalBlockID()
	case block.FieldLegacyCode:
		return m.LegacyCode()
	case block.FieldSequenceNumber:
		return m.SequenceNumber()
	case block.FieldBlockType:
		return m.BlockType()
	case block.FieldMaxCapacity:
		return m.MaxCapacity()
	case block.FieldState:
		return m.State()
	case block.FieldCropName:
		return m.CropName()
	case block.FieldPlantingDate:
		return m.PlantingDate()
	case block.FieldWateringFrequencyDays:
		return m.WateringFrequencyDays()
	case block.FieldExpectedStatusChanges:
		return m.ExpectedStatusChanges()
	case block.FieldCreatedAt:
		return m.CreatedAt()
	case block.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case block.FieldFarmID:
		return m.OldFarmID(ctx)
	case block.FieldPhysicalBlockID:
		return m.OldPhysicalBlockID(ctx)
	case block.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case block.FieldSequenceNumber:
		return m.OldSequenceNumber(ctx)
	case block.FieldBlockType:
		return m.OldBlockType(ctx)
	case block.FieldMaxCapacity:
		return m.OldMaxCapacity(ctx)
	case block.FieldState:
		return m.OldState(ctx)
	case block.FieldCropName:
		return m.OldCropName(ctx)
	case block.FieldPlantingDate:
		return m.OldPlantingDate(ctx)
	case block.FieldWateringFrequencyDays:
		return m.OldWateringFrequencyDays(ctx)
	case block.FieldExpectedStatusChanges:
		return m.OldExpectedStatusChanges(ctx)
	case block.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case block.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Block field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case block.FieldFarmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case block.FieldPhysicalBlockID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhysicalBlockID(v)
		return nil
	case block.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case block.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNumber(v)
		return nil
	case block.FieldBlockType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockType(v)
		return nil
	case block.FieldMaxCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxCapacity(v)
		return nil
	case block.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case block.FieldCropName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropName(v)
		return nil
	case block.FieldPlantingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlantingDate(v)
		return nil
	case block.FieldWateringFrequencyDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWateringFrequencyDays(v)
		return nil
	case block.FieldExpectedStatusChanges:
		v, ok := value.(map[string]time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedStatusChanges(v)
		return nil
	case block.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case block.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Block field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BlockMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_number != nil {
		fields = append(fields, block.FieldSequenceNumber)
	}
	if m.addmax_capacity != nil {
		fields = append(fields, block.FieldMaxCapacity)
	}
	if m.addwatering_frequency_days != nil {
		fields = append(fields, block.FieldWateringFrequencyDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case block.FieldSequenceNumber:
		return m.AddedSequenceNumber()
	case block.FieldMaxCapacity:
		return m.AddedMaxCapacity()
	case block.FieldWateringFrequencyDays:
		return m.AddedWateringFrequencyDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case block.FieldSequenceNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNumber(v)
		return nil
	case block.FieldMaxCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxCapacity(v)
		return nil
	case block.FieldWateringFrequencyDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWateringFrequencyDays(v)
		return nil
	}
	return fmt.Errorf("unknown Block numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(block.FieldPhysicalBlockID) {
		fields = append(fields, block.FieldPhysicalBlockID)
	}
	if m.FieldCleared(block.FieldCropName) {
		fields = append(fields, block.FieldCropName)
	}
	if m.FieldCleared(block.FieldPlantingDate) {
		fields = append(fields, block.FieldPlantingDate)
	}
	if m.FieldCleared(block.FieldExpectedStatusChanges) {
		fields = append(fields, block.FieldExpectedStatusChanges)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BlockMutation) ClearField(name string) error {
	switch name {
	case block.FieldPhysicalBlockID:
		m.ClearPhysicalBlockID()
		return nil
	case block.FieldCropName:
		m.ClearCropName()
		return nil
	case block.FieldPlantingDate:
		m.ClearPlantingDate()
		return nil
	case block.FieldExpectedStatusChanges:
		m.ClearExpectedStatusChanges()
		return nil
	}
	return fmt.Errorf("unknown Block nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BlockMutation) ResetField(name string) error {
	switch name {
	case block.FieldFarmID:
		m.ResetFarmID()
		return nil
	case block.FieldPhysicalBlockID:
		m.ResetPhysicalBlockID()
		return nil
	case block.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case block.FieldSequenceNumber:
		m.ResetSequenceNumber()
		return nil
	case block.FieldBlockType:
		m.ResetBlockType()
		return nil
	case block.FieldMaxCapacity:
		m.ResetMaxCapacity()
		return nil
	case block.FieldState:
		m.ResetState()
		return nil
	case block.FieldCropName:
		m.ResetCropName()
		return nil
	case block.FieldPlantingDate:
		m.ResetPlantingDate()
		return nil
	case block.FieldWateringFrequencyDays:
		m.ResetWateringFrequencyDays()
		return nil
	case block.FieldExpectedStatusChanges:
		m.ResetExpectedStatusChanges()
		return nil
	case block.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case block.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Block field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.farm != nil {
		edges = append(edges, block.EdgeFarm)
	}
	if m.physical_block != nil {
		edges = append(edges, block.EdgePhysicalBlock)
	}
	if m.archived_cycles != nil {
		edges = append(edges, block.EdgeArchivedCycles)
	}
	if m.harvests != nil {
		edges = append(edges, block.EdgeHarvests)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BlockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case block.EdgeFarm:
		if id := m.farm; id != nil {
			return []ent.Value{*id}
		}
	case block.EdgePhysicalBlock:
		if id := m.physical_block; id != nil {
			return []ent.Value{*id}
		}
	case block.EdgeArchivedCycles:
		ids := make([]ent.Value, 0, len(m.archived_cycles))
		for id := range m.archived_cycles {
			ids = append(ids, id)
		}
		return ids
	case block.EdgeHarvests:
		ids := make([]ent.Value, 0, len(m.harvests))
		for id := range m.harvests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedarchived_cycles != nil {
		edges = append(edges, block.EdgeArchivedCycles)
	}
	if m.removedharvests != nil {
		edges = append(edges, block.EdgeHarvests)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BlockMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case block.EdgeArchivedCycles:
		ids := make([]ent.Value, 0, len(m.removedarchived_cycles))
		for id := range m.removedarchived_cycles {
			ids = append(ids, id)
		}
		return ids
	case block.EdgeHarvests:
		ids := make([]ent.Value, 0, len(m.removedharvests))
		for id := range m.removedharvests {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedfarm {
		edges = append(edges, block.EdgeFarm)
	}
	if m.clearedphysical_block {
		edges = append(edges, block.EdgePhysicalBlock)
	}
	if m.clearedarchived_cycles {
		edges = append(edges, block.EdgeArchivedCycles)
	}
	if m.clearedharvests {
		edges = append(edges, block.EdgeHarvests)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BlockMutation) EdgeCleared(name string) bool {
	switch name {
	case block.EdgeFarm:
		return m.clearedfarm
	case block.EdgePhysicalBlock:
		return m.clearedphysical_block
	case block.EdgeArchivedCycles:
		return m.clearedarchived_cycles
	case block.EdgeHarvests:
		return m.clearedharvests
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BlockMutation) ClearEdge(name string) error {
	switch name {
	case block.EdgeFarm:
		m.ClearFarm()
		return nil
	case block.EdgePhysicalBlock:
		m.ClearPhysicalBlock()
		return nil
	}
	return fmt.Errorf("unknown Block unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BlockMutation) ResetEdge(name string) error {
	switch name {
	case block.EdgeFarm:
		m.ResetFarm()
		return nil
	case block.EdgePhysicalBlock:
		m.ResetPhysicalBlock()
		return nil
	case block.EdgeArchivedCycles:
		m.ResetArchivedCycles()
		return nil
	case block.EdgeHarvests:
		m.ResetHarvests()
		return nil
	}
	return fmt.Errorf("unknown Block edge %s", name)
}

// CropMutation represents an operation that mutates the Crop nodes in the graph.
type CropMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	name                 *string
	variety              *string
	germination_days     *int
	addgermination_days  *int
	vegetative_days      *int
	addvegetative_days   *int
	flowering_days       *int
	addflowering_days    *int
	total_cycle_days     *int
	addtotal_cycle_days  *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	price_records        map[uuid.UUID]struct{}
	removedprice_records map[uuid.UUID]struct{}
	clearedprice_records bool
	done                 bool
	oldValue             func(context.Context) (*Crop, error)
	predicates           []predicate.Crop
}

var _ ent.Mutation = (*CropMutation)(nil)

// cropOption allows management of the mutation configuration using functional options.
type cropOption func(*CropMutation)

// newCropMutation creates new mutation for the Crop entity.
func newCropMutation(c config, op Op, opts ...cropOption) *CropMutation {
	m := &CropMutation{
		config:        c,
		op:            op,
		typ:           TypeCrop,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCropID sets the ID field of the mutation.
func withCropID(id uuid.UUID) cropOption {
	return func(m *CropMutation) {
		var (
			err   error
			once  sync.Once
			value *Crop
		)
		m.oldValue = func(ctx context.Context) (*Crop, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Crop.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCrop sets the old Crop of the mutation.
func withCrop(node *Crop) cropOption {
	return func(m *CropMutation) {
		m.oldValue = func(context.Context) (*Crop, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CropMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CropMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Crop entities.
func (m *CropMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CropMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CropMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Crop.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CropMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CropMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CropMutation) ResetName() {
	m.name = nil
}

// SetVariety sets the "variety" field.
func (m *CropMutation) SetVariety(s string) {
	m.variety = &s
}

// Variety returns the value of the "variety" field in the mutation.
func (m *CropMutation) Variety() (r string, exists bool) {
	v := m.variety
	if v == nil {
		return
	}
	return *v, true
}

// OldVariety returns the old "variety" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldVariety(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariety is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariety requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariety: %w", err)
	}
	return oldValue.Variety, nil
}

// ClearVariety clears the value of the "variety" field.
func (m *CropMutation) ClearVariety() {
	m.variety = nil
	m.clearedFields[crop.FieldVariety] = struct{}{}
}

// VarietyCleared returns if the "variety" field was cleared in this mutation.
func (m *CropMutation) VarietyCleared() bool {
	_, ok := m.clearedFields[crop.FieldVariety]
	return ok
}

// ResetVariety resets all changes to the "variety" field.
func (m *CropMutation) ResetVariety() {
	m.variety = nil
	delete(m.clearedFields, crop.FieldVariety)
}

// SetGerminationDays sets the "germination_days" field.
func (m *CropMutation) SetGerminationDays(i int) {
	m.germination_days = &i
	m.addgermination_days = nil
}

// GerminationDays returns the value of the "germination_days" field in the mutation.
func (m *CropMutation) GerminationDays() (r int, exists bool) {
	v := m.germination_days
	if v == nil {
		return
	}
	return *v, true
}

// OldGerminationDays returns the old "germination_days" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldGerminationDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGerminationDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGerminationDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGerminationDays: %w", err)
	}
	return oldValue.GerminationDays, nil
}

// AddGerminationDays adds i to the "germination_days" field.
func (m *CropMutation) AddGerminationDays(i int) {
	if m.addgermination_days != nil {
		*m.addgermination_days += i
	} else {
		m.addgermination_days = &i
	}
}

// AddedGerminationDays returns the value that was added to the "germination_days" field in this mutation.
func (m *CropMutation) AddedGerminationDays() (r int, exists bool) {
	v := m.addgermination_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearGerminationDays clears the value of the "germination_days" field.
func (m *CropMutation) ClearGerminationDays() {
	m.germination_days = nil
	m.addgermination_days = nil
	m.clearedFields[crop.FieldGerminationDays] = struct{}{}
}

// GerminationDaysCleared returns if the "germination_days" field was cleared in this mutation.
func (m *CropMutation) GerminationDaysCleared() bool {
	_, ok := m.clearedFields[crop.FieldGerminationDays]
	return ok
}

// ResetGerminationDays resets all changes to the "germination_days" field.
func (m *CropMutation) ResetGerminationDays() {
	m.germination_days = nil
	m.addgermination_days = nil
	delete(m.clearedFields, crop.FieldGerminationDays)
}

// SetVegetativeDays sets the "vegetative_days" field.
func (m *CropMutation) SetVegetativeDays(i int) {
	m.vegetative_days = &i
	m.addvegetative_days = nil
}

// VegetativeDays returns the value of the "vegetative_days" field in the mutation.
func (m *CropMutation) VegetativeDays() (r int, exists bool) {
	v := m.vegetative_days
	if v == nil {
		return
	}
	return *v, true
}

// OldVegetativeDays returns the old "vegetative_days" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldVegetativeDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVegetativeDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVegetativeDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVegetativeDays: %w", err)
	}
	return oldValue.VegetativeDays, nil
}

// AddVegetativeDays adds i to the "vegetative_days" field.
func (m *CropMutation) AddVegetativeDays(i int) {
	if m.addvegetative_days != nil {
		*m.addvegetative_days += i
	} else {
		m.addvegetative_days = &i
	}
}

// AddedVegetativeDays returns the value that was added to the "vegetative_days" field in this mutation.
func (m *CropMutation) AddedVegetativeDays() (r int, exists bool) {
	v := m.addvegetative_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearVegetativeDays clears the value of the "vegetative_days" field.
func (m *CropMutation) ClearVegetativeDays() {
	m.vegetative_days = nil
	m.addvegetative_days = nil
	m.clearedFields[crop.FieldVegetativeDays] = struct{}{}
}

// VegetativeDaysCleared returns if the "vegetative_days" field was cleared in this mutation.
func (m *CropMutation) VegetativeDaysCleared() bool {
	_, ok := m.clearedFields[crop.FieldVegetativeDays]
	return ok
}

// ResetVegetativeDays resets all changes to the "vegetative_days" field.
func (m *CropMutation) ResetVegetativeDays() {
	m.vegetative_days = nil
	m.addvegetative_days = nil
	delete(m.clearedFields, crop.FieldVegetativeDays)
}

// SetFloweringDays sets the "flowering_days" field.
func (m *CropMutation) SetFloweringDays(i int) {
	m.flowering_days = &i
	m.addflowering_days = nil
}

// FloweringDays returns the value of the "flowering_days" field in the mutation.
func (m *CropMutation) FloweringDays() (r int, exists bool) {
	v := m.flowering_days
	if v == nil {
		return
	}
	return *v, true
}

// OldFloweringDays returns the old "flowering_days" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldFloweringDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFloweringDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFloweringDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFloweringDays: %w", err)
	}
	return oldValue.FloweringDays, nil
}

// AddFloweringDays adds i to the "flowering_days" field.
func (m *CropMutation) AddFloweringDays(i int) {
	if m.addflowering_days != nil {
		*m.addflowering_days += i
	} else {
		m.addflowering_days = &i
	}
}

// AddedFloweringDays returns the value that was added to the "flowering_days" field in this mutation.
func (m *CropMutation) AddedFloweringDays() (r int, exists bool) {
	v := m.addflowering_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearFloweringDays clears the value of the "flowering_days" field.
func (m *CropMutation) ClearFloweringDays() {
	m.flowering_days = nil
	m.addflowering_days = nil
	m.clearedFields[crop.FieldFloweringDays] = struct{}{}
}

// FloweringDaysCleared returns if the "flowering_days" field was cleared in this mutation.
func (m *CropMutation) FloweringDaysCleared() bool {
	_, ok := m.clearedFields[crop.FieldFloweringDays]
	return ok
}

// ResetFloweringDays resets all changes to the "flowering_days" field.
func (m *CropMutation) ResetFloweringDays() {
	m.flowering_days = nil
	m.addflowering_days = nil
	delete(m.clearedFields, crop.FieldFloweringDays)
}

// SetTotalCycleDays sets the "total_cycle_days" field.
func (m *CropMutation) SetTotalCycleDays(i int) {
	m.total_cycle_days = &i
	m.addtotal_cycle_days = nil
}

// TotalCycleDays returns the value of the "total_cycle_days" field in the mutation.
func (m *CropMutation) TotalCycleDays() (r int, exists bool) {
	v := m.total_cycle_days
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalCycleDays returns the old "total_cycle_days" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldTotalCycleDays(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalCycleDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalCycleDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalCycleDays: %w", err)
	}
	return oldValue.TotalCycleDays, nil
}

// AddTotalCycleDays adds i to the "total_cycle_days" field.
func (m *CropMutation) AddTotalCycleDays(i int) {
	if m.addtotal_cycle_days != nil {
		*m.addtotal_cycle_days += i
	} else {
		m.addtotal_cycle_days = &i
	}
}

// AddedTotalCycleDays returns the value that was added to the "total_cycle_days" field in this mutation.
func (m *CropMutation) AddedTotalCycleDays() (r int, exists bool) {
	v := m.addtotal_cycle_days
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalCycleDays clears the value of the "total_cycle_days" field.
func (m *CropMutation) ClearTotalCycleDays() {
	m.total_cycle_days = nil
	m.addtotal_cycle_days = nil
	m.clearedFields[crop.FieldTotalCycleDays] = struct{}{}
}

// TotalCycleDaysCleared returns if the "total_cycle_days" field was cleared in this mutation.
func (m *CropMutation) TotalCycleDaysCleared() bool {
	_, ok := m.clearedFields[crop.FieldTotalCycleDays]
	return ok
}

// ResetTotalCycleDays resets all changes to the "total_cycle_days" field.
func (m *CropMutation) ResetTotalCycleDays() {
	m.total_cycle_days = nil
	m.addtotal_cycle_days = nil
	delete(m.clearedFields, crop.FieldTotalCycleDays)
}

// SetCreatedAt sets the "created_at" field.
func (m *CropMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CropMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CropMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CropMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CropMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Crop entity.
// If the Crop object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CropMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CropMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPriceRecordIDs adds the "price_records" edge to the PriceRecord entity by ids.
func (m *CropMutation) AddPriceRecordIDs(ids ...uuid.UUID) {
	if m.price_records == nil {
		m.price_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.price_records[ids[i]] = struct{}{}
	}
}

// ClearPriceRecords clears the "price_records" edge to the PriceRecord entity.
func (m *CropMutation) ClearPriceRecords() {
	m.clearedprice_records = true
}

// PriceRecordsCleared reports if the "price_records" edge to the PriceRecord entity was cleared.
func (m *CropMutation) PriceRecordsCleared() bool {
	return m.clearedprice_records
}

// RemovePriceRecordIDs removes the "price_records" edge to the PriceRecord entity by IDs.
func (m *CropMutation) RemovePriceRecordIDs(ids ...uuid.UUID) {
	if m.removedprice_records == nil {
		m.removedprice_records = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.price_records, ids[i])
		m.removedprice_records[ids[i]] = struct{}{}
	}
}

// RemovedPriceRecords returns the removed IDs of the "price_records" edge to the PriceRecord entity.
func (m *CropMutation) RemovedPriceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.removedprice_records {
		ids = append(ids, id)
	}
	return
}

// PriceRecordsIDs returns the "price_records" edge IDs in the mutation.
func (m *CropMutation) PriceRecordsIDs() (ids []uuid.UUID) {
	for id := range m.price_records {
		ids = append(ids, id)
	}
	return
}

// ResetPriceRecords resets all changes to the "price_records" edge.
func (m *CropMutation) ResetPriceRecords() {
	m.price_records = nil
	m.clearedprice_records = false
	m.removedprice_records = nil
}

// Where appends a list predicates to the CropMutation builder.
func (m *CropMutation) Where(ps ...predicate.Crop) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CropMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CropMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Crop, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CropMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CropMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Crop).
func (m *CropMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CropMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, crop.FieldName)
	}
	if m.variety != nil {
		fields = append(fields, crop.FieldVariety)
	}
	if m.germination_days != nil {
		fields = append(fields, crop.FieldGerminationDays)
	}
	if m.vegetative_days != nil {
		fields = append(fields, crop.FieldVegetativeDays)
	}
	if m.flowering_days != nil {
		fields = append(fields, crop.FieldFloweringDays)
	}
	if m.total_cycle_days != nil {
		fields = append(fields, crop.FieldTotalCycleDays)
	}
	if m.created_at != nil {
		fields = append(fields, crop.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, crop.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CropMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case crop.FieldName:
		return m.Name()
	case crop.FieldVariety:
		return m.Variety()
	case crop.FieldGerminationDays:
		return m.GerminationDays()
	case crop.FieldVegetativeDays:
		return m.VegetativeDays()
	case crop.FieldFloweringDays:
		return m.FloweringDays()
	case crop.FieldTotalCycleDays:
		return m.TotalCycleDays()
	case crop.FieldCreatedAt:
		return m.CreatedAt()
	case crop.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CropMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case crop.FieldName:
		return m.OldName(ctx)
	case crop.FieldVariety:
		return m.OldVariety(ctx)
	case crop.FieldGerminationDays:
		return m.OldGerminationDays(ctx)
	case crop.FieldVegetativeDays:
		return m.OldVegetativeDays(ctx)
	case crop.FieldFloweringDays:
		return m.OldFloweringDays(ctx)
	case crop.FieldTotalCycleDays:
		return m.OldTotalCycleDays(ctx)
	case crop.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case crop.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Crop field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CropMutation) SetField(name string, value ent.Value) error {
	switch name {
	case crop.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case crop.FieldVariety:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariety(v)
		return nil
	case crop.FieldGerminationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGerminationDays(v)
		return nil
	case crop.FieldVegetativeDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVegetativeDays(v)
		return nil
	case crop.FieldFloweringDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFloweringDays(v)
		return nil
	case crop.FieldTotalCycleDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalCycleDays(v)
		return nil
	case crop.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case crop.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Crop field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CropMutation) AddedFields() []string {
	var fields []string
	if m.addgermination_days != nil {
		fields = append(fields, crop.FieldGerminationDays)
	}
	if m.addvegetative_days != nil {
		fields = append(fields, crop.FieldVegetativeDays)
	}
	if m.addflowering_days != nil {
		fields = append(fields, crop.FieldFloweringDays)
	}
	if m.addtotal_cycle_days != nil {
		fields = append(fields, crop.FieldTotalCycleDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CropMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case crop.FieldGerminationDays:
		return m.AddedGerminationDays()
	case crop.FieldVegetativeDays:
		return m.AddedVegetativeDays()
	case crop.FieldFloweringDays:
		return m.AddedFloweringDays()
	case crop.FieldTotalCycleDays:
		return m.AddedTotalCycleDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CropMutation) AddField(name string, value ent.Value) error {
	switch name {
	case crop.FieldGerminationDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGerminationDays(v)
		return nil
	case crop.FieldVegetativeDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVegetativeDays(v)
		return nil
	case crop.FieldFloweringDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFloweringDays(v)
		return nil
	case crop.FieldTotalCycleDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalCycleDays(v)
		return nil
	}
	return fmt.Errorf("unknown Crop numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CropMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(crop.FieldVariety) {
		fields = append(fields, crop.FieldVariety)
	}
	if m.FieldCleared(crop.FieldGerminationDays) {
		fields = append(fields, crop.FieldGerminationDays)
	}
	if m.FieldCleared(crop.FieldVegetativeDays) {
		fields = append(fields, crop.FieldVegetativeDays)
	}
	if m.FieldCleared(crop.FieldFloweringDays) {
		fields = append(fields, crop.FieldFloweringDays)
	}
	if m.FieldCleared(crop.FieldTotalCycleDays) {
		fields = append(fields, crop.FieldTotalCycleDays)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CropMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CropMutation) ClearField(name string) error {
	switch name {
	case crop.FieldVariety:
		m.ClearVariety()
		return nil
	case crop.FieldGerminationDays:
		m.ClearGerminationDays()
		return nil
	case crop.FieldVegetativeDays:
		m.ClearVegetativeDays()
		return nil
	case crop.FieldFloweringDays:
		m.ClearFloweringDays()
		return nil
	case crop.FieldTotalCycleDays:
		m.ClearTotalCycleDays()
		return nil
	}
	return fmt.Errorf("unknown Crop nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CropMutation) ResetField(name string) error {
	switch name {
	case crop.FieldName:
		m.ResetName()
		return nil
	case crop.FieldVariety:
		m.ResetVariety()
		return nil
	case crop.FieldGerminationDays:
		m.ResetGerminationDays()
		return nil
	case crop.FieldVegetativeDays:
		m.ResetVegetativeDays()
		return nil
	case crop.FieldFloweringDays:
		m.ResetFloweringDays()
		return nil
	case crop.FieldTotalCycleDays:
		m.ResetTotalCycleDays()
		return nil
	case crop.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case crop.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Crop field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CropMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.price_records != nil {
		edges = append(edges, crop.EdgePriceRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CropMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case crop.EdgePriceRecords:
		ids := make([]ent.Value, 0, len(m.price_records))
		for id := range m.price_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CropMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedprice_records != nil {
		edges = append(edges, crop.EdgePriceRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CropMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case crop.EdgePriceRecords:
		ids := make([]ent.Value, 0, len(m.removedprice_records))
		for id := range m.removedprice_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CropMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedprice_records {
		edges = append(edges, crop.EdgePriceRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CropMutation) EdgeCleared(name string) bool {
	switch name {
	case crop.EdgePriceRecords:
		return m.clearedprice_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CropMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Crop unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CropMutation) ResetEdge(name string) error {
	switch name {
	case crop.EdgePriceRecords:
		m.ResetPriceRecords()
		return nil
	}
	return fmt.Errorf("unknown Crop edge %s", name)
}

// FarmMutation represents an operation that mutates the Farm nodes in the graph.
type FarmMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	legacy_code            *string
	name                   *string
	location               *string
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	physical_blocks        map[uuid.UUID]struct{}
	removedphysical_blocks map[uuid.UUID]struct{}
	clearedphysical_blocks bool
	blocks                 map[uuid.UUID]struct{}
	removedblocks          map[uuid.UUID]struct{}
	clearedblocks          bool
	done                   bool
	oldValue               func(context.Context) (*Farm, error)
	predicates             []predicate.Farm
}

var _ ent.Mutation = (*FarmMutation)(nil)

// farmOption allows management of the mutation configuration using functional options.
type farmOption func(*FarmMutation)

// newFarmMutation creates new mutation for the Farm entity.
func newFarmMutation(c config, op Op, opts ...farmOption) *FarmMutation {
	m := &FarmMutation{
		config:        c,
		op:            op,
		typ:           TypeFarm,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFarmID sets the ID field of the mutation.
func withFarmID(id uuid.UUID) farmOption {
	return func(m *FarmMutation) {
		var (
			err   error
			once  sync.Once
			value *Farm
		)
		m.oldValue = func(ctx context.Context) (*Farm, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Farm.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFarm sets the old Farm of the mutation.
func withFarm(node *Farm) farmOption {
	return func(m *FarmMutation) {
		m.oldValue = func(context.Context) (*Farm, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FarmMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FarmMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Farm entities.
func (m *FarmMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FarmMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FarmMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Farm.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetLegacyCode sets the "legacy_code" field.
func (m *FarmMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *FarmMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *FarmMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetName sets the "name" field.
func (m *FarmMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *FarmMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *FarmMutation) ResetName() {
	m.name = nil
}

// SetLocation sets the "location" field.
func (m *FarmMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *FarmMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *FarmMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[farm.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *FarmMutation) LocationCleared() bool {
	_, ok := m.clearedFields[farm.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *FarmMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, farm.FieldLocation)
}

// SetCreatedAt sets the "created_at" field.
func (m *FarmMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FarmMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FarmMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FarmMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FarmMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Farm entity.
// If the Farm object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FarmMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FarmMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPhysicalBlockIDs adds the "physical_blocks" edge to the PhysicalBlock entity by ids.
func (m *FarmMutation) AddPhysicalBlockIDs(ids ...uuid.UUID) {
	if m.physical_blocks == nil {
		m.physical_blocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.physical_blocks[ids[i]] = struct{}{}
	}
}

// ClearPhysicalBlocks clears the "physical_blocks" edge to the PhysicalBlock entity.
func (m *FarmMutation) ClearPhysicalBlocks() {
	m.clearedphysical_blocks = true
}

// PhysicalBlocksCleared reports if the "physical_blocks" edge to the PhysicalBlock entity was cleared.
func (m *FarmMutation) PhysicalBlocksCleared() bool {
	return m.clearedphysical_blocks
}

// RemovePhysicalBlockIDs removes the "physical_blocks" edge to the PhysicalBlock entity by IDs.
func (m *FarmMutation) RemovePhysicalBlockIDs(ids ...uuid.UUID) {
	if m.removedphysical_blocks == nil {
		m.removedphysical_blocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.physical_blocks, ids[i])
		m.removedphysical_blocks[ids[i]] = struct{}{}
	}
}

// RemovedPhysicalBlocks returns the removed IDs of the "physical_blocks" edge to the PhysicalBlock entity.
func (m *FarmMutation) RemovedPhysicalBlocksIDs() (ids []uuid.UUID) {
	for id := range m.removedphysical_blocks {
		ids = append(ids, id)
	}
	return
}

// PhysicalBlocksIDs returns the "physical_blocks" edge IDs in the mutation.
func (m *FarmMutation) PhysicalBlocksIDs() (ids []uuid.UUID) {
	for id := range m.physical_blocks {
		ids = append(ids, id)
	}
	return
}

// ResetPhysicalBlocks resets all changes to the "physical_blocks" edge.
func (m *FarmMutation) ResetPhysicalBlocks() {
	m.physical_blocks = nil
	m.clearedphysical_blocks = false
	m.removedphysical_blocks = nil
}

// AddBlockIDs adds the "blocks" edge to the Block entity by ids.
func (m *FarmMutation) AddBlockIDs(ids ...uuid.UUID) {
	if m.blocks == nil {
		m.blocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the Block entity.
func (m *FarmMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the Block entity was cleared.
func (m *FarmMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the Block entity by IDs.
func (m *FarmMutation) RemoveBlockIDs(ids ...uuid.UUID) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the Block entity.
func (m *FarmMutation) RemovedBlocksIDs() (ids []uuid.UUID) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *FarmMutation) BlocksIDs() (ids []uuid.UUID) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *FarmMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// Where appends a list predicates to the FarmMutation builder.
func (m *FarmMutation) Where(ps ...predicate.Farm) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FarmMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FarmMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Farm, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FarmMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FarmMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Farm).
func (m *FarmMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FarmMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.legacy_code != nil {
		fields = append(fields, farm.FieldLegacyCode)
	}
	if m.name != nil {
		fields = append(fields, farm.FieldName)
	}
	if m.location != nil {
		fields = append(fields, farm.FieldLocation)
	}
	if m.created_at != nil {
		fields = append(fields, farm.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, farm.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FarmMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case farm.FieldLegacyCode:
		return m.LegacyCode()
	case farm.FieldName:
		return m.Name()
	case farm.FieldLocation:
		return m.Location()
	case farm.FieldCreatedAt:
		return m.CreatedAt()
	case farm.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FarmMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case farm.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case farm.FieldName:
		return m.OldName(ctx)
	case farm.FieldLocation:
		return m.OldLocation(ctx)
	case farm.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case farm.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Farm field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmMutation) SetField(name string, value ent.Value) error {
	switch name {
	case farm.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case farm.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case farm.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case farm.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case farm.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Farm field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FarmMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FarmMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FarmMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Farm numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FarmMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(farm.FieldLocation) {
		fields = append(fields, farm.FieldLocation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FarmMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FarmMutation) ClearField(name string) error {
	switch name {
	case farm.FieldLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown Farm nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FarmMutation) ResetField(name string) error {
	switch name {
	case farm.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case farm.FieldName:
		m.ResetName()
		return nil
	case farm.FieldLocation:
		m.ResetLocation()
		return nil
	case farm.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case farm.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Farm field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FarmMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.physical_blocks != nil {
		edges = append(edges, farm.EdgePhysicalBlocks)
	}
	if m.blocks != nil {
		edges = append(edges, farm.EdgeBlocks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FarmMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case farm.EdgePhysicalBlocks:
		ids := make([]ent.Value, 0, len(m.physical_blocks))
		for id := range m.physical_blocks {
			ids = append(ids, id)
		}
		return ids
	case farm.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FarmMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedphysical_blocks != nil {
		edges = append(edges, farm.EdgePhysicalBlocks)
	}
	if m.removedblocks != nil {
		edges = append(edges, farm.EdgeBlocks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FarmMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case farm.EdgePhysicalBlocks:
		ids := make([]ent.Value, 0, len(m.removedphysical_blocks))
		for id := range m.removedphysical_blocks {
			ids = append(ids, id)
		}
		return ids
	case farm.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FarmMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedphysical_blocks {
		edges = append(edges, farm.EdgePhysicalBlocks)
	}
	if m.clearedblocks {
		edges = append(edges, farm.EdgeBlocks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FarmMutation) EdgeCleared(name string) bool {
	switch name {
	case farm.EdgePhysicalBlocks:
		return m.clearedphysical_blocks
	case farm.EdgeBlocks:
		return m.clearedblocks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FarmMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Farm unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FarmMutation) ResetEdge(name string) error {
	switch name {
	case farm.EdgePhysicalBlocks:
		m.ResetPhysicalBlocks()
		return nil
	case farm.EdgeBlocks:
		m.ResetBlocks()
		return nil
	}
	return fmt.Errorf("unknown Farm edge %s", name)
}

// HarvestMutation represents an operation that mutates the Harvest nodes in the graph.
type HarvestMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	legacy_code    *string
	crop_name      *string
	date           *time.Time
	quantity_kg    *float64
	addquantity_kg *float64
	grade          *string
	created_at     *time.Time
	clearedFields  map[string]struct{}
	block          *uuid.UUID
	clearedblock   bool
	done           bool
	oldValue       func(context.Context) (*Harvest, error)
	predicates     []predicate.Harvest
}

var _ ent.Mutation = (*HarvestMutation)(nil)

// harvestOption allows management of the mutation configuration using functional options.
type harvestOption func(*HarvestMutation)

// newHarvestMutation creates new mutation for the Harvest entity.
func newHarvestMutation(c config, op Op, opts ...harvestOption) *HarvestMutation {
	m := &HarvestMutation{
		config:        c,
		op:            op,
		typ:           TypeHarvest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHarvestID sets the ID field of the mutation.
func withHarvestID(id uuid.UUID) harvestOption {
	return func(m *HarvestMutation) {
		var (
			err   error
			once  sync.Once
			value *Harvest
		)
		m.oldValue = func(ctx context.Context) (*Harvest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Harvest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHarvest sets the old Harvest of the mutation.
func withHarvest(node *Harvest) harvestOption {
	return func(m *HarvestMutation) {
		m.oldValue = func(context.Context) (*Harvest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HarvestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HarvestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Harvest entities.
func (m *HarvestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HarvestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HarvestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Harvest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBlockID sets the "block_id" field.
func (m *HarvestMutation) SetBlockID(u uuid.UUID) {
	m.block = &u
}

// BlockID returns the value of the "block_id" field in the mutation.
func (m *HarvestMutation) BlockID() (r uuid.UUID, exists bool) {
	v := m.block
	if v == nil {
		return
	}
	return *v, true
}

// OldBlockID returns the old "block_id" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldBlockID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlockID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlockID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlockID: %w", err)
	}
	return oldValue.BlockID, nil
}

// ResetBlockID resets all changes to the "block_id" field.
func (m *HarvestMutation) ResetBlockID() {
	m.block = nil
}

// SetLegacyCode sets the "legacy_code" field.
func (m *HarvestMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *HarvestMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *HarvestMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetCropName sets the "crop_name" field.
func (m *HarvestMutation) SetCropName(s string) {
	m.crop_name = &s
}

// CropName returns the value of the "crop_name" field in the mutation.
func (m *HarvestMutation) CropName() (r string, exists bool) {
	v := m.crop_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCropName returns the old "crop_name" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldCropName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropName: %w", err)
	}
	return oldValue.CropName, nil
}

// ClearCropName clears the value of the "crop_name" field.
func (m *HarvestMutation) ClearCropName() {
	m.crop_name = nil
	m.clearedFields[harvest.FieldCropName] = struct{}{}
}

// CropNameCleared returns if the "crop_name" field was cleared in this mutation.
func (m *HarvestMutation) CropNameCleared() bool {
	_, ok := m.clearedFields[harvest.FieldCropName]
	return ok
}

// ResetCropName resets all changes to the "crop_name" field.
func (m *HarvestMutation) ResetCropName() {
	m.crop_name = nil
	delete(m.clearedFields, harvest.FieldCropName)
}

// SetDate sets the "date" field.
func (m *HarvestMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *HarvestMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *HarvestMutation) ResetDate() {
	m.date = nil
}

// SetQuantityKg sets the "quantity_kg" field.
func (m *HarvestMutation) SetQuantityKg(f float64) {
	m.quantity_kg = &f
	m.addquantity_kg = nil
}

// QuantityKg returns the value of the "quantity_kg" field in the mutation.
func (m *HarvestMutation) QuantityKg() (r float64, exists bool) {
	v := m.quantity_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantityKg returns the old "quantity_kg" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldQuantityKg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantityKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantityKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantityKg: %w", err)
	}
	return oldValue.QuantityKg, nil
}

// AddQuantityKg adds f to the "quantity_kg" field.
func (m *HarvestMutation) AddQuantityKg(f float64) {
	if m.addquantity_kg != nil {
		*m.addquantity_kg += f
	} else {
		m.addquantity_kg = &f
	}
}

// AddedQuantityKg returns the value that was added to the "quantity_kg" field in this mutation.
func (m *HarvestMutation) AddedQuantityKg() (r float64, exists bool) {
	v := m.addquantity_kg
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantityKg resets all changes to the "quantity_kg" field.
func (m *HarvestMutation) ResetQuantityKg() {
	m.quantity_kg = nil
	m.addquantity_kg = nil
}

// SetGrade sets the "grade" field.
func (m *HarvestMutation) SetGrade(s string) {
	m.grade = &s
}

// Grade returns the value of the "grade" field in the mutation.
func (m *HarvestMutation) Grade() (r string, exists bool) {
	v := m.grade
	if v == nil {
		return
	}
	return *v, true
}

// OldGrade returns the old "grade" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldGrade(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrade is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrade requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrade: %w", err)
	}
	return oldValue.Grade, nil
}

// ClearGrade clears the value of the "grade" field.
func (m *HarvestMutation) ClearGrade() {
	m.grade = nil
	m.clearedFields[harvest.FieldGrade] = struct{}{}
}

// GradeCleared returns if the "grade" field was cleared in this mutation.
func (m *HarvestMutation) GradeCleared() bool {
	_, ok := m.clearedFields[harvest.FieldGrade]
	return ok
}

// ResetGrade resets all changes to the "grade" field.
func (m *HarvestMutation) ResetGrade() {
	m.grade = nil
	delete(m.clearedFields, harvest.FieldGrade)
}

// SetCreatedAt sets the "created_at" field.
func (m *HarvestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HarvestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Harvest entity.
// If the Harvest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HarvestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HarvestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBlock clears the "block" edge to the Block entity.
func (m *HarvestMutation) ClearBlock() {
	m.clearedblock = true
	m.clearedFields[harvest.FieldBlockID] = struct{}{}
}

// BlockCleared reports if the "block" edge to the Block entity was cleared.
func (m *HarvestMutation) BlockCleared() bool {
	return m.clearedblock
}

// BlockIDs returns the "block" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlockID instead. It exists only for internal usage by the builders.
func (m *HarvestMutation) BlockIDs() (ids []uuid.UUID) {
	if id := m.block; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlock resets all changes to the "block" edge.
func (m *HarvestMutation) ResetBlock() {
	m.block = nil
	m.clearedblock = false
}

// Where appends a list predicates to the HarvestMutation builder.
func (m *HarvestMutation) Where(ps ...predicate.Harvest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HarvestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HarvestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Harvest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HarvestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HarvestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Harvest).
func (m *HarvestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HarvestMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.block != nil {
		fields = append(fields, harvest.FieldBlockID)
	}
	if m.legacy_code != nil {
		fields = append(fields, harvest.FieldLegacyCode)
	}
	if m.crop_name != nil {
		fields = append(fields, harvest.FieldCropName)
	}
	if m.date != nil {
		fields = append(fields, harvest.FieldDate)
	}
	if m.quantity_kg != nil {
		fields = append(fields, harvest.FieldQuantityKg)
	}
	if m.grade != nil {
		fields = append(fields, harvest.FieldGrade)
	}
	if m.created_at != nil {
		fields = append(fields, harvest.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HarvestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case harvest.FieldBlockID:
		return m.BlockID()
	case harvest.FieldLegacyCode:
		return m.LegacyCode()
	case harvest.FieldCropName:
		return m.CropName()
	case harvest.FieldDate:
		return m.Date()
	case harvest.FieldQuantityKg:
		return m.QuantityKg()
	case harvest.FieldGrade:
		return m.Grade()
	case harvest.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HarvestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case harvest.FieldBlockID:
		return m.OldBlockID(ctx)
	case harvest.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case harvest.FieldCropName:
		return m.OldCropName(ctx)
	case harvest.FieldDate:
		return m.OldDate(ctx)
	case harvest.FieldQuantityKg:
		return m.OldQuantityKg(ctx)
	case harvest.FieldGrade:
		return m.OldGrade(ctx)
	case harvest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Harvest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HarvestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case harvest.FieldBlockID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlockID(v)
		return nil
	case harvest.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case harvest.FieldCropName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropName(v)
		return nil
	case harvest.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case harvest.FieldQuantityKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantityKg(v)
		return nil
	case harvest.FieldGrade:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrade(v)
		return nil
	case harvest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Harvest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HarvestMutation) AddedFields() []string {
	var fields []string
	if m.addquantity_kg != nil {
		fields = append(fields, harvest.FieldQuantityKg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HarvestMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case harvest.FieldQuantityKg:
		return m.AddedQuantityKg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HarvestMutation) AddField(name string, value ent.Value) error {
	switch name {
	case harvest.FieldQuantityKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantityKg(v)
		return nil
	}
	return fmt.Errorf("unknown Harvest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HarvestMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(harvest.FieldCropName) {
		fields = append(fields, harvest.FieldCropName)
	}
	if m.FieldCleared(harvest.FieldGrade) {
		fields = append(fields, harvest.FieldGrade)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HarvestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HarvestMutation) ClearField(name string) error {
	switch name {
	case harvest.FieldCropName:
		m.ClearCropName()
		return nil
	case harvest.FieldGrade:
		m.ClearGrade()
		return nil
	}
	return fmt.Errorf("unknown Harvest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HarvestMutation) ResetField(name string) error {
	switch name {
	case harvest.FieldBlockID:
		m.ResetBlockID()
		return nil
	case harvest.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case harvest.FieldCropName:
		m.ResetCropName()
		return nil
	case harvest.FieldDate:
		m.ResetDate()
		return nil
	case harvest.FieldQuantityKg:
		m.ResetQuantityKg()
		return nil
	case harvest.FieldGrade:
		m.ResetGrade()
		return nil
	case harvest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Harvest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HarvestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.block != nil {
		edges = append(edges, harvest.EdgeBlock)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HarvestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case harvest.EdgeBlock:
		if id := m.block; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HarvestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HarvestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HarvestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedblock {
		edges = append(edges, harvest.EdgeBlock)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HarvestMutation) EdgeCleared(name string) bool {
	switch name {
	case harvest.EdgeBlock:
		return m.clearedblock
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HarvestMutation) ClearEdge(name string) error {
	switch name {
	case harvest.EdgeBlock:
		m.ClearBlock()
		return nil
	}
	return fmt.Errorf("unknown Harvest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HarvestMutation) ResetEdge(name string) error {
	switch name {
	case harvest.EdgeBlock:
		m.ResetBlock()
		return nil
	}
	return fmt.Errorf("unknown Harvest edge %s", name)
}

// PhysicalBlockMutation represents an operation that mutates the PhysicalBlock nodes in the graph.
type PhysicalBlockMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	legacy_code   *string
	name          *string
	area_sq_m     *float64
	addarea_sq_m  *float64
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	farm          *uuid.UUID
	clearedfarm   bool
	blocks        map[uuid.UUID]struct{}
	removedblocks map[uuid.UUID]struct{}
	clearedblocks bool
	done          bool
	oldValue      func(context.Context) (*PhysicalBlock, error)
	predicates    []predicate.PhysicalBlock
}

var _ ent.Mutation = (*PhysicalBlockMutation)(nil)

// physicalblockOption allows management of the mutation configuration using functional options.
type physicalblockOption func(*PhysicalBlockMutation)

// newPhysicalBlockMutation creates new mutation for the PhysicalBlock entity.
func newPhysicalBlockMutation(c config, op Op, opts ...physicalblockOption) *PhysicalBlockMutation {
	m := &PhysicalBlockMutation{
		config:        c,
		op:            op,
		typ:           TypePhysicalBlock,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPhysicalBlockID sets the ID field of the mutation.
func withPhysicalBlockID(id uuid.UUID) physicalblockOption {
	return func(m *PhysicalBlockMutation) {
		var (
			err   error
			once  sync.Once
			value *PhysicalBlock
		)
		m.oldValue = func(ctx context.Context) (*PhysicalBlock, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PhysicalBlock.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPhysicalBlock sets the old PhysicalBlock of the mutation.
func withPhysicalBlock(node *PhysicalBlock) physicalblockOption {
	return func(m *PhysicalBlockMutation) {
		m.oldValue = func(context.Context) (*PhysicalBlock, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PhysicalBlockMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PhysicalBlockMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PhysicalBlock entities.
func (m *PhysicalBlockMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PhysicalBlockMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PhysicalBlockMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PhysicalBlock.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFarmID sets the "farm_id" field.
func (m *PhysicalBlockMutation) SetFarmID(u uuid.UUID) {
	m.farm = &u
}

// FarmID returns the value of the "farm_id" field in the mutation.
func (m *PhysicalBlockMutation) FarmID() (r uuid.UUID, exists bool) {
	v := m.farm
	if v == nil {
		return
	}
	return *v, true
}

// OldFarmID returns the old "farm_id" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldFarmID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFarmID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFarmID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFarmID: %w", err)
	}
	return oldValue.FarmID, nil
}

// ResetFarmID resets all changes to the "farm_id" field.
func (m *PhysicalBlockMutation) ResetFarmID() {
	m.farm = nil
}

// SetLegacyCode sets the "legacy_code" field.
func (m *PhysicalBlockMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *PhysicalBlockMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *PhysicalBlockMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetName sets the "name" field.
func (m *PhysicalBlockMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PhysicalBlockMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *PhysicalBlockMutation) ClearName() {
	m.name = nil
	m.clearedFields[physicalblock.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *PhysicalBlockMutation) NameCleared() bool {
	_, ok := m.clearedFields[physicalblock.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *PhysicalBlockMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, physicalblock.FieldName)
}

// SetAreaSqM sets the "area_sq_m" field.
func (m *PhysicalBlockMutation) SetAreaSqM(f float64) {
	m.area_sq_m = &f
	m.addarea_sq_m = nil
}

// AreaSqM returns the value of the "area_sq_m" field in the mutation.
func (m *PhysicalBlockMutation) AreaSqM() (r float64, exists bool) {
	v := m.area_sq_m
	if v == nil {
		return
	}
	return *v, true
}

// OldAreaSqM returns the old "area_sq_m" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldAreaSqM(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAreaSqM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAreaSqM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAreaSqM: %w", err)
	}
	return oldValue.AreaSqM, nil
}

// AddAreaSqM adds f to the "area_sq_m" field.
func (m *PhysicalBlockMutation) AddAreaSqM(f float64) {
	if m.addarea_sq_m != nil {
		*m.addarea_sq_m += f
	} else {
		m.addarea_sq_m = &f
	}
}

// AddedAreaSqM returns the value that was added to the "area_sq_m" field in this mutation.
func (m *PhysicalBlockMutation) AddedAreaSqM() (r float64, exists bool) {
	v := m.addarea_sq_m
	if v == nil {
		return
	}
	return *v, true
}

// ClearAreaSqM clears the value of the "area_sq_m" field.
func (m *PhysicalBlockMutation) ClearAreaSqM() {
	m.area_sq_m = nil
	m.addarea_sq_m = nil
	m.clearedFields[physicalblock.FieldAreaSqM] = struct{}{}
}

// AreaSqMCleared returns if the "area_sq_m" field was cleared in this mutation.
func (m *PhysicalBlockMutation) AreaSqMCleared() bool {
	_, ok := m.clearedFields[physicalblock.FieldAreaSqM]
	return ok
}

// ResetAreaSqM resets all changes to the "area_sq_m" field.
func (m *PhysicalBlockMutation) ResetAreaSqM() {
	m.area_sq_m = nil
	m.addarea_sq_m = nil
	delete(m.clearedFields, physicalblock.FieldAreaSqM)
}

// SetCreatedAt sets the "created_at" field.
func (m *PhysicalBlockMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PhysicalBlockMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PhysicalBlockMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PhysicalBlockMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PhysicalBlockMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PhysicalBlock entity.
// If the PhysicalBlock object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PhysicalBlockMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PhysicalBlockMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearFarm clears the "farm" edge to the Farm entity.
func (m *PhysicalBlockMutation) ClearFarm() {
	m.clearedfarm = true
	m.clearedFields[physicalblock.FieldFarmID] = struct{}{}
}

// FarmCleared reports if the "farm" edge to the Farm entity was cleared.
func (m *PhysicalBlockMutation) FarmCleared() bool {
	return m.clearedfarm
}

// FarmIDs returns the "farm" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FarmID instead. It exists only for internal usage by the builders.
func (m *PhysicalBlockMutation) FarmIDs() (ids []uuid.UUID) {
	if id := m.farm; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFarm resets all changes to the "farm" edge.
func (m *PhysicalBlockMutation) ResetFarm() {
	m.farm = nil
	m.clearedfarm = false
}

// AddBlockIDs adds the "blocks" edge to the Block entity by ids.
func (m *PhysicalBlockMutation) AddBlockIDs(ids ...uuid.UUID) {
	if m.blocks == nil {
		m.blocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.blocks[ids[i]] = struct{}{}
	}
}

// ClearBlocks clears the "blocks" edge to the Block entity.
func (m *PhysicalBlockMutation) ClearBlocks() {
	m.clearedblocks = true
}

// BlocksCleared reports if the "blocks" edge to the Block entity was cleared.
func (m *PhysicalBlockMutation) BlocksCleared() bool {
	return m.clearedblocks
}

// RemoveBlockIDs removes the "blocks" edge to the Block entity by IDs.
func (m *PhysicalBlockMutation) RemoveBlockIDs(ids ...uuid.UUID) {
	if m.removedblocks == nil {
		m.removedblocks = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.blocks, ids[i])
		m.removedblocks[ids[i]] = struct{}{}
	}
}

// RemovedBlocks returns the removed IDs of the "blocks" edge to the Block entity.
func (m *PhysicalBlockMutation) RemovedBlocksIDs() (ids []uuid.UUID) {
	for id := range m.removedblocks {
		ids = append(ids, id)
	}
	return
}

// BlocksIDs returns the "blocks" edge IDs in the mutation.
func (m *PhysicalBlockMutation) BlocksIDs() (ids []uuid.UUID) {
	for id := range m.blocks {
		ids = append(ids, id)
	}
	return
}

// ResetBlocks resets all changes to the "blocks" edge.
func (m *PhysicalBlockMutation) ResetBlocks() {
	m.blocks = nil
	m.clearedblocks = false
	m.removedblocks = nil
}

// Where appends a list predicates to the PhysicalBlockMutation builder.
func (m *PhysicalBlockMutation) Where(ps ...predicate.PhysicalBlock) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PhysicalBlockMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PhysicalBlockMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PhysicalBlock, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PhysicalBlockMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PhysicalBlockMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PhysicalBlock).
func (m *PhysicalBlockMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PhysicalBlockMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.farm != nil {
		fields = append(fields, physicalblock.FieldFarmID)
	}
	if m.legacy_code != nil {
		fields = append(fields, physicalblock.FieldLegacyCode)
	}
	if m.name != nil {
		fields = append(fields, physicalblock.FieldName)
	}
	if m.area_sq_m != nil {
		fields = append(fields, physicalblock.FieldAreaSqM)
	}
	if m.created_at != nil {
		fields = append(fields, physicalblock.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, physicalblock.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PhysicalBlockMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case physicalblock.FieldFarmID:
		return m.FarmID()
	case physicalblock.FieldLegacyCode:
		return m.LegacyCode()
	case physicalblock.FieldName:
		return m.Name()
	case physicalblock.FieldAreaSqM:
		return m.AreaSqM()
	case physicalblock.FieldCreatedAt:
		return m.CreatedAt()
	case physicalblock.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PhysicalBlockMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case physicalblock.FieldFarmID:
		return m.OldFarmID(ctx)
	case physicalblock.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case physicalblock.FieldName:
		return m.OldName(ctx)
	case physicalblock.FieldAreaSqM:
		return m.OldAreaSqM(ctx)
	case physicalblock.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case physicalblock.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PhysicalBlock field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalBlockMutation) SetField(name string, value ent.Value) error {
	switch name {
	case physicalblock.FieldFarmID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFarmID(v)
		return nil
	case physicalblock.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case physicalblock.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case physicalblock.FieldAreaSqM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAreaSqM(v)
		return nil
	case physicalblock.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case physicalblock.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PhysicalBlockMutation) AddedFields() []string {
	var fields []string
	if m.addarea_sq_m != nil {
		fields = append(fields, physicalblock.FieldAreaSqM)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PhysicalBlockMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case physicalblock.FieldAreaSqM:
		return m.AddedAreaSqM()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PhysicalBlockMutation) AddField(name string, value ent.Value) error {
	switch name {
	case physicalblock.FieldAreaSqM:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAreaSqM(v)
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PhysicalBlockMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(physicalblock.FieldName) {
		fields = append(fields, physicalblock.FieldName)
	}
	if m.FieldCleared(physicalblock.FieldAreaSqM) {
		fields = append(fields, physicalblock.FieldAreaSqM)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PhysicalBlockMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PhysicalBlockMutation) ClearField(name string) error {
	switch name {
	case physicalblock.FieldName:
		m.ClearName()
		return nil
	case physicalblock.FieldAreaSqM:
		m.ClearAreaSqM()
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PhysicalBlockMutation) ResetField(name string) error {
	switch name {
	case physicalblock.FieldFarmID:
		m.ResetFarmID()
		return nil
	case physicalblock.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case physicalblock.FieldName:
		m.ResetName()
		return nil
	case physicalblock.FieldAreaSqM:
		m.ResetAreaSqM()
		return nil
	case physicalblock.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case physicalblock.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PhysicalBlockMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.farm != nil {
		edges = append(edges, physicalblock.EdgeFarm)
	}
	if m.blocks != nil {
		edges = append(edges, physicalblock.EdgeBlocks)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PhysicalBlockMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case physicalblock.EdgeFarm:
		if id := m.farm; id != nil {
			return []ent.Value{*id}
		}
	case physicalblock.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.blocks))
		for id := range m.blocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PhysicalBlockMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedblocks != nil {
		edges = append(edges, physicalblock.EdgeBlocks)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PhysicalBlockMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case physicalblock.EdgeBlocks:
		ids := make([]ent.Value, 0, len(m.removedblocks))
		for id := range m.removedblocks {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PhysicalBlockMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfarm {
		edges = append(edges, physicalblock.EdgeFarm)
	}
	if m.clearedblocks {
		edges = append(edges, physicalblock.EdgeBlocks)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PhysicalBlockMutation) EdgeCleared(name string) bool {
	switch name {
	case physicalblock.EdgeFarm:
		return m.clearedfarm
	case physicalblock.EdgeBlocks:
		return m.clearedblocks
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PhysicalBlockMutation) ClearEdge(name string) error {
	switch name {
	case physicalblock.EdgeFarm:
		m.ClearFarm()
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PhysicalBlockMutation) ResetEdge(name string) error {
	switch name {
	case physicalblock.EdgeFarm:
		m.ResetFarm()
		return nil
	case physicalblock.EdgeBlocks:
		m.ResetBlocks()
		return nil
	}
	return fmt.Errorf("unknown PhysicalBlock edge %s", name)
}

// PriceRecordMutation represents an operation that mutates the PriceRecord nodes in the graph.
type PriceRecordMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	legacy_code     *string
	crop_name       *string
	date            *time.Time
	price_per_kg    *float64
	addprice_per_kg *float64
	currency_code   *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	crop            *uuid.UUID
	clearedcrop     bool
	done            bool
	oldValue        func(context.Context) (*PriceRecord, error)
	predicates      []predicate.PriceRecord
}

var _ ent.Mutation = (*PriceRecordMutation)(nil)

// pricerecordOption allows management of the mutation configuration using functional options.
type pricerecordOption func(*PriceRecordMutation)

// newPriceRecordMutation creates new mutation for the PriceRecord entity.
func newPriceRecordMutation(c config, op Op, opts ...pricerecordOption) *PriceRecordMutation {
	m := &PriceRecordMutation{
		config:        c,
		op:            op,
		typ:           TypePriceRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPriceRecordID sets the ID field of the mutation.
func withPriceRecordID(id uuid.UUID) pricerecordOption {
	return func(m *PriceRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *PriceRecord
		)
		m.oldValue = func(ctx context.Context) (*PriceRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PriceRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPriceRecord sets the old PriceRecord of the mutation.
func withPriceRecord(node *PriceRecord) pricerecordOption {
	return func(m *PriceRecordMutation) {
		m.oldValue = func(context.Context) (*PriceRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PriceRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PriceRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PriceRecord entities.
func (m *PriceRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PriceRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PriceRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PriceRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCropID sets the "crop_id" field.
func (m *PriceRecordMutation) SetCropID(u uuid.UUID) {
	m.crop = &u
}

// CropID returns the value of the "crop_id" field in the mutation.
func (m *PriceRecordMutation) CropID() (r uuid.UUID, exists bool) {
	v := m.crop
	if v == nil {
		return
	}
	return *v, true
}

// OldCropID returns the old "crop_id" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCropID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropID: %w", err)
	}
	return oldValue.CropID, nil
}

// ClearCropID clears the value of the "crop_id" field.
func (m *PriceRecordMutation) ClearCropID() {
	m.crop = nil
	m.clearedFields[pricerecord.FieldCropID] = struct{}{}
}

// CropIDCleared returns if the "crop_id" field was cleared in this mutation.
func (m *PriceRecordMutation) CropIDCleared() bool {
	_, ok := m.clearedFields[pricerecord.FieldCropID]
	return ok
}

// ResetCropID resets all changes to the "crop_id" field.
func (m *PriceRecordMutation) ResetCropID() {
	m.crop = nil
	delete(m.clearedFields, pricerecord.FieldCropID)
}

// SetLegacyCode sets the "legacy_code" field.
func (m *PriceRecordMutation) SetLegacyCode(s string) {
	m.legacy_code = &s
}

// LegacyCode returns the value of the "legacy_code" field in the mutation.
func (m *PriceRecordMutation) LegacyCode() (r string, exists bool) {
	v := m.legacy_code
	if v == nil {
		return
	}
	return *v, true
}

// OldLegacyCode returns the old "legacy_code" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldLegacyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLegacyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLegacyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLegacyCode: %w", err)
	}
	return oldValue.LegacyCode, nil
}

// ResetLegacyCode resets all changes to the "legacy_code" field.
func (m *PriceRecordMutation) ResetLegacyCode() {
	m.legacy_code = nil
}

// SetCropName sets the "crop_name" field.
func (m *PriceRecordMutation) SetCropName(s string) {
	m.crop_name = &s
}

// CropName returns the value of the "crop_name" field in the mutation.
func (m *PriceRecordMutation) CropName() (r string, exists bool) {
	v := m.crop_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCropName returns the old "crop_name" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCropName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCropName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCropName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCropName: %w", err)
	}
	return oldValue.CropName, nil
}

// ResetCropName resets all changes to the "crop_name" field.
func (m *PriceRecordMutation) ResetCropName() {
	m.crop_name = nil
}

// SetDate sets the "date" field.
func (m *PriceRecordMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *PriceRecordMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *PriceRecordMutation) ResetDate() {
	m.date = nil
}

// SetPricePerKg sets the "price_per_kg" field.
func (m *PriceRecordMutation) SetPricePerKg(f float64) {
	m.price_per_kg = &f
	m.addprice_per_kg = nil
}

// PricePerKg returns the value of the "price_per_kg" field in the mutation.
func (m *PriceRecordMutation) PricePerKg() (r float64, exists bool) {
	v := m.price_per_kg
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerKg returns the old "price_per_kg" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldPricePerKg(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerKg is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerKg requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerKg: %w", err)
	}
	return oldValue.PricePerKg, nil
}

// AddPricePerKg adds f to the "price_per_kg" field.
func (m *PriceRecordMutation) AddPricePerKg(f float64) {
	if m.addprice_per_kg != nil {
		*m.addprice_per_kg += f
	} else {
		m.addprice_per_kg = &f
	}
}

// AddedPricePerKg returns the value that was added to the "price_per_kg" field in this mutation.
func (m *PriceRecordMutation) AddedPricePerKg() (r float64, exists bool) {
	v := m.addprice_per_kg
	if v == nil {
		return
	}
	return *v, true
}

// ResetPricePerKg resets all changes to the "price_per_kg" field.
func (m *PriceRecordMutation) ResetPricePerKg() {
	m.price_per_kg = nil
	m.addprice_per_kg = nil
}

// SetCurrencyCode sets the "currency_code" field.
func (m *PriceRecordMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *PriceRecordMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *PriceRecordMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PriceRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PriceRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PriceRecord entity.
// If the PriceRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PriceRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PriceRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearCrop clears the "crop" edge to the Crop entity.
func (m *PriceRecordMutation) ClearCrop() {
	m.clearedcrop = true
	m.clearedFields[pricerecord.FieldCropID] = struct{}{}
}

// CropCleared reports if the "crop" edge to the Crop entity was cleared.
func (m *PriceRecordMutation) CropCleared() bool {
	return m.CropIDCleared() || m.clearedcrop
}

// CropIDs returns the "crop" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CropID instead. It exists only for internal usage by the builders.
func (m *PriceRecordMutation) CropIDs() (ids []uuid.UUID) {
	if id := m.crop; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCrop resets all changes to the "crop" edge.
func (m *PriceRecordMutation) ResetCrop() {
	m.crop = nil
	m.clearedcrop = false
}

// Where appends a list predicates to the PriceRecordMutation builder.
func (m *PriceRecordMutation) Where(ps ...predicate.PriceRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PriceRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PriceRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PriceRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PriceRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PriceRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PriceRecord).
func (m *PriceRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PriceRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.crop != nil {
		fields = append(fields, pricerecord.FieldCropID)
	}
	if m.legacy_code != nil {
		fields = append(fields, pricerecord.FieldLegacyCode)
	}
	if m.crop_name != nil {
		fields = append(fields, pricerecord.FieldCropName)
	}
	if m.date != nil {
		fields = append(fields, pricerecord.FieldDate)
	}
	if m.price_per_kg != nil {
		fields = append(fields, pricerecord.FieldPricePerKg)
	}
	if m.currency_code != nil {
		fields = append(fields, pricerecord.FieldCurrencyCode)
	}
	if m.created_at != nil {
		fields = append(fields, pricerecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PriceRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pricerecord.FieldCropID:
		return m.CropID()
	case pricerecord.FieldLegacyCode:
		return m.LegacyCode()
	case pricerecord.FieldCropName:
		return m.CropName()
	case pricerecord.FieldDate:
		return m.Date()
	case pricerecord.FieldPricePerKg:
		return m.PricePerKg()
	case pricerecord.FieldCurrencyCode:
		return m.CurrencyCode()
	case pricerecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PriceRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pricerecord.FieldCropID:
		return m.OldCropID(ctx)
	case pricerecord.FieldLegacyCode:
		return m.OldLegacyCode(ctx)
	case pricerecord.FieldCropName:
		return m.OldCropName(ctx)
	case pricerecord.FieldDate:
		return m.OldDate(ctx)
	case pricerecord.FieldPricePerKg:
		return m.OldPricePerKg(ctx)
	case pricerecord.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case pricerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PriceRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pricerecord.FieldCropID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropID(v)
		return nil
	case pricerecord.FieldLegacyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLegacyCode(v)
		return nil
	case pricerecord.FieldCropName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCropName(v)
		return nil
	case pricerecord.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case pricerecord.FieldPricePerKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerKg(v)
		return nil
	case pricerecord.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case pricerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PriceRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PriceRecordMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_kg != nil {
		fields = append(fields, pricerecord.FieldPricePerKg)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PriceRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case pricerecord.FieldPricePerKg:
		return m.AddedPricePerKg()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PriceRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case pricerecord.FieldPricePerKg:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerKg(v)
		return nil
	}
	return fmt.Errorf("unknown PriceRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PriceRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pricerecord.FieldCropID) {
		fields = append(fields, pricerecord.FieldCropID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PriceRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PriceRecordMutation) ClearField(name string) error {
	switch name {
	case pricerecord.FieldCropID:
		m.ClearCropID()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PriceRecordMutation) ResetField(name string) error {
	switch name {
	case pricerecord.FieldCropID:
		m.ResetCropID()
		return nil
	case pricerecord.FieldLegacyCode:
		m.ResetLegacyCode()
		return nil
	case pricerecord.FieldCropName:
		m.ResetCropName()
		return nil
	case pricerecord.FieldDate:
		m.ResetDate()
		return nil
	case pricerecord.FieldPricePerKg:
		m.ResetPricePerKg()
		return nil
	case pricerecord.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case pricerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PriceRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.crop != nil {
		edges = append(edges, pricerecord.EdgeCrop)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PriceRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pricerecord.EdgeCrop:
		if id := m.crop; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PriceRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PriceRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PriceRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcrop {
		edges = append(edges, pricerecord.EdgeCrop)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PriceRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case pricerecord.EdgeCrop:
		return m.clearedcrop
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PriceRecordMutation) ClearEdge(name string) error {
	switch name {
	case pricerecord.EdgeCrop:
		m.ClearCrop()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PriceRecordMutation) ResetEdge(name string) error {
	switch name {
	case pricerecord.EdgeCrop:
		m.ResetCrop()
		return nil
	}
	return fmt.Errorf("unknown PriceRecord edge %s", name)
}
