// Code generated by ent, DO NOT EDIT.

package block

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the block type in the database.
	Label = "block"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFarmID holds the string denoting the farm_id field in the database.
	FieldFarmID = "farm_id"
	// FieldPhysicalBlockID holds the string denoting the physical_block_id field in the database.
	FieldPhysicalBlockID = "physical_block_id"
	// FieldLegacyCode holds the string denoting the legacy_code field in the database.
	FieldLegacyCode = "legacy_code"
	// FieldSequenceNumber holds the string denoting the sequence_number field in the database.
	FieldSequenceNumber = "sequence_number"
	// FieldBlockType holds the string denoting the block_type field in the database.
	FieldBlockType = "block_type"
	// FieldMaxCapacity holds the string denoting the max_capacity field in the database.
	FieldMaxCapacity = "max_capacity"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCropName holds the string denoting the crop_name field in the database.
	FieldCropName = "crop_name"
	// FieldPlantingDate holds the string denoting the planting_date field in the database.
	FieldPlantingDate = "planting_date"
	// FieldWateringFrequencyDays holds the string denoting the watering_frequency_days field in the database.
	FieldWateringFrequencyDays = "watering_frequency_days"
	// FieldExpectedStatusChanges holds the string denoting the expected_status_changes field in the database.
	FieldExpectedStatusChanges = "expected_status_changes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeFarm holds the string denoting the farm edge name in mutations.
	EdgeFarm = "farm"
	// EdgePhysicalBlock holds the string denoting the physical_block edge name in mutations.
	EdgePhysicalBlock = "physical_block"
	// EdgeArchivedCycles holds the string denoting the archived_cycles edge name in mutations.
	EdgeArchivedCycles = "archived_cycles"
	// EdgeHarvests holds the string denoting the harvests edge name in mutations.
	EdgeHarvests = "harvests"
	// Table holds the table name of the block in the database.
	Table = "blocks"
	// FarmTable is the table that holds the farm relation/edge.
	FarmTable = "blocks"
	// FarmInverseTable is the table name for the Farm entity.
	// It exists in this package in order to avoid circular dependency with the "farm" package.
	FarmInverseTable = "farms"
	// FarmColumn is the table column denoting the farm relation/edge.
	FarmColumn = "farm_id"
	// PhysicalBlockTable is the table that holds the physical_block relation/edge.
	PhysicalBlockTable = "blocks"
	// PhysicalBlockInverseTable is the table name for the PhysicalBlock entity.
	// It exists in this package in order to avoid circular dependency with the "physicalblock" package.
	PhysicalBlockInverseTable = "physical_blocks"
	// PhysicalBlockColumn is the table column denoting the physical_block relation/edge.
	PhysicalBlockColumn = "physical_block_id"
	// ArchivedCyclesTable is the table that holds the archived_cycles relation/edge.
	ArchivedCyclesTable = "archived_cycles"
	// ArchivedCyclesInverseTable is the table name for the ArchivedCycle entity.
	// It exists in this package in order to avoid circular dependency with the "archivedcycle" package.
	ArchivedCyclesInverseTable = "archived_cycles"
	// ArchivedCyclesColumn is the table column denoting the archived_cycles relation/edge.
	ArchivedCyclesColumn = "block_id"
	// HarvestsTable is the table that holds the harvests relation/edge.
	HarvestsTable = "harvests"
	// HarvestsInverseTable is the table name for the Harvest entity.
	// It exists in this package in order to avoid circular dependency with the "harvest" package.
	HarvestsInverseTable = "harvests"
	// HarvestsColumn is the table column denoting the harvests relation/edge.
	HarvestsColumn = "block_id"
)

// Columns holds all SQL columns for block fields.
var Columns = []string{
	FieldID,
	FieldFarmID,
	FieldPhysicalBlockID,
	FieldLegacyCode,
	FieldSequenceNumber,
	FieldBlockType,
	FieldMaxCapacity,
	FieldState,
	FieldCropName,
	FieldPlantingDate,
	FieldWateringFrequencyDays,
	FieldExpectedStatusChanges,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// LegacyCodeValidator is a validator for the "legacy_code" field. It is called by the builders before save.
	LegacyCodeValidator func(string) error
	// SequenceNumberValidator is a validator for the "sequence_number" field. It is called by the builders before save.
	SequenceNumberValidator func(int) error
	// BlockTypeValidator is a validator for the "block_type" field. It is called by the builders before save.
	BlockTypeValidator func(string) error
	// MaxCapacityValidator is a validator for the "max_capacity" field. It is called by the builders before save.
	MaxCapacityValidator func(int) error
	// StateValidator is a validator for the "state" field. It is called by the builders before save.
	StateValidator func(string) error
	// WateringFrequencyDaysValidator is a validator for the "watering_frequency_days" field. It is called by the builders before save.
	WateringFrequencyDaysValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Block queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFarmID orders the results by the farm_id field.
func ByFarmID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFarmID, opts...).ToFunc()
}

// ByPhysicalBlockID orders the results by the physical_block_id field.
func ByPhysicalBlockID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhysicalBlockID, opts...).ToFunc()
}

// ByLegacyCode orders the results by the legacy_code field.
func ByLegacyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyCode, opts...).ToFunc()
}

// BySequenceNumber orders the results by the sequence_number field.
func BySequenceNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequenceNumber, opts...).ToFunc()
}

// ByBlockType orders the results by the block_type field.
func ByBlockType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBlockType, opts...).ToFunc()
}

// ByMaxCapacity orders the results by the max_capacity field.
func ByMaxCapacity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxCapacity, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCropName orders the results by the crop_name field.
func ByCropName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCropName, opts...).ToFunc()
}

// ByPlantingDate orders the results by the planting_date field.
func ByPlantingDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlantingDate, opts...).ToFunc()
}

// ByWateringFrequencyDays orders the results by the watering_frequency_days field.
func ByWateringFrequencyDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWateringFrequencyDays, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByFarmField orders the results by farm field.
func ByFarmField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFarmStep(), sql.OrderByField(field, opts...))
	}
}

// ByPhysicalBlockField orders the results by physical_block field.
func ByPhysicalBlockField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPhysicalBlockStep(), sql.OrderByField(field, opts...))
	}
}

// ByArchivedCyclesCount orders the results by archived_cycles count.
func ByArchivedCyclesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newArchivedCyclesStep(), opts...)
	}
}

// ByArchivedCycles orders the results by archived_cycles terms.
func ByArchivedCycles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newArchivedCyclesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByHarvestsCount orders the results by harvests count.
func ByHarvestsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHarvestsStep(), opts...)
	}
}

// ByHarvests orders the results by harvests terms.
func ByHarvests(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHarvestsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFarmStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FarmInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FarmTable, FarmColumn),
	)
}
func newPhysicalBlockStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PhysicalBlockInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PhysicalBlockTable, PhysicalBlockColumn),
	)
}
func newArchivedCyclesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ArchivedCyclesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ArchivedCyclesTable, ArchivedCyclesColumn),
	)
}
func newHarvestsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HarvestsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HarvestsTable, HarvestsColumn),
	)
}
