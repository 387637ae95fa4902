package legacy

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agrobase-io/agrobase/constants"
	"github.com/agrobase-io/agrobase/internal/entity"
	"github.com/agrobase-io/agrobase/internal/lifecycle"
)

// MappingError marks a tuple that could not become a canonical entity.
// It carries the skip-reason code the run summary counts it under; the
// batch continues past it.
type MappingError struct {
	Table  constants.LegacyTable
	Field  string
	Reason constants.SkipReason
	Cause  error
}

func (e *MappingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: field %q: %v", e.Table, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s: field %q: %s", e.Table, e.Field, e.Reason)
}

func (e *MappingError) Unwrap() error { return e.Cause }

// Mapper turns raw tuples into typed candidate records per known table
// layout, resolving farm references through the run's reference table and
// block references through the block index the blocks pass fills.
type Mapper struct {
	farms  *ReferenceTable
	blocks *BlockIndex
	logger *slog.Logger
}

func NewMapper(farms *ReferenceTable, blocks *BlockIndex, logger *slog.Logger) *Mapper {
	if blocks == nil {
		blocks = NewBlockIndex()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{farms: farms, blocks: blocks, logger: logger}
}

// Map converts one tuple for the given table. The returned error, when not
// nil, is always a *MappingError; callers count it and move on.
func (m *Mapper) Map(table constants.LegacyTable, t RawTuple) (entity.Canonical, error) {
	want, ok := tableArity[table]
	if !ok {
		return nil, &MappingError{Table: table, Field: "table", Reason: constants.SkipMalformed,
			Cause: fmt.Errorf("unknown table layout %q", table)}
	}
	if len(t) != want {
		return nil, &MappingError{Table: table, Field: "arity", Reason: constants.SkipMalformed,
			Cause: fmt.Errorf("got %d fields, want %d", len(t), want)}
	}

	switch table {
	case constants.TablePhysicalBlocks:
		return m.mapPhysicalBlock(t)
	case constants.TableBlocks:
		return m.mapBlock(t)
	case constants.TableArchivedCycles:
		return m.mapArchivedCycle(t)
	case constants.TableHarvests:
		return m.mapHarvest(t)
	case constants.TablePrices:
		return m.mapPrice(t)
	}
	return nil, &MappingError{Table: table, Field: "table", Reason: constants.SkipMalformed,
		Cause: fmt.Errorf("unhandled table %q", table)}
}

// requireRef extracts the natural key; its absence is the one unconditional
// mapping failure.
func requireRef(table constants.LegacyTable, raw string) (string, error) {
	ref, ok := coerceString(raw)
	if !ok || ref == "" {
		return "", &MappingError{Table: table, Field: "ref", Reason: constants.SkipMissingRequired}
	}
	return ref, nil
}

func (m *Mapper) mapPhysicalBlock(t RawTuple) (entity.Canonical, error) {
	const table = constants.TablePhysicalBlocks

	ref, err := requireRef(table, t[1])
	if err != nil {
		return nil, err
	}
	name, _ := coerceString(t[2])
	farmName, _ := coerceString(t[3])

	farm, ok := m.farms.Resolve(ref, farmName)
	if !ok {
		return nil, &MappingError{Table: table, Field: "farm", Reason: constants.SkipUnresolvedRef,
			Cause: fmt.Errorf("no farm for code %q name %q", ref, farmName)}
	}

	area, err := coerceFloat(t[4])
	if err != nil {
		return nil, &MappingError{Table: table, Field: "area_sq_m", Reason: constants.SkipMissingRequired, Cause: err}
	}

	now := time.Now().UTC()
	return &entity.PhysicalBlock{
		ID:         coerceEntityID(t[0], table, ref),
		FarmID:     farm.ID,
		LegacyCode: ref,
		Name:       name,
		AreaSqM:    area,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

func (m *Mapper) mapBlock(t RawTuple) (entity.Canonical, error) {
	const table = constants.TableBlocks

	// Anchored layout: t[0] is the settings blob, t[1:] the flat fields.
	ref, err := requireRef(table, t[2])
	if err != nil {
		return nil, err
	}

	farm, ok := m.farms.Resolve(ref, "")
	if !ok {
		return nil, &MappingError{Table: table, Field: "farm", Reason: constants.SkipUnresolvedRef,
			Cause: fmt.Errorf("no farm prefix matches %q", ref)}
	}

	settings, err := ParseBlockSettings(t[0])
	if err != nil {
		// Settings are advisory: keep the row on defaults.
		m.logger.Warn("invalid block settings blob, using defaults", "ref", ref, "error", err)
	}

	blockType, ok := coerceString(t[3])
	if !ok {
		blockType = constants.DefaultBlockType
	}
	capacity, err := coerceInt(t[4], 0)
	if err != nil {
		return nil, &MappingError{Table: table, Field: "max_capacity", Reason: constants.SkipMissingRequired, Cause: err}
	}
	planting, err := coerceDate(t[6])
	if err != nil {
		return nil, &MappingError{Table: table, Field: "planting_date", Reason: constants.SkipMissingRequired, Cause: err}
	}
	cropName, _ := coerceString(t[7])

	id := coerceEntityID(t[1], table, ref)
	m.blocks.Add(ref, id)

	now := time.Now().UTC()
	return &entity.Block{
		ID:                    id,
		FarmID:                farm.ID,
		LegacyCode:            ref,
		SequenceNumber:        sequenceFromRef(ref),
		BlockType:             strings.ToLower(blockType),
		MaxCapacity:           capacity,
		State:                 stateFromLegacy(t[5], planting),
		CropName:              cropName,
		PlantingDate:          planting,
		WateringFrequencyDays: settings.WateringFrequencyDays,
		CreatedAt:             now,
		UpdatedAt:             now,
	}, nil
}

func (m *Mapper) mapArchivedCycle(t RawTuple) (entity.Canonical, error) {
	const table = constants.TableArchivedCycles

	ref, err := requireRef(table, t[1])
	if err != nil {
		return nil, err
	}
	blockRef, ok := coerceString(t[2])
	if !ok {
		return nil, &MappingError{Table: table, Field: "block_ref", Reason: constants.SkipMissingRequired}
	}

	farm, resolved := m.farms.Resolve(blockRef, "")
	if !resolved {
		return nil, &MappingError{Table: table, Field: "farm", Reason: constants.SkipUnresolvedRef,
			Cause: fmt.Errorf("no farm prefix matches block %q", blockRef)}
	}
	blockID, ok := m.blocks.Lookup(blockRef)
	if !ok {
		return nil, &MappingError{Table: table, Field: "block", Reason: constants.SkipUnresolvedRef,
			Cause: fmt.Errorf("no ingested block for ref %q", blockRef)}
	}

	cropName, _ := coerceString(t[3])
	planting, err := coerceDate(t[4])
	if err != nil || planting == nil {
		return nil, &MappingError{Table: table, Field: "planting_date", Reason: constants.SkipMissingRequired, Cause: err}
	}
	cleared, err := coerceDate(t[5])
	if err != nil {
		return nil, &MappingError{Table: table, Field: "cleared_date", Reason: constants.SkipMissingRequired, Cause: err}
	}
	yieldKg, err := coerceFloat(t[6])
	if err != nil {
		return nil, &MappingError{Table: table, Field: "yield_kg", Reason: constants.SkipMissingRequired, Cause: err}
	}

	return &entity.ArchivedCycle{
		ID:           coerceEntityID(t[0], table, ref),
		BlockID:      blockID,
		FarmID:       farm.ID,
		LegacyCode:   ref,
		CropName:     cropName,
		PlantingDate: *planting,
		ClearedDate:  cleared,
		YieldKg:      yieldKg,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func (m *Mapper) mapHarvest(t RawTuple) (entity.Canonical, error) {
	const table = constants.TableHarvests

	ref, err := requireRef(table, t[1])
	if err != nil {
		return nil, err
	}
	blockRef, ok := coerceString(t[2])
	if !ok {
		return nil, &MappingError{Table: table, Field: "block_ref", Reason: constants.SkipMissingRequired}
	}
	blockID, ok := m.blocks.Lookup(blockRef)
	if !ok {
		return nil, &MappingError{Table: table, Field: "block", Reason: constants.SkipUnresolvedRef,
			Cause: fmt.Errorf("no ingested block for ref %q", blockRef)}
	}
	cropName, _ := coerceString(t[3])
	date, err := coerceDate(t[4])
	if err != nil || date == nil {
		return nil, &MappingError{Table: table, Field: "date", Reason: constants.SkipMissingRequired, Cause: err}
	}
	qty, err := coerceFloat(t[5])
	if err != nil || qty == nil {
		return nil, &MappingError{Table: table, Field: "quantity_kg", Reason: constants.SkipMissingRequired, Cause: err}
	}
	grade, _ := coerceString(t[6])

	return &entity.Harvest{
		ID:         coerceEntityID(t[0], table, ref),
		BlockID:    blockID,
		LegacyCode: ref,
		CropName:   cropName,
		Date:       *date,
		QuantityKg: *qty,
		Grade:      grade,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (m *Mapper) mapPrice(t RawTuple) (entity.Canonical, error) {
	const table = constants.TablePrices

	ref, err := requireRef(table, t[1])
	if err != nil {
		return nil, err
	}
	cropName, ok := coerceString(t[2])
	if !ok {
		return nil, &MappingError{Table: table, Field: "crop_name", Reason: constants.SkipMissingRequired}
	}
	date, err := coerceDate(t[3])
	if err != nil || date == nil {
		return nil, &MappingError{Table: table, Field: "date", Reason: constants.SkipMissingRequired, Cause: err}
	}
	price, err := coerceFloat(t[4])
	if err != nil || price == nil {
		return nil, &MappingError{Table: table, Field: "price_per_kg", Reason: constants.SkipMissingRequired, Cause: err}
	}
	currency, ok := coerceString(t[5])
	if !ok {
		currency = constants.DefaultCurrencyCode
	}

	return &entity.PriceRecord{
		ID:           coerceEntityID(t[0], table, ref),
		LegacyCode:   ref,
		CropName:     cropName,
		Date:         *date,
		PricePerKg:   *price,
		CurrencyCode: strings.ToUpper(currency),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// stateFromLegacy normalizes the legacy state column. Unknown or absent
// values fall back on what the planting date implies.
func stateFromLegacy(raw string, planting *time.Time) lifecycle.State {
	if s, ok := coerceString(raw); ok {
		st := lifecycle.State(strings.ToUpper(strings.TrimSpace(s)))
		if st.Valid() {
			return st
		}
	}
	if planting != nil {
		return lifecycle.StatePlanned
	}
	return lifecycle.StateEmpty
}
