package legacy

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agrobase-io/agrobase/constants"
)

// Each known table has a fixed arity and column order. Layouts are
// configuration: the dump never self-describes.
const (
	arityPhysicalBlocks = 5 // id, ref, name, farm_name, area_sq_m
	arityArchivedCycles = 7 // id, ref, block_ref, crop_name, planting_date, cleared_date, yield_kg
	arityHarvests       = 7 // id, ref, block_ref, crop_name, date, quantity_kg, grade
	arityPrices         = 6 // id, ref, crop_name, date, price_per_kg, currency

	// blocks rows embed a settings JSON blob; the anchored scanner emits the
	// blob as field 0 followed by exactly blocksTrailingFields fields:
	// id, ref, block_type, max_capacity, state, planting_date, crop_name.
	blocksTrailingFields = 7
	arityBlocks          = 1 + blocksTrailingFields

	// blocksBlobAnchor closes the embedded settings object in a blocks row.
	blocksBlobAnchor = "}'"
)

var tableArity = map[constants.LegacyTable]int{
	constants.TablePhysicalBlocks: arityPhysicalBlocks,
	constants.TableBlocks:         arityBlocks,
	constants.TableArchivedCycles: arityArchivedCycles,
	constants.TableHarvests:       arityHarvests,
	constants.TablePrices:         arityPrices,
}

// legacyDateLayouts are tried in order when coercing a date field.
var legacyDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// isNull reports whether a raw field is the export's absent-value sentinel.
func isNull(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "null", "NULL":
		return true
	}
	return false
}

// unquote strips the single-quote delimiters from a string field and undoes
// the export's quote escaping ('' and \').
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		s = s[1 : len(s)-1]
	}
	s = strings.ReplaceAll(s, "''", "'")
	s = strings.ReplaceAll(s, `\'`, "'")
	return s
}

// coerceString returns the unquoted value, or ok=false when absent.
func coerceString(s string) (string, bool) {
	if isNull(s) {
		return "", false
	}
	return unquote(s), true
}

// coerceInt parses a trimmed decimal field, using def when the field is
// empty. Defaults here are explicit business rules, not incidental values.
func coerceInt(s string, def int) (int, error) {
	if isNull(s) {
		return def, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(unquote(s)))
	if err != nil {
		return 0, fmt.Errorf("not a decimal integer: %q", s)
	}
	return v, nil
}

// coerceFloat parses a decimal field, returning nil when absent.
func coerceFloat(s string) (*float64, error) {
	if isNull(s) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(unquote(s)), 64)
	if err != nil {
		return nil, fmt.Errorf("not a decimal number: %q", s)
	}
	return &v, nil
}

// coerceDate parses a date field as date-only UTC, returning nil when absent.
func coerceDate(s string) (*time.Time, error) {
	if isNull(s) {
		return nil, nil
	}
	raw := strings.TrimSpace(unquote(s))
	for _, layout := range legacyDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, nil
		}
	}
	return nil, fmt.Errorf("unrecognized date: %q", raw)
}

// coerceEntityID keeps a UUID-shaped legacy id; anything else derives a
// stable id from the table and ref so re-runs mint the same key.
func coerceEntityID(raw string, table constants.LegacyTable, ref string) uuid.UUID {
	if id, err := uuid.Parse(unquote(raw)); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(table)+":"+ref))
}

// sequenceFromRef extracts the trailing numeric part of a block ref such as
// "A-21". Refs without a numeric suffix get sequence 0.
func sequenceFromRef(ref string) int {
	if i := strings.LastIndexByte(ref, '-'); i >= 0 {
		if n, err := strconv.Atoi(ref[i+1:]); err == nil {
			return n
		}
	}
	return 0
}
