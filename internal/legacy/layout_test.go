package legacy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrobase-io/agrobase/constants"
)

func TestCoerceString(t *testing.T) {
	v, ok := coerceString("'North Bay'")
	require.True(t, ok)
	assert.Equal(t, "North Bay", v)

	// Both escape styles the export uses.
	v, ok = coerceString(`'O''Brien'`)
	require.True(t, ok)
	assert.Equal(t, "O'Brien", v)

	v, ok = coerceString(`'O\'Brien'`)
	require.True(t, ok)
	assert.Equal(t, "O'Brien", v)

	for _, raw := range []string{"", "  ", "NULL", "null"} {
		_, ok := coerceString(raw)
		assert.False(t, ok, raw)
	}
}

func TestCoerceInt(t *testing.T) {
	v, err := coerceInt("500", 0)
	require.NoError(t, err)
	assert.Equal(t, 500, v)

	v, err = coerceInt("NULL", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	_, err = coerceInt("'many'", 0)
	assert.Error(t, err)
}

func TestCoerceFloat(t *testing.T) {
	v, err := coerceFloat("120.5")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.InDelta(t, 120.5, *v, 1e-9)

	v, err = coerceFloat("NULL")
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = coerceFloat("'heavy'")
	assert.Error(t, err)
}

func TestCoerceDate(t *testing.T) {
	want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"'2025-01-01'", "'2025-01-01 14:30:00'", "'2025-01-01T14:30:00Z'"} {
		got, err := coerceDate(raw)
		require.NoError(t, err, raw)
		require.NotNil(t, got, raw)
		// Time-of-day is always discarded.
		assert.Equal(t, want, *got, raw)
	}

	got, err := coerceDate("NULL")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = coerceDate("'January 1st'")
	assert.Error(t, err)
}

func TestCoerceEntityID(t *testing.T) {
	kept := coerceEntityID("'c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234'", constants.TableBlocks, "TV-2")
	assert.Equal(t, "c7a1d9ce-93b1-4f2e-9c1a-2f0f0a9b1234", kept.String())

	derived1 := coerceEntityID("12", constants.TableBlocks, "TV-2")
	derived2 := coerceEntityID("9999", constants.TableBlocks, "TV-2")
	assert.Equal(t, derived1, derived2, "derivation depends on table and ref, not the numeric id")

	otherTable := coerceEntityID("12", constants.TableHarvests, "TV-2")
	assert.NotEqual(t, derived1, otherTable)
}

func TestSequenceFromRef(t *testing.T) {
	assert.Equal(t, 21, sequenceFromRef("A-21"))
	assert.Equal(t, 3, sequenceFromRef("TVGH-3"))
	assert.Equal(t, 0, sequenceFromRef("TVGH"))
	assert.Equal(t, 0, sequenceFromRef("TV-x"))
}
