package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleScannerSplitsFlatRows(t *testing.T) {
	src := `INSERT INTO physical_blocks VALUES (1, 'A-1', 'North Bay', 'Altamira', 120.5), (2, 'TV-2', NULL, 'Tierra Verde', NULL);`

	s := NewTupleScanner(src)

	first, ok := s.Next()
	require.True(t, ok)
	require.Equal(t, RawTuple{"1", "'A-1'", "'North Bay'", "'Altamira'", "120.5"}, first)

	second, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "NULL", second[2])
	assert.Equal(t, "'Tierra Verde'", second[3])

	_, ok = s.Next()
	assert.False(t, ok)
	assert.Zero(t, s.Malformed())
}

func TestTupleScannerKeepsCommaInsideQuotes(t *testing.T) {
	src := `(1, 'A-1', 'North Bay, Upper Tier', 'Altamira', 10)`

	s := NewTupleScanner(src)
	tuple, ok := s.Next()
	require.True(t, ok)
	require.Len(t, tuple, 5)
	assert.Equal(t, "'North Bay, Upper Tier'", tuple[2])
}

func TestTupleScannerKeepsCommaInsideEmbeddedJSON(t *testing.T) {
	// The JSON object pushes bracket depth past 1, so its commas never split.
	src := `(7, 'TV-9', {"a": 1, "b": [2, 3]}, 'x', 5)`

	s := NewTupleScanner(src)
	tuple, ok := s.Next()
	require.True(t, ok)
	require.Len(t, tuple, 5)
	assert.Equal(t, `{"a": 1, "b": [2, 3]}`, tuple[2])
}

func TestTupleScannerEscapedQuotes(t *testing.T) {
	src := `(1, 'O''Brien''s plot, east', 'ok')`

	s := NewTupleScanner(src)
	tuple, ok := s.Next()
	require.True(t, ok)
	require.Len(t, tuple, 3)
	assert.Equal(t, `'O''Brien''s plot, east'`, tuple[1])
}

func TestTupleScannerSkipsUnbalanced(t *testing.T) {
	// First candidate never closes its quote before EOF-of-tuple; the second
	// parses fine.
	src := `(1, 'broken (2, 'TV-1', 'fine', 'x', 3)`

	s := NewTupleScanner(src)
	var tuples []RawTuple
	for {
		tuple, ok := s.Next()
		if !ok {
			break
		}
		tuples = append(tuples, tuple)
	}
	assert.GreaterOrEqual(t, s.Malformed(), 1)
	require.NotEmpty(t, tuples)
	assert.Equal(t, "'TV-1'", tuples[len(tuples)-1][1])
}

func TestTupleScannerReset(t *testing.T) {
	src := `(1, 'a') (2, 'b')`

	s := NewTupleScanner(src)
	var first int
	for {
		if _, ok := s.Next(); !ok {
			break
		}
		first++
	}
	require.Equal(t, 2, first)

	s.Reset()
	var second int
	for {
		if _, ok := s.Next(); !ok {
			break
		}
		second++
	}
	assert.Equal(t, first, second)
}

func TestAnchoredScannerCapturesBlobAndTrailingFields(t *testing.T) {
	src := `INSERT INTO blocks VALUES ('{"watering_frequency_days": 2, "irrigation": "drip"}', 12, 'TVGH-03', 'greenhouse', 500, 'growing', '2025-01-01', 'tomato');`

	s := NewAnchoredScanner(src, blocksBlobAnchor, blocksTrailingFields)
	tuple, ok := s.Next()
	require.True(t, ok)
	require.Len(t, tuple, 1+blocksTrailingFields)
	assert.Equal(t, `{"watering_frequency_days": 2, "irrigation": "drip"}`, tuple[0])
	assert.Equal(t, "12", tuple[1])
	assert.Equal(t, "'TVGH-03'", tuple[2])
	assert.Equal(t, "'tomato'", tuple[7])

	_, ok = s.Next()
	assert.False(t, ok)
}

func TestAnchoredScannerEscapedQuoteInTrailingField(t *testing.T) {
	// A doubled quote inside a trailing field must not end the quoted span.
	src := `('{"watering_frequency_days": 4}', 12, 'TVGH-03', 'greenhouse', 500, 'growing', '2025-01-01', 'O''Brien heirloom')`

	s := NewAnchoredScanner(src, blocksBlobAnchor, blocksTrailingFields)
	tuple, ok := s.Next()
	require.True(t, ok)
	require.Len(t, tuple, 1+blocksTrailingFields)
	assert.Equal(t, `'O''Brien heirloom'`, tuple[7])
	assert.Zero(t, s.Malformed())
}

func TestAnchoredScannerBraceInsideBlobString(t *testing.T) {
	// Braces inside JSON string values must not unbalance the backward walk.
	src := `('{"note": "a } brace", "watering_frequency_days": 4}', 12, 'TV-4', 'tunnel', 40, 'planned', '2025-02-01', 'lettuce')`

	s := NewAnchoredScanner(src, blocksBlobAnchor, blocksTrailingFields)
	tuple, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, `{"note": "a } brace", "watering_frequency_days": 4}`, tuple[0])
	assert.Equal(t, "'lettuce'", tuple[7])
	assert.Zero(t, s.Malformed())
}

func TestAnchoredScannerCountsWrongFieldCount(t *testing.T) {
	// Only five trailing fields; the row must be skipped and counted.
	src := `('{"watering_frequency_days": 4}', 12, 'TVGH-03', 'greenhouse', 500, 'growing')`

	s := NewAnchoredScanner(src, blocksBlobAnchor, blocksTrailingFields)
	_, ok := s.Next()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Malformed())
}

func TestAnchoredScannerMultipleRows(t *testing.T) {
	src := `('{"a": 1}', 1, 'TV-1', 'tunnel', 10, 'planned', '2025-02-01', 'lettuce'),
('{"b": {"c": 2}}', 2, 'TV-2', 'tunnel', 20, 'empty', NULL, NULL);`

	s := NewAnchoredScanner(src, blocksBlobAnchor, blocksTrailingFields)

	first, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, `{"a": 1}`, first[0])

	second, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, `{"b": {"c": 2}}`, second[0])
	assert.Equal(t, "NULL", second[7])

	_, ok = s.Next()
	assert.False(t, ok)
}
