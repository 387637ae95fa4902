package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrobase-io/agrobase/constants"
)

func TestParseBlockSettings(t *testing.T) {
	s, err := ParseBlockSettings(`{"watering_frequency_days": 2, "target_humidity_pct": 70, "irrigation": "drip"}`)
	require.NoError(t, err)
	assert.Equal(t, 2, s.WateringFrequencyDays)
	require.NotNil(t, s.TargetHumidityPct)
	assert.Equal(t, 70, *s.TargetHumidityPct)
	assert.Equal(t, "drip", s.Irrigation)
}

func TestParseBlockSettingsAbsent(t *testing.T) {
	for _, blob := range []string{"", "NULL", "null"} {
		s, err := ParseBlockSettings(blob)
		require.NoError(t, err, blob)
		assert.Equal(t, constants.DefaultWateringFrequencyDays, s.WateringFrequencyDays)
	}
}

func TestParseBlockSettingsInvalid(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"wrong type", `{"watering_frequency_days": "twice"}`},
		{"humidity out of range", `{"target_humidity_pct": 140}`},
		{"not json", `{broken`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := ParseBlockSettings(tc.blob)
			require.Error(t, err)
			// Failure degrades to defaults so the row survives.
			assert.Equal(t, constants.DefaultWateringFrequencyDays, s.WateringFrequencyDays)
		})
	}
}

func TestParseBlockSettingsZeroFrequency(t *testing.T) {
	// Zero is schema-valid but meaningless as a schedule.
	s, err := ParseBlockSettings(`{"watering_frequency_days": 0}`)
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultWateringFrequencyDays, s.WateringFrequencyDays)
}

func TestParseBlockSettingsUnknownKeysTolerated(t *testing.T) {
	s, err := ParseBlockSettings(`{"watering_frequency_days": 5, "legacy_flag": true}`)
	require.NoError(t, err)
	assert.Equal(t, 5, s.WateringFrequencyDays)
}
