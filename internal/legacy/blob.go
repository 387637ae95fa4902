package legacy

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/agrobase-io/agrobase/constants"
)

// BlockSettings is the embedded JSON blob a legacy blocks row carries.
// Settings are advisory; an invalid blob degrades to defaults instead of
// dropping the row.
type BlockSettings struct {
	WateringFrequencyDays int      `json:"watering_frequency_days"`
	TargetHumidityPct     *int     `json:"target_humidity_pct,omitempty"`
	TargetTempC           *float64 `json:"target_temp_c,omitempty"`
	Irrigation            string   `json:"irrigation,omitempty"`
}

// buildBlockSettingsSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, used to validate blob contents before unmarshalling.
func buildBlockSettingsSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"watering_frequency_days": map[string]any{"type": "integer", "minimum": 0},
			"target_humidity_pct":     map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
			"target_temp_c":           map[string]any{"type": "number"},
			"irrigation":              map[string]any{"type": "string"},
		},
	}
}

// validateJSONAgainstSchema validates data against schemaMap.
func validateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// ParseBlockSettings parses and validates a settings blob. On any failure it
// returns defaults along with the error so the caller can keep the row.
func ParseBlockSettings(blob string) (BlockSettings, error) {
	defaults := BlockSettings{
		WateringFrequencyDays: constants.DefaultWateringFrequencyDays,
	}
	if isNull(blob) {
		return defaults, nil
	}
	raw := []byte(unquote(blob))
	if err := validateJSONAgainstSchema(buildBlockSettingsSchema(), raw); err != nil {
		return defaults, err
	}
	var s BlockSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return defaults, err
	}
	if s.WateringFrequencyDays <= 0 {
		s.WateringFrequencyDays = constants.DefaultWateringFrequencyDays
	}
	return s, nil
}
