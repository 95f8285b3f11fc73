package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, "console", s.Format)
	assert.Equal(t, ShortestFraction, s.FractionPlaces)
	assert.Equal(t, DefaultMaxRangeSpan, s.MaxRangeSpan)
}

func TestSettingsUnmarshalYAML_KeepsDefaults(t *testing.T) {
	var s Settings
	require.NoError(t, yaml.Unmarshal([]byte("format: json\n"), &s))
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, ShortestFraction, s.FractionPlaces)
	assert.Equal(t, DefaultMaxRangeSpan, s.MaxRangeSpan)
}

func TestSettingsUnmarshalYAML_AllFields(t *testing.T) {
	doc := "format: csv\nfraction_places: 3\nmax_range_span: 50\n"
	var s Settings
	require.NoError(t, yaml.Unmarshal([]byte(doc), &s))
	assert.Equal(t, Settings{Format: "csv", FractionPlaces: 3, MaxRangeSpan: 50}, s)
}

func TestSettingsUnmarshalYAML_BadType(t *testing.T) {
	var s Settings
	err := yaml.Unmarshal([]byte("max_range_span: lots\n"), &s)
	assert.Error(t, err)
}

func TestReportAdd(t *testing.T) {
	var r Report
	r.Add(Conversion{Direction: DirectionEncode, Input: "1", Output: "one"})
	r.Add(Conversion{Direction: DirectionDecode, Input: "foo", Error: "unknown token"})
	r.Add(Conversion{Direction: DirectionEncode, Input: "2", Output: "two"})

	assert.Equal(t, 2, r.Succeeded)
	assert.Equal(t, 1, r.Failed)
	assert.Len(t, r.Conversions, 3)
	assert.Equal(t, []string{"one", "two"}, r.Outputs())
	assert.True(t, r.Conversions[1].Failed())
}
