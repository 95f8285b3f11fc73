package domain

import (
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFormat is the output format used when none is configured
	DefaultFormat = "console"
	// ShortestFraction selects the shortest round-trip fraction digits
	// instead of rounding to a fixed number of places.
	ShortestFraction int32 = -1
	// MaxFractionPlaces bounds fixed-place rounding; a float64 carries no
	// more significant digits than this.
	MaxFractionPlaces int32 = 17
	// DefaultMaxRangeSpan bounds how many numbers a single range request
	// may produce.
	DefaultMaxRangeSpan uint64 = 100000
)

// Settings holds the user configurable options of the numwords tool
type Settings struct {
	Format         string `yaml:"format" json:"format"`
	FractionPlaces int32  `yaml:"fraction_places" json:"fraction_places"`
	MaxRangeSpan   uint64 `yaml:"max_range_span" json:"max_range_span"`
}

// DefaultSettings returns the settings used when no configuration is given
func DefaultSettings() Settings {
	return Settings{
		Format:         DefaultFormat,
		FractionPlaces: ShortestFraction,
		MaxRangeSpan:   DefaultMaxRangeSpan,
	}
}

// UnmarshalYAML starts from DefaultSettings so keys missing from the
// document keep their defaults rather than zero values.
func (s *Settings) UnmarshalYAML(value *yaml.Node) error {
	type plain Settings
	aux := plain(DefaultSettings())
	if err := value.Decode(&aux); err != nil {
		return err
	}
	*s = Settings(aux)
	return nil
}
