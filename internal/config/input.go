package config

import (
	"fmt"
	"os"

	"github.com/rpgo/numwords/internal/domain"
	"github.com/rpgo/numwords/internal/output"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of settings files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads settings from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Settings, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML settings document
func (ip *InputParser) Parse(data []byte) (*domain.Settings, error) {
	settings := domain.DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateSettings(&settings); err != nil {
		return nil, fmt.Errorf("settings validation failed: %w", err)
	}

	return &settings, nil
}

// ValidateSettings validates the loaded settings
func (ip *InputParser) ValidateSettings(settings *domain.Settings) error {
	if settings.Format == "" {
		return fmt.Errorf("format is required")
	}
	if output.GetFormatterByName(settings.Format) == nil {
		return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, settings.Format)
	}

	if settings.FractionPlaces < domain.ShortestFraction || settings.FractionPlaces > domain.MaxFractionPlaces {
		return fmt.Errorf("fraction places must be between %d and %d", domain.ShortestFraction, domain.MaxFractionPlaces)
	}

	if settings.MaxRangeSpan == 0 {
		return fmt.Errorf("max range span must be positive")
	}

	return nil
}

// SaveToFile writes settings as YAML
func (ip *InputParser) SaveToFile(settings *domain.Settings, filename string) error {
	b, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

// CreateExampleSettings returns a documented starting point for a settings file
func (ip *InputParser) CreateExampleSettings() *domain.Settings {
	s := domain.DefaultSettings()
	s.FractionPlaces = 6
	return &s
}
