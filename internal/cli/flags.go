package cli

import "github.com/rpgo/numwords/internal/domain"

// Flags holds all command-line flag values
type Flags struct {
	// Global flags
	CfgFile string
	Format  string
	Places  int32
	MaxSpan uint64
	Verbose bool

	// decode
	Each bool

	// config
	Example bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	defaults := domain.DefaultSettings()
	return &Flags{
		Format:  defaults.Format,
		Places:  defaults.FractionPlaces,
		MaxSpan: defaults.MaxRangeSpan,
	}
}
