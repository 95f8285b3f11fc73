package domain

// Direction tells whether a conversion spelled a number or parsed a phrase.
type Direction string

const (
	DirectionEncode Direction = "encode"
	DirectionDecode Direction = "decode"
)

// Conversion records one input and its converted form. Error is set instead
// of Output when the conversion failed.
type Conversion struct {
	Direction Direction `yaml:"direction" json:"direction"`
	Input     string    `yaml:"input" json:"input"`
	Output    string    `yaml:"output,omitempty" json:"output,omitempty"`
	Error     string    `yaml:"error,omitempty" json:"error,omitempty"`
}

// Failed reports whether the conversion produced an error
func (c Conversion) Failed() bool {
	return c.Error != ""
}

// Report collects the conversions of one batch run
type Report struct {
	Conversions []Conversion `yaml:"conversions" json:"conversions"`
	Succeeded   int          `yaml:"succeeded" json:"succeeded"`
	Failed      int          `yaml:"failed" json:"failed"`
}

// Add appends a conversion and updates the counters
func (r *Report) Add(c Conversion) {
	r.Conversions = append(r.Conversions, c)
	if c.Failed() {
		r.Failed++
	} else {
		r.Succeeded++
	}
}

// Outputs returns the outputs of the successful conversions in order
func (r *Report) Outputs() []string {
	out := make([]string, 0, r.Succeeded)
	for _, c := range r.Conversions {
		if !c.Failed() {
			out = append(out, c.Output)
		}
	}
	return out
}
