package output

import (
	"github.com/rpgo/numwords/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the report as a YAML document.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *domain.Report) ([]byte, error) {
	return yaml.Marshal(report)
}
