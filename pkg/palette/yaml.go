package palette

import (
	"bytes"
	"strings"

	"github.com/walteh/retoken/pkg/text"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

func init() {
	Register(&YAMLParser{})
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// rules is a list rather than a map so that declared order survives decoding
func (p *YAMLParser) Parse(filename string, data []byte) (*text.Table, error) {
	var raw struct {
		Name  string      `yaml:"name"`
		Rules []text.Rule `yaml:"rules"`
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &text.Table{Name: raw.Name, Rules: raw.Rules}, nil
}
