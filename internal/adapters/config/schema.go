package config

import (
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Projectfile represents the structure of the dynver.yaml configuration file.
type Projectfile struct {
	Version      string          `yaml:"version"`
	Policy       PolicyDTO       `yaml:"policy"`
	Repositories []RepositoryDTO `yaml:"repositories"`
	Dependencies []DependencyDTO `yaml:"dependencies"`
}

// PolicyDTO holds the cache timeouts as duration strings (e.g. "24h", "10m").
type PolicyDTO struct {
	DynamicVersionsTimeout string `yaml:"dynamicVersionsTimeout"`
	ChangingModulesTimeout string `yaml:"changingModulesTimeout"`
}

// RepositoryDTO represents a repository definition in the configuration.
type RepositoryDTO struct {
	ID       string              `yaml:"id"`
	Type     string              `yaml:"type"`
	URL      string              `yaml:"url"`
	Versions map[string][]string `yaml:"versions"`
}

// DependencyDTO represents a dependency declaration. It accepts either the
// short "group:name:selector" scalar or a mapping with explicit fields.
type DependencyDTO struct {
	Module   string `yaml:"module"`
	Version  string `yaml:"version"`
	Changing bool   `yaml:"changing"`
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *DependencyDTO) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		parts := strings.SplitN(value.Value, ":", 3)
		if len(parts) != 3 {
			err := zerr.With(zerr.New("expected 'group:name:selector'"), "dependency", value.Value)
			return zerr.With(err, "line", value.Line)
		}
		d.Module = parts[0] + ":" + parts[1]
		d.Version = parts[2]
		return nil
	}

	type plain DependencyDTO
	return value.Decode((*plain)(d))
}
