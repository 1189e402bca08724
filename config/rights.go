package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	creator "github.com/xml-creator/xml-creator"
)

// LoadRights reads a rights dictionary. The 'rights' key may either be a mapping, in which case the
// keys are the right names, or a list of right names.
func LoadRights(path string) ([]string, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read rights file %v (%v)", creator.ErrConfiguration, path, err)
	}

	var doc struct {
		Rights yaml.Node `yaml:"rights"`
	}

	if err := yaml.Unmarshal(bytes, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid rights file %v (%v)", creator.ErrConfiguration, path, err)
	}

	rights := []string{}
	node := doc.Rights

	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i < len(node.Content); i += 2 {
			rights = append(rights, node.Content[i].Value)
		}

	case yaml.SequenceNode:
		for _, v := range node.Content {
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: invalid entry in rights file %v (line %v)", creator.ErrConfiguration, path, v.Line)
			}

			rights = append(rights, v.Value)
		}

	default:
		return nil, fmt.Errorf("%w: missing 'rights' in %v", creator.ErrConfiguration, path)
	}

	return rights, nil
}
