package config

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML accepts either a bare path or a {path, column} mapping.
func (c *CSVSource) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var path string

		if err := node.Decode(&path); err != nil {
			return err
		}

		*c = CSVSource{Path: path}

		return nil

	case yaml.MappingNode:
		// Alias type drops this method so Decode does not recurse.
		type plain CSVSource

		var p plain

		if err := checkKeys(node, "path", "column"); err != nil {
			return err
		}

		if err := node.Decode(&p); err != nil {
			return err
		}

		*c = CSVSource(p)

		return nil

	default:
		return fmt.Errorf("line %d: expected path or {path, column}, got %s", node.Line, kindName(node.Kind))
	}
}

// checkKeys rejects mapping keys outside allowed. node.Decode does not
// inherit the decoder's KnownFields setting.
func checkKeys(node *yaml.Node, allowed ...string) error {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i]
		if !slices.Contains(allowed, key.Value) {
			return fmt.Errorf("line %d: field %s not found in source", key.Line, key.Value)
		}
	}

	return nil
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
