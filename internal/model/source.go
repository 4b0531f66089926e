// Package model defines the data structures shared by the visage command.
package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Path represents a file system path.
type Path string

// LocatorSpec is one locator as written in a face file.
type LocatorSpec struct {
	Kind  string `yaml:"kind"`
	How   string `yaml:"how,omitempty"`
	What  string `yaml:"what,omitempty"`
	Extra any    `yaml:"extra,omitempty"`
}

// FaceSpec is one named face. Exactly one of Kind or Within is set:
// Kind describes a locator, Within a path of nested locators.
type FaceSpec struct {
	Name string `yaml:"-"`

	LocatorSpec `yaml:",inline"`

	Within []LocatorSpec `yaml:"within,omitempty"`
}

// FaceSpecs keeps the document order of the faces mapping.
type FaceSpecs []FaceSpec

// UnmarshalYAML decodes a mapping of name to face spec in order.
func (s *FaceSpecs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: faces must be a mapping", node.Line)
	}

	specs := make(FaceSpecs, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var spec FaceSpec
		if err := value.Decode(&spec); err != nil {
			return fmt.Errorf("face %q: %w", key.Value, err)
		}

		spec.Name = key.Value
		specs = append(specs, spec)
	}

	*s = specs

	return nil
}

// MarshalYAML encodes the faces as a mapping in order.
func (s FaceSpecs) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, spec := range s {
		var value yaml.Node
		if err := value.Encode(spec); err != nil {
			return nil, fmt.Errorf("face %q: %w", spec.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: spec.Name},
			&value,
		)
	}

	return node, nil
}

// FaceFile is a parsed face file.
type FaceFile struct {
	Path  Path      `yaml:"-"`
	Frame string    `yaml:"frame,omitempty"`
	Faces FaceSpecs `yaml:"faces"`
}
