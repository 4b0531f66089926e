package face

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is one name→value pair.
type Field struct {
	Name  string
	Value any
}

// Fields is an ordered name→value mapping. Spray writes in this order and
// Scrape returns values in the order names were asked for.
type Fields []Field

// Names returns the field names in order.
func (f Fields) Names() []string {
	names := make([]string, 0, len(f))
	for _, field := range f {
		names = append(names, field.Name)
	}

	return names
}

// Get returns the value of the first field called name.
func (f Fields) Get(name string) (any, bool) {
	for _, field := range f {
		if field.Name == name {
			return field.Value, true
		}
	}

	return nil, false
}

// Set replaces the value of name in place or appends a new field.
func (f *Fields) Set(name string, value any) {
	for i := range *f {
		if (*f)[i].Name == name {
			(*f)[i].Value = value
			return
		}
	}

	*f = append(*f, Field{Name: name, Value: value})
}

// Map returns the fields as a plain map; order is lost.
func (f Fields) Map() map[string]any {
	m := make(map[string]any, len(f))
	for _, field := range f {
		m[field.Name] = field.Value
	}

	return m
}

// UnmarshalYAML decodes a YAML mapping keeping document order.
func (f *Fields) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping", node.Line)
	}

	fields := make(Fields, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, valueNode := node.Content[i], node.Content[i+1]

		var value any
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("field %q: %w", key.Value, err)
		}

		fields = append(fields, Field{Name: key.Value, Value: value})
	}

	*f = fields

	return nil
}

// MarshalYAML encodes the fields as a mapping in order.
func (f Fields) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, field := range f {
		var value yaml.Node
		if err := value.Encode(field.Value); err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Name},
			&value,
		)
	}

	return node, nil
}
