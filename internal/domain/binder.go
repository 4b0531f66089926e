// Package domain implements the visage workflows on top of the adapters.
package domain

import (
	"fmt"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/driver"
	"visage.dev/pkg/visage/pkg/face"
)

// BuildRegistry turns a face file into a registry. Locator specs become
// Locators, within paths become access expressions.
func BuildRegistry(file m.FaceFile) (*face.Registry, error) {
	bindings := make(face.Bindings, 0, len(file.Faces))

	for _, spec := range file.Faces {
		definition, err := definitionFor(spec)
		if err != nil {
			return nil, &face.ConfigurationError{Name: spec.Name, Definition: spec, Reason: err.Error()}
		}

		bindings = append(bindings, face.Binding{Name: spec.Name, Definition: definition})
	}

	registry := face.NewRegistry()
	if err := registry.RegisterMany(bindings); err != nil {
		return nil, err
	}

	if file.Frame != "" && !registry.Has(file.Frame) {
		return nil, fmt.Errorf("frame %q is not a face in %s", file.Frame, file.Path)
	}

	return registry, nil
}

func definitionFor(spec m.FaceSpec) (face.Face, error) {
	if len(spec.Within) == 0 {
		return locatorFor(spec.LocatorSpec)
	}

	if spec.Kind != "" {
		return nil, fmt.Errorf("kind and within are exclusive")
	}

	path := make([]face.Locator, 0, len(spec.Within))

	for i, step := range spec.Within {
		locator, err := locatorFor(step)
		if err != nil {
			return nil, fmt.Errorf("within[%d]: %w", i, err)
		}

		path = append(path, locator)
	}

	return face.Within(path...), nil
}

func locatorFor(spec m.LocatorSpec) (face.Locator, error) {
	if spec.Kind == "" {
		return face.Locator{}, fmt.Errorf("missing kind")
	}

	kind, err := driver.ParseElementKind(spec.Kind)
	if err != nil {
		return face.Locator{}, err
	}

	if spec.How == "" {
		if spec.Extra != nil {
			return face.Locator{}, fmt.Errorf("extra needs a lookup strategy")
		}

		return face.Locator{Kind: kind, What: spec.What, Extra: spec.Extra}, nil
	}

	how, err := driver.ParseHow(spec.How)
	if err != nil {
		return face.Locator{}, err
	}

	return face.Locator{Kind: kind, How: how, What: spec.What, Extra: spec.Extra}, nil
}
