package face

import (
	"context"

	"visage.dev/pkg/visage/pkg/driver"
)

// Spray writes every field into the control its name resolves to, in
// order. It stops at the first failure; earlier writes are not undone.
func (s *Scope) Spray(ctx context.Context, fields Fields) error {
	for _, field := range fields {
		control, err := s.Face(ctx, field.Name)
		if err != nil {
			return err
		}

		s.logger.Debug("spray", "name", field.Name, "kind", control.Kind())

		if err := control.Set(ctx, field.Value); err != nil {
			return err
		}
	}

	return nil
}

// Scrape reads every named control, in order. Choice groups are read with
// Selected and everything else with Value. Empty reads are kept.
func (s *Scope) Scrape(ctx context.Context, names ...string) (Fields, error) {
	fields := make(Fields, 0, len(names))

	for _, name := range names {
		control, err := s.Face(ctx, name)
		if err != nil {
			return nil, err
		}

		value, err := read(ctx, control)
		if err != nil {
			return nil, err
		}

		s.logger.Debug("scrape", "name", name, "kind", control.Kind())

		fields = append(fields, Field{Name: name, Value: value})
	}

	return fields, nil
}

// ScrapeAll scrapes every registered name in registration order.
func (s *Scope) ScrapeAll(ctx context.Context) (Fields, error) {
	return s.Scrape(ctx, s.registry.Names()...)
}

func read(ctx context.Context, control driver.Control) (any, error) {
	if control.Kind().IsChoiceGroup() {
		return control.Selected(ctx)
	}

	return control.Value(ctx)
}
