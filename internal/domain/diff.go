package domain

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"

	"visage.dev/pkg/visage/pkg/driver"
	"visage.dev/pkg/visage/pkg/face"
)

// unifiedDiff renders expected and actual as YAML and diffs them line by
// line. Equal data yields an empty string.
func unifiedDiff(expected, actual face.Fields, fromFile, toFile string) (string, error) {
	a, err := yaml.Marshal(canonical(expected))
	if err != nil {
		return "", fmt.Errorf("render expected data: %w", err)
	}

	b, err := yaml.Marshal(canonical(actual))
	if err != nil {
		return "", fmt.Errorf("render scraped data: %w", err)
	}

	if string(a) == string(b) {
		return "", nil
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(a)),
		B:        difflib.SplitLines(string(b)),
		FromFile: fromFile,
		ToFile:   toFile,
		Context:  3,
	})
}

// canonical compares values the way a page holds them: booleans stay
// booleans, lists become string lists, everything else is text.
func canonical(fields face.Fields) face.Fields {
	out := make(face.Fields, 0, len(fields))

	for _, field := range fields {
		out = append(out, face.Field{Name: field.Name, Value: canonicalValue(field.Value)})
	}

	return out
}

func canonicalValue(v any) any {
	switch v := v.(type) {
	case bool:
		return v
	case nil:
		return ""
	case []string:
		return v
	case []any:
		values, err := driver.ToStrings(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return values
	}

	s, err := driver.ToString(v)
	if err != nil {
		return fmt.Sprint(v)
	}

	return s
}
