package pwdriver

import (
	"fmt"
	"strings"

	"visage.dev/pkg/visage/pkg/driver"
)

const textInputs = `input:not([type=checkbox]):not([type=radio]):not([type=submit])` +
	`:not([type=button]):not([type=reset]):not([type=image]):not([type=hidden]):not([type=file])`

// kindSelectors lists the CSS alternatives matching each element kind.
var kindSelectors = map[driver.ElementKind][]string{
	driver.TextField:     {textInputs},
	driver.TextArea:      {"textarea"},
	driver.Button:        {"button", "input[type=submit]", "input[type=button]", "input[type=reset]", "input[type=image]"},
	driver.Link:          {"a"},
	driver.SelectList:    {"select"},
	driver.Checkbox:      {"input[type=checkbox]"},
	driver.Radio:         {"input[type=radio]"},
	driver.CheckboxGroup: {"input[type=checkbox]"},
	driver.RadioGroup:    {"input[type=radio]"},
	driver.Frame:         {"iframe", "frame"},
	driver.AnyElement:    {"*"},
}

// cssString quotes s as a CSS string literal.
func cssString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\a `).Replace(s) + `"`
}

func withSuffix(parts []string, suffix string) string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = part + suffix
	}

	return strings.Join(out, ", ")
}

// selectorFor compiles a lookup of kind into a playwright selector. Index
// and label lookups are handled by the caller and get the bare kind
// selector here.
func selectorFor(kind driver.ElementKind, lookup driver.Lookup) (string, error) {
	parts, ok := kindSelectors[kind]
	if !ok {
		return "", fmt.Errorf("pwdriver: unsupported element kind %q", kind)
	}

	switch lookup.How {
	case driver.ByID:
		return withSuffix(parts, "[id="+cssString(lookup.What)+"]"), nil
	case driver.ByName:
		return withSuffix(parts, "[name="+cssString(lookup.What)+"]"), nil
	case driver.ByValue:
		return withSuffix(parts, "[value="+cssString(lookup.What)+"]"), nil
	case driver.ByClass:
		return withSuffix(parts, "[class~="+cssString(lookup.What)+"]"), nil
	case driver.ByText:
		return withSuffix(parts, ":text-is("+cssString(lookup.What)+")") + ", " +
			withSuffix(parts, "[value="+cssString(lookup.What)+"]"), nil
	case driver.ByCSS:
		return "css=" + lookup.What, nil
	case driver.ByXPath:
		return "xpath=" + lookup.What, nil
	case driver.ByIndex, driver.ByLabel:
		return strings.Join(parts, ", "), nil
	}

	return "", fmt.Errorf("pwdriver: unsupported lookup strategy %q", lookup.How)
}
