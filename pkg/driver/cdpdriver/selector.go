package cdpdriver

import (
	"fmt"
	"strings"

	"visage.dev/pkg/visage/pkg/driver"
)

const textInputs = `input:not([type=checkbox]):not([type=radio]):not([type=submit])` +
	`:not([type=button]):not([type=reset]):not([type=image]):not([type=hidden]):not([type=file])`

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

func cssString(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

func withSuffix(parts []string, suffix string) string {
	out := make([]string, len(parts))
	for i, part := range parts {
		out[i] = part + suffix
	}

	return strings.Join(out, ", ")
}

// query is a compiled lookup: a CSS selector, or an XPath expression when
// xpath is set.
type query struct {
	selector string
	xpath    bool
}

// compile turns a lookup of kind into a query. Text lookups only match
// value attributes in CSS; visible text is matched with XPath.
func compile(kind driver.ElementKind, lookup driver.Lookup) (query, error) {
	parts, ok := kindSelectors[kind]
	if !ok {
		return query{}, fmt.Errorf("cdpdriver: unsupported element kind %q", kind)
	}

	switch lookup.How {
	case driver.ByID:
		return query{selector: withSuffix(parts, "[id="+cssString(lookup.What)+"]")}, nil
	case driver.ByName:
		return query{selector: withSuffix(parts, "[name="+cssString(lookup.What)+"]")}, nil
	case driver.ByValue:
		return query{selector: withSuffix(parts, "[value="+cssString(lookup.What)+"]")}, nil
	case driver.ByClass:
		return query{selector: withSuffix(parts, "[class~="+cssString(lookup.What)+"]")}, nil
	case driver.ByCSS:
		return query{selector: lookup.What}, nil
	case driver.ByXPath:
		return query{selector: lookup.What, xpath: true}, nil
	case driver.ByText:
		return query{selector: fmt.Sprintf(`//*[normalize-space(.)=%s or @value=%s]`, xpathString(lookup.What), xpathString(lookup.What)), xpath: true}, nil
	case driver.ByIndex:
		return query{selector: strings.Join(parts, ", ")}, nil
	}

	return query{}, fmt.Errorf("cdpdriver: unsupported lookup strategy %q", lookup.How)
}

// xpathString quotes s as an XPath literal, using concat() when s holds
// both quote kinds.
func xpathString(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	if !strings.Contains(s, `'`) {
		return `'` + s + `'`
	}

	parts := strings.Split(s, `"`)
	quoted := make([]string, len(parts))

	for i, p := range parts {
		quoted[i] = `"` + p + `"`
	}

	return "concat(" + strings.Join(quoted, `, '"', `) + ")"
}
