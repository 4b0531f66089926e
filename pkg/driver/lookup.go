package driver

import (
	"fmt"
	"strconv"
	"strings"
)

// How is a lookup strategy.
type How string

// Lookup strategies understood by the bundled backends.
const (
	ByID    How = "id"
	ByName  How = "name"
	ByCSS   How = "css"
	ByXPath How = "xpath"
	ByClass How = "class"
	ByText  How = "text"
	ByValue How = "value"
	ByLabel How = "label"
	ByIndex How = "index"
)

var strategies = map[How]struct{}{
	ByID: {}, ByName: {}, ByCSS: {}, ByXPath: {}, ByClass: {},
	ByText: {}, ByValue: {}, ByLabel: {}, ByIndex: {},
}

// ParseHow validates a strategy name.
func ParseHow(name string) (How, error) {
	how := How(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := strategies[how]; !ok {
		return "", fmt.Errorf("unknown lookup strategy %q", name)
	}

	return how, nil
}

// Lookup is the decoded argument list of an Element.Lookup call.
type Lookup struct {
	How   How
	What  string
	Extra any
}

// HasExtra reports whether an extra positional argument was supplied.
func (l Lookup) HasExtra() bool {
	return l.Extra != nil
}

// Index returns What as a zero-based index for ByIndex lookups.
func (l Lookup) Index() (int, error) {
	n, err := strconv.Atoi(l.What)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid index %q", l.What)
	}

	return n, nil
}

func (l Lookup) String() string {
	return fmt.Sprintf("%s=%q", l.How, l.What)
}

// ParseLookup decodes Lookup arguments for kind.
//
// A single argument is the sole lookup value: a group or control name for
// radios and checkboxes, an id for everything else. When the value is the
// kind name itself the first element of that kind is meant.
func ParseLookup(kind ElementKind, args ...any) (Lookup, error) {
	switch len(args) {
	case 0:
		return Lookup{}, fmt.Errorf("%s: missing lookup arguments", kind)
	case 1:
		what := fmt.Sprint(args[0])
		if what == string(kind) {
			return Lookup{How: ByIndex, What: "0"}, nil
		}

		return Lookup{How: soleValueStrategy(kind), What: what}, nil
	case 2, 3:
		how, err := parseHowArg(args[0])
		if err != nil {
			return Lookup{}, fmt.Errorf("%s: %w", kind, err)
		}

		lookup := Lookup{How: how, What: fmt.Sprint(args[1])}
		if len(args) == 3 {
			lookup.Extra = args[2]
		}

		return lookup, nil
	}

	return Lookup{}, fmt.Errorf("%s: too many lookup arguments (%d)", kind, len(args))
}

func soleValueStrategy(kind ElementKind) How {
	switch kind {
	case RadioGroup, CheckboxGroup, Radio, Checkbox:
		return ByName
	}

	return ByID
}

func parseHowArg(arg any) (How, error) {
	switch v := arg.(type) {
	case How:
		return ParseHow(string(v))
	case string:
		return ParseHow(v)
	}

	return "", fmt.Errorf("lookup strategy must be a string, got %T", arg)
}
