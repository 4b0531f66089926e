package driver

import (
	"fmt"
	"strings"
)

// ElementKind names a kind of element lookup, such as "text_field".
type ElementKind string

// Supported element kinds.
const (
	TextField     ElementKind = "text_field"
	TextArea      ElementKind = "text_area"
	Button        ElementKind = "button"
	Link          ElementKind = "link"
	SelectList    ElementKind = "select_list"
	Checkbox      ElementKind = "checkbox"
	Radio         ElementKind = "radio"
	CheckboxGroup ElementKind = "checkbox_group"
	RadioGroup    ElementKind = "radio_group"
	Frame         ElementKind = "frame"
	AnyElement    ElementKind = "element"
)

var elementKinds = []ElementKind{
	TextField, TextArea, Button, Link, SelectList, Checkbox, Radio,
	CheckboxGroup, RadioGroup, Frame, AnyElement,
}

// ElementKinds returns every supported element kind.
func ElementKinds() []ElementKind {
	kinds := make([]ElementKind, len(elementKinds))
	copy(kinds, elementKinds)

	return kinds
}

// ParseElementKind accepts a kind name case-insensitively; dashes and
// spaces are treated as underscores.
func ParseElementKind(name string) (ElementKind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for _, kind := range elementKinds {
		if string(kind) == normalized {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown element kind %q", name)
}

// ControlKind returns the control kind a lookup of k reports.
func (k ElementKind) ControlKind() ControlKind {
	switch k {
	case TextField, TextArea:
		return KindText
	case Button:
		return KindButton
	case Link:
		return KindLink
	case SelectList:
		return KindSelectList
	case Checkbox:
		return KindCheckbox
	case Radio:
		return KindRadio
	case CheckboxGroup:
		return KindCheckboxGroup
	case RadioGroup:
		return KindRadioGroup
	case Frame:
		return KindFrame
	case AnyElement:
		return KindElement
	}

	return KindUnknown
}

// ControlKind is the kind a resolved control reports about itself.
type ControlKind int

// Control kinds.
const (
	KindUnknown ControlKind = iota
	KindText
	KindButton
	KindLink
	KindSelectList
	KindCheckbox
	KindRadio
	KindCheckboxGroup
	KindRadioGroup
	KindFrame
	KindElement
)

var controlKindNames = [...]string{
	KindUnknown:       "unknown",
	KindText:          "text",
	KindButton:        "button",
	KindLink:          "link",
	KindSelectList:    "select_list",
	KindCheckbox:      "checkbox",
	KindRadio:         "radio",
	KindCheckboxGroup: "checkbox_group",
	KindRadioGroup:    "radio_group",
	KindFrame:         "frame",
	KindElement:       "element",
}

func (k ControlKind) String() string {
	if k < 0 || int(k) >= len(controlKindNames) {
		return fmt.Sprintf("ControlKind(%d)", int(k))
	}

	return controlKindNames[k]
}

// IsChoiceGroup reports whether reads of this kind go through Selected:
// select lists, checkbox groups and radio groups.
func (k ControlKind) IsChoiceGroup() bool {
	switch k {
	case KindSelectList, KindCheckboxGroup, KindRadioGroup:
		return true
	}

	return false
}
