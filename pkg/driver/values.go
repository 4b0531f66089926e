package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedValue is returned by backends when a write value has a type
// the target control cannot accept.
var ErrUnsupportedValue = errors.New("unsupported value")

// ErrNotWritable is returned by backends for controls without a write
// operation.
var ErrNotWritable = errors.New("control is not writable")

// ToBool converts a write value for checkable controls. Strings accept
// the usual textual booleans plus "on"/"off" and "yes"/"no".
func ToBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "on", "yes", "checked":
			return true, nil
		case "off", "no", "unchecked", "":
			return false, nil
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("%w: %q is not a boolean", ErrUnsupportedValue, v)
		}

		return b, nil
	case int:
		return v != 0, nil
	}

	return false, fmt.Errorf("%w: %T is not a boolean", ErrUnsupportedValue, value)
}

// ToString converts a write value for text controls.
func ToString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int64, float64, bool:
		return fmt.Sprint(v), nil
	case nil:
		return "", nil
	}

	return "", fmt.Errorf("%w: %T is not text", ErrUnsupportedValue, value)
}

// ToStrings converts a write value for multi-choice controls. A single
// scalar becomes a one-element list.
func ToStrings(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			s, err := ToString(item)
			if err != nil {
				return nil, err
			}

			out = append(out, s)
		}

		return out, nil
	}

	s, err := ToString(value)
	if err != nil {
		return nil, err
	}

	return []string{s}, nil
}
