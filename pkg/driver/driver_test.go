package driver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseElementKind(t *testing.T) {
	tests := []struct {
		in      string
		want    ElementKind
		wantErr bool
	}{
		{"text_field", TextField, false},
		{"Text-Field", TextField, false},
		{" radio group ", RadioGroup, false},
		{"select_list", SelectList, false},
		{"blink", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseElementKind(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestControlKind_IsChoiceGroup(t *testing.T) {
	choice := map[ControlKind]bool{
		KindSelectList:    true,
		KindCheckboxGroup: true,
		KindRadioGroup:    true,
	}

	for _, kind := range ElementKinds() {
		ck := kind.ControlKind()
		assert.NotEqual(t, KindUnknown, ck, kind)
		assert.Equal(t, choice[ck], ck.IsChoiceGroup(), ck.String())
	}

	assert.Equal(t, "radio_group", KindRadioGroup.String())
	assert.Equal(t, "ControlKind(99)", ControlKind(99).String())
	assert.Equal(t, KindUnknown, ElementKind("blink").ControlKind())
}

func TestParseLookup(t *testing.T) {
	tests := []struct {
		name    string
		kind    ElementKind
		args    []any
		want    Lookup
		wantErr bool
	}{
		{"strategy", TextField, []any{ByName, "q"}, Lookup{How: ByName, What: "q"}, false},
		{"string strategy", TextField, []any{"css", "#q"}, Lookup{How: ByCSS, What: "#q"}, false},
		{"extra", SelectList, []any{ByID, "s", "first"}, Lookup{How: ByID, What: "s", Extra: "first"}, false},
		{"int value", Radio, []any{ByIndex, 2}, Lookup{How: ByIndex, What: "2"}, false},
		{"group name", RadioGroup, []any{"meals"}, Lookup{How: ByName, What: "meals"}, false},
		{"sole id", Button, []any{"go"}, Lookup{How: ByID, What: "go"}, false},
		{"kind name", Button, []any{"button"}, Lookup{How: ByIndex, What: "0"}, false},
		{"no args", Button, nil, Lookup{}, true},
		{"bad strategy", Button, []any{"bogus", "x"}, Lookup{}, true},
		{"non-string strategy", Button, []any{7, "x"}, Lookup{}, true},
		{"too many", Button, []any{ByID, "a", 1, 2}, Lookup{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLookup(tt.kind, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Index(t *testing.T) {
	n, err := Lookup{How: ByIndex, What: "3"}.Index()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = Lookup{How: ByIndex, What: "-1"}.Index()
	assert.Error(t, err)
}

func TestOperations(t *testing.T) {
	ops := Operations{
		"title": func(_ context.Context, _ ...any) (any, error) { return "t", nil },
		"echo": func(_ context.Context, args ...any) (any, error) {
			return StringArg(args, 0)
		},
	}

	assert.True(t, ops.Supports("title"))
	assert.False(t, ops.Supports("url"))
	assert.Equal(t, []string{"echo", "title"}, ops.Names())

	got, err := ops.Invoke(context.Background(), "echo", "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	_, err = ops.Invoke(context.Background(), "echo", 1)
	assert.Error(t, err)

	_, err = ops.Invoke(context.Background(), "url")
	assert.Error(t, err)
}

func TestValueConversions(t *testing.T) {
	for _, in := range []any{true, "on", "yes", "true", "1", 1} {
		b, err := ToBool(in)
		require.NoError(t, err, in)
		assert.True(t, b, in)
	}

	for _, in := range []any{false, "off", "", "false", 0} {
		b, err := ToBool(in)
		require.NoError(t, err, in)
		assert.False(t, b, in)
	}

	_, err := ToBool(3.5)
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	s, err := ToString(42)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = ToString([]int{1})
	assert.ErrorIs(t, err, ErrUnsupportedValue)

	list, err := ToStrings([]any{"a", 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "1"}, list)

	list, err = ToStrings("solo")
	require.NoError(t, err)
	assert.Equal(t, []string{"solo"}, list)
}
