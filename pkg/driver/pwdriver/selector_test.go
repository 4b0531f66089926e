package pwdriver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"visage.dev/pkg/visage/pkg/driver"
)

func TestSelectorFor(t *testing.T) {
	tests := []struct {
		name    string
		kind    driver.ElementKind
		lookup  driver.Lookup
		want    string
		wantErr bool
	}{
		{
			name:   "select by id",
			kind:   driver.SelectList,
			lookup: driver.Lookup{How: driver.ByID, What: "flavour"},
			want:   `select[id="flavour"]`,
		},
		{
			name:   "button by name covers every button form",
			kind:   driver.Button,
			lookup: driver.Lookup{How: driver.ByName, What: "go"},
			want: `button[name="go"], input[type=submit][name="go"], input[type=button][name="go"], ` +
				`input[type=reset][name="go"], input[type=image][name="go"]`,
		},
		{
			name:   "radio group by name",
			kind:   driver.RadioGroup,
			lookup: driver.Lookup{How: driver.ByName, What: "meals"},
			want:   `input[type=radio][name="meals"]`,
		},
		{
			name:   "text matches text or value",
			kind:   driver.Link,
			lookup: driver.Lookup{How: driver.ByText, What: "Help"},
			want:   `a:text-is("Help"), a[value="Help"]`,
		},
		{
			name:   "class",
			kind:   driver.TextArea,
			lookup: driver.Lookup{How: driver.ByClass, What: "big"},
			want:   `textarea[class~="big"]`,
		},
		{
			name:   "quotes are escaped",
			kind:   driver.Checkbox,
			lookup: driver.Lookup{How: driver.ByValue, What: `say "hi"`},
			want:   `input[type=checkbox][value="say \"hi\""]`,
		},
		{
			name:   "raw css",
			kind:   driver.TextField,
			lookup: driver.Lookup{How: driver.ByCSS, What: "#q"},
			want:   "css=#q",
		},
		{
			name:   "xpath",
			kind:   driver.TextField,
			lookup: driver.Lookup{How: driver.ByXPath, What: "//input"},
			want:   "xpath=//input",
		},
		{
			name:   "index uses bare kind selector",
			kind:   driver.Frame,
			lookup: driver.Lookup{How: driver.ByIndex, What: "1"},
			want:   "iframe, frame",
		},
		{
			name:    "unknown kind",
			kind:    driver.ElementKind("blink"),
			lookup:  driver.Lookup{How: driver.ByID, What: "x"},
			wantErr: true,
		},
		{
			name:    "unknown strategy",
			kind:    driver.TextField,
			lookup:  driver.Lookup{How: driver.How("bogus"), What: "x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selectorFor(tt.kind, tt.lookup)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, toStringSlice([]any{"a", "b"}))
	assert.Equal(t, []string{"x"}, toStringSlice("x"))
	assert.Equal(t, []string{}, toStringSlice(nil))
}
