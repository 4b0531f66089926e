package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return cmd, &buf
}

var searchFile = m.FaceFile{
	Path:  "search.yaml",
	Frame: "results",
	Faces: m.FaceSpecs{
		{Name: "query", LocatorSpec: m.LocatorSpec{Kind: "text_field", How: "name", What: "q"}},
		{Name: "meals_to_go", LocatorSpec: m.LocatorSpec{Kind: "radio_group", What: "meals"}},
		{Name: "third_row", LocatorSpec: m.LocatorSpec{Kind: "element", How: "index", What: "0", Extra: 2}},
		{Name: "coupon", Within: []m.LocatorSpec{
			{Kind: "element", How: "id", What: "summary"},
			{Kind: "text_field", How: "name", What: "code"},
		}},
	},
}

func testSnapshots() []m.Snapshot {
	taken := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	return []m.Snapshot{
		{
			ID:    uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			URL:   "https://shop.test/order",
			Taken: taken,
			Fields: face.Fields{
				{Name: "name", Value: "Ada"},
				{Name: "toppings", Value: []string{"olives", "basil"}},
				{Name: "subscribe", Value: false},
			},
		},
		{
			ID:    uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
			URL:   "https://shop.test/gone",
			Taken: taken,
			Err:   "404 Not Found",
		},
	}
}

func TestSimpleUI_DisplayFaces(t *testing.T) {
	cmd, buf := newTestCmd()

	require.NoError(t, NewSimpleUI(cmd).DisplayFaces(context.Background(), searchFile))

	out := buf.String()
	assert.Contains(t, out, "frame: results")
	assert.Contains(t, out, "query")
	assert.Contains(t, out, "text_field")
	assert.Contains(t, out, "meals_to_go")
	assert.Contains(t, out, "element(id=summary) > text_field(name=code)")
	assert.Contains(t, out, "TOTAL FACES 4")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("query")), bytes.Index(buf.Bytes(), []byte("meals_to_go")))
}

func TestSimpleUI_DisplaySpray(t *testing.T) {
	cmd, buf := newTestCmd()

	fields := face.Fields{{Name: "name", Value: "Ada"}, {Name: "toppings", Value: []any{"olives", 2}}}
	require.NoError(t, NewSimpleUI(cmd).DisplaySpray(context.Background(), "https://shop.test/order", fields))

	out := buf.String()
	assert.Contains(t, out, "Sprayed 2 field(s) into https://shop.test/order")
	assert.Contains(t, out, "[olives, 2]")
}

func TestSimpleUI_DisplaySnapshots(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cmd, buf := newTestCmd()

		require.NoError(t, NewSimpleUI(cmd).DisplaySnapshots(context.Background(), nil))
		assert.Equal(t, "No snapshots found\n", buf.String())
	})

	t.Run("summary and fields", func(t *testing.T) {
		cmd, buf := newTestCmd()

		require.NoError(t, NewSimpleUI(cmd).DisplaySnapshots(context.Background(), testSnapshots()))

		out := buf.String()
		assert.Contains(t, out, "6ba7b810")
		assert.Contains(t, out, "2026-03-01 09:30:00")
		assert.Contains(t, out, "error: 404 Not Found")
		assert.Contains(t, out, "1 FAILED")
		assert.Contains(t, out, "[olives, basil]")
		assert.Contains(t, out, "false")
	})
}

func TestSimpleUI_DisplayDiff(t *testing.T) {
	t.Run("no differences", func(t *testing.T) {
		cmd, buf := newTestCmd()

		require.NoError(t, NewSimpleUI(cmd).DisplayDiff(context.Background(), m.Diff{URL: "https://shop.test/order"}))
		assert.Equal(t, "No differences for https://shop.test/order\n", buf.String())
	})

	t.Run("unified diff", func(t *testing.T) {
		cmd, buf := newTestCmd()
		unified := "--- a\n+++ b\n@@ -1 +1 @@\n-name: Bob\n+name: Ada\n"

		require.NoError(t, NewSimpleUI(cmd).DisplayDiff(context.Background(), m.Diff{Unified: unified}))
		assert.Equal(t, unified, buf.String())
	})
}

func TestSimpleUI_CanceledContext(t *testing.T) {
	cmd, buf := newTestCmd()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, NewSimpleUI(cmd).DisplayFaces(ctx, searchFile), context.Canceled)
	assert.Empty(t, buf.String())
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "[a, b]", formatValue([]string{"a", "b"}))
	assert.Equal(t, "[]", formatValue([]string{}))
	assert.Equal(t, "true", formatValue(true))
	assert.Equal(t, "2", formatValue(2))
}

func TestNewUI(t *testing.T) {
	cmd, _ := newTestCmd()

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
