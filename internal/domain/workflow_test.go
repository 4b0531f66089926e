package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

const (
	orderURL = "https://shop.test/order"
	otherURL = "https://shop.test/order?variant=b"
	payURL   = "https://shop.test/pay"
)

const orderHTML = `<form>
  <input name="name" value="Ada">
  <input type="radio" name="meals" value="pizza" checked>
  <input type="radio" name="meals" value="salad">
  <input type="checkbox" id="subscribe">
</form>`

const otherHTML = `<form>
  <input name="name" value="Grace">
  <input type="radio" name="meals" value="pizza">
  <input type="radio" name="meals" value="salad" checked>
  <input type="checkbox" id="subscribe" checked>
</form>`

const payHTML = `<iframe id="pay" srcdoc="&lt;input name=card value=4242&gt;"></iframe>`

var orderFile = m.FaceFile{Faces: m.FaceSpecs{
	{Name: "name", LocatorSpec: m.LocatorSpec{Kind: "text_field", How: "name", What: "name"}},
	{Name: "meals", LocatorSpec: m.LocatorSpec{Kind: "radio_group", What: "meals"}},
	{Name: "subscribe", LocatorSpec: m.LocatorSpec{Kind: "checkbox", How: "id", What: "subscribe"}},
}}

var payFile = m.FaceFile{Frame: "pay", Faces: m.FaceSpecs{
	{Name: "pay", LocatorSpec: m.LocatorSpec{Kind: "frame", How: "id", What: "pay"}},
	{Name: "card", LocatorSpec: m.LocatorSpec{Kind: "text_field", How: "name", What: "card"}},
}}

type fixture struct {
	files   *fakeFaceFiles
	browser *fakeBrowser
	store   *fakeStore
	ui      *recordingUI
	wf      *workflow
}

func newFixture() *fixture {
	f := &fixture{
		files: &fakeFaceFiles{
			files: map[m.Path]m.FaceFile{"order.yaml": orderFile, "pay.yaml": payFile},
			data: map[m.Path]face.Fields{
				"order.data.yaml": {{Name: "name", Value: "Bob"}, {Name: "meals", Value: "salad"}, {Name: "subscribe", Value: true}},
				"same.data.yaml":  {{Name: "meals", Value: "pizza"}, {Name: "name", Value: "Ada"}},
				"bad.data.yaml":   {{Name: "name", Value: "Bob"}, {Name: "meals", Value: "soup"}, {Name: "subscribe", Value: true}},
			},
		},
		browser: &fakeBrowser{pages: map[string]string{orderURL: orderHTML, otherURL: otherHTML, payURL: payHTML}},
		store:   &fakeStore{},
		ui:      &recordingUI{},
	}

	ids := 0
	f.wf = NewWorkflow(f.files, f.browser, f.store, f.ui).(*workflow)
	f.wf.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }
	f.wf.newID = func() uuid.UUID {
		ids++
		return uuid.NewSHA1(uuid.NameSpaceURL, []byte{byte(ids)})
	}

	return f
}

func TestWorkflow_List(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.wf.List(context.Background(), ListArgs{FaceFile: "order.yaml"}))
	require.Len(t, f.ui.faces, 1)
	assert.Equal(t, m.Path("order.yaml"), f.ui.faces[0].Path)

	err := f.wf.List(context.Background(), ListArgs{FaceFile: "missing.yaml"})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWorkflow_Spray(t *testing.T) {
	t.Run("writes data in order and saves the page", func(t *testing.T) {
		f := newFixture()
		saved := filepath.Join(t.TempDir(), "sprayed.html")

		err := f.wf.Spray(context.Background(), SprayArgs{
			FaceFile: "order.yaml",
			Data:     "order.data.yaml",
			URL:      orderURL,
			Save:     m.Path(saved),
		})
		require.NoError(t, err)

		require.Len(t, f.ui.sprays, 1)
		assert.Equal(t, []string{"name", "meals", "subscribe"}, f.ui.sprays[0].Names())
		assert.Equal(t, 1, f.browser.closed)

		content, err := os.ReadFile(saved)
		require.NoError(t, err)
		assert.Contains(t, string(content), `value="Bob"`)
		assert.Contains(t, string(content), `id="subscribe" checked=""`)
	})

	t.Run("saves the page when a face is named render", func(t *testing.T) {
		f := newFixture()
		f.files.files["render.yaml"] = m.FaceFile{Faces: m.FaceSpecs{
			{Name: "name", LocatorSpec: m.LocatorSpec{Kind: "text_field", How: "name", What: "name"}},
			{Name: "render", LocatorSpec: m.LocatorSpec{Kind: "checkbox", How: "id", What: "subscribe"}},
		}}
		f.files.data["name.data.yaml"] = face.Fields{{Name: "name", Value: "Bob"}}
		saved := filepath.Join(t.TempDir(), "sprayed.html")

		err := f.wf.Spray(context.Background(), SprayArgs{
			FaceFile: "render.yaml",
			Data:     "name.data.yaml",
			URL:      orderURL,
			Save:     m.Path(saved),
		})
		require.NoError(t, err)

		content, err := os.ReadFile(saved)
		require.NoError(t, err)
		assert.Contains(t, string(content), `value="Bob"`)
	})

	t.Run("stops at the first failing field", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Spray(context.Background(), SprayArgs{FaceFile: "order.yaml", Data: "bad.data.yaml", URL: orderURL})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "spray "+orderURL)
		assert.Empty(t, f.ui.sprays)
		assert.Equal(t, 1, f.browser.closed)
	})

	t.Run("unknown page", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Spray(context.Background(), SprayArgs{FaceFile: "order.yaml", Data: "order.data.yaml", URL: "https://shop.test/none"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}

func TestWorkflow_Scrape(t *testing.T) {
	t.Run("scrapes every url in order", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Scrape(context.Background(), ScrapeArgs{
			FaceFile: "order.yaml",
			URLs:     []string{orderURL, otherURL},
			Output:   "out",
			Threads:  2,
		})
		require.NoError(t, err)

		require.Len(t, f.store.saved, 2)
		assert.Equal(t, orderURL, f.store.saved[0].URL)
		assert.Equal(t, face.Fields{
			{Name: "name", Value: "Ada"},
			{Name: "meals", Value: "pizza"},
			{Name: "subscribe", Value: false},
		}, f.store.saved[0].Fields)
		assert.Equal(t, otherURL, f.store.saved[1].URL)
		assert.Equal(t, face.Fields{
			{Name: "name", Value: "Grace"},
			{Name: "meals", Value: "salad"},
			{Name: "subscribe", Value: true},
		}, f.store.saved[1].Fields)
		assert.NotEqual(t, f.store.saved[0].ID, f.store.saved[1].ID)
		assert.Equal(t, m.Path("order.yaml"), f.store.saved[0].FaceFile)

		require.Len(t, f.ui.snapshots, 1)
		assert.Equal(t, 2, f.browser.closed)
	})

	t.Run("named faces only", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Scrape(context.Background(), ScrapeArgs{FaceFile: "order.yaml", URLs: []string{orderURL}, Names: []string{"subscribe", "name"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"subscribe", "name"}, f.store.saved[0].Fields.Names())
	})

	t.Run("unknown name fails before opening pages", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Scrape(context.Background(), ScrapeArgs{FaceFile: "order.yaml", URLs: []string{orderURL}, Names: []string{"nope"}})
		require.ErrorIs(t, err, face.ErrUnknownFace)
		assert.Empty(t, f.browser.opened)
	})

	t.Run("failures are recorded and reported", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Scrape(context.Background(), ScrapeArgs{FaceFile: "order.yaml", URLs: []string{orderURL, "https://shop.test/gone"}})
		require.Error(t, err)
		assert.Equal(t, "1 of 2 scrapes failed", err.Error())

		require.Len(t, f.store.saved, 2)
		assert.False(t, f.store.saved[0].Failed())
		assert.True(t, f.store.saved[1].Failed())
		assert.Contains(t, f.store.saved[1].Err, "404")
	})

	t.Run("enters the frame named by the face file", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Scrape(context.Background(), ScrapeArgs{FaceFile: "pay.yaml", URLs: []string{payURL}, Names: []string{"card"}})
		require.NoError(t, err)
		assert.Equal(t, face.Fields{{Name: "card", Value: "4242"}}, f.store.saved[0].Fields)
	})

	t.Run("no urls", func(t *testing.T) {
		f := newFixture()
		require.Error(t, f.wf.Scrape(context.Background(), ScrapeArgs{FaceFile: "order.yaml"}))
	})
}

func TestWorkflow_Diff(t *testing.T) {
	t.Run("equal data", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Diff(context.Background(), DiffArgs{FaceFile: "order.yaml", Data: "same.data.yaml", URL: orderURL})
		require.NoError(t, err)
		require.Len(t, f.ui.diffs, 1)
		assert.False(t, f.ui.diffs[0].Changed())
		assert.Equal(t, []string{"meals", "name"}, f.ui.diffs[0].Actual.Names())
	})

	t.Run("mismatch", func(t *testing.T) {
		f := newFixture()

		err := f.wf.Diff(context.Background(), DiffArgs{FaceFile: "order.yaml", Data: "order.data.yaml", URL: orderURL})
		require.ErrorIs(t, err, ErrDataMismatch)
		require.Len(t, f.ui.diffs, 1)

		unified := f.ui.diffs[0].Unified
		assert.Contains(t, unified, "--- order.data.yaml")
		assert.Contains(t, unified, "+++ "+orderURL)
		assert.Contains(t, unified, "-name: Bob")
		assert.Contains(t, unified, "+name: Ada")
		assert.Contains(t, unified, "-subscribe: true")
		assert.Contains(t, unified, "+subscribe: false")
	})
}

func TestWorkflow_View(t *testing.T) {
	f := newFixture()
	f.store.stored = []m.Snapshot{{URL: orderURL}}

	require.NoError(t, f.wf.View(context.Background(), ViewArgs{Output: "out"}))
	require.Len(t, f.ui.snapshots, 1)
	assert.Equal(t, orderURL, f.ui.snapshots[0][0].URL)
}

func TestUnifiedDiff_ComparesAsText(t *testing.T) {
	expected := face.Fields{{Name: "age", Value: 42}, {Name: "tags", Value: []any{"a", "b"}}, {Name: "note", Value: nil}}
	actual := face.Fields{{Name: "age", Value: "42"}, {Name: "tags", Value: []string{"a", "b"}}, {Name: "note", Value: ""}}

	unified, err := unifiedDiff(expected, actual, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, unified)
}
