package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "visage.dev/pkg/visage/internal/model"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLocalFaceFileAdapter_Load(t *testing.T) {
	t.Run("parses faces in order", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "search.yaml")
		writeTestFile(t, path, "faces:\n  query:\n    kind: text_field\n    how: name\n    what: q\n  search:\n    kind: button\n    what: go\n")

		file, err := NewLocalFaceFileAdapter().Load(m.Path(path))
		require.NoError(t, err)

		assert.Equal(t, m.Path(path), file.Path)
		require.Len(t, file.Faces, 2)
		assert.Equal(t, "query", file.Faces[0].Name)
		assert.Equal(t, "search", file.Faces[1].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLocalFaceFileAdapter().Load(m.Path(filepath.Join(t.TempDir(), "nope.yaml")))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty faces", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.yaml")
		writeTestFile(t, path, "frame: main\n")

		_, err := NewLocalFaceFileAdapter().Load(m.Path(path))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defines no faces")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		writeTestFile(t, path, "faces: [\n")

		_, err := NewLocalFaceFileAdapter().Load(m.Path(path))
		require.Error(t, err)
	})
}

func TestLocalFaceFileAdapter_LoadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "order.yaml")
	writeTestFile(t, path, "name: Ada\nmeals: []\nsubscribe: false\ntoppings:\n  - cheese\n  - ham\n")

	fields, err := NewLocalFaceFileAdapter().LoadData(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "meals", "subscribe", "toppings"}, fields.Names())

	subscribe, ok := fields.Get("subscribe")
	require.True(t, ok)
	assert.Equal(t, false, subscribe)

	toppings, _ := fields.Get("toppings")
	assert.Equal(t, []any{"cheese", "ham"}, toppings)
}
