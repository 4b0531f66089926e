package adapter

import (
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

func TestJournalSnapshotStore(t *testing.T) {
	t.Run("missing journal loads nothing", func(t *testing.T) {
		snapshots, err := NewSnapshotStore().LoadSnapshots(m.Path(t.TempDir()))
		require.NoError(t, err)
		assert.Empty(t, snapshots)
	})

	t.Run("save appends across calls", func(t *testing.T) {
		dir := m.Path(filepath.Join(t.TempDir(), "out"))
		store := NewSnapshotStore()
		taken := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

		first := m.Snapshot{
			ID:       uuid.New(),
			URL:      "https://example.test/order",
			FaceFile: "order.yaml",
			Taken:    taken,
			Fields: face.Fields{
				{Name: "name", Value: "Ada"},
				{Name: "subscribe", Value: false},
				{Name: "toppings", Value: []any{"cheese", 2}},
				{Name: "meals", Value: map[string]int{"a": 1}},
			},
		}
		second := m.Snapshot{ID: uuid.New(), URL: "https://example.test/other", Taken: taken, Err: "no such element"}

		require.NoError(t, store.SaveSnapshots(dir, []m.Snapshot{first}))
		require.NoError(t, store.SaveSnapshots(dir, []m.Snapshot{second}))

		_, err := os.Stat(filepath.Join(string(dir), SnapshotJournalName))
		require.NoError(t, err)

		loaded, err := store.LoadSnapshots(dir)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		assert.Equal(t, first.ID, loaded[0].ID)
		assert.True(t, taken.Equal(loaded[0].Taken))
		assert.Equal(t, face.Fields{
			{Name: "name", Value: "Ada"},
			{Name: "subscribe", Value: false},
			{Name: "toppings", Value: []string{"cheese", "2"}},
			{Name: "meals", Value: "map[a:1]"},
		}, loaded[0].Fields)

		assert.Equal(t, "no such element", loaded[1].Err)
		assert.True(t, loaded[1].Failed())
	})
}
