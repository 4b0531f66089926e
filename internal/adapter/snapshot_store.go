package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
	"visage.dev/pkg/visage/pkg/journal"
)

// SnapshotJournalName is the journal file inside the output directory.
const SnapshotJournalName = "snapshots.journal"

// SnapshotStore persists scrape snapshots.
type SnapshotStore interface {
	SaveSnapshots(dir m.Path, snapshots []m.Snapshot) error
	LoadSnapshots(dir m.Path) ([]m.Snapshot, error)
}

// JournalSnapshotStore appends snapshots to a journal per output directory.
type JournalSnapshotStore struct{}

// NewSnapshotStore constructs a JournalSnapshotStore.
func NewSnapshotStore() *JournalSnapshotStore {
	return &JournalSnapshotStore{}
}

func journalPath(dir m.Path) string {
	return filepath.Join(string(dir), SnapshotJournalName)
}

// SaveSnapshots implements SnapshotStore.
func (s *JournalSnapshotStore) SaveSnapshots(dir m.Path, snapshots []m.Snapshot) (err error) {
	j, err := journal.Open[m.Snapshot](journalPath(dir))
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, j.Close())
	}()

	stored := make([]m.Snapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		snapshot.Fields = storable(snapshot.Fields)
		stored = append(stored, snapshot)
	}

	if err := j.AppendBatch(stored); err != nil {
		return fmt.Errorf("save snapshots: %w", err)
	}

	return nil
}

// LoadSnapshots implements SnapshotStore. A directory without a journal
// holds no snapshots.
func (s *JournalSnapshotStore) LoadSnapshots(dir m.Path) (snapshots []m.Snapshot, err error) {
	if _, statErr := os.Stat(journalPath(dir)); errors.Is(statErr, os.ErrNotExist) {
		return nil, nil
	}

	j, err := journal.Open[m.Snapshot](journalPath(dir))
	if err != nil {
		return nil, err
	}

	defer func() {
		err = errors.Join(err, j.Close())
	}()

	err = j.Range(func(_ uint64, snapshot m.Snapshot) error {
		snapshots = append(snapshots, snapshot)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load snapshots: %w", err)
	}

	return snapshots, nil
}

// storable narrows scraped values to types gob can carry inside an
// interface without registration.
func storable(fields face.Fields) face.Fields {
	out := make(face.Fields, 0, len(fields))

	for _, field := range fields {
		out = append(out, face.Field{Name: field.Name, Value: storableValue(field.Value)})
	}

	return out
}

func storableValue(v any) any {
	switch v := v.(type) {
	case nil, string, bool, int, int64, float64, []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			out = append(out, fmt.Sprint(item))
		}

		return out
	}

	return fmt.Sprint(v)
}
