// Package adapter contains the infrastructure adapters of the visage CLI:
// face and data files on disk, browser sessions and the snapshot store.
package adapter

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

// FaceFileAdapter reads face files and data files so the workflow can be
// tested without touching the disk.
type FaceFileAdapter interface {
	// Load parses the face file at path.
	Load(path m.Path) (m.FaceFile, error)

	// LoadData parses an ordered name to value mapping.
	LoadData(path m.Path) (face.Fields, error)
}

// LocalFaceFileAdapter reads files from the local file system.
type LocalFaceFileAdapter struct{}

// NewLocalFaceFileAdapter constructs a LocalFaceFileAdapter.
func NewLocalFaceFileAdapter() *LocalFaceFileAdapter {
	return &LocalFaceFileAdapter{}
}

// Load implements FaceFileAdapter.
func (a *LocalFaceFileAdapter) Load(path m.Path) (m.FaceFile, error) {
	var file m.FaceFile

	content, err := os.ReadFile(string(path))
	if err != nil {
		return file, fmt.Errorf("read face file: %w", err)
	}

	if err := yaml.Unmarshal(content, &file); err != nil {
		return file, fmt.Errorf("parse face file %s: %w", path, err)
	}

	if len(file.Faces) == 0 {
		return file, fmt.Errorf("face file %s defines no faces", path)
	}

	file.Path = path
	slog.Debug("loaded face file", "path", path, "faces", len(file.Faces), "frame", file.Frame)

	return file, nil
}

// LoadData implements FaceFileAdapter.
func (a *LocalFaceFileAdapter) LoadData(path m.Path) (face.Fields, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var fields face.Fields
	if err := yaml.Unmarshal(content, &fields); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", path, err)
	}

	slog.Debug("loaded data file", "path", path, "fields", len(fields))

	return fields, nil
}
