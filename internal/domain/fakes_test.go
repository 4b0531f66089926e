package domain

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"visage.dev/pkg/visage/internal/adapter"
	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/driver"
	"visage.dev/pkg/visage/pkg/driver/htmldriver"
	"visage.dev/pkg/visage/pkg/face"
)

type fakeFaceFiles struct {
	files map[m.Path]m.FaceFile
	data  map[m.Path]face.Fields
}

func (f *fakeFaceFiles) Load(path m.Path) (m.FaceFile, error) {
	file, ok := f.files[path]
	if !ok {
		return m.FaceFile{}, fmt.Errorf("read face file: %w", os.ErrNotExist)
	}

	file.Path = path

	return file, nil
}

func (f *fakeFaceFiles) LoadData(path m.Path) (face.Fields, error) {
	fields, ok := f.data[path]
	if !ok {
		return nil, fmt.Errorf("read data file: %w", os.ErrNotExist)
	}

	return fields, nil
}

type fakePage struct {
	driver driver.Driver
	closed *int
	mu     *sync.Mutex
}

func (p *fakePage) Driver() driver.Driver { return p.driver }

func (p *fakePage) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	*p.closed++

	return nil
}

// fakeBrowser serves html sources by url through the html driver.
type fakeBrowser struct {
	pages map[string]string

	mu     sync.Mutex
	opened []string
	closed int
}

func (b *fakeBrowser) Open(_ context.Context, url string) (adapter.Page, error) {
	b.mu.Lock()
	b.opened = append(b.opened, url)
	b.mu.Unlock()

	src, ok := b.pages[url]
	if !ok {
		return nil, errors.New("404 Not Found")
	}

	d, err := htmldriver.ParseString(src)
	if err != nil {
		return nil, err
	}

	return &fakePage{driver: d, closed: &b.closed, mu: &b.mu}, nil
}

type fakeStore struct {
	saved   []m.Snapshot
	stored  []m.Snapshot
	saveErr error
}

func (s *fakeStore) SaveSnapshots(_ m.Path, snapshots []m.Snapshot) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	s.saved = append(s.saved, snapshots...)

	return nil
}

func (s *fakeStore) LoadSnapshots(_ m.Path) ([]m.Snapshot, error) {
	return s.stored, nil
}

type recordingUI struct {
	faces     []m.FaceFile
	sprays    []face.Fields
	snapshots [][]m.Snapshot
	diffs     []m.Diff
}

func (u *recordingUI) DisplayFaces(_ context.Context, file m.FaceFile) error {
	u.faces = append(u.faces, file)
	return nil
}

func (u *recordingUI) DisplaySpray(_ context.Context, _ string, fields face.Fields) error {
	u.sprays = append(u.sprays, fields)
	return nil
}

func (u *recordingUI) DisplaySnapshots(_ context.Context, snapshots []m.Snapshot) error {
	u.snapshots = append(u.snapshots, snapshots)
	return nil
}

func (u *recordingUI) DisplayDiff(_ context.Context, diff m.Diff) error {
	u.diffs = append(u.diffs, diff)
	return nil
}
