package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"visage.dev/pkg/visage/internal/adapter"
	"visage.dev/pkg/visage/internal/controller"
	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/driver"
	"visage.dev/pkg/visage/pkg/face"
)

// ErrDataMismatch is returned by Diff when the page does not hold the
// expected data.
var ErrDataMismatch = errors.New("scraped data differs from expected data")

// ListArgs contains the arguments for listing the faces of a face file.
type ListArgs struct {
	FaceFile m.Path
}

// SprayArgs contains the arguments for filling a page in.
type SprayArgs struct {
	FaceFile m.Path
	Data     m.Path
	URL      string
	Save     m.Path // optional; rendered page or screenshot is written here
}

// ScrapeArgs contains the arguments for reading pages back.
type ScrapeArgs struct {
	FaceFile m.Path
	URLs     []string
	Names    []string // empty means every face
	Output   m.Path
	Threads  int
}

// DiffArgs contains the arguments for comparing a page with a data file.
type DiffArgs struct {
	FaceFile m.Path
	Data     m.Path
	URL      string
}

// ViewArgs contains the arguments for viewing stored snapshots.
type ViewArgs struct {
	Output m.Path
}

// Workflow defines the commands of the visage CLI.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Spray(ctx context.Context, args SprayArgs) error
	Scrape(ctx context.Context, args ScrapeArgs) error
	Diff(ctx context.Context, args DiffArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.FaceFileAdapter
	adapter.BrowserAdapter
	adapter.SnapshotStore
	ui controller.UI

	now   func() time.Time
	newID func() uuid.UUID
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	faceFiles adapter.FaceFileAdapter,
	browser adapter.BrowserAdapter,
	store adapter.SnapshotStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		FaceFileAdapter: faceFiles,
		BrowserAdapter:  browser,
		SnapshotStore:   store,
		ui:              ui,
		now:             time.Now,
		newID:           uuid.New,
	}
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	file, _, err := w.load(args.FaceFile)
	if err != nil {
		return err
	}

	return w.ui.DisplayFaces(ctx, file)
}

func (w *workflow) Spray(ctx context.Context, args SprayArgs) (err error) {
	file, registry, err := w.load(args.FaceFile)
	if err != nil {
		return err
	}

	fields, err := w.LoadData(args.Data)
	if err != nil {
		return err
	}

	scope, page, err := w.open(ctx, file, registry, args.URL)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, page.Close())
	}()

	if err := scope.Spray(ctx, fields); err != nil {
		return fmt.Errorf("spray %s: %w", args.URL, err)
	}

	if args.Save != "" {
		if err := save(ctx, scope, args.Save); err != nil {
			return err
		}
	}

	return w.ui.DisplaySpray(ctx, args.URL, fields)
}

// save writes the page after spraying: markup when the driver can render
// it, a screenshot otherwise. Faces named like either operation are
// ignored.
func save(ctx context.Context, scope *face.Scope, path m.Path) error {
	var out any

	var err error

	if operator, ok := pageOperator(ctx, scope, "render"); ok {
		out, err = operator.Invoke(ctx, "render")
	} else if operator, ok := pageOperator(ctx, scope, "screenshot"); ok {
		out, err = operator.Invoke(ctx, "screenshot")
	} else {
		return fmt.Errorf("driver can neither render nor screenshot the page")
	}

	if err != nil {
		return fmt.Errorf("save page: %w", err)
	}

	var content []byte

	switch v := out.(type) {
	case string:
		content = []byte(v)
	case []byte:
		content = v
	default:
		return fmt.Errorf("save page: unexpected %T result", out)
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return fmt.Errorf("save page: %w", err)
	}

	slog.Debug("page saved", "path", path, "bytes", len(content))

	return nil
}

// pageOperator returns the base element or the driver, whichever supports
// op first.
func pageOperator(ctx context.Context, scope *face.Scope, op string) (driver.Operator, bool) {
	if base, err := scope.BaseElement(ctx); err == nil && base.Supports(op) {
		return base, true
	}

	d, err := scope.Driver()
	if err != nil {
		return nil, false
	}

	operator, ok := d.(driver.Operator)
	if !ok || !operator.Supports(op) {
		return nil, false
	}

	return operator, true
}

func (w *workflow) Scrape(ctx context.Context, args ScrapeArgs) error {
	if len(args.URLs) == 0 {
		return fmt.Errorf("no url to scrape")
	}

	file, registry, err := w.load(args.FaceFile)
	if err != nil {
		return err
	}

	for _, name := range args.Names {
		if !registry.Has(name) {
			return &face.UnknownFaceError{Name: name}
		}
	}

	snapshots := make([]m.Snapshot, len(args.URLs))

	var group errgroup.Group
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, url := range args.URLs {
		snapshots[i] = m.Snapshot{ID: w.newID(), URL: url, FaceFile: file.Path}

		group.Go(func() error {
			w.scrapeInto(ctx, &snapshots[i], file, registry.Extend(), args.Names)
			return nil
		})
	}

	// scrapeInto records failures in the snapshot
	_ = group.Wait()

	if err := w.SaveSnapshots(args.Output, snapshots); err != nil {
		return err
	}

	if err := w.ui.DisplaySnapshots(ctx, snapshots); err != nil {
		return err
	}

	failed := 0

	for _, snapshot := range snapshots {
		if snapshot.Failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scrapes failed", failed, len(snapshots))
	}

	return nil
}

// scrapeInto fills snapshot in; a failure is kept in snapshot.Err.
func (w *workflow) scrapeInto(ctx context.Context, snapshot *m.Snapshot, file m.FaceFile, registry *face.Registry, names []string) {
	snapshot.Taken = w.now()

	fields, err := w.scrape(ctx, file, registry, snapshot.URL, names)
	if err != nil {
		slog.Warn("scrape failed", "url", snapshot.URL, "error", err)
		snapshot.Err = err.Error()
	}

	snapshot.Fields = fields
}

func (w *workflow) scrape(ctx context.Context, file m.FaceFile, registry *face.Registry, url string, names []string) (fields face.Fields, err error) {
	scope, page, err := w.open(ctx, file, registry, url)
	if err != nil {
		return nil, err
	}

	defer func() {
		err = errors.Join(err, page.Close())
	}()

	if len(names) == 0 {
		return scope.ScrapeAll(ctx)
	}

	return scope.Scrape(ctx, names...)
}

func (w *workflow) Diff(ctx context.Context, args DiffArgs) error {
	file, registry, err := w.load(args.FaceFile)
	if err != nil {
		return err
	}

	expected, err := w.LoadData(args.Data)
	if err != nil {
		return err
	}

	actual, err := w.scrape(ctx, file, registry, args.URL, expected.Names())
	if err != nil {
		return fmt.Errorf("scrape %s: %w", args.URL, err)
	}

	unified, err := unifiedDiff(expected, actual, string(args.Data), args.URL)
	if err != nil {
		return err
	}

	diff := m.Diff{URL: args.URL, Expected: expected, Actual: actual, Unified: unified}
	if err := w.ui.DisplayDiff(ctx, diff); err != nil {
		return err
	}

	if diff.Changed() {
		return ErrDataMismatch
	}

	return nil
}

func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	snapshots, err := w.LoadSnapshots(args.Output)
	if err != nil {
		return err
	}

	return w.ui.DisplaySnapshots(ctx, snapshots)
}

func (w *workflow) load(path m.Path) (m.FaceFile, *face.Registry, error) {
	file, err := w.Load(path)
	if err != nil {
		return file, nil, err
	}

	registry, err := BuildRegistry(file)
	if err != nil {
		return file, nil, fmt.Errorf("face file %s: %w", path, err)
	}

	return file, registry, nil
}

// open loads url and returns a scope over it, already inside the face
// file's frame when one is named.
func (w *workflow) open(ctx context.Context, file m.FaceFile, registry *face.Registry, url string) (*face.Scope, adapter.Page, error) {
	page, err := w.Open(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", url, err)
	}

	scope := face.New(registry, face.WithDriver(page.Driver()), face.WithLogger(slog.Default().With("url", url)))

	if file.Frame != "" {
		if err := scope.EnterFrame(ctx, file.Frame); err != nil {
			_ = page.Close()
			return nil, nil, fmt.Errorf("enter frame %q: %w", file.Frame, err)
		}
	}

	return scope, page, nil
}
