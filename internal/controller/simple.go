package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

// SimpleUI implements UI with plain tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayFaces prints the faces of a face file in file order.
func (s *SimpleUI) DisplayFaces(ctx context.Context, file m.FaceFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if file.Frame != "" {
		s.printf("frame: %s\n", file.Frame)
	}

	s.printf("\n%s", renderFacesTable(file))

	return nil
}

// DisplaySpray confirms what was written to the page.
func (s *SimpleUI) DisplaySpray(ctx context.Context, url string, fields face.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Sprayed %d field(s) into %s\n\n%s", len(fields), url, renderFieldsTable(fields))

	return nil
}

// DisplaySnapshots prints a summary row per snapshot followed by the
// scraped fields of each successful one.
func (s *SimpleUI) DisplaySnapshots(ctx context.Context, snapshots []m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(snapshots) == 0 {
		s.printf("No snapshots found\n")
		return nil
	}

	s.printf("\n%s", renderSnapshotsTable(snapshots))

	for _, snapshot := range snapshots {
		if snapshot.Failed() {
			continue
		}

		s.printf("\n%s %s\n%s", snapshot.ShortID(), snapshot.URL, renderFieldsTable(snapshot.Fields))
	}

	return nil
}

// DisplayDiff prints the unified diff, or a note when there is none.
func (s *SimpleUI) DisplayDiff(ctx context.Context, diff m.Diff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !diff.Changed() {
		s.printf("No differences for %s\n", diff.URL)
		return nil
	}

	s.printf("%s", diff.Unified)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table
}

func renderFacesTable(file m.FaceFile) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Name", "Kind", "How", "What", "Extra"})

	for _, row := range faceRows(file) {
		table.Append(row)
	}

	table.SetFooter([]string{fmt.Sprintf("Total Faces %d", len(file.Faces)), "", "", "", ""})
	table.Render()

	return buf.String()
}

// faceRows flattens specs into Name, Kind, How, What, Extra rows. A within
// path is shown as its steps joined by " > ".
func faceRows(file m.FaceFile) [][]string {
	rows := make([][]string, 0, len(file.Faces))

	for _, spec := range file.Faces {
		if len(spec.Within) == 0 {
			rows = append(rows, []string{spec.Name, spec.Kind, spec.How, spec.What, formatValue(spec.Extra)})
			continue
		}

		steps := make([]string, 0, len(spec.Within))
		for _, step := range spec.Within {
			steps = append(steps, formatLocator(step))
		}

		last := spec.Within[len(spec.Within)-1]
		rows = append(rows, []string{spec.Name, last.Kind, "within", strings.Join(steps, " > "), ""})
	}

	return rows
}

func formatLocator(spec m.LocatorSpec) string {
	if spec.How == "" {
		return fmt.Sprintf("%s(%s)", spec.Kind, spec.What)
	}

	return fmt.Sprintf("%s(%s=%s)", spec.Kind, spec.How, spec.What)
}

func renderFieldsTable(fields face.Fields) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"Name", "Value"})

	for _, field := range fields {
		table.Append([]string{field.Name, formatValue(field.Value)})
	}

	table.Render()

	return buf.String()
}

func renderSnapshotsTable(snapshots []m.Snapshot) string {
	var buf bytes.Buffer

	table := newTable(&buf, []string{"ID", "URL", "Taken", "Fields", "Status"})
	failed := 0

	for _, snapshot := range snapshots {
		if snapshot.Failed() {
			failed++
		}

		table.Append(snapshotRow(snapshot))
	}

	table.SetFooter([]string{fmt.Sprintf("Total %d", len(snapshots)), "", "", "", fmt.Sprintf("%d failed", failed)})
	table.Render()

	return buf.String()
}

func snapshotRow(snapshot m.Snapshot) []string {
	return []string{
		snapshot.ShortID(),
		snapshot.URL,
		snapshot.Taken.Format(time.DateTime),
		fmt.Sprintf("%d", len(snapshot.Fields)),
		snapshotStatus(snapshot),
	}
}

func snapshotStatus(snapshot m.Snapshot) string {
	if snapshot.Failed() {
		return "error: " + snapshot.Err
	}

	return "ok"
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	}

	return fmt.Sprint(v)
}
