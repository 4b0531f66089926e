package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	nameStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	boxStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
)

// TUI implements UI with styled output and an interactive snapshot browser.
type TUI struct {
	cmd *cobra.Command

	// run starts a Bubble Tea program; replaced in tests.
	run func(model tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	t := &TUI{cmd: cmd}
	t.run = func(model tea.Model) error {
		program := tea.NewProgram(model,
			tea.WithInput(cmd.InOrStdin()),
			tea.WithOutput(cmd.OutOrStdout()),
			tea.WithAltScreen(),
		)
		_, err := program.Run()

		return err
	}

	return t
}

// DisplayFaces renders the faces of a face file.
func (t *TUI) DisplayFaces(ctx context.Context, file m.FaceFile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s: %d face(s)", file.Path, len(file.Faces))))
	b.WriteString("\n")

	if file.Frame != "" {
		b.WriteString(dimStyle.Render("frame " + file.Frame))
		b.WriteString("\n")
	}

	lines := make([]string, 0, len(file.Faces))
	for _, row := range faceRows(file) {
		lines = append(lines, fmt.Sprintf("%s  %s", nameStyle.Render(row[0]), describeRow(row)))
	}

	b.WriteString(boxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")

	return t.print(b.String())
}

func describeRow(row []string) string {
	desc := row[1]
	if row[2] != "" {
		desc += " " + row[2]
	}

	if row[3] != "" {
		desc += " " + row[3]
	}

	if row[4] != "" {
		desc += " " + dimStyle.Render(row[4])
	}

	return desc
}

// DisplaySpray renders what was written to the page.
func (t *TUI) DisplaySpray(ctx context.Context, url string, fields face.Fields) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	header := titleStyle.Render(fmt.Sprintf("sprayed %d field(s) into %s", len(fields), url))

	return t.print(header + "\n" + boxStyle.Render(renderFields(fields)) + "\n")
}

// DisplaySnapshots opens the snapshot browser.
func (t *TUI) DisplaySnapshots(ctx context.Context, snapshots []m.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(snapshots) == 0 {
		return t.print(dimStyle.Render("no snapshots found") + "\n")
	}

	return t.run(newSnapshotModel(snapshots))
}

// DisplayDiff renders a colored unified diff.
func (t *TUI) DisplayDiff(ctx context.Context, diff m.Diff) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if !diff.Changed() {
		return t.print(addedStyle.Render("no differences for "+diff.URL) + "\n")
	}

	return t.print(colorDiff(diff.Unified))
}

func (t *TUI) print(s string) error {
	_, err := fmt.Fprint(t.cmd.OutOrStdout(), s)
	return err
}

func colorDiff(unified string) string {
	var b strings.Builder

	for _, line := range strings.SplitAfter(unified, "\n") {
		body := strings.TrimSuffix(line, "\n")

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"), strings.HasPrefix(body, "@@"):
			b.WriteString(dimStyle.Render(body))
		case strings.HasPrefix(body, "+"):
			b.WriteString(addedStyle.Render(body))
		case strings.HasPrefix(body, "-"):
			b.WriteString(removedStyle.Render(body))
		default:
			b.WriteString(body)
		}

		if strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func renderFields(fields face.Fields) string {
	if len(fields) == 0 {
		return dimStyle.Render("(no fields)")
	}

	width := 0
	for _, field := range fields {
		width = max(width, len(field.Name))
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("%s  %s", nameStyle.Render(fmt.Sprintf("%-*s", width, field.Name)), formatValue(field.Value)))
	}

	return strings.Join(lines, "\n")
}

// snapshotModel is a table of snapshots; enter shows the fields of the
// selected one.
type snapshotModel struct {
	snapshots []m.Snapshot
	table     table.Model
	detail    bool
	quitting  bool
}

func newSnapshotModel(snapshots []m.Snapshot) snapshotModel {
	rows := make([]table.Row, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rows = append(rows, table.Row(snapshotRow(snapshot)))
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 8},
			{Title: "URL", Width: 40},
			{Title: "Taken", Width: 19},
			{Title: "Fields", Width: 6},
			{Title: "Status", Width: 24},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+3, 15)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	t.SetStyles(styles)

	return snapshotModel{snapshots: snapshots, table: t}
}

func (sm snapshotModel) Init() tea.Cmd {
	return nil
}

func (sm snapshotModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm.table.SetHeight(max(msg.Height-6, 3))
		return sm, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			sm.quitting = true
			return sm, tea.Quit
		case "esc":
			if sm.detail {
				sm.detail = false
				return sm, nil
			}

			sm.quitting = true

			return sm, tea.Quit
		case "enter":
			sm.detail = !sm.detail
			return sm, nil
		}
	}

	if sm.detail {
		return sm, nil
	}

	var cmd tea.Cmd
	sm.table, cmd = sm.table.Update(msg)

	return sm, cmd
}

func (sm snapshotModel) selected() (m.Snapshot, bool) {
	i := sm.table.Cursor()
	if i < 0 || i >= len(sm.snapshots) {
		return m.Snapshot{}, false
	}

	return sm.snapshots[i], true
}

func (sm snapshotModel) View() string {
	if sm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("visage snapshots (%d)", len(sm.snapshots))))
	b.WriteString("\n\n")

	if snapshot, ok := sm.selected(); ok && sm.detail {
		b.WriteString(nameStyle.Render(snapshot.URL))
		b.WriteString("\n")

		if snapshot.Failed() {
			b.WriteString(errorStyle.Render(snapshot.Err))
			b.WriteString("\n")
		}

		b.WriteString(boxStyle.Render(renderFields(snapshot.Fields)))
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render("enter/esc: back | q: quit"))

		return b.String()
	}

	b.WriteString(boxStyle.Render(sm.table.View()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("↑/k: up | ↓/j: down | enter: fields | q: quit"))

	return b.String()
}
