// Package controller renders the results of visage commands.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "visage.dev/pkg/visage/internal/model"
	"visage.dev/pkg/visage/pkg/face"
)

// UI defines how command results are shown.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayFaces(ctx context.Context, file m.FaceFile) error
	DisplaySpray(ctx context.Context, url string, fields face.Fields) error
	DisplaySnapshots(ctx context.Context, snapshots []m.Snapshot) error
	DisplayDiff(ctx context.Context, diff m.Diff) error
}

// NewUI picks the interactive UI when output is a terminal.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
