package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"visage.dev/pkg/visage/internal/domain"
	m "visage.dev/pkg/visage/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <facefile>",
		Short: "List the faces a face file defines",
		Long:  "List the faces of a face file in declaration order.\n\n" + faceFileHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(context.Background(), domain.ListArgs{FaceFile: m.Path(args[0])})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
