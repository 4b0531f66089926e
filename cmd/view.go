package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"visage.dev/pkg/visage/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "View stored scrape snapshots",
		Long:  "View the scrape snapshots journaled in the output directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.View(context.Background(), domain.ViewArgs{Output: outputDir()})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
