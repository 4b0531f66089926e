package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"visage.dev/pkg/visage/internal/domain"
	m "visage.dev/pkg/visage/internal/model"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	var url, data string

	cmd := &cobra.Command{
		Use:   "diff <facefile>",
		Short: "Compare a page with a data file",
		Long: `Scrape the faces named in the --data file from --url and print a unified
diff of expected against actual values. Exits non-zero when they differ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Diff(context.Background(), domain.DiffArgs{
				FaceFile: m.Path(args[0]),
				Data:     m.Path(data),
				URL:      url,
			})
		},
	}

	cmd.Flags().StringVarP(&url, urlFlagName, "u", "", "page to compare")
	cmd.Flags().StringVarP(&data, dataFlagName, "d", "", "YAML file with the expected values")
	cobra.CheckErr(cmd.MarkFlagRequired(urlFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(dataFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
