package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"visage.dev/pkg/visage/internal/domain"
	m "visage.dev/pkg/visage/internal/model"
)

const (
	urlFlagName  = "url"
	dataFlagName = "data"
	saveFlagName = "save"
)

// sprayCmd represents the spray command.
var sprayCmd = newSprayCmd()

func newSprayCmd() *cobra.Command {
	var url, data, save string

	cmd := &cobra.Command{
		Use:   "spray <facefile>",
		Short: "Fill a page in from a data file",
		Long: `Open the page at --url and write every value of the --data file into the
face of the same name, in file order. The first failing face stops the
spray; values written before it stay on the page.`,
		Example: "  visage spray faces.yaml --url https://example.com/order --data order.yaml",
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Spray(context.Background(), domain.SprayArgs{
				FaceFile: m.Path(args[0]),
				Data:     m.Path(data),
				URL:      url,
				Save:     m.Path(save),
			})
		},
	}

	cmd.Flags().StringVarP(&url, urlFlagName, "u", "", "page to fill in")
	cmd.Flags().StringVarP(&data, dataFlagName, "d", "", "YAML file mapping face names to values")
	cmd.Flags().StringVar(&save, saveFlagName, "", "write the resulting page (html engine) or a screenshot here")
	cobra.CheckErr(cmd.MarkFlagRequired(urlFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(dataFlagName))

	return cmd
}

func init() {
	rootCmd.AddCommand(sprayCmd)
}
