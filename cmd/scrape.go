package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"visage.dev/pkg/visage/internal/domain"
	m "visage.dev/pkg/visage/internal/model"
)

// scrapeCmd represents the scrape command.
var scrapeCmd = newScrapeCmd()

func newScrapeCmd() *cobra.Command {
	var urls []string

	cmd := &cobra.Command{
		Use:   "scrape <facefile> [names...]",
		Short: "Read faces back from one or more pages",
		Long: `Open every --url, read the named faces (all faces when none are given)
and store the result as a snapshot in the output directory. Choice groups
and select lists report their selected values, other faces their value.`,
		Example: `  visage scrape faces.yaml --url https://example.com/a --url https://example.com/b
  visage scrape faces.yaml query meals_to_go -u file://form.html --engine html`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Scrape(context.Background(), domain.ScrapeArgs{
				FaceFile: m.Path(args[0]),
				URLs:     urls,
				Names:    args[1:],
				Output:   outputDir(),
				Threads:  viper.GetInt(parallelConfigKey),
			})
		},
	}

	cmd.Flags().StringArrayVarP(&urls, urlFlagName, "u", nil, "page to scrape (repeatable)")
	cobra.CheckErr(cmd.MarkFlagRequired(urlFlagName))

	cmd.Flags().IntP(parallelFlagName, "p", defaultParallel, "number of pages to scrape at once")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
}
