package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a visage.yaml with the current settings",
		Long: `Write visage.yaml to the current directory with the settings in effect:
browser.engine, browser.type, browser.headless, browser.timeout and
browser.exec_path choose how pages are opened, scrape.parallel bounds
concurrent scrapes, output is the snapshot directory and log.* configures
the log file. Flags given to init are written too, so

  visage init --engine html --output snapshots

starts a project on the static html engine. An existing file is never
overwritten.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s (engine %s, output %s)\n",
				targetPath, viper.GetString(engineConfigKey), viper.GetString(outputFlagName))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
