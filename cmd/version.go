package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the visage build version, the commit it was built from and the Go version.",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			info, _ := debug.ReadBuildInfo()
			for _, line := range versionLines(info) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines describes a build. A nil info comes from a binary built
// without module support.
func versionLines(info *debug.BuildInfo) []string {
	if info == nil {
		return []string{"visage " + unknownVersion}
	}

	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	lines := []string{"visage " + version}

	for _, setting := range info.Settings {
		if setting.Key != "vcs.revision" {
			continue
		}

		revision := setting.Value
		if len(revision) > 12 {
			revision = revision[:12]
		}

		lines = append(lines, "commit "+revision)
	}

	return append(lines, "built with "+info.GoVersion)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
