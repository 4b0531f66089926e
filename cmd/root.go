// Package cmd provides the root command and CLI setup for visage.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"visage.dev/pkg/visage/internal/adapter"
	"visage.dev/pkg/visage/internal/controller"
	"visage.dev/pkg/visage/internal/domain"
	m "visage.dev/pkg/visage/internal/model"
)

var faceFileAdapter adapter.FaceFileAdapter
var browserAdapter adapter.BrowserAdapter
var snapshotStore adapter.SnapshotStore
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write snapshots.
var outputDirFlag string

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	faceFileAdapter = adapter.NewLocalFaceFileAdapter()
	browserAdapter = configuredBrowser{}
	snapshotStore = adapter.NewSnapshotStore()
	workflow = domain.NewWorkflow(
		faceFileAdapter,
		browserAdapter,
		snapshotStore,
		ui,
	)
}

const faceFileHelp = `A face file names the parts of a page:

  frame: checkout            # optional face to enter before use
  faces:
    query:
      kind: text_field       # text_field, select_list, radio_group, ...
      how: name              # id, name, css, xpath, class, text, value, label, index
      what: q
    meals_to_go:
      kind: radio_group
      what: meals            # group name
    coupon:
      within:                # nested containers, innermost last
        - {kind: element, how: id, what: summary}
        - {kind: text_field, how: name, what: code}`

const rootLongDescription = `Visage binds business names to the elements of a web page and moves
data between YAML files and live pages: spray fills a page in, scrape
reads it back, diff compares it with expected data.

` + faceFileHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "visage",
		Short: "Semantic names for browser automation",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for scrape snapshots",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().String(engineFlagName, viper.GetString(engineConfigKey), "automation engine: playwright, chromedp or html")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(engineFlagName), engineConfigKey)

	cmd.PersistentFlags().String(browserFlagName, viper.GetString(browserConfigKey), "playwright browser: chromium, firefox or webkit")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(browserFlagName), browserConfigKey)

	cmd.PersistentFlags().Bool(headlessFlagName, viper.GetBool(headlessConfigKey), "run the browser without a window")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(headlessFlagName), headlessConfigKey)

	cmd.PersistentFlags().Duration(timeoutFlagName, viper.GetDuration(timeoutConfigKey), "timeout for each browser action")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(timeoutFlagName), timeoutConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// configuredBrowser builds the browser adapter from the configuration in
// effect when a page is opened, after flags have been parsed.
type configuredBrowser struct{}

func (configuredBrowser) Open(ctx context.Context, url string) (adapter.Page, error) {
	return adapter.NewLocalBrowserAdapter(browserOptions()).Open(ctx, url)
}

func browserOptions() adapter.BrowserOptions {
	return adapter.BrowserOptions{
		Engine:   viper.GetString(engineConfigKey),
		Browser:  viper.GetString(browserConfigKey),
		Headless: viper.GetBool(headlessConfigKey),
		Timeout:  viper.GetDuration(timeoutConfigKey),
		ExecPath: viper.GetString(execPathConfigKey),
	}
}

func outputDir() m.Path {
	return m.Path(viper.GetString(outputFlagName))
}
