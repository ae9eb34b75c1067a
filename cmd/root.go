// Package cmd provides the root command and CLI setup for qacheck.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	"qacheck.dev/pkg/qacheck/internal/controller"
	"qacheck.dev/pkg/qacheck/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var analyzer domain.Analyzer
var generator domain.Generator
var workflow domain.Workflow
var ui controller.UI

// verboseFlag is a root-level flag shared by both tools.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	analyzer = domain.NewAnalyzer(fsAdapter, domain.NewClassifier(domain.DefaultClassifierConfig()))
	generator = domain.NewGenerator(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		analyzer,
		generator,
	)
}

const rootLongDescription = `qacheck bundles two small test-hygiene tools for JavaScript and TypeScript
projects:

  coverage   report source files that have no <name>.test.<ext> file
  scaffold   write a skeleton vitest file next to a source file

Matching is by file name only; no tests are executed and no coverage is
instrumented.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "qacheck",
		Short:        "Test naming-convention checks and scaffolding",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			if configReadErr != nil {
				slog.Warn("ignoring unreadable config file", "error", configReadErr)
				cmd.PrintErrln("⚠️ ", configReadErr)
			}
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
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable verbose output and debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
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

