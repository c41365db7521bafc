// Package cmd provides the root command and CLI setup for lintsweep.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	"github.com/mouse-blink/lintsweep/internal/controller"
	"github.com/mouse-blink/lintsweep/internal/domain"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

var fsAdapter adapter.ManifestFSAdapter
var lintAdapter adapter.LintRunnerAdapter
var configAdapter adapter.ConfigAdapter
var reportStore adapter.ReportStore
var ui controller.UI
var workflow domain.Workflow

var manifestFlag string
var configFlag string
var reportsFlag string
var excludeFlags []string
var simpleFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lintsweep",
		Short: "Stylelint ignore-manifest maintenance tool",
		Long: `Lintsweep maintains a stylelint ignore manifest. It can compact the
manifest down to the entries whose files still contain real violations,
or eliminate the manifest entirely by writing inline suppression
comments into the affected files at the exact violating line ranges.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			wireWorkflow(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", ".stylelintignore", "path to the ignore manifest")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", ".stylelintrc", "path to the lint configuration")
	cmd.PersistentFlags().StringVarP(&reportsFlag, "reports", "r", ".lintsweep-reports", "directory for run reports")
	cmd.PersistentFlags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.PersistentFlags().BoolVar(&simpleFlag, "simple", false, "force plain text output even on a terminal")

	return cmd
}

// wireWorkflow builds the adapter stack once flags are parsed, so the
// --simple flag can still pick the UI. A workflow installed beforehand
// (tests) is kept.
func wireWorkflow(cmd *cobra.Command) {
	if workflow != nil {
		return
	}

	fsAdapter = adapter.NewLocalManifestFSAdapter()
	lintAdapter = adapter.NewLocalStylelintAdapter()
	configAdapter = adapter.NewLocalConfigAdapter(fsAdapter)
	reportStore = adapter.NewReportStore()
	ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout) && !simpleFlag)
	workflow = domain.NewWorkflow(fsAdapter, lintAdapter, configAdapter, reportStore, ui)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func listArgs() domain.ListArgs {
	return domain.ListArgs{
		Manifest: m.Path(manifestFlag),
		Config:   m.Path(configFlag),
		Exclude:  excludeFlags,
	}
}
