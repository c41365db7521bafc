package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintsweep/internal/domain"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

var eliminateDryRunFlag bool
var eliminateBlockFlag bool

// eliminateCmd represents the eliminate command.
var eliminateCmd = newEliminateCmd()

func newEliminateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eliminate",
		Short: "Replace the manifest with inline suppression comments",
		Long: `Eliminate writes a suppression comment into every still-violating
ignored file at each violating line range, then truncates the manifest
to empty. By default a disable-next-line comment precedes each range;
with --block the range is bracketed by a disable/enable pair.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Eliminate(domain.EliminateArgs{
				CompactArgs: domain.CompactArgs{
					ListArgs: listArgs(),
					Reports:  m.Path(reportsFlag),
					DryRun:   eliminateDryRunFlag,
				},
				Block: eliminateBlockFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&eliminateDryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVarP(&eliminateBlockFlag, "block", "b", false, "bracket ranges with disable/enable pairs instead of disable-next-line")

	return cmd
}

func init() {
	rootCmd.AddCommand(eliminateCmd)
}
