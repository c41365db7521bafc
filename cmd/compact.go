package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/lintsweep/internal/domain"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

var compactDryRunFlag bool

// compactCmd represents the compact command.
var compactCmd = newCompactCmd()

func newCompactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact",
		Short: "Rewrite the manifest keeping only still-violating entries",
		Long: `Compact reruns the linter over every file the manifest ignores and
rewrites the manifest keeping only the entries whose files still produce
error-severity violations. Comment and blank lines are preserved.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Compact(domain.CompactArgs{
				ListArgs: listArgs(),
				Reports:  m.Path(reportsFlag),
				DryRun:   compactDryRunFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&compactDryRunFlag, "dry-run", "n", false, "report what would change without writing")

	return cmd
}

func init() {
	rootCmd.AddCommand(compactCmd)
}
