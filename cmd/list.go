package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List manifest entries and their remaining violations",
		Long: `List resolves every manifest entry to its matching files, drops files
that already carry a blanket disable comment, and shows how many
error-severity violations each remaining file still produces.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(listArgs())
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
