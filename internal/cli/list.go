// internal/cli/list.go
package gauntlet

import "github.com/spf13/cobra"

// listCmd groups the catalog listing subcommands.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog contents",
}

func init() {
	rootCmd.AddCommand(listCmd)
}
