// internal/cli/show.go
package gauntlet

import "github.com/spf13/cobra"

// showCmd groups the inspection subcommands.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show harness state",
}

func init() {
	rootCmd.AddCommand(showCmd)
}
