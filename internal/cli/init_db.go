// internal/cli/init_db.go
package gauntlet

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"gauntlet/internal/resultstore"
)

// initCmd creates the results database and applies the schema.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the results database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		store, err := resultstore.Open(cfg.DatabasePath(), cfg.BackendName())
		if err != nil {
			return err
		}
		if err := store.Close(); err != nil {
			return err
		}
		fmt.Println(color.GreenString("Database initialized at %s", cfg.DatabasePath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
