// internal/cli/show_config.go
package gauntlet

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// showConfigCmd echoes the merged configuration so users can verify which
// file was loaded and how flags overrode it.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON configs are loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		file := viper.ConfigFileUsed()
		if file == "" {
			fmt.Println("No config file loaded (using defaults).")
		} else {
			fmt.Printf("Config file: %s\n\n", file)
		}

		cfg := GetConfig()
		fmt.Println("Current configuration:")
		fmt.Printf("  Base URL:        %s\n", cfg.ServerURL())
		fmt.Printf("  Backend:         %s\n", cfg.BackendName())
		fmt.Printf("  Catalog:         %s\n", cfg.CatalogPath())
		fmt.Printf("  Database:        %s\n", cfg.DatabasePath())
		fmt.Printf("  Request timeout: %s\n", cfg.RequestTimeout())
		fmt.Printf("  Python binary:   %s\n", cfg.PythonPath())
		fmt.Printf("  Log file:        %s\n", cfg.LogFilePath())
		fmt.Printf("  Debug:           %v\n", cfg.Debug)
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
