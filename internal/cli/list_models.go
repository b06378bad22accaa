// internal/cli/list_models.go
package gauntlet

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"gauntlet/internal/catalog"
)

// listModelsCmd prints every model in the catalog with its headline fields.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List all models in the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		src, err := catalog.Load(cfg.CatalogPath())
		if err != nil {
			return err
		}
		registry := catalog.NewRegistry(src)

		fmt.Println("Model Catalog")
		fmt.Printf("%-28s %9s  %-12s %-28s %10s\n", "Name", "Size (B)", "Type", "Roles", "Context")
		fmt.Println(strings.Repeat("-", 92))
		for _, m := range registry.Models {
			fmt.Printf("%-28s %9.1f  %-12s %-28s %10d\n",
				m.Name, m.SizeB, m.Type, strings.Join(m.PrimaryRole, ", "), m.ContextWindowTokens)
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}
