// internal/cli/list_tests.go
package gauntlet

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"gauntlet/internal/catalog"
)

// listTestsCmd prints every test definition in the catalog, grouped by suite.
var listTestsCmd = &cobra.Command{
	Use:   "tests",
	Short: "List all defined test suites",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		src, err := catalog.Load(cfg.CatalogPath())
		if err != nil {
			return err
		}

		suiteNames := make([]string, 0, len(src.Tests))
		for name := range src.Tests {
			suiteNames = append(suiteNames, name)
		}
		sort.Strings(suiteNames)

		fmt.Println("Test Suites")
		fmt.Printf("%-24s %-28s %-32s %s\n", "Suite", "Test", "Metric", "Description")
		fmt.Println(strings.Repeat("-", 110))
		for _, suiteName := range suiteNames {
			for _, t := range src.Tests[suiteName] {
				fmt.Printf("%-24s %-28s %-32s %s\n",
					suiteName, t.Name, strings.Join(t.MetricNames(), ", "), t.Description)
			}
		}
		return nil
	},
}

func init() {
	listCmd.AddCommand(listTestsCmd)
}
