// internal/cli/run.go
package gauntlet

import (
	"fmt"

	"github.com/spf13/cobra"

	"gauntlet/internal/catalog"
	"gauntlet/internal/harness"
	"gauntlet/internal/logging"
	"gauntlet/internal/resultstore"
	"gauntlet/internal/runner"
	"gauntlet/internal/suites"
)

var (
	runModels       []string
	runConfigFilter []string
	runSuites       []string
	runRecord       bool
)

// runCmd executes the configuration matrix: every selected suite against
// every selected (model, profile) combination, then a summary table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run test suites across the configuration matrix",
	Long: `Run every selected test suite against every selected model and config
profile, print per-case diagnostics as it goes, and finish with a
cross-config summary table. With --record, metrics are also persisted
to the results database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}
		defer logging.Close()

		suites.PythonBin = cfg.PythonPath()
		client := harness.New(cfg)

		var store *resultstore.Store
		if runRecord {
			var err error
			store, err = resultstore.Open(cfg.DatabasePath(), cfg.BackendName())
			if err != nil {
				return err
			}
			defer store.Close()
		}

		r := runner.New(client, store)
		results, err := r.Run(cmd.Context(), runner.Options{
			Models:       runModels,
			ConfigFilter: runConfigFilter,
			SuiteFilter:  runSuites,
			MaxContext:   catalogContextLookup(cfg.CatalogPath()),
		})
		if err != nil {
			return err
		}
		runner.PrintSummaryTable(results)
		return nil
	},
}

// catalogContextLookup resolves a model's context window from the catalog.
// The catalog is optional here: when it is missing or broken every model
// falls back to the default window.
func catalogContextLookup(path string) func(string) int {
	src, err := catalog.Load(path)
	if err != nil {
		return func(string) int { return 0 }
	}
	registry := catalog.NewRegistry(src)
	return func(model string) int {
		if entry, ok := registry.ByName(model); ok {
			return entry.ContextWindowTokens
		}
		return 0
	}
}

func init() {
	runCmd.Flags().StringSliceVarP(&runModels, "model", "m", nil, "model(s) to test (e.g. llama3:latest); defaults to all")
	runCmd.Flags().StringSliceVarP(&runConfigFilter, "configs", "c", nil, "config filter(s), substring match on config label (e.g. precise)")
	runCmd.Flags().StringSliceVarP(&runSuites, "suite", "s", nil, "suite(s) to run (e.g. latency); defaults to all")
	runCmd.Flags().BoolVar(&runRecord, "record", false, "persist metrics to the results database")
	rootCmd.AddCommand(runCmd)
}
