// internal/runner/runner.go
// Package runner orchestrates the configuration matrix and renders the final
// comparison table.
package runner

import (
	"context"
	"fmt"
	"strings"

	"gauntlet/internal/harness"
	"gauntlet/internal/logging"
	"gauntlet/internal/resultstore"
	"gauntlet/internal/suites"
)

// Options select the slice of the matrix to run. Empty slices mean "all".
type Options struct {
	Models       []string
	ConfigFilter []string
	SuiteFilter  []string
	MaxContext   func(model string) int
}

// Results accumulates suite outcomes keyed by config label, preserving the
// order configs were run in.
type Results struct {
	Labels  []string
	BySuite map[string]map[string]suites.Result // label -> suite name -> result
}

// Runner drives every selected suite for every selected config sequentially.
type Runner struct {
	client harness.Chatter
	store  *resultstore.Store // nil when recording is off
}

// New builds a Runner. store may be nil to disable persistence.
func New(client harness.Chatter, store *resultstore.Store) *Runner {
	return &Runner{client: client, store: store}
}

// buildMatrix expands models into configs and applies the label-substring
// config filter.
func buildMatrix(opts Options) []harness.ModelConfig {
	models := opts.Models
	if len(models) == 0 {
		models = harness.DefaultModels
	}
	var all []harness.ModelConfig
	for _, model := range models {
		maxContext := 0
		if opts.MaxContext != nil {
			maxContext = opts.MaxContext(model)
		}
		for _, cfg := range harness.BuildConfigs(model, maxContext) {
			if matchesFilter(cfg.Label, opts.ConfigFilter) {
				all = append(all, cfg)
			}
		}
	}
	return all
}

func matchesFilter(label string, filters []string) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if strings.Contains(label, f) {
			return true
		}
	}
	return false
}

// Run executes the full matrix. Suite errors are recorded per cell; nothing
// short of a context cancellation aborts the sweep.
func (r *Runner) Run(ctx context.Context, opts Options) (*Results, error) {
	configs := buildMatrix(opts)
	if len(configs) == 0 {
		fmt.Println("No matching configs found. Available models:", strings.Join(harness.DefaultModels, ", "))
		fmt.Println("Config tags:", strings.Join(harness.ProfileTags(), ", "))
		return &Results{BySuite: map[string]map[string]suites.Result{}}, nil
	}

	suiteCount := len(opts.SuiteFilter)
	if suiteCount == 0 {
		suiteCount = len(suites.Registry)
	}
	fmt.Printf("\nWill run %d config(s), %d suite(s) each.\n", len(configs), suiteCount)
	labels := make([]string, len(configs))
	for i, cfg := range configs {
		labels[i] = cfg.Label
	}
	fmt.Printf("Configs: %s\n", strings.Join(labels, ", "))

	results := &Results{BySuite: make(map[string]map[string]suites.Result, len(configs))}
	for _, cfg := range configs {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results.Labels = append(results.Labels, cfg.Label)
		results.BySuite[cfg.Label] = r.runConfig(ctx, cfg, opts.SuiteFilter)
	}
	return results, nil
}

// runConfig runs the selected suites against one config in registry order.
func (r *Runner) runConfig(ctx context.Context, cfg harness.ModelConfig, suiteFilter []string) map[string]suites.Result {
	fmt.Printf("\n%s\n", strings.Repeat("#", 70))
	fmt.Printf("# CONFIG: %s\n", cfg.Label)
	fmt.Printf("#   temperature=%g  top_p=%g  num_ctx=%d  system_style=%s\n",
		cfg.Temperature, cfg.TopP, cfg.NumCtx, cfg.SystemStyle)
	fmt.Printf("%s\n", strings.Repeat("#", 70))

	selected := suiteFilter
	if len(selected) == 0 {
		selected = suites.Names()
	}

	out := make(map[string]suites.Result, len(selected))
	for _, name := range selected {
		suite, ok := suites.ByName(name)
		if !ok {
			fmt.Printf("\n  [WARN] Unknown suite: %s, skipping\n", name)
			continue
		}
		result, err := suite.Run(ctx, r.client, cfg)
		if err != nil {
			fmt.Printf("\n  [ERROR] Suite '%s' failed: %v\n", name, err)
			logging.LogEvent("suite failed: config=%s suite=%s err=%v", cfg.Label, name, err)
			result = suites.Result{Err: err.Error()}
		}
		out[name] = result
		r.record(cfg, name, result)
	}
	return out
}

// record persists one suite outcome when a store is attached. Persistence
// failures are logged, not fatal; the run itself already succeeded.
func (r *Runner) record(cfg harness.ModelConfig, suiteName string, result suites.Result) {
	if r.store == nil || result.Errored() {
		return
	}
	runID, err := r.store.CreateRun(cfg.Model, suiteName, cfg.Label, "")
	if err != nil {
		logging.LogEvent("record skipped: %v", err)
		return
	}
	metadata := map[string]string{
		"config_label": cfg.Label,
		"system_style": cfg.SystemStyle,
	}
	for metric, value := range result.Metrics {
		if err := r.store.RecordResult(runID, cfg.Model, cfg.Label, metric, value, metadata); err != nil {
			logging.LogEvent("record skipped: %v", err)
		}
	}
}
