// internal/harness/config.go
// Package harness holds the building blocks shared by every test suite:
// the configuration-matrix profiles, the system-prompt registry, the chat
// client for the inference server, and the long-context haystack builder.
package harness

import "fmt"

// ModelConfig is one named combination of sampling and context parameters.
// Instances are immutable once built; every suite consumes them read-only.
type ModelConfig struct {
	Model       string
	Label       string
	Temperature float64
	TopP        float64
	NumCtx      int
	SystemStyle string // "minimal", "detailed", "none"
	MaxContext  int
}

// DefaultMaxContext is assumed when the catalog has no entry for a model.
const DefaultMaxContext = 8192

// DefaultModels are tested when no --model flag is given.
var DefaultModels = []string{
	"llama3:latest",
	"deepseek-r1:latest",
	"qwen3:latest",
}

type profile struct {
	tag         string
	temperature float64
	topP        float64
	numCtx      int
	systemStyle string
}

var profiles = []profile{
	{"precise", 0.0, 1.0, 4096, "detailed"},
	{"creative", 0.7, 0.9, 4096, "detailed"},
	{"minimal-prompt", 0.0, 1.0, 4096, "minimal"},
	{"small-context", 0.0, 1.0, 2048, "detailed"},
	{"large-context", 0.0, 1.0, 8192, "detailed"},
}

// ProfileTags lists the five standard profile tags in build order.
func ProfileTags() []string {
	tags := make([]string, len(profiles))
	for i, p := range profiles {
		tags[i] = p.tag
	}
	return tags
}

// BuildConfigs returns the five standard configs for a model. maxContext <= 0
// falls back to DefaultMaxContext.
func BuildConfigs(model string, maxContext int) []ModelConfig {
	if maxContext <= 0 {
		maxContext = DefaultMaxContext
	}
	configs := make([]ModelConfig, 0, len(profiles))
	for _, p := range profiles {
		configs = append(configs, ModelConfig{
			Model:       model,
			Label:       fmt.Sprintf("%s | %s", model, p.tag),
			Temperature: p.temperature,
			TopP:        p.topP,
			NumCtx:      p.numCtx,
			SystemStyle: p.systemStyle,
			MaxContext:  maxContext,
		})
	}
	return configs
}
