// internal/catalog/catalog.go
// Package catalog loads and indexes the model catalog document (source.json).
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LLMEntry describes one model in the catalog.
type LLMEntry struct {
	Name                     string   `json:"name"`
	SizeB                    float64  `json:"size_b"`
	Type                     string   `json:"type"`
	PrimaryRole              []string `json:"primary_role"`
	RecommendedQuantizations []string `json:"recommended_quantizations"`
	ContextWindowTokens      int      `json:"context_window_tokens"`
	Notes                    string   `json:"notes"`
}

// TestSpec is one test definition listed under a suite in the catalog.
type TestSpec struct {
	Name        string          `json:"name"`
	Metric      json.RawMessage `json:"metric"`
	Description string          `json:"description"`
}

// MetricNames decodes the metric field, which the document stores as either a
// single string or a list of strings.
func (t TestSpec) MetricNames() []string {
	var one string
	if err := json.Unmarshal(t.Metric, &one); err == nil {
		return []string{one}
	}
	var many []string
	if err := json.Unmarshal(t.Metric, &many); err == nil {
		return many
	}
	return nil
}

// Source is the parsed catalog document.
type Source struct {
	LLMs            []LLMEntry            `json:"LLMS"`
	Characteristics map[string]string     `json:"MODEL_CHARACTERISTIC"`
	Tests           map[string][]TestSpec `json:"TEST"`
}

// requiredKeys must all be present at the top level of the document.
var requiredKeys = []string{"LLMS", "MODEL_CHARACTERISTIC", "TEST"}

// Load parses and validates the catalog document. A missing file or a missing
// required key is an error; callers treat both as fatal.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog: source file not found: %s", path)
		}
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("catalog: missing required key %q in %s", key, path)
		}
	}

	var src Source
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	return &src, nil
}

// Registry is an in-memory index over the catalog's model entries.
type Registry struct {
	Models []LLMEntry
}

// NewRegistry builds a registry from the loaded source document.
func NewRegistry(src *Source) *Registry {
	return &Registry{Models: src.LLMs}
}

// ByName returns the entry with the given name, or false when absent.
func (r *Registry) ByName(name string) (LLMEntry, bool) {
	for _, m := range r.Models {
		if m.Name == name {
			return m, true
		}
	}
	return LLMEntry{}, false
}

// ByRole returns every entry listing the given primary role.
func (r *Registry) ByRole(role string) []LLMEntry {
	var out []LLMEntry
	for _, m := range r.Models {
		for _, got := range m.PrimaryRole {
			if got == role {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// ByMaxSize returns every entry at or below the given parameter count in
// billions.
func (r *Registry) ByMaxSize(maxB float64) []LLMEntry {
	var out []LLMEntry
	for _, m := range r.Models {
		if m.SizeB <= maxB {
			out = append(out, m)
		}
	}
	return out
}

// Names returns all model names in catalog order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Models))
	for i, m := range r.Models {
		names[i] = m.Name
	}
	return names
}
