// internal/catalog/catalog_test.go
package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleSource = `{
  "LLMS": [
    {
      "name": "llama3:latest",
      "size_b": 8.0,
      "type": "dense",
      "primary_role": ["general", "chat"],
      "recommended_quantizations": ["Q4_K_M"],
      "context_window_tokens": 8192,
      "notes": "baseline"
    },
    {
      "name": "qwen3:latest",
      "size_b": 14.0,
      "type": "dense",
      "primary_role": ["general", "code"],
      "recommended_quantizations": ["Q4_K_M", "Q8_0"],
      "context_window_tokens": 32768
    }
  ],
  "MODEL_CHARACTERISTIC": {"quantization": "weight precision"},
  "TEST": {
    "latency": [
      {"name": "cold_start", "metric": "cold_start_s", "description": "first token delay"}
    ],
    "context": [
      {"name": "needle", "metric": ["recall_percent", "total"], "description": "recall at depth"}
    ]
  }
}`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	src, err := Load(writeSource(t, sampleSource))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(src.LLMs) != 2 {
		t.Fatalf("models = %d, want 2", len(src.LLMs))
	}
	if src.LLMs[0].Name != "llama3:latest" || src.LLMs[0].ContextWindowTokens != 8192 {
		t.Fatalf("first entry wrong: %+v", src.LLMs[0])
	}
	if len(src.Tests) != 2 {
		t.Fatalf("test suites = %d, want 2", len(src.Tests))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("missing file should be an error")
	}
}

// TestLoadMissingRequiredKey checks each of the three top-level keys is
// mandatory.
func TestLoadMissingRequiredKey(t *testing.T) {
	cases := []string{
		`{"MODEL_CHARACTERISTIC": {}, "TEST": {}}`,
		`{"LLMS": [], "TEST": {}}`,
		`{"LLMS": [], "MODEL_CHARACTERISTIC": {}}`,
	}
	for _, content := range cases {
		if _, err := Load(writeSource(t, content)); err == nil {
			t.Errorf("source %s should fail validation", content)
		}
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	if _, err := Load(writeSource(t, `{"LLMS": [`)); err == nil {
		t.Fatal("invalid JSON should be an error")
	}
}

func TestRegistryQueries(t *testing.T) {
	src, err := Load(writeSource(t, sampleSource))
	if err != nil {
		t.Fatal(err)
	}
	r := NewRegistry(src)

	if entry, ok := r.ByName("qwen3:latest"); !ok || entry.SizeB != 14.0 {
		t.Fatalf("ByName = %+v, %v", entry, ok)
	}
	if _, ok := r.ByName("missing"); ok {
		t.Fatal("ByName should miss on unknown model")
	}

	general := r.ByRole("general")
	if len(general) != 2 {
		t.Fatalf("ByRole(general) = %d entries, want 2", len(general))
	}
	code := r.ByRole("code")
	if len(code) != 1 || code[0].Name != "qwen3:latest" {
		t.Fatalf("ByRole(code) = %+v", code)
	}

	small := r.ByMaxSize(10)
	if len(small) != 1 || small[0].Name != "llama3:latest" {
		t.Fatalf("ByMaxSize(10) = %+v", small)
	}

	names := r.Names()
	if len(names) != 2 || names[0] != "llama3:latest" {
		t.Fatalf("Names = %v", names)
	}
}

func TestMetricNames(t *testing.T) {
	src, err := Load(writeSource(t, sampleSource))
	if err != nil {
		t.Fatal(err)
	}

	single := src.Tests["latency"][0].MetricNames()
	if len(single) != 1 || single[0] != "cold_start_s" {
		t.Fatalf("single metric = %v", single)
	}
	multi := src.Tests["context"][0].MetricNames()
	if len(multi) != 2 || multi[0] != "recall_percent" || multi[1] != "total" {
		t.Fatalf("multi metric = %v", multi)
	}
}
