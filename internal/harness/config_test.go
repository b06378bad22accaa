// internal/harness/config_test.go
package harness

import "testing"

// TestBuildConfigs verifies that a single model expands to exactly the five
// standard profiles with the documented parameter tuples and label format.
func TestBuildConfigs(t *testing.T) {
	configs := BuildConfigs("llama3:latest", 0)
	if len(configs) != 5 {
		t.Fatalf("expected 5 configs, got %d", len(configs))
	}

	want := []struct {
		label       string
		temperature float64
		topP        float64
		numCtx      int
		systemStyle string
	}{
		{"llama3:latest | precise", 0.0, 1.0, 4096, "detailed"},
		{"llama3:latest | creative", 0.7, 0.9, 4096, "detailed"},
		{"llama3:latest | minimal-prompt", 0.0, 1.0, 4096, "minimal"},
		{"llama3:latest | small-context", 0.0, 1.0, 2048, "detailed"},
		{"llama3:latest | large-context", 0.0, 1.0, 8192, "detailed"},
	}
	for i, w := range want {
		got := configs[i]
		if got.Label != w.label {
			t.Errorf("config %d: label = %q, want %q", i, got.Label, w.label)
		}
		if got.Temperature != w.temperature {
			t.Errorf("config %d: temperature = %g, want %g", i, got.Temperature, w.temperature)
		}
		if got.TopP != w.topP {
			t.Errorf("config %d: top_p = %g, want %g", i, got.TopP, w.topP)
		}
		if got.NumCtx != w.numCtx {
			t.Errorf("config %d: num_ctx = %d, want %d", i, got.NumCtx, w.numCtx)
		}
		if got.SystemStyle != w.systemStyle {
			t.Errorf("config %d: system_style = %q, want %q", i, got.SystemStyle, w.systemStyle)
		}
		if got.Model != "llama3:latest" {
			t.Errorf("config %d: model = %q", i, got.Model)
		}
	}
}

func TestBuildConfigsMaxContext(t *testing.T) {
	configs := BuildConfigs("m", 0)
	for _, cfg := range configs {
		if cfg.MaxContext != DefaultMaxContext {
			t.Fatalf("zero maxContext should fall back to %d, got %d", DefaultMaxContext, cfg.MaxContext)
		}
	}

	configs = BuildConfigs("m", 32768)
	for _, cfg := range configs {
		if cfg.MaxContext != 32768 {
			t.Fatalf("explicit maxContext not carried: got %d", cfg.MaxContext)
		}
	}
}

func TestProfileTags(t *testing.T) {
	tags := ProfileTags()
	want := []string{"precise", "creative", "minimal-prompt", "small-context", "large-context"}
	if len(tags) != len(want) {
		t.Fatalf("expected %d tags, got %d", len(want), len(tags))
	}
	for i := range want {
		if tags[i] != want[i] {
			t.Errorf("tag %d = %q, want %q", i, tags[i], want[i])
		}
	}
}
