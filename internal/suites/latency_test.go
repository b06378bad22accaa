// internal/suites/latency_test.go
package suites

import (
	"context"
	"testing"

	"gauntlet/internal/harness"
)

func TestRunLatencyMetrics(t *testing.T) {
	var maxTokensSeen []int
	client := chatFunc(func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
		maxTokensSeen = append(maxTokensSeen, opts.MaxTokens)
		return harness.ChatResponse{
			Content: "pong",
			Usage:   harness.Usage{PromptTokens: 5, CompletionTokens: 20},
		}, nil
	})

	result, err := RunLatency(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite error: %v", err)
	}

	want := []int{8, 32, 128, 300}
	if len(maxTokensSeen) != len(want) {
		t.Fatalf("calls = %d, want %d", len(maxTokensSeen), len(want))
	}
	for i := range want {
		if maxTokensSeen[i] != want[i] {
			t.Errorf("call %d max tokens = %d, want %d", i, maxTokensSeen[i], want[i])
		}
	}

	if _, ok := result.Metrics["cold_start_s"]; !ok {
		t.Error("missing cold_start_s metric")
	}
	tps, ok := result.Metrics["avg_tps"]
	if !ok {
		t.Fatal("missing avg_tps metric")
	}
	if tps <= 0 {
		t.Fatalf("avg_tps = %g, want > 0", tps)
	}
}
