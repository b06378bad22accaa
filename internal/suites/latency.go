// internal/suites/latency.go
package suites

import (
	"context"
	"fmt"
	"time"

	"gauntlet/internal/harness"
)

type latencyPrompt struct {
	label     string
	prompt    string
	maxTokens int
}

var latencyPrompts = []latencyPrompt{
	{"short", "Say hello.", 32},
	{"medium", "Explain what a hash table is in two sentences.", 128},
	{"long", "Write a detailed paragraph about the history of the internet.", 300},
}

// RunLatency measures cold-start latency plus throughput across three fixed
// prompt sizes. The cold-start call reuses the light intent prompt so the
// first request after idle is representative.
func RunLatency(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Latency Test")

	start := time.Now()
	sysPrompt := harness.SystemPrompt("intent", cfg)
	msgs := harness.BuildMessages(sysPrompt, "ping", cfg.SystemStyle, "Reply with pong.")
	if _, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 8}); err != nil {
		return Result{}, err
	}
	coldStart := time.Since(start).Seconds()
	fmt.Printf("  Cold-start latency: %.3fs\n", coldStart)

	var tpsSum float64
	for _, p := range latencyPrompts {
		msgs := harness.BuildMessages("", p.prompt, "detailed", "")
		start := time.Now()
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: p.maxTokens})
		if err != nil {
			return Result{}, err
		}
		elapsed := time.Since(start).Seconds()
		tps := 0.0
		if elapsed > 0 {
			tps = float64(resp.Usage.CompletionTokens) / elapsed
		}
		tpsSum += round1(tps)
		fmt.Printf("  [%s] %.3fs | %d tokens | %.1f tok/s\n", p.label, elapsed, resp.Usage.CompletionTokens, tps)
	}

	return Result{Metrics: map[string]float64{
		"cold_start_s": round3(coldStart),
		"avg_tps":      round1(tpsSum / float64(len(latencyPrompts))),
	}}, nil
}
