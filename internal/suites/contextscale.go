// internal/suites/contextscale.go
package suites

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gauntlet/internal/harness"
)

var contextCheckpoints = []float64{0.25, 0.50, 0.75, 1.00}

// contextScalingTimeout replaces the default request timeout; filling the
// whole window can take far longer than a normal exchange.
const contextScalingTimeout = 120 * time.Second

// RunContextScaling repeats a fixed midpoint recall probe at growing fractions
// of the config's context window. A failed request at one checkpoint counts
// as a miss and the remaining checkpoints still run.
func RunContextScaling(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Context Scaling")
	const (
		secret    = "The project codename is FALCON-ECHO-42."
		query     = "What is the project codename?"
		answerKey = "falcon-echo-42"
	)
	recalled := 0

	for _, frac := range contextCheckpoints {
		targetCtx := int(float64(cfg.NumCtx) * frac)
		haystack := harness.BuildHaystack(secret, 0.5, targetCtx)
		msgs := []harness.Message{
			{Role: "system", Content: haystack},
			{Role: "user", Content: query},
		}
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 64, Timeout: contextScalingTimeout})
		if err != nil {
			fmt.Printf("  [%s] %d%% of num_ctx (%d tokens): %v\n", errMark, int(frac*100), targetCtx, err)
			continue
		}
		found := strings.Contains(strings.ToLower(resp.Content), answerKey)
		if found {
			recalled++
		}
		fmt.Printf("  [%s] %d%% of num_ctx (%d tokens)\n", mark(found), int(frac*100), targetCtx)
	}

	total := len(contextCheckpoints)
	fmt.Printf("  Recalled: %d/%d (%.1f%%)\n", recalled, total, percent(recalled, total))
	return Result{Metrics: map[string]float64{
		"recalled":       float64(recalled),
		"total":          float64(total),
		"recall_percent": percent(recalled, total),
	}}, nil
}
