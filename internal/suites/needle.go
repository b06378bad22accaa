// internal/suites/needle.go
package suites

import (
	"context"
	"fmt"
	"strings"

	"gauntlet/internal/harness"
)

type needleCase struct {
	fact   string
	query  string
	answer string
}

var needleCases = []needleCase{
	{"The secret launch code is AURORA-7749.", "What is the secret launch code?", "aurora-7749"},
	{"The password for the vault is DIAMOND-3821.", "What is the vault password?", "diamond-3821"},
	{"Project Chimera will launch on March 15th, 2025.", "When will Project Chimera launch?", "march 15"},
	{"The contact email is ops-team@example.org.", "What is the contact email?", "ops-team@example.org"},
	{"The emergency shutdown phrase is 'blue harvest moon'.", "What is the emergency shutdown phrase?", "blue harvest moon"},
}

type needlePosition struct {
	label string
	frac  float64
}

var needlePositions = []needlePosition{
	{"beginning", 0.05},
	{"quarter", 0.25},
	{"middle", 0.50},
	{"three-quarter", 0.75},
	{"end", 0.95},
}

// RunNeedleInHaystack buries each fact at five depths in filler sized to the
// config's context window and asks for it back. The haystack rides in the
// system message so the fact competes with the full context, not just the
// user turn.
func RunNeedleInHaystack(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Needle in Haystack")
	recalled := 0
	total := 0

	for _, n := range needleCases {
		for _, pos := range needlePositions {
			total++
			haystack := harness.BuildHaystack(n.fact, pos.frac, cfg.NumCtx)
			msgs := []harness.Message{
				{Role: "system", Content: haystack},
				{Role: "user", Content: n.query},
			}
			resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 64})
			if err != nil {
				return Result{}, err
			}
			found := strings.Contains(strings.ToLower(resp.Content), n.answer)
			if found {
				recalled++
			}
			fmt.Printf("  [%s] needle@%s: %s...\n", mark(found), pos.label, truncate(n.fact, 40))
		}
	}

	fmt.Printf("  Recalled: %d/%d (%.1f%%)\n", recalled, total, percent(recalled, total))
	return Result{Metrics: map[string]float64{
		"recalled":       float64(recalled),
		"total":          float64(total),
		"recall_percent": percent(recalled, total),
	}}, nil
}
