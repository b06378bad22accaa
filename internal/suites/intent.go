// internal/suites/intent.go
package suites

import (
	"context"
	"fmt"
	"strings"

	"gauntlet/internal/harness"
)

type intentCase struct {
	text     string
	expected string
}

var intentCases = []intentCase{
	// search
	{"What is the weather in Tokyo?", "search"},
	{"Find me flights to Paris next week", "search"},
	{"What are the latest news headlines?", "search"},
	{"Look up the population of Canada", "search"},
	{"Search for vegan restaurants near me", "search"},
	{"Who won the 2024 Super Bowl?", "search"},
	{"Find reviews for the iPhone 15", "search"},
	// tool_call
	{"Send an email to Bob saying hello", "tool_call"},
	{"Set a reminder for 3pm tomorrow", "tool_call"},
	{"Create a new calendar event for Monday at 10am", "tool_call"},
	{"Turn off the living room lights", "tool_call"},
	{"Add milk to my shopping list", "tool_call"},
	{"Play my workout playlist on Spotify", "tool_call"},
	{"Schedule a meeting with Alice for Friday", "tool_call"},
	// answer
	{"What is 2 + 2?", "answer"},
	{"Summarize the theory of relativity", "answer"},
	{"Calculate the square root of 144", "answer"},
	{"What is the capital of France?", "answer"},
	{"Explain photosynthesis in simple terms", "answer"},
	{"How many ounces are in a pound?", "answer"},
	{"Define the word 'ubiquitous'", "answer"},
	// escalate
	{"I need to speak to a human agent", "escalate"},
	{"This is urgent, connect me to support", "escalate"},
	{"I want to file a formal complaint", "escalate"},
	{"Transfer me to a live representative now", "escalate"},
}

// gradeIntent applies the loose/strict classification rules to one response.
func gradeIntent(response, expected string) (loose, strict bool) {
	raw := strings.ToLower(response)
	strict = strings.TrimSpace(raw) == expected
	loose = strings.Contains(raw, expected)
	return loose, strict
}

// RunIntentClassification scores routing-label classification both strictly
// (exact label) and loosely (label appears anywhere); the headline accuracy
// is the loose one.
func RunIntentClassification(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Intent Classification")
	sysPrompt := harness.SystemPrompt("intent", cfg)
	correct := 0
	strictCount := 0

	for _, p := range intentCases {
		userContent := p.text
		if cfg.SystemStyle == "none" {
			userContent = "Classify into: search, tool_call, answer, escalate. " +
				"Reply with the category only.\n\n" + p.text
		}
		msgs := harness.BuildMessages(sysPrompt, userContent, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 16})
		if err != nil {
			return Result{}, err
		}
		raw := strings.ToLower(resp.Content)
		loose, strict := gradeIntent(resp.Content, p.expected)
		if loose {
			correct++
		}
		if strict {
			strictCount++
		}
		fmt.Printf("  [%s] %q -> %q (exp: %s)\n", mark(loose), truncate(p.text, 50), raw, p.expected)
	}

	total := len(intentCases)
	fmt.Printf("  Accuracy (loose): %d/%d (%.1f%%)\n", correct, total, percent(correct, total))
	fmt.Printf("  Accuracy (strict): %d/%d (%.1f%%)\n", strictCount, total, percent(strictCount, total))
	return Result{Metrics: map[string]float64{
		"correct_loose":    float64(correct),
		"correct_strict":   float64(strictCount),
		"total":            float64(total),
		"accuracy_percent": percent(correct, total),
	}}, nil
}
