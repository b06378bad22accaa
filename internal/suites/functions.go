// internal/suites/functions.go
package suites

import (
	"context"
	"fmt"
	"strings"

	"gauntlet/internal/harness"
)

var availableTools = []string{
	"get_weather", "send_email", "search_web", "create_calendar_event",
	"set_reminder", "get_stock_price", "translate_text", "get_directions",
	"play_music", "set_alarm",
}

type functionCase struct {
	query    string
	expected string
}

var functionCases = []functionCase{
	{"What's the weather like in New York?", "get_weather"},
	{"Send a message to alice@example.com about the meeting", "send_email"},
	{"Find information about quantum computing", "search_web"},
	{"Book a meeting with Bob on Tuesday at 2pm", "create_calendar_event"},
	{"Remind me to buy groceries at 5pm", "set_reminder"},
	{"How is Apple stock doing today?", "get_stock_price"},
	{"How do you say 'hello' in Japanese?", "translate_text"},
	{"How do I get from Boston to New York by car?", "get_directions"},
	{"Play some jazz music", "play_music"},
	{"Wake me up at 7am tomorrow", "set_alarm"},
	{"What's the temperature in London right now?", "get_weather"},
	{"Email the report to the team", "send_email"},
	{"Look up the latest research on AI safety", "search_web"},
	{"Schedule a dentist appointment for next Monday", "create_calendar_event"},
	{"What is Tesla's current share price?", "get_stock_price"},
}

// RunFunctionSelection checks whether the model names the right tool for each
// query. Matching is containment, so a short sentence wrapped around the tool
// name still counts.
func RunFunctionSelection(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Function Selection")
	sysPrompt := harness.SystemPrompt("function", cfg)
	toolsList := strings.Join(availableTools, ", ")
	correct := 0

	for _, fc := range functionCases {
		userText := fmt.Sprintf("Available tools: [%s]\n\nUser query: %s", toolsList, fc.query)
		if cfg.SystemStyle == "none" {
			userText = "Pick the best tool name from the list. Reply with the name only.\n\n" + userText
		}
		msgs := harness.BuildMessages(sysPrompt, userText, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 32})
		if err != nil {
			return Result{}, err
		}
		raw := strings.TrimSpace(strings.ToLower(resp.Content))
		matched := strings.Contains(raw, fc.expected)
		if matched {
			correct++
		}
		fmt.Printf("  [%s] %q -> %q (exp: %s)\n", mark(matched), truncate(fc.query, 45), raw, fc.expected)
	}

	total := len(functionCases)
	fmt.Printf("  Accuracy: %d/%d (%.1f%%)\n", correct, total, percent(correct, total))
	return Result{Metrics: map[string]float64{
		"correct":          float64(correct),
		"total":            float64(total),
		"accuracy_percent": percent(correct, total),
	}}, nil
}
