// internal/suites/multiturn.go
package suites

import (
	"context"
	"fmt"
	"strings"

	"gauntlet/internal/harness"
)

type multiTurnCase struct {
	desc     string
	turns    []harness.Message
	validate func(string) bool
}

var multiTurnCases = []multiTurnCase{
	{
		desc: "Name recall",
		turns: []harness.Message{
			{Role: "user", Content: "My name is Alice."},
			{Role: "assistant", Content: "Nice to meet you, Alice!"},
			{Role: "user", Content: "What is my name?"},
		},
		validate: func(r string) bool { return strings.Contains(strings.ToLower(r), "alice") },
	},
	{
		desc: "Fact tracking",
		turns: []harness.Message{
			{Role: "user", Content: "I have a dog named Max."},
			{Role: "assistant", Content: "That's a great name for a dog!"},
			{Role: "user", Content: "I also have a cat named Luna."},
			{Role: "assistant", Content: "Max and Luna, lovely pets!"},
			{Role: "user", Content: "What are my pets' names?"},
		},
		validate: func(r string) bool {
			low := strings.ToLower(r)
			return strings.Contains(low, "max") && strings.Contains(low, "luna")
		},
	},
	{
		desc: "Instruction persistence",
		turns: []harness.Message{
			{Role: "user", Content: "From now on, end every reply with '-- AI'."},
			{Role: "assistant", Content: "Understood, I will do that. -- AI"},
			{Role: "user", Content: "What is 2 + 2?"},
		},
		validate: func(r string) bool {
			low := strings.ToLower(r)
			return strings.Contains(low, "-- ai") || strings.Contains(low, "--ai")
		},
	},
	{
		desc: "Context accumulation",
		turns: []harness.Message{
			{Role: "user", Content: "Remember: the sky is green in my world."},
			{Role: "assistant", Content: "Got it, the sky is green in your world."},
			{Role: "user", Content: "What color is the sky in my world?"},
		},
		validate: func(r string) bool { return strings.Contains(strings.ToLower(r), "green") },
	},
	{
		desc: "Number tracking",
		turns: []harness.Message{
			{Role: "user", Content: "I'm thinking of the number 42."},
			{Role: "assistant", Content: "Noted, your number is 42."},
			{Role: "user", Content: "Now multiply my number by 2."},
			{Role: "assistant", Content: "42 times 2 is 84."},
			{Role: "user", Content: "What was my original number?"},
		},
		validate: func(r string) bool { return strings.Contains(r, "42") },
	},
	{
		desc: "Preference recall",
		turns: []harness.Message{
			{Role: "user", Content: "My favorite color is blue and my favorite food is pizza."},
			{Role: "assistant", Content: "Blue and pizza, noted!"},
			{Role: "user", Content: "What is my favorite color?"},
		},
		validate: func(r string) bool { return strings.Contains(strings.ToLower(r), "blue") },
	},
}

// RunMultiTurnCoherence replays scripted conversations with the assistant
// turns pre-filled and grades only the model's final reply.
func RunMultiTurnCoherence(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Multi-Turn Coherence")
	correct := 0

	for _, mc := range multiTurnCases {
		resp, err := c.Chat(ctx, cfg, mc.turns, harness.ChatOptions{MaxTokens: 128})
		if err != nil {
			return Result{}, err
		}
		passed := mc.validate(resp.Content)
		if passed {
			correct++
		}
		fmt.Printf("  [%s] %s: %q\n", passFail(passed), mc.desc, truncate(resp.Content, 60))
	}

	total := len(multiTurnCases)
	fmt.Printf("  Passed: %d/%d (%.1f%%)\n", correct, total, percent(correct, total))
	return Result{Metrics: map[string]float64{
		"correct":          float64(correct),
		"total":            float64(total),
		"accuracy_percent": percent(correct, total),
	}}, nil
}
