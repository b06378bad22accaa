// internal/suites/instruction.go
package suites

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gauntlet/internal/harness"
)

type instructionCase struct {
	instruction string
	validate    func(string) bool
	desc        string
}

var instructionCases = []instructionCase{
	{
		instruction: "Reply with exactly 3 words.",
		validate:    func(r string) bool { return len(strings.Fields(r)) == 3 },
		desc:        "exactly 3 words",
	},
	{
		instruction: "Reply with your answer in ALL UPPERCASE letters.",
		validate:    func(r string) bool { return r == strings.ToUpper(r) && len(r) > 2 },
		desc:        "all uppercase",
	},
	{
		instruction: "List 3 colors, each on a new line. No numbering, no bullets.",
		validate:    func(r string) bool { return countNonEmptyLines(r) == 3 },
		desc:        "3 colors on separate lines",
	},
	{
		instruction: "Reply with a numbered list of 5 items (fruits). Use the format '1. item'.",
		validate: func(r string) bool {
			for i := 1; i <= 5; i++ {
				if !strings.Contains(r, strconv.Itoa(i)+".") {
					return false
				}
			}
			return true
		},
		desc: "numbered list 1-5",
	},
	{
		instruction: "Reply with exactly one sentence that ends with a period.",
		validate: func(r string) bool {
			return strings.Count(r, ".") == 1 && strings.HasSuffix(strings.TrimSpace(r), ".")
		},
		desc: "one sentence ending with period",
	},
	{
		instruction: "Reply with 'YES' and nothing else.",
		validate:    func(r string) bool { return strings.ToUpper(strings.TrimSpace(r)) == "YES" },
		desc:        "just YES",
	},
	{
		instruction: "Reply with a single integer between 1 and 10.",
		validate: func(r string) bool {
			n, err := strconv.Atoi(strings.TrimSpace(r))
			return err == nil && n >= 1 && n <= 10
		},
		desc: "single integer 1-10",
	},
	{
		instruction: "Reply with exactly 2 sentences. The first must start with 'The' and the second with 'It'.",
		validate:    twoSentencesTheIt,
		desc:        "2 sentences starting with The/It",
	},
	{
		instruction: "Reply with a comma-separated list of exactly 4 animals.",
		validate: func(r string) bool {
			count := 0
			for _, part := range strings.Split(r, ",") {
				if strings.TrimSpace(part) != "" {
					count++
				}
			}
			return count == 4
		},
		desc: "4 comma-separated animals",
	},
	{
		instruction: "Reply with the word 'hello' repeated exactly 3 times, separated by spaces.",
		validate: func(r string) bool {
			return strings.ToLower(strings.TrimSpace(r)) == "hello hello hello"
		},
		desc: "hello hello hello",
	},
}

func countNonEmptyLines(r string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(r), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// twoSentencesTheIt requires exactly two period-terminated sentences, the
// first opening with "The" and the second with "It".
func twoSentencesTheIt(r string) bool {
	var sentences []string
	for _, part := range strings.Split(strings.TrimSpace(r), ".") {
		if s := strings.TrimSpace(part); s != "" {
			sentences = append(sentences, s)
		}
	}
	return len(sentences) == 2 &&
		strings.HasPrefix(sentences[0], "The") &&
		strings.HasPrefix(sentences[1], "It")
}

// RunInstructionFollowing grades formatting constraints with per-case
// predicates over the raw response text.
func RunInstructionFollowing(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Instruction Following")
	sysPrompt := harness.SystemPrompt("instruction", cfg)
	correct := 0

	for _, ic := range instructionCases {
		userText := ic.instruction
		if cfg.SystemStyle == "none" {
			userText = "Follow these instructions exactly.\n\n" + userText
		}
		msgs := harness.BuildMessages(sysPrompt, userText, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 128})
		if err != nil {
			return Result{}, err
		}
		passed := ic.validate(resp.Content)
		if passed {
			correct++
		}
		fmt.Printf("  [%s] %s: %q\n", passFail(passed), ic.desc, truncate(resp.Content, 60))
	}

	total := len(instructionCases)
	fmt.Printf("  Passed: %d/%d (%.1f%%)\n", correct, total, percent(correct, total))
	return Result{Metrics: map[string]float64{
		"correct":          float64(correct),
		"total":            float64(total),
		"accuracy_percent": percent(correct, total),
	}}, nil
}
