// internal/suites/code.go
package suites

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"gauntlet/internal/harness"
)

// PythonBin is the interpreter used to execute generated snippets. The CLI
// overrides it from configuration before any suite runs.
var PythonBin = "python3"

const codeRunTimeout = 15 * time.Second

type codeCase struct {
	prompt         string
	expectedOutput string
}

var codeCases = []codeCase{
	{
		prompt:         "Write a Python function called 'fibonacci' that returns the nth Fibonacci number. Then print fibonacci(10).",
		expectedOutput: "55",
	},
	{
		prompt:         "Write a Python function that checks if a string is a palindrome. Then print the result for 'racecar'.",
		expectedOutput: "True",
	},
	{
		prompt:         "Write a Python function that flattens a nested list. Then print the result for [[1,2],[3,[4,5]]].",
		expectedOutput: "[1, 2, 3, 4, 5]",
	},
	{
		prompt:         "Write a Python function 'is_prime(n)' that returns True if n is prime. Print is_prime(17).",
		expectedOutput: "True",
	},
	{
		prompt:         "Write a Python function 'factorial(n)' using recursion. Print factorial(6).",
		expectedOutput: "720",
	},
	{
		prompt:         "Write a Python function 'reverse_string(s)' that reverses a string without slicing. Print reverse_string('hello').",
		expectedOutput: "olleh",
	},
	{
		prompt:         "Write a Python function 'count_vowels(s)' that returns the number of vowels. Print count_vowels('education').",
		expectedOutput: "5",
	},
	{
		prompt:         "Write a Python function 'merge_sorted(a, b)' that merges two sorted lists. Print merge_sorted([1,3,5],[2,4,6]).",
		expectedOutput: "[1, 2, 3, 4, 5, 6]",
	},
}

type codeOutcome struct {
	ranOK    bool
	timedOut bool
	stdout   string
	stderr   string
}

// runPythonSnippet writes the snippet to a temp file and executes it under a
// hard deadline. The temp file is removed no matter how the run ends.
func runPythonSnippet(ctx context.Context, code string) (codeOutcome, error) {
	tmp, err := os.CreateTemp("", "gauntlet-*.py")
	if err != nil {
		return codeOutcome{}, fmt.Errorf("code: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(code); err != nil {
		tmp.Close()
		return codeOutcome{}, fmt.Errorf("code: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return codeOutcome{}, fmt.Errorf("code: close temp file: %w", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, codeRunTimeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, PythonBin, tmpPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	out := codeOutcome{
		stdout: strings.TrimSpace(stdout.String()),
		stderr: strings.TrimSpace(stderr.String()),
	}
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		out.timedOut = true
		return out, nil
	}
	out.ranOK = runErr == nil
	return out, nil
}

// RunCodeGeneration asks for small Python programs, executes each one, and
// grades in two tiers: the program ran cleanly, and its stdout contained the
// expected value.
func RunCodeGeneration(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Code Generation")
	sysPrompt := harness.SystemPrompt("code", cfg)
	runSuccess := 0
	outputCorrect := 0

	for _, cc := range codeCases {
		promptText := cc.prompt
		if cfg.SystemStyle == "none" {
			promptText = "Reply with ONLY executable Python code, no explanation.\n\n" + promptText
		}
		msgs := harness.BuildMessages(sysPrompt, promptText, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 512})
		if err != nil {
			return Result{}, err
		}
		code := harness.StripMarkdownFences(resp.Content)

		outcome, err := runPythonSnippet(ctx, code)
		if err != nil {
			return Result{}, err
		}
		switch {
		case outcome.timedOut:
			fmt.Printf("  [%s] %s...\n", timeoutMark, truncate(cc.prompt, 55))
		case outcome.ranOK && strings.Contains(outcome.stdout, cc.expectedOutput):
			runSuccess++
			outputCorrect++
			fmt.Printf("  [%s] %s...\n", passMark, truncate(cc.prompt, 55))
		case outcome.ranOK:
			runSuccess++
			fmt.Printf("  [RUN_OK] %s...\n", truncate(cc.prompt, 55))
			fmt.Printf("           Expected %q, got %q\n", cc.expectedOutput, truncate(outcome.stdout, 80))
		default:
			fmt.Printf("  [%s] %s...\n", failMark, truncate(cc.prompt, 55))
			fmt.Printf("         Error: %s\n", truncate(outcome.stderr, 120))
		}
	}

	total := len(codeCases)
	fmt.Printf("  Runs OK: %d/%d (%.1f%%)\n", runSuccess, total, percent(runSuccess, total))
	fmt.Printf("  Output correct: %d/%d (%.1f%%)\n", outputCorrect, total, percent(outputCorrect, total))
	return Result{Metrics: map[string]float64{
		"run_success":         float64(runSuccess),
		"output_correct":      float64(outputCorrect),
		"total":               float64(total),
		"run_percent":         percent(runSuccess, total),
		"correctness_percent": percent(outputCorrect, total),
	}}, nil
}
