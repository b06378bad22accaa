// internal/suites/functions_test.go
package suites

import (
	"context"
	"strings"
	"testing"

	"gauntlet/internal/harness"
)

// TestRunFunctionSelection checks the tool list is presented with every
// query and that containment matching tolerates chatty answers.
func TestRunFunctionSelection(t *testing.T) {
	client := chatFunc(func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
		userContent := messages[len(messages)-1].Content
		if !strings.Contains(userContent, "Available tools: [") {
			t.Errorf("tool list missing from user message: %q", userContent)
		}
		for _, fc := range functionCases {
			if strings.Contains(userContent, fc.query) {
				return harness.ChatResponse{Content: "I would use " + fc.expected + " here."}, nil
			}
		}
		return harness.ChatResponse{Content: "unknown"}, nil
	})

	result, err := RunFunctionSelection(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite error: %v", err)
	}
	if result.Metrics["total"] != 15 {
		t.Fatalf("total = %g, want 15", result.Metrics["total"])
	}
	if result.Metrics["correct"] != 15 {
		t.Fatalf("correct = %g, want 15 (containment match)", result.Metrics["correct"])
	}
	if result.Metrics["accuracy_percent"] != 100 {
		t.Fatalf("accuracy = %g", result.Metrics["accuracy_percent"])
	}
}

func TestRunFunctionSelectionMiss(t *testing.T) {
	client := reply("none of these")
	result, err := RunFunctionSelection(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite error: %v", err)
	}
	if result.Metrics["correct"] != 0 {
		t.Fatalf("correct = %g, want 0", result.Metrics["correct"])
	}
}
