// internal/suites/reasoning_test.go
package suites

import (
	"context"
	"testing"
)

func TestExtractAnswer(t *testing.T) {
	got, marked := extractAnswer("step 1... step 2...\nanswer: 636")
	if !marked || got != "636" {
		t.Fatalf("extractAnswer = (%q, %v)", got, marked)
	}

	got, marked = extractAnswer("the result is 636")
	if marked || got != "the result is 636" {
		t.Fatalf("unmarked extractAnswer = (%q, %v)", got, marked)
	}
}

func TestGradeReasoning(t *testing.T) {
	cases := []struct {
		response string
		expected string
		want     bool
	}{
		{"Let me compute. 247+389 = 636.\nANSWER: 636", "636", true},
		{"ANSWER: 640", "636", false},
		// Expected value only in the working, not after the marker.
		{"247 + 389 gives 636 in total.\nANSWER: see above", "636", true},
		{"the answer is NO, we cannot conclude that", "no", true},
		{"definitely yes", "no", false},
		{"3/7 is larger", "3/7", true},
	}
	for _, c := range cases {
		if got := gradeReasoning(c.response, c.expected); got != c.want {
			t.Errorf("gradeReasoning(%q, %q) = %v, want %v", c.response, c.expected, got, c.want)
		}
	}
}

func TestRunReasoningMathMetrics(t *testing.T) {
	// "ANSWER: 636" satisfies the first problem exactly and the six-workers
	// problem by substring ("3" occurs in "636").
	client := reply("ANSWER: 636")
	result, err := RunReasoningMath(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite error: %v", err)
	}
	if result.Metrics["total"] != 13 {
		t.Fatalf("total = %g, want 13", result.Metrics["total"])
	}
	if result.Metrics["correct"] != 2 {
		t.Fatalf("correct = %g, want 2", result.Metrics["correct"])
	}
}
