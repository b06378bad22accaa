// internal/suites/contextscale_test.go
package suites

import (
	"context"
	"errors"
	"testing"
	"time"

	"gauntlet/internal/harness"
)

// TestRunContextScalingCheckpoints verifies the four window fractions, the
// extended timeout, and the midpoint recall grading.
func TestRunContextScalingCheckpoints(t *testing.T) {
	var timeouts []time.Duration
	var calls int
	client := chatFunc(func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
		calls++
		timeouts = append(timeouts, opts.Timeout)
		return harness.ChatResponse{Content: "The project codename is FALCON-ECHO-42."}, nil
	})

	result, err := RunContextScaling(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite error: %v", err)
	}
	if calls != 4 {
		t.Fatalf("calls = %d, want 4", calls)
	}
	for i, d := range timeouts {
		if d != 120*time.Second {
			t.Errorf("call %d timeout = %v, want 120s", i, d)
		}
	}
	if result.Metrics["recalled"] != 4 || result.Metrics["total"] != 4 {
		t.Fatalf("recalled = %g/%g, want 4/4", result.Metrics["recalled"], result.Metrics["total"])
	}
}

// TestRunContextScalingPartialFailure checks a transport failure at one
// checkpoint counts as a miss and the sweep continues.
func TestRunContextScalingPartialFailure(t *testing.T) {
	var calls int
	client := chatFunc(func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
		calls++
		if calls == 2 {
			return harness.ChatResponse{}, errors.New("connection reset")
		}
		return harness.ChatResponse{Content: "falcon-echo-42"}, nil
	})

	result, err := RunContextScaling(context.Background(), client, testConfig())
	if err != nil {
		t.Fatalf("suite should not fail on a checkpoint error: %v", err)
	}
	if calls != 4 {
		t.Fatalf("calls = %d, want 4 (sweep must continue past the failure)", calls)
	}
	if result.Metrics["recalled"] != 3 {
		t.Fatalf("recalled = %g, want 3", result.Metrics["recalled"])
	}
}
