// internal/suites/suites_test.go
package suites

import (
	"context"

	"gauntlet/internal/harness"
)

// chatFunc adapts a function to the harness.Chatter interface for tests.
type chatFunc func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error)

func (f chatFunc) Chat(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
	return f(ctx, cfg, messages, opts)
}

// reply builds a fixed-content chatter with plausible usage numbers.
func reply(content string) chatFunc {
	return func(ctx context.Context, cfg harness.ModelConfig, messages []harness.Message, opts harness.ChatOptions) (harness.ChatResponse, error) {
		return harness.ChatResponse{
			Content: content,
			Usage:   harness.Usage{PromptTokens: 10, CompletionTokens: 5},
		}, nil
	}
}

func testConfig() harness.ModelConfig {
	return harness.BuildConfigs("test-model", 0)[0]
}
