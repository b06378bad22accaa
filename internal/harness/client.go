// internal/harness/client.go
package harness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"time"

	"gauntlet/internal/appconfig"
	"gauntlet/internal/logging"
)

// Usage carries the server-reported token counts for one completion.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
}

// ChatResponse is the post-processed result of one chat-completion call.
type ChatResponse struct {
	Content string
	Usage   Usage
}

// ChatOptions tune a single call. MaxTokens must be set by the caller;
// a zero Timeout uses the client default.
type ChatOptions struct {
	MaxTokens int
	Timeout   time.Duration
}

// Chatter is the surface suites depend on; satisfied by *Client and by test fakes.
type Chatter interface {
	Chat(ctx context.Context, cfg ModelConfig, messages []Message, opts ChatOptions) (ChatResponse, error)
}

// Client issues chat-completion requests against an OpenAI-compatible endpoint.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
}

// New constructs a Client from the application configuration.
func New(cfg *appconfig.Config) *Client {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout()}
	return &Client{
		baseURL: cfg.ServerURL(),
		client: &http.Client{
			Transport: &http.Transport{
				DialContext:       dialer.DialContext,
				ForceAttemptHTTP2: false,
			},
		},
		timeout: cfg.RequestTimeout(),
	}
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// Chat sends one chat-completion request with the config's sampling
// parameters and returns the assistant content with reasoning traces removed.
func (c *Client) Chat(ctx context.Context, cfg ModelConfig, messages []Message, opts ChatOptions) (ChatResponse, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}

	payload := map[string]any{
		"model":       cfg.Model,
		"messages":    messages,
		"max_tokens":  opts.MaxTokens,
		"temperature": cfg.Temperature,
		"top_p":       cfg.TopP,
		"options":     map[string]any{"num_ctx": cfg.NumCtx},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return ChatResponse{}, err
	}
	logging.LogRequest("GAUNTLET->LLM", c.baseURL, cfg.Model, body)

	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return ChatResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return ChatResponse{}, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return ChatResponse{}, err
	}
	logging.LogRequest("LLM->GAUNTLET", c.baseURL, cfg.Model, respBody)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ChatResponse{}, fmt.Errorf("chat: /v1/chat/completions returned %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return ChatResponse{}, fmt.Errorf("chat: invalid response body: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return ChatResponse{}, fmt.Errorf("chat: response contained no choices")
	}

	content := strings.TrimSpace(StripThinkTags(parsed.Choices[0].Message.Content))
	return ChatResponse{Content: content, Usage: parsed.Usage}, nil
}

var thinkBlock = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripThinkTags removes <think>...</think> reasoning traces (deepseek-r1 style).
func StripThinkTags(text string) string {
	return strings.TrimSpace(thinkBlock.ReplaceAllString(text, ""))
}

// StripMarkdownFences drops triple-backtick fence lines, keeping the content
// between them.
func StripMarkdownFences(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
