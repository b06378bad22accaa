// internal/suites/jsonconform.go
package suites

import (
	"context"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"gauntlet/internal/harness"
)

// jsonCase pairs a generation prompt with the structural contract the output
// must satisfy. The contract is a JSON Schema; properties JSON Schema cannot
// express (sortedness) go in extra.
type jsonCase struct {
	prompt string
	schema string
	extra  func(harness.JSONValue) bool
}

var jsonCases = []jsonCase{
	{
		prompt: "Return a JSON object with keys 'name' (string) and 'age' (integer).",
		schema: `{"type":"object","required":["name","age"],"properties":{"name":{"type":"string"},"age":{"type":"integer"}}}`,
	},
	{
		prompt: "Return a JSON array of 3 objects each with 'city' (string) and 'population' (integer).",
		schema: `{"type":"array","minItems":3,"maxItems":3,"items":{"type":"object","required":["city","population"]}}`,
	},
	{
		prompt: "Return a JSON object with 'status' (one of 'ok' or 'error') and 'code' (integer).",
		schema: `{"type":"object","required":["status","code"],"properties":{"status":{"enum":["ok","error"]},"code":{"type":"integer"}}}`,
	},
	{
		prompt: "Return a JSON object with 'items' (array of strings) containing 3 fruit names.",
		schema: `{"type":"object","required":["items"],"properties":{"items":{"type":"array","minItems":3,"maxItems":3,"items":{"type":"string"}}}}`,
	},
	{
		prompt: "Return a JSON object with 'x' (number) and 'y' (number) for a coordinate.",
		schema: `{"type":"object","required":["x","y"],"properties":{"x":{"type":"number"},"y":{"type":"number"}}}`,
	},
	{
		prompt: "Return a JSON object with 'active' (boolean) and 'count' (integer).",
		schema: `{"type":"object","required":["active","count"],"properties":{"active":{"type":"boolean"},"count":{"type":"integer"}}}`,
	},
	{
		prompt: "Return a JSON object with 'value' set to null.",
		schema: `{"type":"object","required":["value"],"properties":{"value":{"type":"null"}}}`,
	},
	{
		prompt: "Return a JSON object with 'user' containing a nested object with " +
			"'first_name' (string), 'last_name' (string), and 'email' (string).",
		schema: `{"type":"object","required":["user"],"properties":{"user":{"type":"object","required":["first_name","last_name","email"]}}}`,
	},
	{
		prompt: "Return a JSON object with 'matrix' containing a 2D array " +
			"(array of arrays of integers), 2 rows and 3 columns.",
		schema: `{"type":"object","required":["matrix"],"properties":{"matrix":{"type":"array","minItems":2,"maxItems":2,"items":{"type":"array","minItems":3,"maxItems":3}}}}`,
	},
	{
		prompt: "Return a JSON object with 'type' (one of 'A', 'B', or 'C') " +
			"and 'tags' (array of strings).",
		schema: `{"type":"object","required":["type","tags"],"properties":{"type":{"enum":["A","B","C"]},"tags":{"type":"array"}}}`,
	},
	{
		prompt: "Return a JSON array of 5 integers in ascending order.",
		schema: `{"type":"array","minItems":5,"maxItems":5,"items":{"type":"integer"}}`,
		extra:  ascendingNumbers,
	},
	{
		prompt: "Return a JSON object with 'config' containing 'debug' (boolean), " +
			"'level' (integer), and 'name' (string).",
		schema: `{"type":"object","required":["config"],"properties":{"config":{"type":"object","required":["debug","level","name"],"properties":{"debug":{"type":"boolean"},"level":{"type":"integer"},"name":{"type":"string"}}}}}`,
	},
}

func ascendingNumbers(v harness.JSONValue) bool {
	if v.Kind != harness.JSONArray {
		return false
	}
	for i := 1; i < len(v.Array); i++ {
		if v.Array[i].Number < v.Array[i-1].Number {
			return false
		}
	}
	return true
}

// gradeJSONCase reports (valid, structurallyCorrect) for one raw response.
func gradeJSONCase(jc jsonCase, content string) (bool, bool) {
	parsed, err := harness.ParseJSONValue([]byte(content))
	if err != nil {
		return false, false
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(jc.schema),
		gojsonschema.NewStringLoader(content),
	)
	if err != nil || !result.Valid() {
		return true, false
	}
	if jc.extra != nil && !jc.extra(parsed) {
		return true, false
	}
	return true, true
}

// RunJSONConformance tests whether the model emits parseable JSON and whether
// that JSON satisfies each case's structural contract. The two rates are
// reported independently.
func RunJSONConformance(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("JSON Schema Conformance")
	sysPrompt := harness.SystemPrompt("json", cfg)
	validCount := 0
	structValid := 0

	for _, jc := range jsonCases {
		promptText := jc.prompt
		if cfg.SystemStyle == "none" {
			promptText = "Reply with ONLY valid JSON, no explanation.\n\n" + promptText
		}
		msgs := harness.BuildMessages(sysPrompt, promptText, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 300})
		if err != nil {
			return Result{}, err
		}
		content := harness.StripMarkdownFences(resp.Content)
		valid, structOK := gradeJSONCase(jc, content)
		switch {
		case valid && structOK:
			validCount++
			structValid++
			fmt.Printf("  [VALID+STRUCT] %s...\n", truncate(promptText, 55))
		case valid:
			validCount++
			fmt.Printf("  [VALID]        %s...\n", truncate(promptText, 55))
		default:
			fmt.Printf("  [INVALID]      %s...\n", truncate(promptText, 55))
			fmt.Printf("                 Got: %s\n", truncate(content, 120))
		}
	}

	total := len(jsonCases)
	fmt.Printf("  Valid JSON: %d/%d (%.1f%%)\n", validCount, total, percent(validCount, total))
	fmt.Printf("  Structurally correct: %d/%d (%.1f%%)\n", structValid, total, percent(structValid, total))
	return Result{Metrics: map[string]float64{
		"valid":                       float64(validCount),
		"structurally_correct":        float64(structValid),
		"total":                       float64(total),
		"json_validity_percent":       percent(validCount, total),
		"structural_accuracy_percent": percent(structValid, total),
	}}, nil
}
