// internal/suites/arguments.go
package suites

import (
	"context"
	"fmt"
	"math"
	"strings"

	"gauntlet/internal/harness"
)

// expectedArg is one required argument with its type-specific matching rule:
// floats within an absolute tolerance, ints exact and integral, strings by
// case-insensitive containment.
type expectedArg struct {
	key      string
	floatVal float64
	intVal   int64
	strVal   string
	isFloat  bool
	isInt    bool
}

func floatArg(key string, v float64) expectedArg {
	return expectedArg{key: key, floatVal: v, isFloat: true}
}

func intArg(key string, v int64) expectedArg {
	return expectedArg{key: key, intVal: v, isInt: true}
}

func strArg(key, v string) expectedArg {
	return expectedArg{key: key, strVal: v}
}

const floatTolerance = 0.01

type argumentCase struct {
	query    string
	tool     string
	expected []expectedArg
}

var argumentCases = []argumentCase{
	{
		query: "Send an email to bob@example.com with subject 'Meeting' and body 'See you at 3pm'",
		tool:  "send_email(to: str, subject: str, body: str)",
		expected: []expectedArg{
			strArg("to", "bob@example.com"),
			strArg("subject", "Meeting"),
			strArg("body", "See you at 3pm"),
		},
	},
	{
		query: "Set a reminder for 'Buy milk' at 5:30 PM",
		tool:  "set_reminder(text: str, time: str)",
		expected: []expectedArg{
			strArg("text", "Buy milk"),
			strArg("time", "5:30 PM"),
		},
	},
	{
		query: "Get weather for latitude 40.7128 and longitude -74.0060",
		tool:  "get_weather(lat: float, lon: float)",
		expected: []expectedArg{
			floatArg("lat", 40.7128),
			floatArg("lon", -74.006),
		},
	},
	{
		query: "Translate 'Good morning' from English to Spanish",
		tool:  "translate_text(text: str, source_lang: str, target_lang: str)",
		expected: []expectedArg{
			strArg("text", "Good morning"),
			strArg("source_lang", "English"),
			strArg("target_lang", "Spanish"),
		},
	},
	{
		query: "Search the web for 'best python frameworks' with max 5 results",
		tool:  "search_web(query: str, max_results: int)",
		expected: []expectedArg{
			strArg("query", "best python frameworks"),
			intArg("max_results", 5),
		},
	},
	{
		query: "Create a calendar event 'Team Standup' on 2025-03-01 at 09:00 for 30 minutes",
		tool:  "create_event(title: str, date: str, time: str, duration_minutes: int)",
		expected: []expectedArg{
			strArg("title", "Team Standup"),
			strArg("date", "2025-03-01"),
			strArg("time", "09:00"),
			intArg("duration_minutes", 30),
		},
	},
	{
		query: "Get directions from 'San Francisco' to 'Los Angeles' by car",
		tool:  "get_directions(origin: str, destination: str, mode: str)",
		expected: []expectedArg{
			strArg("origin", "San Francisco"),
			strArg("destination", "Los Angeles"),
			strArg("mode", "car"),
		},
	},
	{
		query: "Set alarm for 7:00 AM with label 'Wake up' repeating on weekdays",
		tool:  "set_alarm(time: str, label: str, repeat: str)",
		expected: []expectedArg{
			strArg("time", "7:00 AM"),
			strArg("label", "Wake up"),
		},
	},
}

// matchArg applies one expected argument's rule against the parsed object.
// Keys beyond the expected set are ignored.
func matchArg(obj harness.JSONValue, exp expectedArg) bool {
	got, ok := obj.Field(exp.key)
	if !ok {
		return false
	}
	switch {
	case exp.isFloat:
		return got.Kind == harness.JSONNumber && math.Abs(got.Number-exp.floatVal) < floatTolerance
	case exp.isInt:
		return got.IsInteger() && int64(got.Number) == exp.intVal
	default:
		return got.Kind == harness.JSONString &&
			strings.Contains(strings.ToLower(got.String), strings.ToLower(exp.strVal))
	}
}

func gradeArguments(obj harness.JSONValue, expected []expectedArg) bool {
	for _, exp := range expected {
		if !matchArg(obj, exp) {
			return false
		}
	}
	return true
}

// RunArgumentAccuracy gives the model a tool signature and a query, then
// checks every expected argument of the extracted JSON object.
func RunArgumentAccuracy(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error) {
	header("Argument Accuracy")
	sysPrompt := harness.SystemPrompt("argument", cfg)
	correct := 0

	for _, ac := range argumentCases {
		userText := fmt.Sprintf("Tool signature: %s\n\nUser query: %s", ac.tool, ac.query)
		if cfg.SystemStyle == "none" {
			userText = "Extract tool arguments as a JSON object. No explanation.\n\n" + userText
		}
		msgs := harness.BuildMessages(sysPrompt, userText, "detailed", "")
		resp, err := c.Chat(ctx, cfg, msgs, harness.ChatOptions{MaxTokens: 200})
		if err != nil {
			return Result{}, err
		}
		raw := harness.StripMarkdownFences(resp.Content)
		parsed, parseErr := harness.ParseJSONValue([]byte(raw))
		if parseErr != nil {
			fmt.Printf("  [%s] %s...\n", failMark, truncate(ac.query, 55))
			fmt.Printf("         Raw: %s\n", truncate(raw, 120))
			continue
		}
		if gradeArguments(parsed, ac.expected) {
			correct++
			fmt.Printf("  [%s] %s...\n", okMark, truncate(ac.query, 55))
		} else {
			fmt.Printf("  [%s] %s...\n", missMark, truncate(ac.query, 55))
			fmt.Printf("         Got: %s\n", truncate(raw, 120))
		}
	}

	total := len(argumentCases)
	fmt.Printf("  Accuracy: %d/%d (%.1f%%)\n", correct, total, percent(correct, total))
	return Result{Metrics: map[string]float64{
		"correct":          float64(correct),
		"total":            float64(total),
		"accuracy_percent": percent(correct, total),
	}}, nil
}
