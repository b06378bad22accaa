// internal/harness/prompts.go
package harness

// systemPrompts maps suite family -> prompt style -> instruction text sent as
// the system role. The "none" entries are deliberately empty: that style
// exercises how instruction strength degrades without a system channel.
var systemPrompts = map[string]map[string]string{
	"intent": {
		"detailed": "You are a routing classifier. Classify the user query into exactly one " +
			"category. Reply with ONLY the category name, nothing else.\n" +
			"Categories: search, tool_call, answer, escalate",
		"minimal": "Classify into: search, tool_call, answer, escalate",
		"none":    "",
	},
	"json": {
		"detailed": "You are a JSON generator. Reply with ONLY valid JSON, no explanation, " +
			"no markdown fences.",
		"minimal": "Reply with valid JSON only.",
		"none":    "",
	},
	"code": {
		"detailed": "You are a Python code generator. Reply with ONLY executable Python code, " +
			"no explanation, no markdown fences.",
		"minimal": "Reply with executable Python code only.",
		"none":    "",
	},
	"function": {
		"detailed": "You are a function-calling assistant. Given a user query and a list of " +
			"available tools, reply with ONLY the name of the single most appropriate " +
			"tool. No explanation.",
		"minimal": "Pick the best tool name from the list. Reply with the name only.",
		"none":    "",
	},
	"argument": {
		"detailed": "You are a function-calling assistant. Given a user query and a tool " +
			"signature, extract the arguments and reply with ONLY a JSON object of " +
			"argument values. No explanation, no markdown fences.",
		"minimal": "Extract tool arguments as JSON only.",
		"none":    "",
	},
	"reasoning": {
		"detailed": "You are a precise math and logic solver. Show your reasoning step by step, " +
			"then give the final answer on a new line prefixed with 'ANSWER: '.",
		"minimal": "Solve and reply with 'ANSWER: <value>'.",
		"none":    "",
	},
	"instruction": {
		"detailed": "You are an instruction-following assistant. Follow the user's formatting " +
			"instructions EXACTLY. Do not add extra text.",
		"minimal": "Follow formatting instructions exactly.",
		"none":    "",
	},
}

// SystemPrompt returns the instruction text for a suite family under the
// config's system style. Unknown styles fall back to the detailed variant;
// the "none" style (or an empty text) yields "".
func SystemPrompt(suite string, cfg ModelConfig) string {
	prompts := systemPrompts[suite]
	text, ok := prompts[cfg.SystemStyle]
	if !ok {
		text = prompts["detailed"]
	}
	if cfg.SystemStyle == "none" || text == "" {
		return ""
	}
	return text
}

// Message is a single entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// BuildMessages assembles the request messages. With a system prompt the
// result is [system, user]. Without one, the "none" style folds an
// instruction prefix and a blank line into the user message; otherwise the
// user content goes out unmodified.
func BuildMessages(systemPrompt, userContent, style, instructionPrefix string) []Message {
	if systemPrompt != "" {
		return []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		}
	}
	if style == "none" && instructionPrefix != "" {
		return []Message{{Role: "user", Content: instructionPrefix + "\n\n" + userContent}}
	}
	return []Message{{Role: "user", Content: userContent}}
}
