// internal/suites/registry.go
package suites

// Suite pairs a stable name with its run function.
type Suite struct {
	Name string
	Run  RunFunc
}

// Registry lists every suite in registration order. The reporter renders its
// rows in this order, so it must stay stable.
var Registry = []Suite{
	{"latency", RunLatency},
	{"intent_classification", RunIntentClassification},
	{"json_conformance", RunJSONConformance},
	{"needle_in_haystack", RunNeedleInHaystack},
	{"code_generation", RunCodeGeneration},
	{"function_selection", RunFunctionSelection},
	{"argument_accuracy", RunArgumentAccuracy},
	{"context_scaling", RunContextScaling},
	{"reasoning_math", RunReasoningMath},
	{"instruction_following", RunInstructionFollowing},
	{"multi_turn_coherence", RunMultiTurnCoherence},
}

// Names returns every registered suite name in order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, s := range Registry {
		names[i] = s.Name
	}
	return names
}

// ByName looks a suite up by its registered name.
func ByName(name string) (Suite, bool) {
	for _, s := range Registry {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}
