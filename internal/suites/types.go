// internal/suites/types.go
// Package suites implements the eleven test suites of the evaluation matrix.
// Each suite is a pure function of (client, config): it builds case-specific
// messages, calls the chat client, applies its grading rule, and returns one
// metric map. Suites hold no state across cases or runs.
package suites

import (
	"context"
	"fmt"
	"math"

	"github.com/fatih/color"

	"gauntlet/internal/harness"
)

// Result is the outcome of one suite for one config. On success Metrics holds
// the suite's full metric key set; on failure Err carries the message and
// Metrics is nil.
type Result struct {
	Metrics map[string]float64
	Err     string
}

// Errored reports whether the suite failed as a whole.
func (r Result) Errored() bool { return r.Err != "" }

// RunFunc is the shape every suite exposes to the orchestrator.
type RunFunc func(ctx context.Context, c harness.Chatter, cfg harness.ModelConfig) (Result, error)

// round1 mirrors percentage rounding to one decimal place.
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// round3 is used for second-resolution latency figures.
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// percent returns correct/total as a percentage rounded to one decimal.
func percent(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(correct) / float64(total) * 100)
}

var (
	okMark      = color.GreenString("OK")
	passMark    = color.GreenString("PASS")
	missMark    = color.RedString("MISS")
	failMark    = color.RedString("FAIL")
	timeoutMark = color.YellowString("TIMEOUT")
	errMark     = color.RedString("ERR")
)

func mark(ok bool) string {
	if ok {
		return okMark
	}
	return missMark
}

func passFail(ok bool) string {
	if ok {
		return passMark
	}
	return failMark
}

// truncate shortens diagnostic text to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func header(name string) {
	fmt.Printf("\n=== %s ===\n", name)
}
