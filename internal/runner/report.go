// internal/runner/report.go
package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gauntlet/internal/suites"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// scoreKeys are checked in priority order when picking the one number a
// summary cell shows for a suite.
var scoreKeys = []string{
	"accuracy_percent",
	"recall_percent",
	"correctness_percent",
	"json_validity_percent",
	"run_percent",
}

// formatMetric renders a float the way the diagnostics do: no trailing zeros,
// so 87.5 stays "87.5" and 100 stays "100".
func formatMetric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SuiteScore picks the display score for one suite cell.
func SuiteScore(suiteName string, result suites.Result, ran bool) string {
	if !ran {
		return "?"
	}
	if result.Errored() {
		return "ERR"
	}
	if suiteName == "latency" {
		if tps, ok := result.Metrics["avg_tps"]; ok {
			return formatMetric(tps) + " tok/s"
		}
		return "? tok/s"
	}
	for _, key := range scoreKeys {
		if v, ok := result.Metrics[key]; ok {
			return formatMetric(v) + "%"
		}
	}
	return "?"
}

// PrintSummaryTable renders the cross-config comparison: one row per suite in
// registry order, one column per config label in run order.
func PrintSummaryTable(results *Results) {
	if results == nil || len(results.Labels) == 0 {
		return
	}

	suiteNames := suites.Names()
	suiteColW := 0
	for _, s := range suiteNames {
		if len(s) > suiteColW {
			suiteColW = len(s)
		}
	}
	suiteColW += 2
	dataColW := 16
	for _, lbl := range results.Labels {
		if len(lbl) > dataColW {
			dataColW = len(lbl)
		}
	}
	dataColW += 2
	totalW := suiteColW + dataColW*len(results.Labels)

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println(titleStyle.Render("SUMMARY TABLE"))
	fmt.Println(strings.Repeat("=", 80))

	var header strings.Builder
	header.WriteString(pad("Suite", suiteColW))
	for _, lbl := range results.Labels {
		header.WriteString(center(truncateTo(lbl, dataColW-1), dataColW))
	}
	fmt.Println(headerStyle.Render(header.String()))
	fmt.Println(strings.Repeat("-", totalW))

	for _, suiteName := range suiteNames {
		var row strings.Builder
		row.WriteString(pad(suiteName, suiteColW))
		for _, lbl := range results.Labels {
			result, ran := results.BySuite[lbl][suiteName]
			row.WriteString(center(SuiteScore(suiteName, result, ran), dataColW))
		}
		fmt.Println(row.String())
	}

	fmt.Println(strings.Repeat("=", totalW))
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func center(s string, w int) string {
	if len(s) >= w {
		return s
	}
	left := (w - len(s)) / 2
	right := w - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

func truncateTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
