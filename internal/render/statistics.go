package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/teammaker/internal/statistics"
	"github.com/olekukonko/tablewriter"
)

// PrintStatistics writes the outcome of a simulation
func (f *Formatter) PrintStatistics(stats *statistics.Statistics) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(f.styles.title.Render("📈 SIMULATION"))
	b.WriteString("\n")
	b.WriteString(f.styles.rule.Render(strings.Repeat("─", ruleWidth)))
	b.WriteString("\n")
	b.WriteString(FormatStatistics(stats))
	f.write(b.String())
}

// FormatStatistics renders simulation statistics as a table
func FormatStatistics(stats *statistics.Statistics) string {
	if stats.Draws == 0 {
		return "No draws completed\n"
	}

	low, high := stats.Attempts.ConfidenceInterval95()
	rows := [][]string{
		{"Draws", fmt.Sprint(stats.Draws)},
		{"Balanced draws", fmt.Sprintf("%d (%.1f%%)", stats.BalancedDraws, stats.BalanceRate()*100)},
		{"Attempts per draw", fmt.Sprintf("%.2f ± %.2f", stats.Attempts.Mean(), stats.Attempts.StdDev())},
		{"Attempts 95% CI", fmt.Sprintf("[%.2f, %.2f]", low, high)},
		{"Attempts median / p95 / max", fmt.Sprintf("%.0f / %.0f / %.0f",
			stats.Attempts.Median(), stats.Attempts.Percentile(0.95), stats.Attempts.Max())},
		{"Single attempt balance rate", fmt.Sprintf("%.1f%%", stats.AttemptSuccessRate()*100)},
	}
	if stats.Spread.Count > 0 {
		rows = append(rows, []string{"Strength spread", fmt.Sprintf("%.2f (min %.1f, max %.1f)",
			stats.Spread.Mean(), stats.Spread.Min(), stats.Spread.Max())})
	}
	rows = append(rows, []string{"Time per draw", formatSeconds(stats.Elapsed.Mean())})

	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(rows)
	table.Render()
	return b.String()
}

func formatSeconds(s float64) string {
	d := time.Duration(s * float64(time.Second))
	if d >= time.Millisecond {
		return d.Round(10 * time.Microsecond).String()
	}
	return d.String()
}
