package render

import (
	"fmt"
	"strings"

	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/statistics"
	"github.com/lox/teammaker/internal/team"
	"github.com/olekukonko/tablewriter"
)

// excellentSpread is the strength gap under which verbose output praises the draw
const excellentSpread = 1.0

// PrintResult writes the full result: banner, teams, summary and footer
func (f *Formatter) PrintResult(res *draft.Result, drawID string) {
	f.write(f.FormatResult(res, drawID))
}

// FormatResult renders a result as PrintResult would print it
func (f *Formatter) FormatResult(res *draft.Result, drawID string) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(f.styles.banner.Render("⚽ TEAM DRAW RESULTS ⚽"))
	b.WriteString("\n")
	if drawID != "" {
		b.WriteString(f.styles.muted.Render("Draw " + drawID))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, t := range res.Teams {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(f.teamBox(i+1, t))
		b.WriteString("\n")
	}

	b.WriteString(f.summary(res))

	if len(res.Unassigned) > 0 {
		b.WriteString("\n")
		b.WriteString(f.styles.label.Render(fmt.Sprintf("Unassigned players (%d):", len(res.Unassigned))))
		b.WriteString("\n")
		for _, p := range res.Unassigned {
			b.WriteString(f.styles.player.Render(fmt.Sprintf("  • %s (%.1f)", p.Name, p.Rating)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(f.styles.banner.Render("🏆 GOOD LUCK WITH YOUR MATCHES! 🏆"))
	b.WriteString("\n")

	return b.String()
}

func (f *Formatter) teamBox(n int, t *team.Team) string {
	var b strings.Builder
	b.WriteString(f.styles.teamTitle.Render(fmt.Sprintf("Team #%d - %s", n, t.Name())))
	b.WriteString("\n")
	b.WriteString(f.styles.strength.Render(fmt.Sprintf("Strength: %.1f", t.Strength())))
	b.WriteString("\n")
	b.WriteString(f.styles.label.Render("Players:"))
	for _, p := range t.Players() {
		b.WriteString("\n")
		b.WriteString(f.styles.player.Render(fmt.Sprintf("  • %s (%.1f)", p.Name, p.Rating)))
	}
	return f.styles.teamBox.Render(b.String())
}

func (f *Formatter) summary(res *draft.Result) string {
	sum := statistics.Summarize(res.Teams)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(f.styles.title.Render("📊 SUMMARY"))
	b.WriteString("\n")
	b.WriteString(f.styles.rule.Render(strings.Repeat("─", ruleWidth)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total Teams: %s\n", f.styles.value.Render(fmt.Sprint(sum.Teams)))
	fmt.Fprintf(&b, "Average Team Strength: %s\n", f.styles.value.Render(fmt.Sprintf("%.1f", sum.Mean)))
	fmt.Fprintf(&b, "Strength Range: %s\n", f.styles.value.Render(fmt.Sprintf("%.1f - %.1f", sum.Min, sum.Max)))
	fmt.Fprintf(&b, "Max Difference: %s", f.styles.value.Render(fmt.Sprintf("%.1f", sum.Spread)))

	if res.Balanced {
		b.WriteString(f.styles.good.Render(" ✅ WELL BALANCED!"))
	} else {
		b.WriteString(f.styles.warn.Render(" ⚠️  Needs rebalancing"))
	}
	b.WriteString("\n")

	if f.verbose {
		if sum.Teams > 0 && sum.Spread < excellentSpread {
			b.WriteString(f.styles.good.Render("🎯 Excellent balance achieved - difference under 1.0!"))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Attempts: %s\n", f.styles.value.Render(fmt.Sprint(res.Attempts)))
		b.WriteString("\n")
		b.WriteString(strengthTable(res.Teams, sum.Mean))
	}

	return b.String()
}

func strengthTable(teams []*team.Team, mean float64) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"Team", "Players", "Strength", "vs Average"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, t := range teams {
		table.Append([]string{
			t.Name(),
			fmt.Sprint(t.Len()),
			fmt.Sprintf("%.1f", t.Strength()),
			fmt.Sprintf("%+.1f", t.Strength()-mean),
		})
	}
	table.Render()
	return b.String()
}
