package render

import (
	"fmt"
	"strings"

	"github.com/lox/teammaker/internal/team"
	"github.com/olekukonko/tablewriter"
)

// PrintRoster lists players with their ratings and the roster total
func (f *Formatter) PrintRoster(players []team.Player) {
	f.write(FormatRoster(players))
}

// FormatRoster renders the roster table
func FormatRoster(players []team.Player) string {
	var b strings.Builder
	table := tablewriter.NewWriter(&b)
	table.SetHeader([]string{"#", "Player", "Rating"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, p := range players {
		table.Append([]string{fmt.Sprint(i + 1), p.Name, fmt.Sprintf("%.1f", p.Rating)})
	}
	table.SetFooter([]string{"", "Total", fmt.Sprintf("%.1f", team.TotalRating(players))})
	table.Render()
	return b.String()
}
