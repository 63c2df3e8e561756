package render

import "github.com/charmbracelet/lipgloss"

const (
	bannerWidth = 66
	teamWidth   = 66
	ruleWidth   = 50
)

var (
	cyan   = lipgloss.Color("#4ECDC4")
	blue   = lipgloss.Color("#7D56F4")
	green  = lipgloss.Color("#96CEB4")
	yellow = lipgloss.Color("#FFEAA7")
	purple = lipgloss.Color("#C39BD3")
	grey   = lipgloss.Color("#626262")
)

type styles struct {
	banner    lipgloss.Style
	muted     lipgloss.Style
	teamBox   lipgloss.Style
	teamTitle lipgloss.Style
	strength  lipgloss.Style
	label     lipgloss.Style
	player    lipgloss.Style
	title     lipgloss.Style
	rule      lipgloss.Style
	value     lipgloss.Style
	good      lipgloss.Style
	warn      lipgloss.Style
}

// newStyles builds styles bound to r. Without color nothing is emboldened
// either, so plain output carries no escape sequences at all.
func newStyles(r *lipgloss.Renderer, color bool) styles {
	bold := func(s lipgloss.Style) lipgloss.Style {
		return s.Bold(color)
	}

	return styles{
		banner: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(cyan).
			Foreground(cyan).
			Width(bannerWidth).
			Align(lipgloss.Center),
		muted: r.NewStyle().Foreground(grey),
		teamBox: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(blue).
			Padding(0, 1).
			Width(teamWidth),
		teamTitle: bold(r.NewStyle().Foreground(blue)),
		strength:  r.NewStyle().Foreground(green),
		label:     r.NewStyle().Foreground(yellow),
		player:    r.NewStyle().Foreground(purple),
		title:     bold(r.NewStyle().Foreground(cyan)),
		rule:      r.NewStyle().Foreground(cyan),
		value:     bold(r.NewStyle()),
		good:      r.NewStyle().Foreground(green),
		warn:      r.NewStyle().Foreground(yellow),
	}
}
