package statistics

import (
	"github.com/lox/teammaker/internal/team"
	"github.com/samber/lo"
)

// TeamSummary describes the strength distribution of one draw
type TeamSummary struct {
	Teams   int
	Players int
	Total   float64
	Mean    float64
	Min     float64
	Max     float64
	Spread  float64
	StdDev  float64
}

// Summarize computes the strength distribution across teams
func Summarize(teams []*team.Team) TeamSummary {
	if len(teams) == 0 {
		return TeamSummary{}
	}

	strengths := lo.Map(teams, func(t *team.Team, _ int) float64 {
		return t.Strength()
	})

	var series Series
	for _, s := range strengths {
		series.Add(s)
	}

	summary := TeamSummary{
		Teams:   len(teams),
		Players: lo.SumBy(teams, func(t *team.Team) int { return t.Len() }),
		Total:   lo.Sum(strengths),
		Mean:    series.Mean(),
		Min:     series.Min(),
		Max:     series.Max(),
		StdDev:  series.StdDev(),
	}
	summary.Spread = summary.Max - summary.Min
	return summary
}
