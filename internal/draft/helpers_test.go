package draft

import (
	"fmt"

	"github.com/lox/teammaker/internal/team"
)

// scriptedRand replays fixed Float64 values and never reorders anything
type scriptedRand struct {
	values   []float64
	next     int
	shuffles int
}

func newScriptedRand(values ...float64) *scriptedRand {
	return &scriptedRand{values: values}
}

func (s *scriptedRand) Float64() float64 {
	if s.next >= len(s.values) {
		return 0.5
	}
	v := s.values[s.next]
	s.next++
	return v
}

func (s *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	s.shuffles++
}

// reverseRand reverses every slice it shuffles
type reverseRand struct{}

func (reverseRand) Float64() float64 { return 0.5 }

func (reverseRand) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

func players(ratings ...float64) []team.Player {
	out := make([]team.Player, len(ratings))
	for i, r := range ratings {
		out[i] = team.Player{Name: fmt.Sprintf("P%d", i+1), Rating: r}
	}
	return out
}

func memberNames(teams []*team.Team) []string {
	var names []string
	for _, t := range teams {
		for _, p := range t.Players() {
			names = append(names, p.Name)
		}
	}
	return names
}

// balancedScript drives players(5, 5, 1, 1) into strengths (6, 6)
var balancedScript = []float64{0.5, 0.5, 0.0, 0.05, 0.05, 0.0}

// unbalancedScript drives players(5, 5, 1, 1) into strengths (10, 2)
var unbalancedScript = []float64{0.5, 0.5, 0.0, 0.05, 0.7, 0.0}
