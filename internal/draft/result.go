package draft

import "github.com/lox/teammaker/internal/team"

// Result is the outcome of one evaluated attempt
type Result struct {
	Teams       []*team.Team
	Unassigned  []team.Player
	Balanced    bool
	MinStrength float64
	MaxStrength float64

	// Attempts is the number of the attempt that produced this result
	Attempts int
}

// Spread returns the gap between the strongest and the weakest team
func (r *Result) Spread() float64 {
	return r.MaxStrength - r.MinStrength
}

// TotalStrength sums the strengths of all teams
func (r *Result) TotalStrength() float64 {
	total := 0.0
	for _, t := range r.Teams {
		total += t.Strength()
	}
	return total
}

func newResult(draw *Draw) *Result {
	balance := Evaluate(draw.Teams)
	return &Result{
		Teams:       draw.Teams,
		Unassigned:  draw.Unassigned,
		Balanced:    balance.Balanced,
		MinStrength: balance.Min,
		MaxStrength: balance.Max,
		Attempts:    1,
	}
}
