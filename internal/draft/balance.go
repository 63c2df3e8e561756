package draft

import "github.com/lox/teammaker/internal/team"

// BalanceRatio is the fraction of the strongest team's strength the weakest
// team must reach for a draw to count as balanced
const BalanceRatio = 0.7

// Balance is the verdict for a finished set of teams
type Balance struct {
	Min      float64
	Max      float64
	Balanced bool
}

// Evaluate computes the strength bounds of teams and whether they are
// balanced. No teams, or a single team, is balanced.
func Evaluate(teams []*team.Team) Balance {
	if len(teams) == 0 {
		return Balance{Balanced: true}
	}

	lo, hi := teams[0].Strength(), teams[0].Strength()
	for _, t := range teams[1:] {
		lo = min(lo, t.Strength())
		hi = max(hi, t.Strength())
	}

	return Balance{
		Min:      lo,
		Max:      hi,
		Balanced: IsBalanced(lo, hi),
	}
}

// IsBalanced reports whether weakest is at least BalanceRatio of strongest.
// The test is a ratio, so it does not depend on the rating scale.
func IsBalanced(weakest, strongest float64) bool {
	return !(weakest < BalanceRatio*strongest)
}
