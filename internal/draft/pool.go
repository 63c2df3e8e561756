package draft

import (
	"math"
	"slices"

	"github.com/lox/teammaker/internal/team"
)

// pool holds the players not yet placed during one attempt
type pool struct {
	players []team.Player
}

func newPool(players []team.Player) *pool {
	return &pool{players: slices.Clone(players)}
}

func (p *pool) len() int {
	return len(p.players)
}

func (p *pool) average() float64 {
	if len(p.players) == 0 {
		return 0
	}
	return team.TotalRating(p.players) / float64(len(p.players))
}

func (p *pool) swap(i, j int) {
	p.players[i], p.players[j] = p.players[j], p.players[i]
}

// take removes and returns the player at index i, keeping pool order
func (p *pool) take(i int) team.Player {
	player := p.players[i]
	p.players = slices.Delete(p.players, i, i+1)
	return player
}

// takeNearest removes the player whose rating is closest to target. Ties go
// to the player that comes first in pool order.
func (p *pool) takeNearest(target float64) (team.Player, bool) {
	switch len(p.players) {
	case 0:
		return team.Player{}, false
	case 1:
		return p.take(0), true
	}

	best := 0
	bestDiff := math.Inf(1)
	for i, player := range p.players {
		if diff := math.Abs(player.Rating - target); diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return p.take(best), true
}

func (p *pool) remaining() []team.Player {
	return slices.Clone(p.players)
}
