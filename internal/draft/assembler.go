package draft

import (
	"fmt"

	"github.com/lox/teammaker/internal/team"
)

// Draw is the outcome of one assembler run before balance is evaluated
type Draw struct {
	// Teams holds the complete teams in allocation order
	Teams []*team.Team
	// Unassigned holds the players left over when the pool does not divide
	// evenly into teams
	Unassigned []team.Player
}

// Assembler runs single draft attempts. It keeps no state between attempts
// apart from the random source it was given.
type Assembler struct {
	teamSize int
	names    NameSource
	rng      RandSource
}

// NewAssembler creates an assembler for teams of teamSize players. A nil
// names source falls back to GeneratedNames.
func NewAssembler(teamSize int, names NameSource, rng RandSource) *Assembler {
	if names == nil {
		names = GeneratedNames{}
	}
	return &Assembler{
		teamSize: teamSize,
		names:    names,
		rng:      rng,
	}
}

// TeamCount returns how many teams an attempt over n players produces
func (a *Assembler) TeamCount(n int) int {
	if n <= 0 || a.teamSize <= 0 {
		return 0
	}
	return n / a.teamSize
}

// Assemble drafts the players into floor(len(players)/teamSize) complete
// teams. Players that do not fit are returned in Draw.Unassigned. The input
// slice is not modified.
func (a *Assembler) Assemble(players []team.Player) (*Draw, error) {
	teams := a.prepareTeams(len(players))
	p := newPool(players)
	if len(teams) == 0 {
		return &Draw{Teams: teams, Unassigned: p.remaining()}, nil
	}

	// Fixed for the whole attempt, even as the pool drains
	average := p.average()

	a.rng.Shuffle(p.len(), p.swap)
	order := make([]*team.Team, len(teams))
	copy(order, teams)
	a.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	if err := a.draft(p, order, average); err != nil {
		return nil, err
	}

	draw := &Draw{Unassigned: p.remaining()}
	for _, t := range teams {
		if t.IsComplete() {
			draw.Teams = append(draw.Teams, t)
			continue
		}
		draw.Unassigned = append(draw.Unassigned, t.Players()...)
	}
	return draw, nil
}

// draft walks the team order until the pool is empty or every team is full
func (a *Assembler) draft(p *pool, order []*team.Team, average float64) error {
	for p.len() > 0 && anyIncomplete(order) {
		for _, t := range order {
			if p.len() == 0 {
				return nil
			}
			if t.IsComplete() {
				continue
			}

			player, ok := a.choose(p, t, average)
			if !ok {
				return nil
			}
			if err := t.Add(player); err != nil {
				return fmt.Errorf("drafting %s: %w", player.Name, err)
			}
		}
	}
	return nil
}

// choose removes the player for the next slot of t from the pool
func (a *Assembler) choose(p *pool, t *team.Team, average float64) (team.Player, bool) {
	if p.len() <= 1 {
		return p.takeNearest(0)
	}
	tier := Tier(selectionWeight(a.rng, t.Strength(), average))
	return p.takeNearest(float64(tier))
}

func (a *Assembler) prepareTeams(n int) []*team.Team {
	count := a.TeamCount(n)
	teams := make([]*team.Team, 0, count)
	for i := 0; i < count; i++ {
		teams = append(teams, team.New(a.names.Name(i), a.teamSize))
	}
	return teams
}

func anyIncomplete(teams []*team.Team) bool {
	for _, t := range teams {
		if !t.IsComplete() {
			return true
		}
	}
	return false
}
