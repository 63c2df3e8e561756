package team

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTeamFull is returned when a player is added to a complete team.
// Seeing it during a draft means the draft loop is broken.
var ErrTeamFull = errors.New("team is already complete")

// Team is a named, fixed-capacity group of players
type Team struct {
	name     string
	capacity int
	players  []Player
	strength float64
}

// New creates an empty team that completes once it holds capacity players
func New(name string, capacity int) *Team {
	if capacity < 0 {
		capacity = 0
	}
	return &Team{
		name:     name,
		capacity: capacity,
		players:  make([]Player, 0, capacity),
	}
}

// Name returns the team name
func (t *Team) Name() string {
	return t.name
}

// Capacity returns the number of players needed to complete the team
func (t *Team) Capacity() int {
	return t.capacity
}

// Strength returns the sum of the ratings of the team's players
func (t *Team) Strength() float64 {
	return t.strength
}

// Len returns how many players the team currently holds
func (t *Team) Len() int {
	return len(t.players)
}

// Players returns the team's players in the order they were added
func (t *Team) Players() []Player {
	players := make([]Player, len(t.players))
	copy(players, t.players)
	return players
}

// IsComplete returns true once the team holds exactly Capacity players
func (t *Team) IsComplete() bool {
	return len(t.players) == t.capacity
}

// Add admits a player. A complete team is left untouched and ErrTeamFull is
// returned.
func (t *Team) Add(p Player) error {
	if t.IsComplete() {
		return fmt.Errorf("%w: %q holds %d players", ErrTeamFull, t.name, t.capacity)
	}
	t.players = append(t.players, p)
	t.strength += p.Rating
	return nil
}

// Reset empties the team so it can be filled again
func (t *Team) Reset() {
	t.players = t.players[:0]
	t.strength = 0
}

func (t *Team) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [strength = %.1f, players = {", t.name, t.strength)
	for i, p := range t.players {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString("\n\t")
		b.WriteString(p.String())
	}
	b.WriteString("}]")
	return b.String()
}
