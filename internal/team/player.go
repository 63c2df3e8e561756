package team

import "fmt"

// Player represents a rated participant in a draw
type Player struct {
	Name   string
	Rating float64
}

// String returns the player as "Name (rating)"
func (p Player) String() string {
	return fmt.Sprintf("%s (%.1f)", p.Name, p.Rating)
}

// defaultRoster is the built-in roster used when no configuration is supplied
var defaultRoster = []Player{
	{Name: "Alex", Rating: 3},
	{Name: "Andre", Rating: 2},
	{Name: "Augusto", Rating: 3},
	{Name: "Bruno", Rating: 4},
	{Name: "Diego", Rating: 3},
	{Name: "Diogo", Rating: 4},
	{Name: "Duda", Rating: 4},
	{Name: "Felipe", Rating: 4},
	{Name: "Guilhermo", Rating: 3},
	{Name: "Jean", Rating: 3},
	{Name: "Juan", Rating: 2},
	{Name: "Leo", Rating: 4},
	{Name: "Leonardo", Rating: 3},
	{Name: "Lucio", Rating: 3},
	{Name: "Marcelo", Rating: 3},
	{Name: "Pedro", Rating: 3},
	{Name: "Rafael", Rating: 3},
	{Name: "Rodrigo", Rating: 4},
	{Name: "Tiago", Rating: 3},
	{Name: "Thiago", Rating: 2},
}

// DefaultPlayers returns a copy of the built-in 20 player roster
func DefaultPlayers() []Player {
	players := make([]Player, len(defaultRoster))
	copy(players, defaultRoster)
	return players
}

// TotalRating sums the ratings of the given players
func TotalRating(players []Player) float64 {
	total := 0.0
	for _, p := range players {
		total += p.Rating
	}
	return total
}
