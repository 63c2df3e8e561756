// Package team holds the entity model used by the draft: rated players and
// fixed-capacity teams that accumulate them.
//
// A Team is only ever mutated through Add, which keeps the aggregate
// strength equal to the sum of its players' ratings and refuses players once
// the team is complete:
//
//	t := team.New("Team A", 2)
//	_ = t.Add(team.Player{Name: "Alex", Rating: 3})
//	_ = t.Add(team.Player{Name: "Bruno", Rating: 4})
//	err := t.Add(team.Player{Name: "Duda", Rating: 4}) // errors.Is(err, team.ErrTeamFull)
//
// Teams are cheap; the draft allocates a fresh set for every attempt instead
// of resetting old ones.
package team
