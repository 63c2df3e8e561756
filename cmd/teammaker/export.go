package main

import (
	"github.com/lox/teammaker/internal/config"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/team"
	"github.com/samber/lo"
)

// drawExport is the JSON form of a draw
type drawExport struct {
	ID          string               `json:"id"`
	Seed        int64                `json:"seed"`
	Balanced    bool                 `json:"balanced"`
	Attempts    int                  `json:"attempts"`
	MinStrength float64              `json:"minStrength"`
	MaxStrength float64              `json:"maxStrength"`
	Teams       []teamExport         `json:"teams"`
	Unassigned  []config.PlayerEntry `json:"unassigned,omitempty"`
}

type teamExport struct {
	Name     string               `json:"name"`
	Strength float64              `json:"strength"`
	Players  []config.PlayerEntry `json:"players"`
}

func newDrawExport(id string, seed int64, res *draft.Result) drawExport {
	return drawExport{
		ID:          id,
		Seed:        seed,
		Balanced:    res.Balanced,
		Attempts:    res.Attempts,
		MinStrength: res.MinStrength,
		MaxStrength: res.MaxStrength,
		Teams: lo.Map(res.Teams, func(t *team.Team, _ int) teamExport {
			return teamExport{Name: t.Name(), Strength: t.Strength(), Players: entries(t.Players())}
		}),
		Unassigned: entries(res.Unassigned),
	}
}

func entries(players []team.Player) []config.PlayerEntry {
	if len(players) == 0 {
		return nil
	}
	return lo.Map(players, func(p team.Player, _ int) config.PlayerEntry {
		return config.PlayerEntry{Name: p.Name, Score: p.Rating}
	})
}
