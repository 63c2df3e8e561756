// Package config loads, validates and saves draw configurations.
//
// A configuration lists the players with their scores, the team names and
// optional draft settings. The team size is derived from the number of
// players and teams, so the players must divide evenly between the teams.
// Files are read as JSON, HCL or TOML depending on their extension.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/team"
	"github.com/samber/lo"
)

// ErrInvalidConfig is returned when a configuration cannot be used for a draw
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is a complete draw configuration
type Config struct {
	Players    []PlayerEntry  `json:"players" toml:"players" validate:"required,min=1,dive"`
	TeamNames  []string       `json:"teamNames,omitempty" toml:"teamNames,omitempty" validate:"omitempty,unique,dive,required,notblank"`
	ScoreScale *ScoreScale    `json:"scoreScale,omitempty" toml:"scoreScale,omitempty"`
	Draft      *DraftSettings `json:"draft,omitempty" toml:"draft,omitempty"`
}

// PlayerEntry is a player as written in a configuration file
type PlayerEntry struct {
	Name  string  `json:"name" toml:"name" validate:"required,notblank"`
	Score float64 `json:"score" toml:"score"`
}

// ScoreScale bounds the scores players may have
type ScoreScale struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// Contains reports whether score lies within the scale, bounds included
func (s ScoreScale) Contains(score float64) bool {
	return score >= s.Min && score <= s.Max
}

// DraftSettings tune the retry policy of a draw
type DraftSettings struct {
	// TeamSize is only used when no team names are given
	TeamSize    int    `json:"teamSize,omitempty" toml:"teamSize,omitempty" validate:"gte=0"`
	MaxAttempts int    `json:"maxAttempts,omitempty" toml:"maxAttempts,omitempty" validate:"gte=0"`
	Workers     int    `json:"workers,omitempty" toml:"workers,omitempty" validate:"gte=0"`
	Timeout     string `json:"timeout,omitempty" toml:"timeout,omitempty"`
	Seed        *int64 `json:"seed,omitempty" toml:"seed,omitempty"`
}

// TimeoutDuration parses Timeout; an empty timeout is zero
func (d *DraftSettings) TimeoutDuration() (time.Duration, error) {
	if d == nil || d.Timeout == "" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(d.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: draft.timeout: %v", ErrInvalidConfig, err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("%w: draft.timeout must not be negative", ErrInvalidConfig)
	}
	return timeout, nil
}

// Default returns the built-in roster split into teams of two
func Default() *Config {
	players := team.DefaultPlayers()
	teams := len(players) / draft.DefaultTeamSize

	names := make([]string, teams)
	for i := range names {
		names[i] = draft.GeneratedNames{}.Name(i)
	}

	return &Config{
		Players: lo.Map(players, func(p team.Player, _ int) PlayerEntry {
			return PlayerEntry{Name: p.Name, Score: p.Rating}
		}),
		TeamNames:  names,
		ScoreScale: &ScoreScale{Min: 1, Max: 5},
		Draft:      &DraftSettings{MaxAttempts: draft.DefaultMaxAttempts},
	}
}

// Roster returns the configured players
func (c *Config) Roster() []team.Player {
	return lo.Map(c.Players, func(p PlayerEntry, _ int) team.Player {
		return team.Player{Name: strings.TrimSpace(p.Name), Rating: p.Score}
	})
}

// TeamSize returns the number of players per team. With team names it is
// derived from the player count and must divide evenly.
func (c *Config) TeamSize() (int, error) {
	if len(c.TeamNames) == 0 {
		if c.Draft != nil && c.Draft.TeamSize > 0 {
			return c.Draft.TeamSize, nil
		}
		return draft.DefaultTeamSize, nil
	}

	numPlayers := len(c.Players)
	numTeams := len(c.TeamNames)
	if numPlayers%numTeams != 0 {
		return 0, fmt.Errorf(
			"%w: number of players (%d) must be evenly divisible by number of teams (%d), "+
				"current division results in %d players per team with %d remaining players",
			ErrInvalidConfig, numPlayers, numTeams, numPlayers/numTeams, numPlayers%numTeams)
	}
	return numPlayers / numTeams, nil
}

// TeamCount returns the number of teams a draw produces
func (c *Config) TeamCount() (int, error) {
	if len(c.TeamNames) > 0 {
		return len(c.TeamNames), nil
	}
	size, err := c.TeamSize()
	if err != nil {
		return 0, err
	}
	return len(c.Players) / size, nil
}

// Validate checks the configuration can be drawn. Errors wrap
// ErrInvalidConfig.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}

	size, err := c.TeamSize()
	if err != nil {
		return err
	}
	if len(c.TeamNames) == 0 && len(c.Players)%size != 0 {
		return fmt.Errorf("%w: number of players (%d) must be evenly divisible by team size (%d)",
			ErrInvalidConfig, len(c.Players), size)
	}
	if count, _ := c.TeamCount(); count == 0 {
		return fmt.Errorf("%w: not enough players (%d) for a single team of %d", ErrInvalidConfig, len(c.Players), size)
	}

	if c.ScoreScale != nil {
		if c.ScoreScale.Min >= c.ScoreScale.Max {
			return fmt.Errorf("%w: score scale minimum must be less than maximum", ErrInvalidConfig)
		}
		for _, p := range c.Players {
			if !c.ScoreScale.Contains(p.Score) {
				return fmt.Errorf("%w: player %s has score %.1f which is outside the valid range [%.1f, %.1f]",
					ErrInvalidConfig, p.Name, p.Score, c.ScoreScale.Min, c.ScoreScale.Max)
			}
		}
	}

	if _, err := c.Draft.TimeoutDuration(); err != nil {
		return err
	}

	return nil
}

// DraftOptions translates the configuration into options for draft.NewMaker
func (c *Config) DraftOptions() ([]draft.Option, error) {
	size, err := c.TeamSize()
	if err != nil {
		return nil, err
	}

	opts := []draft.Option{
		draft.WithTeamSize(size),
		draft.WithTeamNames(c.TeamNames...),
	}

	if d := c.Draft; d != nil {
		if d.MaxAttempts > 0 {
			opts = append(opts, draft.WithMaxAttempts(d.MaxAttempts))
		}
		if d.Workers > 0 {
			opts = append(opts, draft.WithWorkers(d.Workers))
		}
		if d.Seed != nil {
			opts = append(opts, draft.WithSeed(*d.Seed))
		}
		timeout, err := d.TimeoutDuration()
		if err != nil {
			return nil, err
		}
		if timeout > 0 {
			opts = append(opts, draft.WithTimeout(timeout))
		}
	}

	return opts, nil
}
