package main

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/teammaker/internal/config"
	"github.com/lox/teammaker/internal/draft"
)

// DraftFlags override the draft settings of a configuration
type DraftFlags struct {
	MaxAttempts *int          `help:"Attempts before giving up on balance (0 = unbounded)" env:"TEAMMAKER_MAX_ATTEMPTS"`
	Timeout     time.Duration `help:"Give up on balance after this long (0 = no limit)" env:"TEAMMAKER_TIMEOUT"`
	Workers     int           `help:"Race attempts on this many goroutines" env:"TEAMMAKER_WORKERS"`
	Seed        *int64        `help:"Seed for reproducible draws" env:"TEAMMAKER_SEED"`
	TeamSize    int           `help:"Players per team for the built-in roster" env:"TEAMMAKER_TEAM_SIZE"`
}

var errTeamSizeWithConfig = errors.New("--team-size only applies to the built-in roster; set team names in the configuration instead")

// loadConfig reads path, or the built-in roster when path is empty, and
// applies the flag overrides on top
func loadConfig(path string, flags DraftFlags) (*config.Config, error) {
	var cfg *config.Config
	if path == "" {
		cfg = config.Default()
		if flags.TeamSize > 0 {
			// Generated names adapt to any team count
			cfg.TeamNames = nil
			cfg.Draft.TeamSize = flags.TeamSize
		}
	} else {
		if flags.TeamSize > 0 {
			return nil, errTeamSizeWithConfig
		}
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cfg.Draft == nil {
		cfg.Draft = &config.DraftSettings{}
	}
	if flags.MaxAttempts != nil {
		cfg.Draft.MaxAttempts = *flags.MaxAttempts
	}
	if flags.Timeout > 0 {
		cfg.Draft.Timeout = flags.Timeout.String()
	}
	if flags.Workers > 0 {
		cfg.Draft.Workers = flags.Workers
	}
	if flags.Seed != nil {
		seed := *flags.Seed
		cfg.Draft.Seed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newMaker builds a Maker for cfg. An explicit zero attempt budget must
// survive, so it is applied after the configuration options.
func newMaker(cfg *config.Config, flags DraftFlags, logger *log.Logger) (*draft.Maker, error) {
	opts, err := cfg.DraftOptions()
	if err != nil {
		return nil, err
	}
	if flags.MaxAttempts != nil {
		opts = append(opts, draft.WithMaxAttempts(*flags.MaxAttempts))
	}
	opts = append(opts, draft.WithLogger(logger))
	return draft.NewMaker(opts...), nil
}
