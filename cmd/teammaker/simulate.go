package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/teammaker/cmd/teammaker/shared"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/render"
	"github.com/lox/teammaker/internal/simulator"
)

// SimulateCmd runs many independent draws and reports how many attempts
// balance takes
type SimulateCmd struct {
	Config string `arg:"" optional:"" type:"existingfile" help:"Configuration file; the built-in roster is used when omitted"`

	DraftFlags `embed:""`

	Draws int    `short:"n" default:"100" help:"Number of draws to run"`
	Color string `enum:"auto,always,never" default:"auto" help:"Colorize output (auto, always, never)" env:"TEAMMAKER_COLOR"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	if c.Draws <= 0 {
		return fmt.Errorf("--draws must be positive, got %d", c.Draws)
	}

	logger := g.Logger()
	cfg, err := loadConfig(c.Config, c.DraftFlags)
	if err != nil {
		return err
	}
	opts, err := cfg.DraftOptions()
	if err != nil {
		return err
	}
	if c.MaxAttempts != nil {
		opts = append(opts, draft.WithMaxAttempts(*c.MaxAttempts))
	}

	seed := g.Clock().Now().UnixNano()
	if cfg.Draft.Seed != nil {
		seed = *cfg.Draft.Seed
	}

	// Per-draw results are only interesting when debugging
	drawLogger := logger.With()
	if drawLogger.GetLevel() > log.DebugLevel {
		drawLogger.SetLevel(log.WarnLevel)
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	players := cfg.Roster()
	logger.Info("Starting simulation", "draws", c.Draws, "players", len(players), "seed", seed)

	stats, err := simulator.New(simulator.Config{
		Draws:   c.Draws,
		Players: players,
		Options: opts,
		Seed:    seed,
		Logger:  drawLogger,
	}).Run(ctx)
	if err != nil && !errors.Is(err, ctx.Err()) {
		return err
	}

	mode, err := render.ParseColorMode(c.Color)
	if err != nil {
		return err
	}
	render.New(g.Stdout(), render.Options{Color: mode}).PrintStatistics(stats)
	return nil
}
