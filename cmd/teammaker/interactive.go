package main

import (
	"os"

	"github.com/lox/teammaker/cmd/teammaker/shared"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/render"
	"github.com/lox/teammaker/internal/tui"
)

// InteractiveCmd shows draws in a terminal view with redraw on demand
type InteractiveCmd struct {
	Config string `arg:"" optional:"" type:"existingfile" help:"Configuration file; the built-in roster is used when omitted"`

	DraftFlags `embed:""`

	LogFile string `type:"path" default:"teammaker.log" help:"Log file, since the terminal is taken over by the view"`
}

func (c *InteractiveCmd) Run(g *Globals) error {
	cfg, err := loadConfig(c.Config, c.DraftFlags)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()
	logger := shared.NewLogger(logFile, g.Debug, g.LogFormat)

	maker, err := newMaker(cfg, c.DraftFlags, logger)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	players := cfg.Roster()
	draw := func() (*draft.Result, error) {
		return maker.AssembleUntilBalanced(ctx, players)
	}

	formatter := render.New(os.Stdout, render.Options{Color: render.ColorAuto, Verbose: true})
	logger.Info("Starting interactive view", "players", len(players), "seed", maker.Seed())
	return tui.Run(tui.New(draw, formatter, logger))
}
