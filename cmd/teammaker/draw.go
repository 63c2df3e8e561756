package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lox/teammaker/cmd/teammaker/shared"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/drawid"
	"github.com/lox/teammaker/internal/fileutil"
	"github.com/lox/teammaker/internal/render"
)

// DrawCmd draws teams until they are balanced and prints them
type DrawCmd struct {
	Config string `arg:"" optional:"" type:"existingfile" help:"Configuration file (.json, .hcl or .toml); the built-in roster is used when omitted"`

	DraftFlags `embed:""`

	JSON             bool   `help:"Print the result as JSON"`
	Output           string `short:"o" type:"path" help:"Also write the result as JSON to this file"`
	Verbose          bool   `short:"V" help:"Show attempts and a strength table"`
	Color            string `enum:"auto,always,never" default:"auto" help:"Colorize output (auto, always, never)" env:"TEAMMAKER_COLOR"`
	AcceptUnbalanced bool   `help:"Print the last draw when balance is not reached instead of failing"`
}

func (c *DrawCmd) Run(g *Globals) error {
	logger := g.Logger()

	cfg, err := loadConfig(c.Config, c.DraftFlags)
	if err != nil {
		return err
	}
	maker, err := newMaker(cfg, c.DraftFlags, logger)
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	players := cfg.Roster()
	logger.Debug("Drawing teams",
		"players", len(players),
		"team_size", maker.TeamSize(),
		"seed", maker.Seed())

	res, err := maker.AssembleUntilBalanced(ctx, players)
	if err != nil {
		var balanceErr *draft.BalanceError
		if !c.AcceptUnbalanced || !errors.As(err, &balanceErr) || res == nil {
			return err
		}
		logger.Warn("Showing unbalanced draw", "attempts", balanceErr.Attempts, "timed_out", balanceErr.TimedOut)
	}

	id := drawid.Generate()
	export := newDrawExport(id, maker.Seed(), res)

	if c.Output != "" {
		if err := fileutil.WriteJSONAtomic(c.Output, export, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", c.Output, err)
		}
		logger.Info("Saved draw", "path", c.Output, "id", id)
	}

	if c.JSON {
		enc := json.NewEncoder(g.Stdout())
		enc.SetIndent("", "  ")
		return enc.Encode(export)
	}

	mode, err := render.ParseColorMode(c.Color)
	if err != nil {
		return err
	}
	render.New(g.Stdout(), render.Options{Color: mode, Verbose: c.Verbose}).PrintResult(res, id)
	return nil
}
