package main

import (
	"fmt"

	"github.com/lox/teammaker/internal/config"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/render"
)

// ValidateCmd checks a configuration and summarises the draw it describes
type ValidateCmd struct {
	Config string `arg:"" type:"existingfile" help:"Configuration file to check"`
	Quiet  bool   `short:"q" help:"Only report errors"`
}

func (c *ValidateCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	if c.Quiet {
		return nil
	}

	size, err := cfg.TeamSize()
	if err != nil {
		return err
	}
	teams, err := cfg.TeamCount()
	if err != nil {
		return err
	}

	out := g.Stdout()
	fmt.Fprintf(out, "%s is valid\n", c.Config)
	fmt.Fprintf(out, "%d players, %d teams of %d\n", len(cfg.Players), teams, size)
	names := cfg.TeamNames
	if len(names) == 0 {
		for i := 0; i < teams; i++ {
			names = append(names, draft.GeneratedNames{}.Name(i))
		}
	}
	fmt.Fprintf(out, "Teams: %v\n", names)
	fmt.Fprint(out, render.FormatRoster(cfg.Roster()))
	return nil
}
