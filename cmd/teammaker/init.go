package main

import (
	"fmt"
	"os"

	"github.com/lox/teammaker/internal/config"
)

// InitCmd writes the default configuration so it can be edited
type InitCmd struct {
	File  string `arg:"" type:"path" help:"Where to write the configuration; the extension picks the format (.json, .hcl, .toml)"`
	Force bool   `short:"f" help:"Overwrite an existing file"`
}

func (c *InitCmd) Run(g *Globals) error {
	if !c.Force {
		if _, err := os.Stat(c.File); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", c.File)
		}
	}

	if err := config.Save(config.Default(), c.File); err != nil {
		return fmt.Errorf("write %s: %w", c.File, err)
	}

	g.Logger().Info("Wrote configuration", "path", c.File, "format", config.FormatFor(c.File))
	fmt.Fprintf(g.Stdout(), "Created %s\n", c.File)
	return nil
}
