package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/teammaker/cmd/teammaker/shared"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Debug     bool   `help:"Enable debug logging" env:"TEAMMAKER_DEBUG"`
	LogFormat string `enum:"text,json,logfmt" default:"text" help:"Log output format (text, json, logfmt)" env:"TEAMMAKER_LOG_FORMAT"`

	stdout io.Writer
	logger *log.Logger
	clock  quartz.Clock
}

// Stdout is where command output goes
func (g *Globals) Stdout() io.Writer {
	if g.stdout == nil {
		return os.Stdout
	}
	return g.stdout
}

// Clock is the time source for unseeded commands
func (g *Globals) Clock() quartz.Clock {
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	return g.clock
}

// Logger returns the process logger, creating it on first use
func (g *Globals) Logger() *log.Logger {
	if g.logger == nil {
		g.logger = shared.SetupLogger(g.Debug, g.LogFormat)
	}
	return g.logger
}

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Draw        DrawCmd          `cmd:"" default:"withargs" help:"Draw balanced teams"`
	Simulate    SimulateCmd      `cmd:"" help:"Run many draws and report how quickly balance is found"`
	Init        InitCmd          `cmd:"" help:"Write a starter configuration file"`
	Validate    ValidateCmd      `cmd:"" help:"Check a configuration file and summarise it"`
	Interactive InteractiveCmd   `cmd:"" help:"Draw teams in an interactive terminal view"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("teammaker"),
		kong.Description("Draw balanced teams from a rated roster of players"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
