package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/teammaker/internal/config"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/drawid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGlobals() (*Globals, *bytes.Buffer) {
	var out bytes.Buffer
	return &Globals{
		stdout: &out,
		logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
	}, &out
}

func ptr[T any](v T) *T {
	return &v
}

func writeConfig(t *testing.T, name string, cfg *config.Config) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, config.Save(cfg, path))
	return path
}

// lopsidedConfig can never balance: one player outweighs everyone else
func lopsidedConfig() *config.Config {
	return &config.Config{
		Players: []config.PlayerEntry{
			{Name: "Star", Score: 100},
			{Name: "A", Score: 1},
			{Name: "B", Score: 1},
			{Name: "C", Score: 1},
		},
		TeamNames: []string{"Red", "Blue"},
	}
}

func TestCLIParses(t *testing.T) {
	path := writeConfig(t, "teams.json", config.Default())

	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{"--log-format", "json", "draw", path, "--seed", "3", "--max-attempts", "0", "--timeout", "2s", "--json"})
	require.NoError(t, err)
	assert.Equal(t, "draw <config>", ctx.Command())
	assert.Equal(t, "json", cli.LogFormat)
	assert.Equal(t, path, cli.Draw.Config)
	require.NotNil(t, cli.Draw.Seed)
	assert.Equal(t, int64(3), *cli.Draw.Seed)
	require.NotNil(t, cli.Draw.MaxAttempts)
	assert.Equal(t, 0, *cli.Draw.MaxAttempts)
	assert.Equal(t, 2*time.Second, cli.Draw.Timeout)
	assert.True(t, cli.Draw.JSON)
	assert.Equal(t, "auto", cli.Draw.Color)
}

func TestLoadConfig(t *testing.T) {
	t.Run("built-in roster", func(t *testing.T) {
		cfg, err := loadConfig("", DraftFlags{})
		require.NoError(t, err)
		assert.Len(t, cfg.Players, 20)
		assert.Len(t, cfg.TeamNames, 10)
	})

	t.Run("team size switches to generated names", func(t *testing.T) {
		cfg, err := loadConfig("", DraftFlags{TeamSize: 4})
		require.NoError(t, err)
		assert.Empty(t, cfg.TeamNames)
		count, err := cfg.TeamCount()
		require.NoError(t, err)
		assert.Equal(t, 5, count)
	})

	t.Run("team size must divide the roster", func(t *testing.T) {
		_, err := loadConfig("", DraftFlags{TeamSize: 3})
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("team size with a file", func(t *testing.T) {
		path := writeConfig(t, "teams.json", config.Default())
		_, err := loadConfig(path, DraftFlags{TeamSize: 2})
		assert.ErrorIs(t, err, errTeamSizeWithConfig)
	})

	t.Run("flags override the file", func(t *testing.T) {
		path := writeConfig(t, "teams.hcl", lopsidedConfig())
		cfg, err := loadConfig(path, DraftFlags{
			MaxAttempts: ptr(7),
			Timeout:     time.Second,
			Workers:     3,
			Seed:        ptr(int64(99)),
		})
		require.NoError(t, err)
		require.NotNil(t, cfg.Draft)
		assert.Equal(t, 7, cfg.Draft.MaxAttempts)
		assert.Equal(t, "1s", cfg.Draft.Timeout)
		assert.Equal(t, 3, cfg.Draft.Workers)
		assert.Equal(t, int64(99), *cfg.Draft.Seed)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "nope.json"), DraftFlags{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestDrawCmdPrintsTeams(t *testing.T) {
	g, out := testGlobals()
	cmd := &DrawCmd{DraftFlags: DraftFlags{Seed: ptr(int64(1))}, Color: "never"}
	require.NoError(t, cmd.Run(g))

	assert.Contains(t, out.String(), "TEAM DRAW RESULTS")
	assert.Contains(t, out.String(), "Team #10 - ")
	assert.Contains(t, out.String(), "WELL BALANCED")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestDrawCmdJSON(t *testing.T) {
	g, out := testGlobals()
	exportPath := filepath.Join(t.TempDir(), "draw.json")
	cmd := &DrawCmd{DraftFlags: DraftFlags{Seed: ptr(int64(5))}, JSON: true, Output: exportPath}
	require.NoError(t, cmd.Run(g))

	var export drawExport
	require.NoError(t, json.Unmarshal(out.Bytes(), &export))
	assert.NoError(t, drawid.Validate(export.ID))
	assert.Equal(t, int64(5), export.Seed)
	assert.True(t, export.Balanced)
	assert.GreaterOrEqual(t, export.Attempts, 1)
	require.Len(t, export.Teams, 10)
	for _, tm := range export.Teams {
		assert.Len(t, tm.Players, 2)
		assert.InDelta(t, tm.Players[0].Score+tm.Players[1].Score, tm.Strength, 1e-9)
	}
	assert.Empty(t, export.Unassigned)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	var saved drawExport
	require.NoError(t, json.Unmarshal(data, &saved))
	assert.Equal(t, export, saved)
}

func TestDrawCmdIsReproducible(t *testing.T) {
	run := func() drawExport {
		g, out := testGlobals()
		cmd := &DrawCmd{DraftFlags: DraftFlags{Seed: ptr(int64(11))}, JSON: true}
		require.NoError(t, cmd.Run(g))
		var export drawExport
		require.NoError(t, json.Unmarshal(out.Bytes(), &export))
		return export
	}

	first, second := run(), run()
	assert.Equal(t, first.Teams, second.Teams)
	assert.Equal(t, first.Attempts, second.Attempts)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDrawCmdUnbalanced(t *testing.T) {
	path := writeConfig(t, "teams.json", lopsidedConfig())

	t.Run("fails by default", func(t *testing.T) {
		g, out := testGlobals()
		cmd := &DrawCmd{Config: path, DraftFlags: DraftFlags{MaxAttempts: ptr(5), Seed: ptr(int64(1))}, Color: "never"}

		err := cmd.Run(g)
		require.Error(t, err)
		assert.ErrorIs(t, err, draft.ErrBalanceNotAchieved)
		var balanceErr *draft.BalanceError
		require.ErrorAs(t, err, &balanceErr)
		assert.Equal(t, 5, balanceErr.Attempts)
		assert.Empty(t, out.String())
	})

	t.Run("prints the last draw when accepted", func(t *testing.T) {
		g, out := testGlobals()
		cmd := &DrawCmd{Config: path, DraftFlags: DraftFlags{MaxAttempts: ptr(5), Seed: ptr(int64(1))}, Color: "never", AcceptUnbalanced: true}

		require.NoError(t, cmd.Run(g))
		assert.Contains(t, out.String(), "Needs rebalancing")
	})
}

func TestSimulateCmd(t *testing.T) {
	g, out := testGlobals()
	cmd := &SimulateCmd{DraftFlags: DraftFlags{Seed: ptr(int64(4))}, Draws: 5, Color: "never"}
	require.NoError(t, cmd.Run(g))

	assert.Contains(t, out.String(), "SIMULATION")
	assert.Contains(t, out.String(), "5 (100.0%)")
}

func TestSimulateCmdRacingWorkers(t *testing.T) {
	g, out := testGlobals()
	cmd := &SimulateCmd{DraftFlags: DraftFlags{Seed: ptr(int64(4)), Workers: 4}, Draws: 3, Color: "never"}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "3 (100.0%)")
}

func TestSimulateCmdSeedsFromClock(t *testing.T) {
	var logs bytes.Buffer
	g, out := testGlobals()
	g.logger = log.NewWithOptions(&logs, log.Options{Level: log.InfoLevel, Formatter: log.LogfmtFormatter})
	clock := quartz.NewMock(t)
	clock.Set(time.Unix(1900000000, 42))
	g.clock = clock

	cmd := &SimulateCmd{Draws: 2, Color: "never"}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, logs.String(), "seed=1900000000000000042")
	assert.Contains(t, out.String(), "2 (100.0%)")
}

func TestSimulateCmdCountsUnbalancedDraws(t *testing.T) {
	path := writeConfig(t, "teams.toml", lopsidedConfig())
	g, out := testGlobals()
	cmd := &SimulateCmd{Config: path, DraftFlags: DraftFlags{MaxAttempts: ptr(3), Seed: ptr(int64(1))}, Draws: 2, Color: "never"}
	require.NoError(t, cmd.Run(g))
	assert.Contains(t, out.String(), "0 (0.0%)")
}

func TestSimulateCmdRejectsZeroDraws(t *testing.T) {
	g, _ := testGlobals()
	err := (&SimulateCmd{Draws: 0, Color: "never"}).Run(g)
	assert.Error(t, err)
}

func TestInitAndValidate(t *testing.T) {
	for _, ext := range []string{"json", "hcl", "toml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "teams."+ext)

			g, out := testGlobals()
			require.NoError(t, (&InitCmd{File: path}).Run(g))
			assert.Contains(t, out.String(), "Created "+path)

			g, out = testGlobals()
			require.NoError(t, (&ValidateCmd{Config: path}).Run(g))
			assert.Contains(t, out.String(), "is valid")
			assert.Contains(t, out.String(), "20 players, 10 teams of 2")
			assert.Contains(t, out.String(), "Team J")
			assert.Contains(t, out.String(), "Alex")
		})
	}
}

func TestInitRefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	g, _ := testGlobals()
	err := (&InitCmd{File: path}).Run(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, (&InitCmd{File: path, Force: true}).Run(g))
	_, err = config.Load(path)
	assert.NoError(t, err)
}

func TestValidateCmd(t *testing.T) {
	t.Run("generated team names", func(t *testing.T) {
		cfg := lopsidedConfig()
		cfg.TeamNames = nil
		path := writeConfig(t, "teams.json", cfg)

		g, out := testGlobals()
		require.NoError(t, (&ValidateCmd{Config: path}).Run(g))
		assert.Contains(t, out.String(), "4 players, 2 teams of 2")
		assert.Contains(t, out.String(), "Teams: [Team A Team B]")
	})

	t.Run("quiet", func(t *testing.T) {
		path := writeConfig(t, "teams.json", lopsidedConfig())
		g, out := testGlobals()
		require.NoError(t, (&ValidateCmd{Config: path, Quiet: true}).Run(g))
		assert.Empty(t, out.String())
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "teams.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"players":[{"name":"A","score":1},{"name":"B","score":2},{"name":"C","score":3}],"teamNames":["Red","Blue"]}`), 0o644))

		g, _ := testGlobals()
		err := (&ValidateCmd{Config: path}).Run(g)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}
