// Package simulator runs many independent draws and aggregates how quickly
// each one reaches balance.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/teammaker/internal/draft"
	"github.com/lox/teammaker/internal/statistics"
	"github.com/lox/teammaker/internal/team"
)

// Config holds configuration for running simulations
type Config struct {
	Draws   int
	Players []team.Player
	// Options configure every draw's Maker; the seed is replaced per draw
	Options []draft.Option
	Seed    int64
	Clock   quartz.Clock
	Logger  *log.Logger
}

// Simulator runs draw simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the draws and returns their statistics. Draws that run out
// of budget count as unbalanced. A cancelled context stops the run early and
// returns the statistics gathered so far together with the context error.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Draws <= 0 {
		return nil, fmt.Errorf("draws must be positive, got %d", s.config.Draws)
	}

	stats := &statistics.Statistics{}
	for i := 0; i < s.config.Draws; i++ {
		// Generate independent seed for this draw
		drawSeed := s.config.Seed + int64(i)

		result, err := s.drawOnce(ctx, drawSeed)
		if err != nil {
			if ctx.Err() != nil {
				s.config.Logger.Warn("Simulation interrupted", "completed", stats.Draws)
				return stats, err
			}
			return nil, fmt.Errorf("draw %d (seed %d): %w", i+1, drawSeed, err)
		}
		if result.Attempts == 0 {
			s.config.Logger.Warn("Draw ran out of time before its first attempt", "draw", i+1)
			continue
		}
		stats.Add(result)
	}

	if stats.Draws == 0 {
		return stats, nil
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// drawOnce runs one retry-until-balanced draw with its own Maker
func (s *Simulator) drawOnce(ctx context.Context, seed int64) (statistics.DrawResult, error) {
	opts := append([]draft.Option{}, s.config.Options...)
	opts = append(opts, draft.WithSeed(seed), draft.WithClock(s.config.Clock), draft.WithLogger(s.config.Logger))
	maker := draft.NewMaker(opts...)

	start := s.config.Clock.Now()
	res, err := maker.AssembleUntilBalanced(ctx, s.config.Players)
	elapsed := s.config.Clock.Since(start)

	var balanceErr *draft.BalanceError
	switch {
	case err == nil:
		return statistics.DrawResult{
			Attempts: res.Attempts,
			Balanced: true,
			Spread:   res.Spread(),
			Elapsed:  elapsed,
		}, nil
	case errors.As(err, &balanceErr):
		return statistics.DrawResult{Attempts: balanceErr.Attempts, Elapsed: elapsed}, nil
	default:
		return statistics.DrawResult{}, err
	}
}

// RunSimulation is a convenience wrapper around New and Run
func RunSimulation(ctx context.Context, draws int, players []team.Player, seed int64, logger *log.Logger, opts ...draft.Option) (*statistics.Statistics, error) {
	return New(Config{
		Draws:   draws,
		Players: players,
		Options: opts,
		Seed:    seed,
		Logger:  logger,
	}).Run(ctx)
}
