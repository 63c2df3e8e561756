package draft

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/teammaker/internal/randutil"
	"github.com/lox/teammaker/internal/team"
	"golang.org/x/sync/errgroup"
)

// Maker wires the assembler and the evaluator together and owns the retry
// policy. A Maker is not safe for concurrent use; racing attempts happen
// inside AssembleUntilBalanced.
type Maker struct {
	teamSize    int
	names       NameSource
	seed        int64
	seeded      bool
	rng         RandSource
	maxAttempts int
	timeout     time.Duration
	workers     int
	clock       quartz.Clock
	logger      *log.Logger
	onAttempt   func(attempt int, r *Result)

	// races counts parallel draws so each one derives a fresh race seed
	races int
}

// NewMaker creates a Maker with the given options applied over the defaults
func NewMaker(opts ...Option) *Maker {
	m := &Maker{
		teamSize:    DefaultTeamSize,
		names:       GeneratedNames{},
		maxAttempts: DefaultMaxAttempts,
		workers:     1,
		clock:       quartz.NewReal(),
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.rng != nil {
		m.workers = 1
	} else {
		if !m.seeded {
			m.seed = m.clock.Now().UnixNano()
			m.seeded = true
		}
		m.rng = randutil.New(m.seed)
	}
	m.logger = m.logger.WithPrefix("draft")

	return m
}

// Seed returns the seed the Maker's sources derive from. It is meaningless
// when a custom source was injected with WithRand.
func (m *Maker) Seed() int64 {
	return m.seed
}

// TeamSize returns the configured number of players per team
func (m *Maker) TeamSize() int {
	return m.teamSize
}

// Assemble runs a single attempt and evaluates it
func (m *Maker) Assemble(players []team.Player) (*Result, error) {
	return m.attempt(m.assembler(m.rng), players)
}

// AssembleUntilBalanced repeats attempts from scratch until one is balanced.
// The context, the attempt budget and the timeout are checked between
// attempts. When the budget runs out the last result is returned together
// with a *BalanceError.
func (m *Maker) AssembleUntilBalanced(ctx context.Context, players []team.Player) (*Result, error) {
	m.logger.Debug("Starting draw",
		"players", len(players),
		"team_size", m.teamSize,
		"max_attempts", m.maxAttempts,
		"timeout", m.timeout,
		"workers", m.workers,
		"seed", m.seed)

	if m.workers > 1 {
		return m.race(ctx, players)
	}

	start := m.clock.Now()
	asm := m.assembler(m.rng)
	var last *Result

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return last, fmt.Errorf("draw cancelled after %d attempts: %w", attempt-1, err)
		}
		if m.maxAttempts > 0 && attempt > m.maxAttempts {
			return last, m.exhausted(attempt-1, start, last)
		}
		if m.timedOut(start) {
			return last, m.exhausted(attempt-1, start, last)
		}

		res, err := m.attempt(asm, players)
		if err != nil {
			return last, fmt.Errorf("attempt %d: %w", attempt, err)
		}
		res.Attempts = attempt
		last = res
		m.notify(attempt, res)

		if res.Balanced {
			m.logger.Info("Balanced draw found",
				"attempts", attempt,
				"min", res.MinStrength,
				"max", res.MaxStrength,
				"elapsed", m.clock.Since(start))
			return res, nil
		}
	}
}

// race runs attempts on several workers until a balanced one is found or
// the budget is spent. Attempt n always draws from a source derived from the
// seed and n alone, and the lowest balanced ticket wins once every lower
// ticket has finished, so a seeded race replays exactly like any other.
func (m *Maker) race(ctx context.Context, players []team.Player) (*Result, error) {
	start := m.clock.Now()
	g, gctx := errgroup.WithContext(ctx)
	raceSeed := randutil.Derive(m.seed, m.races).Int64()
	m.races++

	var (
		tickets   atomic.Int64
		best      atomic.Int64
		mu        sync.Mutex
		completed int
		winner    *Result
		last      *Result
	)
	best.Store(math.MaxInt64)

	for w := 0; w < m.workers; w++ {
		g.Go(func() error {
			for {
				if gctx.Err() != nil || m.timedOut(start) {
					return nil
				}
				n := int(tickets.Add(1))
				if int64(n) > best.Load() {
					return nil
				}
				if m.maxAttempts > 0 && n > m.maxAttempts {
					return nil
				}

				asm := m.assembler(randutil.Derive(raceSeed, n))
				res, err := m.attempt(asm, players)
				if err != nil {
					return fmt.Errorf("worker %d attempt %d: %w", w, n, err)
				}
				res.Attempts = n

				mu.Lock()
				completed++
				if last == nil || n > last.Attempts {
					last = res
				}
				m.notify(n, res)
				// best only moves down, and only under mu
				if res.Balanced && int64(n) < best.Load() {
					winner = res
					best.Store(int64(n))
				}
				mu.Unlock()
			}
		})
	}

	err := g.Wait()
	if err != nil {
		return last, err
	}
	if winner != nil {
		m.logger.Info("Balanced draw found",
			"attempts", winner.Attempts,
			"completed", completed,
			"workers", m.workers,
			"min", winner.MinStrength,
			"max", winner.MaxStrength,
			"elapsed", m.clock.Since(start))
		return winner, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return last, fmt.Errorf("draw cancelled after %d attempts: %w", completed, ctxErr)
	}
	return last, m.exhausted(completed, start, last)
}

func (m *Maker) assembler(rng RandSource) *Assembler {
	return NewAssembler(m.teamSize, m.names, rng)
}

func (m *Maker) attempt(asm *Assembler, players []team.Player) (*Result, error) {
	draw, err := asm.Assemble(players)
	if err != nil {
		return nil, err
	}
	return newResult(draw), nil
}

func (m *Maker) notify(attempt int, res *Result) {
	m.logger.Debug("Attempt finished",
		"attempt", attempt,
		"min", res.MinStrength,
		"max", res.MaxStrength,
		"balanced", res.Balanced)
	if m.onAttempt != nil {
		m.onAttempt(attempt, res)
	}
}

func (m *Maker) timedOut(start time.Time) bool {
	return m.timeout > 0 && m.clock.Since(start) >= m.timeout
}

func (m *Maker) exhausted(attempts int, start time.Time, last *Result) error {
	err := &BalanceError{
		Attempts: attempts,
		Elapsed:  m.clock.Since(start),
		TimedOut: m.timedOut(start),
		Last:     last,
	}
	m.logger.Warn("Giving up on balance", "attempts", attempts, "elapsed", err.Elapsed, "timed_out", err.TimedOut)
	return err
}
