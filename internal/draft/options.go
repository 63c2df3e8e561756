package draft

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// DefaultTeamSize is used when no team size is configured
const DefaultTeamSize = 2

// DefaultMaxAttempts bounds AssembleUntilBalanced unless overridden
const DefaultMaxAttempts = 10000

// Option configures a Maker
type Option func(*Maker)

// WithTeamSize sets the number of players per team
func WithTeamSize(size int) Option {
	return func(m *Maker) {
		m.teamSize = size
	}
}

// WithTeamNames names teams in order; teams past the end of the list get
// generated names
func WithTeamNames(names ...string) Option {
	return func(m *Maker) {
		m.names = ExplicitNames(names...)
	}
}

// WithNameSource sets the naming strategy directly
func WithNameSource(names NameSource) Option {
	return func(m *Maker) {
		if names != nil {
			m.names = names
		}
	}
}

// WithSeed makes draws reproducible. Racing attempts derive their sources
// from the seed and their attempt number, so the worker count does not
// change which seeded replay is found.
func WithSeed(seed int64) Option {
	return func(m *Maker) {
		m.seed = seed
		m.seeded = true
	}
}

// WithRand injects the random source. A custom source cannot be split
// between workers, so it forces a single worker.
func WithRand(rng RandSource) Option {
	return func(m *Maker) {
		m.rng = rng
	}
}

// WithMaxAttempts bounds the number of attempts. Zero removes the bound;
// the timeout and context then remain the only way out.
func WithMaxAttempts(n int) Option {
	return func(m *Maker) {
		if n < 0 {
			n = 0
		}
		m.maxAttempts = n
	}
}

// WithTimeout bounds the wall-clock time spent retrying. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(m *Maker) {
		m.timeout = d
	}
}

// WithWorkers races attempts on n goroutines
func WithWorkers(n int) Option {
	return func(m *Maker) {
		if n < 1 {
			n = 1
		}
		m.workers = n
	}
}

// WithClock sets the clock used for timeouts and default seeding
func WithClock(clock quartz.Clock) Option {
	return func(m *Maker) {
		m.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(m *Maker) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithAttemptHook registers a callback invoked after every attempt. Calls
// are serialized even when workers race.
func WithAttemptHook(hook func(attempt int, r *Result)) Option {
	return func(m *Maker) {
		m.onAttempt = hook
	}
}
