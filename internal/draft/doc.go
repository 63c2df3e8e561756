// Package draft assembles rated players into equal-size teams whose total
// strengths are close to each other.
//
// # Attempts
//
// One attempt shuffles the player pool and the team order, then walks the
// teams handing each incomplete team one player at a time. The player is the
// one whose rating is nearest to a randomly drawn tier; teams below the pool
// average draw from the upper tiers and teams above it from the lower ones,
// so the draft pulls towards balance without any global search.
//
// An attempt is balanced when the weakest team is at least BalanceRatio of
// the strongest.
//
// # Retrying
//
// Maker.AssembleUntilBalanced repeats whole attempts until one is balanced.
// The retry budget is always explicit: an attempt count, a wall-clock
// timeout measured on the injected quartz clock, and the caller's context.
//
//	m := draft.NewMaker(
//	    draft.WithTeamSize(5),
//	    draft.WithTeamNames("Red", "Blue"),
//	    draft.WithMaxAttempts(1000),
//	    draft.WithSeed(42),
//	)
//	res, err := m.AssembleUntilBalanced(ctx, players)
//
// With WithWorkers(n) attempts race on n goroutines, each with its own seeded
// source, pool and teams. Nothing is shared between attempts apart from the
// attempt counter.
package draft
