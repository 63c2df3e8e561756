package draft

import (
	"errors"
	"fmt"
	"time"
)

// ErrBalanceNotAchieved is returned when the retry budget runs out before a
// balanced attempt is found
var ErrBalanceNotAchieved = errors.New("balance not achieved")

// BalanceError describes an exhausted retry budget. Last holds the final
// unbalanced attempt so callers can still use it.
type BalanceError struct {
	Attempts int
	Elapsed  time.Duration
	TimedOut bool
	Last     *Result
}

func (e *BalanceError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("%s: timed out after %d attempts (%s)", ErrBalanceNotAchieved, e.Attempts, e.Elapsed)
	}
	return fmt.Sprintf("%s after %d attempts", ErrBalanceNotAchieved, e.Attempts)
}

func (e *BalanceError) Unwrap() error {
	return ErrBalanceNotAchieved
}
