package statistics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"
)

// Series accumulates a stream of values for summary statistics
type Series struct {
	Count  int
	Sum    float64
	SumSq  float64   // Sum of squares for variance calculation
	Values []float64 // Kept for median/percentile calculation
}

// Add records a value
func (s *Series) Add(v float64) {
	s.Count++
	s.Sum += v
	s.SumSq += v * v
	s.Values = append(s.Values, v)
}

// Mean returns the arithmetic mean of the series
func (s *Series) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.Sum / float64(s.Count)
}

// Variance returns the sample variance of the series
func (s *Series) Variance() float64 {
	if s.Count < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.Count)*mean*mean) / float64(s.Count-1)
	// Rounding can push a zero variance slightly negative
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation
func (s *Series) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Series) StdError() float64 {
	if s.Count == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Count))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Series) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Min returns the smallest value, or 0 for an empty series
func (s *Series) Min() float64 {
	return lo.Min(s.Values)
}

// Max returns the largest value, or 0 for an empty series
func (s *Series) Max() float64 {
	return lo.Max(s.Values)
}

// Median returns the median value
func (s *Series) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Series) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	p = math.Min(math.Max(p, 0), 1)
	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// DrawResult is the outcome of one retry-until-balanced run
type DrawResult struct {
	Attempts int
	Balanced bool
	Spread   float64 // Strongest minus weakest team strength
	Elapsed  time.Duration
}

// Statistics tracks many independent draws, as run by the simulate command
type Statistics struct {
	Draws         int
	BalancedDraws int
	TotalAttempts int

	Attempts Series
	Spread   Series // Only balanced draws
	Elapsed  Series // Seconds
}

// Add incorporates a draw
func (s *Statistics) Add(r DrawResult) {
	s.Draws++
	s.TotalAttempts += r.Attempts
	s.Attempts.Add(float64(r.Attempts))
	s.Elapsed.Add(r.Elapsed.Seconds())
	if r.Balanced {
		s.BalancedDraws++
		s.Spread.Add(r.Spread)
	}
}

// BalanceRate returns the fraction of draws that ended balanced
func (s *Statistics) BalanceRate() float64 {
	if s.Draws == 0 {
		return 0
	}
	return float64(s.BalancedDraws) / float64(s.Draws)
}

// AttemptSuccessRate estimates the chance that a single attempt is balanced
func (s *Statistics) AttemptSuccessRate() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.BalancedDraws) / float64(s.TotalAttempts)
}

// Validate checks the counters are consistent with each other
func (s *Statistics) Validate() error {
	if s.Draws <= 0 {
		return fmt.Errorf("invalid draws count: %d", s.Draws)
	}

	if s.BalancedDraws > s.Draws {
		return fmt.Errorf("balanced draws (%d) exceeds total draws (%d)", s.BalancedDraws, s.Draws)
	}

	if s.Attempts.Count != s.Draws {
		return fmt.Errorf("attempt samples (%d) does not match draws (%d)", s.Attempts.Count, s.Draws)
	}

	if s.Spread.Count != s.BalancedDraws {
		return fmt.Errorf("spread samples (%d) does not match balanced draws (%d)", s.Spread.Count, s.BalancedDraws)
	}

	if s.TotalAttempts < s.Draws {
		return fmt.Errorf("total attempts (%d) is less than draws (%d)", s.TotalAttempts, s.Draws)
	}

	return nil
}
