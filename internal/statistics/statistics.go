// Package statistics accumulates running sample statistics.
package statistics

import "math"

// Statistics tracks the count, sum and sum of squares of a sample so the mean
// and its confidence interval can be reported without storing every value.
type Statistics struct {
	N     int
	Sum   float64
	SumSq float64 // for variance
}

// Add incorporates one observation.
func (s *Statistics) Add(x float64) {
	s.N++
	s.Sum += x
	s.SumSq += x * x
}

// Merge folds another accumulator into s.
func (s *Statistics) Merge(other Statistics) {
	s.N += other.N
	s.Sum += other.Sum
	s.SumSq += other.SumSq
}

// Mean returns the arithmetic mean, or 0 for an empty sample.
func (s Statistics) Mean() float64 {
	if s.N == 0 {
		return 0
	}
	return s.Sum / float64(s.N)
}

// Variance returns the sample variance
func (s Statistics) Variance() float64 {
	if s.N < 2 {
		return 0
	}
	mean := s.Mean()
	v := (s.SumSq - float64(s.N)*mean*mean) / float64(s.N-1)
	return max(v, 0) // rounding can push a zero variance negative
}

// StdDev returns the sample standard deviation
func (s Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s Statistics) StdError() float64 {
	if s.N == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.N))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}
