package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	var stats Statistics

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
}

func TestStatistics_SingleValue(t *testing.T) {
	var stats Statistics
	stats.Add(0.5)

	if stats.N != 1 {
		t.Errorf("Expected 1 observation, got %d", stats.N)
	}
	if stats.Mean() != 0.5 {
		t.Errorf("Expected mean of 0.5, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for single value, got %f", stats.Variance())
	}
}

func TestStatistics_MultipleValues(t *testing.T) {
	var stats Statistics
	for _, x := range []float64{1, -2, 3, 0, -1} {
		stats.Add(x)
	}

	if math.Abs(stats.Mean()-0.2) > 1e-9 {
		t.Errorf("Expected mean of 0.2, got %f", stats.Mean())
	}
	if math.Abs(stats.Variance()-3.7) > 1e-9 {
		t.Errorf("Expected variance of 3.7, got %f", stats.Variance())
	}
	if math.Abs(stats.StdDev()-math.Sqrt(3.7)) > 1e-9 {
		t.Errorf("Expected stddev of %f, got %f", math.Sqrt(3.7), stats.StdDev())
	}

	low, high := stats.ConfidenceInterval95()
	margin := 1.96 * math.Sqrt(3.7) / math.Sqrt(5)
	if math.Abs(low-(0.2-margin)) > 1e-9 || math.Abs(high-(0.2+margin)) > 1e-9 {
		t.Errorf("Unexpected interval [%f, %f]", low, high)
	}
}

func TestStatistics_ConstantSample(t *testing.T) {
	var stats Statistics
	for range 1000 {
		stats.Add(1.0 / 3)
	}

	if stats.Variance() < 0 {
		t.Errorf("Variance must not be negative, got %g", stats.Variance())
	}
	if stats.StdError() > 1e-6 {
		t.Errorf("Expected near-zero stderr, got %g", stats.StdError())
	}
}

func TestStatistics_Merge(t *testing.T) {
	var all, a, b Statistics
	for i, x := range []float64{0, 1, 0.5, 0, 1, 1, 0.25} {
		all.Add(x)
		if i%2 == 0 {
			a.Add(x)
		} else {
			b.Add(x)
		}
	}
	a.Merge(b)

	if a.N != all.N {
		t.Errorf("Expected %d observations, got %d", all.N, a.N)
	}
	if math.Abs(a.Mean()-all.Mean()) > 1e-12 {
		t.Errorf("Expected mean %f, got %f", all.Mean(), a.Mean())
	}
	if math.Abs(a.Variance()-all.Variance()) > 1e-12 {
		t.Errorf("Expected variance %f, got %f", all.Variance(), a.Variance())
	}
}
