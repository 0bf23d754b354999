package decimate

const DefaultMaxSearchIterations = 500

type CalibrateConfig struct {
	// MaxIterations bounds the tolerance binary search. Zero or negative
	// falls back to DefaultMaxSearchIterations.
	MaxIterations int
}

func DecimateToCount(timestamps, xs, ys []float64, count int) (*PointSeries, error) {
	return DecimateToCountEx(timestamps, xs, ys, count, CalibrateConfig{})
}

// DecimateToCountEx binary-searches the tolerance fed to
// DecimateByTolerance until the output holds exactly count samples. The
// retained count is a step function of tolerance and can jump past count
// at a single threshold, so the search may never land; the iteration
// budget turns that into a SearchExhaustedError instead of spinning.
func DecimateToCountEx(timestamps, xs, ys []float64, count int, cfg CalibrateConfig) (*PointSeries, error) {
	if count > len(timestamps) {
		return nil, ErrInsufficientPoints
	}

	if len(timestamps) != len(xs) || len(timestamps) != len(ys) {
		return nil, ErrLengthMismatch
	}

	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxSearchIterations
	}

	// A tolerance at or above the largest consecutive gap prunes every
	// interior sample, so it bounds the search from above.
	lower, upper := 0.0, maxConsecutiveDistance(xs, ys)

	lastCount := 0

	for i := 0; i < maxIterations; i++ {
		middle := (lower + upper) / 2

		out, err := DecimateByTolerance(timestamps, xs, ys, middle)
		if err != nil {
			return nil, err
		}

		lastCount = out.Len()

		switch {
		case lastCount == count:
			return out, nil
		case lastCount > count:
			lower = middle
		default:
			upper = middle
		}
	}

	return nil, &SearchExhaustedError{
		LastCount:     lastCount,
		LastTolerance: (lower + upper) / 2,
	}
}

func maxConsecutiveDistance(xs, ys []float64) (max float64) {
	for i := 0; i+1 < len(xs); i++ {
		if d := euclideanDistance(xs[i], ys[i], xs[i+1], ys[i+1]); d > max {
			max = d
		}
	}

	return
}
