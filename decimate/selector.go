package decimate

import "sort"

// Decimate reduces the series to exactly count samples by growing a
// retained-index set directly: each pass splits remaining gaps at their
// furthest interior sample until the set reaches count. There is no
// tolerance search, so termination is bounded by count, but unlike
// DecimateToCount it cannot express a visual tolerance.
func Decimate(timestamps, xs, ys []float64, count int) (*PointSeries, error) {
	if count > len(timestamps) {
		return nil, ErrInsufficientPoints
	}

	if len(timestamps) != len(xs) || len(timestamps) != len(ys) {
		return nil, ErrLengthMismatch
	}

	n := len(timestamps)

	kept := []int{0, n - 1}
	if n <= 1 {
		kept = kept[:n]
	}

	for len(kept) < count {
		batch := make([]int, 0, count-len(kept))

		for i := 0; i+1 < len(kept) && len(kept)+len(batch) < count; i++ {
			start, end := kept[i], kept[i+1]
			if end-start < 2 {
				continue
			}

			maxIdx, _ := chordArgmax(xs, ys, start, end)
			batch = append(batch, maxIdx)
		}

		kept = append(kept, batch...)
		sort.Ints(kept)

		// While kept is short of count some gap still exceeds one, so
		// every pass grows the set; the in-pass guard keeps it from
		// overshooting. Exceeding count here is a bookkeeping failure.
		if len(kept) > count {
			return nil, ErrOverCount
		}
	}

	if len(kept) != count {
		return nil, ErrOverCount
	}

	out := NewPointSeries()

	for _, idx := range kept {
		if idx < 0 || idx >= n {
			return nil, ErrIndexOutOfRange
		}

		out.Insert(out.Len(), timestamps[idx], xs[idx], ys[idx])
	}

	return out, nil
}
