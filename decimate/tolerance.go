package decimate

// span is a [start, end] index range of the input still under
// consideration. endPos is the current index of sample[end] inside the
// result series, so an accepted split knows where to insert without any
// timestamp lookup.
type span struct {
	start  int
	end    int
	endPos int
}

// DecimateByTolerance reduces the series to the first and last sample
// plus every sample whose perpendicular deviation from the chord it was
// tested against exceeds tolerance. The divide and conquer runs on an
// explicit work stack so long series cannot blow the call stack.
func DecimateByTolerance(timestamps, xs, ys []float64, tolerance float64) (*PointSeries, error) {
	if len(timestamps) != len(xs) || len(timestamps) != len(ys) {
		return nil, ErrLengthMismatch
	}

	n := len(timestamps)
	if n <= 2 {
		return PointSeriesFromSlices(timestamps, xs, ys), nil
	}

	out := PointSeriesFromSlices(
		[]float64{timestamps[0], timestamps[n-1]},
		[]float64{xs[0], xs[n-1]},
		[]float64{ys[0], ys[n-1]},
	)

	stack := []span{{start: 0, end: n - 1, endPos: 1}}

	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sp.end-sp.start < 2 {
			continue
		}

		maxIdx, maxDist := chordArgmax(xs, ys, sp.start, sp.end)

		if maxDist <= tolerance {
			continue
		}

		out.Insert(sp.endPos, timestamps[maxIdx], xs[maxIdx], ys[maxIdx])

		// The right half pops first, so its inserts all land at or after
		// endPos+1 and never shift a position stored for a range further
		// left.
		stack = append(stack,
			span{start: sp.start, end: maxIdx, endPos: sp.endPos},
			span{start: maxIdx, end: sp.end, endPos: sp.endPos + 1},
		)
	}

	return out, nil
}

// chordArgmax finds the interior sample furthest from the chord
// start→end. The first occurrence wins ties. Requires end-start >= 2.
func chordArgmax(xs, ys []float64, start, end int) (idx int, dist float64) {
	idx = start + 1
	dist = perpendicularDistance(xs[idx], ys[idx], xs[start], ys[start], xs[end], ys[end])

	for i := start + 2; i < end; i++ {
		d := perpendicularDistance(xs[i], ys[i], xs[start], ys[start], xs[end], ys[end])
		if d > dist {
			dist = d
			idx = i
		}
	}

	return
}
