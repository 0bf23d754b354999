package decimate

import "math"

// perpendicularDistance is the shortest distance from (px, py) to the
// infinite line through (ax, ay) and (bx, by). The anchors must not
// coincide.
func perpendicularDistance(px, py, ax, ay, bx, by float64) float64 {
	numerator := math.Abs((bx-ax)*(py-ay) - (by-ay)*(px-ax))
	denominator := math.Sqrt((bx-ax)*(bx-ax) + (by-ay)*(by-ay))

	return numerator / denominator
}

func euclideanDistance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt((x2-x1)*(x2-x1) + (y2-y1)*(y2-y1))
}
