package decimate

import (
	"strings"

	"github.com/spf13/cast"
)

// PointSeries is an ordered set of (timestamp, x, y) samples kept as three
// index-aligned slices, the layout charting front-ends consume directly.
type PointSeries struct {
	timestamps []float64
	xs         []float64
	ys         []float64
}

func NewPointSeries() *PointSeries {
	return &PointSeries{}
}

// PointSeriesFromSlices copies the three slices into a new series. Equal
// lengths are the caller's obligation; the decimation entry points check
// their raw inputs before building one of these.
func PointSeriesFromSlices(timestamps, xs, ys []float64) *PointSeries {
	ps := &PointSeries{
		timestamps: make([]float64, len(timestamps)),
		xs:         make([]float64, len(xs)),
		ys:         make([]float64, len(ys)),
	}

	copy(ps.timestamps, timestamps)
	copy(ps.xs, xs)
	copy(ps.ys, ys)

	return ps
}

func (ps *PointSeries) Len() int {
	return len(ps.timestamps)
}

// Insert places an aligned sample at index, shifting later samples right.
// 0 <= index <= Len.
func (ps *PointSeries) Insert(index int, timestamp, x, y float64) {
	ps.timestamps = insertAt(ps.timestamps, index, timestamp)
	ps.xs = insertAt(ps.xs, index, x)
	ps.ys = insertAt(ps.ys, index, y)
}

func insertAt(vs []float64, index int, v float64) []float64 {
	vs = append(vs, 0)
	copy(vs[index+1:], vs[index:])
	vs[index] = v

	return vs
}

func (ps *PointSeries) At(index int) (timestamp, x, y float64) {
	return ps.timestamps[index], ps.xs[index], ps.ys[index]
}

// Timestamps, X and Y expose the underlying slices for zero-copy hand-off.
// Callers must treat a returned series as terminal.
func (ps *PointSeries) Timestamps() []float64 {
	return ps.timestamps
}

func (ps *PointSeries) X() []float64 {
	return ps.xs
}

func (ps *PointSeries) Y() []float64 {
	return ps.ys
}

// Each walks the samples left to right until fn returns false.
func (ps *PointSeries) Each(fn func(timestamp, x, y float64) bool) {
	for i := range ps.timestamps {
		if !fn(ps.timestamps[i], ps.xs[i], ps.ys[i]) {
			break
		}
	}
}

// CSV renders the series as a `timestamps, x, y` header followed by one
// comma-separated line per sample.
func (ps *PointSeries) CSV() string {
	var ss strings.Builder

	ss.WriteString("timestamps, x, y\n")

	for i := range ps.timestamps {
		ss.WriteString(cast.ToString(ps.timestamps[i]))
		ss.WriteString(", ")
		ss.WriteString(cast.ToString(ps.xs[i]))
		ss.WriteString(", ")
		ss.WriteString(cast.ToString(ps.ys[i]))
		ss.WriteString("\n")
	}

	return ss.String()
}
