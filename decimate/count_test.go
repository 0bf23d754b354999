package decimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimateToCount(t *testing.T) {
	timestamps := []float64{0, 1, 2, 3, 3.5, 4}
	xs := []float64{0, 2, 67.2, 5.1, 6, 6.4}
	ys := []float64{0, 0.7, 1, 1.4, 2.2, 3}

	out, err := DecimateToCount(timestamps, xs, ys, 3)
	assert.Nil(t, err)

	assertSeries(t, PointSeriesFromSlices(
		[]float64{0, 2, 4},
		[]float64{0, 67.2, 6.4},
		[]float64{0, 1, 3},
	), out)
}

func TestDecimateToCountSearchExhausted(t *testing.T) {
	// Achievable counts jump from 2 straight to 4, so 3 never converges.
	timestamps := []float64{0, 1, 2, 3}
	xs := []float64{0, 0, 1, 4}
	ys := []float64{0, 1, 0, 4}

	_, err := DecimateToCount(timestamps, xs, ys, 3)
	assert.NotNil(t, err)

	var exhausted *SearchExhaustedError

	assert.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 2, exhausted.LastCount)
	assert.InDelta(t, 0.7071067811865475, exhausted.LastTolerance, 1e-12)
}

func TestDecimateToCountInsufficientPoints(t *testing.T) {
	_, err := DecimateToCount([]float64{0, 1}, []float64{0, 1}, []float64{0, 1}, 3)
	assert.ErrorIs(t, err, ErrInsufficientPoints)
}

func TestDecimateToCountLengthMismatch(t *testing.T) {
	_, err := DecimateToCount([]float64{0, 1, 2}, []float64{0, 1}, []float64{0, 1, 2}, 2)
	assert.ErrorIs(t, err, ErrLengthMismatch)
}

func TestDecimateToCountExIterationBudget(t *testing.T) {
	timestamps := []float64{0, 1, 2, 3, 3.5, 4}
	xs := []float64{0, 2, 67.2, 5.1, 6, 6.4}
	ys := []float64{0, 0.7, 1, 1.4, 2.2, 3}

	_, err := DecimateToCountEx(timestamps, xs, ys, 3, CalibrateConfig{MaxIterations: 1})

	var exhausted *SearchExhaustedError

	assert.ErrorAs(t, err, &exhausted)
}

func TestDecimateToCountFullLength(t *testing.T) {
	timestamps := []float64{0, 1, 2, 3, 4}
	xs := []float64{0, 1.9, 4, 5, 4}
	ys := []float64{0, 0.5, 1, 1.5, 2}

	out, err := DecimateToCount(timestamps, xs, ys, 5)
	assert.Nil(t, err)

	assertSeries(t, PointSeriesFromSlices(timestamps, xs, ys), out)
}

func TestDecimateToCountLargeSeries(t *testing.T) {
	timestamps := []float64{
		0, 8, 16, 24, 33, 41, 48, 57, 64, 72, 80, 89, 97, 105, 112, 120, 128, 137, 145, 153,
		161, 168, 176, 184, 193, 201, 208, 217, 224, 232, 240, 250, 256, 264, 272, 280, 288,
		297, 305, 312, 320, 328, 336, 344, 353, 360, 368, 376, 384, 392, 401, 409, 416, 424,
		433, 440, 448, 457, 465, 472, 480, 488, 496, 505, 513, 521, 528, 536, 544, 552, 560,
		569, 576, 584, 592, 600, 648,
	}
	xs := []float64{
		77, 86, 100, 115, 143, 173, 209, 255, 304, 358, 412, 461, 499, 527, 552, 569, 584, 599,
		609, 621, 636, 648, 660, 674, 684, 699, 714, 728, 741, 756, 768, 781, 791, 797, 806,
		814, 821, 826, 832, 837, 844, 849, 856, 860, 864, 869, 876, 880, 886, 891, 895, 896,
		899, 901, 903, 904, 905, 907, 908, 908, 909, 912, 912, 914, 914, 915, 916, 916, 916,
		917, 917, 917, 919, 919, 919, 919, 919,
	}
	ys := []float64{
		54, 62, 74, 88, 111, 134, 162, 192, 229, 264, 304, 336, 364, 386, 404, 420, 432, 444,
		455, 467, 484, 499, 513, 530, 543, 560, 577, 592, 608, 623, 634, 645, 654, 661, 669,
		674, 680, 688, 693, 698, 703, 708, 715, 718, 724, 728, 733, 738, 741, 745, 748, 750,
		752, 756, 757, 760, 762, 765, 767, 768, 772, 776, 780, 784, 786, 788, 791, 792, 795,
		796, 798, 800, 801, 802, 803, 804, 805,
	}

	out, err := DecimateToCount(timestamps, xs, ys, 13)
	assert.Nil(t, err)

	assertSeries(t, PointSeriesFromSlices(
		[]float64{0, 33, 48, 89, 112, 137, 224, 288, 297, 353, 416, 488, 648},
		[]float64{77, 143, 209, 461, 552, 599, 741, 821, 826, 864, 899, 912, 919},
		[]float64{54, 111, 162, 336, 404, 444, 608, 680, 688, 724, 752, 776, 805},
	), out)
}
