package tufte

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

var intervallUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
	{Interval{3, 6}, math.Inf(1), Interval{3, 6}},
	{Interval{nan, nan}, math.Inf(-1), Interval{nan, nan}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervallUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

var fitRangeTests = []struct {
	xs   []float64
	pad  float64
	want AxisRange
}{
	{[]float64{0, 10}, 0.05, AxisRange{Min: 0, Lower: -0.5, Upper: 10.5, Max: 10}},
	{[]float64{10, 0, 5}, 0.1, AxisRange{Min: 0, Lower: -1, Upper: 11, Max: 10}},
	{[]float64{2, 4}, 0, AxisRange{Min: 2, Lower: 2, Upper: 4, Max: 4}},
	{[]float64{-4, nan, 4}, 0.25, AxisRange{Min: -4, Lower: -6, Upper: 6, Max: 4}},
	{[]float64{7}, 0.05, AxisRange{Min: 7, Lower: 7, Upper: 7, Max: 7}},
	{[]float64{3, 3, 3}, 0.5, AxisRange{Min: 3, Lower: 3, Upper: 3, Max: 3}},
	{[]float64{1, math.Inf(1), 11, math.Inf(-1)}, 0.1, AxisRange{Min: 1, Lower: 0, Upper: 12, Max: 11}},
}

func TestFitRange(t *testing.T) {
	for i, tc := range fitRangeTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got, err := FitRange(tc.xs, tc.pad)
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Min, got.Min, 1e-12)
			assert.InDelta(t, tc.want.Lower, got.Lower, 1e-12)
			assert.InDelta(t, tc.want.Upper, got.Upper, 1e-12)
			assert.InDelta(t, tc.want.Max, got.Max, 1e-12)
		})
	}
}

func TestFitRangeOrdering(t *testing.T) {
	series := [][]float64{
		{41, 23, 48, 84, 32, 38},
		{-1e6, 1e-6, 3},
		{0.1, 0.2, 0.3, 0.4},
	}
	for _, xs := range series {
		for _, pad := range []float64{0, 0.01, 0.05, 0.5, 0.99} {
			r, err := FitRange(xs, pad)
			require.NoError(t, err)
			assert.LessOrEqual(t, r.Lower, r.Min)
			assert.LessOrEqual(t, r.Min, r.Max)
			assert.LessOrEqual(t, r.Max, r.Upper)
			if pad == 0 {
				assert.Equal(t, r.Min, r.Lower)
				assert.Equal(t, r.Max, r.Upper)
			} else {
				assert.Less(t, r.Lower, r.Min)
				assert.Greater(t, r.Upper, r.Max)
			}
		}
	}
}

func TestFitRangeErrors(t *testing.T) {
	_, err := FitRange(nil, DefaultPad)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = FitRange([]float64{nan, nan}, DefaultPad)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = FitRange([]float64{math.Inf(1), math.Inf(-1)}, DefaultPad)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	for _, pad := range []float64{-0.1, 1, 2, nan} {
		_, err = FitRange([]float64{1, 2}, pad)
		var iae *InvalidArgumentError
		assert.True(t, errors.As(err, &iae), "pad %v", pad)
	}
}

func TestAxisRangeLimits(t *testing.T) {
	r := AxisRange{Min: 2, Lower: 1, Upper: 3, Max: 2}
	assert.Equal(t, Interval{1, 3}, r.Limits())

	r = AxisRange{Min: 20, Lower: 20, Upper: 20, Max: 20}
	lim := r.Limits()
	assert.InDelta(t, 19, lim.Min, 1e-9)
	assert.InDelta(t, 21, lim.Max, 1e-9)

	r = AxisRange{}
	assert.Equal(t, Interval{-1, 1}, r.Limits())
}

func TestAxisRangeInclude(t *testing.T) {
	r, err := FitRange([]float64{41, 23, 48, 84, 32, 38}, DefaultPad)
	require.NoError(t, err)
	r = r.Include(0, DefaultPad)
	assert.Equal(t, 0.0, r.Min)
	assert.Equal(t, 84.0, r.Max)
	assert.InDelta(t, 84*1.05, r.Upper, 1e-9)
	assert.InDelta(t, -84*0.05, r.Lower, 1e-9)
}
