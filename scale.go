package tufte

import (
	"fmt"
	"math"
)

// DefaultPad is the fraction of the data span added as margin on both
// sides of an axis.
const DefaultPad = 0.05

// ----------------------------------------------------------------------------
// AxisRange

// AxisRange captures the observed extremes of a series (Min, Max) and the
// padded display range [Lower, Upper] derived from them.
//
// Lower ≤ Min ≤ Max ≤ Upper always holds.
type AxisRange struct {
	Min, Lower, Upper, Max float64
}

// FitRange computes the AxisRange of xs padded by the fraction pad of the
// data span. NaN and infinite values are ignored. A series without any
// finite value yields ErrEmptyInput. A constant series yields a degenerate range with
// Lower == Upper == Min == Max; use Limits to obtain a drawable axis
// range.
func FitRange(xs []float64, pad float64) (AxisRange, error) {
	if math.IsNaN(pad) || pad < 0 || pad >= 1 {
		return AxisRange{}, invalid("pad", pad, "must lie in [0,1)")
	}
	data := unsetInterval()
	data.Update(xs...)
	if !data.Valid() {
		return AxisRange{}, ErrEmptyInput
	}

	ext := pad * (data.Max - data.Min)
	return AxisRange{
		Min:   data.Min,
		Lower: data.Min - ext,
		Upper: data.Max + ext,
		Max:   data.Max,
	}, nil
}

// Bounds returns the observed data interval [r.Min, r.Max].
func (r AxisRange) Bounds() Interval { return Interval{r.Min, r.Max} }

// Limits returns the display interval [r.Lower, r.Upper]. A degenerate
// range is widened by 5% of its value (or by 1 around 0) so that the axis
// never collapses to zero width.
func (r AxisRange) Limits() Interval {
	if r.Lower < r.Upper {
		return Interval{r.Lower, r.Upper}
	}
	d := DefaultPad * math.Abs(r.Lower)
	if d == 0 {
		d = 1
	}
	return Interval{r.Lower - d, r.Upper + d}
}

// Include widens r so that x lies inside [Min, Max] and [Lower, Upper]
// is recomputed with pad. It is used by bar charts to anchor the bars at 0.
func (r AxisRange) Include(x, pad float64) AxisRange {
	data := r.Bounds()
	data.Update(x)
	ext := pad * (data.Max - data.Min)
	return AxisRange{
		Min:   data.Min,
		Lower: data.Min - ext,
		Upper: data.Max + ext,
		Max:   data.Max,
	}
}

func (r AxisRange) String() string {
	return fmt.Sprintf("Limits=[%.4g:%.4g] Data=[%.4g:%.4g]",
		r.Lower, r.Upper, r.Min, r.Max)
}

// ----------------------------------------------------------------------------
// AxisValues

// Axis describes how one axis of a chart is to be laid out.
type Axis struct {
	// Range determines the display limits (Lower, Upper) and the span of
	// the border and the outermost ticks (Min, Max).
	Range AxisRange

	// Categories, if non-nil, turns the axis into a nominal axis with
	// one tick per category placed at 0, 1, ... len(Categories)-1.
	Categories []string

	// Hidden axes are neither limited nor ticked by the Canvas.
	Hidden bool
}

// AxisValues is the result of a variant's axis computation.
type AxisValues struct {
	X, Y Axis
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN and infinite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Valid reports whether both edges of i are set.
func (i Interval) Valid() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

func (i *Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}
