package tufte

import (
	"strconv"

	"gonum.org/v1/plot"
)

// RangeTicks labels the extremes of the data: the first tick is placed
// at Min, the last at Max and in between are the major ticks of Marker
// which lie strictly inside (Min, Max).
// Minor ticks are dropped.
type RangeTicks struct {
	Min, Max float64

	// Marker provides the inner ticks. Nil means plot.DefaultTicks.
	Marker plot.Ticker
}

var _ plot.Ticker = RangeTicks{}

// Ticks implements plot.Ticker.
func (rt RangeTicks) Ticks(min, max float64) []plot.Tick {
	ticks := []plot.Tick{{Value: rt.Min, Label: FormatTick(rt.Min)}}
	if rt.Max <= rt.Min {
		return ticks
	}

	marker := rt.Marker
	if marker == nil {
		marker = plot.DefaultTicks{}
	}
	for _, t := range marker.Ticks(min, max) {
		if t.IsMinor() || t.Value <= rt.Min || t.Value >= rt.Max {
			continue
		}
		ticks = append(ticks, t)
	}

	return append(ticks, plot.Tick{Value: rt.Max, Label: FormatTick(rt.Max)})
}

// CategoryTicks returns one tick per category placed at the category's
// position 0, 1, 2 ...
func CategoryTicks(categories []string) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(categories))
	for i, c := range categories {
		ticks[i] = plot.Tick{Value: float64(i), Label: c}
	}
	return ticks
}

// FormatTick formats the tick value x with up to six significant digits.
func FormatTick(x float64) string {
	if x == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}
