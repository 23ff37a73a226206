package tufte

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls the cosmetics shared by all charts.
type Style struct {
	Background color.Color

	Title draw.TextStyle

	// Border is the style of the visible left and bottom borders.
	Border draw.LineStyle

	// LightBorder replaces Border where the border only separates the
	// data from the tick labels, e.g. below bars.
	LightBorder draw.LineStyle

	// Grid is drawn over bars at the y ticks. Its color is set
	// from Options.GridColor.
	Grid draw.LineStyle

	// HaloScale is the factor by which the white halo behind a line
	// marker is larger than the marker itself.
	HaloScale float64

	XAxis, YAxis AxisStyle
}

// AxisStyle is the style of the labels and ticks of one axis. Only
// colors and fonts of the text styles are applied.
type AxisStyle struct {
	Label draw.TextStyle
	Tick  struct {
		draw.LineStyle
		Length vg.Length
		Label  draw.TextStyle
	}
}

// DefaultStyle returns a Style using labelSize for axis labels,
// tickSize for tick labels and a slightly bigger font for the title.
func DefaultStyle(labelSize, tickSize vg.Length) (Style, error) {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica", scale(labelSize, 1.2))
	if err != nil {
		return Style{}, err
	}
	labelFont, err := vg.MakeFont("Helvetica", labelSize)
	if err != nil {
		return Style{}, err
	}
	tickFont, err := vg.MakeFont("Helvetica", tickSize)
	if err != nil {
		return Style{}, err
	}

	st := Style{}
	st.Background = color.White

	st.Title.Color = Foreground
	st.Title.Font = titleFont

	st.Border.Color = Foreground
	st.Border.Width = vg.Length(0.75)
	st.LightBorder.Color = MustParseColor("LightGray")
	st.LightBorder.Width = vg.Length(0.75)

	st.Grid.Color = color.White
	st.Grid.Width = vg.Length(1.25)

	st.HaloScale = math.Sqrt(8)

	// Alignment and rotation of labels stay with gonum's defaults.
	for _, ax := range []*AxisStyle{&st.XAxis, &st.YAxis} {
		ax.Label.Color = Foreground
		ax.Label.Font = labelFont
		ax.Tick.Color = Foreground
		ax.Tick.Width = vg.Length(0.75)
		ax.Tick.Length = scale(tickSize, 0.4)
		ax.Tick.Label.Color = Foreground
		ax.Tick.Label.Font = tickFont
	}

	return st, nil
}
