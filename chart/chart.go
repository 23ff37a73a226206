// Package chart provides the chart kinds drawn by a tufte.Canvas: Bar,
// Line, Scatter, Box and the two panel LineBar chart.
//
// Each chart kind is a tufte.Variant. The PlotXyz functions resolve the
// coordinate data, create a Canvas for the given options and draw the
// chart in one go:
//
//	s, err := chart.PlotBar(data.Column("month"), data.Column("sales"), sheet, o)
//	if err != nil { ... }
//	s.Save(8*vg.Inch, 4*vg.Inch, "sales.png")
//
// All input is validated before the target Surface is modified, so a
// failed call leaves a borrowed Surface untouched.
package chart

import (
	"fmt"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/data"
)

// PlotBar draws a bar chart of y over the categories x.
func PlotBar(x, y data.Source, t data.Table, o tufte.Options) (*tufte.Surface, error) {
	xs, ys, err := resolveXY(x, y, t)
	if err != nil {
		return nil, err
	}
	return plotVariant(&Bar{X: xs, Y: ys, Align: o.Align, Width: o.BarWidth}, o)
}

// PlotLine draws a line chart of y over x.
func PlotLine(x, y data.Source, t data.Table, o tufte.Options) (*tufte.Surface, error) {
	xs, ys, err := resolveXY(x, y, t)
	if err != nil {
		return nil, err
	}
	return plotVariant(&Line{XY: XY{X: xs, Y: ys}, Style: o.LineStyle}, o)
}

// PlotScatter draws a scatter plot of y over x.
func PlotScatter(x, y data.Source, t data.Table, o tufte.Options) (*tufte.Surface, error) {
	xs, ys, err := resolveXY(x, y, t)
	if err != nil {
		return nil, err
	}
	return plotVariant(&Scatter{XY: XY{X: xs, Y: ys}}, o)
}

// PlotBox draws a minimal box plot of the values of src.
func PlotBox(src data.Source, t data.Table, o tufte.Options) (*tufte.Surface, error) {
	s, err := data.Resolve(src, t)
	if err != nil {
		return nil, err
	}
	return plotVariant(&Box{Values: s}, o)
}

func plotVariant(v tufte.Variant, o tufte.Options) (*tufte.Surface, error) {
	c, err := tufte.NewCanvas(o)
	if err != nil {
		return nil, err
	}
	return c.Plot(v)
}

// resolveXY resolves x and y which must have the same, non-zero length.
func resolveXY(x, y data.Source, t data.Table) (xs, ys data.Series, err error) {
	if xs, err = data.Resolve(x, t); err != nil {
		return xs, ys, fmt.Errorf("x: %w", err)
	}
	if ys, err = data.Resolve(y, t); err != nil {
		return xs, ys, fmt.Errorf("y: %w", err)
	}
	if xs.Len() != ys.Len() {
		return xs, ys, &tufte.InvalidArgumentError{
			Option: "y",
			Value:  ys.Len(),
			Reason: fmt.Sprintf("length differs from length %d of x", xs.Len()),
		}
	}
	if xs.Len() == 0 {
		return xs, ys, tufte.ErrEmptyInput
	}
	return xs, ys, nil
}

// numeric rejects categorical series where numbers are required.
func numeric(option string, s data.Series) error {
	if s.IsCategorical() {
		return &tufte.InvalidArgumentError{
			Option: option,
			Value:  s.Name,
			Reason: "must be numeric",
		}
	}
	return nil
}
