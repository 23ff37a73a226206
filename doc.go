// Package tufte draws minimalist statistical charts in the style of
// Edward Tufte on top of gonum.org/v1/plot.
//
// The value of the package is cosmetic: axes are padded a bit beyond the
// data, borders span only the observed data (a "range frame"), the
// outermost ticks always label the extremes of the data and everything
// not carrying information is removed.
//
// # Canvas
//
// A Canvas draws one chart onto a Surface. The chart kind is a Variant
// (see package chart) which supplies the axis layout, the plotters and
// its special treatment of borders. Rendering always runs the same
// steps in the same order:
//   - base borders: top and right border hidden, the rest grayed out
//   - variant borders
//   - axis limits from the padded data ranges
//   - range ticks (or one tick per category)
//   - axis labels and title
//
// All input is validated before the Surface is modified. A Surface is
// either created by the Canvas or borrowed from Options.Surface; a
// borrowed Surface is never replaced.
//
// # Figures
//
// A Figure stacks several Surfaces, e.g. the line and the bar panel of
// a chart.LineBar, optionally sharing the x axis.
//
// # Options
//
// Options enumerate all styling options. They can be read from TOML or
// YAML; unknown keys are rejected.
package tufte
