package tufte

import (
	"errors"
	"image/color"
	"io"
	"math"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Options enumerates every styling option understood by the charts.
// The zero value of a string color means "use the chart's default color".
type Options struct {
	XLabel string `toml:"xlabel" yaml:"xlabel"`
	YLabel string `toml:"ylabel" yaml:"ylabel"`
	// Title defaults to "<Kind> plot of <XLabel> and <YLabel>".
	Title string `toml:"title" yaml:"title"`

	Color     string  `toml:"color" yaml:"color"`         // fill or stroke color
	EdgeColor string  `toml:"edgecolor" yaml:"edgecolor"` // bar outline, "none" for no outline
	GridColor string  `toml:"gridcolor" yaml:"gridcolor"` // grid lines drawn over bars
	Alpha     float64 `toml:"alpha" yaml:"alpha"`         // opacity in [0,1]

	LineWidth  float64 `toml:"linewidth" yaml:"linewidth"`   // in points
	MarkerSize float64 `toml:"markersize" yaml:"markersize"` // marker area in square points
	LineStyle  string  `toml:"linestyle" yaml:"linestyle"`   // "tufte" or a dash style such as "--"

	Align    string  `toml:"align" yaml:"align"`       // "center" or "edge"
	BarWidth float64 `toml:"barwidth" yaml:"barwidth"` // in data units

	FigSize       [2]float64 `toml:"figsize" yaml:"figsize"`             // width and height in inches
	FontSize      float64    `toml:"fontsize" yaml:"fontsize"`           // title and axis labels, in points
	TickLabelSize float64    `toml:"ticklabelsize" yaml:"ticklabelsize"` // in points

	Pad float64 `toml:"pad" yaml:"pad"` // axis padding fraction in [0,1)

	// Surface to draw into instead of a newly created one. The Canvas
	// borrows it and never replaces it.
	Surface *Surface `toml:"-" yaml:"-"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		XLabel:        "x",
		YLabel:        "y",
		EdgeColor:     "none",
		GridColor:     "white",
		Alpha:         0.9,
		LineWidth:     1,
		MarkerSize:    10,
		LineStyle:     "tufte",
		Align:         "center",
		BarWidth:      0.5,
		FigSize:       [2]float64{20, 10},
		FontSize:      12,
		TickLabelSize: 10,
		Pad:           DefaultPad,
	}
}

// Validate checks the numeric ranges and the colors of o. Enumerated
// options which only some charts use (Align, LineStyle) are validated by
// those charts.
func (o *Options) Validate() error {
	check := func(name string, v float64, ok bool, reason string) error {
		if math.IsNaN(v) || !ok {
			return invalid(name, v, reason)
		}
		return nil
	}
	for _, err := range []error{
		check("alpha", o.Alpha, o.Alpha >= 0 && o.Alpha <= 1, "must lie in [0,1]"),
		check("linewidth", o.LineWidth, o.LineWidth >= 0, "must not be negative"),
		check("markersize", o.MarkerSize, o.MarkerSize >= 0, "must not be negative"),
		check("barwidth", o.BarWidth, o.BarWidth > 0, "must be positive"),
		check("fontsize", o.FontSize, o.FontSize > 0, "must be positive"),
		check("ticklabelsize", o.TickLabelSize, o.TickLabelSize > 0, "must be positive"),
		check("pad", o.Pad, o.Pad >= 0 && o.Pad < 1, "must lie in [0,1)"),
	} {
		if err != nil {
			return err
		}
	}
	if o.Surface == nil && !(o.FigSize[0] > 0 && o.FigSize[1] > 0) {
		return invalid("figsize", o.FigSize, "width and height must be positive")
	}
	for _, c := range []struct{ name, value string }{
		{"color", o.Color}, {"edgecolor", o.EdgeColor}, {"gridcolor", o.GridColor},
	} {
		if c.value == "" {
			continue
		}
		if _, err := ParseColor(c.value); err != nil {
			return invalid(c.name, c.value, "unknown color")
		}
	}
	return nil
}

// DecodeTOML reads options from r on top of DefaultOptions.
// Unknown keys are an error.
func DecodeTOML(r io.Reader) (Options, error) {
	o := DefaultOptions()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&o); err != nil {
		return Options{}, &InvalidArgumentError{Option: "options", Value: "toml", Reason: err.Error()}
	}
	return o, o.Validate()
}

// DecodeYAML reads options from r on top of DefaultOptions.
// Unknown keys are an error. An empty document yields the defaults.
func DecodeYAML(r io.Reader) (Options, error) {
	o := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, &InvalidArgumentError{Option: "options", Value: "yaml", Reason: err.Error()}
	}
	return o, o.Validate()
}

// ColorOr returns the color named by o.Color, or by def when o.Color is
// empty, with o.Alpha applied.
func (o *Options) ColorOr(def string) color.Color {
	s := o.Color
	if s == "" {
		s = def
	}
	c, err := ParseColor(s)
	if err != nil {
		logger.Warn("ignoring color", "color", s, "err", err)
		return nil
	}
	return WithAlpha(c, o.Alpha)
}

// NamedColor parses s which Validate has accepted before. An empty s
// yields nil.
func NamedColor(s string) color.Color {
	if s == "" {
		return nil
	}
	c, err := ParseColor(s)
	if err != nil {
		logger.Warn("ignoring color", "color", s, "err", err)
		return nil
	}
	return c
}
