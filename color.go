package tufte

import (
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Foreground is the neutral gray used for borders, ticks and labels.
var Foreground = color.NRGBA{0x4b, 0x4b, 0x4b, 0xff}

// ParseColor turns a color name or hex string into a color. Accepted are the
// SVG 1.1 color keywords in any case ("LightGray", "black"), html hex
// notation ("#4B4B4B", "#abc") and "none" which yields a nil color, i.e.
// nothing is drawn.
func ParseColor(s string) (color.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "none":
		return nil, nil
	case strings.HasPrefix(name, "#"):
		c, err := colorful.Hex(name)
		if err != nil {
			return nil, invalid("color", s, err.Error())
		}
		r, g, b := c.RGB255()
		return color.NRGBA{r, g, b, 0xff}, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return c, nil
	}
	return nil, invalid("color", s, "unknown color name")
}

// MustParseColor is like ParseColor but panics on errors.
// It simplifies initialization of package level colors.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha scales the opacity of c by alpha which is clamped to [0,1].
// A nil c stays nil.
func WithAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return nil
	}
	alpha = math.Max(0, math.Min(1, alpha))
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(math.Round(float64(nc.A) * alpha))
	return nc
}
