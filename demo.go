//go:build ignore
// +build ignore

package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/tufte"
	"github.com/vdobler/tufte/chart"
	"github.com/vdobler/tufte/data"
)

var (
	outDir  = flag.String("out", "testdata", "directory to write the images to")
	config  = flag.String("config", "", "TOML file with chart options")
	verbose = flag.Bool("v", false, "log the rendering steps")
)

func main() {
	flag.Parse()
	if *verbose {
		tufte.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	o := tufte.DefaultOptions()
	if *config != "" {
		f, err := os.Open(*config)
		if err != nil {
			panic(err)
		}
		o, err = tufte.DecodeTOML(f)
		f.Close()
		if err != nil {
			panic(err)
		}
	}
	o.FigSize = [2]float64{8, 4}

	sales := data.Frame{
		"month": data.Strings("Jan", "Feb", "Mar", "Apr", "May", "Jun"),
		"units": data.Ints(41, 23, 48, 84, 32, 38),
		"price": data.Floats(9.5, 9.9, 9.7, 10.4, 10.1, 10.6),
	}

	for name, plot := range map[string]func() (*tufte.Surface, error){
		"bar": func() (*tufte.Surface, error) {
			return chart.PlotBar(data.Column("month"), data.Column("units"), sales, o)
		},
		"line": func() (*tufte.Surface, error) {
			return chart.PlotLine(data.Column("month"), data.Column("price"), sales, o)
		},
		"scatter": func() (*tufte.Surface, error) {
			return chart.PlotScatter(data.Column("price"), data.Column("units"), sales, o)
		},
		"box": func() (*tufte.Surface, error) {
			return chart.PlotBox(data.Column("units"), sales, o)
		},
	} {
		s, err := plot()
		if err != nil {
			panic(err)
		}
		if err := s.Save(s.Width, s.Height, filepath.Join(*outDir, name+".png")); err != nil {
			panic(err)
		}
	}

	lbo := chart.DefaultLineBarOptions()
	lbo.Options = o
	lbo.LineLabel, lbo.BarLabel = "price", "units"
	lbo.ShareX = true
	fig, err := chart.PlotLineBar(data.Column("month"), data.Column("price"), data.Column("units"), sales, lbo)
	if err != nil {
		panic(err)
	}

	img := vgimg.New(8*vg.Inch, 6*vg.Inch)
	fig.Draw(draw.New(img))

	w, err := os.Create(filepath.Join(*outDir, "linebar.png"))
	if err != nil {
		panic(err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err = png.WriteTo(w); err != nil {
		panic(err)
	}
	if err = w.Close(); err != nil {
		panic(err)
	}
}
