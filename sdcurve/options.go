package sdcurve

import (
	"fmt"
	"log/slog"

	charts "github.com/midbel/econcharts"
)

const (
	DefaultMax    = 9.0
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
)

// Options controls how a chart is built. Use DefaultOptions to get the values
// expected by Build and override what is needed.
type Options struct {
	// bounds of the default curves, only used when no curves are given
	XMax float64 `toml:"xmax"`
	YMax float64 `toml:"ymax"`

	MaxPrice *float64 `toml:"max_price"`
	MinPrice *float64 `toml:"min_price"`

	Generic     bool     `toml:"generic"`
	Equilibrium bool     `toml:"equilibrium"`
	CurveNames  bool     `toml:"curve_names"`
	Names       []string `toml:"names"`
	LinesColor  []string `toml:"lines_color"`
	Palette     string   `toml:"palette"`
	Shape       string   `toml:"shape"`

	Main    string `toml:"main"`
	Sub     string `toml:"sub"`
	XLab    string `toml:"xlab"`
	YLab    string `toml:"ylab"`
	BgColor string `toml:"bg_color"`

	// canvas size, zero selects DefaultWidth and DefaultHeight
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Verbose logs the computed equilibria with Logger.
	Verbose bool         `toml:"verbose"`
	Logger  *slog.Logger `toml:"-"`
}

func DefaultOptions() Options {
	return Options{
		XMax:        DefaultMax,
		YMax:        DefaultMax,
		Generic:     true,
		Equilibrium: true,
		CurveNames:  true,
		Palette:     "category10",
		Shape:       "circle",
		XLab:        "Q - Quantity",
		YLab:        "P - Price",
		BgColor:     "white",
		Width:       DefaultWidth,
		Height:      DefaultHeight,
	}
}

// Price returns a pointer to v, handy to set MaxPrice and MinPrice.
func Price(v float64) *float64 {
	return &v
}

func (o Options) validate(count int) error {
	if o.MinPrice != nil && o.MaxPrice != nil && *o.MinPrice >= *o.MaxPrice {
		return fmt.Errorf("%w (min: %g, max: %g)", ErrInvalidBounds, *o.MinPrice, *o.MaxPrice)
	}
	if count == 0 && (o.XMax < 3 || o.YMax < 3) {
		return invalidInput("xmax/ymax", "default curves need bounds of at least 3 (xmax: %g, ymax: %g)", o.XMax, o.YMax)
	}
	if count == 0 {
		count = 2
	}
	if o.CurveNames && len(o.Names) > 0 && len(o.Names) != count {
		return invalidInput("names", "%d names given for %d curves", len(o.Names), count)
	}
	if len(o.LinesColor) > 0 && len(o.LinesColor) < count {
		return invalidInput("lines_color", "%d colors given for %d curves", len(o.LinesColor), count)
	}
	if _, ok := charts.GetPalette(o.Palette); !ok {
		return invalidInput("palette", "unknown palette %q", o.Palette)
	}
	if _, ok := charts.GetShape(o.Shape); !ok {
		return invalidInput("shape", "unknown shape %q", o.Shape)
	}
	if w, h := o.size(); w <= margin.Horizontal() || h <= margin.Vertical() {
		return invalidInput("width/height", "canvas %gx%g too small", w, h)
	}
	return nil
}

// size returns the dimensions of the canvas. A zero or negative value selects
// the default one.
func (o Options) size() (float64, float64) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (o Options) colors(count int) []string {
	if len(o.LinesColor) > 0 {
		return o.LinesColor[:count]
	}
	var (
		pal, _ = charts.GetPalette(o.Palette)
		list   = make([]string, count)
	)
	for i := range list {
		list[i] = pal.Color(i)
	}
	return list
}

// names returns the labels of the curves: the custom ones when given, S and D
// alternating otherwise.
func (o Options) names(count int) []string {
	if len(o.Names) == count {
		return o.Names
	}
	list := make([]string, count)
	for i := range list {
		if i%2 == 0 {
			list[i] = "S"
		} else {
			list[i] = "D"
		}
	}
	return list
}
