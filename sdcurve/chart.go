package sdcurve

import (
	"io"
	"slices"

	charts "github.com/midbel/econcharts"
	"github.com/midbel/econcharts/curve"
)

const ThemeClassic = "classic"

var margin = charts.NewPadding(60, 40, 70, 80)

type Tick struct {
	Value float64
	Label string
}

type Scale struct {
	Min   float64
	Max   float64
	Ticks []Tick
}

func (s Scale) Values() []float64 {
	list := make([]float64, len(s.Ticks))
	for i := range s.Ticks {
		list[i] = s.Ticks[i].Value
	}
	return list
}

func (s Scale) Labels() []string {
	list := make([]string, len(s.Ticks))
	for i := range s.Ticks {
		list[i] = s.Ticks[i].Label
	}
	return list
}

func (s Scale) axis(sc charts.Scaler, orient charts.Orientation, label string) charts.NumberAxis {
	return charts.NumberAxis{
		Label:          label,
		Orientation:    orient,
		Scaler:         sc,
		Domain:         s.Values(),
		Labels:         s.Labels(),
		WithInnerTicks: true,
		WithLabelTicks: true,
	}
}

type Style struct {
	Title      string
	Subtitle   string
	XLabel     string
	YLabel     string
	Background string
	Theme      string
	Margin     charts.Padding
	Width      float64
	Height     float64
}

// Chart describes a supply and demand diagram. It is a plain value: With
// returns a new Chart and leaves its receiver untouched.
type Chart struct {
	Layers     []Layer
	Equilibria []curve.Point

	X Scale
	Y Scale

	Style Style
}

// With returns a copy of the chart with layers appended after the existing
// ones. The copy shares no slice with c.
func (c Chart) With(layers ...Layer) Chart {
	x := c
	x.Layers = make([]Layer, 0, len(c.Layers)+len(layers))
	x.Layers = append(x.Layers, c.Layers...)
	x.Layers = append(x.Layers, layers...)
	x.Equilibria = slices.Clone(c.Equilibria)
	x.X.Ticks = slices.Clone(c.X.Ticks)
	x.Y.Ticks = slices.Clone(c.Y.Ticks)
	return x
}

// Count returns the number of layers of the given kind.
func (c Chart) Count(k Kind) int {
	var n int
	for _, l := range c.Layers {
		if l.Kind() == k {
			n++
		}
	}
	return n
}

// Render writes the chart as a SVG document to w.
func (c Chart) Render(w io.Writer) error {
	var (
		st = c.Style
		ch = charts.Chart{
			Title:    st.Title,
			Subtitle: st.Subtitle,
			Width:    st.Width,
			Height:   st.Height,
			Padding:  st.Margin,
			Style:    charts.ClassicStyle(),
		}
	)
	if ch.Width <= 0 {
		ch.Width = DefaultWidth
	}
	if ch.Height <= 0 {
		ch.Height = DefaultHeight
	}
	ch.Style.Background = st.Background

	var (
		xs = charts.NumberScaler(charts.NumberDomain(c.X.Min, c.X.Max), charts.NewRange(0, ch.DrawingWidth()))
		ys = charts.NumberScaler(charts.NumberDomain(c.Y.Max, c.Y.Min), charts.NewRange(0, ch.DrawingHeight()))
	)
	bottom := c.X.axis(xs, charts.OrientBottom, st.XLabel)
	bottom.WithOuterTicks = ch.Style.Grid
	left := c.Y.axis(ys, charts.OrientLeft, st.YLabel)
	left.WithOuterTicks = ch.Style.Grid
	ch.Bottom = bottom
	ch.Left = left

	set := make([]charts.Serie, 0, len(c.Layers))
	for _, l := range c.Layers {
		set = append(set, l.Serie(xs, ys))
	}
	return ch.Render(w, set...)
}
