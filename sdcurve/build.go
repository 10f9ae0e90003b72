// Package sdcurve builds supply and demand diagrams: curves, their
// equilibria, price controls and labels.
package sdcurve

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	charts "github.com/midbel/econcharts"
	"github.com/midbel/econcharts/curve"
)

const (
	labelOffset  = 0.5
	tickDecimals = 2
)

const (
	dropColor  = "gray"
	boundColor = "black"
	pointColor = "black"
)

// Build validates curves and options and returns the description of the
// chart. Curves are read as supply, demand, supply, demand... When no curves
// are given, a default supply and demand curve bounded by XMax and YMax are
// used.
//
// No chart is returned when an error occurs.
func Build(curves []curve.Curve, opts Options) (Chart, error) {
	if err := opts.validate(len(curves)); err != nil {
		return Chart{}, err
	}
	curves = resolve(curves, opts)
	if opts.Equilibrium && len(curves)%2 != 0 {
		return Chart{}, fmt.Errorf("%w: got %d curves", ErrOddCurveCount, len(curves))
	}
	for i, c := range curves {
		if err := c.Validate(); err != nil {
			return Chart{}, fmt.Errorf("curve %d: %w", i+1, err)
		}
	}
	var (
		points []curve.Point
		err    error
	)
	if opts.Equilibrium {
		if points, err = Equilibria(curves); err != nil {
			return Chart{}, err
		}
		if opts.Verbose {
			logger := opts.Logger
			if logger == nil {
				logger = slog.Default()
			}
			for i, p := range points {
				logger.Info("equilibrium",
					slog.Int("pair", i+1),
					slog.Float64("quantity", p.X),
					slog.Float64("price", p.Y),
				)
			}
		}
	}

	var (
		limit  = axisLimit(curves)
		names  = opts.names(len(curves))
		colors = opts.colors(len(curves))
		chart  Chart
	)
	chart.Equilibria = points
	chart.Style = Style{
		Title:      opts.Main,
		Subtitle:   opts.Sub,
		XLabel:     opts.XLab,
		YLabel:     opts.YLab,
		Background: opts.BgColor,
		Theme:      ThemeClassic,
		Margin:     margin,
	}
	chart.Style.Width, chart.Style.Height = opts.size()

	var layers []Layer
	for i, c := range curves {
		layers = append(layers, LineLayer{
			Name:  names[i],
			Curve: c,
			Color: colors[i],
			Width: 2,
		})
	}
	layers = append(layers, equilibriumLayers(points, opts.Shape)...)
	layers = append(layers, boundLayers(opts, limit)...)
	if opts.CurveNames {
		labels, err := labelLayers(curves, names, colors)
		if err != nil {
			return Chart{}, err
		}
		layers = append(layers, labels...)
	}
	chart.Layers = layers

	chart.X = Scale{Min: 0, Max: limit}
	chart.Y = Scale{Min: 0, Max: limit}
	if opts.Equilibrium {
		chart.X.Ticks, chart.Y.Ticks = equilibriumTicks(points, opts.Generic)
	}
	return chart, nil
}

// Equilibria returns the intersection of each consecutive supply and demand
// pair of curves.
func Equilibria(curves []curve.Curve) ([]curve.Point, error) {
	if len(curves)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d curves", ErrOddCurveCount, len(curves))
	}
	var list []curve.Point
	for i := 0; i < len(curves); i += 2 {
		pt, err := curve.Intersect(curves[i], curves[i+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i/2+1, err)
		}
		list = append(list, pt)
	}
	return list, nil
}

func resolve(curves []curve.Curve, opts Options) []curve.Curve {
	if len(curves) == 0 {
		return []curve.Curve{
			curve.DefaultSupply(opts.XMax, opts.YMax),
			curve.DefaultDemand(opts.XMax, opts.YMax),
		}
	}
	list := make([]curve.Curve, len(curves))
	copy(list, curves)
	return list
}

func axisLimit(curves []curve.Curve) float64 {
	limit := math.Inf(-1)
	for _, c := range curves {
		limit = math.Max(limit, c.Max())
	}
	limit++
	if limit <= 0 {
		limit = 1
	}
	return limit
}

func equilibriumLayers(points []curve.Point, shape string) []Layer {
	var list []Layer
	for _, p := range points {
		list = append(list, SegmentLayer{
			Class: ClassEquilibrium,
			From:  curve.NewPoint(p.X, 0),
			To:    p,
			Color: dropColor,
			Style: charts.LineDashed,
		})
		list = append(list, SegmentLayer{
			Class: ClassEquilibrium,
			From:  curve.NewPoint(0, p.Y),
			To:    p,
			Color: dropColor,
			Style: charts.LineDashed,
		})
	}
	for _, p := range points {
		list = append(list, PointLayer{
			At:    p,
			Color: pointColor,
			Shape: shape,
		})
	}
	return list
}

// boundLayers draws the price ceiling and floor across the whole x axis. A
// price outside of [0, limit] would be drawn outside of the plot and is
// dropped.
func boundLayers(opts Options, limit float64) []Layer {
	var list []Layer
	add := func(class string, price *float64) {
		if price == nil || *price < 0 || *price > limit {
			return
		}
		list = append(list, SegmentLayer{
			Class: class,
			From:  curve.NewPoint(0, *price),
			To:    curve.NewPoint(limit, *price),
			Color: boundColor,
			Style: charts.LineSolid,
		})
	}
	add(ClassCeiling, opts.MaxPrice)
	add(ClassFloor, opts.MinPrice)
	return list
}

// labelLayers places the name of each curve half a unit left of its rightmost
// point, on the curve itself.
func labelLayers(curves []curve.Curve, names, colors []string) ([]Layer, error) {
	var list []Layer
	for i, c := range curves {
		minX, maxX, _, _ := c.Bounds()
		x := math.Max(minX, maxX-labelOffset)
		y, err := c.Interpolate(x)
		if err != nil {
			return nil, fmt.Errorf("curve %d: %w", i+1, err)
		}
		list = append(list, TextLayer{
			At:    curve.NewPoint(x, y),
			Text:  names[i],
			Color: colors[i],
		})
	}
	return list, nil
}

// equilibriumTicks returns the ticks of both axes. Ticks are deduplicated on
// their value rounded to two decimals. Quantity ticks stay at the exact
// equilibrium while price ticks are moved to the rounded value.
func equilibriumTicks(points []curve.Point, generic bool) ([]Tick, []Tick) {
	var (
		xs    []Tick
		ys    []Tick
		seenx = make(map[string]struct{})
		seeny = make(map[string]struct{})
	)
	add := func(list []Tick, seen map[string]struct{}, v float64, rounded bool, prefix string) []Tick {
		d := decimal.NewFromFloat(v).Round(tickDecimals)
		key := d.String()
		if _, ok := seen[key]; ok {
			return list
		}
		seen[key] = struct{}{}
		label := key
		if generic {
			label = fmt.Sprintf("%s%d", prefix, len(list)+1)
		}
		if rounded {
			v, _ = d.Float64()
		}
		return append(list, Tick{
			Value: v,
			Label: label,
		})
	}
	for _, p := range points {
		xs = add(xs, seenx, p.X, false, "Q")
		ys = add(ys, seeny, p.Y, true, "P")
	}
	return xs, ys
}
