package sdcurve

import (
	charts "github.com/midbel/econcharts"
	"github.com/midbel/econcharts/curve"
)

type Kind int

const (
	KindLine Kind = iota
	KindSegment
	KindPoint
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindSegment:
		return "segment"
	case KindPoint:
		return "point"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Layer is one visual element of a chart. Layers are drawn in order, each one
// on top of the previous ones.
type Layer interface {
	Kind() Kind
	Serie(x, y charts.Scaler) charts.Serie
}

const (
	ClassCurve       = "curve"
	ClassEquilibrium = "equilibrium"
	ClassCeiling     = "ceiling"
	ClassFloor       = "floor"
	ClassLabel       = "label"
)

type LineLayer struct {
	Name  string
	Curve curve.Curve
	Color string
	Width float64
}

func (LineLayer) Kind() Kind {
	return KindLine
}

func (l LineLayer) Serie(x, y charts.Scaler) charts.Serie {
	s := charts.Serie{
		Title:  l.Name,
		Color:  l.Color,
		X:      x,
		Y:      y,
		Points: toPoints(l.Curve...),
	}
	s.Renderer = charts.LinearRenderer{
		Color: l.Color,
		Width: l.Width,
	}
	return s
}

type SegmentLayer struct {
	Class string
	From  curve.Point
	To    curve.Point
	Color string
	Style charts.LineStyle
}

func (SegmentLayer) Kind() Kind {
	return KindSegment
}

func (l SegmentLayer) Serie(x, y charts.Scaler) charts.Serie {
	s := charts.Segment(l.Class, toPoint(l.From), toPoint(l.To))
	s.Color = l.Color
	s.X = x
	s.Y = y
	s.Renderer = charts.LinearRenderer{
		Color: l.Color,
		Style: l.Style,
	}
	return s
}

type PointLayer struct {
	At    curve.Point
	Color string
	Shape string
}

func (PointLayer) Kind() Kind {
	return KindPoint
}

func (l PointLayer) Serie(x, y charts.Scaler) charts.Serie {
	shape, ok := charts.GetShape(l.Shape)
	if !ok {
		shape = charts.GetCircle
	}
	s := charts.Serie{
		Title:  ClassEquilibrium,
		Color:  l.Color,
		X:      x,
		Y:      y,
		Points: toPoints(l.At),
	}
	s.Renderer = charts.PointRenderer{
		Color: l.Color,
		Point: shape,
	}
	return s
}

type TextLayer struct {
	At    curve.Point
	Text  string
	Color string
}

func (TextLayer) Kind() Kind {
	return KindText
}

func (l TextLayer) Serie(x, y charts.Scaler) charts.Serie {
	s := charts.Serie{
		Title:  l.Text,
		Color:  l.Color,
		X:      x,
		Y:      y,
		Points: toPoints(l.At),
	}
	s.Renderer = charts.TextRenderer{
		Color: l.Color,
	}
	return s
}

func toPoint(p curve.Point) charts.Point {
	return charts.NewPoint(p.X, p.Y)
}

func toPoints(pts ...curve.Point) []charts.Point {
	list := make([]charts.Point, len(pts))
	for i := range pts {
		list[i] = toPoint(pts[i])
	}
	return list
}
