package charts

import (
	"github.com/midbel/svg"
)

var DefaultSize float64 = 8

type PointFunc func(svg.Pos) svg.Element

// GetShape returns the PointFunc registered under name.
func GetShape(name string) (PointFunc, bool) {
	switch name {
	case "", "circle":
		return GetCircle, true
	case "square":
		return GetSquare, true
	case "diamond":
		return GetDiamond, true
	default:
		return nil, false
	}
}

func GetCircle(pos svg.Pos) svg.Element {
	var el svg.Circle
	el.Pos = pos
	el.Radius = DefaultSize / 2
	return el.AsElement()
}

func GetSquare(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)

	return el.AsElement()
}

func GetDiamond(pos svg.Pos) svg.Element {
	half := DefaultSize / 2
	pos.X -= half
	pos.Y -= half

	var el svg.Rect
	el.Pos = pos
	el.Dim = svg.NewDim(DefaultSize, DefaultSize)
	el.Transform.RA = 45
	el.Transform.RX = pos.X + half
	el.Transform.RY = pos.Y + half

	return el.AsElement()
}
