package charts

import (
	"github.com/midbel/svg"
)

type LineStyle int

const (
	LineSolid LineStyle = iota
	LineDashed
	LineDotted
)

func (s LineStyle) String() string {
	switch s {
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	default:
		return "solid"
	}
}

func (s LineStyle) Stroke(color string, width float64) svg.Stroke {
	sk := svg.NewStroke(color, width)
	switch s {
	case LineDashed:
		sk.DashArray(5)
	case LineDotted:
		sk.DashArray(1)
	default:
	}
	return sk
}

type Style struct {
	Line struct {
		Style   LineStyle
		Width   float64
		Opacity float64
	}
	Fill struct {
		Opacity float64
		List    Palette
	}
	Text struct {
		Size  float64
		Color string
	}
	Background string
	Grid       bool
}

// ClassicStyle is a minimal theme: white background, plain axis lines and
// no grid.
func ClassicStyle() Style {
	var s Style
	s.Line.Style = LineSolid
	s.Line.Width = 2
	s.Line.Opacity = 1
	s.Fill.Opacity = 1
	s.Fill.List = Category10
	s.Text.Size = FontSize
	s.Text.Color = "black"
	s.Background = "white"
	return s
}
