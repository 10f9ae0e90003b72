package charts

import (
	"math"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

type Renderer interface {
	Render(Serie) svg.Element
}

type PointRenderer struct {
	Color string
	Point PointFunc
}

func (r PointRenderer) Render(serie Serie) svg.Element {
	if r.Point == nil {
		r.Point = GetCircle
	}
	grp := getBaseGroup(r.Color, "scatter")
	for _, pt := range serie.Points {
		var (
			x = serie.X.Scale(pt.X)
			y = serie.Y.Scale(pt.Y)
		)
		el := r.Point(svg.NewPos(x, y))
		grp.Append(el)
	}
	return grp.AsElement()
}

// LinearRenderer joins the points of a serie. A NaN ordinate breaks the line
// and the next point starts a new one.
type LinearRenderer struct {
	Color string
	Width float64
	Style LineStyle
	Point PointFunc
	Text  TextPosition
}

func (r LinearRenderer) Render(serie Serie) svg.Element {
	if r.Width <= 0 {
		r.Width = 1
	}
	var (
		grp = getBaseGroup(r.Color, "line")
		pat = getBasePath()
		pos svg.Pos
		nan bool
	)
	grp.Id = serie.Title
	if r.Color != "" {
		pat.Stroke = r.Style.Stroke(r.Color, r.Width)
	} else {
		pat.Stroke = r.Style.Stroke(currentColor, r.Width)
	}
	for i, pt := range serie.Points {
		if math.IsNaN(pt.Y) {
			nan = true
			continue
		}
		pos.X = serie.X.Scale(pt.X)
		pos.Y = serie.Y.Scale(pt.Y)
		if i == 0 || nan {
			nan = false
			pat.AbsMoveTo(pos)
		} else {
			pat.AbsLineTo(pos)
		}
		if r.Point != nil {
			if el := r.Point(pos); el != nil {
				grp.Append(el)
			}
		}
	}

	switch r.Text {
	case TextBefore:
		pt := slices.Fst(serie.Points)
		txt := getLineText(serie.Title, serie.X.Scale(pt.X), serie.Y.Scale(pt.Y), true)
		grp.Append(txt.AsElement())
	case TextAfter:
		pt := slices.Lst(serie.Points)
		txt := getLineText(serie.Title, serie.X.Scale(pt.X), serie.Y.Scale(pt.Y), false)
		grp.Append(txt.AsElement())
	default:
	}

	grp.Append(pat.AsElement())
	return grp.AsElement()
}

// TextRenderer writes the title of the serie at each of its points.
type TextRenderer struct {
	Color  string
	Anchor string
	Size   float64
}

func (r TextRenderer) Render(serie Serie) svg.Element {
	if r.Size <= 0 {
		r.Size = FontSize
	}
	if r.Anchor == "" {
		r.Anchor = "middle"
	}
	grp := getBaseGroup(r.Color, "text")
	for _, pt := range serie.Points {
		txt := svg.NewText(serie.Title)
		txt.Font = svg.NewFont(r.Size)
		txt.Pos = svg.NewPos(serie.X.Scale(pt.X), serie.Y.Scale(pt.Y))
		txt.Anchor = r.Anchor
		txt.Baseline = "middle"
		grp.Append(txt.AsElement())
	}
	return grp.AsElement()
}

func getLineText(str string, x, y float64, before bool) svg.Text {
	txt := svg.NewText(str)
	txt.Font = svg.NewFont(FontSize)
	txt.Pos = svg.NewPos(x, y)
	txt.Anchor = "end"
	txt.Baseline = "middle"
	if !before {
		txt.Anchor = "start"
		txt.Pos.X += FontSize * 0.4
	} else {
		txt.Pos.X -= FontSize * 0.4
	}
	return txt
}

func getBasePath() svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(currentColor, 1)
	pat.Fill = svg.NewFill("none")
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

const currentColor = "currentColor"
