package charts

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func NewPadding(top, right, bottom, left float64) Padding {
	return Padding{
		Top:    top,
		Right:  right,
		Bottom: bottom,
		Left:   left,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Title    string
	Subtitle string
	Width    float64
	Height   float64

	Padding
	Style

	Left   Axis
	Bottom Axis
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render writes the chart as a SVG document. Series are drawn in the given
// order, later ones on top of earlier ones.
func (c Chart) Render(w io.Writer, set ...Serie) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	if c.Style.Background != "" {
		el.Append(c.drawBackground())
	}
	if t := c.drawTitle(); t != nil {
		el.Append(t)
	}
	el.Append(c.drawAxis())

	ar := c.getArea()
	for _, s := range set {
		ar.Append(s.Render())
	}
	el.Append(ar.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) getArea() svg.Group {
	var g svg.Group
	g.Class = append(g.Class, "area")
	g.Transform = svg.Translate(c.Padding.Left, c.Padding.Top)
	return g
}

func (c Chart) drawBackground() svg.Element {
	var el svg.Rect
	el.Pos = svg.NewPos(0, 0)
	el.Dim = svg.NewDim(c.Width, c.Height)
	el.Fill = svg.NewFill(c.Style.Background)
	return el.AsElement()
}

func (c Chart) drawTitle() svg.Element {
	if c.Title == "" && c.Subtitle == "" {
		return nil
	}
	size := c.Style.Text.Size
	if size <= 0 {
		size = FontSize
	}
	g := svg.NewGroup(svg.WithID("title"), svg.WithTranslate(c.Width/2, c.Padding.Top/3))
	if c.Title != "" {
		tx := svg.NewText(c.Title)
		tx.Font = svg.NewFont(size * 1.4)
		tx.Anchor = "middle"
		tx.Baseline = "middle"
		g.Append(tx.AsElement())
	}
	if c.Subtitle != "" {
		tx := svg.NewText(c.Subtitle)
		tx.Pos = svg.NewPos(0, size*1.6)
		tx.Font = svg.NewFont(size)
		tx.Anchor = "middle"
		tx.Baseline = "middle"
		g.Append(tx.AsElement())
	}
	return g.AsElement()
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
