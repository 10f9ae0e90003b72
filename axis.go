package charts

import (
	"strconv"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

// NumberAxis draws a numeric axis. When Domain is set, ticks are only drawn at
// its values and Labels, when not empty, replaces the formatted values.
type NumberAxis struct {
	Label string
	Orientation
	Ticks          int
	Scaler         Scaler
	Domain         []float64
	Labels         []string
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length, svg.NewStroke("black", 1))
	g.Append(d.AsElement())

	var (
		data   = a.Domain
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if len(data) == 0 && a.Ticks > 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	for i, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, 0, FontSize*0.5, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			str := format(f)
			if i < len(a.Labels) {
				str = a.Labels[i]
			}
			text := tickText(a.Orientation, str, 0, font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks {
			sk := d.Stroke
			sk.Opacity = 0.1
			tick := lineTick(a.Orientation, 0, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length))
	}
	return g.AsElement()
}

func axisLabel(orient Orientation, str string, length float64) svg.Element {
	var (
		grp  svg.Group
		text = svg.NewText(str)
		off  = FontSize * 3
	)
	text.Font = svg.NewFont(FontSize)
	text.Anchor = "middle"
	text.Baseline = "middle"
	switch {
	case orient.Vertical() && !orient.Reverse():
		grp.Transform = svg.Translate(-off, length/2)
		grp.Transform.RA = -90
	case orient.Vertical() && orient.Reverse():
		grp.Transform = svg.Translate(off, length/2)
		grp.Transform.RA = 90
	case !orient.Vertical() && orient.Reverse():
		grp.Transform = svg.Translate(length/2, -off)
	default:
		grp.Transform = svg.Translate(length/2, off)
	}
	grp.Class = append(grp.Class, "axis-label")
	grp.Append(text.AsElement())
	return grp.AsElement()
}

func domainLine(orient Orientation, length float64, stroke svg.Stroke) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = stroke
	return d
}

func lineTick(orient Orientation, offset, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(offset, 0)
		pos2 = svg.NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
