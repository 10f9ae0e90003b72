package charts

import (
	"github.com/midbel/svg"
)

type Serie struct {
	Color string
	Title string

	X      Scaler
	Y      Scaler
	Points []Point

	Renderer Renderer
}

func (s Serie) Render() svg.Element {
	return s.Renderer.Render(s)
}

// Segment returns a serie made of the two given points.
func Segment(title string, from, to Point) Serie {
	return Serie{
		Title:  title,
		Points: []Point{from, to},
	}
}
