// Package curve models piecewise-linear curves given as ordered (x, y) points
// and finds where two of them cross.
package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/midbel/slices"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

type Point struct {
	X float64
	Y float64
}

func NewPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Curve is an ordered sequence of points read as a piecewise-linear function
// of x.
type Curve []Point

// New copies pts into a Curve and validates it.
func New(pts ...Point) (Curve, error) {
	c := make(Curve, len(pts))
	copy(c, pts)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// FromXY builds a curve from two parallel columns of coordinates.
func FromXY(xs, ys []float64) (Curve, error) {
	if len(xs) != len(ys) {
		return nil, invalidCurve("%d x values for %d y values", len(xs), len(ys))
	}
	c := make(Curve, len(xs))
	for i := range xs {
		c[i] = NewPoint(xs[i], ys[i])
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c Curve) Validate() error {
	if len(c) < 2 {
		return invalidCurve("at least 2 points required, got %d", len(c))
	}
	for i, p := range c {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return invalidCurve("point %d %s is not finite", i, p)
		}
	}
	xs, _ := c.function()
	if len(xs) < 2 {
		return invalidCurve("at least 2 distinct x values required")
	}
	return nil
}

func (c Curve) Xs() []float64 {
	xs := make([]float64, len(c))
	for i := range c {
		xs[i] = c[i].X
	}
	return xs
}

func (c Curve) Ys() []float64 {
	ys := make([]float64, len(c))
	for i := range c {
		ys[i] = c[i].Y
	}
	return ys
}

// Bounds returns the extent of the curve on both axes.
func (c Curve) Bounds() (minX, maxX, minY, maxY float64) {
	if len(c) == 0 {
		return
	}
	xs, ys := c.Xs(), c.Ys()
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)
}

// Max returns the largest coordinate of the curve, x and y alike.
func (c Curve) Max() float64 {
	_, mx, _, my := c.Bounds()
	return math.Max(mx, my)
}

// Interpolate returns the y value of the curve at x.
func (c Curve) Interpolate(x float64) (float64, error) {
	fn, xs, err := c.fit()
	if err != nil {
		return 0, err
	}
	if x < slices.Fst(xs) || x > slices.Lst(xs) {
		return 0, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfDomain, x, slices.Fst(xs), slices.Lst(xs))
	}
	return fn.Predict(x), nil
}

func (c Curve) fit() (*interp.PiecewiseLinear, []float64, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}
	var (
		xs, ys = c.function()
		fn     interp.PiecewiseLinear
	)
	if err := fn.Fit(xs, ys); err != nil {
		return nil, nil, invalidCurve("%s", err)
	}
	return &fn, xs, nil
}

// function sorts the points by x and collapses points sharing the same x to
// their mean y.
func (c Curve) function() ([]float64, []float64) {
	pts := make([]Point, len(c))
	copy(pts, c)
	sort.SliceStable(pts, func(i, j int) bool {
		return pts[i].X < pts[j].X
	})
	var (
		xs []float64
		ys []float64
	)
	for i := 0; i < len(pts); {
		var (
			j   = i
			sum float64
		)
		for ; j < len(pts) && pts[j].X == pts[i].X; j++ {
			sum += pts[j].Y
		}
		xs = append(xs, pts[i].X)
		ys = append(ys, sum/float64(j-i))
		i = j
	}
	return xs, ys
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
