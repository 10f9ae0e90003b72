package curve

import (
	"math"
)

const DefaultSamples = 100

// Bezier samples the Bézier curve defined by ctrl at n evenly spaced values of
// its parameter, both ends included.
func Bezier(ctrl []Point, n int) Curve {
	if len(ctrl) == 0 || n < 2 {
		return nil
	}
	var (
		deg = len(ctrl) - 1
		c   = make(Curve, n)
	)
	for i := 0; i < n; i++ {
		var (
			t  = float64(i) / float64(n-1)
			pt Point
		)
		for j, cp := range ctrl {
			b := binomial(deg, j) * math.Pow(t, float64(j)) * math.Pow(1-t, float64(deg-j))
			pt.X += b * cp.X
			pt.Y += b * cp.Y
		}
		c[i] = pt
	}
	return c
}

// DefaultSupply returns an upward sloping curve going from (1, 1) to
// (xmax, ymax).
func DefaultSupply(xmax, ymax float64) Curve {
	ctrl := []Point{
		NewPoint(1, 1),
		NewPoint(xmax-1, ymax*5/9),
		NewPoint(xmax, ymax),
	}
	return Bezier(ctrl, DefaultSamples)
}

// DefaultDemand returns a downward sloping curve going from (1, ymax) to
// (xmax, 1).
func DefaultDemand(xmax, ymax float64) Curve {
	ctrl := []Point{
		NewPoint(1, ymax),
		NewPoint(xmax/3, ymax/3),
		NewPoint(xmax, 1),
	}
	return Bezier(ctrl, DefaultSamples)
}

func binomial(n, k int) float64 {
	r := 1.0
	for i := 1; i <= k; i++ {
		r = r * float64(n-k+i) / float64(i)
	}
	return r
}
