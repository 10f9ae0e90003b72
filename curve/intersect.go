package curve

import (
	"fmt"
	"math"
	"sort"

	"github.com/midbel/slices"
)

// Intersect returns the point where a and b cross. When they cross more than
// once, the crossing with the smallest x is returned.
func Intersect(a, b Curve) (Point, error) {
	fa, xa, err := a.fit()
	if err != nil {
		return Point{}, err
	}
	fb, xb, err := b.fit()
	if err != nil {
		return Point{}, err
	}
	var (
		lo = math.Max(slices.Fst(xa), slices.Fst(xb))
		hi = math.Min(slices.Lst(xa), slices.Lst(xb))
	)
	if lo > hi {
		return Point{}, fmt.Errorf("%w: domains [%g, %g] and [%g, %g] do not overlap", ErrNoIntersection, slices.Fst(xa), slices.Lst(xa), slices.Fst(xb), slices.Lst(xb))
	}
	diff := func(x float64) float64 {
		return fa.Predict(x) - fb.Predict(x)
	}

	var (
		list = breakpoints(lo, hi, xa, xb)
		prev = slices.Fst(list)
		dp   = diff(prev)
	)
	if dp == 0 {
		return NewPoint(prev, fa.Predict(prev)), nil
	}
	// both curves are linear between two consecutive breakpoints so the
	// crossing inside a bracket is exact
	for _, x := range slices.Rest(list) {
		dx := diff(x)
		if dx == 0 {
			return NewPoint(x, fa.Predict(x)), nil
		}
		if math.Signbit(dp) != math.Signbit(dx) {
			cx := prev + (x-prev)*dp/(dp-dx)
			return NewPoint(cx, fa.Predict(cx)), nil
		}
		prev, dp = x, dx
	}
	return Point{}, fmt.Errorf("%w in [%g, %g]", ErrNoIntersection, lo, hi)
}

func breakpoints(lo, hi float64, xs ...[]float64) []float64 {
	list := []float64{lo, hi}
	for _, arr := range xs {
		for _, x := range arr {
			if x > lo && x < hi {
				list = append(list, x)
			}
		}
	}
	sort.Float64s(list)

	var (
		all  = list[:1]
		last = list[0]
	)
	for _, x := range list[1:] {
		if x == last {
			continue
		}
		all = append(all, x)
		last = x
	}
	return all
}
