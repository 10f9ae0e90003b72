package curve

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-6

func TestIntersect(t *testing.T) {
	data := []struct {
		Name string
		A    Curve
		B    Curve
		Want Point
	}{
		{
			Name: "cross",
			A:    Curve{{1, 1}, {9, 9}},
			B:    Curve{{7, 2}, {2, 7}},
			Want: NewPoint(4.5, 4.5),
		},
		{
			Name: "steep",
			A:    Curve{{0, 0}, {2, 8}},
			B:    Curve{{0, 6}, {6, 0}},
			Want: NewPoint(1.2, 4.8),
		},
		{
			Name: "piecewise",
			A:    Curve{{0, 0}, {2, 1}, {4, 5}},
			B:    Curve{{0, 6}, {4, 2}},
			Want: NewPoint(3, 3),
		},
		{
			Name: "touch-at-breakpoint",
			A:    Curve{{0, 0}, {2, 2}, {4, 2}},
			B:    Curve{{2, 2}, {4, 0}},
			Want: NewPoint(2, 2),
		},
		{
			Name: "unsorted",
			A:    Curve{{9, 9}, {1, 1}},
			B:    Curve{{2, 7}, {7, 2}},
			Want: NewPoint(4.5, 4.5),
		},
		{
			Name: "first-crossing",
			A:    Curve{{0, 0}, {10, 0}},
			B:    Curve{{0, 2}, {2, -2}, {4, 2}, {6, -2}},
			Want: NewPoint(1, 0),
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			got, err := Intersect(d.A, d.B)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if math.Abs(got.X-d.Want.X) > epsilon || math.Abs(got.Y-d.Want.Y) > epsilon {
				t.Fatalf("intersection mismatched! want %s, got %s", d.Want, got)
			}
		})
	}
}

func TestIntersectSymmetric(t *testing.T) {
	var (
		a = Curve{{0, 1}, {10, 6}}
		b = Curve{{0, 8}, {10, 0}}
	)
	p1, err1 := Intersect(a, b)
	p2, err2 := Intersect(b, a)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if math.Abs(p1.X-p2.X) > epsilon || math.Abs(p1.Y-p2.Y) > epsilon {
		t.Fatalf("intersection depends on order: %s != %s", p1, p2)
	}
}

func TestIntersectFailures(t *testing.T) {
	data := []struct {
		Name string
		A    Curve
		B    Curve
		Err  error
	}{
		{
			Name: "parallel",
			A:    Curve{{0, 0}, {1, 1}},
			B:    Curve{{0, 1}, {1, 2}},
			Err:  ErrNoIntersection,
		},
		{
			Name: "disjoint",
			A:    Curve{{0, 0}, {1, 1}},
			B:    Curve{{2, 0}, {3, -1}},
			Err:  ErrNoIntersection,
		},
		{
			Name: "single-point",
			A:    Curve{{0, 0}},
			B:    Curve{{0, 1}, {1, 2}},
			Err:  ErrInvalidCurve,
		},
		{
			Name: "not-finite",
			A:    Curve{{0, 0}, {1, math.NaN()}},
			B:    Curve{{0, 1}, {1, 0}},
			Err:  ErrInvalidCurve,
		},
		{
			Name: "vertical",
			A:    Curve{{1, 0}, {1, 5}},
			B:    Curve{{0, 1}, {2, 0}},
			Err:  ErrInvalidCurve,
		},
	}
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			_, err := Intersect(d.A, d.B)
			if !errors.Is(err, d.Err) {
				t.Fatalf("error mismatched! want %v, got %v", d.Err, err)
			}
		})
	}
}

func TestInterpolate(t *testing.T) {
	c := Curve{{0, 0}, {2, 4}, {4, 4}, {2, 2}}
	data := []struct {
		X    float64
		Want float64
	}{
		{X: 0, Want: 0},
		{X: 1, Want: 1.5},
		{X: 2, Want: 3},
		{X: 3, Want: 3.5},
		{X: 4, Want: 4},
	}
	for _, d := range data {
		got, err := c.Interpolate(d.X)
		if err != nil {
			t.Fatalf("interpolate(%g): unexpected error: %s", d.X, err)
		}
		if math.Abs(got-d.Want) > epsilon {
			t.Errorf("interpolate(%g): want %g, got %g", d.X, d.Want, got)
		}
	}
	if _, err := c.Interpolate(5); !errors.Is(err, ErrOutOfDomain) {
		t.Errorf("interpolate outside domain: expected ErrOutOfDomain, got %v", err)
	}
}

func TestNew(t *testing.T) {
	c, err := New(NewPoint(1, 2), NewPoint(3, 4))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(c) != 2 {
		t.Fatalf("expected 2 points, got %d", len(c))
	}
	if _, err := New(NewPoint(1, 2)); !errors.Is(err, ErrInvalidCurve) {
		t.Fatalf("expected ErrInvalidCurve, got %v", err)
	}
	var ce *CurveError
	if _, err := FromXY([]float64{1, 2}, []float64{1}); !errors.As(err, &ce) {
		t.Fatalf("expected CurveError, got %v", err)
	}
}

func TestBounds(t *testing.T) {
	c := Curve{{7, 2}, {2, 7}, {3, 11}}
	minX, maxX, minY, maxY := c.Bounds()
	if minX != 2 || maxX != 7 || minY != 2 || maxY != 11 {
		t.Fatalf("bounds mismatched: %g %g %g %g", minX, maxX, minY, maxY)
	}
	if c.Max() != 11 {
		t.Fatalf("max mismatched: want 11, got %g", c.Max())
	}
}

func TestDefaultCurves(t *testing.T) {
	var (
		supply = DefaultSupply(9, 9)
		demand = DefaultDemand(9, 9)
	)
	if len(supply) != DefaultSamples || len(demand) != DefaultSamples {
		t.Fatalf("expected %d samples, got %d and %d", DefaultSamples, len(supply), len(demand))
	}
	if p := supply[0]; p.X != 1 || p.Y != 1 {
		t.Errorf("supply starts at %s", p)
	}
	if p := supply[len(supply)-1]; math.Abs(p.X-9) > epsilon || math.Abs(p.Y-9) > epsilon {
		t.Errorf("supply ends at %s", p)
	}
	if p := demand[0]; p.X != 1 || p.Y != 9 {
		t.Errorf("demand starts at %s", p)
	}
	for i := 1; i < len(supply); i++ {
		if supply[i].Y < supply[i-1].Y {
			t.Fatalf("supply is not increasing at %d", i)
		}
		if demand[i].Y > demand[i-1].Y {
			t.Fatalf("demand is not decreasing at %d", i)
		}
	}
	pt, err := Intersect(supply, demand)
	if err != nil {
		t.Fatalf("default curves should cross: %s", err)
	}
	if pt.X <= 4 || pt.X >= 6.5 {
		t.Fatalf("unexpected equilibrium %s", pt)
	}
}

func TestBezierLine(t *testing.T) {
	c := Bezier([]Point{{0, 0}, {10, 10}}, 11)
	for i, p := range c {
		if math.Abs(p.X-float64(i)) > epsilon || math.Abs(p.Y-float64(i)) > epsilon {
			t.Fatalf("point %d mismatched: %s", i, p)
		}
	}
	if c := Bezier(nil, 10); c != nil {
		t.Fatalf("expected nil curve without control points")
	}
}
