package charts

import (
	"math"
	"testing"
)

func TestNumberScaler(t *testing.T) {
	data := []struct {
		Domain Domain
		Range  Range
		Value  float64
		Want   float64
	}{
		{Domain: NumberDomain(0, 10), Range: NewRange(0, 100), Value: 5, Want: 50},
		{Domain: NumberDomain(0, 10), Range: NewRange(0, 100), Value: 10, Want: 100},
		{Domain: NumberDomain(10, 0), Range: NewRange(0, 100), Value: 10, Want: 0},
		{Domain: NumberDomain(10, 0), Range: NewRange(0, 100), Value: 2.5, Want: 75},
		{Domain: NumberDomain(0, 4), Range: NewRange(20, 60), Value: 1, Want: 30},
	}
	for _, d := range data {
		s := NumberScaler(d.Domain, d.Range)
		if got := s.Scale(d.Value); math.Abs(got-d.Want) > 1e-9 {
			t.Errorf("scale(%g): want %g, got %g", d.Value, d.Want, got)
		}
	}
}

func TestNumberDomainValues(t *testing.T) {
	values := NumberDomain(0, 10).Values(5)
	want := []float64{0, 2, 4, 6, 8, 10}
	if len(values) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(values))
	}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("value %d: want %g, got %g", i, want[i], values[i])
		}
	}
}

func TestPalette(t *testing.T) {
	if len(Category10) != 10 || len(Tableau10) != 10 {
		t.Fatalf("palettes should have 10 colors: %d, %d", len(Category10), len(Tableau10))
	}
	if Category10.Color(0) != Category10.Color(10) {
		t.Fatalf("palette should wrap around")
	}
	if _, ok := GetPalette("unknown"); ok {
		t.Fatalf("unknown palette should not be found")
	}
}
