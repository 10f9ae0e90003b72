package charts

type Domain interface {
	Diff(float64) float64
	Extend() float64
	Values(int) []float64
}

type numberDomain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return numberDomain{
		fst: f,
		lst: t,
	}
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	if c <= 0 {
		return []float64{n.fst, n.lst}
	}
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler interface {
	Scale(float64) float64
	Space() float64
	Values(int) []float64
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.Min() + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}
