package charts

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
	return max(r.F, r.T)
}

func (r Range) Min() float64 {
	return min(r.F, r.T)
}

// Extend returns a range including both r and v.
func (r Range) Extend(v float64) Range {
	return NewRange(min(r.Min(), v), max(r.Max(), v))
}

// Scaler maps a value of its domain linearly onto its range. The domain of
// a vertical axis goes from its largest to its smallest value since pixels
// grow downward.
type Scaler struct {
	Domain Range
	Range
}

func NumberScaler(dom, rg Range) Scaler {
	return Scaler{
		Domain: dom,
		Range:  rg,
	}
}

// Scale returns the position of v. A degenerate domain maps every value to
// the middle of the range.
func (s Scaler) Scale(v float64) float64 {
	if s.Domain.Len() == 0 {
		return s.F + s.Len()/2
	}
	return s.F + (v-s.Domain.F)*s.Space()
}

func (s Scaler) Space() float64 {
	if s.Domain.Len() == 0 {
		return 0
	}
	return s.Len() / s.Domain.Len()
}
