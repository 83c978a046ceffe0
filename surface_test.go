package charts

import (
	"image/color"
)

const (
	opFillRect      = "rect"
	opFillRoundRect = "round"
	opDrawText      = "text"
)

type call struct {
	Op       string
	Rect     Rect
	Radius   float64
	Text     string
	Color    color.NRGBA
	Vertical bool
}

// recorder keeps every call made on it. Texts are measured as 8 pixels
// per rune for a height of 10 pixels.
type recorder struct {
	calls    []call
	measured []string
}

func (r *recorder) FillRect(rect Rect, c color.NRGBA) {
	r.calls = append(r.calls, call{Op: opFillRect, Rect: rect, Color: c})
}

func (r *recorder) FillRoundRect(rect Rect, radius float64, c color.NRGBA) {
	r.calls = append(r.calls, call{Op: opFillRoundRect, Rect: rect, Radius: radius, Color: c})
}

func (r *recorder) DrawText(str string, at Point, _ Font, c color.NRGBA, vertical bool) {
	r.calls = append(r.calls, call{
		Op:       opDrawText,
		Rect:     Rect{Point: at},
		Text:     str,
		Color:    c,
		Vertical: vertical,
	})
}

func (r *recorder) MeasureText(str string, _ Font) Size {
	r.measured = append(r.measured, str)
	return NewSize(float64(len([]rune(str)))*8, 10)
}

func (r *recorder) filter(op string) []call {
	var list []call
	for _, c := range r.calls {
		if c.Op == op {
			list = append(list, c)
		}
	}
	return list
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
	r.measured = r.measured[:0]
}
