package charts

import (
	"image/color"
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

type Size struct {
	W float64
	H float64
}

func NewSize(w, h float64) Size {
	return Size{
		W: w,
		H: h,
	}
}

// Rotate swaps width and height, giving the box occupied by a rotated text.
func (s Size) Rotate() Size {
	return Size{
		W: s.H,
		H: s.W,
	}
}

type Rect struct {
	Point
	Size
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Point: NewPoint(x, y),
		Size:  NewSize(w, h),
	}
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

type Font struct {
	Family string
	Size   float64
}

// Surface is the drawing capability a chart draws into. Implementations
// live outside of this package (see the canvas package) and are owned by
// the host: a chart never keeps a reference to a surface after Draw returns.
type Surface interface {
	FillRect(Rect, color.NRGBA)
	FillRoundRect(Rect, float64, color.NRGBA)
	// DrawText draws str with the top left corner of its box at the given
	// point. A vertical text is rotated a quarter turn clockwise and its
	// box is the measured size rotated.
	DrawText(str string, at Point, font Font, c color.NRGBA, vertical bool)
	MeasureText(str string, font Font) Size
}
