package charts

import (
	"image/color"
)

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Vertical() bool {
	return o == Vertical
}

func (o Orientation) String() string {
	if o.Vertical() {
		return "vertical"
	}
	return "horizontal"
}

// Position tells how a label is moved vertically from its anchor.
type Position int

const (
	PositionNone Position = iota
	UpToElementHeight
	UpToElementMiddle
	DownToElementMiddle
)

// Box gives the box of a measured text once drawn with the given orientation.
func (o Orientation) Box(bounds Size) Size {
	if o.Vertical() {
		return bounds.Rotate()
	}
	return bounds
}

const ellipsis = "…"

// DrawLabel draws text centered horizontally on the anchor.
//
// An horizontal label grows upward from its anchor, the anchor being its
// baseline. A vertical label is rotated and grows downward from its anchor.
// The position policy then moves the label by the full or half height of
// its own box.
//
// An horizontal label wider than its element is shortened and ends with an
// ellipsis. It is not drawn when even the ellipsis does not fit.
func DrawLabel(s Surface, orient Orientation, pos Position, element Size, at Point, c color.NRGBA, bounds Size, text string, font Font) {
	if text == "" {
		return
	}
	if !orient.Vertical() && element.W > 0 && bounds.W > element.W {
		text, bounds = fitText(s, text, font, element.W)
		if text == "" {
			return
		}
	}
	var (
		box = orient.Box(bounds)
		x   = at.X - box.W/2
		y   = at.Y
	)
	if !orient.Vertical() {
		y -= box.H
	}
	switch pos {
	case UpToElementHeight:
		y -= box.H
	case UpToElementMiddle:
		y -= box.H / 2
	case DownToElementMiddle:
		y += box.H / 2
	default:
	}
	s.DrawText(text, NewPoint(x, y), font, c, orient.Vertical())
}

func fitText(s Surface, text string, font Font, width float64) (string, Size) {
	runes := []rune(text)
	for n := len(runes) - 1; n >= 0; n-- {
		str := string(runes[:n]) + ellipsis
		if size := s.MeasureText(str, font); size.W <= width {
			return str, size
		}
	}
	return "", Size{}
}
