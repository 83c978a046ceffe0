package charts

import (
	"image/color"
)

const (
	DefaultMargin   = 20.0
	DefaultTextSize = 16.0
)

type ValueLabelOption int

const (
	ValueLabelNone ValueLabelOption = iota
	ValueLabelTopOfChart
	ValueLabelTopOfElement
	ValueLabelOverElement
)

func (v ValueLabelOption) String() string {
	switch v {
	case ValueLabelTopOfChart:
		return "top-of-chart"
	case ValueLabelTopOfElement:
		return "top-of-element"
	case ValueLabelOverElement:
		return "over-element"
	default:
		return "none"
	}
}

// Style groups the knobs shared by every chart. The value range of a chart
// always covers 0, its Range and the values of its entries.
type Style struct {
	Margin             float64
	LabelTextSize      float64
	ValueLabelTextSize float64
	Typeface           string
	LabelColor         color.NRGBA

	LabelOrientation      Orientation
	ValueLabelOrientation Orientation
	ValueLabelOption      ValueLabelOption

	Range Range
}

func DefaultStyle() Style {
	return Style{
		Margin:                DefaultMargin,
		LabelTextSize:         DefaultTextSize,
		ValueLabelTextSize:    DefaultTextSize,
		LabelColor:            color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff},
		LabelOrientation:      Horizontal,
		ValueLabelOrientation: Horizontal,
		ValueLabelOption:      ValueLabelTopOfChart,
	}
}

func (s Style) labelFont() Font {
	return Font{
		Family: s.Typeface,
		Size:   s.LabelTextSize,
	}
}

func (s Style) valueLabelFont() Font {
	return Font{
		Family: s.Typeface,
		Size:   s.ValueLabelTextSize,
	}
}

// BarStyle groups the knobs specific to bar charts. A zero AreaColor lets
// the area behind a bar use the color of the bar with the alpha AreaAlpha.
type BarStyle struct {
	AreaAlpha    uint8
	MinBarHeight float64
	CornerRadius float64
	AreaColor    color.NRGBA
}

func DefaultBarStyle() BarStyle {
	return BarStyle{
		AreaAlpha:    32,
		MinBarHeight: 5,
	}
}
