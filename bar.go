package charts

import (
	"math"
)

// BarChart draws one vertical bar per entry, growing from the origin of the
// chart. Bars have rounded tops when CornerRadius is set and a background
// area covering the rest of their column.
type BarChart struct {
	AxisChart
	bar BarStyle
}

func NewBarChart(entries []Entry) *BarChart {
	return &BarChart{
		AxisChart: AxisChart{
			Base: makeBase(DefaultStyle(), entries),
		},
		bar: DefaultBarStyle(),
	}
}

func (c *BarChart) BarStyle() BarStyle {
	return c.bar
}

func (c *BarChart) SetBarStyle(style BarStyle) {
	style.MinBarHeight = math.Max(0, style.MinBarHeight)
	style.CornerRadius = math.Max(0, style.CornerRadius)
	c.bar = style
	c.Invalidate()
}

func (c *BarChart) Draw(s Surface, width, height float64) {
	c.Render(s, width, height, c)
}

// HeaderHeight does not reserve room for the value labels when they are not
// drawn above the bars.
func (c *BarChart) HeaderHeight(layout Layout) float64 {
	switch layout.Style.ValueLabelOption {
	case ValueLabelNone, ValueLabelOverElement:
		return layout.Margin
	default:
		return c.AxisChart.HeaderHeight(layout)
	}
}

// DrawElement draws the bar of an item. Corners are rounded by drawing a
// rounded rectangle then covering its bottom half with a plain rectangle.
func (c *BarChart) DrawElement(s Surface, layout Layout, it Item) {
	rect := c.barRect(layout, it)
	if c.bar.CornerRadius <= 0 {
		s.FillRect(rect, it.Color)
		return
	}
	s.FillRoundRect(rect, c.bar.CornerRadius, it.Color)

	half := rect.H / 2
	s.FillRect(NewRect(rect.X, rect.Bottom()-half, rect.W, half), it.Color)
}

// DrawArea draws the column behind a bar, from the edge of the plot area the
// bar points to up to the bar.
func (c *BarChart) DrawArea(s Surface, layout Layout, it Item) {
	fill := c.bar.AreaColor
	if isEmptyColor(fill) {
		if c.bar.AreaAlpha == 0 {
			return
		}
		fill = WithAlpha(it.Color, uint8(float64(c.bar.AreaAlpha)*layout.Progress))
	}
	var (
		edge   = layout.Bottom()
		extent = math.Max(0, math.Min(layout.Origin-it.Y, c.bar.CornerRadius))
	)
	if it.Value > 0 {
		edge = layout.Header
	}
	var (
		y = math.Min(edge, it.Y)
		h = math.Abs(edge-it.Y) + extent
		x = it.X - layout.ItemSize.W/2
	)
	s.FillRect(NewRect(x, y, layout.ItemSize.W, h), fill)
}

// DrawValueLabel draws the value label of an item according to the value
// label option of the chart. The label fades in with the animation.
func (c *BarChart) DrawValueLabel(s Surface, layout Layout, it Item) {
	if it.ValueLabel == "" {
		return
	}
	var (
		orient = layout.Style.ValueLabelOrientation
		rect   = c.barRect(layout, it)
		col    = ScaleAlpha(it.ValueLabelColor, layout.Progress)
		bounds = layout.ValueLabelSizes[it.Index]
		font   = layout.Style.valueLabelFont()
		center = rect.X + rect.W/2
	)
	switch layout.Style.ValueLabelOption {
	case ValueLabelTopOfChart:
		c.AxisChart.DrawValueLabel(s, layout, it)
	case ValueLabelTopOfElement:
		pos := PositionNone
		if orient.Vertical() {
			pos = UpToElementHeight
		}
		at := NewPoint(center, rect.Y-layout.Margin)
		DrawLabel(s, orient, pos, layout.ItemSize, at, col, bounds, it.ValueLabel, font)
	case ValueLabelOverElement:
		pos := DownToElementMiddle
		if orient.Vertical() {
			pos = UpToElementMiddle
		}
		at := NewPoint(center, it.Y+(layout.Origin-it.Y)/2)
		DrawLabel(s, orient, pos, layout.ItemSize, at, col, bounds, it.ValueLabel, font)
	default:
	}
}

// barRect gives the rectangle of the bar of an item. A bar is never smaller
// than MinBarHeight: bars of non negative values grow upward from the origin
// and bars of negative values downward. A bar never leaves the plot area.
func (c *BarChart) barRect(layout Layout, it Item) Rect {
	var (
		x = it.X - layout.ItemSize.W/2
		h = math.Max(c.bar.MinBarHeight, math.Abs(layout.Origin-it.Y))
		y = layout.Origin
	)
	if it.Value >= 0 {
		y -= h
	}
	if y < layout.Header {
		y = layout.Header
	}
	if bottom := layout.Bottom(); y+h > bottom {
		y = bottom - h
	}
	return NewRect(x, y, layout.ItemSize.W, h)
}
