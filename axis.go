package charts

import (
	"github.com/midbel/slices"
)

// Hooks are the drawing steps a chart organized around a value axis has to
// provide. They are called for each entry in the order DrawArea, DrawElement
// and DrawValueLabel.
type Hooks interface {
	HeaderHeight(Layout) float64
	DrawArea(Surface, Layout, Item)
	DrawElement(Surface, Layout, Item)
	DrawValueLabel(Surface, Layout, Item)
}

// Layout is computed from scratch on every draw pass.
type Layout struct {
	Count    int
	Width    float64
	Height   float64
	Margin   float64
	Header   float64
	Footer   float64
	ItemSize Size
	Origin   float64
	Progress float64

	Style  Style
	Scaler Scaler

	ValueLabelSizes []Size
	LabelSizes      []Size
}

// Bottom gives the vertical position of the bottom of the plot area.
func (l Layout) Bottom() float64 {
	return l.Header + l.ItemSize.H
}

// PlotWidth gives the width shared by the items of the chart, margins
// between items excluded.
func (l Layout) PlotWidth() float64 {
	return l.ItemSize.W * float64(l.Count)
}

// Item is an entry with its position on the chart. X is the horizontal center
// of the slot of the entry and Y the position of its value.
type Item struct {
	Index int
	Entry
	X float64
	Y float64
}

// AxisChart computes the layout of charts having an horizontal sequence of
// items and a vertical value axis. The drawing of the items is left to the
// Hooks given to Render.
type AxisChart struct {
	Base
}

// Render computes the layout of the chart for a surface of the given size
// and draws every entry with hooks.
func (c *AxisChart) Render(s Surface, width, height float64, hooks Hooks) {
	layout, ok := c.Layout(s, width, height, hooks)
	if !ok {
		return
	}
	for i, e := range c.entries {
		it := layout.item(i, e)
		hooks.DrawArea(s, layout, it)
		hooks.DrawElement(s, layout, it)
		hooks.DrawValueLabel(s, layout, it)
		c.drawLabel(s, layout, it)
	}
}

// Layout computes the layout of the chart. It returns false when nothing can
// be drawn: no entries or a surface too small to hold the plot area.
func (c *AxisChart) Layout(s Surface, width, height float64, hooks Hooks) (Layout, bool) {
	if width <= 0 || height <= 0 || len(c.entries) == 0 {
		return Layout{}, false
	}
	layout := Layout{
		Count:    len(c.entries),
		Width:    width,
		Height:   height,
		Margin:   c.style.Margin,
		Progress: c.progress,
		Style:    c.style,
	}
	layout.ValueLabelSizes = c.measureValueLabels(s)
	layout.LabelSizes = c.measureLabels(s)
	layout.Header = hooks.HeaderHeight(layout)
	layout.Footer = c.footerHeight(layout)

	var (
		count = float64(len(c.entries))
		w     = (width - (count+1)*layout.Margin) / count
		h     = height - layout.Header - layout.Footer
	)
	if w <= 0 || h <= 0 {
		return Layout{}, false
	}
	layout.ItemSize = NewSize(w, h)

	rg := c.valueRange()
	layout.Scaler = NumberScaler(NewRange(rg.Max(), rg.Min()), NewRange(layout.Header, layout.Bottom()))
	layout.Origin = layout.Scaler.Scale(0)
	return layout, true
}

// HeaderHeight reserves room above the plot area for the value labels when
// they are drawn at the top of the chart. The room taken by the labels never
// exceeds half the height of the surface.
func (c *AxisChart) HeaderHeight(layout Layout) float64 {
	size := maxExtent(layout.ValueLabelSizes, layout.Style.ValueLabelOrientation)
	if size <= 0 {
		return layout.Margin
	}
	return layout.Margin + min(size, layout.Height/2) + layout.Margin
}

func (c *AxisChart) DrawArea(_ Surface, _ Layout, _ Item) {}

func (c *AxisChart) DrawElement(_ Surface, _ Layout, _ Item) {}

// DrawValueLabel draws the value label of an item in the header of the chart,
// whatever the position of its element.
func (c *AxisChart) DrawValueLabel(s Surface, layout Layout, it Item) {
	if it.ValueLabel == "" {
		return
	}
	var (
		orient = layout.Style.ValueLabelOrientation
		pos    = PositionNone
		at     = NewPoint(it.X, layout.Header-layout.Margin)
		col    = ScaleAlpha(it.ValueLabelColor, layout.Progress)
	)
	if orient.Vertical() {
		pos = UpToElementHeight
	}
	DrawLabel(s, orient, pos, layout.ItemSize, at, col, layout.ValueLabelSizes[it.Index], it.ValueLabel, layout.Style.valueLabelFont())
}

func (c *AxisChart) drawLabel(s Surface, layout Layout, it Item) {
	if it.Label == "" {
		return
	}
	var (
		orient = layout.Style.LabelOrientation
		bounds = layout.LabelSizes[it.Index]
		at     = NewPoint(it.X, layout.Bottom()+layout.Margin)
	)
	if !orient.Vertical() {
		at.Y += bounds.H
	}
	DrawLabel(s, orient, PositionNone, layout.ItemSize, at, layout.Style.LabelColor, bounds, it.Label, layout.Style.labelFont())
}

func (c *AxisChart) footerHeight(layout Layout) float64 {
	size := maxExtent(layout.LabelSizes, layout.Style.LabelOrientation)
	if size <= 0 {
		return layout.Margin
	}
	return layout.Margin + min(size, layout.Height/2) + layout.Margin
}

func (c *AxisChart) measureValueLabels(s Surface) []Size {
	sizes := make([]Size, len(c.entries))
	if c.style.ValueLabelOption == ValueLabelNone {
		return sizes
	}
	font := c.style.valueLabelFont()
	for i, e := range c.entries {
		if e.ValueLabel == "" {
			continue
		}
		sizes[i] = s.MeasureText(e.ValueLabel, font)
	}
	return sizes
}

func (c *AxisChart) measureLabels(s Surface) []Size {
	var (
		sizes = make([]Size, len(c.entries))
		font  = c.style.labelFont()
	)
	for i, e := range c.entries {
		if e.Label == "" {
			continue
		}
		sizes[i] = s.MeasureText(e.Label, font)
	}
	return sizes
}

// valueRange gives the range of the values of the entries. The range always
// includes 0 and the range set in the style of the chart.
func (c *AxisChart) valueRange() Range {
	var (
		fst = slices.Fst(c.entries)
		rg  = c.style.Range.Extend(0).Extend(fst.Value)
	)
	for _, e := range slices.Rest(c.entries) {
		rg = rg.Extend(e.Value)
	}
	return rg
}

func (l Layout) item(i int, e Entry) Item {
	return Item{
		Index: i,
		Entry: e,
		X:     l.Margin + l.ItemSize.W/2 + float64(i)*(l.ItemSize.W+l.Margin),
		Y:     l.Scaler.Scale(e.Value * l.Progress),
	}
}

func maxExtent(sizes []Size, orient Orientation) float64 {
	var size float64
	for _, s := range sizes {
		size = max(size, orient.Box(s).H)
	}
	return size
}
