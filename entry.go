package charts

import (
	"image/color"
	"math"
	"strconv"
)

// Entry is one plotted value of a chart. The slice order of entries given to
// a chart is the left to right plotting order.
type Entry struct {
	Value      float64
	Label      string
	ValueLabel string

	Color           color.NRGBA
	ValueLabelColor color.NRGBA
}

func NewEntry(value float64, label string, c color.NRGBA) Entry {
	return Entry{
		Value:           value,
		Label:           label,
		ValueLabel:      formatValue(value),
		Color:           c,
		ValueLabelColor: c,
	}
}

// WithAlpha returns c with its alpha channel replaced by a.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// ScaleAlpha multiplies the alpha channel of c by f. The result is truncated,
// so an opaque color scaled by 0.5 has an alpha of 127.
func ScaleAlpha(c color.NRGBA, f float64) color.NRGBA {
	f = clamp(f, 0, 1)
	return WithAlpha(c, uint8(float64(c.A)*f))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func isEmptyColor(c color.NRGBA) bool {
	return c == color.NRGBA{}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
