package view

import (
	"image/color"

	charts "github.com/midbel/microcharts"
)

// Clearer is implemented by surfaces that can be painted with a background
// color before a chart is drawn.
type Clearer interface {
	Clear(color.NRGBA)
}

// View connects a chart to a host surface. It asks for a repaint each time
// its chart is invalidated. Repaint requests are coalesced: at most one
// request is pending at a time.
type View struct {
	Background color.NRGBA

	chart   charts.Chart
	sub     *charts.Subscription
	repaint chan struct{}
}

func New() *View {
	return &View{
		repaint: make(chan struct{}, 1),
	}
}

func (v *View) Chart() charts.Chart {
	return v.chart
}

// SetChart replaces the chart of the view. The view stops observing its
// previous chart before observing the new one. The chart only keeps a weak
// reference to the view.
func (v *View) SetChart(ch charts.Chart) {
	if v.chart == ch {
		return
	}
	if v.sub != nil {
		v.sub.Close()
		v.sub = nil
	}
	v.chart = ch
	v.Invalidate()
	if ch == nil {
		return
	}
	v.sub = charts.Observe(ch.Invalidator(), v, (*View).Invalidate)
}

// Invalidate requests a repaint of the view.
func (v *View) Invalidate() {
	select {
	case v.repaint <- struct{}{}:
	default:
	}
}

// Repaint gives the channel receiving the repaint requests of the view.
func (v *View) Repaint() <-chan struct{} {
	return v.repaint
}

// Paint draws the chart of the view on s. A view without chart only clears
// s when s supports it.
func (v *View) Paint(s charts.Surface, width, height float64) {
	if c, ok := s.(Clearer); ok {
		c.Clear(v.Background)
	}
	if v.chart == nil {
		return
	}
	v.chart.Draw(s, width, height)
}

// Close releases the subscription of the view on its chart.
func (v *View) Close() error {
	v.SetChart(nil)
	return nil
}
