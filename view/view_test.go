package view

import (
	"context"
	"image/color"
	"runtime"
	"testing"
	"time"

	charts "github.com/midbel/microcharts"
	"github.com/midbel/microcharts/canvas"
)

func pending(v *View) int {
	var count int
	for {
		select {
		case <-v.Repaint():
			count++
		default:
			return count
		}
	}
}

func TestViewSetChart(t *testing.T) {
	var (
		v  = New()
		c1 = charts.NewBarChart([]charts.Entry{{Value: 1}})
		c2 = charts.NewBarChart([]charts.Entry{{Value: 2}})
	)
	v.SetChart(c1)
	if pending(v) != 1 {
		t.Fatalf("setting a chart should request a repaint")
	}
	c1.SetEntries([]charts.Entry{{Value: 3}})
	if pending(v) != 1 {
		t.Fatalf("invalidating the chart should request a repaint")
	}

	v.SetChart(c2)
	pending(v)
	if c1.Invalidator().Len() != 0 {
		t.Fatalf("previous chart should not be observed anymore")
	}
	c1.SetEntries(nil)
	if pending(v) != 0 {
		t.Fatalf("previous chart should not request repaint")
	}
	c2.SetAnimationProgress(0.2)
	if pending(v) != 1 {
		t.Fatalf("new chart should request repaint")
	}

	v.Close()
	pending(v)
	if c2.Invalidator().Len() != 0 {
		t.Fatalf("closed view should not observe its chart")
	}
}

func TestViewCoalesce(t *testing.T) {
	var (
		v  = New()
		ch = charts.NewBarChart(nil)
	)
	v.SetChart(ch)
	for i := 0; i < 10; i++ {
		ch.SetEntries([]charts.Entry{{Value: float64(i)}})
	}
	if got := pending(v); got != 1 {
		t.Fatalf("repaint requests should be coalesced, got %d", got)
	}
}

func TestViewDropped(t *testing.T) {
	ch := charts.NewBarChart(nil)
	func() {
		v := New()
		v.SetChart(ch)
		runtime.KeepAlive(v)
	}()
	for i := 0; i < 3; i++ {
		runtime.GC()
	}
	ch.SetEntries([]charts.Entry{{Value: 1}})
	if n := ch.Invalidator().Len(); n != 0 {
		t.Fatalf("dropped view still observed: %d observer(s)", n)
	}
}

func TestViewPaint(t *testing.T) {
	var (
		v = New()
		s = canvas.NewSVG(200, 100)
	)
	v.Background = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	v.Paint(s, s.Width, s.Height)
	if s.Len() != 1 {
		t.Fatalf("view without chart should only clear the surface, got %d element(s)", s.Len())
	}
	v.SetChart(charts.NewBarChart([]charts.Entry{{Value: 1, Color: charts.Category10.At(0)}}))
	v.Paint(s, s.Width, s.Height)
	if s.Len() <= 1 {
		t.Fatalf("chart not drawn")
	}
}

func TestAnimate(t *testing.T) {
	var (
		ctx  = context.Background()
		last float64
		prev float64
	)
	for p := range Animate(ctx, 20*time.Millisecond, time.Millisecond) {
		if p < prev {
			t.Fatalf("progress should not decrease: %f < %f", p, prev)
		}
		prev, last = p, p
	}
	if last != 1 {
		t.Fatalf("animation should end with a progress of 1, got %f", last)
	}
}

func TestAnimateCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	queue := Animate(ctx, time.Hour, time.Millisecond)
	<-queue
	cancel()
	for range queue {
	}
}

func TestSteps(t *testing.T) {
	steps := Steps(4)
	want := []float64{0.25, 0.5, 0.75, 1}
	if len(steps) != len(want) {
		t.Fatalf("steps mismatched! want %v, got %v", want, steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d: want %f, got %f", i, want[i], steps[i])
		}
	}
	if s := Steps(0); len(s) != 1 || s[0] != 1 {
		t.Errorf("no step should give a single frame: %v", s)
	}
}
