package charts

import (
	"image/color"
	"testing"
)

func TestDrawLabel(t *testing.T) {
	var (
		at      = NewPoint(100, 50)
		bounds  = NewSize(40, 10)
		element = NewSize(60, 100)
	)
	tests := []struct {
		Orient   Orientation
		Position Position
		Want     Point
	}{
		{Orient: Horizontal, Position: PositionNone, Want: NewPoint(80, 40)},
		{Orient: Horizontal, Position: UpToElementHeight, Want: NewPoint(80, 30)},
		{Orient: Horizontal, Position: UpToElementMiddle, Want: NewPoint(80, 35)},
		{Orient: Horizontal, Position: DownToElementMiddle, Want: NewPoint(80, 45)},
		{Orient: Vertical, Position: PositionNone, Want: NewPoint(95, 50)},
		{Orient: Vertical, Position: UpToElementHeight, Want: NewPoint(95, 10)},
		{Orient: Vertical, Position: UpToElementMiddle, Want: NewPoint(95, 30)},
		{Orient: Vertical, Position: DownToElementMiddle, Want: NewPoint(95, 70)},
	}
	for _, tt := range tests {
		var rec recorder
		DrawLabel(&rec, tt.Orient, tt.Position, element, at, color.NRGBA{A: 0xff}, bounds, "label", Font{})
		if len(rec.calls) != 1 {
			t.Fatalf("%s/%d: expected 1 call, got %d", tt.Orient, tt.Position, len(rec.calls))
		}
		got := rec.calls[0]
		if got.Rect.Point != tt.Want {
			t.Errorf("%s/%d: position mismatched! want %v, got %v", tt.Orient, tt.Position, tt.Want, got.Rect.Point)
		}
		if got.Vertical != tt.Orient.Vertical() {
			t.Errorf("%s/%d: orientation mismatched", tt.Orient, tt.Position)
		}
	}
}

func TestDrawLabelEmpty(t *testing.T) {
	var rec recorder
	DrawLabel(&rec, Vertical, UpToElementHeight, NewSize(10, 10), NewPoint(0, 0), color.NRGBA{}, NewSize(10, 10), "", Font{})
	if len(rec.calls) != 0 {
		t.Fatalf("empty label should not be drawn, got %d call(s)", len(rec.calls))
	}
}

func TestDrawLabelTooWide(t *testing.T) {
	var (
		rec    recorder
		text   = "programming"
		bounds = NewSize(88, 10)
	)
	DrawLabel(&rec, Horizontal, PositionNone, NewSize(50, 100), NewPoint(100, 50), color.NRGBA{A: 0xff}, bounds, text, Font{})
	if len(rec.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(rec.calls))
	}
	got := rec.calls[0]
	if got.Text != "progr…" {
		t.Errorf("label should be shortened to fit its element, got %q", got.Text)
	}
	if want := NewPoint(76, 40); got.Rect.Point != want {
		t.Errorf("shortened label should stay centered: want %v, got %v", want, got.Rect.Point)
	}

	rec.reset()
	DrawLabel(&rec, Vertical, PositionNone, NewSize(50, 100), NewPoint(100, 50), color.NRGBA{A: 0xff}, bounds, text, Font{})
	if len(rec.calls) != 1 || rec.calls[0].Text != text {
		t.Errorf("vertical label should not be shortened")
	}

	rec.reset()
	DrawLabel(&rec, Horizontal, PositionNone, NewSize(4, 100), NewPoint(100, 50), color.NRGBA{A: 0xff}, bounds, text, Font{})
	if len(rec.calls) != 0 {
		t.Errorf("label should not be drawn when nothing fits, got %d call(s)", len(rec.calls))
	}
}

func TestScaleAlpha(t *testing.T) {
	tests := []struct {
		Alpha    uint8
		Progress float64
		Want     uint8
	}{
		{Alpha: 255, Progress: 0.5, Want: 127},
		{Alpha: 255, Progress: 1, Want: 255},
		{Alpha: 255, Progress: 0, Want: 0},
		{Alpha: 100, Progress: 2, Want: 100},
		{Alpha: 100, Progress: -1, Want: 0},
	}
	for _, tt := range tests {
		got := ScaleAlpha(color.NRGBA{A: tt.Alpha}, tt.Progress)
		if got.A != tt.Want {
			t.Errorf("%d * %f: want %d, got %d", tt.Alpha, tt.Progress, tt.Want, got.A)
		}
	}
}
