package charts

import (
	"slices"
)

// Chart is what a host draws and observes. Draw is called on every repaint
// with the size of the surface in pixels.
type Chart interface {
	Draw(Surface, float64, float64)
	// Subscribe keeps fn until the subscription is closed. Hosts that do
	// not close their subscription should use Observe on the Invalidator
	// instead, so that the chart does not keep them alive.
	Subscribe(func()) *Subscription
	Invalidator() *Notifier

	Entries() []Entry
	SetEntries([]Entry)
	Style() Style
	SetStyle(Style)
	AnimationProgress() float64
	SetAnimationProgress(float64)
}

// Base holds the state common to every chart. Every setter notifies the
// observers of the chart once the new value is set.
type Base struct {
	entries  []Entry
	style    Style
	progress float64

	notifier Notifier
}

func makeBase(style Style, entries []Entry) Base {
	return Base{
		entries:  slices.Clone(entries),
		style:    style,
		progress: 1,
	}
}

func (b *Base) Entries() []Entry {
	return slices.Clone(b.entries)
}

// SetEntries replaces the entries of the chart. Entries modified in place
// need to be given again to the chart for it to be invalidated.
func (b *Base) SetEntries(entries []Entry) {
	b.entries = slices.Clone(entries)
	b.Invalidate()
}

func (b *Base) Style() Style {
	return b.style
}

func (b *Base) SetStyle(style Style) {
	b.style = style
	b.Invalidate()
}

func (b *Base) AnimationProgress() float64 {
	return b.progress
}

// SetAnimationProgress sets the progress of the reveal animation. Values out
// of [0, 1] are clamped.
func (b *Base) SetAnimationProgress(progress float64) {
	progress = clamp(progress, 0, 1)
	if progress == b.progress {
		return
	}
	b.progress = progress
	b.Invalidate()
}

// Subscribe registers fn until the returned subscription is closed. See
// Observe for an observer that does not outlive its owner.
func (b *Base) Subscribe(fn func()) *Subscription {
	return b.notifier.Subscribe(fn)
}

func (b *Base) Invalidator() *Notifier {
	return &b.notifier
}

func (b *Base) Invalidate() {
	b.notifier.Notify()
}
