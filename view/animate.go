package view

import (
	"context"
	"time"
)

// Animate sends the progress of an animation lasting duration at each tick
// of interval. The last value sent is always 1 unless ctx is done first.
// The channel is closed when the animation is over.
//
// The receiver is expected to give the progress to its chart from the
// goroutine drawing it.
func Animate(ctx context.Context, duration, interval time.Duration) <-chan float64 {
	queue := make(chan float64)
	go func() {
		defer close(queue)
		if duration <= 0 || interval <= 0 {
			send(ctx, queue, 1)
			return
		}
		var (
			tick  = time.NewTicker(interval)
			start = time.Now()
		)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tick.C:
				progress := min(1, float64(now.Sub(start))/float64(duration))
				if !send(ctx, queue, progress) || progress >= 1 {
					return
				}
			}
		}
	}()
	return queue
}

// Steps splits an animation in count frames and returns the progress of
// each of them, the last one being 1.
func Steps(count int) []float64 {
	if count <= 1 {
		return []float64{1}
	}
	list := make([]float64, count)
	for i := range list {
		list[i] = float64(i+1) / float64(count)
	}
	return list
}

func send(ctx context.Context, queue chan<- float64, progress float64) bool {
	select {
	case <-ctx.Done():
		return false
	case queue <- progress:
		return true
	}
}
