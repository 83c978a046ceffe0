package charts

import (
	"runtime"
	"testing"
)

type watcher struct {
	name  string
	count *int
	buf   [64]byte
}

func TestNotifierSubscribe(t *testing.T) {
	var (
		n     Notifier
		count int
	)
	sub := n.Subscribe(func() { count++ })
	n.Notify()
	n.Notify()
	if count != 2 {
		t.Fatalf("expected 2 notifications, got %d", count)
	}
	sub.Close()
	n.Notify()
	if count != 2 {
		t.Fatalf("closed subscription notified! got %d notifications", count)
	}
	if err := sub.Close(); err != nil {
		t.Fatalf("closing twice should not fail: %s", err)
	}
	if n.Len() != 0 {
		t.Fatalf("expected no observers left, got %d", n.Len())
	}
}

func TestNotifierCloseWhileNotifying(t *testing.T) {
	var (
		n      Notifier
		second *Subscription
		count  int
	)
	n.Subscribe(func() {
		second.Close()
	})
	second = n.Subscribe(func() { count++ })
	n.Notify()
	if count != 0 {
		t.Fatalf("subscription closed during notification should not be notified")
	}
}

func TestNotifierObserveCollected(t *testing.T) {
	var (
		n     Notifier
		count int
	)
	func() {
		w := &watcher{name: "view", count: &count}
		Observe(&n, w, func(w *watcher) {
			*w.count++
		})
		n.Notify()
		runtime.KeepAlive(w)
	}()
	if count != 1 {
		t.Fatalf("expected 1 notification, got %d", count)
	}
	for i := 0; i < 3; i++ {
		runtime.GC()
	}
	n.Notify()
	if count != 1 {
		t.Fatalf("collected observer notified! got %d notifications", count)
	}
	if n.Len() != 0 {
		t.Fatalf("collected observer not pruned: %d observer(s) left", n.Len())
	}
}

func TestNotifierObserveAlive(t *testing.T) {
	var (
		n     Notifier
		count int
		w     = &watcher{name: "view", count: &count}
	)
	sub := Observe(&n, w, func(w *watcher) {
		*w.count++
	})
	n.Notify()
	sub.Close()
	n.Notify()
	runtime.KeepAlive(w)
	if count != 1 {
		t.Fatalf("expected 1 notification, got %d", count)
	}
}

func TestNotifierSubscribeKeepsCallback(t *testing.T) {
	var (
		n     Notifier
		count int
	)
	func() {
		w := &watcher{name: "host", count: &count}
		n.Subscribe(func() {
			*w.count++
		})
	}()
	for i := 0; i < 3; i++ {
		runtime.GC()
	}
	n.Notify()
	if count != 1 {
		t.Fatalf("subscribed callback should be kept until closed, got %d notifications", count)
	}
	if n.Len() != 1 {
		t.Fatalf("subscribed callback should not be pruned: %d observer(s)", n.Len())
	}
}
