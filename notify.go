package charts

import (
	"weak"
)

// Subscription is returned when subscribing to the invalidation of a chart.
// Closing it is only needed to stop notifications early: a chart never keeps
// an observer alive.
type Subscription struct {
	notifier *Notifier
	id       int
}

// Close removes the subscription. It can be called more than once and after
// the chart has been dropped.
func (s *Subscription) Close() error {
	if s == nil || s.notifier == nil {
		return nil
	}
	s.notifier.remove(s.id)
	s.notifier = nil
	return nil
}

type observer struct {
	id     int
	notify func() bool
}

// Notifier keeps the list of callbacks to run when a chart is invalidated.
// Its zero value is ready to use.
type Notifier struct {
	next      int
	observers []observer
}

// Subscribe registers fn. fn is kept until the subscription is closed.
func (n *Notifier) Subscribe(fn func()) *Subscription {
	return n.add(func() bool {
		fn()
		return true
	})
}

// Observe registers fn for target without keeping target alive. Once target
// has been collected, fn is not called anymore and is dropped on the next
// notification. fn should not capture target itself.
func Observe[T any](n *Notifier, target *T, fn func(*T)) *Subscription {
	ptr := weak.Make(target)
	return n.add(func() bool {
		t := ptr.Value()
		if t == nil {
			return false
		}
		fn(t)
		return true
	})
}

// Notify calls every live observer in subscription order.
func (n *Notifier) Notify() {
	if len(n.observers) == 0 {
		return
	}
	list := make([]observer, len(n.observers))
	copy(list, n.observers)

	var dead []int
	for _, o := range list {
		if !n.has(o.id) {
			continue
		}
		if !o.notify() {
			dead = append(dead, o.id)
		}
	}
	for _, id := range dead {
		n.remove(id)
	}
}

// Len gives the number of registered observers, dead ones included until
// the next notification.
func (n *Notifier) Len() int {
	return len(n.observers)
}

func (n *Notifier) add(fn func() bool) *Subscription {
	n.next++
	n.observers = append(n.observers, observer{
		id:     n.next,
		notify: fn,
	})
	return &Subscription{
		notifier: n,
		id:       n.next,
	}
}

func (n *Notifier) has(id int) bool {
	for i := range n.observers {
		if n.observers[i].id == id {
			return true
		}
	}
	return false
}

func (n *Notifier) remove(id int) {
	for i := range n.observers {
		if n.observers[i].id == id {
			n.observers = append(n.observers[:i], n.observers[i+1:]...)
			return
		}
	}
}
