package mainloop

import (
	"container/heap"
	"reflect"
	"sync"
	"time"
)

// Watch is a readiness registration returned by AddWatch
type Watch struct {
	ready   <-chan struct{}
	fn      func()
	removed bool
}

// Loop multiplexes readiness watches, timers and cross-goroutine work onto
// a single goroutine. Every callback runs on the goroutine calling Iteration
type Loop struct {
	clock Clock

	watches []*Watch
	timers  timerHeap
	seq     uint64

	wake chan struct{}

	mu      sync.Mutex
	invoked []func()

	quit bool
}

// Option configures a Loop
type Option func(*Loop)

// WithClock replaces the system clock, used by tests to drive timers
func WithClock(c Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// New creates an empty loop
func New(opts ...Option) *Loop {
	l := &Loop{
		clock: SystemClock{},
		wake:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Now returns the loop's clock reading
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// AddWatch calls fn on the loop whenever ready is signalled
// The channel is not drained by the loop beyond the single receive that
// selected it
func (l *Loop) AddWatch(ready <-chan struct{}, fn func()) *Watch {
	w := &Watch{ready: ready, fn: fn}
	l.watches = append(l.watches, w)
	return w
}

// RemoveWatch unregisters w, safe to call from inside its own callback
func (l *Loop) RemoveWatch(w *Watch) {
	if w == nil || w.removed {
		return
	}
	w.removed = true
	kept := l.watches[:0]
	for _, x := range l.watches {
		if x != w {
			kept = append(kept, x)
		}
	}
	l.watches = kept
}

// AddTimeout schedules fn after d; fn returning true reschedules it d later
// Timers due at the same instant fire in registration order
func (l *Loop) AddTimeout(d time.Duration, fn func() bool) *Timer {
	l.seq++
	t := &Timer{
		due:      l.clock.Now().Add(d),
		seq:      l.seq,
		interval: d,
		fn:       fn,
	}
	heap.Push(&l.timers, t)
	return t
}

// AddOneShot schedules fn to run once after d
func (l *Loop) AddOneShot(d time.Duration, fn func()) *Timer {
	return l.AddTimeout(d, func() bool {
		fn()
		return false
	})
}

// RemoveTimeout cancels t. A timer already popped for the current batch is
// skipped, and a repeating timer removed from its own callback is not
// rescheduled
func (l *Loop) RemoveTimeout(t *Timer) {
	if t == nil {
		return
	}
	t.cancel = true
	if t.index >= 0 {
		heap.Remove(&l.timers, t.index)
	}
}

// Wakeup interrupts a blocking Iteration, safe from any goroutine
func (l *Loop) Wakeup() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Invoke queues fn to run on the loop goroutine, safe from any goroutine
func (l *Loop) Invoke(fn func()) {
	l.mu.Lock()
	l.invoked = append(l.invoked, fn)
	l.mu.Unlock()
	l.Wakeup()
}

// Iteration processes one ready batch: queued invocations and due timers if
// any, otherwise the first source to become ready. With wait false it never
// blocks. Reports whether any callback ran
func (l *Loop) Iteration(wait bool) bool {
	if l.runInvoked() || l.fireDue() {
		return true
	}

	cases := make([]reflect.SelectCase, 0, len(l.watches)+2)
	watches := make([]*Watch, 0, len(l.watches))
	for _, w := range l.watches {
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(w.ready)})
		watches = append(watches, w)
	}
	wakeIdx := len(cases)
	cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(l.wake)})

	timerIdx := -1
	if !wait {
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectDefault})
	} else if next := l.timers.peek(); next != nil {
		timer := time.NewTimer(next.due.Sub(l.clock.Now()))
		defer timer.Stop()
		timerIdx = len(cases)
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(timer.C)})
	}

	chosen, _, _ := reflect.Select(cases)
	switch {
	case chosen < wakeIdx:
		w := watches[chosen]
		if !w.removed {
			w.fn()
		}
		return true
	case chosen == wakeIdx:
		l.runInvoked()
		return true
	case chosen == timerIdx:
		return l.fireDue()
	}
	return false
}

// runInvoked drains the Invoke queue
func (l *Loop) runInvoked() bool {
	l.mu.Lock()
	fns := l.invoked
	l.invoked = nil
	l.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// fireDue runs every timer that is due, rescheduling repeating ones
// A repeating timer is pushed back only after its callback returns, so a
// nested Iteration inside the callback never fires it again
func (l *Loop) fireDue() bool {
	now := l.clock.Now()
	due := l.timers.popDue(now)
	for _, t := range due {
		t.firing = true
	}
	for _, t := range due {
		if t.cancel {
			t.firing = false
			continue
		}
		again := t.fn()
		t.firing = false
		if again && !t.cancel {
			l.seq++
			t.seq = l.seq
			t.due = now.Add(t.interval)
			heap.Push(&l.timers, t)
		}
	}
	return len(due) > 0
}

// Run iterates until Quit is called
func (l *Loop) Run() {
	l.quit = false
	for !l.quit {
		l.Iteration(true)
	}
}

// Quit makes Run return after the current iteration
func (l *Loop) Quit() {
	l.quit = true
	l.Wakeup()
}
