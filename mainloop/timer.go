package mainloop

import (
	"container/heap"
	"time"
)

// Timer is a scheduled callback returned by AddTimeout
type Timer struct {
	due      time.Time
	seq      uint64
	interval time.Duration
	fn       func() bool
	index    int // heap position, -1 once removed
	firing   bool
	cancel   bool
}

// Due returns the time the timer fires next
func (t *Timer) Due() time.Time {
	return t.due
}

// Active reports whether the timer is still scheduled or running
func (t *Timer) Active() bool {
	return !t.cancel && (t.index >= 0 || t.firing)
}

// timerHeap orders timers by due time, then registration sequence
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

// peek returns the earliest timer without removing it
func (h timerHeap) peek() *Timer {
	if len(h) == 0 {
		return nil
	}
	return h[0]
}

// popDue removes and returns every timer due at or before now, in firing order
func (h *timerHeap) popDue(now time.Time) []*Timer {
	var due []*Timer
	for h.Len() > 0 && !(*h)[0].due.After(now) {
		due = append(due, heap.Pop(h).(*Timer))
	}
	return due
}
