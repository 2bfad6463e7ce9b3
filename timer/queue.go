// Package timer provides one-shot delayed callbacks driven by the game tick.
//
// A Queue has no clock of its own: the owner advances it by the simulated
// time of each tick, and due callbacks run synchronously inside Advance on the
// caller's goroutine.
package timer

import (
	"container/heap"
	"time"
)

// Timer is the handle for one scheduled callback.
type Timer struct {
	due   time.Duration
	seq   uint64
	fn    func()
	fired bool
}

// Due reports the queue time at which the timer fires.
func (t *Timer) Due() time.Duration {
	if t == nil {
		return 0
	}
	return t.due
}

// Fired reports whether the callback has run.
func (t *Timer) Fired() bool {
	return t != nil && t.fired
}

// Queue holds pending one-shot timers ordered by due time.
type Queue struct {
	now     time.Duration
	seq     uint64
	pending timerHeap
}

func NewQueue() *Queue {
	return &Queue{}
}

// Schedule arms fn to run once delay from now. Timers cannot be cancelled.
func (q *Queue) Schedule(delay time.Duration, fn func()) *Timer {
	if fn == nil {
		panic("timer: nil callback")
	}
	if delay < 0 {
		delay = 0
	}
	q.seq++
	t := &Timer{due: q.now + delay, seq: q.seq, fn: fn}
	heap.Push(&q.pending, t)
	return t
}

// Advance moves the clock forward by dt and fires every timer that is due,
// earliest first and in scheduling order on ties. It returns the number of
// callbacks run. Timers armed by a callback wait for a later Advance.
func (q *Queue) Advance(dt time.Duration) int {
	if dt > 0 {
		q.now += dt
	}

	limit := q.seq
	var deferred []*Timer
	fired := 0
	for q.pending.Len() > 0 {
		next := q.pending[0]
		if next.due > q.now {
			break
		}
		heap.Pop(&q.pending)
		if next.seq > limit {
			deferred = append(deferred, next)
			continue
		}
		next.fired = true
		next.fn()
		fired++
	}
	for _, t := range deferred {
		heap.Push(&q.pending, t)
	}
	return fired
}

// Now returns the total time advanced so far.
func (q *Queue) Now() time.Duration {
	return q.now
}

// Len returns the number of timers that have not fired.
func (q *Queue) Len() int {
	return q.pending.Len()
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due != h[j].due {
		return h[i].due < h[j].due
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
