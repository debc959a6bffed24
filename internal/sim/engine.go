package sim

import (
	"container/heap"
	"time"
)

// Engine is a single-goroutine discrete-event scheduler over virtual time.
// Work units are scheduled as callbacks at a future instant and executed in
// timeline order; ties run in scheduling order. The clock only advances when
// Run pops the next event, so everything inside a callback observes one
// consistent "now".
type Engine struct {
	now time.Time
	seq uint64
	pq  eventHeap
}

func NewEngine() *Engine {
	e := &Engine{now: time.Unix(0, 0)}
	heap.Init(&e.pq)
	return e
}

// Now returns the current virtual time.
func (e *Engine) Now() time.Time { return e.now }

// Schedule queues fn to run after delay of virtual time. Callbacks may
// schedule further work; negative delays run at the current instant.
func (e *Engine) Schedule(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	e.seq++
	heap.Push(&e.pq, &event{at: e.now.Add(delay), seq: e.seq, fn: fn})
}

// Run drains the event queue to quiescence, advancing the clock to each
// event's instant before invoking it.
func (e *Engine) Run() {
	for e.pq.Len() > 0 {
		ev := heap.Pop(&e.pq).(*event)
		e.now = ev.at
		ev.fn()
	}
}

type event struct {
	at  time.Time
	seq uint64
	fn  func()
}

type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].at.Equal(h[j].at) {
		return h[i].seq < h[j].seq
	}
	return h[i].at.Before(h[j].at)
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) { *h = append(*h, x.(*event)) }

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
