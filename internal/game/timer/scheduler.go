package timer

import (
	"container/heap"
	"time"
)

// Clock is the simulation clock. Time only moves forward via Advance.
type Clock struct {
	now time.Duration
}

// Now returns the current simulation time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by dt. Negative dt is ignored.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
}

// Scheduler runs one-shot callbacks at simulation time.
// Replaces time.AfterFunc: callbacks fire from Run on the simulation goroutine,
// ordered by due time, ties broken by scheduling order.
type Scheduler struct {
	clock *Clock
	queue taskQueue
	seq   uint64
}

// NewScheduler creates a scheduler bound to clock.
func NewScheduler(clock *Clock) *Scheduler {
	return &Scheduler{clock: clock}
}

// After schedules fn to run once delay has elapsed from now.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	heap.Push(&s.queue, &task{due: s.clock.Now() + delay, seq: s.seq, fn: fn})
}

// Run fires every callback due at or before the current clock time.
// Callbacks scheduled by callbacks with zero delay fire in the same Run.
func (s *Scheduler) Run() int {
	fired := 0
	now := s.clock.Now()
	for s.queue.Len() > 0 && s.queue[0].due <= now {
		t := heap.Pop(&s.queue).(*task)
		t.fn()
		fired++
	}
	return fired
}

// NextDue returns the due time of the earliest pending callback.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	if s.queue.Len() == 0 {
		return 0, false
	}
	return s.queue[0].due, true
}

// Pending returns the number of callbacks not yet fired.
func (s *Scheduler) Pending() int {
	return s.queue.Len()
}

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
