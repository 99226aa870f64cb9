// Package timeline runs deferred callbacks against a virtual clock that
// the owner advances from its frame loop.
package timeline

import (
	"container/heap"
	"time"
)

// Timeline is a single-threaded task queue keyed by virtual time. It is
// not safe for concurrent use; advance it from the goroutine that
// schedules on it.
type Timeline struct {
	now   time.Duration
	seq   uint64
	tasks taskQueue
}

type task struct {
	due time.Duration
	seq uint64
	fn  func()
}

// New returns an empty timeline at time zero.
func New() *Timeline {
	return &Timeline{}
}

// Now is the current virtual time.
func (t *Timeline) Now() time.Duration {
	return t.now
}

// After schedules fn to run d after the current virtual time. Negative
// delays run at the current time.
func (t *Timeline) After(d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	t.seq++
	heap.Push(&t.tasks, task{due: t.now + d, seq: t.seq, fn: fn})
}

// Advance moves the clock forward by dt and runs every task that falls
// due, in due order and then scheduling order. Tasks scheduled by a
// running task run in the same call when they fall inside the window.
// It returns the number of tasks run.
func (t *Timeline) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt
	ran := 0
	for len(t.tasks) > 0 && t.tasks[0].due <= target {
		next := heap.Pop(&t.tasks).(task)
		t.now = next.due
		next.fn()
		ran++
	}
	t.now = target
	return ran
}

// Pending is the number of scheduled tasks that have not run.
func (t *Timeline) Pending() int {
	return len(t.tasks)
}

// NextDue reports when the earliest pending task is due.
func (t *Timeline) NextDue() (time.Duration, bool) {
	if len(t.tasks) == 0 {
		return 0, false
	}
	return t.tasks[0].due, true
}

type taskQueue []task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	old[n-1] = task{}
	*q = old[:n-1]
	return it
}
