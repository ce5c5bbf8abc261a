// Package sched defers small state mutations onto the owner's event queue.
//
// Tasks are fire-once and cannot be canceled. A task scheduled before a newer
// state change still runs when it fires and may overwrite that change.
package sched

import (
	"sort"
	"time"
)

// Scheduler runs task after d on the caller's single event queue.
type Scheduler interface {
	After(d time.Duration, task func())
}

// Task is a pending deferred mutation.
type Task struct {
	Delay time.Duration
	Run   func()

	seq int
}

// Queue collects scheduled tasks until the event loop owner picks them up.
//
// Queue is not safe for concurrent use; it belongs to the single UI thread.
type Queue struct {
	pending []Task
	seq     int
}

func NewQueue() *Queue { return &Queue{} }

func (q *Queue) After(d time.Duration, task func()) {
	if task == nil {
		return
	}
	if d < 0 {
		d = 0
	}
	q.seq++
	q.pending = append(q.pending, Task{Delay: d, Run: task, seq: q.seq})
}

func (q *Queue) Len() int { return len(q.pending) }

// Drain hands every pending task to the caller (e.g. to turn each into a timer
// message) and empties the queue.
func (q *Queue) Drain() []Task {
	out := q.pending
	q.pending = nil
	return out
}

// RunDue runs, in due order, the tasks whose delay is <= elapsed, and keeps the rest
// with their delay reduced by elapsed. Tasks scheduled by a running task are queued
// for a later call.
func (q *Queue) RunDue(elapsed time.Duration) int {
	due, rest := q.split(elapsed)
	q.pending = rest
	for _, t := range due {
		t.Run()
	}
	return len(due)
}

// Flush runs everything currently pending (and anything those tasks schedule) in
// due order, as if the clock advanced until the queue is empty.
func (q *Queue) Flush() int {
	n := 0
	for len(q.pending) > 0 {
		sortTasks(q.pending)
		next := q.pending[0].Delay
		n += q.RunDue(next)
	}
	return n
}

func (q *Queue) split(elapsed time.Duration) (due []Task, rest []Task) {
	sortTasks(q.pending)
	for _, t := range q.pending {
		if t.Delay <= elapsed {
			due = append(due, t)
			continue
		}
		t.Delay -= elapsed
		rest = append(rest, t)
	}
	return due, rest
}

func sortTasks(ts []Task) {
	sort.SliceStable(ts, func(i, j int) bool {
		if ts[i].Delay != ts[j].Delay {
			return ts[i].Delay < ts[j].Delay
		}
		return ts[i].seq < ts[j].seq
	})
}

// Immediate runs every task synchronously, ignoring the delay.
type Immediate struct{}

func (Immediate) After(_ time.Duration, task func()) {
	if task != nil {
		task()
	}
}
