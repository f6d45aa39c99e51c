// SPDX-License-Identifier: Unlicense OR MIT

// Package anim drives periodic widget updates from a background
// goroutine while keeping every state change on the goroutine that
// owns the window.
package anim

import "sync"

// Queue is a work queue owned by the UI goroutine. Any goroutine may
// Post to it; only the owner calls Drain, typically once per frame.
type Queue struct {
	wakeup func()

	mu      sync.Mutex
	pending []func()
	// spare is the backing array of the previous drain, recycled to
	// avoid allocation.
	spare []func()
}

// NewQueue returns a queue that calls wakeup after every Post. Passing
// the window's Invalidate method makes the next frame drain the queue.
func NewQueue(wakeup func()) *Queue {
	return &Queue{wakeup: wakeup}
}

// Post schedules f to run during the next Drain. It never blocks on the
// owner goroutine.
func (q *Queue) Post(f func()) {
	q.mu.Lock()
	q.pending = append(q.pending, f)
	q.mu.Unlock()
	if q.wakeup != nil {
		q.wakeup()
	}
}

// Drain runs the tasks posted before the call, in order, and returns
// how many ran. Tasks posted while draining wait for the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	tasks := q.pending
	q.pending = q.spare[:0]
	q.spare = nil
	q.mu.Unlock()
	for i, f := range tasks {
		f()
		tasks[i] = nil
	}
	q.mu.Lock()
	q.spare = tasks[:0]
	q.mu.Unlock()
	return len(tasks)
}

// Len returns the number of tasks waiting for Drain.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
