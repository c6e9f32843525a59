// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/tick/queue.go
// Summary: Cooperative next-tick task queue used by hosts.
// Usage: The host loop calls Tick once per iteration; Schedule defers work to
// the next call so it never runs inside the notification that scheduled it.

package tick

import "sync"

// Queue holds tasks until the next Tick.
type Queue struct {
	mu      sync.Mutex
	pending []func()
	ticks   uint64
}

// Schedule defers task to the next Tick. Nil tasks are ignored.
func (q *Queue) Schedule(task func()) {
	if task == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, task)
	q.mu.Unlock()
}

// Tick runs the tasks queued before the call, in order, and returns how many
// ran. Tasks scheduled while they run wait for the following Tick.
func (q *Queue) Tick() int {
	q.mu.Lock()
	batch := q.pending
	q.pending = nil
	q.ticks++
	q.mu.Unlock()

	for _, task := range batch {
		task()
	}
	return len(batch)
}

// Len returns the number of tasks waiting.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Count returns how many ticks have run.
func (q *Queue) Count() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ticks
}
