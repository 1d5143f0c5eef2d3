// SPDX-License-Identifier: MIT

package ingest

import "sync"

// pathQueue is an unbounded FIFO of file paths shared by the walker and the
// workers. push never blocks; pop blocks until a path is available or the
// queue is closed. After close, pop drains what is left unless drop was
// called, which discards every pending path.
type pathQueue struct {
	mu     sync.Mutex
	cond   *sync.Cond
	items  []string
	head   int
	closed bool
}

func newPathQueue() *pathQueue {
	q := &pathQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *pathQueue) push(path string) {
	q.mu.Lock()
	if !q.closed {
		q.items = append(q.items, path)
	}
	q.mu.Unlock()
	q.cond.Signal()
}

// pop returns the next path, or false once the queue is closed and empty.
func (q *pathQueue) pop() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.head == len(q.items) && !q.closed {
		q.cond.Wait()
	}
	if q.head == len(q.items) {
		return "", false
	}
	path := q.items[q.head]
	q.items[q.head] = ""
	q.head++
	if q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}

	return path, true
}

// close ends the input; waiting workers drain the rest and exit.
func (q *pathQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}

// drop closes the queue and discards every pending path.
func (q *pathQueue) drop() {
	q.mu.Lock()
	q.closed = true
	q.items, q.head = nil, 0
	q.mu.Unlock()
	q.cond.Broadcast()
}
