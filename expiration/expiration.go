// This file defines the time-ordered queue of pending expirations.

package expiration

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"k8s.io/utils/clock"
)

/*
Queue keeps every pending deadline of a cache in time order.

Each deadline belongs to one cache key. The queue answers one question cheaply:
"which key is due next, and when?". It never scans all pending deadlines.

HOW IT IS BUILT:
----------------
- A slot arena holds the deadlines. Freed slots are reused.
- Every slot carries a generation counter that is bumped on release,
  so a Handle to a fired or cancelled deadline can never match a reused slot.
- A binary min-heap of slot indices orders deadlines by (deadline, seq).
  seq is the insertion counter, so equal deadlines fire in insertion order.

A Queue is not safe for concurrent use. Callers that share it between
goroutines must guard it with a mutex and use PollExpiredLocked.
*/
type Queue struct {
	clock   clock.Clock
	pending pending
	free    []uint32
	seq     uint64

	// changed receives a signal whenever the head of the queue moves earlier
	// or is removed. Buffered with capacity one so signalling never blocks.
	changed chan struct{}
}

// Handle identifies one pending deadline. The zero Handle refers to nothing.
type Handle struct {
	slot uint32
	gen  uint32
}

// IsZero reports whether h was never returned by Schedule.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// NewQueue creates an empty queue reading time from clk.
// A nil clk means the wall clock.
func NewQueue(clk clock.Clock) *Queue {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Queue{
		clock:   clk,
		changed: make(chan struct{}, 1),
	}
}

// Schedule registers key to become due at now + ttl.
func (q *Queue) Schedule(key string, ttl time.Duration) Handle {
	return q.ScheduleAt(key, q.clock.Now().Add(ttl))
}

// ScheduleAt registers key to become due at the absolute time deadline.
func (q *Queue) ScheduleAt(key string, deadline time.Time) Handle {
	s := q.alloc()

	q.seq++
	sl := &q.pending.slots[s]
	sl.key = key
	sl.deadline = deadline
	sl.seq = q.seq

	heap.Push(&q.pending, s)

	// A new head means a sleeping poller may be waiting for a later deadline.
	if sl.index == 0 {
		q.signal()
	}

	return Handle{slot: s, gen: sl.gen}
}

/*
Cancel removes the deadline identified by h before it fires.

It returns false, and does nothing, when h no longer refers to a pending
deadline: it already fired, was already cancelled, or is the zero Handle.
*/
func (q *Queue) Cancel(h Handle) bool {
	sl, ok := q.lookup(h)
	if !ok {
		return false
	}

	wasHead := sl.index == 0
	heap.Remove(&q.pending, sl.index)
	q.release(h.slot)

	if wasHead {
		q.signal()
	}
	return true
}

// Deadline returns when the deadline identified by h becomes due.
func (q *Queue) Deadline(h Handle) (time.Time, bool) {
	sl, ok := q.lookup(h)
	if !ok {
		return time.Time{}, false
	}
	return sl.deadline, true
}

// Next returns the earliest pending deadline.
func (q *Queue) Next() (time.Time, bool) {
	if q.pending.Len() == 0 {
		return time.Time{}, false
	}
	return q.pending.slots[q.pending.order[0]].deadline, true
}

// Len returns the number of pending deadlines.
func (q *Queue) Len() int {
	return q.pending.Len()
}

// Now returns the current time of the queue's clock.
func (q *Queue) Now() time.Time {
	return q.clock.Now()
}

/*
PopExpired removes and returns the key of the earliest deadline,
but only if that deadline is already due (now >= deadline).

It never blocks.
*/
func (q *Queue) PopExpired() (string, bool) {
	if q.pending.Len() == 0 {
		return "", false
	}

	s := q.pending.order[0]
	if q.pending.slots[s].deadline.After(q.clock.Now()) {
		return "", false
	}

	heap.Pop(&q.pending)
	key := q.pending.slots[s].key
	q.release(s)

	return key, true
}

/*
PollExpired blocks until the next key is due and returns it.

RESULTS:
--------
- (key, true, nil)  : the earliest deadline elapsed; it is no longer pending
- ("", false, nil)  : the queue is empty, there is nothing more to produce
- ("", false, err)  : ctx ended first; pending deadlines are left untouched

The caller sleeps on a timer for the earliest deadline. It is also woken
when the head of the queue changes, so a cancellation that empties the queue
ends the wait immediately.
*/
func (q *Queue) PollExpired(ctx context.Context) (string, bool, error) {
	return q.PollExpiredLocked(ctx, nopLocker{})
}

/*
PollExpiredLocked is PollExpired for a queue shared behind mu.

mu must be held on entry and is held again on return. It is released only
while sleeping, so writers are never blocked by a waiting poller.
*/
func (q *Queue) PollExpiredLocked(ctx context.Context, mu sync.Locker) (string, bool, error) {
	for {
		if key, ok := q.PopExpired(); ok {
			return key, true, nil
		}

		next, ok := q.Next()
		if !ok {
			return "", false, nil
		}

		wait := next.Sub(q.clock.Now())

		mu.Unlock()
		err := q.sleep(ctx, wait)
		mu.Lock()

		if err != nil {
			return "", false, err
		}
	}
}

// Reset drops every pending deadline. Outstanding handles become stale.
func (q *Queue) Reset() {
	for q.pending.Len() > 0 {
		q.release(heap.Pop(&q.pending).(uint32))
	}
	q.signal()
}

func (q *Queue) sleep(ctx context.Context, d time.Duration) error {
	t := q.clock.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C():
		return nil
	case <-q.changed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) signal() {
	select {
	case q.changed <- struct{}{}:
	default:
	}
}

func (q *Queue) lookup(h Handle) (*slot, bool) {
	if h.IsZero() || int(h.slot) >= len(q.pending.slots) {
		return nil, false
	}
	sl := &q.pending.slots[h.slot]
	if sl.gen != h.gen || sl.index < 0 {
		return nil, false
	}
	return sl, true
}

func (q *Queue) alloc() uint32 {
	if n := len(q.free); n > 0 {
		s := q.free[n-1]
		q.free = q.free[:n-1]
		return s
	}
	q.pending.slots = append(q.pending.slots, slot{gen: 1, index: -1})
	return uint32(len(q.pending.slots) - 1)
}

func (q *Queue) release(s uint32) {
	sl := &q.pending.slots[s]
	sl.key = ""
	sl.index = -1
	sl.gen++
	if sl.gen == 0 {
		sl.gen = 1
	}
	q.free = append(q.free, s)
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}
