package queue

import (
	"container/list"
	"context"
	"sync"
)

// waiter is a single goroutine parked on a waitList. Its ready channel is
// closed exactly once, when the waiter is picked to wake up.
type waiter struct {
	ready chan struct{}
}

// waitList tracks goroutines blocked on one queue condition in arrival order.
// Wakeups are handed out front-first, so earlier arrivals are offered the
// condition first. All methods must be called with the owning mutex held.
type waitList struct {
	waiters list.List
}

// len returns the number of parked waiters.
func (wl *waitList) len() int {
	return wl.waiters.Len()
}

// wait parks the caller until notified or ctx is done. The mutex must be held
// on entry and is reacquired before wait returns, whatever the outcome.
//
// front re-enters the caller at the head of the line. It is used by a woken
// caller whose condition was stolen before it could reacquire the mutex, so
// the caller does not lose its position to later arrivals.
//
// A wakeup that loses the race against cancellation is passed on to the next
// waiter in line; a pending notify is never dropped.
func (wl *waitList) wait(ctx context.Context, mu *sync.Mutex, front bool) error {
	w := &waiter{ready: make(chan struct{})}
	var elem *list.Element
	if front {
		elem = wl.waiters.PushFront(w)
	} else {
		elem = wl.waiters.PushBack(w)
	}
	mu.Unlock()

	select {
	case <-ctx.Done():
		mu.Lock()
		select {
		case <-w.ready:
			// Woken and cancelled concurrently. Relay the wakeup and
			// report cancellation; queue state is untouched either way.
			wl.notify()
		default:
			wl.waiters.Remove(elem)
		}
		return ctx.Err()
	case <-w.ready:
		mu.Lock()
		return nil
	}
}

// notify wakes the waiter at the front of the list, if any.
func (wl *waitList) notify() {
	if elem := wl.waiters.Front(); elem != nil {
		wl.waiters.Remove(elem)
		close(elem.Value.(*waiter).ready)
	}
}

// notifyAll wakes every parked waiter.
func (wl *waitList) notifyAll() {
	for elem := wl.waiters.Front(); elem != nil; elem = wl.waiters.Front() {
		wl.waiters.Remove(elem)
		close(elem.Value.(*waiter).ready)
	}
}
