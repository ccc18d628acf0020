package queue

// Stats is a point-in-time snapshot of queue counters. The fields are
// mutually consistent at snapshot time but may be stale by the time the
// caller inspects them.
type Stats struct {
	Size            int    // Items currently queued
	Capacity        int    // Maximum queued items, 0 when unbounded
	Enqueued        uint64 // Items accepted since creation
	Dequeued        uint64 // Items handed out since creation
	BlockedEnqueues int    // Callers currently parked in Enqueue
	BlockedDequeues int    // Callers currently parked in Dequeue
	Closed          bool
}
