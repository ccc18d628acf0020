package sink

import "context"

// Sink is the interface that must be implemented by consumers of drained
// queue items. It is responsible for delivering a batch to a backing system.
// Implementations must be safe for concurrent use.
type Sink[T any] interface {
	// Consume delivers a batch of items.
	// Returns an error if delivery fails.
	Consume(ctx context.Context, batch []T) error
}

// Func adapts a plain function to the Sink interface.
type Func[T any] func(ctx context.Context, batch []T) error

// Consume implements Sink.
func (f Func[T]) Consume(ctx context.Context, batch []T) error {
	return f(ctx, batch)
}
