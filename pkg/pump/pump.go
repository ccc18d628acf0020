package pump

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/syncq/go-syncq/pkg/logger"
	"github.com/syncq/go-syncq/pkg/queue"
	"github.com/syncq/go-syncq/pkg/sink"
)

// Pump drains a queue into a sink with a pool of batching workers.
//
// Each worker blocks on Dequeue for the first item of a batch, then keeps
// filling the batch from the queue until it reaches BatchSize or the
// FlushInterval elapses, and hands the batch to the sink. Items dequeued
// by a worker are always handed to the sink, even when the run context is
// cancelled mid-batch.
type Pump[T any] struct {
	id      string
	source  Source[T]
	sink    sink.Sink[T]
	config  Config
	limiter *rate.Limiter
	log     *logger.Logger

	batches    atomic.Uint64
	items      atomic.Uint64
	sinkErrors atomic.Uint64
}

// Stats is a snapshot of the pump counters.
type Stats struct {
	Batches    uint64 // successful sink deliveries
	Items      uint64 // items in successful deliveries
	SinkErrors uint64 // failed sink deliveries
}

// New creates a pump draining source into s.
func New[T any](source Source[T], s sink.Sink[T], config Config) (*Pump[T], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	if s == nil {
		return nil, ErrNilSink
	}

	p := &Pump[T]{
		id:     uuid.NewString(),
		source: source,
		sink:   s,
		config: config,
	}
	p.setDefaultConfig()

	if p.config.RateLimit > 0 {
		p.limiter = rate.NewLimiter(rate.Limit(p.config.RateLimit), p.config.Burst)
	}

	p.log = p.config.Logger.With(zap.String("pump_id", p.id))

	return p, nil
}

func (p *Pump[T]) setDefaultConfig() {
	if p.config.Workers <= 0 {
		p.config.Workers = defaultWorkers
	}

	if p.config.BatchSize <= 0 {
		p.config.BatchSize = defaultBatchSize
	}

	if p.config.FlushInterval <= 0 {
		p.config.FlushInterval = defaultFlushInterval
	}

	// WaitN fails outright when a batch exceeds the burst.
	if p.config.Burst < p.config.BatchSize {
		p.config.Burst = p.config.BatchSize
	}

	if p.config.Logger == nil {
		// Fallback to no-op logger
		p.config.Logger = logger.NewNop()
	}
}

// ID returns the pump instance identifier.
func (p *Pump[T]) ID() string {
	return p.id
}

// Run starts the workers and blocks until the queue is closed and fully
// drained, ctx is cancelled, or a sink delivery fails with StopOnError set.
// A clean drain returns nil.
func (p *Pump[T]) Run(ctx context.Context) error {
	p.log.Info("pump started",
		zap.Int("workers", p.config.Workers),
		zap.Int("batch_size", p.config.BatchSize),
		zap.Duration("flush_interval", p.config.FlushInterval),
		zap.Int("rate_limit", p.config.RateLimit),
	)

	group, groupCtx := errgroup.WithContext(ctx)
	for i := 0; i < p.config.Workers; i++ {
		worker := i
		group.Go(func() error {
			return p.drain(groupCtx, worker)
		})
	}

	if err := group.Wait(); err != nil {
		p.log.Error("pump stopped", zap.Error(err))
		return err
	}

	p.log.Info("pump drained",
		zap.Uint64("batches", p.batches.Load()),
		zap.Uint64("items", p.items.Load()),
		zap.Uint64("sink_errors", p.sinkErrors.Load()),
	)

	return nil
}

// Stats returns a snapshot of the pump counters.
func (p *Pump[T]) Stats() Stats {
	return Stats{
		Batches:    p.batches.Load(),
		Items:      p.items.Load(),
		SinkErrors: p.sinkErrors.Load(),
	}
}

func (p *Pump[T]) drain(ctx context.Context, worker int) error {
	log := p.log.With(zap.Int("worker", worker))

	for {
		first, err := p.source.Dequeue(ctx)
		if err != nil {
			if errors.Is(err, queue.ErrClosed) {
				return nil
			}
			return err
		}

		batch := p.fill(ctx, first)

		if err := p.deliver(ctx, log, batch); err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// fill grows the batch with items already in the queue, waiting at most
// FlushInterval for stragglers. It stops early when the queue is closed
// and drained or ctx is done; the caller picks that up on its next Dequeue.
func (p *Pump[T]) fill(ctx context.Context, first T) []T {
	batch := make([]T, 1, p.config.BatchSize)
	batch[0] = first

	if p.config.BatchSize == 1 {
		return batch
	}

	flushCtx, cancel := context.WithTimeout(ctx, p.config.FlushInterval)
	defer cancel()

	for len(batch) < p.config.BatchSize {
		item, err := p.source.Dequeue(flushCtx)
		if err != nil {
			break
		}
		batch = append(batch, item)
	}

	return batch
}

func (p *Pump[T]) deliver(ctx context.Context, log *logger.Logger, batch []T) error {
	if p.limiter != nil {
		if err := p.limiter.WaitN(ctx, len(batch)); err != nil {
			log.Debug("rate limit wait aborted", zap.Error(err))
		}
	}

	consumeCtx := ctx
	if ctx.Err() != nil {
		// The batch is already out of the queue. Hand it to the sink even
		// when the run context is cancelled so dequeued items are not lost.
		consumeCtx = context.WithoutCancel(ctx)
	}

	if err := p.sink.Consume(consumeCtx, batch); err != nil {
		p.sinkErrors.Add(1)
		log.Error("sink delivery failed", zap.Int("batch_size", len(batch)), zap.Error(err))

		if p.config.StopOnError {
			return err
		}
		return nil
	}

	p.batches.Add(1)
	p.items.Add(uint64(len(batch)))
	log.Debug("batch delivered", zap.Int("batch_size", len(batch)))

	return nil
}
