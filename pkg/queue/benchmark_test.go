package queue

import (
	"context"
	"sync"
	"testing"
)

// ===========================================================================
// Benchmark Configuration
// ===========================================================================

// queueBenchConfig holds benchmark test configuration.
type queueBenchConfig struct {
	name     string
	capacity int
}

// benchConfigs defines the capacities for benchmarking.
// Add more configurations as needed for comparison.
var benchConfigs = []queueBenchConfig{
	{"Small/Cap64", 64},
	{"Medium/Cap1K", 1024},
	{"Large/Cap64K", 64 * 1024},
}

// ===========================================================================
// Queue Factory Registry
// ===========================================================================

// queueFactory creates a Queue[int] with the given capacity.
type queueFactory func(capacity int) Queue[int]

// queueImplementations holds all registered queue implementations.
// Add new implementations here when they are created.
var queueImplementations = map[string]queueFactory{
	"Blocking": func(capacity int) Queue[int] {
		q, err := NewBlocking[int](capacity)
		if err != nil {
			panic(err)
		}
		return q
	},
}

// ===========================================================================
// Single-Threaded Benchmarks
// ===========================================================================

// BenchmarkEnqueue measures Enqueue performance.
func BenchmarkEnqueue(b *testing.B) {
	ctx := context.Background()
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(ctx, i)
					// Drain to avoid blocking on a full queue
					if i%cfg.capacity == cfg.capacity-1 {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Dequeue(ctx)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkDequeue measures Dequeue performance.
func BenchmarkDequeue(b *testing.B) {
	ctx := context.Background()
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				for i := 0; i < cfg.capacity; i++ {
					q.Enqueue(ctx, i)
				}

				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Dequeue(ctx)
					// Refill before the queue runs dry
					if i%cfg.capacity == cfg.capacity-1 {
						b.StopTimer()
						for j := 0; j < cfg.capacity; j++ {
							q.Enqueue(ctx, j)
						}
						b.StartTimer()
					}
				}
			})
		}
	}
}

// BenchmarkEnqueueDequeue measures roundtrip Enqueue+Dequeue.
func BenchmarkEnqueueDequeue(b *testing.B) {
	ctx := context.Background()
	for implName, factory := range queueImplementations {
		for _, cfg := range benchConfigs {
			name := implName + "/" + cfg.name
			b.Run(name, func(b *testing.B) {
				q := factory(cfg.capacity)
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					q.Enqueue(ctx, i)
					q.Dequeue(ctx)
				}
			})
		}
	}
}

// BenchmarkTryEnqueueTryDequeue measures the non-blocking roundtrip.
func BenchmarkTryEnqueueTryDequeue(b *testing.B) {
	q, err := NewBlocking[int](1024)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		q.TryEnqueue(i)
		q.TryDequeue()
	}
}

// ===========================================================================
// Concurrent Benchmarks
// ===========================================================================

// concurrencyConfigs defines producer/consumer count combinations.
var concurrencyConfigs = []struct {
	name      string
	producers int
	consumers int
}{
	{"1P1C", 1, 1},
	{"2P2C", 2, 2},
	{"4P4C", 4, 4},
	{"8P8C", 8, 8},
}

// BenchmarkConcurrent_Enqueue measures concurrent Enqueue throughput
// against a single draining consumer.
func BenchmarkConcurrent_Enqueue(b *testing.B) {
	const capacity = 1024
	const itemsPerProducer = 10000
	ctx := context.Background()

	for implName, factory := range queueImplementations {
		for _, cc := range concurrencyConfigs {
			name := implName + "/" + cc.name
			b.Run(name, func(b *testing.B) {
				for n := 0; n < b.N; n++ {
					b.StopTimer()
					q := factory(capacity)

					var drain sync.WaitGroup
					drain.Add(1)
					go func() {
						defer drain.Done()
						for {
							if _, err := q.Dequeue(ctx); err != nil {
								return
							}
						}
					}()

					var wg sync.WaitGroup
					wg.Add(cc.producers)
					b.StartTimer()

					for p := 0; p < cc.producers; p++ {
						go func(id int) {
							defer wg.Done()
							for i := 0; i < itemsPerProducer; i++ {
								q.Enqueue(ctx, id*itemsPerProducer+i)
							}
						}(p)
					}

					wg.Wait()
					b.StopTimer()
					q.Close()
					drain.Wait()
					b.StartTimer()
				}
			})
		}
	}
}

// BenchmarkConcurrent_EnqueueDequeue measures full pipeline throughput.
func BenchmarkConcurrent_EnqueueDequeue(b *testing.B) {
	const capacity = 1024
	const opsPerProducer = 10000
	ctx := context.Background()

	for implName, factory := range queueImplementations {
		for _, cc := range concurrencyConfigs {
			name := implName + "/" + cc.name
			b.Run(name, func(b *testing.B) {
				for n := 0; n < b.N; n++ {
					b.StopTimer()
					q := factory(capacity)
					b.StartTimer()

					var producers sync.WaitGroup
					producers.Add(cc.producers)
					for p := 0; p < cc.producers; p++ {
						go func(id int) {
							defer producers.Done()
							for i := 0; i < opsPerProducer; i++ {
								q.Enqueue(ctx, id*opsPerProducer+i)
							}
						}(p)
					}

					var consumers sync.WaitGroup
					consumers.Add(cc.consumers)
					for c := 0; c < cc.consumers; c++ {
						go func() {
							defer consumers.Done()
							for {
								if _, err := q.Dequeue(ctx); err != nil {
									return
								}
							}
						}()
					}

					producers.Wait()
					q.Close()
					consumers.Wait()
				}
			})
		}
	}
}

// ===========================================================================
// Throughput Benchmark (items/second)
// ===========================================================================

// BenchmarkThroughput measures maximum single-threaded throughput.
func BenchmarkThroughput(b *testing.B) {
	const capacity = 1024
	ctx := context.Background()

	for implName, factory := range queueImplementations {
		b.Run(implName, func(b *testing.B) {
			q := factory(capacity)
			b.ResetTimer()
			b.ReportAllocs()

			ops := 0
			for i := 0; i < b.N; i++ {
				for j := 0; j < capacity; j++ {
					q.Enqueue(ctx, j)
				}
				for j := 0; j < capacity; j++ {
					q.Dequeue(ctx)
				}
				ops += capacity * 2
			}
			b.ReportMetric(float64(ops)/b.Elapsed().Seconds(), "ops/s")
		})
	}
}
