package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/syncq/go-syncq/pkg/settings"
	"github.com/syncq/go-syncq/pkg/utils"
)

// Encoder converts an item to its Kafka message payload.
type Encoder[T any] func(item T) ([]byte, error)

// KeyFunc derives the partition key for an item.
type KeyFunc[T any] func(item T) string

// Kafka delivers batches to a Kafka topic through a synchronous producer.
// Each item is published as one message, JSON-encoded by default.
type Kafka[T any] struct {
	producer sarama.SyncProducer
	topic    string
	encode   Encoder[T]
	key      KeyFunc[T]
}

var _ Sink[any] = (*Kafka[any])(nil)

// NewKafka creates a Kafka sink with a producer built from the given settings.
func NewKafka[T any](config settings.Kafka) (*Kafka[T], error) {
	producer, err := sarama.NewSyncProducer(config.Brokers, newSaramaConfig(config))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}

	return NewKafkaWithProducer[T](producer, config.Topic), nil
}

// NewKafkaWithProducer creates a Kafka sink on top of an existing producer.
func NewKafkaWithProducer[T any](producer sarama.SyncProducer, topic string) *Kafka[T] {
	return &Kafka[T]{
		producer: producer,
		topic:    topic,
		encode: func(item T) ([]byte, error) {
			return json.Marshal(item)
		},
	}
}

// SetEncoder replaces the default JSON encoder. Call it before first use.
func (k *Kafka[T]) SetEncoder(encode Encoder[T]) {
	k.encode = encode
}

// SetKeyFunc sets the partition key function. Without one, messages are
// published unkeyed. Call it before first use.
func (k *Kafka[T]) SetKeyFunc(key KeyFunc[T]) {
	k.key = key
}

// Consume publishes the batch in a single producer call.
// The producer API is not context aware, so cancellation is only
// checked before publishing.
func (k *Kafka[T]) Consume(ctx context.Context, batch []T) error {
	if len(batch) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	messages := make([]*sarama.ProducerMessage, 0, len(batch))
	for _, item := range batch {
		value, err := k.encode(item)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}

		message := &sarama.ProducerMessage{
			Topic: k.topic,
			Value: sarama.ByteEncoder(value),
		}
		if k.key != nil {
			message.Key = sarama.StringEncoder(k.key(item))
		}

		messages = append(messages, message)
	}

	if err := k.producer.SendMessages(messages); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}

// Close shuts down the underlying producer.
func (k *Kafka[T]) Close() error {
	return k.producer.Close()
}

func newSaramaConfig(config settings.Kafka) *sarama.Config {
	saramaConfig := sarama.NewConfig()

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Timeout = utils.ToDuration(config.Timeout)
	saramaConfig.Producer.MaxMessageBytes = config.MaxMessageBytes
	saramaConfig.Producer.Flush.Frequency = utils.ToDurationMs(config.FlushFrequency)
	saramaConfig.Producer.Flush.Bytes = config.FlushBytes
	saramaConfig.Producer.Retry.Max = config.MaxRetries
	saramaConfig.Producer.Retry.Backoff = utils.ToDurationMs(config.RetryBackoff)
	saramaConfig.Consumer.MaxProcessingTime = utils.ToDurationMs(config.MaxProcessingTime)
	saramaConfig.Net.DialTimeout = utils.ToDuration(config.Timeout)

	return saramaConfig
}
