package sink

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syncq/go-syncq/pkg/database/mongodb"
)

// Inserter is the subset of collection operations the sink needs.
// It is satisfied by *mongo.Collection.
type Inserter interface {
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
}

var _ Inserter = (*mongo.Collection)(nil)

// Mongo delivers batches to a MongoDB collection.
// Each item is inserted as one BSON document.
type Mongo[T any] struct {
	collection Inserter
}

var _ Sink[any] = (*Mongo[any])(nil)

// NewMongo creates a MongoDB sink writing to the named collection.
func NewMongo[T any](engine *mongodb.MongoEngine, collection string) *Mongo[T] {
	return NewMongoWithInserter[T](engine.Collection(collection))
}

// NewMongoWithInserter creates a MongoDB sink on top of an existing collection.
func NewMongoWithInserter[T any](collection Inserter) *Mongo[T] {
	return &Mongo[T]{
		collection: collection,
	}
}

// Consume inserts the batch with a single InsertMany call.
func (m *Mongo[T]) Consume(ctx context.Context, batch []T) error {
	if len(batch) == 0 {
		return nil
	}

	documents := make([]interface{}, len(batch))
	for i := range batch {
		documents[i] = batch[i]
	}

	if _, err := m.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return nil
}
