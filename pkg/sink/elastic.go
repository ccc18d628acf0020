package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/syncq/go-syncq/pkg/database/elasticsearch"
)

// Elastic delivers batches to an Elasticsearch index through the bulk API.
// Each item is indexed as one JSON document with an auto-generated ID.
type Elastic[T any] struct {
	client elasticsearch.ElasticClient
	index  string
}

var _ Sink[any] = (*Elastic[any])(nil)

// NewElastic creates an Elasticsearch sink writing to the named index.
func NewElastic[T any](client elasticsearch.ElasticClient, index string) *Elastic[T] {
	return &Elastic[T]{
		client: client,
		index:  index,
	}
}

// Consume indexes the batch with a single bulk request.
func (e *Elastic[T]) Consume(ctx context.Context, batch []T) error {
	if len(batch) == 0 {
		return nil
	}

	var buf bytes.Buffer
	for _, item := range batch {
		meta := []byte(fmt.Sprintf(`{ "index" : { "_index" : "%s" } }%s`, e.index, "\n"))

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrEncodeFailed, err)
		}
		data = append(data, "\n"...)

		buf.Grow(len(meta) + len(data))
		buf.Write(meta)
		buf.Write(data)
	}

	req := esapi.BulkRequest{
		Body: bytes.NewReader(buf.Bytes()),
	}

	res, err := req.Do(ctx, e.client)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s", ErrDeliveryFailed, res.Status())
	}

	return nil
}
