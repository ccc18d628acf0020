package redisq

import "encoding/json"

// Codec converts items to and from their Redis list representation.
type Codec[T any] interface {
	Encode(item T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec is the default Codec.
type JSONCodec[T any] struct{}

// Encode implements Codec interface.
func (JSONCodec[T]) Encode(item T) ([]byte, error) {
	return json.Marshal(item)
}

// Decode implements Codec interface.
func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var item T
	err := json.Unmarshal(data, &item)
	return item, err
}
