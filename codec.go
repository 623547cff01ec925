package cache

import "encoding/json"

// ValueCodec defines how values are turned into stored text and back.
type ValueCodec[T any] struct {
	Encode func(T) ([]byte, error)
	Decode func([]byte) (T, error)
}

// JSONCodec encodes values as JSON. It is the default codec.
func JSONCodec[T any]() ValueCodec[T] {
	return ValueCodec[T]{
		Encode: func(v T) ([]byte, error) { return json.Marshal(v) },
		Decode: func(b []byte) (T, error) {
			var out T
			err := json.Unmarshal(b, &out)
			return out, err
		},
	}
}
