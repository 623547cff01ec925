package cache

import "errors"

var (
	// ErrStorage wraps any backend failure during set/get/remove/clear.
	ErrStorage = errors.New("cache: storage failure")
	// ErrEncode is returned when a value cannot be serialized.
	ErrEncode = errors.New("cache: encode value")
	// ErrDecode is returned when a stored payload cannot be deserialized.
	ErrDecode = errors.New("cache: decode value")
	// ErrClientUnavailable is returned by a redis store built without a client.
	ErrClientUnavailable = errors.New("cache: redis client unavailable")
	// ErrEmptyConnectionString is returned when parsing a blank connection string.
	ErrEmptyConnectionString = errors.New("cache: empty connection string")
)
