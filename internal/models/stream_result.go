package models

// StreamResult holds either a value or an error from a streaming operation.
// A result carrying an error is always the last one sent on its channel.
type StreamResult[T any] struct {
	Value T
	Err   error
}
