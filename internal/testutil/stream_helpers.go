package testutil

import (
	"context"

	"github.com/Belphemur/Aggregator/internal/models"
)

// CollectStream consumes a result stream and returns every value received before
// the channel closed, together with the error that ended it, if any.
// Values received before an error are returned alongside it.
// This is a test helper and should not be used in production code.
func CollectStream[T any](ctx context.Context, stream <-chan models.StreamResult[T]) ([]T, error) {
	var values []T
	for {
		select {
		case result, ok := <-stream:
			if !ok {
				return values, nil
			}
			if result.Err != nil {
				return values, result.Err
			}
			values = append(values, result.Value)
		case <-ctx.Done():
			return values, ctx.Err()
		}
	}
}
