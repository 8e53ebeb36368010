package services

import (
	"context"

	"github.com/Belphemur/Aggregator/internal/models"
)

// Aggregator defines the interface for joining one comment and one post into a CombinedResult
type Aggregator interface {
	// Combine fetches a random comment and a random post concurrently and joins them.
	// It fails as a whole when either fetch fails; no partial result is ever returned.
	Combine(ctx context.Context) (models.CombinedResult, error)
}
