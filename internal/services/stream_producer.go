package services

import (
	"context"

	"github.com/Belphemur/Aggregator/internal/models"
)

// StreamProducer defines the interface for producing a finite stream of combined results
type StreamProducer interface {
	// Produce returns a channel that emits exactly amount results, one Combine call each,
	// strictly in order. Calls never overlap: the next one starts only after the previous
	// result was received by the consumer. The channel is closed when all results have
	// been sent, after the first error (sent as a StreamResult with a non-nil Err), or
	// once ctx is done. An amount <= 0 closes the channel without any Combine call.
	Produce(ctx context.Context, amount int) <-chan models.StreamResult[models.CombinedResult]
}
