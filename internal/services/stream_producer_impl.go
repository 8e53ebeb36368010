package services

import (
	"context"
	"fmt"

	"github.com/Belphemur/Aggregator/internal/config"
	"github.com/Belphemur/Aggregator/internal/metrics"
	"github.com/Belphemur/Aggregator/internal/models"
)

// DefaultStreamProducer implements StreamProducer on top of an Aggregator
type DefaultStreamProducer struct {
	aggregator Aggregator
}

// NewStreamProducer creates a stream producer that calls aggregator once per element
func NewStreamProducer(aggregator Aggregator) StreamProducer {
	return &DefaultStreamProducer{aggregator: aggregator}
}

// Produce implements StreamProducer.Produce
func (p *DefaultStreamProducer) Produce(ctx context.Context, amount int) <-chan models.StreamResult[models.CombinedResult] {
	// Unbuffered: a send completes only once the consumer took the value
	ch := make(chan models.StreamResult[models.CombinedResult])

	go func() {
		defer close(ch)
		logger := config.GetLogger()

		status := metrics.StatusSuccess
		defer func() {
			metrics.StreamsTotal.WithLabelValues(status).Inc()
		}()

		for i := 1; i <= amount; i++ {
			if ctx.Err() != nil {
				status = metrics.StatusCancelled
				logger.Debug().Int("emitted", i-1).Int("amount", amount).Msg("Stream consumer gone, stopping")
				return
			}

			logger.Debug().Int("iteration", i).Int("amount", amount).Msg("Producing stream element")

			result, err := p.aggregator.Combine(ctx)
			if err != nil {
				if ctx.Err() != nil {
					status = metrics.StatusCancelled
					return
				}
				status = metrics.StatusError
				logger.Warn().Err(err).Int("iteration", i).Int("amount", amount).Msg("Stream terminated by failed aggregation")
				sendResult(ctx, ch, models.StreamResult[models.CombinedResult]{
					Err: fmt.Errorf("stream element %d of %d: %w", i, amount, err),
				})
				return
			}

			select {
			case ch <- models.StreamResult[models.CombinedResult]{Value: result}:
				metrics.StreamEventsTotal.Inc()
			case <-ctx.Done():
				// The in-flight result is discarded
				status = metrics.StatusCancelled
				return
			}
		}

		logger.Debug().Int("amount", amount).Msg("Finished producing stream")
	}()

	return ch
}

// sendResult delivers a final result unless the consumer is already gone
func sendResult[T any](ctx context.Context, ch chan<- models.StreamResult[T], result models.StreamResult[T]) {
	select {
	case ch <- result:
	case <-ctx.Done():
	}
}
