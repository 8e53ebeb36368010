package services

import (
	"context"
	"fmt"

	"github.com/zoobzio/clockz"
	"golang.org/x/sync/errgroup"

	"github.com/Belphemur/Aggregator/internal/client"
	"github.com/Belphemur/Aggregator/internal/config"
	"github.com/Belphemur/Aggregator/internal/metrics"
	"github.com/Belphemur/Aggregator/internal/models"
)

// DefaultAggregator implements Aggregator over two resource clients
type DefaultAggregator struct {
	comments client.ResourceClient[models.Comment]
	posts    client.ResourceClient[models.Post]
	ids      IDSource
	clock    clockz.Clock
}

// NewAggregator creates an aggregator over the comment and post clients.
// A nil ids falls back to the shared random source, a nil clock to the real clock.
func NewAggregator(
	comments client.ResourceClient[models.Comment],
	posts client.ResourceClient[models.Post],
	ids IDSource,
	clock clockz.Clock,
) Aggregator {
	if ids == nil {
		ids = NewRandomIDSource()
	}
	if clock == nil {
		clock = clockz.RealClock
	}
	return &DefaultAggregator{
		comments: comments,
		posts:    posts,
		ids:      ids,
		clock:    clock,
	}
}

// Combine implements Aggregator.Combine
func (a *DefaultAggregator) Combine(ctx context.Context) (models.CombinedResult, error) {
	logger := config.GetLogger()
	start := a.clock.Now()

	commentID := a.ids.Intn(models.CommentIDUpperBound)
	postID := a.ids.Intn(models.PostIDUpperBound)

	logger.Debug().Int("commentID", commentID).Int("postID", postID).Msg("Combining comment and post")

	var (
		comment models.Comment
		post    models.Post
	)

	// Both fetches are started before either is awaited. The group context is
	// cancelled on the first failure so the sibling request is abandoned.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := a.comments.Fetch(gctx, commentID)
		if err != nil {
			return fmt.Errorf("failed to fetch comment: %w", err)
		}
		comment = c
		return nil
	})
	g.Go(func() error {
		p, err := a.posts.Fetch(gctx, postID)
		if err != nil {
			return fmt.Errorf("failed to fetch post: %w", err)
		}
		post = p
		return nil
	})

	err := g.Wait()
	metrics.AggregationDuration.Observe(a.clock.Now().Sub(start).Seconds())
	if err != nil {
		metrics.AggregationsTotal.WithLabelValues(metrics.StatusError).Inc()
		logger.Warn().Err(err).Int("commentID", commentID).Int("postID", postID).Msg("Failed to combine comment and post")
		return models.CombinedResult{}, err
	}

	metrics.AggregationsTotal.WithLabelValues(metrics.StatusSuccess).Inc()
	return models.NewCombinedResult(comment, post), nil
}
