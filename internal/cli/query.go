package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/Aggregator/internal/apperrors"
	"github.com/Belphemur/Aggregator/internal/client"
	"github.com/Belphemur/Aggregator/internal/config"
	"github.com/Belphemur/Aggregator/internal/services"
)

func newAggregator(cfg *config.Config) services.Aggregator {
	httpClient := client.NewHTTPClient(cfg)
	return services.NewAggregator(
		client.NewCommentClient(cfg, httpClient),
		client.NewPostClient(cfg, httpClient),
		nil,
		nil,
	)
}

func runCombineCmd(cmd *cobra.Command, _ []string) error {
	return runCombine(cmd.Context(), newAggregator(config.GetConfig()), cmd.OutOrStdout(), outputFormat)
}

func runStreamCmd(cmd *cobra.Command, args []string) error {
	amount, err := strconv.Atoi(args[0])
	if err != nil {
		return &apperrors.InvalidAmountError{Value: args[0]}
	}
	producer := services.NewStreamProducer(newAggregator(config.GetConfig()))
	return runStream(cmd.Context(), producer, amount, cmd.OutOrStdout(), outputFormat)
}

func runCombine(ctx context.Context, aggregator services.Aggregator, w io.Writer, format string) error {
	enc, err := newDocumentEncoder(w, format)
	if err != nil {
		return err
	}

	result, err := aggregator.Combine(ctx)
	if err != nil {
		return err
	}
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return enc.Close()
}

// runStream prints every element as it arrives. Elements written before a
// failure stay written.
func runStream(ctx context.Context, producer services.StreamProducer, amount int, w io.Writer, format string) error {
	enc, err := newDocumentEncoder(w, format)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for item := range producer.Produce(ctx, amount) {
		if item.Err != nil {
			_ = enc.Close()
			return item.Err
		}
		if err := enc.Encode(item.Value); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	return enc.Close()
}
