package cli

import (
	"github.com/spf13/cobra"
)

const (
	CmdServe    = "serve"
	CmdCombine  = "combine"
	CmdStream   = "stream"
	FlagOutput  = "output"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	defaultName = "aggregator"
)

var outputFormat string

var rootCmd = &cobra.Command{
	Use:   defaultName,
	Short: "Aggregator - joins a random comment and a random post into one result",
	Long: `Aggregator fetches a random comment and a random post concurrently and joins
the comment email and the post title into a single combined result.

QUICK START:
  aggregator serve                 # Start the HTTP API (port 8080)
  aggregator combine               # Print one combined result
  aggregator stream 5              # Print five combined results, one after another

Configuration is read from config.yaml and APP_* environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	serveCmd = &cobra.Command{
		Use:   CmdServe,
		Short: "Start the HTTP API",
		Long: `Start the HTTP API serving GET /api/data and GET /api/data/{amount}.

The optional Prometheus metrics listener and gRPC health endpoint are enabled
through the metrics.enabled and grpc.enabled settings.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	combineCmd = &cobra.Command{
		Use:   CmdCombine,
		Short: "Print one combined result",
		Args:  cobra.NoArgs,
		RunE:  runCombineCmd,
	}

	streamCmd = &cobra.Command{
		Use:   CmdStream + " <amount>",
		Short: "Print combined results sequentially",
		Long: `Produce <amount> combined results one after another and print each as soon
as it is available. A failing element stops the stream.

Examples:
  aggregator stream 3
  aggregator stream 3 --output yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runStreamCmd,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{combineCmd, streamCmd} {
		cmd.Flags().StringVarP(&outputFormat, FlagOutput, "o", OutputJSON, "Output format (json|yaml)")
	}
	rootCmd.AddCommand(serveCmd, combineCmd, streamCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
