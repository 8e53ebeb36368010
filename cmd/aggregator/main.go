package main

import (
	"os"

	"github.com/Belphemur/Aggregator/internal/cli"
	"github.com/Belphemur/Aggregator/internal/config"
)

func main() {
	if err := cli.Execute(); err != nil {
		logger := config.GetLogger()
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
