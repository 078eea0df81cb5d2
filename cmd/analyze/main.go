package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/yunxing/dropblox/internal/logging"
	"github.com/yunxing/dropblox/internal/usecase"
)

func main() {
	config := usecase.DefaultDecideConfig()

	weightsPath := flag.String("weights", config.WeightsPath, "weight table file")
	plies := flag.Int("plies", config.MaxPlies, "search plies including the current piece")
	workers := flag.Int("workers", config.Workers, "parallel scoring workers")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(os.Stderr, *logLevel, true)

	config.WeightsPath = *weightsPath
	config.MaxPlies = *plies
	config.Workers = *workers

	// 引数がなければ標準入力から状態JSONを読む
	stateJSON := flag.Arg(0)
	if stateJSON == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal().Err(err).Msg("read-state")
		}
		stateJSON = string(b)
	}

	if err := usecase.Analyze(os.Stdout, stateJSON, config); err != nil {
		log.Fatal().Err(err).Msg("analyze")
	}
}
