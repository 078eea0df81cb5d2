package main

import (
	"flag"
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
	logLevel := flag.String("log-level", "info", "log level")
	pretty := flag.Bool("pretty", false, "human readable logs")
	flag.Parse()

	logging.Setup(os.Stderr, *logLevel, *pretty)

	if flag.NArg() < 1 {
		log.Error().Msg("usage: dropblox_ai [flags] '<state-json>' [weights-path]")
		return
	}
	config.WeightsPath = *weightsPath
	if flag.NArg() >= 2 {
		config.WeightsPath = flag.Arg(1)
	}
	config.MaxPlies = *plies
	config.Workers = *workers

	// サーバーは終了コードを見ないので、失敗しても空の手順で正常終了する
	moves, err := usecase.Decide(flag.Arg(0), config)
	if err != nil {
		log.Error().Err(err).Msg("no-decision")
		return
	}
	if err := usecase.WriteMoves(os.Stdout, moves); err != nil {
		log.Error().Err(err).Msg("write-moves")
	}
}
