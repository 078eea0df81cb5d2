package main

import (
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yunxing/dropblox/internal/domain"
	"github.com/yunxing/dropblox/internal/logging"
	"github.com/yunxing/dropblox/internal/usecase"
	"github.com/yunxing/dropblox/internal/weights"
)

func main() {
	config := usecase.DefaultAutoPlayConfig()

	plies := flag.Int("plies", config.MaxPlies, "search plies including the current piece")
	workers := flag.Int("workers", config.Workers, "parallel scoring workers")
	pieces := flag.Int("pieces", config.MaxPieces, "stop after this many pieces (0 = until game over)")
	rows := flag.Int("rows", config.Rows, "board rows")
	cols := flag.Int("cols", config.Cols, "board columns")
	delay := flag.Int("delay", 0, "delay between pieces (ms)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	weightsPath := flag.String("weights", "", "weight table file (default: built-in weights)")
	dumpWeights := flag.String("dump-weights", "", "write the effective weight table to this file")
	quiet := flag.Bool("quiet", false, "suppress board output")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Setup(os.Stderr, *logLevel, true)

	var ws domain.Weights
	if *weightsPath != "" {
		ws = weights.Load(*weightsPath)
	} else {
		ws = weights.Defaults()
	}
	if *dumpWeights != "" {
		if err := weights.Save(*dumpWeights, ws); err != nil {
			log.Error().Err(err).Str("path", *dumpWeights).Msg("dump-weights")
		}
	}

	config.MaxPlies = *plies
	config.Workers = *workers
	config.MaxPieces = *pieces
	config.Rows = *rows
	config.Cols = *cols
	config.Delay = time.Duration(*delay) * time.Millisecond
	config.Weights = ws
	config.Verbose = !*quiet

	log.Info().Int64("seed", *seed).Msg("autoplay-start")
	rng := rand.New(rand.NewSource(*seed))
	usecase.AutoPlay(os.Stdout, rng, config)
}
