// replay は状態JSONに標準入力の手順を適用した盤面を表示する
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/yunxing/dropblox/internal/logging"
	"github.com/yunxing/dropblox/internal/usecase"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Setup(os.Stderr, *logLevel, true)

	if flag.NArg() < 1 {
		log.Fatal().Msg("usage: replay [flags] '<state-json>' < moves")
	}
	if err := usecase.Replay(os.Stdin, os.Stdout, flag.Arg(0)); err != nil {
		log.Fatal().Err(err).Msg("replay")
	}
}
