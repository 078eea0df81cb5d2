package usecase

import (
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yunxing/dropblox/internal/domain"
	"github.com/yunxing/dropblox/internal/weights"
)

// AutoPlayConfig は自動プレイの設定
type AutoPlayConfig struct {
	Rows      int
	Cols      int
	MaxPlies  int
	Workers   int
	MaxPieces int // 0なら上限なし
	Delay     time.Duration
	Weights   domain.Weights // nilならweights.Defaults()
	Verbose   bool
}

// DefaultAutoPlayConfig はデフォルトの設定を返す
func DefaultAutoPlayConfig() AutoPlayConfig {
	return AutoPlayConfig{
		Rows:      domain.DefaultRows,
		Cols:      domain.DefaultCols,
		MaxPlies:  2,
		Workers:   runtime.NumCPU(),
		MaxPieces: 500,
		Delay:     0,
		Weights:   nil,
		Verbose:   true,
	}
}

// AutoPlayResult は自動プレイの結果
type AutoPlayResult struct {
	Placed      int
	RowsCleared int
	GameOver    bool
}

// AutoPlay は標準の7種類のピースでゲームオーバーか上限まで自動でプレイする
func AutoPlay(w io.Writer, rng *rand.Rand, config AutoPlayConfig) AutoPlayResult {
	game := domain.NewGame(rng, config.Rows, config.Cols)

	ws := config.Weights
	if ws == nil {
		ws = weights.Defaults()
	}
	solver := domain.NewSolver(domain.NewWeightedEvaluator(ws), config.MaxPlies, domain.WithWorkers(config.Workers))

	if config.Verbose {
		fmt.Fprintln(w, "=== dropblox AutoPlay ===")
		fmt.Fprintf(w, "Plies: %d, Board: %dx%d\n\n", config.MaxPlies, config.Rows, config.Cols)
	}

	start := time.Now()
	for !game.IsGameOver() {
		if config.MaxPieces > 0 && game.Placed() >= config.MaxPieces {
			break
		}

		moves, score, err := solver.BestMoves(game.Board())
		if err != nil {
			log.Error().Err(err).Int("placed", game.Placed()).Msg("search-failed")
			break
		}
		if err := game.Play(moves); err != nil {
			log.Error().Err(err).Int("placed", game.Placed()).Msg("play-failed")
			break
		}

		if config.Verbose {
			fmt.Fprint(w, game.Board())
			fmt.Fprintf(w, "Pieces: %d, Rows: %d, Score: %.3f\n\n", game.Placed(), game.RowsCleared(), score)
		}
		if config.Delay > 0 {
			time.Sleep(config.Delay)
		}
	}

	result := AutoPlayResult{
		Placed:      game.Placed(),
		RowsCleared: game.RowsCleared(),
		GameOver:    game.IsGameOver(),
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Int("placed", result.Placed).
		Int("rows_cleared", result.RowsCleared).
		Bool("game_over", result.GameOver).
		Msg("autoplay-finished")

	// 最終結果は常に表示
	fmt.Fprint(w, game.Board())
	fmt.Fprintln(w, "=== Finished ===")
	fmt.Fprintf(w, "Pieces Placed: %d\n", result.Placed)
	fmt.Fprintf(w, "Rows Cleared: %d\n", result.RowsCleared)
	fmt.Fprintf(w, "Game Over: %t\n", result.GameOver)
	return result
}
