package usecase

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/yunxing/dropblox/internal/domain"
	"github.com/yunxing/dropblox/internal/state"
	"github.com/yunxing/dropblox/internal/weights"
)

// DecideConfig は1回の手の決定の設定
type DecideConfig struct {
	WeightsPath string
	MaxPlies    int
	Workers     int
}

// DefaultDecideConfig はデフォルトの設定を返す
func DefaultDecideConfig() DecideConfig {
	return DecideConfig{
		WeightsPath: "weights.txt",
		MaxPlies:    domain.DefaultMaxPlies,
		Workers:     runtime.NumCPU(),
	}
}

// Decide は状態JSONを読み込み、最良の手順を返す
// 探索にかかった時間と評価をログに出す
func Decide(stateJSON string, config DecideConfig) ([]domain.Move, error) {
	board, err := state.Decode(stateJSON)
	if err != nil {
		return nil, err
	}
	solver := newSolver(config)

	start := time.Now()
	moves, score, err := solver.BestMoves(board)
	if err != nil {
		return nil, err
	}
	log.Info().
		Dur("elapsed", time.Since(start)).
		Float64("best_score", score).
		Int("moves", len(moves)).
		Msg("decided")
	return moves, nil
}

// WriteMoves は手を1行に1つずつ書き出す
func WriteMoves(w io.Writer, moves []domain.Move) error {
	bw := bufio.NewWriter(w)
	for _, m := range moves {
		fmt.Fprintln(bw, m)
	}
	return bw.Flush()
}

func newSolver(config DecideConfig) *domain.Solver {
	evaluator := domain.NewWeightedEvaluator(weights.Load(config.WeightsPath))
	return domain.NewSolver(evaluator, config.MaxPlies, domain.WithWorkers(config.Workers))
}
