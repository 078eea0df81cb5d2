package usecase

import (
	"fmt"
	"io"
	"strings"

	"github.com/yunxing/dropblox/internal/domain"
	"github.com/yunxing/dropblox/internal/state"
)

// Analyze は最上位の全候補の手順と評価を列挙し、最良の候補の特徴量を書き出す
func Analyze(w io.Writer, stateJSON string, config DecideConfig) error {
	board, err := state.Decode(stateJSON)
	if err != nil {
		return err
	}
	solver := newSolver(config)

	cands, err := solver.Candidates(board)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Current board:")
	fmt.Fprint(w, board)
	fmt.Fprintf(w, "\nCandidates: %d, Plies: %d\n", len(cands), solver.MaxPlies())

	best := -1
	for i, c := range cands {
		if c.Board == nil {
			fmt.Fprintf(w, "%3d %-12s simulation failed\n", i, c.Pose)
			continue
		}
		if best < 0 || c.Best > cands[best].Best {
			best = i
		}
		fmt.Fprintf(w, "%3d %-12s score=%10.4f best=%10.4f moves=%s\n", i, c.Pose, c.Score, c.Best, joinMoves(c.Moves))
	}
	if best < 0 {
		fmt.Fprintln(w, "No valid placements!")
		return nil
	}

	c := cands[best]
	fmt.Fprintf(w, "\n=== Recommended: #%d %s ===\n", best, joinMoves(c.Moves))
	fmt.Fprint(w, c.Board)

	features, ok := domain.ComputeFeatures(c.Board, -1)
	if !ok {
		return nil
	}
	fmt.Fprintln(w, "\nFeatures:")
	for _, f := range domain.AllFeatures {
		fmt.Fprintf(w, "  %-16s %g\n", f, features[f])
	}
	return nil
}

func joinMoves(moves []domain.Move) string {
	if len(moves) == 0 {
		return "(drop)"
	}
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, ",")
}
