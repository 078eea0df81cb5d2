package usecase

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/yunxing/dropblox/internal/domain"
	"github.com/yunxing/dropblox/internal/state"
)

// Replay は状態JSONに手順を適用して、配置後の盤面を書き出す
// 手順はrから1行に1つ（空白区切りでもよい）読み込む
func Replay(r io.Reader, w io.Writer, stateJSON string) error {
	board, err := state.Decode(stateJSON)
	if err != nil {
		return err
	}

	moves, err := readMoves(r)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "=== Before ===")
	fmt.Fprint(w, board)

	next, err := board.ApplyMoves(moves)
	if err != nil {
		return fmt.Errorf("replay: %w", err)
	}

	fmt.Fprintln(w, "=== After ===")
	fmt.Fprint(w, next)
	fmt.Fprintf(w, "Rows Cleared: %d\n", next.LastCleared())
	if l := next.Landing(); l != nil {
		fmt.Fprintf(w, "Landed At: %s\n", l.Pose)
	}
	return nil
}

func readMoves(r io.Reader) ([]domain.Move, error) {
	var moves []domain.Move
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, name := range strings.Fields(sc.Text()) {
			m, err := domain.ParseMove(strings.ToLower(name))
			if err != nil {
				return nil, err
			}
			moves = append(moves, m)
		}
	}
	return moves, sc.Err()
}
