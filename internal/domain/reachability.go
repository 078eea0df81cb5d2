package domain

import (
	"fmt"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Placement は到達可能な着地姿勢と、出現姿勢からそこへ至る最短手順
// 末尾の下移動は落下で代用できるので含まない
type Placement struct {
	Pose  Pose
	Moves []Move
}

// transition は姿勢に初めて到達したときの親姿勢と手
type transition struct {
	parent Pose
	move   Move
}

// GenerateMoves は出現姿勢から幅優先探索で到達できる全ての着地姿勢と手順を返す
// 結果は姿勢の順序（行、列、回転）で並ぶ
func GenerateMoves(b *Board) ([]Placement, error) {
	if b.active == nil {
		return nil, ErrPreviewExhausted
	}
	start := b.active.Spawn()
	if !b.Check(start) {
		return nil, ErrInvalidStartingPosition
	}

	capacity := b.grid.rows * b.grid.cols * 4
	visited := intmap.New[poseKey, transition](capacity)
	visited.Put(start.key(), transition{parent: start, move: NoMove})
	resting := intmap.NewSet[poseKey](b.grid.cols * 4)
	var ends []Pose

	queue := []Pose{start}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, m := range searchMoves {
			next := cur.Apply(m)
			if !b.Check(next) {
				// 下に動けない姿勢は着地候補
				if m == Down && resting.Add(cur.key()) {
					ends = append(ends, cur)
				}
				continue
			}
			if _, added := visited.PutIfNotExists(next.key(), transition{parent: cur, move: m}); !added {
				continue
			}
			queue = append(queue, next)
		}
	}

	slices.SortFunc(ends, func(x, y Pose) int { return x.Compare(y) })
	return collectPlacements(visited, start, ends), nil
}

// collectPlacements は各着地姿勢の手順を組み立てる
// 手順が辿れない姿勢は探索全体を失敗させずに候補から外す
func collectPlacements(visited *intmap.Map[poseKey, transition], start Pose, ends []Pose) []Placement {
	placements := make([]Placement, 0, len(ends))
	for _, end := range ends {
		moves, err := reconstruct(visited, start, end)
		if err != nil {
			log.Warn().Err(err).Str("pose", end.String()).Msg("skipping-unreachable-placement")
			continue
		}
		placements = append(placements, Placement{Pose: end, Moves: moves})
	}
	return placements
}

// reconstruct は親を辿って出現姿勢からendまでの手順を組み立てる
func reconstruct(visited *intmap.Map[poseKey, transition], start, end Pose) ([]Move, error) {
	var moves []Move
	p := end
	for steps := 0; !p.Equal(start); steps++ {
		t, ok := visited.Get(p.key())
		if !ok || t.move == NoMove || steps > visited.Len() {
			return nil, fmt.Errorf("%w: broken at %s", ErrBrokenPath, p)
		}
		moves = append(moves, t.move)
		p = t.parent
	}

	slices.Reverse(moves)
	for len(moves) > 0 && moves[len(moves)-1] == Down {
		moves = moves[:len(moves)-1]
	}
	return moves, nil
}
