package domain

import "fmt"

// Move はピースに対する1ステップの操作を表す
type Move int

const (
	NoMove Move = iota - 1
	Left
	Right
	Up // テスト用
	Down
	Rotate
	Drop
)

var moveNames = [...]string{"left", "right", "up", "down", "rotate", "drop"}

// String はゲームサーバーが受け付けるコマンド名を返す
func (m Move) String() string {
	if m < Left || m > Drop {
		return "no_move"
	}
	return moveNames[m]
}

// ParseMove はコマンド名をMoveに変換する
func ParseMove(s string) (Move, error) {
	for i, name := range moveNames {
		if name == s {
			return Move(i), nil
		}
	}
	return NoMove, fmt.Errorf("unknown move %q", s)
}

// searchMoves は到達可能探索で試す手の順序
var searchMoves = [...]Move{Rotate, Left, Right, Down}
