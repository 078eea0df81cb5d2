package domain

import (
	"math/rand"
)

// Game は自己対戦用のゲーム状態
// 次のピース列は常にPreviewSize個になるよう乱数で補充される
type Game struct {
	board  *Board
	shapes []*Shape
	queue  []*Shape
	placed int
	rng    *rand.Rand
}

// NewGame は空の盤面から新しいゲームを生成する
func NewGame(rng *rand.Rand, rows, cols int) *Game {
	g := &Game{
		shapes: StandardShapes(cols),
		rng:    rng,
	}
	g.queue = make([]*Shape, 0, PreviewSize+1)
	for len(g.queue) < PreviewSize+1 {
		g.queue = append(g.queue, g.draw())
	}
	g.board = NewBoard(NewGrid(rows, cols), g.queue[0], g.preview())
	return g
}

// Board は現在の盤面を返す
func (g *Game) Board() *Board {
	return g.board
}

// Placed は置いたピースの数を返す
func (g *Game) Placed() int {
	return g.placed
}

// RowsCleared は消した行数の合計を返す
func (g *Game) RowsCleared() int {
	return g.board.RowsCleared()
}

// IsGameOver は次のピースが出現位置に置けないかどうかを返す
func (g *Game) IsGameOver() bool {
	b := g.board
	return b.Active() == nil || !b.Check(b.Active().Spawn())
}

// Play は手順を適用してピースを落とし、ピース列を補充する
func (g *Game) Play(moves []Move) error {
	next, err := g.board.ApplyMoves(moves)
	if err != nil {
		return err
	}
	g.placed++

	g.queue = append(g.queue[1:], g.draw())
	// 盤面の前後関係は保ったまま、ピース列だけを補充した状態に差し替える
	nb := *next
	nb.active = g.queue[0]
	nb.pose = nb.active.Spawn()
	nb.preview = g.preview()
	g.board = &nb
	return nil
}

func (g *Game) preview() []*Shape {
	p := make([]*Shape, PreviewSize)
	copy(p, g.queue[1:])
	return p
}

// draw はピースを1つ乱数で選ぶ
func (g *Game) draw() *Shape {
	return g.shapes[g.rng.Intn(len(g.shapes))]
}
