package domain

import "fmt"

// dropbloxサーバーの盤面定数
const (
	DefaultRows = 33
	DefaultCols = 12
	PreviewSize = 5
)

// Landing は直前に置いたピースの着地情報
// 接触数はグリッドに書き込む前の盤面に対して数える
type Landing struct {
	Shape      *Shape
	Pose       Pose
	BlockEdges int // 既存ブロックと接する8近傍の数
	WallEdges  int // 盤外と接する8近傍の数
	Valid      bool
}

// Board は盤面・操作中のピース・次のピース列を表す
// 配置によって新しいBoardが作られ、既存のBoardは変更されない
type Board struct {
	grid        *Grid
	active      *Shape
	pose        Pose
	preview     []*Shape
	rowsCleared int
	lastCleared int
	landing     *Landing
}

// NewBoard は操作中のピースを出現姿勢に置いたBoardを生成する
// gridとpreviewはBoardに取り込まれるので、呼び出し側は以後変更してはならない
func NewBoard(grid *Grid, active *Shape, preview []*Shape) *Board {
	b := &Board{
		grid:    grid,
		active:  active,
		preview: preview[:len(preview):len(preview)],
	}
	if active != nil {
		b.pose = active.Spawn()
	}
	return b
}

// Grid は盤面を返す（変更してはならない）
func (b *Board) Grid() *Grid {
	return b.grid
}

// Active は操作中のピースを返す（残っていなければnil）
func (b *Board) Active() *Shape {
	return b.active
}

// Pose は操作中のピースの姿勢を返す
func (b *Board) Pose() Pose {
	return b.pose
}

// Preview は次のピース列を返す
func (b *Board) Preview() []*Shape {
	return b.preview[:len(b.preview):len(b.preview)]
}

// RowsCleared は累計の消去行数を返す
func (b *Board) RowsCleared() int {
	return b.rowsCleared
}

// LastCleared はこのBoardを作った配置で消えた行数を返す
func (b *Board) LastCleared() int {
	return b.lastCleared
}

// Landing はこのBoardを作った配置の着地情報を返す（初期盤面ならnil）
func (b *Board) Landing() *Landing {
	if b.landing == nil {
		return nil
	}
	l := *b.landing
	return &l
}

// WithPose は操作中のピースの姿勢だけを変えたBoardを返す
func (b *Board) WithPose(p Pose) *Board {
	nb := *b
	nb.pose = p
	return &nb
}

// Check は操作中のピースを姿勢pに置けるかを返す
func (b *Board) Check(p Pose) bool {
	return b.active != nil && !Collides(b.grid, b.active, p)
}

// Place は現在の姿勢からピースを真下に落として固定し、次のBoardと消えた行数を返す
func (b *Board) Place() (*Board, int, error) {
	return b.placeFrom(b.pose)
}

// ApplyMoves は出現姿勢から手順を適用してからピースを落とす
// dropが現れたらそこで手順を打ち切り、dropがなくても最後に落とす
func (b *Board) ApplyMoves(moves []Move) (*Board, error) {
	p, err := b.Replay(moves)
	if err != nil {
		return nil, err
	}
	next, _, err := b.placeFrom(p)
	return next, err
}

// Replay は出現姿勢から手順を適用した姿勢を返す（落下はしない）
func (b *Board) Replay(moves []Move) (Pose, error) {
	if b.active == nil {
		return Pose{}, ErrPreviewExhausted
	}
	p := b.active.Spawn()
	if !b.Check(p) {
		return p, ErrInvalidStartingPosition
	}
	for i, m := range moves {
		if m == Drop {
			break
		}
		p = p.Apply(m)
		if !b.Check(p) {
			return p, fmt.Errorf("%w: move %d (%s) to %s", ErrIllegalMove, i, m, p)
		}
	}
	return p, nil
}

func (b *Board) placeFrom(from Pose) (*Board, int, error) {
	if b.active == nil {
		return nil, 0, ErrPreviewExhausted
	}
	if !b.Check(from) {
		return nil, 0, ErrInvalidStartingPosition
	}

	rest := from
	for {
		next := rest.Apply(Down)
		if !b.Check(next) {
			break
		}
		rest = next
	}

	landing := contact(b.grid, b.active, rest)
	grid := b.grid.Copy()
	b.active.stamp(grid, rest)
	cleared := grid.RemoveRows()

	nb := &Board{
		grid:        grid,
		rowsCleared: b.rowsCleared + cleared,
		lastCleared: cleared,
		landing:     &landing,
	}
	if len(b.preview) > 0 {
		nb.active = b.preview[0]
		nb.pose = nb.active.Spawn()
		nb.preview = b.preview[1:len(b.preview):len(b.preview)]
	}
	return nb, cleared, nil
}

// Contact はこのBoardの着地情報を返す
// 初期盤面では操作中のピースの現在の姿勢で計算する
func (b *Board) Contact() Landing {
	if b.landing != nil {
		return *b.landing
	}
	if b.active == nil {
		return Landing{}
	}
	return contact(b.grid, b.active, b.pose)
}

// contact はピースの各セルの8近傍のうち既存ブロックと盤外に接する数を数える
func contact(g *Grid, s *Shape, p Pose) Landing {
	l := Landing{Shape: s, Pose: p}
	cells := s.Cells(p)
	own := make(map[Offset]bool, len(cells))
	for _, c := range cells {
		if !g.InBounds(c.Row, c.Col) || g.Get(c.Row, c.Col) {
			return l
		}
		own[c] = true
	}

	for _, c := range cells {
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				r, col := c.Row+dr, c.Col+dc
				switch {
				case !g.InBounds(r, col):
					l.WallEdges++
				case own[Offset{Row: r, Col: col}]:
				case g.Get(r, col):
					l.BlockEdges++
				}
			}
		}
	}
	l.Valid = true
	return l
}

// String は盤面と操作中のピースを文字列で返す（ピースは'@'）
func (b *Board) String() string {
	g := b.grid
	var piece map[Offset]bool
	if b.active != nil {
		piece = make(map[Offset]bool)
		for _, c := range b.active.Cells(b.pose) {
			piece[c] = true
		}
	}
	out := make([]byte, 0, (g.cols+1)*g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch {
			case piece[Offset{Row: r, Col: c}]:
				out = append(out, '@')
			case g.Get(r, c):
				out = append(out, '#')
			default:
				out = append(out, '.')
			}
		}
		out = append(out, '\n')
	}
	return string(out)
}
