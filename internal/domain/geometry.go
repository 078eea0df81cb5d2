package domain

import "fmt"

// Offset は中心セルからの相対座標（Row: 下向き正, Col: 右向き正）
type Offset struct {
	Row, Col int
}

// Pose はピースの中心セルの絶対座標と回転数
// 回転数は常に4を法として比較される
type Pose struct {
	Row, Col, Rot int
}

// rot は0..3に正規化した回転数を返す
func (p Pose) rot() int {
	r := p.Rot % 4
	if r < 0 {
		r += 4
	}
	return r
}

// Equal は回転数を4で割った余りまで含めて同じ姿勢かを返す
func (p Pose) Equal(o Pose) bool {
	return p.Row == o.Row && p.Col == o.Col && p.rot() == o.rot()
}

// Compare は行、列、回転数の順で姿勢を比較する
func (p Pose) Compare(o Pose) int {
	switch {
	case p.Row != o.Row:
		return cmpInt(p.Row, o.Row)
	case p.Col != o.Col:
		return cmpInt(p.Col, o.Col)
	default:
		return cmpInt(p.rot(), o.rot())
	}
}

// Less は p < o かどうかを返す
func (p Pose) Less(o Pose) bool {
	return p.Compare(o) < 0
}

// Apply は1手適用した姿勢を返す（衝突判定はしない）
func (p Pose) Apply(m Move) Pose {
	switch m {
	case Left:
		p.Col--
	case Right:
		p.Col++
	case Up:
		p.Row--
	case Down:
		p.Row++
	case Rotate:
		p.Rot = (p.rot() + 1) % 4
	}
	return p
}

func (p Pose) String() string {
	return fmt.Sprintf("(%d,%d,r%d)", p.Row, p.Col, p.rot())
}

// poseKey はintmapのキーとして使う姿勢の整数表現
type poseKey uint64

func (p Pose) key() poseKey {
	return poseKey(uint64(uint32(int32(p.Row)))<<32 | uint64(uint16(int16(p.Col)))<<8 | uint64(p.rot()))
}

// Shape はピースの形状（不変）
// 盤面間で共有され、生成後に変更されることはない
type Shape struct {
	center  Offset
	offsets []Offset
}

// NewShape は出現時の中心座標と相対座標からShapeを生成する
func NewShape(centerRow, centerCol int, offsets []Offset) *Shape {
	cp := make([]Offset, len(offsets))
	copy(cp, offsets)
	return &Shape{
		center:  Offset{Row: centerRow, Col: centerCol},
		offsets: cp,
	}
}

// Center は出現時の中心座標を返す
func (s *Shape) Center() Offset {
	return s.center
}

// Offsets は相対座標のコピーを返す
func (s *Shape) Offsets() []Offset {
	cp := make([]Offset, len(s.offsets))
	copy(cp, s.offsets)
	return cp
}

// Size はピースのセル数を返す
func (s *Shape) Size() int {
	return len(s.offsets)
}

// Spawn は出現姿勢を返す
func (s *Shape) Spawn() Pose {
	return Pose{Row: s.center.Row, Col: s.center.Col}
}

// cell はi番目のセルの姿勢pにおける絶対座標を返す
// 偶数回転は符号(1-r)をそのまま掛け、奇数回転は行と列を入れ替えて符号(2-r)を掛ける
func (s *Shape) cell(p Pose, i int) (int, int) {
	o := s.offsets[i]
	r := p.rot()
	if r%2 == 1 {
		return p.Row + (2-r)*o.Col, p.Col - (2-r)*o.Row
	}
	return p.Row + (1-r)*o.Row, p.Col + (1-r)*o.Col
}

// Cells は姿勢pで占めるセルの絶対座標一覧を返す
func (s *Shape) Cells(p Pose) []Offset {
	cells := make([]Offset, len(s.offsets))
	for i := range s.offsets {
		r, c := s.cell(p, i)
		cells[i] = Offset{Row: r, Col: c}
	}
	return cells
}

// Bounds は姿勢pでのバウンディングボックスを返す
func (s *Shape) Bounds(p Pose) (minRow, maxRow, minCol, maxCol int) {
	for i := range s.offsets {
		r, c := s.cell(p, i)
		if i == 0 || r < minRow {
			minRow = r
		}
		if i == 0 || r > maxRow {
			maxRow = r
		}
		if i == 0 || c < minCol {
			minCol = c
		}
		if i == 0 || c > maxCol {
			maxCol = c
		}
	}
	return minRow, maxRow, minCol, maxCol
}

// Dimensions は姿勢pでの幅と高さ（端から端までの差分）を返す
func (s *Shape) Dimensions(p Pose) (width, height int) {
	minRow, maxRow, minCol, maxCol := s.Bounds(p)
	return maxCol - minCol, maxRow - minRow
}

// LandingHeight はバウンディングボックスの縦方向の中心を行座標で返す
func (s *Shape) LandingHeight(p Pose) float64 {
	minRow, _, _, _ := s.Bounds(p)
	_, height := s.Dimensions(p)
	return float64(minRow) + float64(height)/2
}

// Collides は姿勢pのピースが盤外にはみ出すか、埋まったセルに重なるとtrueを返す
// セルを持たないピースはどこにも置けない
func Collides(g *Grid, s *Shape, p Pose) bool {
	if len(s.offsets) == 0 {
		return true
	}
	for i := range s.offsets {
		r, c := s.cell(p, i)
		if !g.InBounds(r, c) || g.Get(r, c) {
			return true
		}
	}
	return false
}

// stamp は姿勢pのピースをグリッドに書き込む
func (s *Shape) stamp(g *Grid, p Pose) {
	for i := range s.offsets {
		r, c := s.cell(p, i)
		g.Set(r, c, true)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
