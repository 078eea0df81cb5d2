package domain

// Tetromino は標準の7種類のピースの名前
type Tetromino int

const (
	TetrominoI Tetromino = iota
	TetrominoO
	TetrominoT
	TetrominoS
	TetrominoZ
	TetrominoJ
	TetrominoL
)

// tetrominoOffsets は中心セルから見た各ピースのセル
var tetrominoOffsets = [...][]Offset{
	TetrominoI: {{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	TetrominoO: {{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
	TetrominoT: {{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	TetrominoS: {{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	TetrominoZ: {{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	TetrominoJ: {{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	TetrominoL: {{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
}

func (t Tetromino) String() string {
	if t < 0 || int(t) >= len(tetrominoOffsets) {
		return "?"
	}
	return string("IOTSZJL"[t])
}

// StandardShapes は幅colsの盤の上端中央に出現する7種類のピースを返す
func StandardShapes(cols int) []*Shape {
	centerCol := (cols - 1) / 2
	shapes := make([]*Shape, len(tetrominoOffsets))
	for i, offsets := range tetrominoOffsets {
		shapes[i] = NewShape(1, centerCol, offsets)
	}
	return shapes
}
