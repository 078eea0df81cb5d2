package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxCols はGridが扱える最大の列数（1行を64ビットで表現するため）
const MaxCols = 64

// Grid は埋まったセルのビットマップ
// 各行をuint64で表現し、列jはビットjに対応する
type Grid struct {
	rows  int
	cols  int
	full  uint64
	cells []uint64
}

// NewGrid は空のGridを生成する
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 || cols > MaxCols {
		panic(fmt.Sprintf("invalid grid size %dx%d", rows, cols))
	}
	full := ^uint64(0)
	if cols < MaxCols {
		full = uint64(1)<<cols - 1
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		full:  full,
		cells: make([]uint64, rows),
	}
}

// NewGridFromRows は文字列の行からGridを生成する（'#'が埋まったセル）
func NewGridFromRows(lines []string) *Grid {
	if len(lines) == 0 {
		panic("empty grid")
	}
	g := NewGrid(len(lines), len(lines[0]))
	for r, line := range lines {
		if len(line) != g.cols {
			panic(fmt.Sprintf("row %d has %d columns, want %d", r, len(line), g.cols))
		}
		for c, ch := range line {
			if ch == '#' {
				g.Set(r, c, true)
			}
		}
	}
	return g
}

// Rows は行数を返す
func (g *Grid) Rows() int {
	return g.rows
}

// Cols は列数を返す
func (g *Grid) Cols() int {
	return g.cols
}

// InBounds は座標が盤内かどうかを返す
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get は指定したセルが埋まっているかを返す
func (g *Grid) Get(row, col int) bool {
	return g.cells[row]&(1<<uint(col)) != 0
}

// filled は盤外を埋まったセルとして扱うGet
func (g *Grid) filled(row, col int) bool {
	return !g.InBounds(row, col) || g.Get(row, col)
}

// Set は指定したセルの状態を設定する
func (g *Grid) Set(row, col int, v bool) {
	if v {
		g.cells[row] |= 1 << uint(col)
	} else {
		g.cells[row] &^= 1 << uint(col)
	}
}

// Copy はGridのコピーを返す
func (g *Grid) Copy() *Grid {
	cells := make([]uint64, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, full: g.full, cells: cells}
}

// Equal は2つのGridが同じかどうかを判定する
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// IsFull は行が全て埋まっているかを返す
func (g *Grid) IsFull(row int) bool {
	return g.cells[row] == g.full
}

// Occupied は埋まったセルの総数を返す
func (g *Grid) Occupied() int {
	n := 0
	for _, row := range g.cells {
		n += bits.OnesCount64(row)
	}
	return n
}

// RemoveRows は揃った行を消して上の行を詰め、消した行数を返す
// 残った行の順序は保たれ、空いた上端の行は0で埋められる
func (g *Grid) RemoveRows() int {
	removed := 0
	for i := g.rows - 1; i >= 0; i-- {
		if g.cells[i] == g.full {
			removed++
			continue
		}
		if removed > 0 {
			g.cells[i+removed] = g.cells[i]
		}
	}
	for i := 0; i < removed; i++ {
		g.cells[i] = 0
	}
	return removed
}

// String はGridを文字列で返す
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.Get(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
