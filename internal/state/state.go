// Package state はゲームサーバーから渡されるJSONの盤面状態を読み込む
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yunxing/dropblox/internal/domain"
)

// ErrMalformedState は状態JSONが解釈できない
var ErrMalformedState = errors.New("malformed game state")

type point struct {
	I int `json:"i"`
	J int `json:"j"`
}

type block struct {
	Center  point   `json:"center"`
	Offsets []point `json:"offsets"`
}

type gameState struct {
	Bitmap  [][]int  `json:"bitmap"`
	Block   *block   `json:"block"`
	Preview []*block `json:"preview"`
}

// Decode は状態JSONの文字列からBoardを生成する
func Decode(s string) (*domain.Board, error) {
	return DecodeReader(strings.NewReader(s))
}

// DecodeReader は状態JSONを読み込んでBoardを生成する
// iは行、jは列を表す
func DecodeReader(r io.Reader) (*domain.Board, error) {
	var st gameState
	if err := json.NewDecoder(r).Decode(&st); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedState, err)
	}

	grid, err := decodeBitmap(st.Bitmap)
	if err != nil {
		return nil, err
	}
	if st.Block == nil {
		return nil, fmt.Errorf("%w: missing block", ErrMalformedState)
	}

	active, err := decodeBlock(st.Block)
	if err != nil {
		return nil, fmt.Errorf("block: %w", err)
	}
	preview := make([]*domain.Shape, 0, len(st.Preview))
	for i, b := range st.Preview {
		if b == nil {
			return nil, fmt.Errorf("%w: preview %d is null", ErrMalformedState, i)
		}
		s, err := decodeBlock(b)
		if err != nil {
			return nil, fmt.Errorf("preview %d: %w", i, err)
		}
		preview = append(preview, s)
	}
	return domain.NewBoard(grid, active, preview), nil
}

func decodeBitmap(bitmap [][]int) (*domain.Grid, error) {
	if len(bitmap) == 0 || len(bitmap[0]) == 0 {
		return nil, fmt.Errorf("%w: empty bitmap", ErrMalformedState)
	}
	cols := len(bitmap[0])
	if cols > domain.MaxCols {
		return nil, fmt.Errorf("%w: %d columns exceeds %d", ErrMalformedState, cols, domain.MaxCols)
	}

	g := domain.NewGrid(len(bitmap), cols)
	for r, row := range bitmap {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedState, r, len(row), cols)
		}
		for c, v := range row {
			if v != 0 {
				g.Set(r, c, true)
			}
		}
	}
	return g, nil
}

func decodeBlock(b *block) (*domain.Shape, error) {
	if len(b.Offsets) == 0 {
		return nil, fmt.Errorf("%w: block has no offsets", ErrMalformedState)
	}
	offsets := make([]domain.Offset, len(b.Offsets))
	for i, o := range b.Offsets {
		offsets[i] = domain.Offset{Row: o.I, Col: o.J}
	}
	return domain.NewShape(b.Center.I, b.Center.J, offsets), nil
}
