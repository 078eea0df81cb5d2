package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dotShape(row, col int) *Shape {
	return NewShape(row, col, []Offset{{0, 0}})
}

func TestPlaceDropsAndClearsRows(t *testing.T) {
	g := NewGridFromRows([]string{
		"....",
		"....",
		"#...",
		"###.",
	})
	next := dotShape(0, 1)
	b := NewBoard(g, dotShape(0, 3), []*Shape{next})

	nb, cleared, err := b.Place()
	require.NoError(t, err)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 1, nb.LastCleared())
	assert.Equal(t, 1, nb.RowsCleared())
	want := NewGridFromRows([]string{
		"....",
		"....",
		"....",
		"#...",
	})
	if diff := cmp.Diff(want.String(), nb.Grid().String()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}

	assert.Same(t, next, nb.Active())
	assert.Equal(t, next.Spawn(), nb.Pose())
	assert.Empty(t, nb.Preview())

	// 元の盤面は変更されない
	assert.Equal(t, 4, b.Grid().Occupied())
	assert.Nil(t, b.Landing())
}

func TestPlaceRecordsLanding(t *testing.T) {
	b := NewBoard(NewGrid(4, 4), dotShape(0, 0), nil)

	nb, _, err := b.Place()
	require.NoError(t, err)

	l := nb.Landing()
	require.NotNil(t, l)
	assert.True(t, l.Valid)
	assert.Equal(t, Pose{Row: 3, Col: 0}, l.Pose)
	assert.Equal(t, 5, l.WallEdges)
	assert.Equal(t, 0, l.BlockEdges)
}

func TestContactCountsNeighbours(t *testing.T) {
	g := NewGridFromRows([]string{
		"....",
		"....",
		"#...",
		"##..",
	})
	b := NewBoard(g, dotShape(0, 1), nil)

	nb, _, err := b.Place()
	require.NoError(t, err)

	l := nb.Contact()
	assert.Equal(t, Pose{Row: 2, Col: 1}, l.Pose)
	// 8近傍のうち (2,0) (3,0) (3,1) が埋まっている
	assert.Equal(t, 3, l.BlockEdges)
	assert.Equal(t, 0, l.WallEdges)
}

func TestPreviewExhausted(t *testing.T) {
	b := NewBoard(NewGrid(4, 4), dotShape(0, 0), nil)

	nb, _, err := b.Place()
	require.NoError(t, err)
	assert.Nil(t, nb.Active())

	_, _, err = nb.Place()
	assert.ErrorIs(t, err, ErrPreviewExhausted)
	_, err = nb.ApplyMoves(nil)
	assert.ErrorIs(t, err, ErrPreviewExhausted)
}

func TestPlaceInvalidStartingPosition(t *testing.T) {
	g := NewGridFromRows([]string{
		"#...",
		"....",
	})
	b := NewBoard(g, dotShape(0, 0), nil)

	_, _, err := b.Place()
	assert.ErrorIs(t, err, ErrInvalidStartingPosition)
	_, err = b.ApplyMoves([]Move{Right})
	assert.ErrorIs(t, err, ErrInvalidStartingPosition)
}

func TestApplyMoves(t *testing.T) {
	tests := []struct {
		name    string
		moves   []Move
		want    Pose
		wantErr error
	}{
		{
			name:  "drop in place",
			moves: nil,
			want:  Pose{Row: 3, Col: 1},
		},
		{
			name:  "shift right",
			moves: []Move{Right, Right},
			want:  Pose{Row: 3, Col: 3},
		},
		{
			name:  "stops at drop",
			moves: []Move{Left, Drop, Right, Right},
			want:  Pose{Row: 3, Col: 0},
		},
		{
			name:  "rotate",
			moves: []Move{Rotate, Down},
			want:  Pose{Row: 3, Col: 1, Rot: 1},
		},
		{
			name:    "off the left wall",
			moves:   []Move{Left, Left},
			wantErr: ErrIllegalMove,
		},
		{
			name:    "off the floor",
			moves:   []Move{Down, Down, Down, Down},
			wantErr: ErrIllegalMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(NewGrid(4, 4), dotShape(0, 1), nil)
			nb, err := b.ApplyMoves(tt.moves)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(nb.Landing().Pose), "landed at %s", nb.Landing().Pose)
		})
	}
}

func TestBoardString(t *testing.T) {
	g := NewGridFromRows([]string{
		"...",
		"#..",
	})
	b := NewBoard(g, dotShape(0, 2), nil)

	assert.Equal(t, "..@\n#..\n", b.String())
}

func TestWithPosePlace(t *testing.T) {
	g := NewGridFromRows([]string{
		"..#.",
		"....",
		"....",
		"....",
	})
	b := NewBoard(g, dotShape(0, 0), nil)

	tests := []struct {
		name    string
		pose    Pose
		want    Pose
		wantErr error
	}{
		{"drops to floor", Pose{Row: 0, Col: 3}, Pose{Row: 3, Col: 3}, nil},
		{"starts mid board", Pose{Row: 2, Col: 1}, Pose{Row: 3, Col: 1}, nil},
		{"starts below a block", Pose{Row: 1, Col: 2}, Pose{Row: 3, Col: 2}, nil},
		{"overlaps a block", Pose{Row: 0, Col: 2}, Pose{}, ErrInvalidStartingPosition},
		{"outside the grid", Pose{Row: 0, Col: 4}, Pose{}, ErrInvalidStartingPosition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moved := b.WithPose(tt.pose)
			assert.Equal(t, tt.pose, moved.Pose())

			nb, _, err := moved.Place()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, nb.Landing().Pose)
		})
	}

	// 元の盤面の姿勢は変わらない
	assert.Equal(t, Pose{}, b.Pose())
}

func TestPlaceOccupiedCells(t *testing.T) {
	shapes := StandardShapes(4)

	tests := []struct {
		name    string
		rows    []string
		shape   *Shape
		cleared int
	}{
		{"empty grid", []string{"....", "....", "....", "...."}, shapes[TetrominoT], 0},
		{"one row", []string{"....", "....", "....", "##.."}, shapes[TetrominoI], 1},
		{"two rows", []string{"....", "....", "##..", "##.."}, shapes[TetrominoO], 0},
		{"square clears two", []string{"....", "....", "..##", "..##"}, NewShape(1, 0, []Offset{{-1, 0}, {-1, 1}, {0, 0}, {0, 1}}), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(NewGridFromRows(tt.rows), tt.shape, nil)
			prev := b.Grid().Occupied()

			nb, cleared, err := b.Place()
			require.NoError(t, err)
			assert.Equal(t, tt.cleared, cleared)

			got := nb.Grid().Occupied()
			bound := prev + tt.shape.Size() - cleared*b.Grid().Cols()
			assert.LessOrEqual(t, got, bound)
			assert.Equal(t, bound, got)
		})
	}
}

func TestPlaceShapeWithoutCells(t *testing.T) {
	b := NewBoard(NewGrid(4, 4), NewShape(0, 1, nil), nil)

	_, _, err := b.Place()
	assert.ErrorIs(t, err, ErrInvalidStartingPosition)
	assert.False(t, b.Check(b.Pose()))
}
