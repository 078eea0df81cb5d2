package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridFromRowsRoundTrip(t *testing.T) {
	rows := []string{
		"#..#",
		".##.",
		"....",
	}
	g := NewGridFromRows(rows)

	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 4, g.Occupied())
	assert.True(t, g.Get(0, 3))
	assert.False(t, g.Get(2, 0))
	if diff := cmp.Diff(strings.Join(rows, "\n")+"\n", g.String()); diff != "" {
		t.Errorf("String mismatch (-want +got):\n%s", diff)
	}
}

func TestGridRemoveRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    []string
		want    []string
		removed int
	}{
		{
			name:    "none",
			rows:    []string{"...", "#.#", ".##"},
			want:    []string{"...", "#.#", ".##"},
			removed: 0,
		},
		{
			name:    "separated",
			rows:    []string{"#..", "###", ".#.", "###"},
			want:    []string{"...", "...", "#..", ".#."},
			removed: 2,
		},
		{
			name:    "adjacent",
			rows:    []string{"..#", "###", "###", "#.."},
			want:    []string{"...", "...", "..#", "#.."},
			removed: 2,
		},
		{
			name:    "all",
			rows:    []string{"##", "##"},
			want:    []string{"..", ".."},
			removed: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGridFromRows(tt.rows)
			assert.Equal(t, tt.removed, g.RemoveRows())
			if diff := cmp.Diff(NewGridFromRows(tt.want).String(), g.String()); diff != "" {
				t.Errorf("grid mismatch (-want +got):\n%s", diff)
			}

			// 2回目は何も消えず、盤面も変わらない
			before := g.Copy()
			assert.Equal(t, 0, g.RemoveRows())
			assert.True(t, before.Equal(g), "second RemoveRows changed the grid:\n%s", g)
		})
	}
}

func TestGridMaxCols(t *testing.T) {
	g := NewGrid(2, MaxCols)
	for c := 0; c < MaxCols; c++ {
		g.Set(1, c, true)
	}
	require.True(t, g.IsFull(1))
	assert.False(t, g.IsFull(0))
	assert.Equal(t, 1, g.RemoveRows())
	assert.Equal(t, 0, g.Occupied())

	assert.Panics(t, func() { NewGrid(2, MaxCols+1) })
	assert.Panics(t, func() { NewGrid(0, 4) })
}

func TestGridCopyIsIndependent(t *testing.T) {
	g := NewGridFromRows([]string{"..", "#."})
	cp := g.Copy()
	cp.Set(0, 0, true)

	assert.False(t, g.Get(0, 0))
	assert.False(t, g.Equal(cp))
	cp.Set(0, 0, false)
	assert.True(t, g.Equal(cp))
}
