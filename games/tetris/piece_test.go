package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnResolvesForEveryRotation(t *testing.T) {
	b := newTestBoard(ShapeO)
	for kind := ShapeKind(0); kind < NumShapes; kind++ {
		for rot, pattern := range ShapeOf(kind).Rotations {
			cells, ok := PatternToPositions(b, pattern, 0, BoardWidth/2-2)
			require.True(t, ok, "%s rotation %d", kind, rot)

			distinct := map[int]bool{}
			for _, c := range cells {
				distinct[c] = true
			}
			assert.Len(t, distinct, 4, "%s rotation %d", kind, rot)
		}
	}
}

func TestShapeTableHasFourCellsPerRotation(t *testing.T) {
	for kind := ShapeKind(0); kind < NumShapes; kind++ {
		for rot, pattern := range ShapeOf(kind).Rotations {
			n := 0
			for _, row := range pattern {
				for _, set := range row {
					if set {
						n++
					}
				}
			}
			assert.Equal(t, 4, n, "%s rotation %d", kind, rot)
		}
	}
}

func TestPatternToPositionsRowMajor(t *testing.T) {
	b := newTestBoard(ShapeO)
	cells, ok := PatternToPositions(b, ShapeOf(ShapeT).Rotations[0], 0, 3)
	require.True(t, ok)
	assert.Equal(t, Positions{4, 13, 14, 15}, cells)

	cells, ok = PatternToPositions(b, ShapeOf(ShapeT).Rotations[0], 5, 0)
	require.True(t, ok)
	assert.Equal(t, Positions{51, 60, 61, 62}, cells)
}

func TestPatternToPositionsFailsOffGrid(t *testing.T) {
	b := newTestBoard(ShapeO)
	horizontalI := ShapeOf(ShapeI).Rotations[1]

	tests := []struct {
		name     string
		row, col int
	}{
		{"left wall", 0, -1},
		{"right wall", 0, 7},
		{"floor", 19, 0},
		{"ceiling", -2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := PatternToPositions(b, horizontalI, tt.row, tt.col)
			assert.False(t, ok)
		})
	}

	_, ok := PatternToPositions(b, horizontalI, 0, 6)
	assert.True(t, ok)
}

func TestNewPieceSpawn(t *testing.T) {
	b := newTestBoard(ShapeO)
	p := NewPiece(b, ShapeL)

	assert.Equal(t, ShapeL, p.Kind())
	assert.Equal(t, 0, p.Rotation)
	assert.Equal(t, 0, p.AnchorRow)
	assert.Equal(t, 3, p.AnchorCol)
	assert.Equal(t, Positions{4, 14, 24, 25}, p.Cells)
}

func TestInvalidShapePanics(t *testing.T) {
	b := newTestBoard(ShapeO)
	assert.Panics(t, func() { ShapeOf(NumShapes) })
	assert.Panics(t, func() { NewPiece(b, ShapeKind(42)) })
}

func TestSpawnPanicsOnNarrowBoard(t *testing.T) {
	assert.Panics(t, func() {
		NewBoard(2, 20, &seqRand{kinds: []ShapeKind{ShapeZ}})
	})
}

func TestPatternCols(t *testing.T) {
	first, last := ShapeOf(ShapeI).Rotations[0].Cols()
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, last)

	first, last = ShapeOf(ShapeZ).Rotations[0].Cols()
	assert.Equal(t, 1, first)
	assert.Equal(t, 3, last)
}

func TestShapeKindString(t *testing.T) {
	assert.Equal(t, "T", ShapeT.String())
	assert.Equal(t, "ShapeKind(9)", ShapeKind(9).String())
}
