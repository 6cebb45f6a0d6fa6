package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFullRowEmpty(t *testing.T) {
	b := newTestBoard(ShapeO)
	_, ok := b.FindFullRow()
	assert.False(t, ok)
}

func TestFindFullRowPrefersBottom(t *testing.T) {
	b := newTestBoard(ShapeO)
	setRow(t, b, 3, "##########", ShapeI)
	setRow(t, b, 12, "##########", ShapeI)

	row, ok := b.FindFullRow()
	require.True(t, ok)
	assert.Equal(t, 12, row)
}

func TestClearRowShiftsColumnsDown(t *testing.T) {
	b := newTestBoard(ShapeO)
	for row := 0; row < b.Height(); row++ {
		pattern := []byte("..........")
		for col := range pattern {
			if (row+col)%3 == 0 {
				pattern[col] = '#'
			}
		}
		setRow(t, b, row, string(pattern), ShapeKind(row%int(NumShapes)))
	}
	setRow(t, b, 5, "##########", ShapeT)

	row, ok := b.FindFullRow()
	require.True(t, ok)
	require.Equal(t, 5, row)

	before := make([]string, b.Height())
	for r := range before {
		before[r] = rowString(b, r)
	}
	kindAbove := b.Cell(index(t, b, 4, 2)).Kind

	b.ClearRow(5)

	assert.Equal(t, before[4], rowString(b, 5))
	assert.Equal(t, kindAbove, b.Cell(index(t, b, 5, 2)).Kind)
	for r := 1; r < 5; r++ {
		assert.Equal(t, before[r-1], rowString(b, r), "row %d", r)
	}
	assert.Equal(t, "..........", rowString(b, 0))
	for r := 6; r < b.Height(); r++ {
		assert.Equal(t, before[r], rowString(b, r), "row %d below the cleared one changed", r)
	}
}

func TestClearRowBelowEmptyRow(t *testing.T) {
	b := newTestBoard(ShapeO)
	setRow(t, b, 19, "##########", ShapeS)
	setRow(t, b, 17, "#.#.#.#.#.", ShapeS)

	b.ClearRow(19)

	assert.Equal(t, "..........", rowString(b, 19))
	assert.Equal(t, "#.#.#.#.#.", rowString(b, 18))
	assert.Equal(t, "..........", rowString(b, 17))
}

func TestClearLinesRepeatsUntilNoneFull(t *testing.T) {
	b := newTestBoard(ShapeO)
	setRow(t, b, 16, "#.........", ShapeL)
	setRow(t, b, 17, "##########", ShapeL)
	setRow(t, b, 18, ".........#", ShapeL)
	setRow(t, b, 19, "##########", ShapeL)

	assert.Equal(t, 2, b.ClearLines())
	assert.Equal(t, "#.........", rowString(b, 18))
	assert.Equal(t, ".........#", rowString(b, 19))
	assert.Equal(t, 2, b.OccupiedCount())
	assert.Zero(t, b.ClearLines())
}
