package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalRendererPlain(t *testing.T) {
	b := newTestBoard(ShapeT, ShapeI)
	setRow(t, b, 19, "##........", ShapeZ)

	var sb strings.Builder
	r := &TerminalRenderer{Color: false}
	require.NoError(t, r.Render(&sb, "agent", b))
	out := sb.String()

	assert.Contains(t, out, "TETRIS [agent] | Score: 0 | Lines: 0 | Level: 1")
	assert.Contains(t, out, "║ZZZZ................║")
	assert.Contains(t, out, "║......TTTTTT........║")
	assert.Equal(t, BoardHeight, strings.Count(out, "║")/2)
	assert.Contains(t, out, "Next Piece:\n    II    \n")
}

func TestTerminalRendererColor(t *testing.T) {
	b := newTestBoard(ShapeO)
	var sb strings.Builder
	r := &TerminalRenderer{Color: true}
	require.NoError(t, r.Render(&sb, "player", b))

	c := ShapeOf(ShapeO).Color
	assert.Contains(t, sb.String(), "\033[48;2;0;121;241m  \033[0m")
	assert.Equal(t, uint8(241), c.B)
}
