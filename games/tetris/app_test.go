package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppStartsInConfiguredMode(t *testing.T) {
	now := time.Now()
	s := DefaultSettings()

	a := NewApp(s, &seqRand{kinds: []ShapeKind{ShapeO}}, now)
	assert.Equal(t, "player", a.Mode().Name())

	s.StartAgent = true
	a = NewApp(s, &seqRand{kinds: []ShapeKind{ShapeO}}, now)
	assert.Equal(t, "agent", a.Mode().Name())
	assert.Same(t, a.Board(), a.Mode().Board())
}

func TestAppToggleSharesBoard(t *testing.T) {
	now := time.Now()
	a := NewApp(DefaultSettings(), &seqRand{kinds: []ShapeKind{ShapeO, ShapeI}}, now)

	a.Update(true, now.Add(time.Second), Input{})
	require.Equal(t, 1, a.Board().Current().AnchorRow, "gravity moved the piece")

	res := a.Update(true, now.Add(2*time.Second), Input{Toggle: true})
	assert.Equal(t, "agent", a.Mode().Name())
	assert.True(t, res.Committed)
	assert.Equal(t, 4, a.Board().OccupiedCount())

	a.Update(false, now.Add(3*time.Second), Input{Toggle: true})
	assert.Equal(t, "player", a.Mode().Name())
}

func TestAppSprites(t *testing.T) {
	a := NewApp(DefaultSettings(), &seqRand{kinds: []ShapeKind{ShapeT}}, time.Now())
	sprites := a.Sprites(gridLayout)

	require.Len(t, sprites, BoardWidth*BoardHeight+4)
	for _, s := range sprites[:BoardWidth*BoardHeight] {
		assert.False(t, s.Filled)
		assert.Equal(t, ColorEmpty, s.Color)
	}

	active := sprites[BoardWidth*BoardHeight:]
	want := [][2]float64{{4, 0}, {3, 1}, {4, 1}, {5, 1}}
	for i, s := range active {
		assert.True(t, s.Active)
		assert.Equal(t, ShapeOf(ShapeT).Color, s.Color)
		assert.Equal(t, want[i][0], s.X)
		assert.Equal(t, want[i][1], s.Y)
	}
}
