package tetris

import "testing"

// seqRand deals shape kinds from a fixed cycle.
type seqRand struct {
	kinds []ShapeKind
	i     int
}

func (s *seqRand) Intn(n int) int {
	k := int(s.kinds[s.i%len(s.kinds)])
	s.i++
	return k % n
}

func newTestBoard(kinds ...ShapeKind) *Board {
	return NewBoard(BoardWidth, BoardHeight, &seqRand{kinds: kinds})
}

// setRow marks '#' cells of pattern as occupied by kind; other cells are
// cleared.
func setRow(t *testing.T, b *Board, row int, pattern string, kind ShapeKind) {
	t.Helper()
	if len(pattern) != b.Width() {
		t.Fatalf("row pattern %q has %d columns, board has %d", pattern, len(pattern), b.Width())
	}
	for col, ch := range pattern {
		index, _ := b.IndexOf(row, col)
		if ch == '#' {
			b.SetOccupied(index, kind)
		} else {
			b.Clear(index)
		}
	}
}

func rowString(b *Board, row int) string {
	out := make([]byte, b.Width())
	for col := range out {
		index, _ := b.IndexOf(row, col)
		out[col] = '.'
		if b.IsOccupied(index) {
			out[col] = '#'
		}
	}
	return string(out)
}

func index(t *testing.T, b *Board, row, col int) int {
	t.Helper()
	i, ok := b.IndexOf(row, col)
	if !ok {
		t.Fatalf("(%d,%d) is off the board", row, col)
	}
	return i
}
