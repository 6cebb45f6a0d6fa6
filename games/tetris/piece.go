package tetris

import "fmt"

// Positions holds the absolute grid indices of a piece's four cells.
type Positions [4]int

// Randomizer draws uniform integers in [0, n). *frand.RNG satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// Piece is a tetromino placed on a board.
type Piece struct {
	shape     *Shape
	Rotation  int
	AnchorRow int // top-left of the 4x4 pattern, board coordinates
	AnchorCol int
	Cells     Positions
}

// NewPiece places a piece of the given kind at the spawn anchor.
func NewPiece(b *Board, kind ShapeKind) Piece {
	p := Piece{
		shape:     ShapeOf(kind),
		AnchorRow: 0,
		AnchorCol: b.width/2 - 2,
	}
	cells, ok := PatternToPositions(b, p.shape.Rotations[0], p.AnchorRow, p.AnchorCol)
	if !ok {
		panic(fmt.Sprintf("spawn of %s does not fit a %dx%d board", p.shape.Name, b.width, b.height))
	}
	p.Cells = cells
	return p
}

// Kind returns the shape identity.
func (p Piece) Kind() ShapeKind { return p.shape.Kind }

// Shape returns the shared shape definition.
func (p Piece) Shape() *Shape { return p.shape }

// Pattern returns the bitmap of the current rotation.
func (p Piece) Pattern() Pattern { return p.shape.Rotations[p.Rotation] }

// PatternToPositions resolves every set cell of the pattern, offset by the
// anchor, to a grid index. Cells are produced in row-major order. The
// resolution fails as a whole if any set cell falls outside the grid.
func PatternToPositions(b *Board, pattern Pattern, anchorRow, anchorCol int) (Positions, bool) {
	var out Positions
	n := 0
	for r, row := range pattern {
		for c, set := range row {
			if !set {
				continue
			}
			index, ok := b.IndexOf(anchorRow+r, anchorCol+c)
			if !ok {
				return Positions{}, false
			}
			out[n] = index
			n++
		}
	}
	return out, true
}

func (b *Board) randomPiece() Piece {
	return NewPiece(b, ShapeKind(b.rng.Intn(int(NumShapes))))
}
