package tetris

import "fmt"

// ShapeKind identifies one of the seven tetrominoes.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeZ
	ShapeT
	NumShapes
)

func (k ShapeKind) String() string {
	if k >= NumShapes {
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
	return shapeTable[k].Name
}

// Pattern is a 4x4 occupancy bitmap, indexed [row][col].
type Pattern [4][4]bool

// Cols returns the leftmost and rightmost occupied columns.
func (p Pattern) Cols() (int, int) {
	lo, hi := 4, -1
	for _, row := range p {
		for col, set := range row {
			if !set {
				continue
			}
			lo = min(lo, col)
			hi = max(hi, col)
		}
	}
	return lo, hi
}

// Color is an RGB triple used by renderers.
type Color struct {
	R, G, B uint8
}

var (
	ColorEmpty = Color{245, 245, 245}
	ColorFrame = Color{26, 26, 26}
)

// Shape holds the read-only rotation patterns of a tetromino.
type Shape struct {
	Kind      ShapeKind
	Name      string
	Color     Color
	Rotations [4]Pattern
}

// shapeTable is built once at init and never mutated.
var shapeTable = [NumShapes]Shape{
	{
		Kind:  ShapeI,
		Name:  "I",
		Color: Color{255, 109, 194},
		Rotations: patterns(
			".#..", "....", ".#..", "....",
			".#..", "####", ".#..", "####",
			".#..", "....", ".#..", "....",
			".#..", "....", ".#..", "....",
		),
	},
	{
		Kind:  ShapeJ,
		Name:  "J",
		Color: Color{253, 249, 0},
		Rotations: patterns(
			"..#.", ".#..", "..##", "....",
			"..#.", ".###", "..#.", ".###",
			".##.", "....", "..#.", "...#",
			"....", "....", "....", "....",
		),
	},
	{
		Kind:  ShapeL,
		Name:  "L",
		Color: Color{0, 228, 48},
		Rotations: patterns(
			".#..", "....", "##..", "..#.",
			".#..", "###.", ".#..", "###.",
			".##.", "#...", ".#..", "....",
			"....", "....", "....", "....",
		),
	},
	{
		Kind:  ShapeO,
		Name:  "O",
		Color: Color{0, 121, 241},
		Rotations: patterns(
			".##.", ".##.", ".##.", ".##.",
			".##.", ".##.", ".##.", ".##.",
			"....", "....", "....", "....",
			"....", "....", "....", "....",
		),
	},
	{
		Kind:  ShapeS,
		Name:  "S",
		Color: Color{112, 31, 126},
		Rotations: patterns(
			".##.", ".#..", ".##.", ".#..",
			"##..", ".##.", "##..", ".##.",
			"....", "..#.", "....", "..#.",
			"....", "....", "....", "....",
		),
	},
	{
		Kind:  ShapeZ,
		Name:  "Z",
		Color: Color{255, 161, 0},
		Rotations: patterns(
			".##.", "...#", ".##.", "...#",
			"..##", "..##", "..##", "..##",
			"....", "..#.", "....", "..#.",
			"....", "....", "....", "....",
		),
	},
	{
		Kind:  ShapeT,
		Name:  "T",
		Color: Color{211, 176, 131},
		Rotations: patterns(
			".#..", ".#..", "....", ".#..",
			"###.", ".##.", "###.", "##..",
			"....", ".#..", ".#..", ".#..",
			"....", "....", "....", "....",
		),
	},
}

// patterns reads four rotation bitmaps laid out side by side: each group of
// four strings is one grid row across rotations 0..3.
func patterns(rows ...string) [4]Pattern {
	if len(rows) != 16 {
		panic(fmt.Sprintf("shape table: want 16 pattern rows, got %d", len(rows)))
	}
	var out [4]Pattern
	for i, row := range rows {
		r, rot := i/4, i%4
		if len(row) != 4 {
			panic(fmt.Sprintf("shape table: bad pattern row %q", row))
		}
		for c := 0; c < 4; c++ {
			out[rot][r][c] = row[c] == '#'
		}
	}
	return out
}

// ShapeOf returns the shared shape definition. An out-of-range kind is a
// programming error and panics.
func ShapeOf(kind ShapeKind) *Shape {
	if kind >= NumShapes {
		panic(fmt.Sprintf("invalid tetromino kind %d", kind))
	}
	return &shapeTable[kind]
}
