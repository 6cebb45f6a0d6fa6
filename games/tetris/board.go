package tetris

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is a single grid position
type Cell struct {
	Row      int
	Col      int
	Occupied bool
	Kind     ShapeKind // only meaningful when Occupied
}

// Board owns the grid, the falling piece and the piece queued after it.
type Board struct {
	width  int
	height int
	cells  []Cell

	current Piece
	next    Piece
	rng     Randomizer
	stats   Stats
}

// Stats tracks progress across the lifetime of a board, including resets.
type Stats struct {
	Score  int
	Lines  int
	Level  int
	Pieces int
	Resets int

	BestScore int // highest score of a finished game
}

// NewBoard creates an empty board and draws the first two pieces.
func NewBoard(width, height int, rng Randomizer) *Board {
	b := &Board{
		width:  width,
		height: height,
		rng:    rng,
		stats:  Stats{Level: 1},
	}
	b.resetGrid()
	b.current = b.randomPiece()
	b.next = b.randomPiece()
	return b
}

func (b *Board) resetGrid() {
	b.cells = make([]Cell, b.width*b.height)

	i := 0
	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			b.cells[i] = Cell{Row: row, Col: col}
			i++
		}
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Size returns the total number of cells.
func (b *Board) Size() int { return len(b.cells) }

// IndexOf converts a row/column pair into a linear cell index. The second
// return value is false when the coordinate lies outside the grid.
func (b *Board) IndexOf(row, col int) (int, bool) {
	if row < 0 || col < 0 || row >= b.height || col >= b.width {
		return 0, false
	}
	return row*b.width + col, true
}

// RowCol returns the coordinate of a valid index.
func (b *Board) RowCol(index int) (int, int) {
	c := &b.cells[index]
	return c.Row, c.Col
}

func (b *Board) IsOccupied(index int) bool {
	return b.cells[index].Occupied
}

func (b *Board) SetOccupied(index int, kind ShapeKind) {
	b.cells[index].Occupied = true
	b.cells[index].Kind = kind
}

func (b *Board) Clear(index int) {
	b.cells[index].Occupied = false
}

// Cell returns a copy of the cell at index.
func (b *Board) Cell(index int) Cell {
	return b.cells[index]
}

// Cells exposes the grid for read-only iteration.
func (b *Board) Cells() []Cell {
	return b.cells
}

// OccupiedCount counts filled cells.
func (b *Board) OccupiedCount() int {
	n := 0
	for i := range b.cells {
		if b.cells[i].Occupied {
			n++
		}
	}
	return n
}

// Current returns the falling piece.
func (b *Board) Current() Piece { return b.current }

// Next returns the piece that spawns after the current one commits.
func (b *Board) Next() Piece { return b.next }

// Stats returns a snapshot of the scoring counters.
func (b *Board) Stats() Stats { return b.stats }

// Layout maps grid coordinates to pixel (or terminal character) positions.
type Layout struct {
	OriginX    float64
	OriginY    float64
	CellWidth  float64
	CellHeight float64
}

// CenteredLayout centers a board of the given dimensions inside a window.
func CenteredLayout(windowWidth, windowHeight, cellSize float64, cols, rows int) Layout {
	return Layout{
		OriginX:    windowWidth/2 - cellSize*float64(cols)/2,
		OriginY:    windowHeight/2 - cellSize*float64(rows)/2,
		CellWidth:  cellSize,
		CellHeight: cellSize,
	}
}

// Pixel returns the top-left corner of the cell at row/col.
func (l Layout) Pixel(row, col int) (float64, float64) {
	return l.OriginX + float64(col)*l.CellWidth, l.OriginY + float64(row)*l.CellHeight
}

// Contains reports whether the point lies strictly inside the cell.
func (l Layout) Contains(x, y float64, row, col int) bool {
	cx, cy := l.Pixel(row, col)
	return x > cx && y > cy && x < cx+l.CellWidth && y < cy+l.CellHeight
}
