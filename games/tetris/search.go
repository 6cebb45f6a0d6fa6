package tetris

// Placement is a resting position reachable by rotating the current piece,
// shifting it sideways at its anchor row and dropping it straight down.
type Placement struct {
	Cells     Positions
	Rotation  int
	AnchorCol int
}

// Placements enumerates every resting placement of the current piece over
// all four rotations, scanning anchor columns left to right. Rotations that
// produce the same cells are all kept.
func (b *Board) Placements() []Placement {
	var out []Placement
	piece := b.current

	for rotation, pattern := range piece.shape.Rotations {
		first, last := pattern.Cols()
		for col := -first; col+last < b.width; col++ {
			cells, ok := PatternToPositions(b, pattern, piece.AnchorRow, col)
			if !ok {
				break
			}
			rest, ok := b.drop(cells)
			if !ok {
				continue
			}
			out = append(out, Placement{Cells: rest, Rotation: rotation, AnchorCol: col})
		}
	}
	return out
}

// drop moves cells down one row at a time until the next row would leave the
// grid or overlap. It fails if the starting cells are already blocked.
func (b *Board) drop(cells Positions) (Positions, bool) {
	for _, index := range cells {
		if b.IsOccupied(index) {
			return Positions{}, false
		}
	}

	for {
		var next Positions
		for i, index := range cells {
			next[i] = index + b.width
			if next[i] >= len(b.cells) || b.IsOccupied(next[i]) {
				return cells, true
			}
		}
		cells = next
	}
}
