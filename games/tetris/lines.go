package tetris

// FindFullRow returns the bottommost row whose cells are all occupied.
func (b *Board) FindFullRow() (int, bool) {
	for row := b.height - 1; row >= 0; row-- {
		if b.rowFull(row) {
			return row, true
		}
	}
	return 0, false
}

func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		index, _ := b.IndexOf(row, col)
		if !b.IsOccupied(index) {
			return false
		}
	}
	return true
}

// ClearRow empties the row and drops every cell above it by one, column by
// column. Rows below are untouched.
func (b *Board) ClearRow(row int) {
	for col := 0; col < b.width; col++ {
		below, _ := b.IndexOf(row, col)
		b.Clear(below)

		for r := row - 1; r >= 0; r-- {
			above, _ := b.IndexOf(r, col)
			if b.IsOccupied(above) {
				b.SetOccupied(below, b.cells[above].Kind)
				b.Clear(above)
			}
			below = above
		}
	}
}

// ClearLines clears full rows one at a time until none remain and returns
// how many were removed.
func (b *Board) ClearLines() int {
	cleared := 0
	for {
		row, ok := b.FindFullRow()
		if !ok {
			return cleared
		}
		b.ClearRow(row)
		cleared++
	}
}
