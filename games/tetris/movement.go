package tetris

import "github.com/rs/zerolog/log"

// Collision classifies the outcome of a move attempt.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionGround
	CollisionBlock
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionGround:
		return "ground"
	case CollisionBlock:
		return "block"
	}
	return "unknown"
}

// MoveResult reports what a move attempt did to the board.
type MoveResult struct {
	Collision Collision
	Committed bool
	Cleared   int
	GameOver  bool
}

// lineScores is indexed by the number of rows cleared by one commit.
var lineScores = []int{0, 40, 100, 300, 1200}

// Move tries to shift the current piece by dCol/dRow. When the attempt hits
// the ground or another block and commitOnCollision is set, the piece is
// committed in its current position. Walls never commit.
func (b *Board) Move(dCol, dRow int, commitOnCollision bool) MoveResult {
	var res MoveResult
	var target Positions

	for i, index := range b.current.Cells {
		row, col := b.RowCol(index)
		next, ok := b.IndexOf(row+dRow, col+dCol)
		if !ok {
			if row+dRow >= b.height {
				res.Collision = CollisionGround
			} else {
				res.Collision = CollisionWall
			}
			break
		}
		target[i] = next
	}

	if res.Collision == CollisionNone {
		for _, index := range target {
			if b.IsOccupied(index) {
				res.Collision = CollisionBlock
				break
			}
		}
	}

	switch {
	case res.Collision == CollisionNone:
		b.current.Cells = target
		b.current.AnchorRow += dRow
		b.current.AnchorCol += dCol
	case commitOnCollision && (res.Collision == CollisionGround || res.Collision == CollisionBlock):
		res.Committed = true
		res.Cleared, res.GameOver = b.commit()
	}
	return res
}

// Rotate advances the current piece to its next rotation around the same
// anchor. The rotation is rejected if any cell would leave the grid or
// overlap a filled cell.
func (b *Board) Rotate() bool {
	rotation := (b.current.Rotation + 1) % 4
	cells, ok := PatternToPositions(b, b.current.shape.Rotations[rotation], b.current.AnchorRow, b.current.AnchorCol)
	if !ok {
		return false
	}
	for _, index := range cells {
		if b.IsOccupied(index) {
			return false
		}
	}
	b.current.Cells = cells
	b.current.Rotation = rotation
	return true
}

// Place commits the current piece directly at the given resting cells.
func (b *Board) Place(cells Positions) MoveResult {
	b.current.Cells = cells
	cleared, over := b.commit()
	return MoveResult{Collision: CollisionBlock, Committed: true, Cleared: cleared, GameOver: over}
}

// commit writes the current piece into the grid and spawns the next piece.
// Full rows are cleared only if the spawn fits; an overlapping spawn resets
// the board instead.
func (b *Board) commit() (int, bool) {
	kind := b.current.Kind()
	for _, index := range b.current.Cells {
		b.SetOccupied(index, kind)
	}
	b.stats.Pieces++

	b.current = b.next
	b.next = b.randomPiece()

	for _, index := range b.current.Cells {
		if b.IsOccupied(index) {
			b.gameOver()
			return 0, true
		}
	}

	cleared := b.ClearLines()
	if cleared > 0 {
		b.stats.Lines += cleared
		if cleared < len(lineScores) {
			b.stats.Score += lineScores[cleared] * (b.stats.Level + 1)
		}
		b.stats.Level = b.stats.Lines/10 + 1
	}
	return cleared, false
}

func (b *Board) gameOver() {
	log.Info().
		Int("score", b.stats.Score).
		Int("lines", b.stats.Lines).
		Int("pieces", b.stats.Pieces).
		Msg("game over, resetting board")

	b.resetGrid()
	b.current = b.randomPiece()
	b.next = b.randomPiece()
	b.stats = Stats{
		Level:     1,
		Resets:    b.stats.Resets + 1,
		BestScore: max(b.stats.BestScore, b.stats.Score),
	}
}
