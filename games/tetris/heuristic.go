package tetris

import (
	"github.com/kamstrup/intmap"
	"github.com/samber/lo"
)

// Scorer rates candidate placements against a fixed board state. Per-cell
// feature totals are memoized, so a Scorer must not outlive the board state
// it was created for.
type Scorer struct {
	board   *Board
	weights Weights
	cells   *intmap.Map[int, float64]
}

// NewScorer creates a scorer for one decision on b.
func NewScorer(b *Board, w Weights) *Scorer {
	return &Scorer{
		board:   b,
		weights: w,
		cells:   intmap.New[int, float64](64),
	}
}

// Score is the weighted sum of all features for a placement.
func (s *Scorer) Score(cells Positions) float64 {
	score := s.weights[FeatureLines] * s.linesFeature(cells)
	return score + lo.SumBy(cells[:], s.cellScore)
}

// linesFeature is 1 if filling cells would complete at least one row.
func (s *Scorer) linesFeature(cells Positions) float64 {
	b := s.board
	candidate := lo.SliceToMap(cells[:], func(i int) (int, struct{}) { return i, struct{}{} })
	rows := lo.Uniq(lo.Map(cells[:], func(i int, _ int) int {
		row, _ := b.RowCol(i)
		return row
	}))

	for _, row := range rows {
		full := true
		for col := 0; col < b.width && full; col++ {
			index, _ := b.IndexOf(row, col)
			_, mine := candidate[index]
			full = mine || b.IsOccupied(index)
		}
		if full {
			return 1
		}
	}
	return 0
}

// cellScore sums the per-cell features of one index, computing them at most
// once per scorer.
func (s *Scorer) cellScore(index int) float64 {
	if v, ok := s.cells.Get(index); ok {
		return v
	}

	b := s.board
	row, col := b.RowCol(index)

	var wall float64
	if col == 0 || col == b.width-1 {
		wall = 1
	}

	var block float64
	for _, d := range [][2]int{{0, -1}, {0, 1}, {1, 0}} {
		if n, ok := b.IndexOf(row+d[0], col+d[1]); ok && b.IsOccupied(n) {
			block++
		}
	}

	var holes float64
	if row < b.height-1 {
		if n, ok := b.IndexOf(row+1, col); ok && b.IsOccupied(n) {
			holes = 1
		}
	}

	w := s.weights
	v := w[FeatureWall]*wall + w[FeatureBlock]*block + w[FeatureHoles]*holes + w[FeatureHeight]*float64(row)
	s.cells.Put(index, v)
	return v
}

// Cached reports how many distinct cells have been scored.
func (s *Scorer) Cached() int {
	return s.cells.Len()
}
