package tetris

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Evaluation pairs a candidate placement with its heuristic score.
type Evaluation struct {
	Placement
	Score float64
}

// Agent picks placements with a fixed linear heuristic.
type Agent struct {
	weights Weights
}

func NewAgent(w Weights) *Agent {
	return &Agent{weights: w}
}

func (a *Agent) Weights() Weights { return a.weights }

func (a *Agent) SetWeights(w Weights) { a.weights = w }

// Evaluate scores every placement of the board's current piece in
// enumeration order.
func (a *Agent) Evaluate(b *Board) []Evaluation {
	scorer := NewScorer(b, a.weights)
	return lo.Map(b.Placements(), func(p Placement, _ int) Evaluation {
		return Evaluation{Placement: p, Score: scorer.Score(p.Cells)}
	})
}

// Best returns the highest scoring placement. Ties go to the placement
// enumerated first. It returns false when the piece has nowhere to go.
func (a *Agent) Best(b *Board) (Evaluation, bool) {
	evals := a.Evaluate(b)
	if len(evals) == 0 {
		return Evaluation{}, false
	}
	best := lo.MaxBy(evals, func(e, top Evaluation) bool {
		return e.Score > top.Score
	})

	log.Debug().
		Str("piece", b.current.Kind().String()).
		Int("candidates", len(evals)).
		Int("rotation", best.Rotation).
		Int("col", best.AnchorCol).
		Float64("score", best.Score).
		Msg("agent-decision")
	return best, true
}

// Play places the current piece at its best placement, if any.
func (a *Agent) Play(b *Board) (MoveResult, bool) {
	best, ok := a.Best(b)
	if !ok {
		return MoveResult{}, false
	}
	return b.Place(best.Cells), true
}
