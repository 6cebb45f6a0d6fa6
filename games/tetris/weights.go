package tetris

import "fmt"

// Feature indexes a heuristic weight.
type Feature int

const (
	FeatureLines Feature = iota
	FeatureWall
	FeatureBlock
	FeatureHoles
	FeatureHeight
	NumFeatures
)

var featureNames = [NumFeatures]string{"lines", "wall", "block", "holes", "height"}

func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureNames[f]
}

// Weights are the signed coefficients of the placement heuristic.
type Weights [NumFeatures]float64

// DefaultWeights favours completed rows, contact with walls and blocks, and
// deep (high row number) placements.
var DefaultWeights = Weights{
	FeatureLines:  10.0,
	FeatureWall:   0.5,
	FeatureBlock:  1.0,
	FeatureHoles:  0.8,
	FeatureHeight: 0.4, // rows count down from the top, so a larger row is deeper
}

// Float64Source draws uniform floats in [0, 1).
type Float64Source interface {
	Float64() float64
}

// Mutate returns a copy with every coefficient nudged by a uniform amount in
// [-amount, amount). It is a manual tuning aid; nothing learns from it.
func (w Weights) Mutate(rng Float64Source, amount float64) Weights {
	out := w
	for i := range out {
		out[i] += (rng.Float64()*2 - 1) * amount
	}
	return out
}

// Only returns weights with a single feature enabled.
func Only(f Feature, weight float64) Weights {
	var w Weights
	w[f] = weight
	return w
}
