package net

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Initializer produces the initial weight matrices for a network. Biases
// always start at zero. Modeling initialization as an injected capability
// lets tests supply exact values instead of depending on a random source.
type Initializer interface {
	// Initialize returns W1 (inputDim x hiddenDim) and W2
	// (hiddenDim x outputDim).
	Initialize(inputDim, hiddenDim, outputDim int) (w1, w2 *mat.Dense)
}

// UniformInitializer draws weights uniformly from [-1, 1) using its own
// random source, so two initializers seeded identically produce identical
// networks.
type UniformInitializer struct {
	Rand *rand.Rand
}

// NewUniformInitializer creates a seeded uniform initializer.
func NewUniformInitializer(seed int64) *UniformInitializer {
	return &UniformInitializer{Rand: rand.New(rand.NewSource(seed))}
}

// Initialize fills W1 then W2 in row-major order.
func (u *UniformInitializer) Initialize(inputDim, hiddenDim, outputDim int) (*mat.Dense, *mat.Dense) {
	w1 := mat.NewDense(inputDim, hiddenDim, nil)
	w2 := mat.NewDense(hiddenDim, outputDim, nil)
	for _, w := range []*mat.Dense{w1, w2} {
		data := w.RawMatrix().Data
		for i := range data {
			data[i] = u.Rand.Float64()*2 - 1
		}
	}
	return w1, w2
}

// ValuesInitializer returns fixed weight matrices, for deterministic tests
// and checkpoint restoration.
type ValuesInitializer struct {
	W1 *mat.Dense
	W2 *mat.Dense
}

// Initialize returns copies of the stored matrices, so the caller's values
// are never aliased by the network.
func (v *ValuesInitializer) Initialize(inputDim, hiddenDim, outputDim int) (*mat.Dense, *mat.Dense) {
	var w1, w2 mat.Dense
	w1.CloneFrom(v.W1)
	w2.CloneFrom(v.W2)
	return &w1, &w2
}
