// Package activations provides activation functions for the trainer.
package activations

import "math"

// Activation is an activation function with derivative.
//
// Derivative is expressed in terms of the activation's own output rather
// than the pre-activation: callers pass a = f(z), not z. This avoids
// recomputing the exponential during backpropagation.
type Activation interface {
	// Activate computes f(z)
	Activate(z float64) float64

	// Derivative computes f'(z) given a = f(z)
	Derivative(a float64) float64
}

// Sigmoid activation function.
type Sigmoid struct{}

// Activate computes 1 / (1 + exp(-z))
func (s Sigmoid) Activate(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Derivative computes a * (1 - a) for an already-computed sigmoid output a.
func (s Sigmoid) Derivative(a float64) float64 {
	return a * (1 - a)
}
