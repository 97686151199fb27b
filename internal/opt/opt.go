// Package opt provides optimization algorithms.
package opt

import "gonum.org/v1/gonum/mat"

// Optimizer updates network parameters based on gradients.
type Optimizer interface {
	// Step computes updated parameters: param - lr * grad
	// Returns a new matrix with updated values
	Step(param, grad *mat.Dense) *mat.Dense

	// StepInPlace updates param in-place: param = param - lr * grad
	// This avoids allocations in the training loop
	StepInPlace(param, grad *mat.Dense)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// Step computes updated parameters: param - lr * grad
func (s SGD) Step(param, grad *mat.Dense) *mat.Dense {
	var scaled, out mat.Dense
	scaled.Scale(s.LearningRate, grad)
	out.Sub(param, &scaled)
	return &out
}

// StepInPlace updates param in-place: param = param - lr * grad
func (s SGD) StepInPlace(param, grad *mat.Dense) {
	var scaled mat.Dense
	scaled.Scale(s.LearningRate, grad)
	param.Sub(param, &scaled)
}
