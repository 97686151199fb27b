// Package opt provides unit tests for optimizers.
package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

// TestSGDStep tests SGD step computation.
func TestSGDStep(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	param := mat.NewDense(1, 3, []float64{1.0, 2.0, 3.0})
	grad := mat.NewDense(1, 3, []float64{0.1, 0.2, 0.3})

	updated := sgd.Step(param, grad)

	// Expected: param - lr * grad
	want := []float64{0.99, 1.98, 2.97}
	for i, w := range want {
		assert.InDelta(t, w, updated.At(0, i), 1e-10)
	}

	// Step must not touch the original parameter
	assert.Equal(t, 1.0, param.At(0, 0))
}

// TestSGDStepInPlace tests in-place SGD update.
func TestSGDStepInPlace(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	param := mat.NewDense(2, 2, []float64{1.0, 2.0, 3.0, 4.0})
	grad := mat.NewDense(2, 2, []float64{0.1, 0.2, 0.3, 0.4})

	sgd.StepInPlace(param, grad)

	want := mat.NewDense(2, 2, []float64{0.99, 1.98, 2.97, 3.96})
	r, c := param.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			assert.InDelta(t, want.At(i, j), param.At(i, j), 1e-10)
		}
	}

	// Gradient operand is untouched
	assert.Equal(t, 0.1, grad.At(0, 0))
}

// TestSGDStepShapeMismatch tests error handling for non-conformant shapes.
func TestSGDStepShapeMismatch(t *testing.T) {
	sgd := SGD{LearningRate: 0.1}

	param := mat.NewDense(2, 2, nil)
	grad := mat.NewDense(2, 3, nil)

	assert.Panics(t, func() { sgd.StepInPlace(param, grad) })
}
