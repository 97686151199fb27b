package net

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGradientMatchesFiniteDifference verifies the analytic backward pass
// against a central finite difference for every element of every parameter
// tensor. The backward pass computes the exact gradient of the unaveraged
// objective (1/2)*sum((y - ŷ)^2), which is what the finite difference
// probes here.
func TestGradientMatchesFiniteDifference(t *testing.T) {
	cfg := Config{
		InputDim:       2,
		HiddenDim:      3,
		OutputDim:      2,
		LearningRate:   0.1,
		Iterations:     1,
		ReportInterval: 1,
	}
	n, err := New(cfg, NewUniformInitializer(7))
	require.NoError(t, err)

	x := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	y := mat.NewDense(4, 2, []float64{
		0, 1,
		1, 0,
		1, 0,
		0, 1,
	})

	cache := n.Forward(x)
	grads := n.Backward(x, y, cache)

	objective := func() float64 {
		var d mat.Dense
		d.Sub(y, n.Forward(x).YHat)
		d.MulElem(&d, &d)
		return 0.5 * mat.Sum(&d)
	}

	const h = 1e-5
	const tol = 1e-4
	check := func(name string, param, grad *mat.Dense) {
		r, c := param.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				orig := param.At(i, j)
				param.Set(i, j, orig+h)
				plus := objective()
				param.Set(i, j, orig-h)
				minus := objective()
				param.Set(i, j, orig)

				numeric := (plus - minus) / (2 * h)
				assert.InDelta(t, numeric, grad.At(i, j), tol,
					fmt.Sprintf("%s[%d,%d]", name, i, j))
			}
		}
	}

	check("dW1", n.params.W1, grads.W1)
	check("dB1", n.params.B1, grads.B1)
	check("dW2", n.params.W2, grads.W2)
	check("dB2", n.params.B2, grads.B2)
}

// TestGradientZeroAtPerfectFit verifies that the residual, and with it
// every parameter gradient, vanishes when predictions equal targets.
func TestGradientZeroAtPerfectFit(t *testing.T) {
	n, err := New(testConfig(2, 3, 1), NewUniformInitializer(13))
	require.NoError(t, err)

	x := testBatch(4, 2)
	cache := n.Forward(x)
	// use the network's own predictions as targets
	y := mat.DenseCopyOf(cache.YHat)

	grads := n.Backward(x, y, cache)

	for name, g := range map[string]*mat.Dense{
		"dW1": grads.W1, "dB1": grads.B1, "dW2": grads.W2, "dB2": grads.B2,
	} {
		r, c := g.Dims()
		zero := mat.NewDense(r, c, nil)
		assert.True(t, mat.EqualApprox(zero, g, 1e-12), "%s should vanish", name)
	}
}
