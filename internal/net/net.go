// Package net provides the fixed two-layer feedforward network and its
// full-batch training loop.
package net

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/xornet-ml/xornet/internal/activations"
	"github.com/xornet-ml/xornet/internal/loss"
	"github.com/xornet-ml/xornet/internal/matrix"
	"github.com/xornet-ml/xornet/internal/opt"
)

var (
	// ErrBadConfig reports an invalid configuration or data that does not
	// conform to the configured dimensions.
	ErrBadConfig = errors.New("net: invalid configuration")

	// ErrNonFinite reports that a loss or parameter value became NaN or
	// infinite during training.
	ErrNonFinite = errors.New("net: non-finite value")
)

// Config holds the network dimensions and training hyperparameters.
// Shapes are fixed for the lifetime of a training run.
type Config struct {
	InputDim  int
	HiddenDim int
	OutputDim int

	LearningRate   float64
	Iterations     int
	ReportInterval int
}

// validate checks that every field is in range.
func (c Config) validate() error {
	switch {
	case c.InputDim < 1:
		return fmt.Errorf("%w: input dim %d", ErrBadConfig, c.InputDim)
	case c.HiddenDim < 1:
		return fmt.Errorf("%w: hidden dim %d", ErrBadConfig, c.HiddenDim)
	case c.OutputDim < 1:
		return fmt.Errorf("%w: output dim %d", ErrBadConfig, c.OutputDim)
	case c.LearningRate <= 0:
		return fmt.Errorf("%w: learning rate %v", ErrBadConfig, c.LearningRate)
	case c.Iterations < 1:
		return fmt.Errorf("%w: iterations %d", ErrBadConfig, c.Iterations)
	case c.ReportInterval < 1:
		return fmt.Errorf("%w: report interval %d", ErrBadConfig, c.ReportInterval)
	}
	return nil
}

// Parameters is the trainable state: two weight matrices and two bias row
// vectors, mutated in place by the optimizer every iteration.
type Parameters struct {
	W1 *mat.Dense // InputDim x HiddenDim
	B1 *mat.Dense // 1 x HiddenDim, broadcast across the batch
	W2 *mat.Dense // HiddenDim x OutputDim
	B2 *mat.Dense // 1 x OutputDim, broadcast across the batch
}

// hasNonFinite reports whether any parameter picked up a NaN or infinity,
// which only happens under pathological learning rates.
func (p *Parameters) hasNonFinite() bool {
	return matrix.HasNonFinite(p.W1) || matrix.HasNonFinite(p.B1) ||
		matrix.HasNonFinite(p.W2) || matrix.HasNonFinite(p.B2)
}

// Cache holds one iteration's forward-pass intermediates, consumed by the
// same iteration's backward pass and then discarded.
type Cache struct {
	Z1   *mat.Dense // hidden pre-activation, N x HiddenDim
	A1   *mat.Dense // hidden activation, N x HiddenDim
	Z2   *mat.Dense // output pre-activation, N x OutputDim
	YHat *mat.Dense // prediction, N x OutputDim
}

// Gradients holds the loss gradient for every parameter, shaped like the
// parameter it updates.
type Gradients struct {
	W1 *mat.Dense
	B1 *mat.Dense
	W2 *mat.Dense
	B2 *mat.Dense
}

// Network is a two-layer feedforward network (one sigmoid hidden layer,
// one sigmoid output layer) trained with full-batch gradient descent.
type Network struct {
	cfg    Config
	params *Parameters
	act    activations.Activation
	loss   loss.Loss
	opt    opt.Optimizer
}

// New creates a network with weights drawn from init and biases at zero.
func New(cfg Config, init Initializer) (*Network, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	w1, w2 := init.Initialize(cfg.InputDim, cfg.HiddenDim, cfg.OutputDim)
	if r, c := w1.Dims(); r != cfg.InputDim || c != cfg.HiddenDim {
		return nil, fmt.Errorf("%w: initializer produced W1 %dx%d, want %dx%d",
			ErrBadConfig, r, c, cfg.InputDim, cfg.HiddenDim)
	}
	if r, c := w2.Dims(); r != cfg.HiddenDim || c != cfg.OutputDim {
		return nil, fmt.Errorf("%w: initializer produced W2 %dx%d, want %dx%d",
			ErrBadConfig, r, c, cfg.HiddenDim, cfg.OutputDim)
	}

	return &Network{
		cfg: cfg,
		params: &Parameters{
			W1: w1,
			B1: mat.NewDense(1, cfg.HiddenDim, nil),
			W2: w2,
			B2: mat.NewDense(1, cfg.OutputDim, nil),
		},
		act:  activations.Sigmoid{},
		loss: loss.MSE{},
		opt:  opt.SGD{LearningRate: cfg.LearningRate},
	}, nil
}

// Config returns the network configuration.
func (n *Network) Config() Config {
	return n.cfg
}

// Params returns the network's trainable parameters.
func (n *Network) Params() *Parameters {
	return n.params
}

// Forward performs a forward pass over the batch x, returning the cache of
// intermediates. Deterministic given fixed parameters and input.
func (n *Network) Forward(x *mat.Dense) *Cache {
	var z1 mat.Dense
	z1.Mul(x, n.params.W1)
	z1b := matrix.AddRowVector(&z1, n.params.B1)
	a1 := matrix.ApplyElem(n.act.Activate, z1b)

	var z2 mat.Dense
	z2.Mul(a1, n.params.W2)
	z2b := matrix.AddRowVector(&z2, n.params.B2)
	yHat := matrix.ApplyElem(n.act.Activate, z2b)

	return &Cache{Z1: z1b, A1: a1, Z2: z2b, YHat: yHat}
}

// Predict runs a forward pass and returns only the prediction matrix.
func (n *Network) Predict(x *mat.Dense) *mat.Dense {
	return n.Forward(x).YHat
}

// Backward computes the gradient of the loss with respect to every
// parameter, given the batch, targets and the current iteration's forward
// cache. Purely algebraic; does not touch the parameters.
func (n *Network) Backward(x, y *mat.Dense, c *Cache) *Gradients {
	// dŷ = -(y - ŷ), unaveraged (see loss.MSE.Backward)
	dYHat := n.loss.Backward(c.YHat, y)

	// chain rule through the output sigmoid
	var dZ2 mat.Dense
	dZ2.MulElem(dYHat, matrix.ApplyElem(n.act.Derivative, c.YHat))

	var dW2 mat.Dense
	dW2.Mul(c.A1.T(), &dZ2)
	dB2 := matrix.ColSums(&dZ2)

	// propagate error back through the output weights
	var dA1 mat.Dense
	dA1.Mul(&dZ2, n.params.W2.T())

	var dZ1 mat.Dense
	dZ1.MulElem(&dA1, matrix.ApplyElem(n.act.Derivative, c.A1))

	var dW1 mat.Dense
	dW1.Mul(x.T(), &dZ1)
	dB1 := matrix.ColSums(&dZ1)

	return &Gradients{W1: &dW1, B1: dB1, W2: &dW2, B2: dB2}
}

// step applies one in-place gradient-descent update to all four parameters.
// All four gradients come from the same pre-update forward cache, so the
// update order does not matter.
func (n *Network) step(g *Gradients) {
	n.opt.StepInPlace(n.params.W1, g.W1)
	n.opt.StepInPlace(n.params.B1, g.B1)
	n.opt.StepInPlace(n.params.W2, g.W2)
	n.opt.StepInPlace(n.params.B2, g.B2)
}

// Result holds the final state of a completed training run.
type Result struct {
	YHat *mat.Dense
	Loss float64
}

// Fit trains the network on the full batch (x, y) for the configured number
// of iterations, invoking callbacks with the current loss at every multiple
// of ReportInterval (including iteration 0). Every iteration after
// initialization is fully deterministic.
//
// Fit returns ErrNonFinite if the loss stops being a finite number, which
// only happens under pathological learning rates.
func (n *Network) Fit(x, y *mat.Dense, callbacks ...Callback) (*Result, error) {
	if err := n.checkBatch(x, y); err != nil {
		return nil, err
	}

	for _, cb := range callbacks {
		cb.OnTrainBegin(n)
	}

	for iter := 0; iter < n.cfg.Iterations; iter++ {
		cache := n.Forward(x)
		l := n.loss.Forward(cache.YHat, y)
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("iteration %d: loss %v: %w", iter, l, ErrNonFinite)
		}

		if iter%n.cfg.ReportInterval == 0 {
			for _, cb := range callbacks {
				cb.OnIterationEnd(iter, l, n)
			}
		}

		grads := n.Backward(x, y, cache)
		n.step(grads)

		if n.params.hasNonFinite() {
			return nil, fmt.Errorf("iteration %d: parameters: %w", iter, ErrNonFinite)
		}
	}

	final := n.Forward(x)
	result := &Result{YHat: final.YHat, Loss: n.loss.Forward(final.YHat, y)}

	for _, cb := range callbacks {
		cb.OnTrainEnd(n)
	}
	return result, nil
}

// checkBatch verifies that the batch shapes conform to the configured
// dimensions before any matrix operation can panic on them.
func (n *Network) checkBatch(x, y *mat.Dense) error {
	xr, xc := x.Dims()
	yr, yc := y.Dims()
	if xc != n.cfg.InputDim {
		return fmt.Errorf("%w: input batch is %dx%d, want %d columns",
			ErrBadConfig, xr, xc, n.cfg.InputDim)
	}
	if yc != n.cfg.OutputDim {
		return fmt.Errorf("%w: target batch is %dx%d, want %d columns",
			ErrBadConfig, yr, yc, n.cfg.OutputDim)
	}
	if xr != yr {
		return fmt.Errorf("%w: input batch has %d rows, target batch has %d",
			ErrBadConfig, xr, yr)
	}
	return nil
}
