// Package loss provides the loss function used by the trainer.
package loss

import "gonum.org/v1/gonum/mat"

// Loss is a loss function with derivative, operating on full batches.
type Loss interface {
	// Forward computes the scalar loss between predicted and true values.
	Forward(yPred, yTrue *mat.Dense) float64

	// Backward computes the gradient of the loss w.r.t. the prediction,
	// one element per prediction element.
	Backward(yPred, yTrue *mat.Dense) *mat.Dense
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes the mean of (y_true - y_pred)^2 over every element of
// the batch: both the sample axis and the output axis contribute to the
// average.
func (m MSE) Forward(yPred, yTrue *mat.Dense) float64 {
	r, c := yPred.Dims()
	tr, tc := yTrue.Dims()
	if r != tr || c != tc {
		panic(mat.ErrShape)
	}

	var diff mat.Dense
	diff.Sub(yTrue, yPred)
	diff.MulElem(&diff, &diff)
	return mat.Sum(&diff) / float64(r*c)
}

// Backward computes the backpropagation residual -(y_true - y_pred).
//
// Note the scale convention: this is the gradient of (1/2)*sum((y-ŷ)^2)
// without the 1/N batch-averaging factor used by Forward, so the reported
// loss and the gradient driving updates are deliberately on different
// scales. The training dynamics depend on this convention; do not
// "normalize" it without retuning the learning rate.
func (m MSE) Backward(yPred, yTrue *mat.Dense) *mat.Dense {
	r, c := yPred.Dims()
	tr, tc := yTrue.Dims()
	if r != tr || c != tc {
		panic(mat.ErrShape)
	}

	var grad mat.Dense
	grad.Sub(yPred, yTrue)
	return &grad
}
