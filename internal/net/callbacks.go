package net

import "fmt"

// Callback defines the interface for training callbacks. OnIterationEnd is
// invoked at every multiple of the configured report interval, including
// iteration 0.
type Callback interface {
	OnTrainBegin(n *Network)
	OnIterationEnd(iteration int, loss float64, n *Network)
	OnTrainEnd(n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (c BaseCallback) OnTrainBegin(n *Network) {}

func (c BaseCallback) OnIterationEnd(iteration int, loss float64, n *Network) {}

func (c BaseCallback) OnTrainEnd(n *Network) {}

// Logger logs training progress to console.
type Logger struct {
	BaseCallback
}

func (c Logger) OnIterationEnd(iteration int, loss float64, n *Network) {
	fmt.Printf("Iteration %d: loss = %.6f\n", iteration, loss)
}

// History records the stream of (iteration, loss) reports produced during
// a training run.
type History struct {
	BaseCallback
	Iterations []int
	Losses     []float64
}

func (c *History) OnIterationEnd(iteration int, loss float64, n *Network) {
	c.Iterations = append(c.Iterations, iteration)
	c.Losses = append(c.Losses, loss)
}
