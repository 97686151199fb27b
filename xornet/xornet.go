// Package xornet re-exports the trainer's core types for external callers.
package xornet

import (
	"github.com/xornet-ml/xornet/internal/activations"
	"github.com/xornet-ml/xornet/internal/loss"
	"github.com/xornet-ml/xornet/internal/net"
	"github.com/xornet-ml/xornet/internal/opt"
)

// Re-export common types for easier access
type (
	Network     = net.Network
	Config      = net.Config
	Parameters  = net.Parameters
	Gradients   = net.Gradients
	Result      = net.Result
	Initializer = net.Initializer
	Callback    = net.Callback
	History     = net.History
	Logger      = net.Logger
	Optimizer   = opt.Optimizer
	Loss        = loss.Loss
	Activation  = activations.Activation
)

// Errors
var (
	ErrBadConfig = net.ErrBadConfig
	ErrNonFinite = net.ErrNonFinite
)

// Network creation
func New(cfg Config, init Initializer) (*Network, error) {
	return net.New(cfg, init)
}

// Load restores a network from a gob checkpoint file.
func Load(filename string) (*Network, error) {
	return net.Load(filename)
}

// Initializers
func NewUniformInitializer(seed int64) Initializer {
	return net.NewUniformInitializer(seed)
}
