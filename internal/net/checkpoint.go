package net

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// checkpoint is the gob wire form of a trained network: the configuration
// plus the four parameter matrices flattened row-major.
type checkpoint struct {
	Config Config
	W1     []float64
	B1     []float64
	W2     []float64
	B2     []float64
}

// Save saves the network to a file using gob encoding.
func (n *Network) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return n.Encode(file)
}

// Encode writes the network to an io.Writer using gob encoding.
func (n *Network) Encode(w io.Writer) error {
	cp := checkpoint{
		Config: n.cfg,
		W1:     flatten(n.params.W1),
		B1:     flatten(n.params.B1),
		W2:     flatten(n.params.W2),
		B2:     flatten(n.params.B2),
	}
	if err := gob.NewEncoder(w).Encode(cp); err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	return nil
}

// Load loads a network from a file. The loaded network reproduces the
// saved network's predictions exactly.
func Load(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a network from an io.Reader using gob encoding.
func Decode(r io.Reader) (*Network, error) {
	var cp checkpoint
	if err := gob.NewDecoder(r).Decode(&cp); err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}

	cfg := cp.Config
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	in, hid, out := cfg.InputDim, cfg.HiddenDim, cfg.OutputDim
	if len(cp.W1) != in*hid || len(cp.B1) != hid || len(cp.W2) != hid*out || len(cp.B2) != out {
		return nil, fmt.Errorf("%w: checkpoint parameter sizes do not match dimensions %d-%d-%d",
			ErrBadConfig, in, hid, out)
	}

	n, err := New(cfg, &ValuesInitializer{
		W1: mat.NewDense(in, hid, cp.W1),
		W2: mat.NewDense(hid, out, cp.W2),
	})
	if err != nil {
		return nil, err
	}
	n.params.B1 = mat.NewDense(1, hid, cp.B1)
	n.params.B2 = mat.NewDense(1, out, cp.B2)
	return n, nil
}

// flatten copies m into a row-major slice.
func flatten(m *mat.Dense) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		out = append(out, m.RawRowView(i)...)
	}
	return out
}
