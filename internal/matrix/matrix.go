// Package matrix provides the dense-matrix helpers used by the trainer.
//
// The heavy lifting (matrix product, elementwise arithmetic, transpose,
// scaling) is gonum's mat.Dense. This package adds the few batch-oriented
// operations gonum has no direct method for: broadcasting a row vector
// across a batch, reducing a batch down to per-column sums, and applying a
// scalar function elementwise. All helpers return freshly allocated
// matrices and never mutate their operands.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// AddRowVector adds the 1xC vector v to every row of the RxC matrix m.
// Panics with mat.ErrShape if v is not a single row or the column counts
// differ, matching gonum's own mismatch behavior.
func AddRowVector(m, v *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	vr, vc := v.Dims()
	if vr != 1 || vc != c {
		panic(mat.ErrShape)
	}

	out := mat.NewDense(r, c, nil)
	row := v.RawRowView(0)
	for i := 0; i < r; i++ {
		dst := out.RawRowView(i)
		copy(dst, m.RawRowView(i))
		floats.Add(dst, row)
	}
	return out
}

// ColSums reduces the RxC matrix m along the row axis, returning the 1xC
// vector of per-column sums.
func ColSums(m *mat.Dense) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(1, c, nil)
	sums := out.RawRowView(0)
	for i := 0; i < r; i++ {
		floats.Add(sums, m.RawRowView(i))
	}
	return out
}

// ApplyElem applies f to every element of m, returning a new matrix of the
// same shape.
func ApplyElem(f func(float64) float64, m *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, m)
	return &out
}

// HasNonFinite reports whether m contains a NaN or infinite element.
func HasNonFinite(m *mat.Dense) bool {
	r, _ := m.Dims()
	for i := 0; i < r; i++ {
		for _, v := range m.RawRowView(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return true
			}
		}
	}
	return false
}
